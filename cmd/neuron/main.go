package main

import (
	"image/color"
	"os"
	"os/signal"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/drakos74/neuron/infra/config"
	"github.com/drakos74/neuron/internal/loop"
	"github.com/drakos74/neuron/internal/neuron"
	"github.com/drakos74/neuron/internal/palette"
	"github.com/drakos74/neuron/internal/render"
	"github.com/drakos74/neuron/internal/session"
)

func main() {

	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	cfg := config.Load()

	s := session.New(
		session.Dimensions{Width: cfg.Width, Height: cfg.Height},
		neuron.Activation(cfg.Activation),
	)
	s.Rate = cfg.Rate
	s.Limit = cfg.Limit
	if cfg.Random {
		s = session.Apply(s, session.Request{Kind: session.Randomize})
	}

	// seed the classic AND gate and kick off the training run
	for _, r := range []session.Request{
		{Kind: session.AddPoint, X1: 0, X2: 0, Label: 0},
		{Kind: session.AddPoint, X1: 1, X2: 0, Label: 0},
		{Kind: session.AddPoint, X1: 0, X2: 1, Label: 0},
		{Kind: session.AddPoint, X1: 1, X2: 1, Label: 1},
		{Kind: session.Start},
	} {
		s = session.Apply(s, r)
	}

	stop := make(chan struct{})
	var once sync.Once

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)
	go func() {
		<-interrupt
		once.Do(func() { close(stop) })
	}()

	s = loop.Run(stop, time.Duration(cfg.IntervalMs)*time.Millisecond, s,
		func(next session.Session) {
			if next.ErrorRate() == 0 {
				once.Do(func() { close(stop) })
			}
		})

	log.Info().
		Int("epochs", s.Epochs).
		Float64("error", s.ErrorRate()).
		Float64("w1", s.Weights.Get(neuron.X1)).
		Float64("w2", s.Weights.Get(neuron.X2)).
		Float64("bias", s.Weights.Get(neuron.Bias)).
		Msg("session finished")

	p := palette.Palette{
		Disabled: color.RGBA{R: cfg.Disabled.R, G: cfg.Disabled.G, B: cfg.Disabled.B, A: 255},
		Enabled:  color.RGBA{R: cfg.Enabled.R, G: cfg.Enabled.G, B: cfg.Enabled.B, A: 255},
	}

	f, err := os.Create("neuron.png")
	if err != nil {
		log.Error().Err(err).Msg("could not create scene file")
		return
	}
	defer f.Close()

	if err := render.Encode(f, render.Draw(s, p)); err != nil {
		log.Error().Err(err).Msg("could not render scene")
		return
	}
	log.Info().Str("file", f.Name()).Msg("scene rendered")
}
