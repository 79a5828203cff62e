package loop

import (
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/drakos74/neuron/internal/buffer"
	"github.com/drakos74/neuron/internal/metrics"
	"github.com/drakos74/neuron/internal/session"
)

// Interval is the default cadence of the training ticks.
const Interval = 100 * time.Millisecond

// Run drives the session through tick transitions at the given cadence,
// until the session halts at its epoch limit or stop is closed.
// Every transition is a complete synchronous replacement of the session value,
// ticks are only delivered while the session is in the training state.
// The observe hook, if present, sees every new session value.
// Run blocks and returns the final session.
func Run(stop <-chan struct{}, interval time.Duration, s session.Session, observe func(session.Session)) session.Session {
	if s.State() != session.Training {
		return s
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	stats := buffer.NewStats()

	for {
		select {
		case <-ticker.C:
			next := session.Apply(s, session.Request{Kind: session.Tick})
			if next.Epochs > s.Epochs {
				metrics.Observer.IncrementEpochs()
				metrics.Observer.SetEpoch(next.Epochs)
				stats.Push(next.ErrorRate())
			}
			s = next
			if observe != nil {
				observe(s)
			}
			if s.State() == session.Idle {
				summary(s, stats).Msg("training halted at epoch limit")
				return s
			}
		case <-stop:
			s = session.Apply(s, session.Request{Kind: session.Stop})
			summary(s, stats).Msg("training stopped")
			return s
		}
	}
}

func summary(s session.Session, stats *buffer.Stats) *zerolog.Event {
	return log.Info().
		Int("epochs", s.Epochs).
		Int("points", len(s.Points)).
		Float64("error", s.ErrorRate()).
		Float64("error-avg", stats.Avg()).
		Float64("error-min", stats.Min())
}
