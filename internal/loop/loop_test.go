package loop

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/drakos74/neuron/internal/neuron"
	"github.com/drakos74/neuron/internal/session"
)

func andGate() session.Session {
	s := session.New(session.Dimensions{Width: 500, Height: 500}, neuron.Step)
	s = s.AddPoint(0, 0, 0).
		AddPoint(1, 0, 0).
		AddPoint(0, 1, 0).
		AddPoint(1, 1, 1)
	return s
}

func TestRunIdleIsNoop(t *testing.T) {
	s := andGate()
	out := Run(nil, time.Millisecond, s, nil)
	assert.Equal(t, s, out)
}

func TestRunHaltsAtLimit(t *testing.T) {
	s := andGate().Start()
	s.Limit = 5

	ticks := 0
	out := Run(nil, time.Millisecond, s, func(session.Session) {
		ticks++
	})

	fmt.Printf("ticks = %+v\n", ticks)
	assert.Equal(t, session.Idle, out.State())
	assert.Equal(t, 5, out.Epochs)
	// the halting tick applies no epoch
	assert.Equal(t, 6, ticks)
}

func TestRunStops(t *testing.T) {
	s := andGate().Start()

	stop := make(chan struct{})
	go func() {
		time.Sleep(20 * time.Millisecond)
		close(stop)
	}()

	out := Run(stop, time.Millisecond, s, nil)
	assert.Equal(t, session.Idle, out.State())
	assert.True(t, out.Epochs < out.Limit)
}

func TestRunConverges(t *testing.T) {
	s := andGate().Start()

	out := Run(nil, 10*time.Microsecond, s, nil)
	// the AND gate is linearly separable, the run halts at the limit
	// with every point classified correctly well before epoch 500
	assert.Equal(t, session.Limit, out.Epochs)
	assert.Equal(t, 0.0, out.ErrorRate())
}
