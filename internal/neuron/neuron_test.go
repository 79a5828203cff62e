package neuron

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func weights(w1, w2, b float64) Weights {
	ws := New()
	ws[0].Value = w1
	ws[1].Value = w2
	ws[2].Value = b
	return ws
}

func TestSigma(t *testing.T) {
	ws := weights(2, 3, 5)
	p := Point{X1: 1, X2: -1}
	// 2*1 + 3*(-1) + 5*1
	assert.Equal(t, 4.0, Sigma(ws, p))
}

func TestSigmaMismatchPanics(t *testing.T) {
	ws := New()[:2]
	assert.Panics(t, func() {
		Sigma(ws, Point{X1: 1, X2: 1})
	})
}

func TestStepActivation(t *testing.T) {
	assert.Equal(t, 0.0, Step.Apply(-1))
	assert.Equal(t, 0.0, Step.Apply(0))
	assert.Equal(t, 1.0, Step.Apply(0.0001))
	assert.Equal(t, 1.0, Step.Apply(1000))
}

func TestSigmoidActivation(t *testing.T) {
	assert.Equal(t, 0.5, Sigmoid.Apply(0))
	// k = 0.01 flattens the curve, canvas scale inputs stay in range
	assert.InDelta(t, 1/(1+math.Exp(-1)), Sigmoid.Apply(100), 1e-9)
	assert.True(t, Sigmoid.Apply(100000) > 0.99)
	assert.True(t, Sigmoid.Apply(-100000) < 0.01)
}

func TestEvaluateIdempotent(t *testing.T) {
	ws := weights(0.3, -1.2, 0.7)
	p := Point{X1: 13.5, X2: -7.25}
	for _, a := range []Activation{Step, Sigmoid} {
		out := Evaluate(ws, a, p)
		assert.Equal(t, out, Evaluate(ws, a, p))
	}
}

func TestTrainEpochEmpty(t *testing.T) {
	ws := weights(1, 1, 1)
	next := TrainEpoch(ws, Step, DefaultRate, nil)
	assert.Equal(t, ws, next)
}

func TestTrainEpochSequentialFold(t *testing.T) {
	ws := weights(0, 0, 0)
	points := []Point{
		NewPoint(1, 1, 1),
		NewPoint(1, 1, 0),
	}

	fold := TrainEpoch(ws, Step, DefaultRate, points)

	// the second point must see the weights as left behind by the first one :
	// p1 : sigma=0 -> 0, err=1  -> {0.4, 0.4, 0.4}
	// p2 : sigma=1.2 -> 1, err=-1 -> {0, 0, 0}
	assert.InDelta(t, 0.0, fold.Get(X1), 1e-9)
	assert.InDelta(t, 0.0, fold.Get(X2), 1e-9)
	assert.InDelta(t, 0.0, fold.Get(Bias), 1e-9)

	// the batch variant applies every delta against the epoch-start snapshot
	batch := make(Weights, len(ws))
	copy(batch, ws)
	for _, p := range points {
		err := p.Expected - Evaluate(ws, Step, p)
		for i, f := range []float64{p.X1, p.X2, 1} {
			batch[i].Value += DefaultRate * err * f
		}
	}
	assert.InDelta(t, 0.4, batch.Get(X1), 1e-9)
	assert.NotEqual(t, batch.Get(X1), fold.Get(X1))
}

func TestTrainConvergesOnAndGate(t *testing.T) {
	ws := weights(1, 1, 1)
	points := []Point{
		NewPoint(0, 0, 0),
		NewPoint(1, 0, 0),
		NewPoint(0, 1, 0),
		NewPoint(1, 1, 1),
	}

	epochs := 0
	for ; epochs < 500; epochs++ {
		ws = TrainEpoch(ws, Step, DefaultRate, points)
		converged := true
		for _, p := range points {
			if Evaluate(ws, Step, p) != p.Expected {
				converged = false
			}
		}
		if converged {
			break
		}
	}
	fmt.Printf("epochs = %+v , weights = %+v\n", epochs, ws)

	require.Less(t, epochs, 500)
	for _, p := range points {
		assert.Equal(t, p.Expected, Evaluate(ws, Step, p))
	}
}

func TestBoundaryY(t *testing.T) {
	ws := weights(2, 1, 4)
	// 2*0 + 1*y + 4 = 0 -> y = -4
	assert.Equal(t, -4.0, BoundaryY(ws, 0))
	// 2*1 + 1*y + 4 = 0 -> y = -6
	assert.Equal(t, -6.0, BoundaryY(ws, 1))
}

func TestBoundaryYDegenerate(t *testing.T) {
	ws := weights(2, 0, 4)
	assert.True(t, math.IsInf(BoundaryY(ws, 1), -1))
}

func TestParseWeight(t *testing.T) {
	assert.Equal(t, 1.5, ParseWeight("1.5"))
	assert.Equal(t, -0.25, ParseWeight("-0.25"))
	assert.Equal(t, 0.0, ParseWeight(""))
	assert.Equal(t, 0.0, ParseWeight("abc"))
	assert.Equal(t, 0.0, ParseWeight("1.5.5"))
}

func TestRandomInRange(t *testing.T) {
	for i := 0; i < 100; i++ {
		ws := Random(500)
		for _, w := range ws {
			assert.True(t, w.Value >= -250 && w.Value <= 250, fmt.Sprintf("out of range : %+v", w))
		}
	}
}

func TestWeightsSet(t *testing.T) {
	ws := New()
	id := ws[1].ID
	next := ws.Set(id, 3.14)
	assert.Equal(t, 3.14, next.Get(X2))
	// the original snapshot is untouched
	assert.Equal(t, 1.0, ws.Get(X2))
	// unknown ids leave the weights unchanged
	assert.Equal(t, next, next.Set("unknown", 42))
}
