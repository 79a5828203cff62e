package neuron

import (
	"fmt"
	"strconv"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gonum.org/v1/gonum/stat/distuv"
)

const (
	// DefaultRate is the learning rate for the weight update rule.
	DefaultRate = 0.4
	// steepness flattens the sigmoid so that raw sums in canvas scale
	// still produce a usable gradient of outputs.
	steepness = 0.01
)

// Role names the logical dimension a weight is bound to.
type Role string

const (
	X1   Role = "x1"
	X2   Role = "x2"
	Bias Role = "bias"
)

// roles is the canonical weight order, aligned with the feature vector [x1, x2, 1].
var roles = []Role{X1, X2, Bias}

// Weight is a single weight of the neuron bound to a named role.
type Weight struct {
	ID    string  `json:"id"`
	Role  Role    `json:"role"`
	Value float64 `json:"value"`
}

// Weights is the ordered weight sequence of the neuron.
// The order is significant and must align with the feature vector.
type Weights []Weight

// New creates the default weight sequence with all values at 1.0.
func New() Weights {
	ws := make(Weights, len(roles))
	for i, r := range roles {
		ws[i] = Weight{
			ID:    uuid.New().String(),
			Role:  r,
			Value: 1.0,
		}
	}
	return ws
}

// Random creates a weight sequence with values sampled uniformly
// from [-span/2, span/2].
func Random(span float64) Weights {
	u := distuv.Uniform{Min: -0.5 * span, Max: 0.5 * span}
	ws := New()
	for i := range ws {
		ws[i].Value = u.Rand()
	}
	return ws
}

// Get returns the value of the weight bound to the given role.
func (ws Weights) Get(role Role) float64 {
	for _, w := range ws {
		if w.Role == role {
			return w.Value
		}
	}
	panic(fmt.Sprintf("no weight for role %s in %+v", role, ws))
}

// Set returns a copy of the weights with the value of the identified weight replaced.
// An unknown id leaves the weights unchanged.
func (ws Weights) Set(id string, value float64) Weights {
	next := make(Weights, len(ws))
	copy(next, ws)
	for i, w := range next {
		if w.ID == id {
			next[i].Value = value
		}
	}
	return next
}

// Point is a labeled training sample in graph coordinates.
type Point struct {
	ID       string  `json:"id"`
	X1       float64 `json:"x1"`
	X2       float64 `json:"x2"`
	Expected float64 `json:"expectedOutput"`
}

// NewPoint creates a labeled point with a fresh id.
func NewPoint(x1, x2, expected float64) Point {
	return Point{
		ID:       uuid.New().String(),
		X1:       x1,
		X2:       x2,
		Expected: expected,
	}
}

// features is the input vector of the point, positionally aligned with the weight order.
func features(p Point) []float64 {
	return []float64{p.X1, p.X2, 1.0}
}

// Sigma computes the weighted sum of the point's feature vector.
func Sigma(ws Weights, p Point) float64 {
	ff := features(p)
	if len(ws) != len(ff) {
		// a weight count that diverged from the input dimensions is a programming error
		panic(fmt.Sprintf("weights do not match the feature vector [ %d | %d ]", len(ws), len(ff)))
	}
	var sum float64
	for i, w := range ws {
		sum += w.Value * ff[i]
	}
	return sum
}

// Evaluate runs the network on the given point,
// deriving the output fresh from the current weight snapshot.
func Evaluate(ws Weights, a Activation, p Point) float64 {
	return a.Apply(Sigma(ws, p))
}

// TrainEpoch applies the weight update rule over every point in insertion order
// and returns the adjusted weights. Updates accumulate sequentially within the epoch,
// each point trains against the weights left behind by the previous one.
func TrainEpoch(ws Weights, a Activation, rate float64, points []Point) Weights {
	next := make(Weights, len(ws))
	copy(next, ws)
	for _, p := range points {
		err := p.Expected - Evaluate(next, a, p)
		ff := features(p)
		for i := range next {
			next[i].Value += rate * err * ff[i]
		}
	}
	return next
}

// BoundaryY solves w1*x + w2*y + bias = 0 for y at the given x.
// NOTE : a zero x2-weight makes the division degenerate and the result non-finite,
// the value is propagated as is.
func BoundaryY(ws Weights, x float64) float64 {
	w1 := ws.Get(X1)
	w2 := ws.Get(X2)
	b := ws.Get(Bias)
	return -1*(w1/w2)*x - b/w2
}

// ParseWeight parses a user supplied weight value,
// coercing anything that is not a float to 0.0.
func ParseWeight(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		log.Debug().Str("value", s).Msg("could not parse weight")
		return 0.0
	}
	return v
}
