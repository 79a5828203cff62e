package session

import (
	"github.com/drakos74/neuron/internal/geometry"
	"github.com/drakos74/neuron/internal/neuron"
)

// Limit is the default number of epochs after which a training run halts.
const Limit = 500

// Dimensions is the fixed pixel size of the canvas.
type Dimensions struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// State describes the training loop state of the session.
type State string

const (
	Idle     State = "idle"
	Training State = "training"
)

// Session aggregates the weights, the training set and the training state.
// It is a value, every operation returns a new Session and leaves the receiver untouched.
type Session struct {
	Weights    neuron.Weights
	Points     []neuron.Point
	Dim        Dimensions
	Activation neuron.Activation
	Rate       float64
	Limit      int
	IsTraining bool
	Epochs     int
	NextLabel  float64
}

// New creates an idle session with the default weights and an empty training set.
func New(dim Dimensions, a neuron.Activation) Session {
	return Session{
		Weights:    neuron.New(),
		Points:     make([]neuron.Point, 0),
		Dim:        dim,
		Activation: a,
		Rate:       neuron.DefaultRate,
		Limit:      Limit,
		NextLabel:  1,
	}
}

// State returns the training loop state of the session.
func (s Session) State() State {
	if s.IsTraining {
		return Training
	}
	return Idle
}

// AddPoint appends a labeled point in graph coordinates.
func (s Session) AddPoint(x1, x2, expected float64) Session {
	points := make([]neuron.Point, len(s.Points), len(s.Points)+1)
	copy(points, s.Points)
	s.Points = append(points, neuron.NewPoint(x1, x2, expected))
	return s
}

// AddCanvasPoint appends a point from a raw canvas click,
// labeled with the currently selected expected output.
func (s Session) AddCanvasPoint(x, y float64) Session {
	return s.AddPoint(
		geometry.ToGraph(s.Dim.Width, x),
		geometry.ToGraphY(s.Dim.Height, y),
		s.NextLabel,
	)
}

// RemovePoint removes the identified point.
// An unknown id leaves the session unchanged.
func (s Session) RemovePoint(id string) Session {
	points := make([]neuron.Point, 0, len(s.Points))
	for _, p := range s.Points {
		if p.ID != id {
			points = append(points, p)
		}
	}
	s.Points = points
	return s
}

// ClearPoints drops the whole training set.
func (s Session) ClearPoints() Session {
	s.Points = make([]neuron.Point, 0)
	return s
}

// SetWeight overrides the value of the identified weight.
func (s Session) SetWeight(id string, value float64) Session {
	s.Weights = s.Weights.Set(id, value)
	return s
}

// SetLabel selects the expected output assigned to the next canvas click.
func (s Session) SetLabel(v float64) Session {
	s.NextLabel = v
	return s
}

// RandomizeWeights re-initialises the weights uniformly within half the canvas extent.
func (s Session) RandomizeWeights() Session {
	s.Weights = neuron.Random(float64(s.Dim.Width))
	return s
}

// Start moves the session into the training state and resets the epoch counter.
func (s Session) Start() Session {
	s.IsTraining = true
	s.Epochs = 0
	return s
}

// Stop moves the session back to idle. Stopping an idle session is a no-op.
func (s Session) Stop() Session {
	s.IsTraining = false
	return s
}

// OnTick applies a single training epoch and advances the epoch counter.
// Once the epoch counter has reached the limit the session halts without
// applying the epoch. Ticks on an idle session have no effect.
func (s Session) OnTick() Session {
	if !s.IsTraining {
		return s
	}
	if s.Epochs >= s.Limit {
		s.IsTraining = false
		return s
	}
	s.Weights = neuron.TrainEpoch(s.Weights, s.Activation, s.Rate, s.Points)
	s.Epochs++
	return s
}

// Evaluate runs the network on the given point with the current weight snapshot.
func (s Session) Evaluate(p neuron.Point) float64 {
	return neuron.Evaluate(s.Weights, s.Activation, p)
}

// BoundaryY returns the decision boundary height at the given graph x.
func (s Session) BoundaryY(x float64) float64 {
	return neuron.BoundaryY(s.Weights, x)
}

// ErrorRate returns the fraction of stored points the network currently misclassifies.
func (s Session) ErrorRate() float64 {
	if len(s.Points) == 0 {
		return 0
	}
	errors := 0
	for _, p := range s.Points {
		if (s.Evaluate(p) > 0.5) != (p.Expected > 0.5) {
			errors++
		}
	}
	return float64(errors) / float64(len(s.Points))
}
