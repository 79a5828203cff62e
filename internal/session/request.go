package session

import (
	"github.com/rs/zerolog/log"

	"github.com/drakos74/neuron/internal/metrics"
	"github.com/drakos74/neuron/internal/neuron"
)

// Kind enumerates the request variants the session reducer handles.
type Kind string

const (
	AddPoint       Kind = "add-point"
	AddCanvasPoint Kind = "add-canvas-point"
	RemovePoint    Kind = "remove-point"
	ClearPoints    Kind = "clear-points"
	SetWeight      Kind = "set-weight"
	SetLabel       Kind = "set-label"
	Randomize      Kind = "randomize-weights"
	Start          Kind = "start-training"
	Stop           Kind = "stop-training"
	Tick           Kind = "tick"
)

// Request is a single command towards the session.
// Only the fields relevant to the kind carry meaning.
type Request struct {
	Kind  Kind
	ID    string
	X1    float64
	X2    float64
	X     float64
	Y     float64
	Value string
	Label float64
}

// Apply reduces the request onto the session and returns the new session value.
// Unknown kinds leave the session unchanged.
func Apply(s Session, r Request) Session {
	switch r.Kind {
	case AddPoint:
		metrics.Observer.IncrementPoints("add")
		return s.AddPoint(r.X1, r.X2, r.Label)
	case AddCanvasPoint:
		metrics.Observer.IncrementPoints("add")
		return s.AddCanvasPoint(r.X, r.Y)
	case RemovePoint:
		metrics.Observer.IncrementPoints("remove")
		return s.RemovePoint(r.ID)
	case ClearPoints:
		metrics.Observer.IncrementPoints("clear")
		return s.ClearPoints()
	case SetWeight:
		// a value that does not parse as a float silently becomes 0.0
		return s.SetWeight(r.ID, neuron.ParseWeight(r.Value))
	case SetLabel:
		return s.SetLabel(r.Label)
	case Randomize:
		return s.RandomizeWeights()
	case Start:
		metrics.Observer.IncrementRuns()
		return s.Start()
	case Stop:
		return s.Stop()
	case Tick:
		return s.OnTick()
	default:
		log.Warn().Str("kind", string(r.Kind)).Msg("unknown request")
		return s
	}
}
