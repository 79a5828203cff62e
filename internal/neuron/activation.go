package neuron

import "math"

// Activation converts the weighted sum into a bounded output signal.
// It is a configuration choice of the model instance.
type Activation string

const (
	// Step emits a hard 0/1 classification.
	Step Activation = "step"
	// Sigmoid emits a smooth output in (0,1).
	Sigmoid Activation = "sigmoid"
)

// Apply runs the activation on the raw weighted sum.
func (a Activation) Apply(raw float64) float64 {
	switch a {
	case Sigmoid:
		return 1 / (1 + math.Exp(-1*steepness*raw))
	default:
		if raw > 0 {
			return 1
		}
		return 0
	}
}
