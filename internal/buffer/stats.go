package buffer

import "math"

// Stats is a streaming accumulator over the classification error of a training run.
type Stats struct {
	count    int
	mean     float64
	min, max float64
	first    float64
	last     float64
}

// NewStats creates a new Stats.
func NewStats() *Stats {
	return &Stats{
		min: math.MaxFloat64,
		max: -1 * math.MaxFloat64,
	}
}

// Push adds another error sample to the set.
func (s *Stats) Push(v float64) {
	s.count++
	s.mean += (v - s.mean) / float64(s.count)

	if s.count == 1 {
		s.first = v
	}
	if s.min > v {
		s.min = v
	}
	if s.max < v {
		s.max = v
	}
	s.last = v
}

// Count returns the number of samples pushed.
func (s Stats) Count() int {
	return s.count
}

// Avg returns the running mean of the samples.
func (s Stats) Avg() float64 {
	return s.mean
}

// Min returns the smallest sample seen.
func (s Stats) Min() float64 {
	return s.min
}

// Max returns the largest sample seen.
func (s Stats) Max() float64 {
	return s.max
}

// First returns the first sample pushed.
func (s Stats) First() float64 {
	return s.first
}

// Last returns the most recent sample pushed.
func (s Stats) Last() float64 {
	return s.last
}
