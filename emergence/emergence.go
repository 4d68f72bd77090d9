package emergence

import "math"

// DefaultLambda is the amplification constant used when callers have no
// domain-specific λ.
const DefaultLambda = 1.0

// State is an emergent system at time step T. K() gives the current
// emergence coefficient; Step archives it and advances the clock.
type State struct {
	T       float64
	C       float64
	Delta   float64
	Lambda  float64
	history []float64
}

// NewState returns a State at t=0 with the given complexity,
// contradiction magnitude, and λ (DefaultLambda when lambda is 0).
func NewState(complexity, delta, lambda float64) *State {
	if lambda == 0 {
		lambda = DefaultLambda
	}

	return &State{C: complexity, Delta: delta, Lambda: lambda}
}

// K returns the emergence coefficient K(t) = C(t) · e^(λ·|δ_t|).
func (s *State) K() float64 {
	return s.C * math.Exp(s.Lambda*math.Abs(s.Delta))
}

// Step archives the current K, advances time by one, and installs the
// next complexity and contradiction values. Returns s for chaining.
func (s *State) Step(newC, newDelta float64) *State {
	s.history = append(s.history, s.K())
	s.T++
	s.C = newC
	s.Delta = newDelta

	return s
}

// History returns a copy of the archived K values.
func (s *State) History() []float64 {
	out := make([]float64, len(s.history))
	copy(out, s.history)

	return out
}

// IsEmergent reports whether the current K exceeds threshold × the
// first archived K (baseline 1 when the archive starts at zero).
// A state with no history cannot be emergent yet.
func (s *State) IsEmergent(threshold float64) bool {
	if len(s.history) == 0 {
		return false
	}
	baseline := s.history[0]
	if baseline == 0 {
		baseline = 1.0
	}

	return s.K() > threshold*baseline
}

// entry is one amplification record: inputs and the resulting K.
type entry struct {
	c, delta, k float64
}

// Amplifier amplifies contradictions to drive emergent behavior,
// keeping a log of every (C, δ, K) it produced.
type Amplifier struct {
	Lambda float64
	log    []entry
}

// NewAmplifier returns an Amplifier with the given λ (DefaultLambda
// when lambda is 0).
func NewAmplifier(lambda float64) *Amplifier {
	if lambda == 0 {
		lambda = DefaultLambda
	}

	return &Amplifier{Lambda: lambda}
}

// Amplify computes K = C · e^(λ·|δ|) and records it.
func (a *Amplifier) Amplify(complexity, contradiction float64) float64 {
	k := complexity * math.Exp(a.Lambda*math.Abs(contradiction))
	a.log = append(a.log, entry{c: complexity, delta: contradiction, k: k})

	return k
}

// Peak returns the highest K observed so far, 0 before any Amplify.
func (a *Amplifier) Peak() float64 {
	var peak float64
	for _, e := range a.log {
		if e.k > peak {
			peak = e.k
		}
	}

	return peak
}

// Trajectory returns the K values in amplification order.
func (a *Amplifier) Trajectory() []float64 {
	out := make([]float64, len(a.log))
	for i, e := range a.log {
		out[i] = e.k
	}

	return out
}

// IsDiverging reports whether K was strictly increasing over the last
// `window` amplifications. Fewer than two samples never diverge.
func (a *Amplifier) IsDiverging(window int) bool {
	traj := a.Trajectory()
	if window < len(traj) {
		traj = traj[len(traj)-window:]
	}
	if len(traj) < 2 {
		return false
	}
	for i := 0; i+1 < len(traj); i++ {
		if traj[i] >= traj[i+1] {
			return false
		}
	}

	return true
}

// Simulate runs the emergence trajectory K(t) over `steps` time steps
// and returns the K values. complexityFn defaults to slow linear growth
// (1 + 0.1t); contradictionFn defaults to a pulsing |sin| signal that
// mimics creative breakthroughs. A non-positive steps yields an empty
// trajectory.
func Simulate(steps int, lambda float64, complexityFn, contradictionFn func(t int) float64) []float64 {
	if complexityFn == nil {
		complexityFn = func(t int) float64 { return 1.0 + 0.1*float64(t) }
	}
	if contradictionFn == nil {
		contradictionFn = func(t int) float64 {
			return math.Abs(math.Sin(float64(t)*0.5)) * (1 + 0.05*float64(t))
		}
	}

	amp := NewAmplifier(lambda)
	for t := 0; t < steps; t++ {
		amp.Amplify(complexityFn(t), contradictionFn(t))
	}

	return amp.Trajectory()
}
