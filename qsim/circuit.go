// SPDX-License-Identifier: MIT

package qsim

import "fmt"

// Circuit — minimal state-vector quantum circuit engine.
//
// Description:
//
//	Circuit owns an ordered vector of 2^n complex amplitudes for an
//	n-qubit register. The index of an amplitude is the integer value of
//	the register's bit string under the package convention: qubit 0 is
//	the most significant bit. Construction places the register in
//	|0…0⟩; every gate application mutates the vector in place; queries
//	and measurements read it without mutating.
//
// Gate-application outline (single-qubit gate g on qubit q):
//  1. mask = 1 << (n-1-q).
//  2. For every basis index i with i&mask == 0 (the canonical
//     representative of its pair), let j = i | mask.
//  3. Capture a0 = state[i], a1 = state[j] BEFORE writing, then
//     state[i] = g00·a0 + g01·a1 and state[j] = g10·a0 + g11·a1.
//
// Capturing both old values first makes the pair update simultaneous —
// the transformation reads the pre-gate vector throughout. Controlled
// gates run the same loop restricted to indices whose control bit is 1.
//
// Invariant: Σ|amplitude|² stays 1 (within floating-point rounding)
// under exactly unitary gates. Non-unitary caller matrices break the
// invariant and are not corrected.
type Circuit struct {
	numQubits int
	state     []complex128
}

// New constructs an n-qubit circuit initialised to |0…0⟩.
// Returns ErrInvalidSize when numQubits < 1.
func New(numQubits int) (*Circuit, error) {
	if numQubits < 1 {
		return nil, ErrInvalidSize
	}

	state := make([]complex128, 1<<numQubits)
	state[0] = 1 // |00...0⟩

	return &Circuit{numQubits: numQubits, state: state}, nil
}

// NumQubits reports the register size n.
func (c *Circuit) NumQubits() int { return c.numQubits }

// Amplitudes returns a copy of the state vector. The engine owns its
// vector exclusively; callers get a snapshot, never an alias.
func (c *Circuit) Amplitudes() []complex128 {
	amps := make([]complex128, len(c.state))
	copy(amps, c.state)

	return amps
}

// Clone returns an independent circuit with an identical state vector.
func (c *Circuit) Clone() *Circuit {
	return &Circuit{numQubits: c.numQubits, state: c.Amplitudes()}
}

// Reset returns the register to |0…0⟩ in place.
func (c *Circuit) Reset() {
	for i := range c.state {
		c.state[i] = 0
	}
	c.state[0] = 1
}

// Norm returns Σ|amplitude|², which equals 1 up to rounding for any
// sequence of unitary gates. Useful as a drift probe; never used to
// renormalise.
func (c *Circuit) Norm() float64 {
	var total float64
	for _, amp := range c.state {
		total += real(amp)*real(amp) + imag(amp)*imag(amp)
	}

	return total
}

// mask returns the index bit selecting qubit q: qubit 0 is the most
// significant bit of the basis index.
func (c *Circuit) mask(q int) int {
	return 1 << (c.numQubits - 1 - q)
}

// validateQubit rejects indices outside [0, NumQubits).
func (c *Circuit) validateQubit(q int) error {
	if q < 0 || q >= c.numQubits {
		return ErrQubitOutOfRange
	}

	return nil
}

// Apply applies a single-qubit gate to target in place.
// Returns ErrQubitOutOfRange without touching the vector when target
// is invalid.
func (c *Circuit) Apply(g Gate, target int) error {
	if err := c.validateQubit(target); err != nil {
		return err
	}

	mask := c.mask(target)
	for i := range c.state {
		if i&mask != 0 {
			continue // visit each pair once, via its bit=0 representative
		}
		j := i | mask
		a0, a1 := c.state[i], c.state[j] // both old values, before any write
		c.state[i] = g.m00*a0 + g.m01*a1
		c.state[j] = g.m10*a0 + g.m11*a1
	}

	return nil
}

// Hadamard applies the Hadamard gate to qubit q, creating an equal
// superposition from a basis state.
func (c *Circuit) Hadamard(q int) error { return c.Apply(HGate(), q) }

// PauliX applies the Pauli-X (NOT) gate to qubit q.
func (c *Circuit) PauliX(q int) error { return c.Apply(XGate(), q) }

// PauliY applies the Pauli-Y gate to qubit q.
func (c *Circuit) PauliY(q int) error { return c.Apply(YGate(), q) }

// PauliZ applies the Pauli-Z gate to qubit q.
func (c *Circuit) PauliZ(q int) error { return c.Apply(ZGate(), q) }

// Phase applies the S gate (√Z) to qubit q.
func (c *Circuit) Phase(q int) error { return c.Apply(SGate(), q) }

// T applies the π/8 gate (√S) to qubit q.
func (c *Circuit) T(q int) error { return c.Apply(TGate(), q) }

// Controlled applies g to target only within the subspace where
// control's bit is 1; the control=0 subspace is left untouched (the
// full 2^n×2^n operator is block-diagonal: identity ⊕ g).
// Returns ErrSameQubit when control == target, ErrQubitOutOfRange when
// either index is invalid; the vector is never half-updated.
func (c *Circuit) Controlled(g Gate, control, target int) error {
	if err := c.validateQubit(control); err != nil {
		return err
	}
	if err := c.validateQubit(target); err != nil {
		return err
	}
	if control == target {
		return ErrSameQubit
	}

	cMask, tMask := c.mask(control), c.mask(target)
	for i := range c.state {
		if i&cMask == 0 || i&tMask != 0 {
			continue // control bit must be 1; pair over target bit = 0
		}
		j := i | tMask
		a0, a1 := c.state[i], c.state[j]
		c.state[i] = g.m00*a0 + g.m01*a1
		c.state[j] = g.m10*a0 + g.m11*a1
	}

	return nil
}

// CNOT applies a controlled-NOT: Pauli-X on target wherever control is 1.
func (c *Circuit) CNOT(control, target int) error {
	return c.Controlled(XGate(), control, target)
}

// CZ applies a controlled-Z: Pauli-Z on target wherever control is 1.
func (c *Circuit) CZ(control, target int) error {
	return c.Controlled(ZGate(), control, target)
}

// Probabilities returns the exact probability of every one of the 2^n
// basis states, keyed by bit string (qubit 0 leftmost). All outcomes
// are present unconditionally, zero-probability ones included.
// Side-effect-free.
func (c *Circuit) Probabilities() map[string]float64 {
	probs := make(map[string]float64, len(c.state))
	for i, amp := range c.state {
		probs[c.bitString(i, c.numQubits)] = real(amp)*real(amp) + imag(amp)*imag(amp)
	}

	return probs
}

// MarginalProbabilities returns the probability distribution over the
// given qubits, in the given order, summing out the rest. With no
// arguments it is equivalent to Probabilities. Indices must be valid
// and distinct (ErrQubitOutOfRange / ErrDuplicateQubit).
func (c *Circuit) MarginalProbabilities(qubits ...int) (map[string]float64, error) {
	if len(qubits) == 0 {
		return c.Probabilities(), nil
	}
	if err := c.validateDistinct(qubits); err != nil {
		return nil, err
	}

	width := len(qubits)
	marginal := make([]float64, 1<<width)
	for i, amp := range c.state {
		// Project the basis index onto the selected qubits, preserving order.
		var sub int
		for _, q := range qubits {
			sub <<= 1
			if i&c.mask(q) != 0 {
				sub |= 1
			}
		}
		marginal[sub] += real(amp)*real(amp) + imag(amp)*imag(amp)
	}

	probs := make(map[string]float64, len(marginal))
	for sub, p := range marginal {
		probs[c.bitString(sub, width)] = p
	}

	return probs, nil
}

// validateDistinct rejects out-of-range or repeated qubit indices.
func (c *Circuit) validateDistinct(qubits []int) error {
	seen := make(map[int]struct{}, len(qubits))
	for _, q := range qubits {
		if err := c.validateQubit(q); err != nil {
			return err
		}
		if _, dup := seen[q]; dup {
			return ErrDuplicateQubit
		}
		seen[q] = struct{}{}
	}

	return nil
}

// bitString formats a basis index as a zero-padded binary string of the
// given width, qubit 0 leftmost.
func (c *Circuit) bitString(index, width int) string {
	return fmt.Sprintf("%0*b", width, index)
}
