// SPDX-License-Identifier: MIT
// Package qsim: 2×2 unitary gate values and constructors.
// Built-in gates are exactly unitary; NewGate accepts arbitrary caller
// matrices and validates only their shape — unitarity of custom input
// is the caller's contract (qsim never renormalises to mask it).

package qsim

import (
	"math"
	"math/cmplx"
)

// Gate is a 2×2 complex matrix acting on the amplitude pair of one
// target qubit. The zero value is the zero matrix; obtain usable gates
// from the built-in constructors or NewGate.
type Gate struct {
	m00, m01, m10, m11 complex128
}

// NewGate builds a Gate from a caller-supplied 2×2 matrix in row-major
// slice form. Returns ErrMalformedGate unless m has exactly two rows of
// exactly two entries each.
func NewGate(m [][]complex128) (Gate, error) {
	if len(m) != 2 || len(m[0]) != 2 || len(m[1]) != 2 {
		return Gate{}, ErrMalformedGate
	}

	return Gate{m00: m[0][0], m01: m[0][1], m10: m[1][0], m11: m[1][1]}, nil
}

// Matrix returns the gate as a freshly allocated 2×2 row-major slice.
func (g Gate) Matrix() [][]complex128 {
	return [][]complex128{
		{g.m00, g.m01},
		{g.m10, g.m11},
	}
}

// HGate returns the Hadamard gate 1/√2 · [[1, 1], [1, -1]], which maps
// |0⟩ and |1⟩ to equal superpositions (with a relative phase on |1⟩).
func HGate() Gate {
	h := complex(1/math.Sqrt2, 0)

	return Gate{m00: h, m01: h, m10: h, m11: -h}
}

// XGate returns the Pauli-X (NOT) gate [[0, 1], [1, 0]].
func XGate() Gate {
	return Gate{m01: 1, m10: 1}
}

// YGate returns the Pauli-Y gate [[0, -i], [i, 0]].
func YGate() Gate {
	return Gate{m01: -1i, m10: 1i}
}

// ZGate returns the Pauli-Z gate [[1, 0], [0, -1]].
func ZGate() Gate {
	return Gate{m00: 1, m11: -1}
}

// SGate returns the phase gate [[1, 0], [0, i]] (√Z).
func SGate() Gate {
	return Gate{m00: 1, m11: 1i}
}

// TGate returns the π/8 gate [[1, 0], [0, e^{iπ/4}]] (√S).
func TGate() Gate {
	return Gate{m00: 1, m11: cmplx.Exp(complex(0, math.Pi/4))}
}

// RxGate returns a rotation by theta radians about the X axis:
// [[cos(θ/2), -i·sin(θ/2)], [-i·sin(θ/2), cos(θ/2)]].
func RxGate(theta float64) Gate {
	c := complex(math.Cos(theta/2), 0)
	js := complex(0, -math.Sin(theta/2))

	return Gate{m00: c, m01: js, m10: js, m11: c}
}

// RyGate returns a rotation by theta radians about the Y axis:
// [[cos(θ/2), -sin(θ/2)], [sin(θ/2), cos(θ/2)]].
func RyGate(theta float64) Gate {
	c := complex(math.Cos(theta/2), 0)
	s := complex(math.Sin(theta/2), 0)

	return Gate{m00: c, m01: -s, m10: s, m11: c}
}

// RzGate returns a rotation by theta radians about the Z axis:
// [[e^{-iθ/2}, 0], [0, e^{iθ/2}]].
func RzGate(theta float64) Gate {
	phase := cmplx.Exp(complex(0, theta/2))

	return Gate{m00: cmplx.Conj(phase), m11: phase}
}
