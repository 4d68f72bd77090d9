// SPDX-License-Identifier: MIT

// Package qsim simulates small quantum circuits over a dense complex
// state vector, with exact probability queries and seeded measurement
// sampling.
//
// What:
//
//   - Circuit owns 2^n complex128 amplitudes for an n-qubit register,
//     initialised to |0…0⟩ (amplitude 1 at index 0).
//   - Single-qubit unitaries (Apply + Hadamard/PauliX/PauliY/PauliZ/
//     Phase/T conveniences, Rx/Ry/Rz constructors) mutate the vector
//     in place as simultaneous amplitude-pair transformations.
//   - Controlled unitaries (Controlled, CNOT, CZ) act on the target
//     only inside the control=1 subspace.
//   - Probabilities / MarginalProbabilities return exact |amplitude|²
//     distributions keyed by bit string, side-effect-free.
//   - Measure / MeasureQubits draw shots by inverse-CDF sampling from
//     an injected random source; the state vector is never collapsed,
//     so sampling is repeatable under a fixed seed.
//
// Bit-string convention:
//
//	Qubit 0 is the MOST significant bit of the basis index. A basis
//	state is formatted as the index in binary, zero-padded to n, so
//	bitstring[q] is the value of qubit q. The same convention drives
//	gate targeting, marginals, and probability keys — "01" on a
//	2-qubit register means qubit 0 = 0, qubit 1 = 1 (index 1).
//
// Complexity:
//
//   - Gate application:       O(2^n) time, O(1) extra memory.
//   - Probabilities:          O(2^n) time, O(2^n) memory for the map.
//   - Measure (shots = s):    O(s·2^n) time, O(2^n) memory for counts.
//
// Errors:
//
//   - ErrInvalidSize:    qubit count < 1 at construction.
//   - ErrQubitOutOfRange: qubit index < 0 or ≥ n.
//   - ErrSameQubit:      control equals target in a controlled gate.
//   - ErrDuplicateQubit: repeated index in a marginal query.
//   - ErrInvalidShots:   shots < 1 in a measurement.
//   - ErrNilSource:      nil random source in a measurement.
//   - ErrMalformedGate:  caller-supplied matrix is not 2×2.
//
// Every operation validates its inputs before touching a single
// amplitude, so a failed call leaves the register exactly as it was.
// Norm is preserved only under unitary inputs; qsim never renormalises.
package qsim
