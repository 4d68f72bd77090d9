// SPDX-License-Identifier: MIT
// Package qsim: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the qsim
// package. All operations MUST return these sentinels and tests MUST check
// them via errors.Is. No operation should panic on user-triggered error
// conditions, and no operation may mutate the state vector before its
// validation has fully passed.

package qsim

import "errors"

var (
	// ErrInvalidSize is returned by New when the requested qubit count is
	// below one. A register without qubits has no state vector to own.
	ErrInvalidSize = errors.New("qsim: circuit must contain at least one qubit")

	// ErrQubitOutOfRange indicates a qubit index outside [0, NumQubits).
	// Public gate and query methods MUST return this, never clamp.
	ErrQubitOutOfRange = errors.New("qsim: qubit index out of range")

	// ErrSameQubit indicates that a controlled gate was asked to use one
	// qubit as both control and target.
	ErrSameQubit = errors.New("qsim: control and target qubits must differ")

	// ErrDuplicateQubit indicates a repeated qubit index in a marginal
	// probability or subset-measurement query.
	ErrDuplicateQubit = errors.New("qsim: qubit indices must be distinct")

	// ErrInvalidShots indicates a measurement was requested with fewer
	// than one shot.
	ErrInvalidShots = errors.New("qsim: shot count must be positive")

	// ErrNilSource indicates a measurement was requested without a random
	// source. Randomness is injected, never ambient, so nil is rejected.
	ErrNilSource = errors.New("qsim: random source must not be nil")

	// ErrMalformedGate indicates a caller-supplied gate matrix that is not
	// exactly 2×2.
	ErrMalformedGate = errors.New("qsim: gate matrix must be 2x2")
)
