// Package qlab is an in-memory laboratory for small quantum and
// epistemic experiments — a dense state-vector circuit simulator plus
// the trinary-logic and emergence models that grew up around it.
//
// 🚀 What is qlab?
//
//	A compact, deterministic library that brings together:
//		• Quantum register: complex amplitudes, unitary gates, controlled ops
//		• Probability queries: exact |amplitude|² distributions per bit string
//		• Measurement: seeded, repeatable inverse-CDF sampling with shot counts
//		• Trinary logic: full Łukasiewicz three-valued connectives
//		• Paraconsistent reasoning: contradictions are data, not errors
//		• Emergence model: contradiction amplification K(t) = C(t)·e^(λ|δ_t|)
//
// ✨ Why choose qlab?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Deterministic – injected randomness, no global state, reproducible runs
//   - Pure Go – no cgo, no hidden deps
//   - Honest numerics – sentinel errors instead of silent clamping
//
// Under the hood, everything is organized under three subpackages:
//
//	qsim/      — quantum register & circuit engine (gates, probabilities, sampling)
//	trinary/   — Łukasiewicz three-valued logic & paraconsistent reasoner
//	emergence/ —
//
// Quick ASCII example (Bell state):
//
//	    |0⟩ ──H──●──
//	             │
//	    |0⟩ ─────⊕──
//
//	Hadamard on qubit 0 then CNOT(0,1) leaves only "00" and "11" with
//	probability ½ each — outcomes are perfectly correlated, never "01"/"10".
//
// Dive into each package's doc.go for the full contract, and examples/
// for runnable walkthroughs.
//
//	go get github.com/blackroad/qlab/qsim
package qlab
