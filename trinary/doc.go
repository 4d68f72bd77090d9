// Package trinary implements Łukasiewicz three-valued logic and a small
// paraconsistent reasoner on top of it.
//
// What:
//
//   - Value is a truth state: True (1), Unknown (0), False (-1).
//   - Not/And/Or/Implies/Equiv/Xor are the full Łukasiewicz connectives
//     (negation = -a, conjunction = min, disjunction = max,
//     implication = clamp(1 - a + b)).
//   - Proposition carries a statement, its truth state, a confidence in
//     [0,1], and its accumulated evidence and contradictions.
//   - Reasoner stores propositions and PRESERVES contradictions rather
//     than resolving them: asserting TRUE over a prior FALSE records a
//     contradiction and downgrades confidence instead of erroring.
//
// Why:
//
//   - Epistemic bookkeeping: model claims that are not yet decided.
//   - Paraconsistency: contradictions are data, not errors — they can
//     be listed, quarantined, and fed to downstream models (see the
//     emergence package, which amplifies contradiction magnitudes).
//
// Errors:
//
//   - ErrUnknownOp: Evaluate was given an operator it does not know.
//
// All operations are synchronous and deterministic; a Reasoner is a
// plain in-memory store with no locking (single-owner use, like every
// qlab engine).
package trinary
