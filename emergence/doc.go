// Package emergence models contradiction amplification:
//
//	K(t) = C(t) · e^(λ·|δ_t|)
//
// What:
//
//   - State tracks an emergent system through time: complexity C(t),
//     contradiction magnitude |δ_t|, amplification constant λ, and the
//     history of K values.
//   - Amplifier is the stateless-per-call form: feed it (complexity,
//     contradiction) pairs and inspect the K trajectory, its peak, and
//     whether it is diverging.
//   - Simulate runs a whole trajectory with injectable C(t) and |δ_t|
//     generators (sensible defaults when nil).
//
// Why:
//
//	In standard logic a contradiction is an error to resolve. Here it is
//	creative fuel: the larger the contradiction, the harder K(t) is
//	amplified, and sustained growth of K marks emergent behavior. The
//	trinary package supplies the bookkeeping side of the same idea.
//
// Everything is deterministic: generators are injected functions, and
// the default ones are closed-form (no ambient randomness).
package emergence
