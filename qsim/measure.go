// SPDX-License-Identifier: MIT
// Package qsim: measurement sampling.
// Measurement here is non-destructive: it samples from the frozen state
// vector and never collapses it, so repeated calls with the same seeded
// source reproduce the same outcome sequence ("measure many times on
// independently prepared identical states" semantics).

package qsim

import "sort"

// Source supplies uniform random numbers in [0, 1). *math/rand.Rand
// satisfies it; tests inject fixed sequences for exact reproducibility.
type Source interface {
	Float64() float64
}

// MeasurementResult reports sampled classical outcomes.
//
// Counts maps every possible bit string of the measured qubits to the
// number of times it was observed; outcomes that were never drawn are
// present with count 0, and counts sum to the shot count. Outcome is
// the bit string of the final shot — for a single-shot measurement it
// is the sampled outcome itself.
type MeasurementResult struct {
	Counts  map[string]int
	Outcome string
}

// TotalShots returns the total number of measurement shots.
func (r MeasurementResult) TotalShots() int {
	var total int
	for _, n := range r.Counts {
		total += n
	}

	return total
}

// MostLikely returns the most frequently observed bit string.
// Ties resolve to the lexicographically smallest string, which for
// fixed-width binary keys is also the lowest basis index.
func (r MeasurementResult) MostLikely() string {
	var best string
	bestCount := -1
	for key, n := range r.Counts {
		if n > bestCount || (n == bestCount && key < best) {
			best, bestCount = key, n
		}
	}

	return best
}

// Measure samples the full register `shots` times by inverse-CDF
// sampling: each shot draws u ∈ [0,1) from src and selects the first
// basis index whose cumulative probability exceeds u. The state vector
// is read, never mutated.
// Returns ErrNilSource when src is nil, ErrInvalidShots when shots < 1.
func (c *Circuit) Measure(src Source, shots int) (MeasurementResult, error) {
	return c.MeasureQubits(src, shots)
}

// MeasureQubits samples the marginal distribution over the given
// qubits (all of them, in register order, when none are given) `shots`
// times. Indices must be valid and distinct. Like Measure, it never
// mutates the state vector.
func (c *Circuit) MeasureQubits(src Source, shots int, qubits ...int) (MeasurementResult, error) {
	if src == nil {
		return MeasurementResult{}, ErrNilSource
	}
	if shots < 1 {
		return MeasurementResult{}, ErrInvalidShots
	}

	dist, err := c.MarginalProbabilities(qubits...)
	if err != nil {
		return MeasurementResult{}, err
	}

	// Fixed-width binary keys sort lexicographically in index order,
	// which fixes the CDF walk order.
	outcomes := make([]string, 0, len(dist))
	for key := range dist {
		outcomes = append(outcomes, key)
	}
	sort.Strings(outcomes)

	probs := make([]float64, len(outcomes))
	counts := make(map[string]int, len(outcomes))
	for i, key := range outcomes {
		probs[i] = dist[key]
		counts[key] = 0
	}

	var last string
	for shot := 0; shot < shots; shot++ {
		last = outcomes[sampleIndex(probs, src.Float64())]
		counts[last]++
	}

	return MeasurementResult{Counts: counts, Outcome: last}, nil
}

// sampleIndex walks the cumulative distribution in index order and
// returns the first index whose cumulative probability exceeds u.
// When rounding leaves u beyond the final cumulative sum, the last
// index with nonzero probability is returned, so a (numerically) zero
// outcome is never produced.
func sampleIndex(probs []float64, u float64) int {
	var cum float64
	lastNonZero := 0
	for i, p := range probs {
		if p > 0 {
			lastNonZero = i
		}
		cum += p
		if u < cum {
			return i
		}
	}

	return lastNonZero
}
