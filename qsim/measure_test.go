package qsim_test

import (
	"math/rand"
	"testing"

	"github.com/blackroad/qlab/qsim"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedSource replays a fixed sequence of uniforms, wrapping around.
type fixedSource struct {
	vals []float64
	next int
}

func (s *fixedSource) Float64() float64 {
	v := s.vals[s.next%len(s.vals)]
	s.next++

	return v
}

// bell returns a fresh 2-qubit circuit in the (|00⟩+|11⟩)/√2 state.
func bell(t *testing.T) *qsim.Circuit {
	t.Helper()
	c, err := qsim.New(2)
	require.NoError(t, err)
	require.NoError(t, c.Hadamard(0))
	require.NoError(t, c.CNOT(0, 1))

	return c
}

// TestMeasure_InvalidShots rejects shot counts below one.
func TestMeasure_InvalidShots(t *testing.T) {
	c, err := qsim.New(1)
	require.NoError(t, err)

	for _, shots := range []int{0, -1, -100} {
		_, err := c.Measure(rand.New(rand.NewSource(1)), shots)
		assert.ErrorIs(t, err, qsim.ErrInvalidShots, "shots=%d", shots)
	}
}

// TestMeasure_NilSource rejects a missing random source.
func TestMeasure_NilSource(t *testing.T) {
	c, err := qsim.New(1)
	require.NoError(t, err)

	_, err = c.Measure(nil, 1)
	assert.ErrorIs(t, err, qsim.ErrNilSource)
}

// TestMeasure_DeterministicState returns the certain outcome for every
// shot regardless of the random source.
func TestMeasure_DeterministicState(t *testing.T) {
	c, err := qsim.New(1)
	require.NoError(t, err)
	require.NoError(t, c.PauliX(0))

	res, err := c.Measure(rand.New(rand.NewSource(99)), 25)
	require.NoError(t, err)
	assert.Equal(t, 25, res.Counts["1"])
	assert.Equal(t, 0, res.Counts["0"])
	assert.Equal(t, "1", res.Outcome)
	assert.Equal(t, 25, res.TotalShots())
	assert.Equal(t, "1", res.MostLikely())
}

// TestMeasure_SingleShotCDFWalk pins the inverse-CDF walk on the Bell
// state: u below 0.5 selects "00", u above selects "11".
func TestMeasure_SingleShotCDFWalk(t *testing.T) {
	c := bell(t)

	res, err := c.Measure(&fixedSource{vals: []float64{0.2}}, 1)
	require.NoError(t, err)
	assert.Equal(t, "00", res.Outcome)

	res, err = c.Measure(&fixedSource{vals: []float64{0.8}}, 1)
	require.NoError(t, err)
	assert.Equal(t, "11", res.Outcome)

	// u beyond the cumulative mass (rounding edge) still lands on a
	// nonzero-probability outcome.
	res, err = c.Measure(&fixedSource{vals: []float64{0.9999999999999999}}, 1)
	require.NoError(t, err)
	assert.Equal(t, "11", res.Outcome)
}

// TestMeasure_BellStatistics draws 10000 seeded shots from the Bell
// state: roughly 50/50 between "00" and "11", exactly zero elsewhere.
func TestMeasure_BellStatistics(t *testing.T) {
	c := bell(t)

	const shots = 10000
	res, err := c.Measure(rand.New(rand.NewSource(42)), shots)
	require.NoError(t, err)

	assert.Equal(t, 0, res.Counts["01"], `"01" must never occur`)
	assert.Equal(t, 0, res.Counts["10"], `"10" must never occur`)
	assert.Equal(t, shots, res.Counts["00"]+res.Counts["11"])
	assert.InDelta(t, shots/2, res.Counts["00"], shots/20, "roughly half the shots")
	assert.InDelta(t, shots/2, res.Counts["11"], shots/20, "roughly half the shots")
}

// TestMeasure_DoesNotCollapse verifies measurement is repeatable
// sampling over a frozen vector: the state is unchanged and an
// identically seeded source reproduces identical counts.
func TestMeasure_DoesNotCollapse(t *testing.T) {
	c := bell(t)
	before := c.Amplitudes()

	first, err := c.Measure(rand.New(rand.NewSource(7)), 500)
	require.NoError(t, err)
	assert.Equal(t, before, c.Amplitudes(), "measurement must not mutate the vector")

	second, err := c.Measure(rand.New(rand.NewSource(7)), 500)
	require.NoError(t, err)
	assert.Equal(t, first.Counts, second.Counts, "same seed, same counts")
	assert.Equal(t, first.Outcome, second.Outcome)
}

// TestMeasure_CountsIncludeZeroOutcomes checks every possible outcome
// appears in Counts, observed or not, and counts sum to shots.
func TestMeasure_CountsIncludeZeroOutcomes(t *testing.T) {
	c := bell(t)

	res, err := c.Measure(rand.New(rand.NewSource(3)), 10)
	require.NoError(t, err)
	assert.Len(t, res.Counts, 4)
	assert.Contains(t, res.Counts, "01")
	assert.Contains(t, res.Counts, "10")
	assert.Equal(t, 10, res.TotalShots())
}

// TestMeasureQubits_Subset samples the marginal of one Bell qubit: keys
// are single bits and the split is roughly even.
func TestMeasureQubits_Subset(t *testing.T) {
	c := bell(t)

	const shots = 1000
	res, err := c.MeasureQubits(rand.New(rand.NewSource(11)), shots, 0)
	require.NoError(t, err)
	assert.Len(t, res.Counts, 2)
	assert.Equal(t, shots, res.Counts["0"]+res.Counts["1"])
	assert.InDelta(t, shots/2, res.Counts["0"], shots/10)
}

// TestMeasureQubits_BadInput propagates qubit validation errors.
func TestMeasureQubits_BadInput(t *testing.T) {
	c := bell(t)
	src := rand.New(rand.NewSource(1))

	_, err := c.MeasureQubits(src, 1, 0, 0)
	assert.ErrorIs(t, err, qsim.ErrDuplicateQubit)

	_, err = c.MeasureQubits(src, 1, 9)
	assert.ErrorIs(t, err, qsim.ErrQubitOutOfRange)
}

// TestMeasurementResult_MostLikely pins the lexicographic tie-break.
func TestMeasurementResult_MostLikely(t *testing.T) {
	res := qsim.MeasurementResult{Counts: map[string]int{
		"00": 3,
		"01": 1,
		"10": 0,
		"11": 3,
	}}
	assert.Equal(t, "00", res.MostLikely(), "ties resolve to the smallest bit string")
	assert.Equal(t, 7, res.TotalShots())
}
