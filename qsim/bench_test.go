package qsim_test

import (
	"math/rand"
	"testing"

	"github.com/blackroad/qlab/qsim"
)

// benchmarkApply is a helper that applies g to qubit 0 of an n-qubit
// register b.N times. It resets the timer before entering the loop and
// fails on unexpected errors.
func benchmarkApply(b *testing.B, n int, g qsim.Gate) {
	c, err := qsim.New(n)
	if err != nil {
		b.Fatalf("New failed: %v", err)
	}

	b.ResetTimer() // ignore setup time
	for i := 0; i < b.N; i++ {
		if err := c.Apply(g, 0); err != nil {
			b.Fatalf("Apply failed: %v", err)
		}
	}
}

// BenchmarkApply_Hadamard10 benchmarks a Hadamard on a 10-qubit register (1024 amplitudes).
func BenchmarkApply_Hadamard10(b *testing.B) {
	benchmarkApply(b, 10, qsim.HGate())
}

// BenchmarkApply_Hadamard16 benchmarks a Hadamard on a 16-qubit register (65536 amplitudes).
func BenchmarkApply_Hadamard16(b *testing.B) {
	benchmarkApply(b, 16, qsim.HGate())
}

// BenchmarkApply_PauliX16 benchmarks a Pauli-X on a 16-qubit register.
func BenchmarkApply_PauliX16(b *testing.B) {
	benchmarkApply(b, 16, qsim.XGate())
}

// BenchmarkCNOT_16 benchmarks a controlled-NOT on a 16-qubit register.
func BenchmarkCNOT_16(b *testing.B) {
	c, err := qsim.New(16)
	if err != nil {
		b.Fatalf("New failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := c.CNOT(0, 15); err != nil {
			b.Fatalf("CNOT failed: %v", err)
		}
	}
}

// BenchmarkMeasure_Shots1000 benchmarks 1000-shot sampling of an
// 8-qubit register in full superposition.
func BenchmarkMeasure_Shots1000(b *testing.B) {
	c, err := qsim.New(8)
	if err != nil {
		b.Fatalf("New failed: %v", err)
	}
	for q := 0; q < 8; q++ {
		if err := c.Hadamard(q); err != nil {
			b.Fatalf("Hadamard failed: %v", err)
		}
	}
	src := rand.New(rand.NewSource(1))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := c.Measure(src, 1000); err != nil {
			b.Fatalf("Measure failed: %v", err)
		}
	}
}
