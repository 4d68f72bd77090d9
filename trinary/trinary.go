package trinary

// Value is a Łukasiewicz truth state. The numeric encoding is load-
// bearing: connectives are min/max/arithmetic over these integers.
type Value int

const (
	// False is the definite negative truth state (-1).
	False Value = -1
	// Unknown is the neutral truth state (0).
	Unknown Value = 0
	// True is the definite positive truth state (1).
	True Value = 1
)

// String returns the conventional label for a truth state.
func (v Value) String() string {
	switch v {
	case True:
		return "TRUE"
	case False:
		return "FALSE"
	default:
		return "UNKNOWN"
	}
}

// Not is Łukasiewicz negation: NOT a = -a.
func Not(a Value) Value { return -a }

// And is Łukasiewicz conjunction: min(a, b).
func And(a, b Value) Value {
	if a < b {
		return a
	}

	return b
}

// Or is Łukasiewicz disjunction: max(a, b).
func Or(a, b Value) Value {
	if a > b {
		return a
	}

	return b
}

// Implies is Łukasiewicz implication: clamp(1 - a + b) into [False, True].
func Implies(a, b Value) Value {
	raw := 1 - a + b
	if raw > True {
		return True
	}
	if raw < False {
		return False
	}

	return raw
}

// Equiv is equivalence: a ↔ b = (a → b) ∧ (b → a).
func Equiv(a, b Value) Value {
	return And(Implies(a, b), Implies(b, a))
}

// Xor is exclusive or in trinary, defined as the negation of Equiv.
func Xor(a, b Value) Value {
	return Not(Equiv(a, b))
}
