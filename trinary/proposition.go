package trinary

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnknownOp indicates an operator Evaluate does not recognise.
var ErrUnknownOp = errors.New("trinary: unknown operator")

// Op selects a connective for Reasoner.Evaluate.
type Op int

const (
	// OpNot evaluates NOT a (the second statement is ignored).
	OpNot Op = iota
	// OpAnd evaluates a AND b.
	OpAnd
	// OpOr evaluates a OR b.
	OpOr
	// OpImplies evaluates a IMPLIES b.
	OpImplies
)

// confidencePenalty is subtracted from a proposition's confidence when
// a contradiction hits a decided truth state.
const confidencePenalty = 0.3

// Proposition is a statement with a truth state, a confidence in [0,1],
// and the evidence and contradictions recorded against it.
type Proposition struct {
	Statement      string
	Truth          Value
	Confidence     float64
	Evidence       []string
	Contradictions []string
}

// NewProposition returns an undecided proposition with confidence 0.5.
func NewProposition(statement string) *Proposition {
	return &Proposition{Statement: statement, Truth: Unknown, Confidence: 0.5}
}

// Label returns the truth state's conventional name.
func (p *Proposition) Label() string { return p.Truth.String() }

// AssertTrue decides the proposition TRUE with the given confidence,
// recording evidence when non-empty.
func (p *Proposition) AssertTrue(confidence float64, evidence string) {
	p.Truth = True
	p.Confidence = confidence
	if evidence != "" {
		p.Evidence = append(p.Evidence, evidence)
	}
}

// AssertFalse decides the proposition FALSE with the given confidence,
// recording evidence when non-empty.
func (p *Proposition) AssertFalse(confidence float64, evidence string) {
	p.Truth = False
	p.Confidence = confidence
	if evidence != "" {
		p.Evidence = append(p.Evidence, evidence)
	}
}

// Contradict records a contradicting claim. A decided proposition also
// loses confidencePenalty of its confidence (floored at 0); an Unknown
// one keeps its confidence — there was nothing definite to undermine.
func (p *Proposition) Contradict(claim string) {
	p.Contradictions = append(p.Contradictions, claim)
	if p.Truth != Unknown {
		p.Confidence -= confidencePenalty
		if p.Confidence < 0 {
			p.Confidence = 0
		}
	}
}

// Quarantine resets the proposition to Unknown with zero confidence,
// flagging it for review.
func (p *Proposition) Quarantine() {
	p.Truth = Unknown
	p.Confidence = 0
}

// String renders the proposition for debugging.
func (p *Proposition) String() string {
	return fmt.Sprintf("Proposition(%q, %s, conf=%.2f)", p.Statement, p.Label(), p.Confidence)
}

// Summary aggregates a Reasoner's proposition store.
type Summary struct {
	Total        int
	True         int
	Unknown      int
	False        int
	Contradicted int
}

// Reasoner is a paraconsistent proposition store: asserting a statement
// against a contrary prior records a contradiction instead of failing.
type Reasoner struct {
	props map[string]*Proposition
}

// NewReasoner returns an empty reasoner.
func NewReasoner() *Reasoner {
	return &Reasoner{props: make(map[string]*Proposition)}
}

// AssertTrue asserts statement TRUE. A prior FALSE verdict is recorded
// as a contradiction on the proposition before the new verdict lands.
func (r *Reasoner) AssertTrue(statement string, confidence float64, evidence string) *Proposition {
	p := r.getOrCreate(statement)
	if p.Truth == False {
		p.Contradict(fmt.Sprintf("previously FALSE, now asserted TRUE (conf=%.2f)", confidence))
	}
	p.AssertTrue(confidence, evidence)

	return p
}

// AssertFalse asserts statement FALSE, recording a contradiction over a
// prior TRUE verdict.
func (r *Reasoner) AssertFalse(statement string, confidence float64, evidence string) *Proposition {
	p := r.getOrCreate(statement)
	if p.Truth == True {
		p.Contradict(fmt.Sprintf("previously TRUE, now asserted FALSE (conf=%.2f)", confidence))
	}
	p.AssertFalse(confidence, evidence)

	return p
}

// Query returns the stored proposition for statement, or a fresh
// undecided one (not added to the store) when it was never asserted.
func (r *Reasoner) Query(statement string) *Proposition {
	if p, ok := r.props[statement]; ok {
		return p
	}

	return NewProposition(statement)
}

// Contradictions lists every proposition with at least one recorded
// contradiction, ordered by statement for determinism.
func (r *Reasoner) Contradictions() []*Proposition {
	var out []*Proposition
	for _, p := range r.props {
		if len(p.Contradictions) > 0 {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Statement < out[j].Statement })

	return out
}

// QuarantineContradicted quarantines every contradicted proposition and
// returns their statements, ordered by statement.
func (r *Reasoner) QuarantineContradicted() []string {
	var quarantined []string
	for _, p := range r.Contradictions() {
		p.Quarantine()
		quarantined = append(quarantined, p.Statement)
	}

	return quarantined
}

// Evaluate applies op to the truth states of the named propositions.
// Unasserted statements evaluate as Unknown. The second statement is
// ignored for OpNot. Returns ErrUnknownOp for an unrecognised operator.
func (r *Reasoner) Evaluate(aStatement string, op Op, bStatement string) (Value, error) {
	a := r.Query(aStatement).Truth
	b := r.Query(bStatement).Truth

	switch op {
	case OpNot:
		return Not(a), nil
	case OpAnd:
		return And(a, b), nil
	case OpOr:
		return Or(a, b), nil
	case OpImplies:
		return Implies(a, b), nil
	default:
		return Unknown, ErrUnknownOp
	}
}

// Summary counts propositions per truth state plus contradicted ones.
func (r *Reasoner) Summary() Summary {
	s := Summary{Total: len(r.props)}
	for _, p := range r.props {
		switch p.Truth {
		case True:
			s.True++
		case False:
			s.False++
		default:
			s.Unknown++
		}
		if len(p.Contradictions) > 0 {
			s.Contradicted++
		}
	}

	return s
}

// getOrCreate returns the stored proposition, creating it on first use.
func (r *Reasoner) getOrCreate(statement string) *Proposition {
	if p, ok := r.props[statement]; ok {
		return p
	}
	p := NewProposition(statement)
	r.props[statement] = p

	return p
}
