// SPDX-License-Identifier: GPL-3.0-or-later

package runcheck

// Validator searches for a strictly monotonic, step-bounded run that keeps
// every element of a sequence except at most margin of them.
type Validator struct {
	Rule Rule
}

// New returns a Validator using the given step bound.
func New(stepBound int) *Validator {
	return &Validator{Rule: Rule{StepBound: stepBound}}
}

// Verdict is the classification of one sequence.
type Verdict struct {
	Safe     bool
	Retained []int
	Omitted  int
}

// Validate runs the search from an Empty state. A negative margin is
// treated as 0. The returned State is only meaningful when ok is true.
func (v *Validator) Validate(seq []int, margin int) (State, bool) {
	if margin < 0 {
		margin = 0
	}
	return v.search(State{}, margin, seq)
}

// Classify validates seq and re-checks the retained values against the rule.
func (v *Validator) Classify(seq []int, margin int) Verdict {
	st, ok := v.Validate(seq, margin)
	if !ok {
		return Verdict{}
	}
	retained := st.Values()
	if !v.Rule.Holds(retained) {
		return Verdict{}
	}
	return Verdict{
		Safe:     true,
		Retained: retained,
		Omitted:  len(seq) - len(retained),
	}
}

// search extends the state with rest[0] and recurses over the whole
// remainder first. Only when that continuation fails, and margin is left,
// is rest[0] dropped and the prior state carried forward.
func (v *Validator) search(st State, margin int, rest []int) (State, bool) {
	if len(rest) == 0 {
		return st, true
	}

	item, rest := rest[0], rest[1:]

	if next, ok := st.Accept(item, v.Rule); ok {
		if res, ok := v.search(next, margin, rest); ok {
			return res, true
		}
	}

	if margin == 0 {
		return State{}, false
	}

	return v.search(st, margin-1, rest)
}
