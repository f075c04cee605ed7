// SPDX-License-Identifier: GPL-3.0-or-later

package runcheck

import "math"

// DefaultStepBound is the largest absolute difference allowed between two
// adjacent retained values.
const DefaultStepBound = 3

// Direction is the ordering a run is locked into by its first two values.
type Direction uint8

const (
	Undetermined Direction = iota
	Increasing
	Decreasing
)

func (d Direction) String() string {
	switch d {
	case Increasing:
		return "increasing"
	case Decreasing:
		return "decreasing"
	default:
		return "undetermined"
	}
}

// Rule decides whether two adjacent values may follow each other in a run.
type Rule struct {
	StepBound int
}

// DefaultRule returns a Rule using DefaultStepBound.
func DefaultRule() Rule {
	return Rule{StepBound: DefaultStepBound}
}

// Compatible reports whether next may follow prev in a run going in dir.
// An Undetermined direction accepts any strict, bounded step.
func (r Rule) Compatible(prev, next int, dir Direction) bool {
	got := r.DirectionOf(prev, next)
	if got == Undetermined {
		return false
	}
	return dir == Undetermined || dir == got
}

// DirectionOf returns the direction the pair (prev, next) establishes, or
// Undetermined if the pair is equal or the step exceeds the bound.
func (r Rule) DirectionOf(prev, next int) Direction {
	switch {
	case next > prev && r.within(prev, next):
		return Increasing
	case next < prev && r.within(next, prev):
		return Decreasing
	default:
		return Undetermined
	}
}

// within reports whether hi-lo <= StepBound for lo < hi. It never computes
// hi-lo, which overflows for values far apart.
func (r Rule) within(lo, hi int) bool {
	if r.StepBound < 0 {
		return false
	}
	if lo > math.MaxInt-r.StepBound {
		return true
	}
	return hi <= lo+r.StepBound
}

// Holds reports whether values form a single strictly monotonic run with
// every step within the bound. Fewer than two values always hold.
func (r Rule) Holds(values []int) bool {
	if len(values) < 2 {
		return true
	}
	dir := r.DirectionOf(values[0], values[1])
	if dir == Undetermined {
		return false
	}
	for i := 2; i < len(values); i++ {
		if !r.Compatible(values[i-1], values[i], dir) {
			return false
		}
	}
	return true
}
