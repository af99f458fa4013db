package transpose

import (
	"fmt"

	"github.com/cdclaxton/guitar-tab-generator/internal/domain"
)

// stepInterval is the number of frets gained when a pitch moves from string s to
// string s+1. Standard tuning is all perfect fourths except the B to G crossing.
func stepInterval(s domain.GuitarString) int {
	if s == domain.StringB {
		return 4
	}
	return 5
}

// StepDown moves a pitch to the next lower-pitched string (s -> s+1).
// The returned fret is not range-checked and may be above any fret bound.
func StepDown(s domain.GuitarString, fret int) (domain.GuitarString, int, error) {
	if s >= domain.StringLowE {
		return 0, 0, &domain.OpError{
			Op:   "transpose.step_down",
			Kind: domain.KindNoStringBelow,
			Err:  fmt.Errorf("no string below string %d", s),
		}
	}
	return s + 1, fret + stepInterval(s), nil
}

// StepUp moves a pitch to the next higher-pitched string (s -> s-1).
// The returned fret may be negative, meaning the pitch is not reachable there.
func StepUp(s domain.GuitarString, fret int) (domain.GuitarString, int, error) {
	if s <= domain.StringHighE {
		return 0, 0, &domain.OpError{
			Op:   "transpose.step_up",
			Kind: domain.KindNoStringAbove,
			Err:  fmt.Errorf("no string above string %d", s),
		}
	}
	return s - 1, fret - stepInterval(s-1), nil
}

// SameNoteDifferentString returns the fret that plays the same pitch on target.
// A negative result is returned as-is: the caller decides whether it is playable.
func SameNoteDifferentString(s domain.GuitarString, fret int, target domain.GuitarString) (int, error) {
	if !s.Valid() || !target.Valid() {
		return 0, &domain.OpError{
			Op:   "transpose.same_note",
			Kind: domain.KindInvalidString,
			Err:  fmt.Errorf("strings %d -> %d out of range", s, target),
		}
	}

	cur, f := s, fret
	var err error
	for cur != target {
		if cur < target {
			cur, f, err = StepDown(cur, f)
		} else {
			cur, f, err = StepUp(cur, f)
		}
		if err != nil {
			return 0, err
		}
	}
	return f, nil
}
