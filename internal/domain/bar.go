package domain

import (
	"cmp"
	"slices"
)

// Note is a single fretted, timed event.
type Note struct {
	Fret   Fret
	Timing Timing
}

// TimedChord is a chord change at an offset within a bar.
type TimedChord struct {
	Timing Timing
	Chord  Chord
}

// Bar is an immutable bar of music. Its event slices are private and copied on the
// way in and on the way out, so no caller can change a Bar after construction.
type Bar struct {
	meter  Meter
	notes  []Note
	chords []TimedChord
}

// NewBar validates every timing against the meter and every fret against [0, FretCeiling],
// and stores sorted copies of the events. The tighter playable bound (max_fret) is applied
// by the song loader and by transposition.
func NewBar(meter Meter, notes []Note, chords []TimedChord) (Bar, error) {
	if meter != FourFour && meter != SixEight {
		return Bar{}, invalid("domain.new_bar", KindInvalidMeter, "unsupported meter %d", int(meter))
	}
	for _, n := range notes {
		if err := checkTiming(meter, n.Timing); err != nil {
			return Bar{}, err
		}
		if _, err := NewFretWithin(n.Fret.String, n.Fret.Number, FretCeiling); err != nil {
			return Bar{}, err
		}
	}
	for _, c := range chords {
		if err := checkTiming(meter, c.Timing); err != nil {
			return Bar{}, err
		}
	}

	b := Bar{
		meter:  meter,
		notes:  slices.Clone(notes),
		chords: slices.Clone(chords),
	}
	slices.SortStableFunc(b.notes, func(x, y Note) int {
		if c := cmp.Compare(x.Timing, y.Timing); c != 0 {
			return c
		}
		return cmp.Compare(x.Fret.String, y.Fret.String)
	})
	slices.SortStableFunc(b.chords, func(x, y TimedChord) int {
		return cmp.Compare(x.Timing, y.Timing)
	})
	return b, nil
}

// MustNewBar is NewBar for tests and static fixtures.
func MustNewBar(meter Meter, notes []Note, chords []TimedChord) Bar {
	b, err := NewBar(meter, notes, chords)
	if err != nil {
		panic(err)
	}
	return b
}

func checkTiming(meter Meter, t Timing) error {
	if t < 0 || t > MaxTiming || int(t) >= meter.Sixteenths() {
		return invalid("domain.new_bar", KindInvalidTiming, "timing %d not valid in %s", t, meter)
	}
	return nil
}

func (b Bar) Meter() Meter { return b.meter }

// Notes returns a copy of the bar's notes ordered by timing then string.
func (b Bar) Notes() []Note { return slices.Clone(b.notes) }

// Chords returns a copy of the bar's chord changes ordered by timing.
func (b Bar) Chords() []TimedChord { return slices.Clone(b.chords) }

// IsEmpty reports whether the bar has no timed events.
func (b Bar) IsEmpty() bool { return len(b.notes) == 0 && len(b.chords) == 0 }

// Timings returns the sorted, distinct timings used by notes and chords.
func (b Bar) Timings() []Timing {
	out := make([]Timing, 0, len(b.notes)+len(b.chords))
	for _, n := range b.notes {
		out = append(out, n.Timing)
	}
	for _, c := range b.chords {
		out = append(out, c.Timing)
	}
	slices.Sort(out)
	return slices.Compact(out)
}

// Equal compares meter and event content.
func (b Bar) Equal(o Bar) bool {
	return b.meter == o.meter &&
		slices.Equal(b.notes, o.notes) &&
		slices.Equal(b.chords, o.chords)
}
