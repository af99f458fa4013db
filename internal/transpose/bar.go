package transpose

import (
	"fmt"

	"github.com/cdclaxton/guitar-tab-generator/internal/domain"
)

type options struct {
	maxFret int
}

// Option configures bar and song transposition.
type Option func(*options)

// WithMaxFret overrides the highest legal fret (default 22). Non-positive values are
// ignored and values above domain.FretCeiling are capped.
func WithMaxFret(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.maxFret = min(n, domain.FretCeiling)
		}
	}
}

func newOptions(opts []Option) options {
	o := options{maxFret: domain.MaxFret}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// DirectionalSemitones turns the shortest distance into a signed move in the requested
// direction: up is in [0,12), down is in (-12,0].
func DirectionalSemitones(from, to domain.Key, up bool) int {
	d := Semitones(from, to)
	switch {
	case up && d < 0:
		return d + domain.NumPitchClasses
	case !up && d > 0:
		return d - domain.NumPitchClasses
	default:
		return d
	}
}

// Bar transposes every chord and note of a bar. A note that falls outside [0, maxFret]
// on its own string is moved to the nearest string where the same pitch is playable.
// The result is all-or-nothing: on error no partial bar is returned.
func Bar(bar domain.Bar, oldKey, newKey string, up bool, opts ...Option) (domain.Bar, error) {
	from, to, err := Keys(oldKey, newKey)
	if err != nil {
		return domain.Bar{}, err
	}
	return BarInKeys(bar, from, to, up, opts...)
}

// BarInKeys is Bar for already-parsed keys.
func BarInKeys(bar domain.Bar, from, to domain.Key, up bool, opts ...Option) (domain.Bar, error) {
	if !from.SameQuality(to) {
		return domain.Bar{}, &domain.OpError{
			Op:   "transpose.bar",
			Kind: domain.KindKeyQualityMismatch,
			Err:  fmt.Errorf("cannot transpose between %s and %s", from, to),
		}
	}
	// Same key, no move: the bar is returned as is, even if it holds frets above maxFret.
	if from.String() == to.String() {
		return bar, nil
	}
	o := newOptions(opts)

	src := bar.Chords()
	chords := make([]domain.TimedChord, 0, len(src))
	for _, tc := range src {
		c, err := ChordInKeys(tc.Chord, from, to)
		if err != nil {
			return domain.Bar{}, err
		}
		chords = append(chords, domain.TimedChord{Timing: tc.Timing, Chord: c})
	}

	shift := DirectionalSemitones(from, to, up)
	type slot struct {
		s domain.GuitarString
		t domain.Timing
	}
	type placed struct {
		note  domain.Note
		moved bool
	}
	taken := map[slot]placed{}

	notes := make([]domain.Note, 0, len(bar.Notes()))
	for _, n := range bar.Notes() {
		f, err := relocate(n.Fret, shift, o.maxFret)
		if err != nil {
			return domain.Bar{}, err
		}
		out := domain.Note{Fret: f, Timing: n.Timing}
		moved := f.String != n.Fret.String

		// Two notes already sharing a slot in the source stay as they were; only a
		// relocation onto an occupied slot is a collision.
		key := slot{s: f.String, t: n.Timing}
		if prev, ok := taken[key]; ok && (moved || prev.moved) {
			return domain.Bar{}, &domain.OpError{
				Op:   "transpose.bar",
				Kind: domain.KindTransposition,
				Err: fmt.Errorf("notes collide on string %d at timing %d (fret %d and %d): %w",
					f.String, n.Timing, prev.note.Fret.Number, f.Number, domain.ErrTransposition),
			}
		}

		taken[key] = placed{note: out, moved: moved}
		notes = append(notes, out)
	}

	return domain.NewBar(bar.Meter(), notes, chords)
}

// relocate shifts a fret by n semitones, crossing strings one at a time toward the
// legal range when the shifted fret does not fit on its own string.
func relocate(f domain.Fret, n, maxFret int) (domain.Fret, error) {
	s, fret := f.String, f.Number+n
	inRange := func(v int) bool { return v >= domain.MinFret && v <= maxFret }

	var err error
	for !inRange(fret) {
		tooHigh := fret > maxFret
		if tooHigh {
			s, fret, err = StepUp(s, fret)
		} else {
			s, fret, err = StepDown(s, fret)
		}
		if err != nil {
			return domain.Fret{}, unreachable(f, n, maxFret, err)
		}
		// Stepping past the range on the other side means no string fits.
		if tooHigh && fret < domain.MinFret || !tooHigh && fret > maxFret {
			return domain.Fret{}, unreachable(f, n, maxFret, nil)
		}
	}
	return domain.Fret{String: s, Number: fret}, nil
}

func unreachable(f domain.Fret, n, maxFret int, cause error) error {
	msg := fmt.Errorf("fret %d on string %d shifted by %d has no playable position in [0,%d]: %w",
		f.Number, f.String, n, maxFret, domain.ErrTransposition)
	if cause != nil {
		msg = fmt.Errorf("%w (%v)", msg, cause)
	}
	return &domain.OpError{
		Op:   "transpose.note",
		Kind: domain.KindTransposition,
		Err:  msg,
	}
}
