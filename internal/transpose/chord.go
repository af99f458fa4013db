// Package transpose moves chords and fretted notes from one key to another.
//
// Every function is pure: inputs are never modified and a new value graph is returned,
// so the pre-transposition song stays valid.
package transpose

import (
	"fmt"

	"github.com/cdclaxton/guitar-tab-generator/internal/domain"
)

// Keys parses both key names and checks they share a quality.
func Keys(oldKey, newKey string) (domain.Key, domain.Key, error) {
	from, err := domain.ParseKey(oldKey)
	if err != nil {
		return domain.Key{}, domain.Key{}, err
	}
	to, err := domain.ParseKey(newKey)
	if err != nil {
		return domain.Key{}, domain.Key{}, err
	}
	if !from.SameQuality(to) {
		return domain.Key{}, domain.Key{}, &domain.OpError{
			Op:   "transpose.keys",
			Kind: domain.KindKeyQualityMismatch,
			Err:  fmt.Errorf("cannot transpose between %s and %s", from, to),
		}
	}
	return from, to, nil
}

// Semitones is the shortest circular distance from old to new, in [-6, 6].
func Semitones(from, to domain.Key) int {
	d := (int(to.Root()) - int(from.Root())) % domain.NumPitchClasses
	if d < 0 {
		d += domain.NumPitchClasses
	}
	if d > 6 {
		d -= domain.NumPitchClasses
	}
	return d
}

// Chord transposes a chord between two canonical key names.
func Chord(c domain.Chord, oldKey, newKey string) (domain.Chord, error) {
	from, to, err := Keys(oldKey, newKey)
	if err != nil {
		return domain.Chord{}, err
	}
	return ChordInKeys(c, from, to)
}

// ChordInKeys transposes root and bass by the shortest distance between the keys and
// spells them to match the destination key. The symbol suffix is carried unchanged.
func ChordInKeys(c domain.Chord, from, to domain.Key) (domain.Chord, error) {
	d := Semitones(from, to)
	flats := to.UsesFlats()

	root, err := shiftName(c.Root, d, flats)
	if err != nil {
		return domain.Chord{}, err
	}

	bass := ""
	if c.HasBass() {
		bass, err = shiftName(c.Bass, d, flats)
		if err != nil {
			return domain.Chord{}, err
		}
	}

	return domain.Chord{Root: root, Symbols: c.Symbols, Bass: bass}, nil
}

func shiftName(name string, semitones int, flats bool) (string, error) {
	p, err := domain.ParsePitch(name)
	if err != nil {
		return "", err
	}
	return p.Transpose(semitones).Name(flats), nil
}
