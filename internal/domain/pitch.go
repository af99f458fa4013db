package domain

import "strings"

// PitchClass is one of the 12 semitones of the octave, counted from A.
type PitchClass int

const (
	PitchA PitchClass = iota
	PitchASharp
	PitchB
	PitchC
	PitchCSharp
	PitchD
	PitchDSharp
	PitchE
	PitchF
	PitchFSharp
	PitchG
	PitchGSharp
)

// NumPitchClasses is the number of semitones in an octave.
const NumPitchClasses = 12

var sharpNames = [NumPitchClasses]string{"A", "A#", "B", "C", "C#", "D", "D#", "E", "F", "F#", "G", "G#"}
var flatNames = [NumPitchClasses]string{"A", "Bb", "B", "C", "Db", "D", "Eb", "E", "F", "Gb", "G", "Ab"}

// ParsePitch maps a note name in sharp or flat spelling to its pitch class.
func ParsePitch(name string) (PitchClass, error) {
	n := strings.TrimSpace(name)
	for i := 0; i < NumPitchClasses; i++ {
		if sharpNames[i] == n || flatNames[i] == n {
			return PitchClass(i), nil
		}
	}
	return 0, invalid("domain.parse_pitch", KindInvalidNote, "unknown note name %q", name)
}

// IsPitchName reports whether name is one of the recognised note spellings.
func IsPitchName(name string) bool {
	_, err := ParsePitch(name)
	return err == nil
}

// Transpose returns the pitch class n semitones away (n may be negative).
func (p PitchClass) Transpose(n int) PitchClass {
	v := (int(p) + n) % NumPitchClasses
	if v < 0 {
		v += NumPitchClasses
	}
	return PitchClass(v)
}

// Name spells the pitch class with sharps, or with flats when flats is true.
func (p PitchClass) Name(flats bool) string {
	if flats {
		return flatNames[p.Transpose(0)]
	}
	return sharpNames[p.Transpose(0)]
}

func (p PitchClass) String() string { return p.Name(false) }
