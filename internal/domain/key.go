package domain

import (
	"slices"
	"strings"
)

var majorKeyNames = []string{"C", "C#", "D", "Eb", "E", "F", "F#", "G", "Ab", "A", "Bb", "B"}
var minorKeyNames = []string{"Cm", "C#m", "Dm", "Ebm", "Em", "Fm", "F#m", "Gm", "G#m", "Am", "Bbm", "Bm"}

// Key is a musical key signature: a root pitch plus major/minor quality.
type Key struct {
	name  string
	root  PitchClass
	minor bool
}

// ParseKey accepts exactly one of the 24 canonical key names (e.g. "C#", "Ebm").
func ParseKey(s string) (Key, error) {
	name := strings.TrimSpace(s)
	minor := false
	switch {
	case slices.Contains(majorKeyNames, name):
	case slices.Contains(minorKeyNames, name):
		minor = true
	default:
		return Key{}, invalid("domain.parse_key", KindInvalidKey, "unknown key %q", s)
	}

	root, err := ParsePitch(strings.TrimSuffix(name, "m"))
	if err != nil {
		return Key{}, invalid("domain.parse_key", KindInvalidKey, "unknown key %q", s)
	}
	return Key{name: name, root: root, minor: minor}, nil
}

// MustParseKey is ParseKey for package-level tables and tests.
func MustParseKey(s string) Key {
	k, err := ParseKey(s)
	if err != nil {
		panic(err)
	}
	return k
}

func (k Key) String() string         { return k.name }
func (k Key) Root() PitchClass       { return k.root }
func (k Key) IsMinor() bool          { return k.minor }
func (k Key) IsZero() bool           { return k.name == "" }
func (k Key) RootName() string       { return strings.TrimSuffix(k.name, "m") }
func (k Key) SameQuality(o Key) bool { return k.minor == o.minor }

// UsesFlats reports whether chords in this key are spelled with flats.
// Natural and sharp roots use sharp spelling.
func (k Key) UsesFlats() bool {
	return strings.HasSuffix(k.RootName(), "b")
}

// MajorKeys lists the canonical major key names in chromatic order from C.
func MajorKeys() []string { return append([]string(nil), majorKeyNames...) }

// MinorKeys lists the canonical minor key names in chromatic order from C.
func MinorKeys() []string { return append([]string(nil), minorKeyNames...) }

// AllKeys lists all 24 canonical key names, majors first.
func AllKeys() []string {
	return append(MajorKeys(), minorKeyNames...)
}

// Neighbour returns the canonical key of the same quality n semitones away.
func (k Key) Neighbour(n int) Key {
	names := majorKeyNames
	if k.minor {
		names = minorKeyNames
	}
	target := k.root.Transpose(n)
	for _, name := range names {
		kk := MustParseKey(name)
		if kk.root == target {
			return kk
		}
	}
	return k
}
