package domain

import "strings"

// Chord is a chord symbol: root note, an opaque quality/extension suffix and an
// optional bass note for slash chords.
type Chord struct {
	Root    string
	Symbols string
	Bass    string // empty when the chord has no slash bass
}

// NewChord validates root and (optional) bass spellings.
func NewChord(root, symbols, bass string) (Chord, error) {
	if !IsPitchName(root) {
		return Chord{}, invalid("domain.new_chord", KindInvalidNote, "invalid chord root %q", root)
	}
	if bass != "" && !IsPitchName(bass) {
		return Chord{}, invalid("domain.new_chord", KindInvalidNote, "invalid chord bass %q", bass)
	}
	return Chord{Root: root, Symbols: symbols, Bass: bass}, nil
}

// ParseChord parses notation such as "C#m7", "Bbsus4", "D/F#" or "C6/9".
// The text after the last '/' is treated as a bass note only when it is a note name.
func ParseChord(s string) (Chord, error) {
	in := strings.TrimSpace(s)
	if in == "" {
		return Chord{}, invalid("domain.parse_chord", KindInvalidChord, "empty chord")
	}

	body, bass := in, ""
	if i := strings.LastIndex(in, "/"); i > 0 && IsPitchName(in[i+1:]) {
		body, bass = in[:i], in[i+1:]
	}

	if body[0] < 'A' || body[0] > 'G' {
		return Chord{}, invalid("domain.parse_chord", KindInvalidChord, "chord %q must start with a note letter", s)
	}

	root := body[:1]
	if len(body) > 1 && (body[1] == '#' || body[1] == 'b') && IsPitchName(body[:2]) {
		root = body[:2]
	}

	c, err := NewChord(root, body[len(root):], bass)
	if err != nil {
		return Chord{}, invalid("domain.parse_chord", KindInvalidChord, "chord %q: %v", s, err)
	}
	return c, nil
}

// HasBass reports whether the chord is a slash chord.
func (c Chord) HasBass() bool { return c.Bass != "" }

func (c Chord) String() string {
	if c.Bass == "" {
		return c.Root + c.Symbols
	}
	return c.Root + c.Symbols + "/" + c.Bass
}
