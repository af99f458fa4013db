package domain

// GuitarString numbers the strings of a standard-tuned guitar; 1 is the high E.
type GuitarString int

const (
	StringHighE GuitarString = 1
	StringB     GuitarString = 2
	StringG     GuitarString = 3
	StringD     GuitarString = 4
	StringA     GuitarString = 5
	StringLowE  GuitarString = 6
)

const (
	NumStrings = 6
	MinFret    = 0
	MaxFret    = 22
	// FretCeiling bounds every fret a Bar may hold, whatever max_fret is configured.
	FretCeiling = 36
)

var stringNames = [NumStrings]string{"E", "B", "G", "D", "A", "E"}

// Valid reports whether s is in [1,6].
func (s GuitarString) Valid() bool { return s >= StringHighE && s <= StringLowE }

// Name is the open-string note label used at the start of a tab line.
func (s GuitarString) Name() string {
	if !s.Valid() {
		return "?"
	}
	return stringNames[s-1]
}

// Fret is a (string, fret number) position on the neck.
type Fret struct {
	String GuitarString
	Number int
}

// NewFret validates string ∈ [1,6] and fret ∈ [0,22].
func NewFret(s GuitarString, n int) (Fret, error) {
	return NewFretWithin(s, n, MaxFret)
}

// NewFretWithin is NewFret with a caller-supplied upper fret bound.
func NewFretWithin(s GuitarString, n, maxFret int) (Fret, error) {
	if !s.Valid() {
		return Fret{}, invalid("domain.new_fret", KindInvalidString, "string %d out of range [1,%d]", s, NumStrings)
	}
	if n < MinFret || n > maxFret {
		return Fret{}, invalid("domain.new_fret", KindInvalidFret, "fret %d out of range [%d,%d]", n, MinFret, maxFret)
	}
	return Fret{String: s, Number: n}, nil
}
