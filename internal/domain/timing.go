package domain

import (
	"fmt"
	"strings"
)

// Timing is a sixteenth-note offset within a bar.
type Timing int

// MaxTiming is the last sixteenth of a 4/4 bar.
const MaxTiming Timing = 15

// NewTiming validates 0 <= v <= 15.
func NewTiming(v int) (Timing, error) {
	if v < 0 || v > int(MaxTiming) {
		return 0, invalid("domain.new_timing", KindInvalidTiming, "timing %d out of range [0,%d]", v, MaxTiming)
	}
	return Timing(v), nil
}

// Marking is the timing resolution used to draw a bar.
type Marking int

const (
	// Main marks beats only (quarter notes in 4/4).
	Main Marking = iota
	// Secondary adds eighth-note marks.
	Secondary
	// Tertiary adds sixteenth-note marks.
	Tertiary
)

// Markings lists every marking from coarsest to finest.
var Markings = []Marking{Main, Secondary, Tertiary}

func (m Marking) String() string {
	switch m {
	case Main:
		return "main"
	case Secondary:
		return "secondary"
	case Tertiary:
		return "tertiary"
	default:
		return fmt.Sprintf("marking(%d)", int(m))
	}
}

// Meter is one of the two supported time signatures.
type Meter int

const (
	FourFour Meter = iota
	SixEight
)

// ParseMeter accepts "4/4" or "6/8"; an empty string means 4/4.
func ParseMeter(s string) (Meter, error) {
	switch strings.TrimSpace(s) {
	case "", "4/4":
		return FourFour, nil
	case "6/8":
		return SixEight, nil
	default:
		return 0, invalid("domain.parse_meter", KindInvalidMeter, "unsupported time signature %q (expected 4/4|6/8)", s)
	}
}

func (m Meter) String() string {
	if m == SixEight {
		return "6/8"
	}
	return "4/4"
}

// Sixteenths is the bar length in sixteenth notes.
func (m Meter) Sixteenths() int {
	if m == SixEight {
		return 12
	}
	return 16
}

// BeatLength is the length of one counted beat in sixteenths
// (a quarter in 4/4, a dotted quarter in 6/8).
func (m Meter) BeatLength() int {
	if m == SixEight {
		return 6
	}
	return 4
}

// Divisor is the number of sixteenths between two ruler marks at marking mk.
func (m Meter) Divisor(mk Marking) int {
	switch mk {
	case Main:
		return m.BeatLength()
	case Secondary:
		return 2
	default:
		return 1
	}
}

// Numerator and Denominator spell the time signature for MIDI meta events.
func (m Meter) Numerator() uint8 {
	if m == SixEight {
		return 6
	}
	return 4
}

func (m Meter) Denominator() uint8 {
	if m == SixEight {
		return 8
	}
	return 4
}
