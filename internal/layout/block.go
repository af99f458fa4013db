package layout

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cdclaxton/guitar-tab-generator/internal/domain"
)

// SlotWidth is the number of columns per ruler mark: the mark and three spacers.
const SlotWidth = 4

// Block is the drawn form of one bar. Every line has the same length.
type Block struct {
	Ruler     string
	ChordLine string
	// Tabs[0] is string 1 (high E).
	Tabs [domain.NumStrings]string
}

// Width is the column count shared by all lines of the block.
func (b Block) Width() int { return len(b.Ruler) }

// Lines returns the ruler, the chord line and the six string lines, top to bottom.
func (b Block) Lines() []string {
	out := make([]string, 0, 2+domain.NumStrings)
	out = append(out, b.Ruler, b.ChordLine)
	out = append(out, b.Tabs[:]...)
	return out
}

// BuildBlock draws a bar at the given marking. It fails with KindLayout when an event
// does not sit on a mark of that marking or when its text runs past the end of the bar.
// Text written over earlier text replaces it.
func BuildBlock(bar domain.Bar, marking domain.Marking) (Block, error) {
	meter := bar.Meter()
	div := meter.Divisor(marking)
	width := SlotWidth * meter.Sixteenths() / div

	ruler := newLine(width, ' ')
	for t := 0; t < meter.Sixteenths(); t += div {
		ruler.put(SlotWidth*t/div, rulerMark(meter, t))
	}

	chords := newLine(width, ' ')
	for _, c := range bar.Chords() {
		col, err := column(c.Timing, div, marking)
		if err != nil {
			return Block{}, err
		}
		if err := chords.write(col, c.Chord.String()); err != nil {
			return Block{}, err
		}
	}

	var tabs [domain.NumStrings]line
	for i := range tabs {
		tabs[i] = newLine(width, '-')
	}
	for _, n := range bar.Notes() {
		col, err := column(n.Timing, div, marking)
		if err != nil {
			return Block{}, err
		}
		if err := tabs[n.Fret.String-1].write(col, strconv.Itoa(n.Fret.Number)); err != nil {
			return Block{}, err
		}
	}

	b := Block{Ruler: ruler.String(), ChordLine: chords.String()}
	for i := range tabs {
		b.Tabs[i] = tabs[i].String()
	}
	return b, nil
}

func rulerMark(meter domain.Meter, t int) string {
	switch {
	case t%meter.BeatLength() == 0:
		return strconv.Itoa(t/meter.BeatLength() + 1)
	case t%2 == 0:
		return "+"
	default:
		return "."
	}
}

func column(t domain.Timing, div int, marking domain.Marking) (int, error) {
	if int(t)%div != 0 {
		return 0, &domain.OpError{
			Op:   "layout.block",
			Kind: domain.KindLayout,
			Err:  fmt.Errorf("timing %d is not on a %s mark (every %d sixteenths): %w", t, marking, div, domain.ErrLayout),
		}
	}
	return SlotWidth * int(t) / div, nil
}

type line []byte

func newLine(width int, fill byte) line {
	return line(strings.Repeat(string(fill), width))
}

func (l line) put(col int, s string) {
	copy(l[col:], s)
}

func (l line) write(col int, s string) error {
	if col+len(s) > len(l) {
		return &domain.OpError{
			Op:   "layout.block",
			Kind: domain.KindLayout,
			Err:  fmt.Errorf("%q at column %d overflows bar width %d: %w", s, col, len(l), domain.ErrLayout),
		}
	}
	l.put(col, s)
	return nil
}

func (l line) String() string { return string(l) }
