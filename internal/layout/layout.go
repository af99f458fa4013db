package layout

import (
	"fmt"
	"strings"

	"github.com/cdclaxton/guitar-tab-generator/internal/domain"
)

// prefixWidth is the width of the string labels that open every row ("E|").
const prefixWidth = 2

// RenderBar draws a bar at its compact marking, pads it by one cell on each side and
// closes it with a bar line. The ruler and chord lines are padded with spaces, the
// string lines with dashes.
func RenderBar(bar domain.Bar) ([]string, error) {
	return RenderBarAt(bar, CompactMarking(bar))
}

// RenderBarAt is RenderBar with an explicit marking.
func RenderBarAt(bar domain.Bar, marking domain.Marking) ([]string, error) {
	b, err := BuildBlock(bar, marking)
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, 2+domain.NumStrings)
	out = append(out, " "+b.Ruler+"  ", " "+b.ChordLine+"  ")
	for _, t := range b.Tabs {
		out = append(out, "-"+t+"-|")
	}
	return out, nil
}

// LayoutBars packs rendered bars into rows, left to right, in input order. A bar joins
// the current row only while the row stays strictly narrower than pageWidth; otherwise
// it opens a new row. Rows are separated by verticalSpacing blank lines.
func LayoutBars(bars []domain.Bar, pageWidth, verticalSpacing int) ([]string, error) {
	var (
		rows [][]string
		cur  []string
	)
	for i, bar := range bars {
		lines, err := RenderBar(bar)
		if err != nil {
			return nil, fmt.Errorf("bar %d: %w", i+1, err)
		}
		if cur != nil && len(cur[0])+len(lines[0]) < pageWidth {
			for j := range cur {
				cur[j] += lines[j]
			}
			continue
		}
		if cur != nil {
			rows = append(rows, cur)
		}
		cur = newRow(lines)
	}
	if cur != nil {
		rows = append(rows, cur)
	}
	return stack(rows, verticalSpacing), nil
}

func newRow(lines []string) []string {
	row := make([]string, len(lines))
	row[0] = strings.Repeat(" ", prefixWidth) + lines[0]
	row[1] = strings.Repeat(" ", prefixWidth) + lines[1]
	for s := domain.StringHighE; s <= domain.StringLowE; s++ {
		i := int(s) + 1
		row[i] = s.Name() + "|" + lines[i]
	}
	return row
}

func stack(rows [][]string, spacing int) []string {
	var out []string
	for i, row := range rows {
		if i > 0 {
			for range spacing {
				out = append(out, "")
			}
		}
		out = append(out, row...)
	}
	return out
}
