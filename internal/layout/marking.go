// Package layout turns bars into fixed-width tablature text: it picks the coarsest
// timing marking for each bar, draws the bar's block and packs blocks into page rows.
package layout

import "github.com/cdclaxton/guitar-tab-generator/internal/domain"

// CompactMarking returns the coarsest marking that can place every event of the bar.
// A bar with no events uses Main.
func CompactMarking(bar domain.Bar) domain.Marking {
	timings := bar.Timings()
	for _, mk := range domain.Markings {
		d := bar.Meter().Divisor(mk)
		if allDivisible(timings, d) {
			return mk
		}
	}
	return domain.Tertiary
}

func allDivisible(timings []domain.Timing, d int) bool {
	for _, t := range timings {
		if int(t)%d != 0 {
			return false
		}
	}
	return true
}
