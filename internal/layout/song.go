package layout

import (
	"fmt"
	"strings"

	"github.com/cdclaxton/guitar-tab-generator/internal/domain"
)

// Options controls how a whole song is laid out on the page.
type Options struct {
	PageWidth       int
	VerticalSpacing int
	SectionSpacing  int
}

// OptionsFrom reads the layout settings of a workspace config.
func OptionsFrom(cfg domain.LayoutConfig) Options {
	return Options{
		PageWidth:       cfg.PageWidth,
		VerticalSpacing: cfg.VerticalSpacing,
		SectionSpacing:  cfg.SectionSpacing,
	}
}

// RenderSong lays out the body of a song page: a key line, then each section's name,
// its free text and its bar rows. Sections are separated by SectionSpacing blank lines.
// Title and artist belong to the page heading and are not repeated here.
func RenderSong(sheet domain.SheetMusic, opts Options) ([]string, error) {
	out := []string{"Key: " + sheet.Key.String()}
	for i, sec := range sheet.Sections {
		out = append(out, blank(opts.SectionSpacing)...)
		heading := len(out)
		if sec.Name != "" {
			out = append(out, "["+sec.Name+"]")
		}
		if text := strings.TrimRight(sec.Text, "\n"); text != "" {
			out = append(out, strings.Split(text, "\n")...)
		}
		rows, err := LayoutBars(sec.Bars, opts.PageWidth, opts.VerticalSpacing)
		if err != nil {
			return nil, fmt.Errorf("section %d %q: %w", i+1, sec.Name, err)
		}
		if len(rows) > 0 && len(out) > heading {
			out = append(out, "")
		}
		out = append(out, rows...)
	}
	return out, nil
}

func blank(n int) []string {
	if n <= 0 {
		return nil
	}
	return make([]string, n)
}
