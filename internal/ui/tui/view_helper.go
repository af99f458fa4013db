package tui

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/cdclaxton/guitar-tab-generator/internal/domain"
)

func clampString(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))

	n := 0
	for _, r := range s {
		if n >= maxLen {
			break
		}
		b.WriteRune(r)
		n++
	}
	return b.String() + "…"
}

// renderDocument is the viewport content: heading, blank line, then the page.
func renderDocument(doc domain.Document) string {
	var b strings.Builder
	if doc.Heading != "" {
		b.WriteString(doc.Heading)
		b.WriteString("\n\n")
	}
	for i, l := range doc.Lines {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(strings.TrimRight(l, " "))
	}
	return b.String()
}

func offsetLabel(offset int) string {
	switch {
	case offset == 0:
		return "original"
	case offset > 0:
		return fmt.Sprintf("+%d", offset)
	default:
		return fmt.Sprintf("%d", offset)
	}
}
