// Package template fills {{placeholder}} expressions used in page headings.
package template

import (
	"fmt"
	"strings"

	"github.com/cdclaxton/guitar-tab-generator/internal/domain"
)

// RenderString replaces {{VAR}} placeholders with vars values.
// It returns an error if a variable is missing or a placeholder is malformed.
func RenderString(input string, vars map[string]string) (string, error) {
	if input == "" {
		return "", nil
	}

	var out strings.Builder
	rest := input
	for {
		start := strings.Index(rest, "{{")
		if start == -1 {
			out.WriteString(rest)
			return out.String(), nil
		}

		out.WriteString(rest[:start])
		rest = rest[start+2:]

		end := strings.Index(rest, "}}")
		if end == -1 {
			return "", templateErr("unclosed template expression")
		}

		key := strings.TrimSpace(rest[:end])
		if key == "" {
			return "", templateErr("empty template expression")
		}

		value, ok := vars[key]
		if !ok {
			return "", templateErr(fmt.Sprintf("missing variable %q", key))
		}

		out.WriteString(value)
		rest = rest[end+2:]
	}
}

// SongVars exposes the song fields a heading may reference.
func SongVars(sheet domain.SheetMusic) map[string]string {
	return map[string]string{
		"title":  sheet.Header.Title,
		"artist": sheet.Header.Artist,
		"key":    sheet.Key.String(),
	}
}

// Heading renders a heading template for a song. Separators left dangling by empty
// fields (e.g. "Title - " with no artist) are trimmed.
func Heading(tmpl string, sheet domain.SheetMusic) (string, error) {
	s, err := RenderString(tmpl, SongVars(sheet))
	if err != nil {
		return "", err
	}
	return strings.Trim(strings.TrimSpace(s), "-| "), nil
}

func templateErr(msg string) error {
	return &domain.OpError{
		Op:   "template.render",
		Kind: domain.KindInvalidConfig,
		Err:  fmt.Errorf("%s: %w", msg, domain.ErrInvalidConfig),
	}
}
