package tui

import (
	"errors"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/cdclaxton/guitar-tab-generator/internal/domain"
)

var reLine = regexp.MustCompile(`(?i)\bline\s+(\d+)\b`)

// userMessage turns an error into a one-line status for the footer. Details go to the log.
func userMessage(err error) string {
	if err == nil {
		return ""
	}

	var oe *domain.OpError
	if errors.As(err, &oe) {
		switch oe.Kind {
		case domain.KindNotFound:
			if strings.Contains(oe.Op, "workspacefinder") {
				return "Workspace not found"
			}
			if strings.Contains(oe.Op, "yamlsong") {
				return "Song not found"
			}
			return "Not found"

		case domain.KindInvalidConfig:
			base := "config"
			if strings.TrimSpace(oe.Path) != "" {
				base = filepath.Base(oe.Path)
			}
			if line := extractLine(err.Error()); line != "" {
				return "Invalid YAML at " + base + " line " + line
			}
			if looksLikeYAMLProblem(err.Error()) {
				return "Invalid YAML at " + base
			}
			return "Invalid song at " + base

		case domain.KindTransposition, domain.KindNoStringAbove, domain.KindNoStringBelow, domain.KindInvalidFret:
			return "Not playable in this key: " + causeOf(oe)

		case domain.KindLayout:
			return "Cannot lay out: " + causeOf(oe)

		case domain.KindInvalidKey, domain.KindKeyQualityMismatch:
			return "Bad key: " + causeOf(oe)

		default:
			return "Unexpected error (see logs)"
		}
	}

	if looksLikeYAMLProblem(err.Error()) {
		if line := extractLine(err.Error()); line != "" {
			return "Invalid YAML line " + line
		}
		return "Invalid YAML"
	}
	return "Unexpected error (see logs)"
}

func looksLikeYAMLProblem(s string) bool {
	ls := strings.ToLower(s)
	return strings.Contains(ls, "yaml:") || strings.Contains(ls, "did not find expected") || strings.Contains(ls, "cannot unmarshal")
}

func extractLine(s string) string {
	m := reLine.FindStringSubmatch(s)
	if len(m) == 2 {
		return m[1]
	}
	return ""
}

// causeOf returns the adapter's own message without the op/kind prefix.
func causeOf(oe *domain.OpError) string {
	if oe.Err == nil {
		return string(oe.Kind)
	}
	return clampString(oe.Err.Error(), 60)
}
