package tui

import (
	"errors"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/aalvaropc/unitconv/internal/domain"
)

var reLine = regexp.MustCompile(`(?i)\bline\s+(\d+)\b`)

// userMessage turns infra errors into a one-line toast.
func userMessage(err error) string {
	if err == nil {
		return ""
	}

	var oe *domain.OpError
	if errors.As(err, &oe) {
		switch oe.Kind {
		case domain.KindNotFound:
			if strings.Contains(oe.Op, "configfinder") {
				return "Config not found"
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
			return "Invalid config at " + base

		case domain.KindExecution:
			if strings.Contains(oe.Op, "historystore") {
				return "History not saved (see logs)"
			}
			return "Unexpected error (see logs)"

		default:
			return "Unexpected error (see logs)"
		}
	}

	return "Unexpected error (see logs)"
}

func extractLine(s string) string {
	m := reLine.FindStringSubmatch(s)
	if len(m) == 2 {
		return m[1]
	}
	return ""
}
