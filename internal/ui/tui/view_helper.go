package tui

import (
	"strings"
	"unicode/utf8"
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

// renderTranscript shows the last limit exchanges, oldest first.
func renderTranscript(t Theme, lines []transcriptLine, limit int, width int) string {
	if len(lines) == 0 {
		return t.Help.Render("(no conversions yet)")
	}
	if width <= 0 {
		width = 80
	}
	if len(lines) > limit {
		lines = lines[len(lines)-limit:]
	}

	var b strings.Builder
	for i, l := range lines {
		if i > 0 {
			b.WriteString("\n")
		}

		in := t.Input
		msg := t.OK
		if !l.ok {
			msg = t.Error
		}
		if l.past {
			in, msg = t.Past, t.Past
		}

		b.WriteString(in.Render("› " + clampString(l.input, width-2)))
		b.WriteString("\n")
		b.WriteString(msg.Render("  " + clampString(l.message, width-2)))
	}
	return b.String()
}
