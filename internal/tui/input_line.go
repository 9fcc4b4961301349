package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
)

// Text inputs always render as a single visual line; stray newlines in the
// bubble's view would otherwise wrap and look like inserted rows while typing.
var inputLineFlatten = strings.NewReplacer("\n", " ", "\r", " ")

// renderInputLine lays out a text input field sized from the terminal width,
// leaving room for the row prefix and keeping the field readable on both
// narrow and very wide windows.
func renderInputLine(termW int, inputView string) string {
	bodyW := termW - 12
	if bodyW < 20 {
		bodyW = 20
	}
	if bodyW > 64 {
		bodyW = 64
	}

	line := lipgloss.PlaceHorizontal(
		bodyW,
		lipgloss.Left,
		" "+inputLineFlatten.Replace(inputView)+" ",
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceBackground(colorInputBg),
	)
	if xansi.StringWidth(line) > bodyW {
		// Never exceed the body width; terminate ANSI styling to prevent bleed.
		line = xansi.Cut(line, 0, bodyW) + "\x1b[0m"
	}
	return line
}
