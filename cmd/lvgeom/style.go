// SPDX-License-Identifier: MIT

package main

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Palette.
var (
	colorTitle = lipgloss.Color("#2CD7C7")
	colorLabel = lipgloss.Color("#20B9B4")
	colorFrame = lipgloss.Color("#2C4A54")
	colorOK    = lipgloss.Color("#2CD7C7")
	colorWarn  = lipgloss.Color("#F4D03F")
	colorError = lipgloss.Color("#E74C3C")
)

// styles renders CLI output. Styling is disabled when the writer is not a
// terminal, so redirected output stays plain text.
type styles struct {
	enabled bool

	title lipgloss.Style
	label lipgloss.Style
	ok    lipgloss.Style
	warn  lipgloss.Style
	bad   lipgloss.Style
	box   lipgloss.Style
}

func newStyles(w io.Writer) styles {
	f, isFile := w.(*os.File)
	enabled := isFile && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))

	return styles{
		enabled: enabled,
		title:   lipgloss.NewStyle().Bold(true).Foreground(colorTitle),
		label:   lipgloss.NewStyle().Foreground(colorLabel),
		ok:      lipgloss.NewStyle().Bold(true).Foreground(colorOK),
		warn:    lipgloss.NewStyle().Foreground(colorWarn),
		bad:     lipgloss.NewStyle().Bold(true).Foreground(colorError),
		box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorFrame).
			Padding(0, 1),
	}
}

func (s styles) render(st lipgloss.Style, text string) string {
	if !s.enabled {
		return text
	}

	return st.Render(text)
}

func (s styles) Title(text string) string { return s.render(s.title, text) }
func (s styles) Label(text string) string { return s.render(s.label, text) }
func (s styles) OK(text string) string    { return s.render(s.ok, text) }
func (s styles) Warn(text string) string  { return s.render(s.warn, text) }
func (s styles) Bad(text string) string   { return s.render(s.bad, text) }
func (s styles) Box(text string) string   { return s.render(s.box, text) }
