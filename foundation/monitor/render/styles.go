// File: styles.go
// Title: Usage Styles
// Description: Terminal colors for the usage listing.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial implementation

package render

import (
	"github.com/charmbracelet/lipgloss"
)

// Colors
var (
	colorPrimary   = lipgloss.Color("#7C3AED")
	colorSecondary = lipgloss.Color("#10B981")
	colorAccent    = lipgloss.Color("#F59E0B")
	colorError     = lipgloss.Color("#EF4444")
)

// Styles
var (
	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(colorPrimary)
	typeStyle    = lipgloss.NewStyle().Foreground(colorSecondary)
	accessStyle  = lipgloss.NewStyle().Foreground(colorAccent)
	defaultStyle = lipgloss.NewStyle().Foreground(colorError)
)

// palette applies styles to fragments of the usage text
type palette struct {
	heading func(string) string
	typ     func(string) string
	access  func(string) string
	value   func(string) string
}

func plain(s string) string { return s }

var (
	plainPalette = palette{heading: plain, typ: plain, access: plain, value: plain}
	colorPalette = palette{
		heading: func(s string) string { return headingStyle.Render(s) },
		typ:     func(s string) string { return typeStyle.Render(s) },
		access:  func(s string) string { return accessStyle.Render(s) },
		value:   func(s string) string { return defaultStyle.Render(s) },
	}
)

func (r *Renderer) palette() palette {
	if r.Color {
		return colorPalette
	}
	return plainPalette
}
