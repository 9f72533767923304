// Package color holds the terminal palette.
package color

import "github.com/charmbracelet/lipgloss"

// New initializes a lipgloss.Color from an ANSI code or hex value.
func New(value string) lipgloss.Color {
	return lipgloss.Color(value)
}

var (
	Red    = New("1")
	Green  = New("2")
	Yellow = New("3")
	Blue   = New("4")
	Purple = New("5")
	Cyan   = New("6")
	HiRed  = New("9")
	Gray   = New("#808080")
	Cream  = New("230")
)

// Accent is the brand color of banners and headings.
var Accent = HiRed

// Mirror status colors.
var (
	Online  = Green
	Offline = Red
	Unknown = Gray
)
