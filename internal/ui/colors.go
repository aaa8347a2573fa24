package ui

import (
	"github.com/charmbracelet/lipgloss"
)

var styles = NewPalette("#7D56F4", "#04B575", "#FF0000", "#FFA500", "#626262")

// struct Palette is a simple stylesheet built with named [lipgloss.Style] fields
type Palette struct {
	title         lipgloss.Style
	ok            lipgloss.Style
	err           lipgloss.Style
	warn          lipgloss.Style
	help          lipgloss.Style
	bubble        lipgloss.Style
	bubbleFocused lipgloss.Style
	card          lipgloss.Style
	cardFocused   lipgloss.Style
	positive      lipgloss.Color
	negative      lipgloss.Color
}

// NewPalette builds a [Palette] from title, success, error, warning and help colors.
//
// Bubbles use the title color; pulses use the success and error colors.
func NewPalette(t, s, e, w, h string) *Palette {
	return &Palette{
		title:         NewBold(t).MarginBottom(1),
		ok:            NewBold(s),
		err:           NewBold(e),
		warn:          NewStyle(w),
		help:          NewEm(h),
		bubble:        NewTag(t, false),
		bubbleFocused: NewTag(e, true),
		card:          NewCard(h),
		cardFocused:   NewCard(t),
		positive:      lipgloss.Color(s),
		negative:      lipgloss.Color(e),
	}
}

func NewStyle(fg string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(fg))
}

func NewBold(fg string) lipgloss.Style {
	return NewStyle(fg).Bold(true)
}

func NewEm(fg string) lipgloss.Style {
	return NewStyle(fg).Italic(true)
}

// NewTag is a rounded, padded label on a solid background, used for song bubbles.
func NewTag(bg string, bold bool) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FFFFFF")).
		Background(lipgloss.Color(bg)).
		Padding(0, 1).
		MarginRight(1).
		Bold(bold)
}

// NewCard is a bordered panel used for recommendation cards.
func NewCard(border string) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(border)).
		Padding(0, 1).
		Width(40)
}

// pulsed tints a card border with the reaction color.
func (p *Palette) pulsed(base lipgloss.Style, positive bool) lipgloss.Style {
	if positive {
		return base.BorderForeground(p.positive)
	}
	return base.BorderForeground(p.negative)
}
