package styles

import "github.com/charmbracelet/lipgloss"

var (
	// RoundedBorder is used for general panels.
	RoundedBorder = lipgloss.RoundedBorder()

	// DoubleBorder marks the focused card in a grid.
	DoubleBorder = lipgloss.DoubleBorder()

	// ThinBorder frames compact cards.
	ThinBorder = lipgloss.NormalBorder()
)
