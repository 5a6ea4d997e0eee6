package output

import (
	"github.com/charmbracelet/lipgloss"
)

// Style aliases lipgloss.Style so callers don't import it directly.
type Style = lipgloss.Style

// Color palette for the CLI, in the altar's orange-on-white voice.
var (
	ColorPrimary = lipgloss.Color("#C96A00") // Incense orange
	ColorSuccess = lipgloss.Color("#10B981") // Green
	ColorError   = lipgloss.Color("#EF4444") // Red
	ColorMuted   = lipgloss.Color("#6B7280") // Gray
	ColorLocked  = lipgloss.Color("#9CA3AF") // Light gray
)

// Base styles for the CLI.
var (
	// StyleTitle is used for section titles.
	StyleTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	// StyleSuccess is used for confirmation feedback.
	StyleSuccess = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSuccess)

	// StyleError is used for rejection and failure feedback.
	StyleError = lipgloss.NewStyle().
			Foreground(ColorError)

	// StyleMuted is used for secondary information.
	StyleMuted = lipgloss.NewStyle().
			Foreground(ColorMuted)

	// StyleEquipped marks the currently equipped item.
	StyleEquipped = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSuccess)

	// StyleLocked marks items still behind a merit threshold.
	StyleLocked = lipgloss.NewStyle().
			Foreground(ColorLocked).
			Strikethrough(true)

	// StyleCount is used for merit totals and leaderboard counts.
	StyleCount = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)
)
