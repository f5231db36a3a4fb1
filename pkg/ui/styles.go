package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Colors switch automatically between light and dark terminals
var (
	PrimaryColor = lipgloss.AdaptiveColor{
		Light: "#007ACC", // Blue
		Dark:  "#3D9EFF",
	}

	ScriptColor = lipgloss.AdaptiveColor{
		Light: "#28A745", // Green
		Dark:  "#4CDD76",
	}

	ErrorColor = lipgloss.AdaptiveColor{
		Light: "#DC3545", // Red
		Dark:  "#FF6B7D",
	}

	WarningColor = lipgloss.AdaptiveColor{
		Light: "#FFC107", // Amber
		Dark:  "#FFD54F",
	}

	MutedColor = lipgloss.AdaptiveColor{
		Light: "#6C757D", // Medium gray
		Dark:  "#ADB5BD",
	}

	BorderColor = lipgloss.AdaptiveColor{
		Light: "#DEE2E6",
		Dark:  "#3A3D4A",
	}
)

var (
	InfoStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor)

	MutedStyle = lipgloss.NewStyle().
			Foreground(MutedColor)

	WarningStyle = lipgloss.NewStyle().
			Foreground(WarningColor).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)

	ScriptStyle = lipgloss.NewStyle().
			Foreground(ScriptColor)

	RuleStyle = lipgloss.NewStyle().
			Foreground(BorderColor)
)
