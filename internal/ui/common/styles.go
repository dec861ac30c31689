// Package common provides shared styles and utilities for the UI.
package common

import "github.com/charmbracelet/lipgloss"

// Icon constants
const (
	DoorIcon    = "🚪"
	CoinIcon    = "🪙"
	CreatorIcon = "👑"
	TrophyIcon  = "🏆"
	TimerIcon   = "⏳"
)

// Lipgloss Styles - shared across all screens
var (
	DocStyle      = lipgloss.NewStyle().Margin(1, 2)
	TitleStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("228")).Bold(true).Render
	BoxStyle      = lipgloss.NewStyle().Border(lipgloss.RoundedBorder())
	PromptStyle   = lipgloss.NewStyle().MarginTop(1)
	ErrorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	NoticeStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Bold(true)
	SelectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true)
	HintStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	TurnStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Bold(true)
	OpenDoorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Strikethrough(true)
)
