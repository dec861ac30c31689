package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"luckygates/internal/ui/common"
	"luckygates/internal/ui/model"
)

// LandingView renders the entry screen with the joinable session list.
func LandingView(m model.Model) string {
	width := m.Width()

	var sb strings.Builder

	title := common.TitleStyle(fmt.Sprintf("%s Lucky Gates %s", common.DoorIcon, common.DoorIcon))
	sb.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, title))
	sb.WriteString("\n\n")

	subtitle := common.HintStyle.Render(fmt.Sprintf("%s %s on %s", common.CoinIcon, shortAddress(m.CoinAddress()), m.ChainName()))
	sb.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, subtitle))
	sb.WriteString("\n\n")

	sb.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, renderAccountLine(m)))
	sb.WriteString("\n\n")

	gamesBox := common.BoxStyle.Padding(0, 1).Render(renderGameList(m))
	sb.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, gamesBox))
	sb.WriteString("\n\n")

	if m.Input().Focused() {
		sb.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, m.Input().View()))
	} else {
		hint := common.HintStyle.Render("↑/↓ select · Enter join · C create · I join by ID · R refresh · M music · Q quit")
		sb.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, hint))
	}

	if notice := renderNotification(m); notice != "" {
		sb.WriteString("\n\n")
		sb.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, notice))
	}

	return lipgloss.Place(width, m.Height(), lipgloss.Center, lipgloss.Center, sb.String())
}

func renderAccountLine(m model.Model) string {
	if m.Account() == "" {
		return common.HintStyle.Render("No wallet key loaded, playing unbound")
	}
	if m.BoundAddress() != "" {
		return fmt.Sprintf("🔗 Bound as %s", shortAddress(m.BoundAddress()))
	}
	return common.HintStyle.Render(fmt.Sprintf("Wallet %s (awaiting bind challenge)", shortAddress(m.Account())))
}

func renderGameList(m model.Model) string {
	games := m.Games()
	if len(games) == 0 {
		return "No games to join right now.\nPress C to create one."
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Open games (%d):\n", len(games)))
	for i, g := range games {
		line := fmt.Sprintf("%s  %d joined", g.GameID, g.PlayerCount)
		if i == m.SelectedIndex() {
			line = common.SelectedStyle.Render("▸ " + line)
		} else {
			line = "  " + line
		}
		sb.WriteString(line)
		if i < len(games)-1 {
			sb.WriteString("\n")
		}
	}
	return sb.String()
}
