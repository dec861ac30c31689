package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"luckygates/internal/ui/common"
	"luckygates/internal/ui/model"
)

// LobbyView renders the pre-game waiting screen with the stage countdown.
func LobbyView(m model.Model) string {
	width := m.Width()
	st := m.State()

	var sb strings.Builder

	title := common.TitleStyle(fmt.Sprintf("🏠 Game %s", st.GameID))
	sb.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, title))
	sb.WriteString("\n\n")

	var playerList strings.Builder
	playerList.WriteString("Players:\n")
	for _, p := range st.Players {
		marker := "  "
		if p.PlayerAddress == st.GameCreator {
			marker = common.CreatorIcon + " "
		}
		meStr := ""
		if p.PlayerAddress != "" && p.PlayerAddress == m.BoundAddress() {
			meStr = " (you)"
		}
		playerList.WriteString(fmt.Sprintf("  %s%s%s\n", marker, shortAddress(p.PlayerAddress), meStr))
	}
	if st.MinPlayers != nil && st.MaxPlayers != nil {
		playerList.WriteString(fmt.Sprintf("\nJoined: %d (min %d, max %d)", len(st.Players), *st.MinPlayers, *st.MaxPlayers))
	} else {
		playerList.WriteString(fmt.Sprintf("\nJoined: %d", len(st.Players)))
	}

	playerBox := common.BoxStyle.Padding(0, 1).Render(playerList.String())
	sb.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, playerBox))
	sb.WriteString("\n\n")

	sb.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, renderCountdown(m)))
	sb.WriteString("\n\n")

	hint := common.HintStyle.Render("B begin early (creator) · M music")
	sb.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, hint))

	if notice := renderNotification(m); notice != "" {
		sb.WriteString("\n\n")
		sb.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, notice))
	}

	return lipgloss.Place(width, m.Height(), lipgloss.Center, lipgloss.Center, sb.String())
}

func renderCountdown(m model.Model) string {
	proj := m.Projection()

	secs := proj.TimerValue
	label := fmt.Sprintf("%s %02d:%02d until start", common.TimerIcon, secs/60, secs%60)

	const barWidth = 30
	filled := proj.RemainingPercent * barWidth / 100
	if filled > barWidth {
		filled = barWidth
	}
	bar := common.NoticeStyle.Render(strings.Repeat("█", filled)) +
		common.HintStyle.Render(strings.Repeat("░", barWidth-filled))

	return lipgloss.JoinVertical(lipgloss.Center, label, bar)
}
