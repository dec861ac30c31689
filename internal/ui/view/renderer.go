// Package view provides UI rendering functions.
package view

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"luckygates/internal/game/state"
	"luckygates/internal/ui/common"
	"luckygates/internal/ui/model"
)

// CreateViewRenderer creates a view renderer function that can be injected
// into App.
func CreateViewRenderer() func(model.Model) string {
	return func(m model.Model) string {
		if errMsg := m.ConnectionError(); errMsg != "" {
			return connectionErrorView(m, errMsg)
		}

		switch m.Screen() {
		case state.ScreenLanding:
			return LandingView(m)
		case state.ScreenLobby:
			return LobbyView(m)
		case state.ScreenGame:
			return GameView(m)
		default:
			return "Unknown screen"
		}
	}
}

func connectionErrorView(m model.Model, errMsg string) string {
	msg := fmt.Sprintf("❌ Could not reach the game server.\n\n%s\n\nPress Q to quit.", errMsg)
	return lipgloss.Place(m.Width(), m.Height(),
		lipgloss.Center, lipgloss.Center,
		common.BoxStyle.Padding(1, 2).Render(common.ErrorStyle.Render(msg)),
	)
}

// renderNotification renders the current transient notification, if any.
func renderNotification(m model.Model) string {
	n := m.CurrentNotification()
	if n == nil {
		return ""
	}

	style := common.NoticeStyle
	if n.Type == model.NotifyError || n.Type == model.NotifyConnection {
		style = common.ErrorStyle
	}
	return style.Render(n.Message)
}

// shortAddress truncates an address for display.
func shortAddress(addr string) string {
	if len(addr) <= 12 {
		return addr
	}
	return addr[:8] + "…" + addr[len(addr)-4:]
}
