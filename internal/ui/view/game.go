package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"luckygates/internal/game/state"
	"luckygates/internal/protocol"
	"luckygates/internal/ui/common"
	"luckygates/internal/ui/model"
)

// GameView renders the in-progress game screen.
func GameView(m model.Model) string {
	width := m.Width()
	st := m.State()

	var sb strings.Builder

	title := common.TitleStyle(fmt.Sprintf("%s Game %s", common.DoorIcon, st.GameID))
	sb.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, title))
	sb.WriteString("\n\n")

	playerBox := common.BoxStyle.Padding(0, 1).Render(renderPlayers(m, st))
	sb.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, playerBox))
	sb.WriteString("\n\n")

	sb.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, renderStagePrompt(m, st)))

	if len(st.RemovedPlayers) > 0 {
		sb.WriteString("\n\n")
		sb.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, renderRemoved(st)))
	}

	if notice := renderNotification(m); notice != "" {
		sb.WriteString("\n\n")
		sb.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, notice))
	}

	return lipgloss.Place(width, m.Height(), lipgloss.Center, lipgloss.Center, sb.String())
}

func renderPlayers(m model.Model, st *state.GameState) string {
	choiceMaker, hasTurn := st.ChoiceMaker()

	var sb strings.Builder
	sb.WriteString("Players:\n")
	for _, p := range st.Players {
		name := shortAddress(p.PlayerAddress)
		if hasTurn && p.PlayerAddress == choiceMaker.PlayerAddress {
			name = common.TurnStyle.Render("▸ " + name)
		} else {
			name = "  " + name
		}
		if p.PlayerAddress != "" && p.PlayerAddress == m.BoundAddress() {
			name += " (you)"
		}

		sb.WriteString(fmt.Sprintf("%s  %s %d\n", name, common.TrophyIcon, p.TotalPoints))
		sb.WriteString("    " + renderDoors(p) + "\n")
	}
	return strings.TrimRight(sb.String(), "\n")
}

// renderDoors shows one player's door line: the pick, the switch decision
// and the doors the game opened for them.
func renderDoors(p protocol.Player) string {
	var parts []string

	if p.SelectedDoor != nil {
		parts = append(parts, fmt.Sprintf("%s door %d", common.DoorIcon, *p.SelectedDoor))
	} else if p.HasMadeChoice {
		parts = append(parts, "choice made")
	} else {
		parts = append(parts, "no pick yet")
	}

	if p.WantToSwitchDoor != nil {
		if *p.WantToSwitchDoor {
			parts = append(parts, "switching")
		} else {
			parts = append(parts, "staying")
		}
	}

	if len(p.DoorsOpenedByGame) > 0 {
		var opened []string
		for _, d := range p.DoorsOpenedByGame {
			opened = append(opened, fmt.Sprintf("%d", d))
		}
		parts = append(parts, common.OpenDoorStyle.Render("opened: "+strings.Join(opened, " ")))
	}

	return common.HintStyle.Render(strings.Join(parts, " · "))
}

func renderStagePrompt(m model.Model, st *state.GameState) string {
	stage, ok := st.Stage()
	if !ok {
		return ""
	}

	choiceMaker, hasTurn := st.ChoiceMaker()
	myTurn := hasTurn && m.BoundAddress() != "" && choiceMaker.PlayerAddress == m.BoundAddress()

	var line string
	switch stage.Input() {
	case state.InputDoor:
		if myTurn {
			line = common.TurnStyle.Render("Your turn! Press 1-9 to pick a door.")
		} else if hasTurn {
			line = fmt.Sprintf("Waiting for %s to pick a door…", shortAddress(choiceMaker.PlayerAddress))
		}
	case state.InputSwitch:
		if myTurn {
			line = common.TurnStyle.Render("Switch doors? Y yes · N no")
		} else if hasTurn {
			line = fmt.Sprintf("Waiting for %s to decide…", shortAddress(choiceMaker.PlayerAddress))
		}
	default:
		if stage == state.StageResolution {
			line = "Opening the winning door…"
		} else {
			line = "Get ready…"
		}
	}

	return common.PromptStyle.Render(line)
}

func renderRemoved(st *state.GameState) string {
	var sb strings.Builder
	sb.WriteString("Out of the game:\n")
	for _, p := range st.RemovedPlayers {
		reason := p.ReasonForRemovalFromGame
		if reason == "" {
			reason = "removed"
		}
		sb.WriteString(fmt.Sprintf("  %s (%s)\n", shortAddress(p.PlayerAddress), reason))
	}
	return common.HintStyle.Render(strings.TrimRight(sb.String(), "\n"))
}
