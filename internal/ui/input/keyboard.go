// Package input handles keyboard input processing.
package input

import (
	"errors"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"luckygates/internal/apperrors"
	"luckygates/internal/game/state"
	"luckygates/internal/protocol"
	"luckygates/internal/ui/model"
)

// submit turns a gate result into a side effect: rejected intents become a
// transient notification, accepted ones go out on the channel.
func submit(m model.Model, msg *protocol.Message, err error) tea.Cmd {
	if err != nil {
		ttl := model.ShortNotice
		var ge *apperrors.GateError
		if errors.As(err, &ge) && ge.Code == protocol.ErrCodeCannotBegin {
			ttl = model.LongNotice
		}
		return m.Notify(model.NotifyError, err.Error(), ttl)
	}
	if err := m.Client().SendMessage(msg); err != nil {
		return m.Notify(model.NotifyError, "Could not reach the game server.", model.ShortNotice)
	}
	return nil
}

// HandleKeyPress handles keyboard input and reports whether it consumed the
// key.
func HandleKeyPress(m model.Model, msg tea.KeyMsg) (bool, tea.Cmd) {
	switch m.Screen() {
	case state.ScreenLanding:
		return handleLandingKeys(m, msg)
	case state.ScreenLobby:
		return handleLobbyKeys(m, msg)
	case state.ScreenGame:
		return handleGameKeys(m, msg)
	}
	return false, nil
}

func handleLandingKeys(m model.Model, msg tea.KeyMsg) (bool, tea.Cmd) {
	in := m.Input()

	// While the id input is focused, everything except enter/esc types.
	if in.Focused() {
		switch msg.Type {
		case tea.KeyEnter:
			id := strings.TrimSpace(in.Value())
			in.Reset()
			in.Blur()
			if id == "" {
				return true, nil
			}
			out, err := m.Gate().JoinGame(id)
			return true, submit(m, out, err)
		case tea.KeyEsc:
			in.Reset()
			in.Blur()
			return true, nil
		}
		return false, nil // falls through to textinput.Update
	}

	switch msg.String() {
	case "up", "k":
		if m.SelectedIndex() > 0 {
			m.SetSelectedIndex(m.SelectedIndex() - 1)
		}
		return true, nil
	case "down", "j":
		if m.SelectedIndex() < len(m.Games())-1 {
			m.SetSelectedIndex(m.SelectedIndex() + 1)
		}
		return true, nil
	case "enter":
		games := m.Games()
		if len(games) == 0 {
			return true, nil
		}
		out, err := m.Gate().JoinGame(games[m.SelectedIndex()].GameID)
		return true, submit(m, out, err)
	case "c":
		out, err := m.Gate().CreateGame()
		return true, submit(m, out, err)
	case "r":
		out, err := m.Gate().ListGames()
		return true, submit(m, out, err)
	case "i":
		in.Focus()
		return true, textinput.Blink
	case "m":
		return true, m.ToggleMusic()
	case "q", "esc":
		m.Client().Close()
		return true, tea.Quit
	}
	return true, nil
}

func handleLobbyKeys(m model.Model, msg tea.KeyMsg) (bool, tea.Cmd) {
	switch msg.String() {
	case "b":
		out, err := m.Gate().BeginEarly()
		return true, submit(m, out, err)
	case "m":
		return true, m.ToggleMusic()
	}
	return true, nil
}

func handleGameKeys(m model.Model, msg tea.KeyMsg) (bool, tea.Cmd) {
	key := msg.String()

	if n, err := strconv.Atoi(key); err == nil && n >= 1 {
		out, gerr := m.Gate().PickDoor(n)
		cmd := submit(m, out, gerr)
		if gerr == nil {
			m.PlaySound("door")
		}
		return true, cmd
	}

	switch key {
	case "y":
		out, err := m.Gate().SwitchChoice(true)
		return true, submit(m, out, err)
	case "n":
		out, err := m.Gate().SwitchChoice(false)
		return true, submit(m, out, err)
	case "m":
		return true, m.ToggleMusic()
	}
	return true, nil
}
