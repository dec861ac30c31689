package handler

import (
	tea "github.com/charmbracelet/bubbletea"

	"luckygates/internal/protocol"
	"luckygates/internal/ui/model"
)

func handleSignCode(m model.Model, msg *protocol.Message) tea.Cmd {
	payload, err := protocol.ParsePayload[protocol.SignCodePayload](msg)
	if err != nil || payload.Code == "" {
		return nil
	}
	m.SetSignChallenge(payload.Code)
	return m.BindAddress()
}
