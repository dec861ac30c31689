// Package handler processes authority messages.
package handler

import (
	tea "github.com/charmbracelet/bubbletea"

	"luckygates/internal/protocol"
	"luckygates/internal/ui/model"
)

// messageHandler is the per-event handler signature.
type messageHandler func(m model.Model, msg *protocol.Message) tea.Cmd

var messageHandlers = map[protocol.MessageType]messageHandler{
	protocol.MsgSyncGameData:          handleSyncGameData,
	protocol.MsgSyncAvailableGameList: handleSyncAvailableGameList,
	protocol.MsgSignCode:              handleSignCode,
	protocol.MsgGameRemoved:           handleGameRemoved,
}

// HandleServerMessage dispatches an authority message. Unknown event types
// are ignored, same as unknown fields inside a patch.
func HandleServerMessage(m model.Model, msg *protocol.Message) tea.Cmd {
	if handler, ok := messageHandlers[msg.Type]; ok {
		return handler(m, msg)
	}
	return nil
}
