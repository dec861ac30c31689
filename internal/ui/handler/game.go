package handler

import (
	tea "github.com/charmbracelet/bubbletea"

	"luckygates/internal/game/directory"
	"luckygates/internal/protocol"
	"luckygates/internal/ui/model"
)

func handleSyncGameData(m model.Model, msg *protocol.Message) tea.Cmd {
	patch, err := protocol.ParsePayload[protocol.GameStatePatch](msg)
	if err != nil {
		return nil
	}
	m.Sync().Apply(patch)
	return m.StartCountdown()
}

func handleSyncAvailableGameList(m model.Model, msg *protocol.Message) tea.Cmd {
	snapshot, err := protocol.ParsePayload[protocol.AvailableGameList](msg)
	if err != nil {
		return nil
	}
	m.SetGames(directory.Filter(*snapshot, m.CoinAddress(), m.ChainName()))
	return nil
}

func handleGameRemoved(m model.Model, _ *protocol.Message) tea.Cmd {
	reason := m.State().GameEndReason
	m.Sync().Reset()
	if reason != "" {
		return m.Notify(model.NotifyGameEnd, reason, model.LongNotice)
	}
	return nil
}
