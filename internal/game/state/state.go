// Package state holds the client-side mirror of authoritative session state.
package state

import "luckygates/internal/protocol"

// GameState mirrors the session the client is in, plus nothing else: it is
// written only by the synchronizer and read by everyone. Pointer fields are
// ones the authority may leave unset or explicitly clear; a nil GameID-less
// state means "not in a session".
type GameState struct {
	GameID          string
	GameCoinAddress string
	CoinChainName   string
	GameCreator     string

	MinPlayers *int
	MaxPlayers *int

	// Join order is turn order. Removed players are relocated, never deleted.
	Players        []protocol.Player
	RemovedPlayers []protocol.Player

	CurrentStage *Stage

	// Epoch seconds, as reported by the authority.
	GameStartTime  *int64
	StageStartTime *int64
	StageEndTime   *int64
	GameEndTime    *int64

	RequiredDoorSelectionStage *int
	CurrentChoiceMakingPlayer  *int // index into Players
	GameEndReason              string
}

// New returns an empty state: no session, empty player sequences.
func New() *GameState {
	return &GameState{
		Players:        []protocol.Player{},
		RemovedPlayers: []protocol.Player{},
	}
}

// Reset returns the state to its empty form. Called when the authority
// signals game end or removal, or on a client-initiated reset.
func (gs *GameState) Reset() {
	*gs = *New()
}

// InGame reports whether the client is currently in a session.
func (gs *GameState) InGame() bool {
	return gs.GameID != ""
}

// Stage returns the current stage if the authority has reported one.
func (gs *GameState) Stage() (Stage, bool) {
	if gs.CurrentStage == nil {
		return 0, false
	}
	return *gs.CurrentStage, true
}

// ChoiceMaker returns the player whose turn it is. The second return is
// false when no turn owner is set or the index does not point into Players.
func (gs *GameState) ChoiceMaker() (protocol.Player, bool) {
	if gs.CurrentChoiceMakingPlayer == nil {
		return protocol.Player{}, false
	}
	i := *gs.CurrentChoiceMakingPlayer
	if i < 0 || i >= len(gs.Players) {
		return protocol.Player{}, false
	}
	return gs.Players[i], true
}
