// Package sync merges authoritative game-state patches into the local mirror
// and derives UI routing from the result.
package sync

import (
	"luckygates/internal/game/state"
	"luckygates/internal/protocol"
)

// Synchronizer is the single writer of the GameState mirror. Patches are
// applied strictly in receipt order; each application ends with a routing
// derivation.
type Synchronizer struct {
	state  *state.GameState
	screen state.Screen

	// onRoute fires only when the derived screen actually changes, so a
	// repeated identical route never re-triggers a navigation side effect.
	onRoute func(state.Screen)
}

// New creates a synchronizer over st. onRoute may be nil.
func New(st *state.GameState, onRoute func(state.Screen)) *Synchronizer {
	return &Synchronizer{
		state:   st,
		screen:  state.ScreenLanding,
		onRoute: onRoute,
	}
}

// State exposes the mirror for read access.
func (s *Synchronizer) State() *state.GameState {
	return s.state
}

// Screen returns the current routing target.
func (s *Synchronizer) Screen() state.Screen {
	return s.screen
}

// Apply merges a sparse patch into the mirror. Every field present in the
// patch overwrites the mirror unconditionally, nulls included; absent fields
// are untouched. Individual values are stored as-is, validation is the
// authority's job. Ends with a routing derivation.
func (s *Synchronizer) Apply(p *protocol.GameStatePatch) {
	if p.Has(protocol.FieldGameID) {
		s.state.GameID = deref(p.GameID)
	}
	if p.Has(protocol.FieldGameCoinAddress) {
		s.state.GameCoinAddress = deref(p.GameCoinAddress)
	}
	if p.Has(protocol.FieldCoinChainName) {
		s.state.CoinChainName = deref(p.CoinChainName)
	}
	if p.Has(protocol.FieldGameCreator) {
		s.state.GameCreator = deref(p.GameCreator)
	}
	if p.Has(protocol.FieldMinPlayers) {
		s.state.MinPlayers = p.MinPlayers
	}
	if p.Has(protocol.FieldMaxPlayers) {
		s.state.MaxPlayers = p.MaxPlayers
	}
	if p.Has(protocol.FieldPlayers) {
		s.state.Players = p.Players
	}
	if p.Has(protocol.FieldRemovedPlayers) {
		s.state.RemovedPlayers = p.RemovedPlayers
	}
	if p.Has(protocol.FieldCurrentStage) {
		s.state.CurrentStage = stagePtr(p.CurrentStage)
	}
	if p.Has(protocol.FieldGameStartTime) {
		s.state.GameStartTime = p.GameStartTime
	}
	if p.Has(protocol.FieldStageStartTime) {
		s.state.StageStartTime = p.StageStartTime
	}
	if p.Has(protocol.FieldStageEndTime) {
		s.state.StageEndTime = p.StageEndTime
	}
	if p.Has(protocol.FieldGameEndTime) {
		s.state.GameEndTime = p.GameEndTime
	}
	if p.Has(protocol.FieldRequiredDoorSelectionStage) {
		s.state.RequiredDoorSelectionStage = p.RequiredDoorSelectionStage
	}
	if p.Has(protocol.FieldCurrentChoiceMakingPlayer) {
		s.state.CurrentChoiceMakingPlayer = p.CurrentChoiceMakingPlayer
	}
	if p.Has(protocol.FieldGameEndReason) {
		s.state.GameEndReason = deref(p.GameEndReason)
	}

	s.deriveRoute()
}

// Reset empties the mirror and re-derives the route. Used when the authority
// removes the session.
func (s *Synchronizer) Reset() {
	s.state.Reset()
	s.deriveRoute()
}

// deriveRoute is a pure function of the mirror: a valid stage routes to the
// screen its table entry names; no stage (or an out-of-range one) routes back
// to the landing menu, but only when the client is on a session screen.
func (s *Synchronizer) deriveRoute() {
	target := s.screen
	if st, ok := s.state.Stage(); ok && st.Valid() {
		target = st.Screen()
	} else if s.screen == state.ScreenLobby || s.screen == state.ScreenGame {
		target = state.ScreenLanding
	}

	if target == s.screen {
		return
	}
	s.screen = target
	if s.onRoute != nil {
		s.onRoute(target)
	}
}

func deref(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func stagePtr(p *int) *state.Stage {
	if p == nil {
		return nil
	}
	st := state.Stage(*p)
	return &st
}
