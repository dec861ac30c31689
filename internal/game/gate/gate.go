// Package gate validates player intents against the local state mirror
// before anything is sent to the authority. The gating is advisory: the
// authority re-validates every action, this layer only saves round-trips and
// gives the player an immediate reason.
package gate

import (
	"luckygates/internal/apperrors"
	"luckygates/internal/game/state"
	"luckygates/internal/protocol"
)

// Identity supplies the caller's canonical account string. Empty means no
// identity is bound yet.
type Identity interface {
	Account() string
}

// Gate checks intent preconditions and produces the outbound event on
// success, or a *apperrors.GateError with the user-facing reason.
type Gate struct {
	state    *state.GameState
	identity Identity

	// Economic configuration of sessions this client creates.
	coinAddress string
	chainName   string
}

// New creates a gate reading st. identity must not be nil.
func New(st *state.GameState, identity Identity, coinAddress, chainName string) *Gate {
	return &Gate{
		state:       st,
		identity:    identity,
		coinAddress: coinAddress,
		chainName:   chainName,
	}
}

// CreateGame requests a new session. Rejected while already in one.
func (g *Gate) CreateGame() (*protocol.Message, error) {
	if g.state.InGame() {
		return nil, apperrors.ErrAlreadyInGame
	}
	// omitempty keeps the configured ids off the wire when they are empty,
	// letting the authority fall back to its defaults.
	return protocol.NewMessage(protocol.MsgCreateNewGame, protocol.CreateNewGamePayload{
		GameCoinAddress: g.coinAddress,
		CoinChainName:   g.chainName,
	})
}

// JoinGame joins the session with the given id. Rejected while already in one.
func (g *Gate) JoinGame(gameID string) (*protocol.Message, error) {
	if g.state.InGame() {
		return nil, apperrors.ErrAlreadyInGame
	}
	return protocol.NewMessage(protocol.MsgAddPlayerToGame, protocol.AddPlayerToGamePayload{
		GameID: gameID,
	})
}

// ListGames requests a fresh directory snapshot. Always allowed.
func (g *Gate) ListGames() (*protocol.Message, error) {
	return protocol.NewMessage(protocol.MsgGetAvailableGameList, struct{}{})
}

// BeginEarly starts the session before the lobby fills. Only the creator may
// do this, and only once the minimum player count is reached.
func (g *Gate) BeginEarly() (*protocol.Message, error) {
	if !g.state.InGame() {
		return nil, apperrors.ErrNotInGame
	}
	min := 0
	if g.state.MinPlayers != nil {
		min = *g.state.MinPlayers
	}
	if g.identity.Account() != g.state.GameCreator ||
		len(g.state.Players) == 0 ||
		g.state.MinPlayers == nil ||
		len(g.state.Players) < min {
		return nil, apperrors.BeginEarlyNotAllowed(min)
	}
	return protocol.NewMessage(protocol.MsgBeginGameEarly, protocol.BeginGameEarlyPayload{
		GameID: g.state.GameID,
	})
}

// PickDoor submits a door selection for the caller's turn.
func (g *Gate) PickDoor(doorNumber int) (*protocol.Message, error) {
	if err := g.checkTurn(state.InputDoor); err != nil {
		return nil, err
	}
	return protocol.NewMessage(protocol.MsgAcceptPlayerInput, protocol.PlayerInputPayload{
		GameID:     g.state.GameID,
		DoorNumber: &doorNumber,
	})
}

// SwitchChoice submits the stay-or-switch decision for the caller's turn.
func (g *Gate) SwitchChoice(wantToSwitch bool) (*protocol.Message, error) {
	if err := g.checkTurn(state.InputSwitch); err != nil {
		return nil, err
	}
	return protocol.NewMessage(protocol.MsgAcceptPlayerInput, protocol.PlayerInputPayload{
		GameID:       g.state.GameID,
		WantToSwitch: &wantToSwitch,
	})
}

// checkTurn enforces turn ownership identically for both input kinds: only
// the player at the turn-owner index may act, and only in a stage expecting
// that input kind. Every failed precondition rejects; none emits.
func (g *Gate) checkTurn(kind state.InputKind) error {
	if !g.state.InGame() {
		return apperrors.ErrNotInGame
	}
	st, ok := g.state.Stage()
	if !ok || !st.Valid() || st.Input() != kind {
		return apperrors.ErrNotYourTurn
	}
	if g.identity.Account() == "" {
		return apperrors.ErrNoIdentity
	}
	owner, ok := g.state.ChoiceMaker()
	if !ok || owner.PlayerAddress != g.identity.Account() {
		return apperrors.ErrNotYourTurn
	}
	return nil
}
