package apperrors

import (
	"fmt"

	"luckygates/internal/protocol"
)

// GateError is a rejected local action: a precondition for a player intent
// did not hold, so nothing was sent to the authority. Never fatal; the UI
// surfaces the message as a transient notification.
type GateError struct {
	Code    int
	Message string
}

func (e *GateError) Error() string {
	return e.Message
}

// Predefined rejections
var (
	ErrAlreadyInGame = &GateError{Code: protocol.ErrCodeAlreadyInGame, Message: "You are already in a game."}
	ErrNotInGame     = &GateError{Code: protocol.ErrCodeNotInGame, Message: "You are not in a game right now."}
	ErrNotYourTurn   = &GateError{Code: protocol.ErrCodeNotYourTurn, Message: "You are not allowed to make the choice right now."}
	ErrNoIdentity    = &GateError{Code: protocol.ErrCodeNoIdentity, Message: "Connect a wallet before playing."}
)

// BeginEarlyNotAllowed explains the begin-early requirements to the user.
func BeginEarlyNotAllowed(minPlayers int) *GateError {
	return &GateError{
		Code: protocol.ErrCodeCannotBegin,
		Message: fmt.Sprintf("Only the game creator can begin the game early when at least %d players have joined the game.",
			minPlayers),
	}
}
