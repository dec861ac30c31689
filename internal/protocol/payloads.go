package protocol

import "encoding/json"

// --- Client request payloads ---

// CreateNewGamePayload requests a new session. Both fields are optional: the
// authority falls back to its own defaults when they are absent.
type CreateNewGamePayload struct {
	GameCoinAddress string `json:"gameCoinAddress,omitempty"`
	CoinChainName   string `json:"coinChainName,omitempty"`
}

// AddPlayerToGamePayload joins an existing session.
type AddPlayerToGamePayload struct {
	GameID string `json:"gameId"`
}

// BeginGameEarlyPayload starts a session before the lobby fills.
type BeginGameEarlyPayload struct {
	GameID string `json:"gameId"`
}

// PlayerInputPayload carries a door pick or a switch decision. Exactly one of
// DoorNumber and WantToSwitch is set; the authority infers the input kind from
// the current stage.
type PlayerInputPayload struct {
	GameID       string `json:"gameId"`
	DoorNumber   *int   `json:"doorNumber,omitempty"`
	WantToSwitch *bool  `json:"wantToSwitch,omitempty"`
}

// BindAddressPayload answers a sign challenge.
type BindAddressPayload struct {
	PlayerAddress string `json:"playerAddress"`
	SignedMessage string `json:"signedMessage"`
}

// PingPayload is the heartbeat request.
type PingPayload struct {
	ClientID  string `json:"clientId"`
	Timestamp int64  `json:"timestamp"` // client time, milliseconds
}

// --- Authority payloads ---

// PongPayload is the heartbeat reply.
type PongPayload struct {
	ClientTimestamp int64 `json:"clientTimestamp"`
	ServerTimestamp int64 `json:"serverTimestamp"`
}

// SignCodePayload delivers the challenge string for address binding.
type SignCodePayload struct {
	Code string `json:"code"`
}

// Player mirrors one participant's authoritative record. Removed players keep
// their record with ReasonForRemovalFromGame set.
type Player struct {
	PlayerAddress            string `json:"playerAddress"`
	ReasonForRemovalFromGame string `json:"reasonForRemovalFromGame,omitempty"`
	DoorsOpenedByGame        []int  `json:"doorsOpenedByGame,omitempty"`
	HasMadeChoice            bool   `json:"hasMadeChoice,omitempty"`
	SelectedDoor             *int   `json:"selectedDoor,omitempty"`
	WantToSwitchDoor         *bool  `json:"wantToSwitchDoor,omitempty"`
	TotalPoints              int    `json:"totalPoints,omitempty"`
}

// GameListing is one entry in the directory snapshot.
type GameListing struct {
	GameCoinAddress string            `json:"gameCoinAddress"`
	CoinChainName   string            `json:"coinChainName"`
	CurrentStage    int               `json:"currentStage"`
	GameCreator     string            `json:"gameCreator"`
	PlayerAddresses map[string]string `json:"playerAddresses"`
}

// AvailableGameList maps gameId → listing. Snapshots always arrive whole;
// there is no incremental merge.
type AvailableGameList map[string]GameListing

// --- Game state patch ---

// Wire names of the GameStatePatch fields.
const (
	FieldGameID                     = "gameId"
	FieldGameCoinAddress            = "gameCoinAddress"
	FieldCoinChainName              = "coinChainName"
	FieldGameCreator                = "gameCreator"
	FieldMinPlayers                 = "minPlayers"
	FieldMaxPlayers                 = "maxPlayers"
	FieldPlayers                    = "players"
	FieldRemovedPlayers             = "removedPlayers"
	FieldCurrentStage               = "currentStage"
	FieldGameStartTime              = "gameStartTime"
	FieldStageStartTime             = "stageStartTime"
	FieldStageEndTime               = "stageEndTime"
	FieldGameEndTime                = "gameEndTime"
	FieldRequiredDoorSelectionStage = "requiredDoorSelectionStage"
	FieldCurrentChoiceMakingPlayer  = "currentChoiceMakingPlayer"
	FieldGameEndReason              = "gameEndReason"
)

// GameStatePatch is a sparse game-state update. A field is applied only when
// it appeared in the wire message; an explicit null clears the field. Unknown
// keys are tolerated for forward compatibility.
type GameStatePatch struct {
	GameID                     *string  `json:"gameId"`
	GameCoinAddress            *string  `json:"gameCoinAddress"`
	CoinChainName              *string  `json:"coinChainName"`
	GameCreator                *string  `json:"gameCreator"`
	MinPlayers                 *int     `json:"minPlayers"`
	MaxPlayers                 *int     `json:"maxPlayers"`
	Players                    []Player `json:"players"`
	RemovedPlayers             []Player `json:"removedPlayers"`
	CurrentStage               *int     `json:"currentStage"`
	GameStartTime              *int64   `json:"gameStartTime"`
	StageStartTime             *int64   `json:"stageStartTime"`
	StageEndTime               *int64   `json:"stageEndTime"`
	GameEndTime                *int64   `json:"gameEndTime"`
	RequiredDoorSelectionStage *int     `json:"requiredDoorSelectionStage"`
	CurrentChoiceMakingPlayer  *int     `json:"currentChoiceMakingPlayer"`
	GameEndReason              *string  `json:"gameEndReason"`

	present map[string]struct{}
}

// UnmarshalJSON decodes the known fields and records which keys were present,
// so that absent fields and explicit nulls can be told apart.
func (p *GameStatePatch) UnmarshalJSON(data []byte) error {
	type patch GameStatePatch
	var fields patch
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	var keys map[string]json.RawMessage
	if err := json.Unmarshal(data, &keys); err != nil {
		return err
	}
	*p = GameStatePatch(fields)
	p.present = make(map[string]struct{}, len(keys))
	for k := range keys {
		p.present[k] = struct{}{}
	}
	return nil
}

// Has reports whether the field appeared in the wire message, including
// fields sent as an explicit null.
func (p *GameStatePatch) Has(field string) bool {
	_, ok := p.present[field]
	return ok
}

// MarkPresent flags fields as present on a locally built patch. Wire patches
// get their presence set from UnmarshalJSON.
func (p *GameStatePatch) MarkPresent(fields ...string) {
	if p.present == nil {
		p.present = make(map[string]struct{}, len(fields))
	}
	for _, f := range fields {
		p.present[f] = struct{}{}
	}
}
