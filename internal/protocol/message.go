package protocol

import "encoding/json"

// Message is the envelope for every event on the channel. The payload is
// decoded lazily because most handlers only care about a subset of events.
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// MessageType names an event on the channel.
type MessageType string

// Client → authority message types.
const (
	MsgCreateNewGame        MessageType = "createNewGame"        // create a new session
	MsgGetAvailableGameList MessageType = "getAvailableGameList" // request the joinable-session directory
	MsgAddPlayerToGame      MessageType = "addPlayerToGame"      // join an existing session
	MsgBeginGameEarly       MessageType = "beginGameEarly"       // creator starts before the lobby fills
	MsgAcceptPlayerInput    MessageType = "acceptPlayerInput"    // door pick or switch decision
	MsgBindAddress          MessageType = "bindAddress"          // answer a sign challenge
	MsgPing                 MessageType = "ping"                 // heartbeat
)

// Authority → client message types.
const (
	MsgSyncGameData          MessageType = "syncGameData"          // sparse game-state patch
	MsgSyncAvailableGameList MessageType = "syncAvailableGameList" // full directory snapshot
	MsgSignCode              MessageType = "signCode"              // sign challenge for address binding
	MsgGameRemoved           MessageType = "gameRemoved"           // session torn down, reset local state
	MsgPong                  MessageType = "pong"                  // heartbeat reply
)

// Encode serializes the message for the wire.
func (m *Message) Encode() ([]byte, error) {
	return json.Marshal(m)
}

// Decode parses a wire message.
func Decode(data []byte) (*Message, error) {
	var msg Message
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}

// NewMessage builds a message with a marshaled payload.
func NewMessage(msgType MessageType, payload any) (*Message, error) {
	msg := &Message{Type: msgType}
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, err
		}
		msg.Payload = data
	}
	return msg, nil
}

// MustNewMessage builds a message and panics on marshal failure. Only used
// with payload types that cannot fail to marshal.
func MustNewMessage(msgType MessageType, payload any) *Message {
	msg, err := NewMessage(msgType, payload)
	if err != nil {
		panic(err)
	}
	return msg
}

// ParsePayload decodes the payload of a message into T.
func ParsePayload[T any](msg *Message) (*T, error) {
	var payload T
	if len(msg.Payload) == 0 {
		return &payload, nil
	}
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}
