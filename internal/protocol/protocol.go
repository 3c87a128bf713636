package protocol

import "encoding/json"

const Version = "1.0"

// Message types exchanged over the ws transport.
const (
	TypeHello   = "HELLO"
	TypeWelcome = "WELCOME"
	TypeCommand = "COMMAND"
	TypeAck     = "ACK"
	TypeSnapshot = "SNAPSHOT"
)

// BaseMessage lets the transport route an unknown JSON payload by type
// before committing to a concrete struct.
type BaseMessage struct {
	Type            string `json:"type"`
	ProtocolVersion string `json:"protocol_version,omitempty"`
}

func DecodeBase(b []byte) (BaseMessage, error) {
	var m BaseMessage
	err := json.Unmarshal(b, &m)
	return m, err
}
