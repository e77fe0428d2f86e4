package enums

import "fmt"

// MessageType tags special chat messages. Plain text messages carry the empty type.
type MessageType string

const (
	MessageTypeText           MessageType = ""
	MessageTypeSessionRequest MessageType = "session_request"
)

func (m MessageType) IsValid() bool {
	return m == MessageTypeText || m == MessageTypeSessionRequest
}

func ParseMessageType(value string) (MessageType, error) {
	candidate := MessageType(value)
	if !candidate.IsValid() {
		return "", fmt.Errorf("invalid message type %q", value)
	}
	return candidate, nil
}
