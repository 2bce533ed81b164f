package dto

import "time"

type ChatRequest struct {
	Message string `json:"message" validate:"required"`
}

// StreamChunk is one NDJSON line of the relay response: a text fragment
// or an in-stream error, never both.
type StreamChunk struct {
	Text  string `json:"text,omitempty"`
	Error string `json:"error,omitempty"`
}

// RelayEventMessage is the wire form of a relay event on the internal
// bus (and on NATS, where only the data map is published).
type RelayEventMessage struct {
	Type       string                 `json:"type"`
	Data       map[string]interface{} `json:"data"`
	OccurredAt time.Time              `json:"occurred_at"`
}
