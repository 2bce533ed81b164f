package events

import "time"

const (
	ChatRelayCompletedType = "CHAT_RELAY_COMPLETED"
	ChatRelayFailedType    = "CHAT_RELAY_FAILED"
)

// NewChatRelayCompleted describes one finished relay, whether or not
// the model produced visible output.
func NewChatRelayCompleted(query, intent string, deviceId string, emittedBytes int, duration time.Duration) Event {
	data := map[string]interface{}{
		"query":         query,
		"intent":        intent,
		"emitted_bytes": emittedBytes,
		"duration_ms":   duration.Milliseconds(),
	}
	if deviceId != "" {
		data["device_id"] = deviceId
	}
	return BaseEvent{
		Type:       ChatRelayCompletedType,
		Data:       data,
		OccurredAt: time.Now(),
	}
}

// NewChatRelayFailed marks a relay that ended with an upstream failure.
func NewChatRelayFailed(query, intent, reason string, duration time.Duration) Event {
	return BaseEvent{
		Type: ChatRelayFailedType,
		Data: map[string]interface{}{
			"query":       query,
			"intent":      intent,
			"reason":      reason,
			"duration_ms": duration.Milliseconds(),
		},
		OccurredAt: time.Now(),
	}
}
