package domain

// EventType identifies the kind of event pushed to order subscribers.
type EventType string

const (
	// EventSnapshot carries the full order state, sent once on subscribe.
	EventSnapshot EventType = "snapshot"
	// EventUpdate carries the full order state after a status or payment change.
	EventUpdate EventType = "update"
	// EventLocation carries only the order id and courier snapshot, sent on
	// every simulation tick.
	EventLocation EventType = "location"
	// EventPing is a liveness heartbeat with no semantic payload.
	EventPing EventType = "ping"
	// EventError reports a subscription-level problem, e.g. an unknown order id.
	EventError EventType = "error"
)

// Envelope is the wire form of one event. WebSocket clients receive it as
// JSON; the SSE channel maps Event to the SSE event name and Data to the
// data line.
type Envelope struct {
	Event EventType   `json:"type"`
	Data  interface{} `json:"data"`
}

// ErrorPayload is the data carried by an EventError envelope.
type ErrorPayload struct {
	Message string `json:"message"`
}
