package notify

// Event is the envelope every state-changing operation publishes. Users lists
// the ids whose websocket connections should receive the event. ID is assigned
// on publish so consumers can deduplicate redelivered events.
type Event struct {
	ID      string      `json:"id,omitempty"`
	Channel string      `json:"channel"`
	Type    string      `json:"type"`
	Users   []uint      `json:"users"`
	Payload interface{} `json:"payload"`
}

// Publisher is the broadcast port. Publish is fire-and-forget: failures are
// logged by implementations and never surface to the caller, so a committed
// mutation is never rolled back because a notification was lost.
type Publisher interface {
	Publish(event Event)
}
