package hub

import "time"

// WSMessage is a message sent from server to client.
type WSMessage struct {
	Type      string    `json:"type"`              // "full" or "delta"
	Seq       int64     `json:"seq"`               // sequence number for ordering
	Timestamp int64     `json:"timestamp"`         // Unix timestamp in milliseconds
	Data      *PadState `json:"data,omitempty"`    // full snapshot for type "full"
	Changes   *Delta    `json:"changes,omitempty"` // changed groups for type "delta"
}

// NewFullMessage creates a "full" message carrying a complete snapshot.
func NewFullMessage(seq int64, state *PadState) *WSMessage {
	return &WSMessage{
		Type:      "full",
		Seq:       seq,
		Timestamp: time.Now().UnixMilli(),
		Data:      state,
	}
}

// NewDeltaMessage creates a "delta" message carrying only changed groups.
func NewDeltaMessage(seq int64, changes *Delta) *WSMessage {
	return &WSMessage{
		Type:      "delta",
		Seq:       seq,
		Timestamp: time.Now().UnixMilli(),
		Changes:   changes,
	}
}

// ClientMessage is a message sent from the client to the server.
type ClientMessage struct {
	Type string `json:"type"` // "sync" requests a fresh full snapshot
}
