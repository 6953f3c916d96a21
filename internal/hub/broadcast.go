package hub

import (
	"context"
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/thejpster/sixaxis"
)

const (
	fullSyncInterval = 5 * time.Second
	deltaCountSync   = 100
)

// Broadcaster polls the controller snapshot at a fixed rate and broadcasts
// state changes to the hub. Deltas go out as they happen; a full snapshot is
// resent every fullSyncInterval or every deltaCountSync deltas so late or
// lossy clients converge.
type Broadcaster struct {
	hub  *Hub
	pad  *sixaxis.Controller
	poll time.Duration

	mu         sync.Mutex
	lastState  PadState
	seq        int64
	deltaCount int64
}

func NewBroadcaster(h *Hub, pad *sixaxis.Controller, poll time.Duration) *Broadcaster {
	return &Broadcaster{
		hub:  h,
		pad:  pad,
		poll: poll,
	}
}

// Run starts the poll loop. Should be run in a goroutine; returns when ctx
// is cancelled.
func (b *Broadcaster) Run(ctx context.Context) {
	poll := time.NewTicker(b.poll)
	defer poll.Stop()
	full := time.NewTicker(fullSyncInterval)
	defer full.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case <-poll.C:
			state := Snapshot(b.pad)

			b.mu.Lock()
			delta := ComputeDelta(b.lastState, state)
			if delta.IsEmpty() {
				b.mu.Unlock()
				continue
			}
			b.lastState = state
			b.seq++
			b.deltaCount++
			var msg *WSMessage
			if b.deltaCount >= deltaCountSync {
				b.deltaCount = 0
				msg = NewFullMessage(b.seq, &state)
			} else {
				msg = NewDeltaMessage(b.seq, delta)
			}
			b.mu.Unlock()

			b.broadcast(msg)

		case <-full.C:
			b.mu.Lock()
			b.seq++
			state := b.lastState
			msg := NewFullMessage(b.seq, &state)
			b.mu.Unlock()

			b.broadcast(msg)
		}
	}
}

// SendFullState sends the current full snapshot to one client, used when a
// client first connects or asks to resync.
func (b *Broadcaster) SendFullState(c *Client) {
	b.mu.Lock()
	b.seq++
	state := Snapshot(b.pad)
	b.lastState = state
	msg := NewFullMessage(b.seq, &state)
	b.mu.Unlock()

	data, err := json.Marshal(msg)
	if err != nil {
		log.Printf("Error marshaling full state: %v", err)
		return
	}
	c.Send(data)
}

func (b *Broadcaster) broadcast(msg *WSMessage) {
	data, err := json.Marshal(msg)
	if err != nil {
		log.Printf("Error marshaling %s message: %v", msg.Type, err)
		return
	}
	b.hub.Broadcast(data)
}
