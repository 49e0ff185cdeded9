package server

import (
	"encoding/json"
	"sync"
)

// ScoreEvent is the payload published to a user's score subscribers after
// an answer has been evaluated and recorded.
type ScoreEvent struct {
	Type      string `json:"type"`
	Username  string `json:"username"`
	IsCorrect bool   `json:"isCorrect"`
	Score     int    `json:"score"`
}

// Broker is an in-process pub/sub for SSE events, keyed by username.
type Broker struct {
	mu   sync.RWMutex
	subs map[string]map[chan []byte]struct{}
}

func NewBroker() *Broker {
	return &Broker{
		subs: make(map[string]map[chan []byte]struct{}),
	}
}

// Subscribe returns a channel that receives JSON-encoded events for the
// given username.
func (b *Broker) Subscribe(username string) chan []byte {
	ch := make(chan []byte, 16)
	b.mu.Lock()
	if b.subs[username] == nil {
		b.subs[username] = make(map[chan []byte]struct{})
	}
	b.subs[username][ch] = struct{}{}
	b.mu.Unlock()
	return ch
}

// Unsubscribe removes a channel from the username's subscribers.
func (b *Broker) Unsubscribe(username string, ch chan []byte) {
	b.mu.Lock()
	delete(b.subs[username], ch)
	if len(b.subs[username]) == 0 {
		delete(b.subs, username)
	}
	b.mu.Unlock()
}

// Publish sends an event to all subscribers of the given username.
func (b *Broker) Publish(username string, event ScoreEvent) {
	data, _ := json.Marshal(event)
	b.mu.RLock()
	for ch := range b.subs[username] {
		select {
		case ch <- data:
		default:
			// Drop if subscriber is slow.
		}
	}
	b.mu.RUnlock()
}
