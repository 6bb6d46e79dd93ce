package service

import (
	"sync"
	"time"
)

// Change event kinds and entities published on the feed.
const (
	ChangeCreated = "created"
	ChangeUpdated = "updated"
	ChangeDeleted = "deleted"

	EntityMenu     = "menu"
	EntityCategory = "category"
)

// ChangeEvent describes one menu/category mutation, pushed to WebSocket
// subscribers (kitchen displays, dashboards).
type ChangeEvent struct {
	Kind       string    `json:"kind"`   // created | updated | deleted
	Entity     string    `json:"entity"` // menu | category
	ID         string    `json:"id"`
	Data       any       `json:"data,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

const subscriberBuffer = 16

// changeFeed is a minimal in-process broadcaster. Publish never blocks:
// a subscriber that cannot keep up has events dropped rather than stalling
// the mutating request.
type changeFeed struct {
	mu     sync.Mutex
	nextID int
	subs   map[int]chan ChangeEvent
}

func newChangeFeed() *changeFeed {
	return &changeFeed{subs: make(map[int]chan ChangeEvent)}
}

var _ Feed = (*changeFeed)(nil)

// Subscribe registers a new subscriber. The returned cancel func must be
// called to release the channel.
func (f *changeFeed) Subscribe() (<-chan ChangeEvent, func()) {
	f.mu.Lock()
	defer f.mu.Unlock()

	id := f.nextID
	f.nextID++
	ch := make(chan ChangeEvent, subscriberBuffer)
	f.subs[id] = ch

	cancel := func() {
		f.mu.Lock()
		defer f.mu.Unlock()
		if c, ok := f.subs[id]; ok {
			delete(f.subs, id)
			close(c)
		}
	}
	return ch, cancel
}

func (f *changeFeed) publish(e ChangeEvent) {
	if e.OccurredAt.IsZero() {
		e.OccurredAt = time.Now().UTC()
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, ch := range f.subs {
		select {
		case ch <- e:
		default: // slow subscriber, drop
		}
	}
}
