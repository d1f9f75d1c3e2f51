package events

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// Hub fans board events out to SSE subscribers of a project. When a redis
// client is configured, every event is also appended to a per-project list so
// reconnecting clients can replay what they missed via Last-Event-ID. Without
// redis the hub still works, minus replay across reconnects.
type Hub struct {
	mu          sync.RWMutex
	subscribers map[uint][]*subscriber // projectID -> subscribers
	rdb         *redis.Client
	seq         map[uint]int64 // next event ID per project when redis is absent
}

type subscriber struct {
	ch chan Event
}

// NewHub builds a hub. rdb may be nil.
func NewHub(rdb *redis.Client) *Hub {
	return &Hub{
		subscribers: make(map[uint][]*subscriber),
		rdb:         rdb,
		seq:         make(map[uint]int64),
	}
}

func streamKey(projectID uint) string {
	return fmt.Sprintf("board:stream:%d", projectID)
}

// Subscribe registers a listener for a project's board events. The returned
// func removes the subscription and closes the channel.
func (h *Hub) Subscribe(projectID uint) (<-chan Event, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	sub := &subscriber{ch: make(chan Event, 64)}
	h.subscribers[projectID] = append(h.subscribers[projectID], sub)

	unsub := func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		subs := h.subscribers[projectID]
		for i, s := range subs {
			if s == sub {
				h.subscribers[projectID] = append(subs[:i], subs[i+1:]...)
				close(sub.ch)
				break
			}
		}
		if len(h.subscribers[projectID]) == 0 {
			delete(h.subscribers, projectID)
		}
	}
	return sub.ch, unsub
}

// Broadcast assigns the event its ID, persists it for replay when redis is
// configured and delivers it to current subscribers. Slow subscribers are
// skipped rather than blocking the caller.
func (h *Hub) Broadcast(projectID uint, event Event) {
	h.mu.Lock()
	if h.rdb != nil {
		ctx := context.Background()
		key := streamKey(projectID)
		if n, err := h.rdb.LLen(ctx, key).Result(); err == nil {
			event.ID = n
		}
		data, _ := json.Marshal(event)
		h.rdb.RPush(ctx, key, string(data))
		h.rdb.Expire(ctx, key, 24*time.Hour)
	} else {
		event.ID = h.seq[projectID]
		h.seq[projectID] = event.ID + 1
	}
	subs := make([]*subscriber, len(h.subscribers[projectID]))
	copy(subs, h.subscribers[projectID])
	h.mu.Unlock()

	for _, sub := range subs {
		select {
		case sub.ch <- event:
		default:
			// drop if full
		}
	}
}

// ReplayFrom returns the events persisted after fromID, in order. Without
// redis there is no history to serve.
func (h *Hub) ReplayFrom(projectID uint, fromID int64) ([]Event, error) {
	if h.rdb == nil {
		return nil, nil
	}
	ctx := context.Background()
	items, err := h.rdb.LRange(ctx, streamKey(projectID), fromID, -1).Result()
	if err != nil {
		return nil, err
	}

	out := make([]Event, 0, len(items))
	for i, item := range items {
		var ev Event
		if err := json.Unmarshal([]byte(item), &ev); err != nil {
			continue
		}
		ev.ID = fromID + int64(i)
		out = append(out, ev)
	}
	return out, nil
}

// ParseLastEventID reads the SSE Last-Event-ID header, 0 when absent.
func ParseLastEventID(header string) int64 {
	if header == "" {
		return 0
	}
	id, _ := strconv.ParseInt(header, 10, 64)
	return id
}
