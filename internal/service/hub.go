package service

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/ella-quan/meowhome/internal/realtime"
)

// ChangeEventType tags a server-sent event.
type ChangeEventType string

const (
	// EventCollectionChanged tells clients to refetch a collection.
	EventCollectionChanged ChangeEventType = "collection.changed"

	// EventHeartbeat keeps idle connections alive.
	EventHeartbeat ChangeEventType = "heartbeat"
)

// ChangeEvent is one server-sent event on the change stream.
type ChangeEvent struct {
	Type ChangeEventType `json:"type"`
	Data interface{}     `json:"data,omitempty"`
}

// Format returns the SSE formatted string
func (e *ChangeEvent) Format() string {
	data, _ := json.Marshal(e.Data)
	return "event: " + string(e.Type) + "\ndata: " + string(data) + "\n\n"
}

// ChangeSubscriber represents a connected SSE client
type ChangeSubscriber struct {
	ID     string
	Events chan *ChangeEvent
	Done   chan struct{}
}

// Hub fans collection change signals out to connected clients. It is
// the single family's counterpart of a per-room broadcast: every
// subscriber hears every change.
type Hub struct {
	mu          sync.RWMutex
	subscribers map[string]*ChangeSubscriber
	heartbeat   *time.Ticker
	done        chan struct{}
	closeOnce   sync.Once
}

// NewHub creates a hub and starts its heartbeat.
func NewHub() *Hub {
	hub := &Hub{
		subscribers: make(map[string]*ChangeSubscriber),
		done:        make(chan struct{}),
	}
	hub.heartbeat = time.NewTicker(30 * time.Second)
	go hub.sendHeartbeats()
	return hub
}

// Subscribe adds a new subscriber.
func (h *Hub) Subscribe(subscriberID string) *ChangeSubscriber {
	h.mu.Lock()
	defer h.mu.Unlock()

	sub := &ChangeSubscriber{
		ID:     subscriberID,
		Events: make(chan *ChangeEvent, 100), // Buffer to prevent blocking
		Done:   make(chan struct{}),
	}
	h.subscribers[subscriberID] = sub
	return sub
}

// Unsubscribe removes a subscriber.
func (h *Hub) Unsubscribe(subscriberID string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if sub, ok := h.subscribers[subscriberID]; ok {
		close(sub.Done)
		close(sub.Events)
		delete(h.subscribers, subscriberID)
	}
}

// CollectionChanged implements realtime.Notifier: both the syncer and
// the optimistic write path land here.
func (h *Hub) CollectionChanged(c realtime.Collection) {
	h.publish(&ChangeEvent{
		Type: EventCollectionChanged,
		Data: map[string]string{"collection": string(c)},
	})
}

func (h *Hub) publish(event *ChangeEvent) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, sub := range h.subscribers {
		select {
		case sub.Events <- event:
		default:
			// Buffer full, skip this subscriber
		}
	}
}

func (h *Hub) sendHeartbeats() {
	for {
		select {
		case <-h.done:
			return
		case <-h.heartbeat.C:
			h.publish(&ChangeEvent{
				Type: EventHeartbeat,
				Data: map[string]interface{}{"ts": time.Now().Unix()},
			})
		}
	}
}

// Close stops the heartbeat and disconnects all subscribers. Safe to
// call more than once.
func (h *Hub) Close() {
	h.closeOnce.Do(func() {
		close(h.done)
		h.heartbeat.Stop()

		h.mu.Lock()
		defer h.mu.Unlock()
		for id, sub := range h.subscribers {
			close(sub.Done)
			close(sub.Events)
			delete(h.subscribers, id)
		}
	})
}
