package handler

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"github.com/ella-quan/meowhome/internal/service"
)

// StreamHandler serves the SSE change stream.
type StreamHandler struct {
	hub *service.Hub
}

// NewStreamHandler creates a new stream handler.
func NewStreamHandler(hub *service.Hub) *StreamHandler {
	return &StreamHandler{hub: hub}
}

// Stream handles GET /v1/stream. It holds the connection open and emits
// collection-change notices until the client disconnects.
func (h *StreamHandler) Stream(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming not supported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")

	subscriberID := uuid.New().String()
	sub := h.hub.Subscribe(subscriberID)
	defer h.hub.Unsubscribe(subscriberID)

	// Tell the client the stream is live before any change arrives.
	fmt.Fprintf(w, "event: connected\ndata: {\"subscriber_id\":%q}\n\n", subscriberID)
	flusher.Flush()

	for {
		select {
		case event, open := <-sub.Events:
			if !open {
				return
			}
			fmt.Fprint(w, event.Format())
			flusher.Flush()
		case <-sub.Done:
			return
		case <-r.Context().Done():
			return
		}
	}
}
