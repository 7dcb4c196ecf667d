package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ella-quan/meowhome/internal/middleware"
	"github.com/ella-quan/meowhome/internal/realtime"
	"github.com/ella-quan/meowhome/internal/service"
)

// signalRecorder reports each handler write so tests can sequence
// publishes against the stream without sleeping.
type signalRecorder struct {
	*httptest.ResponseRecorder
	writes chan struct{}
}

func newSignalRecorder() *signalRecorder {
	return &signalRecorder{
		ResponseRecorder: httptest.NewRecorder(),
		writes:           make(chan struct{}, 16),
	}
}

func (s *signalRecorder) Write(b []byte) (int, error) {
	n, err := s.ResponseRecorder.Write(b)
	select {
	case s.writes <- struct{}{}:
	default:
	}
	return n, err
}

// The stream must survive the global middleware chain: the logger wraps
// the response writer, and the wrapper has to keep forwarding Flush.
func TestStreamThroughMiddlewareChain(t *testing.T) {
	hub := service.NewHub()
	defer hub.Close()

	h := middleware.Chain(
		http.HandlerFunc(NewStreamHandler(hub).Stream),
		middleware.RequestID,
		middleware.Logger,
		middleware.Recovery,
	)

	// A pre-cancelled context makes the handler write its preamble and
	// return instead of holding the connection open.
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	req := httptest.NewRequest(http.MethodGet, "/v1/stream", nil).WithContext(ctx)
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/event-stream", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), "event: connected")
}

func TestStreamDeliversChangeEvents(t *testing.T) {
	hub := service.NewHub()
	defer hub.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	req := httptest.NewRequest(http.MethodGet, "/v1/stream", nil).WithContext(ctx)
	rec := newSignalRecorder()

	done := make(chan struct{})
	go func() {
		defer close(done)
		NewStreamHandler(hub).Stream(rec, req)
	}()

	// First write is the connected preamble, so the subscription is
	// registered once it lands.
	<-rec.writes
	hub.CollectionChanged(realtime.CollectionTodos)
	<-rec.writes

	cancel()
	<-done

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "event: connected")
	assert.Contains(t, body, "event: collection.changed")
	assert.Contains(t, body, `"collection":"todos"`)
}
