package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/bookstore-chain/timeclock-backend-go/internal/handler/http/response"
	"github.com/bookstore-chain/timeclock-backend-go/internal/pkg/jwt"
	"github.com/bookstore-chain/timeclock-backend-go/internal/pkg/sse"
)

type LiveHandler interface {
	Stream(w http.ResponseWriter, r *http.Request)
}

type liveHandlerImpl struct {
	hub        *sse.Hub
	jwtService jwt.Service
}

func NewLiveHandler(hub *sse.Hub, jwtService jwt.Service) LiveHandler {
	return &liveHandlerImpl{
		hub:        hub,
		jwtService: jwtService,
	}
}

// Stream implements LiveHandler. Pushes clock events to the admin console as
// they happen. EventSource cannot set headers, so the short-lived token
// arrives as a query parameter.
func (h *liveHandlerImpl) Stream(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")
	if err := h.jwtService.ValidateLiveToken(token); err != nil {
		response.Unauthorized(w, "Invalid or expired stream token")
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		response.InternalServerError(w, "Streaming not supported")
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	events, unsubscribe := h.hub.Subscribe()
	defer unsubscribe()

	heartbeat := time.NewTicker(30 * time.Second)
	defer heartbeat.Stop()

	for {
		select {
		case <-r.Context().Done():
			return
		case <-heartbeat.C:
			fmt.Fprint(w, ": keep-alive\n\n")
			flusher.Flush()
		case event, ok := <-events:
			if !ok {
				return
			}
			payload, err := json.Marshal(event.Data)
			if err != nil {
				continue
			}
			fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event.Event, payload)
			flusher.Flush()
		}
	}
}
