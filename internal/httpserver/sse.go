// internal/httpserver/sse.go
//
// Server-sent events for live plays. Each connected client gets a small
// buffered channel; slow clients miss messages rather than block the
// session clock.

package httpserver

import (
	"fmt"
	"net/http"
	"sync"
	"time"
)

const (
	sseChannelBuffer = 16
	sseHeartbeat     = 30 * time.Second
)

// client is a single SSE connection.
type client struct {
	ch     chan string
	playID string
}

// Broadcaster fans messages out to the clients of each play.
type Broadcaster struct {
	mu      sync.RWMutex
	clients map[*client]struct{}
}

// NewBroadcaster creates an empty broadcaster.
func NewBroadcaster() *Broadcaster {
	return &Broadcaster{clients: make(map[*client]struct{})}
}

// Register adds a client for a play.
func (b *Broadcaster) Register(playID string) *client {
	c := &client{ch: make(chan string, sseChannelBuffer), playID: playID}
	b.mu.Lock()
	b.clients[c] = struct{}{}
	b.mu.Unlock()
	return c
}

// Unregister removes a client and closes its channel.
func (b *Broadcaster) Unregister(c *client) {
	b.mu.Lock()
	if _, ok := b.clients[c]; ok {
		delete(b.clients, c)
		close(c.ch)
	}
	b.mu.Unlock()
}

// Broadcast sends data to every client of the play without blocking.
func (b *Broadcaster) Broadcast(playID, data string) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	for c := range b.clients {
		if c.playID != playID {
			continue
		}
		select {
		case c.ch <- data:
		default:
			// full, skip slow client
		}
	}
}

// ClientCount returns the number of clients attached to a play.
func (b *Broadcaster) ClientCount(playID string) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	n := 0
	for c := range b.clients {
		if c.playID == playID {
			n++
		}
	}
	return n
}

// ServeSSE streams a play's events until the client goes away. onConnect
// runs after registration, so a first snapshot cannot race later events.
func (b *Broadcaster) ServeSSE(w http.ResponseWriter, r *http.Request, playID string, onConnect func(c *client)) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, `{"error":"streaming_unsupported"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	c := b.Register(playID)
	defer b.Unregister(c)
	if onConnect != nil {
		onConnect(c)
	}
	flusher.Flush()

	ticker := time.NewTicker(sseHeartbeat)
	defer ticker.Stop()

	for {
		select {
		case <-r.Context().Done():
			return
		case msg, ok := <-c.ch:
			if !ok {
				return
			}
			fmt.Fprintf(w, "data: %s\n\n", msg)
			flusher.Flush()
		case <-ticker.C:
			fmt.Fprint(w, ": heartbeat\n\n")
			flusher.Flush()
		}
	}
}
