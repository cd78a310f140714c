// Package netvis is an optional, outer observer layer: it streams a
// world's mutation events (add/remove/move, with the resulting
// collisions) to connected websocket clients as JSON, for spectating or
// debugging a running simulation from another process.
//
// This is explicitly not part of the engine's contract (the engine itself
// has no wire protocol) and does not change the single-threaded,
// synchronous semantics of world.World — callers still
// drive the world from one goroutine and call Server.Publish after each
// mutation; the server only fans the resulting snapshot out.
package netvis

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
)

// EventKind identifies what kind of world mutation an Event describes.
type EventKind string

const (
	EventAdd      EventKind = "add"
	EventRemove   EventKind = "remove"
	EventMove     EventKind = "move"
	EventTeleport EventKind = "teleport"
)

// CollisionInfo is the JSON-friendly projection of a resolved collision.
type CollisionInfo struct {
	Other          string  `json:"other"`
	Ti             float64 `json:"ti"`
	IsIntersection bool    `json:"isIntersection"`
	Nx             float64 `json:"nx"`
	Ny             float64 `json:"ny"`
}

// Event is one world mutation, broadcast to every connected observer.
type Event struct {
	Kind       EventKind       `json:"kind"`
	Item       string          `json:"item"`
	Left       float64         `json:"left"`
	Top        float64         `json:"top"`
	Width      float64         `json:"width"`
	Height     float64         `json:"height"`
	Collisions []CollisionInfo `json:"collisions,omitempty"`
}

// observer is one connected websocket client.
type observer struct {
	conn *websocket.Conn
	send chan Event
}

// Server fans out Events to every connected observer over websocket.
type Server struct {
	upgrader  websocket.Upgrader
	mu        sync.RWMutex
	observers map[*observer]struct{}
}

// NewServer builds an observer broadcast server.
func NewServer() *Server {
	return &Server{
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		observers: make(map[*observer]struct{}),
	}
}

// Handler returns the net/http handler to mount at an "/observe"-style
// path.
func (s *Server) Handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := s.upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Printf("netvis: upgrade error: %v", err)
			return
		}

		obs := &observer{conn: conn, send: make(chan Event, 64)}
		s.mu.Lock()
		s.observers[obs] = struct{}{}
		s.mu.Unlock()

		go s.writePump(obs)
	}
}

func (s *Server) writePump(obs *observer) {
	defer func() {
		s.mu.Lock()
		delete(s.observers, obs)
		s.mu.Unlock()
		obs.conn.Close()
	}()

	for evt := range obs.send {
		data, err := json.Marshal(evt)
		if err != nil {
			log.Printf("netvis: marshal error: %v", err)
			continue
		}
		if err := obs.conn.WriteMessage(websocket.TextMessage, data); err != nil {
			return
		}
	}
}

// Publish fans evt out to every connected observer, dropping it for any
// observer whose outbound queue is full rather than blocking the caller.
func (s *Server) Publish(evt Event) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for obs := range s.observers {
		select {
		case obs.send <- evt:
		default:
			// Slow observer: drop rather than stall the simulation loop.
		}
	}
}

// ObserverCount returns the number of currently connected observers.
func (s *Server) ObserverCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.observers)
}
