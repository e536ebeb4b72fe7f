package ws

import (
	"encoding/json"
	"log/slog"

	"racecontrol/internal/domain"
)

const (
	EventIncidentCreated = "incidentCreated"
	EventIncidentUpdated = "incidentUpdated"
	EventIncidentDeleted = "incidentDeleted"
)

type envelope struct {
	Event string `json:"event"`
	Data  any    `json:"data"`
}

// Hub fans mutation events out to every connected client. The client set is
// touched only by the Run goroutine, so it needs no lock; registration,
// removal and broadcast all funnel through channels.
type Hub struct {
	logger *slog.Logger

	clients    map[*Client]bool
	register   chan *Client
	unregister chan *Client
	broadcast  chan []byte
	done       chan struct{}
}

func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		logger:     logger,
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan []byte, 16),
		done:       make(chan struct{}),
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.clients[client] = true
			h.logger.Info("ws client connected", slog.String("remote", client.remoteAddr))
		case client := <-h.unregister:
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
				h.logger.Info("ws client disconnected", slog.String("remote", client.remoteAddr))
			}
		case message := <-h.broadcast:
			for client := range h.clients {
				select {
				case client.send <- message:
				default:
					// Slow consumer: drop the connection rather than block
					// the hub.
					delete(h.clients, client)
					close(client.send)
				}
			}
		case <-h.done:
			for client := range h.clients {
				delete(h.clients, client)
				close(client.send)
			}
			return
		}
	}
}

func (h *Hub) Shutdown() {
	close(h.done)
}

// IncidentCreated implements service.Notifier. Fire and forget: events sent
// while nobody is connected are dropped, never retried.
func (h *Hub) IncidentCreated(incident domain.Incident) {
	h.emit(EventIncidentCreated, incident)
}

func (h *Hub) IncidentUpdated(incident domain.Incident) {
	h.emit(EventIncidentUpdated, incident)
}

func (h *Hub) IncidentDeleted(id string) {
	h.emit(EventIncidentDeleted, id)
}

func (h *Hub) emit(event string, data any) {
	if h == nil {
		return
	}
	message, err := json.Marshal(envelope{Event: event, Data: data})
	if err != nil {
		h.logger.Error("marshal ws event failed", slog.String("event", event), slog.Any("error", err))
		return
	}
	select {
	case h.broadcast <- message:
	case <-h.done:
	}
}
