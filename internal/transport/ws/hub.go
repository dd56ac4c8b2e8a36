package ws

import (
	"encoding/json"
	"log"
	"sync"
)

// MessageType defines the type of WebSocket message
type MessageType string

// Monitor feed message types
const (
	MsgInterviewStarted MessageType = "interview_started"
	MsgQuestion         MessageType = "question"
	MsgAnswer           MessageType = "answer"
	MsgSecurityEvent    MessageType = "security_event"
	MsgEmotionUpdate    MessageType = "emotion_update"
	MsgScoreReady       MessageType = "score_ready"
)

// Message is the WebSocket envelope format
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// Hub fans interview events out to monitor connections, keyed by session id
type Hub struct {
	monitors map[string]map[*Connection]bool

	mu sync.RWMutex

	register   chan *Connection
	unregister chan *Connection
	broadcast  chan *BroadcastMessage
}

// Connection represents one observer's WebSocket connection
type Connection struct {
	SessionID string
	Send      chan []byte
	Hub       *Hub
}

// BroadcastMessage is a message to fan out to a session's monitors
type BroadcastMessage struct {
	SessionID string
	Message   *Message
}

// NewHub creates a hub and starts its event loop
func NewHub() *Hub {
	h := &Hub{
		monitors:   make(map[string]map[*Connection]bool),
		register:   make(chan *Connection),
		unregister: make(chan *Connection),
		broadcast:  make(chan *BroadcastMessage, 256),
	}
	go h.run()
	return h
}

func (h *Hub) run() {
	for {
		select {
		case conn := <-h.register:
			h.mu.Lock()
			if h.monitors[conn.SessionID] == nil {
				h.monitors[conn.SessionID] = make(map[*Connection]bool)
			}
			h.monitors[conn.SessionID][conn] = true
			log.Printf("Monitor connected to session %s", conn.SessionID)
			h.mu.Unlock()

		case conn := <-h.unregister:
			h.mu.Lock()
			if conns, ok := h.monitors[conn.SessionID]; ok {
				if conns[conn] {
					delete(conns, conn)
					close(conn.Send)
					log.Printf("Monitor disconnected from session %s", conn.SessionID)
				}
				if len(conns) == 0 {
					delete(h.monitors, conn.SessionID)
				}
			}
			h.mu.Unlock()

		case msg := <-h.broadcast:
			h.mu.RLock()
			data, _ := json.Marshal(msg.Message)
			for conn := range h.monitors[msg.SessionID] {
				select {
				case conn.Send <- data:
				default:
					// Drop message if buffer full
				}
			}
			h.mu.RUnlock()
		}
	}
}

// Register adds a connection
func (h *Hub) Register(conn *Connection) {
	h.register <- conn
}

// Unregister removes a connection
func (h *Hub) Unregister(conn *Connection) {
	h.unregister <- conn
}

// Broadcast sends an event to all monitors of a session (implements
// handler.Broadcaster)
func (h *Hub) Broadcast(sessionID, msgType string, payload interface{}) {
	data, _ := json.Marshal(payload)
	h.broadcast <- &BroadcastMessage{
		SessionID: sessionID,
		Message: &Message{
			Type:    MessageType(msgType),
			Payload: data,
		},
	}
}
