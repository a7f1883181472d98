package server

import (
	"log"
	"sync"

	"spades-game/internal/game"
	"spades-game/internal/protocol"

	"github.com/google/uuid"
)

// clientMessage is a helper struct to pass messages along with the client reference.
type clientMessage struct {
	client  *Client
	message protocol.Message
}

// Hub fans the running game out to websocket spectators. It implements
// game.Display and game.Finisher; spectators never influence the game.
type Hub struct {
	clients        map[*Client]bool
	broadcast      chan []byte
	processMessage chan clientMessage
	register       chan *Client
	unregister     chan *Client
	stop           chan struct{}
	stopOnce       sync.Once

	mu     sync.RWMutex
	gameID string
	board  []byte // latest board message, replayed to new spectators
	count  int
}

// NewHub creates a new Hub instance.
func NewHub() *Hub {
	return &Hub{
		clients:        make(map[*Client]bool),
		broadcast:      make(chan []byte, 256),
		processMessage: make(chan clientMessage),
		register:       make(chan *Client),
		unregister:     make(chan *Client),
		stop:           make(chan struct{}),
	}
}

// Run starts the Hub's main loop. It returns after Stop.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			client.ID = uuid.NewString()
			h.clients[client] = true
			h.setCount(len(h.clients))
			log.Printf("Spectator %s (%s) connected", client.ID, client.conn.RemoteAddr())

			h.mu.RLock()
			welcome, _ := protocol.NewMessage(protocol.TypeWelcome, protocol.WelcomePayload{ClientID: client.ID, GameID: h.gameID})
			board := h.board
			h.mu.RUnlock()
			h.sendTo(client, welcome)
			if board != nil {
				h.sendTo(client, board)
			}

		case client := <-h.unregister:
			h.drop(client)

		case message := <-h.broadcast:
			for client := range h.clients {
				h.sendTo(client, message)
			}

		case clientMsg := <-h.processMessage:
			h.handleMessage(clientMsg.client, clientMsg.message)

		case <-h.stop:
			for client := range h.clients {
				h.drop(client)
			}
			return
		}
	}
}

// Stop ends Run and disconnects every spectator.
func (h *Hub) Stop() {
	h.stopOnce.Do(func() { close(h.stop) })
}

// ClientCount reports the connected spectators.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.count
}

func (h *Hub) setCount(n int) {
	h.mu.Lock()
	h.count = n
	h.mu.Unlock()
}

// drop must only be called from Run.
func (h *Hub) drop(client *Client) {
	if _, ok := h.clients[client]; !ok {
		return
	}
	delete(h.clients, client)
	close(client.send)
	h.setCount(len(h.clients))
	log.Printf("Spectator %s disconnected", client.ID)
}

// sendTo must only be called from Run.
func (h *Hub) sendTo(client *Client, message []byte) {
	select {
	case client.send <- message:
	default:
		log.Printf("Failed to send message to spectator %s (channel full), dropping.", client.ID)
		h.drop(client)
	}
}

func (h *Hub) handleMessage(client *Client, msg protocol.Message) {
	switch msg.Type {
	case protocol.TypePing:
		pongMsg, _ := protocol.NewMessage(protocol.TypePong, nil)
		h.sendTo(client, pongMsg)
	default:
		log.Printf("Received unknown message type '%s' from spectator %s", msg.Type, client.ID)
		errMsg, _ := protocol.NewMessage(protocol.TypeError, protocol.ErrorPayload{Message: "Spectators can only send ping."})
		h.sendTo(client, errMsg)
	}
}

func encode(msgType string, payload any) []byte {
	message, err := protocol.NewMessage(msgType, payload)
	if err != nil {
		log.Printf("Error creating %s message: %v", msgType, err)
		return nil
	}
	return message
}

// publish queues a message for every spectator without blocking the game.
func (h *Hub) publish(message []byte) {
	if message == nil {
		return
	}
	select {
	case h.broadcast <- message:
	case <-h.stop:
	default:
		log.Printf("Spectator broadcast queue full, dropping message.")
	}
}

// Render implements game.Display.
func (h *Hub) Render(snap game.Snapshot) {
	message := encode(protocol.TypeBoard, protocol.BoardPayload{Snapshot: snap})
	if message == nil {
		return
	}
	h.mu.Lock()
	h.gameID = snap.GameID
	h.board = message
	h.mu.Unlock()
	h.publish(message)
}

// Announce implements game.Display.
func (h *Hub) Announce(msg string) {
	h.publish(encode(protocol.TypeAnnounce, protocol.AnnouncePayload{Message: msg}))
}

// Finish implements game.Finisher.
func (h *Hub) Finish(res game.Result) {
	h.publish(encode(protocol.TypeGameOver, protocol.NewGameOverPayload(res)))
}
