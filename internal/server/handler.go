package server

import (
	"log"
	"net/http"

	"github.com/gorilla/websocket"
)

const sendBuffer = 256

// Spectators are read-only, so any origin may watch.
var spectatorUpgrader = websocket.Upgrader{
	ReadBufferSize:  maxMessageSize,
	WriteBufferSize: 4 * maxMessageSize,
	CheckOrigin:     func(*http.Request) bool { return true },
}

// ServeWs upgrades a spectator connection and registers it with the hub.
func ServeWs(hub *Hub, w http.ResponseWriter, r *http.Request) {
	conn, err := spectatorUpgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("Spectator upgrade from %s failed: %v", r.RemoteAddr, err)
		return
	}

	spectator := &Client{hub: hub, conn: conn, send: make(chan []byte, sendBuffer)}
	select {
	case hub.register <- spectator:
	case <-hub.stop:
		conn.Close()
		return
	}

	go spectator.WritePump()
	go spectator.ReadPump()
}
