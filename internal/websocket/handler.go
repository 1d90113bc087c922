package websocket

import (
	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"
)

// ServeWs registers the connection with the hub and runs the pumps. The
// inbound handler receives chat messages the client sends; pass nil for a
// push-only connection.
func ServeWs(hub *Hub, c *websocket.Conn, userID uuid.UUID, onMessage InboundHandler) {
	client := &Client{Hub: hub, Conn: c, UserID: userID, Send: make(chan []byte, 256), onMessage: onMessage}
	client.Hub.register <- client

	go client.writePump()
	client.readPump() // blocks until the peer goes away
}
