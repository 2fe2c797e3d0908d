package hub

import (
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer.
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10

	// Outgoing message buffer per client.
	sendBuffer = 16
)

// Client is one push-channel subscriber. The authenticated identity is fixed
// at handshake time and carried here explicitly, never inferred from fields
// on the transport connection.
type Client struct {
	ID        uuid.UUID
	UserID    uint
	SessionID uint

	hub  *Hub
	conn *websocket.Conn
	send chan []byte

	// onClose runs once when the read pump exits, after the client has been
	// unsubscribed.
	onClose func(*Client)
}

// NewClient wraps an upgraded websocket connection.
func NewClient(h *Hub, conn *websocket.Conn, userID, sessionID uint, onClose func(*Client)) *Client {
	return &Client{
		ID:        uuid.New(),
		UserID:    userID,
		SessionID: sessionID,
		hub:       h,
		conn:      conn,
		send:      make(chan []byte, sendBuffer),
		onClose:   onClose,
	}
}

// Run starts the read and write pumps. It returns immediately.
func (c *Client) Run() {
	go c.writePump()
	go c.readPump()
}

// readPump drains the connection until it dies. Incoming frames carry no
// game actions (those go through the request/response API); reading is only
// needed to process control frames and detect disconnects.
func (c *Client) readPump() {
	defer func() {
		c.hub.Unsubscribe(c.SessionID, c)
		c.conn.Close()
		if c.onClose != nil {
			c.onClose(c)
		}
	}()

	c.conn.SetReadLimit(512)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("hub: unexpected close from client %s: %v", c.ID, err)
			}
			return
		}
	}
}

// writePump pumps messages from the send channel to the connection, with
// periodic pings to keep the peer alive.
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case msg, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				// The hub closed the channel on unsubscribe.
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
