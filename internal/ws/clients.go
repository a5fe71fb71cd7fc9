package ws

import (
	"time"

	"github.com/gorilla/websocket"
)

const writeWait = 10 * time.Second

type Client struct {
	Conn *websocket.Conn
	send chan StatusEvent
}

func NewClient(conn *websocket.Conn) *Client {
	return &Client{Conn: conn, send: make(chan StatusEvent, 16)}
}

func (c *Client) writeMessage() {
	defer c.Conn.Close()

	for ev := range c.send {
		_ = c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := c.Conn.WriteJSON(ev); err != nil {
			return
		}
	}
	_ = c.Conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseGoingAway, ""), time.Now().Add(writeWait))
}

// readMessage discards client frames and returns once the connection closes.
func (c *Client) readMessage(hub *Hub) {
	defer func() {
		hub.Unregister(c)
		c.Conn.Close()
	}()

	for {
		if _, _, err := c.Conn.ReadMessage(); err != nil {
			return
		}
	}
}
