package client

import (
	"time"

	"github.com/gorilla/websocket"

	"luckygates/internal/logger"
	"luckygates/internal/protocol"
)

// readPump reads messages from the authority until the connection drops.
func (c *Client) readPump() {
	defer func() {
		if r := recover(); r != nil {
			logger.LogPanic(r)
		}
		c.Close()
	}()

	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, message, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				if c.OnError != nil {
					c.OnError(err)
				}
			}
			return
		}

		msg, err := protocol.Decode(message)
		if err != nil {
			logger.LogError("message decode failed: %v", err)
			continue
		}

		// Heartbeat replies update latency and are not forwarded.
		if msg.Type == protocol.MsgPong {
			if payload, err := protocol.ParsePayload[protocol.PongPayload](msg); err == nil {
				c.latency.Store(time.Now().UnixMilli() - payload.ClientTimestamp)
				if c.OnLatencyUpdate != nil {
					c.OnLatencyUpdate(c.latency.Load())
				}
			}
			continue
		}

		select {
		case c.receive <- msg:
		default:
		}
	}
}

// writePump writes queued messages and keeps the websocket-level ping alive.
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		if r := recover(); r != nil {
			logger.LogPanic(r)
		}
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}

		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}

		case <-c.done:
			return
		}
	}
}
