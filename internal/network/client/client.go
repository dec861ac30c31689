// Package client is the websocket channel to the game authority. Delivery is
// FIFO and best effort: there is no offline queue and no redelivery, a
// dropped connection just closes the receive side.
package client

import (
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"luckygates/internal/protocol"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10

	// Application-level heartbeat interval
	heartbeatInterval = 5 * time.Second
)

// Client is the websocket connection to the authority.
type Client struct {
	ServerURL string
	conn      *websocket.Conn
	send      chan []byte
	receive   chan *protocol.Message
	done      chan struct{}

	// InstanceID identifies this client process to the authority across the
	// lifetime of the connection.
	InstanceID string

	// latency in milliseconds, from the last heartbeat round-trip. Written
	// by the read pump, read from the UI goroutine.
	latency atomic.Int64

	// Callbacks, invoked from the read pump.
	OnError         func(error)
	OnLatencyUpdate func(int64)

	mu     sync.RWMutex
	closed bool
}

// Latency reports the last measured heartbeat round-trip in milliseconds.
func (c *Client) Latency() int64 {
	return c.latency.Load()
}

// NewClient creates a client for the given ws:// URL.
func NewClient(serverURL string) *Client {
	return &Client{
		ServerURL:  serverURL,
		InstanceID: uuid.NewString(),
		send:       make(chan []byte, 256),
		receive:    make(chan *protocol.Message, 256),
		done:       make(chan struct{}),
	}
}

// Connect dials the authority and starts the read/write pumps.
func (c *Client) Connect() error {
	dialer := websocket.Dialer{
		HandshakeTimeout: 10 * time.Second,
	}

	conn, _, err := dialer.Dial(c.ServerURL, nil)
	if err != nil {
		return err
	}

	c.conn = conn

	go c.readPump()
	go c.writePump()

	return nil
}

// SendMessage queues a message for delivery.
func (c *Client) SendMessage(msg *protocol.Message) error {
	c.mu.RLock()
	if c.closed {
		c.mu.RUnlock()
		return errors.New("connection closed")
	}
	c.mu.RUnlock()

	data, err := msg.Encode()
	if err != nil {
		return err
	}

	select {
	case c.send <- data:
		return nil
	default:
		return errors.New("send buffer full")
	}
}

// Receive blocks until the next inbound message.
func (c *Client) Receive() (*protocol.Message, error) {
	select {
	case msg := <-c.receive:
		return msg, nil
	case <-c.done:
		return nil, errors.New("connection closed")
	}
}

// ReceiveWithTimeout is Receive with an upper bound on the wait.
func (c *Client) ReceiveWithTimeout(timeout time.Duration) (*protocol.Message, error) {
	select {
	case msg := <-c.receive:
		return msg, nil
	case <-c.done:
		return nil, errors.New("connection closed")
	case <-time.After(timeout):
		return nil, errors.New("receive timeout")
	}
}

// Close shuts the connection down. Safe to call more than once.
func (c *Client) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.closed {
		c.closed = true
		close(c.done)
		if c.conn != nil {
			c.conn.Close()
		}
	}
}

// IsConnected reports whether the connection is up.
func (c *Client) IsConnected() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return !c.closed && c.conn != nil
}

// Ping sends an application-level heartbeat.
func (c *Client) Ping() error {
	return c.SendMessage(protocol.MustNewMessage(protocol.MsgPing, protocol.PingPayload{
		ClientID:  c.InstanceID,
		Timestamp: time.Now().UnixMilli(),
	}))
}

// StartHeartbeat pings the authority on a fixed interval until Close.
func (c *Client) StartHeartbeat() {
	go func() {
		ticker := time.NewTicker(heartbeatInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				if c.IsConnected() {
					_ = c.Ping()
				}
			case <-c.done:
				return
			}
		}
	}()
}
