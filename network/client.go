package network

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"sync"

	"github.com/automoto/rocketview/shared/messages"
	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
)

type ClientState int

const (
	StateDisconnected ClientState = iota
	StateConnecting
	StateConnected
	StateError
)

func (s ClientState) String() string {
	switch s {
	case StateDisconnected:
		return "disconnected"
	case StateConnecting:
		return "connecting"
	case StateConnected:
		return "connected"
	case StateError:
		return "error"
	}
	return "unknown"
}

// readLimit bounds a single telemetry frame.
const readLimit = 1 << 20

// URL builds the telemetry endpoint for host and port.
func URL(host string, port int) string {
	return "ws://" + host + ":" + strconv.Itoa(port)
}

// Client receives telemetry frames from a server over a websocket.
// All shared fields are protected by mu (the read loop runs on its own goroutine).
// A connection is never retried; callers reconnect explicitly.
type Client struct {
	mu sync.RWMutex

	state     ClientState
	lastError error
	url       string
	conn      *websocket.Conn
	cancel    context.CancelFunc
	gen       uint64 // bumped on every Connect/Disconnect so stale loops can tell
	received  bool   // a frame arrived on the current connection

	frameCh chan messages.Frame // size-1 buffered; latest wins
}

func NewClient() *Client {
	return &Client{
		state:   StateDisconnected,
		frameCh: make(chan messages.Frame, 1),
	}
}

// Connect dials url in a background goroutine and starts reading frames.
// An existing connection is dropped first.
func (c *Client) Connect(url string) {
	c.Disconnect()

	ctx, cancel := context.WithCancel(context.Background())

	c.mu.Lock()
	c.gen++
	gen := c.gen
	c.state = StateConnecting
	c.received = false
	c.lastError = nil
	c.url = url
	c.cancel = cancel
	c.mu.Unlock()

	go c.run(ctx, gen, url)
}

func (c *Client) run(ctx context.Context, gen uint64, url string) {
	conn, _, err := websocket.Dial(ctx, url, nil)
	if err != nil {
		if ctx.Err() == nil {
			c.fail(gen, fmt.Errorf("dial %s: %w", url, err))
		}
		return
	}
	conn.SetReadLimit(readLimit)

	if !c.attach(gen, conn) {
		_ = conn.CloseNow()
		return
	}
	log.Printf("[telemetry] connected to %s", url)

	for {
		var f messages.Frame
		if err := wsjson.Read(ctx, conn, &f); err != nil {
			c.closed(gen, err)
			return
		}
		c.publish(gen, f)
	}
}

func (c *Client) attach(gen uint64, conn *websocket.Conn) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.gen != gen {
		return false
	}
	c.conn = conn
	c.state = StateConnected
	return true
}

// publish holds mu while pushing so a concurrent Disconnect either rejects
// the frame or drains it afterwards.
func (c *Client) publish(gen uint64, f messages.Frame) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.gen != gen {
		return
	}
	c.received = true

	select { // drain stale, push latest
	case <-c.frameCh:
	default:
	}
	select {
	case c.frameCh <- f:
	default:
	}
}

func (c *Client) closed(gen uint64, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.gen != gen {
		return
	}

	c.conn = nil
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
	status := websocket.CloseStatus(err)
	if status == websocket.StatusNormalClosure || status == websocket.StatusGoingAway || errors.Is(err, context.Canceled) {
		log.Printf("[telemetry] connection to %s closed (%d)", c.url, status)
		c.state = StateDisconnected
		return
	}
	log.Printf("[telemetry] connection to %s lost: %v", c.url, err)
	c.state = StateError
	c.lastError = fmt.Errorf("read frame: %w", err)
}

func (c *Client) fail(gen uint64, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.gen != gen {
		return
	}
	log.Printf("[telemetry] error: %v", err)
	c.state = StateError
	c.lastError = err
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
}

// Disconnect closes the connection, if any, and discards any unread frame.
func (c *Client) Disconnect() {
	c.mu.Lock()
	conn := c.conn
	cancel := c.cancel
	wasActive := c.state == StateConnecting || c.state == StateConnected
	c.gen++
	c.conn = nil
	c.cancel = nil
	c.state = StateDisconnected
	c.received = false
	c.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	if conn != nil {
		_ = conn.CloseNow()
	}
	if wasActive {
		log.Println("[telemetry] disconnected")
	}

	select {
	case <-c.frameCh:
	default:
	}
}

// Toggle disconnects an active or pending connection, or connects to url.
// It reports whether a connection was started.
func (c *Client) Toggle(url string) bool {
	switch c.State() {
	case StateConnecting, StateConnected:
		c.Disconnect()
		return false
	}
	c.Connect(url)
	return true
}

func (c *Client) State() ClientState {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}

func (c *Client) Connected() bool {
	return c.State() == StateConnected
}

// Live reports whether the client is connected and has received at least
// one frame on this connection. Until then callers keep their local state.
func (c *Client) Live() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state == StateConnected && c.received
}

func (c *Client) LastError() error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.lastError
}

func (c *Client) URL() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.url
}

// LatestFrame returns the most recent frame not yet consumed, or nil. Non-blocking.
func (c *Client) LatestFrame() *messages.Frame {
	select {
	case f := <-c.frameCh:
		return &f
	default:
		return nil
	}
}
