package events

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/coder/websocket"
	"github.com/google/uuid"
	"github.com/kasal-project/kasal/pkg/groupctx"
)

// Ownership authorizes a subscription: a client may only follow jobs that
// belong to one of its groups. Implemented by services.ExecutionService.
type Ownership interface {
	// OwnerGroups returns the subset of groupIDs that own an execution with
	// this job id. Empty means the job is unknown or belongs to someone else.
	OwnerGroups(ctx context.Context, jobID string, groupIDs []string) ([]string, error)
}

// channelKey scopes a subscription channel to the owning group. job_id is
// only unique per group, so two tenants' jobs with the same id get separate
// channels and never see each other's frames.
func channelKey(groupID, jobID string) string {
	return groupID + "/" + jobID
}

// ConnectionManager manages WebSocket connections and per-job subscriptions.
// One instance per process.
type ConnectionManager struct {
	// Active connections: connection_id → *Connection
	connections map[string]*Connection
	mu          sync.RWMutex

	// Job subscriptions: channelKey → set of connection_ids
	channels  map[string]map[string]bool
	channelMu sync.RWMutex

	ownership Ownership

	// Write timeout for WebSocket sends
	writeTimeout time.Duration
}

// Connection represents a single WebSocket client.
//
// subscriptions (keyed by channelKey) is accessed WITHOUT a lock. All reads
// and writes happen on the single goroutine that owns the connection
// (HandleConnection's read loop and its deferred cleanup).
type Connection struct {
	ID            string
	Conn          *websocket.Conn
	group         *groupctx.GroupContext
	subscriptions map[string]bool
	ctx           context.Context
	cancel        context.CancelFunc
}

// NewConnectionManager creates a new ConnectionManager.
func NewConnectionManager(ownership Ownership, writeTimeout time.Duration) *ConnectionManager {
	return &ConnectionManager{
		connections:  make(map[string]*Connection),
		channels:     make(map[string]map[string]bool),
		ownership:    ownership,
		writeTimeout: writeTimeout,
	}
}

// HandleConnection manages the lifecycle of a single WebSocket connection.
// Called by the HTTP handler after upgrade, with the resolved group context.
// Blocks until the connection closes.
func (m *ConnectionManager) HandleConnection(parentCtx context.Context, conn *websocket.Conn, gc *groupctx.GroupContext) {
	connID := uuid.New().String()
	ctx, cancel := context.WithCancel(parentCtx)

	c := &Connection{
		ID:            connID,
		Conn:          conn,
		group:         gc,
		subscriptions: make(map[string]bool),
		ctx:           ctx,
		cancel:        cancel,
	}

	m.registerConnection(c)
	defer m.unregisterConnection(c)

	m.sendJSON(c, map[string]string{
		"type":          "connection.established",
		"connection_id": connID,
	})

	for {
		_, data, err := conn.Read(ctx)
		if err != nil {
			return
		}

		var msg ClientMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			slog.Warn("Invalid WebSocket message", "connection_id", connID, "error", err)
			continue
		}
		m.handleClientMessage(ctx, c, &msg)
	}
}

// Broadcast sends a frame to all connections subscribed to the group's job.
// Fire-and-forget: send errors are logged and the connection left to its
// read loop to clean up.
func (m *ConnectionManager) Broadcast(groupID, jobID string, frame []byte) {
	key := channelKey(groupID, jobID)
	m.channelMu.RLock()
	connIDs, exists := m.channels[key]
	if !exists {
		m.channelMu.RUnlock()
		return
	}
	ids := make([]string, 0, len(connIDs))
	for id := range connIDs {
		ids = append(ids, id)
	}
	m.channelMu.RUnlock()

	// Snapshot connection pointers, then send without holding any lock —
	// a slow write (up to writeTimeout) must not stall register/unregister.
	m.mu.RLock()
	conns := make([]*Connection, 0, len(ids))
	for _, id := range ids {
		if conn, ok := m.connections[id]; ok {
			conns = append(conns, conn)
		}
	}
	m.mu.RUnlock()

	for _, conn := range conns {
		if err := m.sendRaw(conn, frame); err != nil {
			slog.Warn("Failed to send to WebSocket client",
				"connection_id", conn.ID, "job_id", jobID, "error", err)
		}
	}
}

// PublishTerminal broadcasts the execution_complete frame for a group's job.
func (m *ConnectionManager) PublishTerminal(groupID, jobID, status, errMsg string) {
	data, err := json.Marshal(TerminalFrame{
		Type:        "execution_complete",
		ExecutionID: jobID,
		Status:      status,
		Error:       errMsg,
	})
	if err != nil {
		return
	}
	m.Broadcast(groupID, jobID, data)
}

// ActiveConnections returns the count of active WebSocket connections.
func (m *ConnectionManager) ActiveConnections() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.connections)
}

// subscriberCount returns the number of subscribers for a group's job.
// Unexported — used by tests to poll instead of sleeping.
func (m *ConnectionManager) subscriberCount(groupID, jobID string) int {
	m.channelMu.RLock()
	defer m.channelMu.RUnlock()
	return len(m.channels[channelKey(groupID, jobID)])
}

// handleClientMessage dispatches a client message.
func (m *ConnectionManager) handleClientMessage(ctx context.Context, c *Connection, msg *ClientMessage) {
	switch msg.Action {
	case "subscribe":
		if msg.JobID == "" {
			m.sendJSON(c, map[string]string{"type": "error", "message": "job_id is required for subscribe"})
			return
		}
		owners := m.authorize(ctx, c, msg.JobID)
		if len(owners) == 0 {
			m.sendJSON(c, map[string]string{
				"type":    "subscription.error",
				"job_id":  msg.JobID,
				"message": "execution not found",
			})
			return
		}
		for _, groupID := range owners {
			m.subscribe(c, groupID, msg.JobID)
		}
		m.sendJSON(c, map[string]string{
			"type":   "subscription.confirmed",
			"job_id": msg.JobID,
		})

	case "unsubscribe":
		if msg.JobID == "" {
			m.sendJSON(c, map[string]string{"type": "error", "message": "job_id is required for unsubscribe"})
			return
		}
		m.unsubscribeJob(c, msg.JobID)

	case "ping":
		m.sendJSON(c, map[string]string{"type": "pong"})
	}
}

// authorize returns the connection's groups that own the job. An unauthorized
// job is indistinguishable from a missing one (empty result either way).
func (m *ConnectionManager) authorize(ctx context.Context, c *Connection, jobID string) []string {
	if m.ownership == nil {
		return []string{c.group.PrimaryGroupID()}
	}
	if !c.group.IsValid() {
		return nil
	}
	owners, err := m.ownership.OwnerGroups(ctx, jobID, c.group.GroupIDs)
	if err != nil {
		slog.Error("Subscription ownership check failed",
			"connection_id", c.ID, "job_id", jobID, "error", err)
		return nil
	}
	return owners
}

// subscribe registers a connection for a group's job frames.
func (m *ConnectionManager) subscribe(c *Connection, groupID, jobID string) {
	key := channelKey(groupID, jobID)
	m.channelMu.Lock()
	if _, exists := m.channels[key]; !exists {
		m.channels[key] = make(map[string]bool)
	}
	m.channels[key][c.ID] = true
	m.channelMu.Unlock()

	c.subscriptions[key] = true
}

// unsubscribeJob removes a connection from every channel it holds for this
// job id, whichever owning groups it subscribed under.
func (m *ConnectionManager) unsubscribeJob(c *Connection, jobID string) {
	suffix := "/" + jobID
	for key := range c.subscriptions {
		if strings.HasSuffix(key, suffix) {
			m.unsubscribeKey(c, key)
		}
	}
}

// unsubscribeKey removes a connection from one channel's subscriber set.
func (m *ConnectionManager) unsubscribeKey(c *Connection, key string) {
	m.channelMu.Lock()
	if subs, exists := m.channels[key]; exists {
		delete(subs, c.ID)
		if len(subs) == 0 {
			delete(m.channels, key)
		}
	}
	m.channelMu.Unlock()

	delete(c.subscriptions, key)
}

// registerConnection adds a connection to the tracking map.
func (m *ConnectionManager) registerConnection(c *Connection) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.connections[c.ID] = c
}

// unregisterConnection removes a connection and all its subscriptions.
func (m *ConnectionManager) unregisterConnection(c *Connection) {
	for key := range c.subscriptions {
		m.unsubscribeKey(c, key)
	}

	m.mu.Lock()
	delete(m.connections, c.ID)
	m.mu.Unlock()

	c.cancel()
	_ = c.Conn.Close(websocket.StatusNormalClosure, "")
}

// sendJSON marshals and sends a JSON message to a single connection.
func (m *ConnectionManager) sendJSON(c *Connection, v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		slog.Warn("Failed to marshal WebSocket message", "connection_id", c.ID, "error", err)
		return
	}
	if err := m.sendRaw(c, data); err != nil {
		slog.Warn("Failed to send WebSocket message", "connection_id", c.ID, "error", err)
	}
}

// sendRaw sends raw bytes to a single connection with a write timeout.
func (m *ConnectionManager) sendRaw(c *Connection, data []byte) error {
	writeCtx, cancel := context.WithTimeout(c.ctx, m.writeTimeout)
	defer cancel()
	return c.Conn.Write(writeCtx, websocket.MessageText, data)
}
