package events

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/kasal-project/kasal/pkg/groupctx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeOwnership resolves owners from a fixed job_id → owning groups table.
type fakeOwnership struct {
	owned map[string][]string
}

func (f *fakeOwnership) OwnerGroups(_ context.Context, jobID string, groupIDs []string) ([]string, error) {
	var owners []string
	for _, owner := range f.owned[jobID] {
		for _, g := range groupIDs {
			if g == owner {
				owners = append(owners, owner)
			}
		}
	}
	return owners, nil
}

// dialManager starts an HTTP server around the manager and connects a client.
func dialManager(t *testing.T, m *ConnectionManager, gc *groupctx.GroupContext) *websocket.Conn {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := websocket.Accept(w, r, nil)
		if err != nil {
			return
		}
		m.HandleConnection(r.Context(), conn, gc)
	}))
	t.Cleanup(srv.Close)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	t.Cleanup(cancel)
	conn, _, err := websocket.Dial(ctx, "ws"+strings.TrimPrefix(srv.URL, "http"), nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close(websocket.StatusNormalClosure, "") })
	return conn
}

func readFrame(t *testing.T, conn *websocket.Conn) map[string]interface{} {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_, data, err := conn.Read(ctx)
	require.NoError(t, err)

	var frame map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &frame))
	return frame
}

func send(t *testing.T, conn *websocket.Conn, msg ClientMessage) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	data, err := json.Marshal(msg)
	require.NoError(t, err)
	require.NoError(t, conn.Write(ctx, websocket.MessageText, data))
}

func newManager(owned map[string][]string) *ConnectionManager {
	return NewConnectionManager(&fakeOwnership{owned: owned}, 5*time.Second)
}

func teamGroup() *groupctx.GroupContext {
	return &groupctx.GroupContext{
		GroupIDs:   []string{"team-a"},
		GroupEmail: "alice@example.com",
	}
}

func TestHandleConnection_Established(t *testing.T) {
	m := newManager(nil)
	conn := dialManager(t, m, teamGroup())

	frame := readFrame(t, conn)
	assert.Equal(t, "connection.established", frame["type"])
	assert.NotEmpty(t, frame["connection_id"])

	require.Eventually(t, func() bool { return m.ActiveConnections() == 1 },
		time.Second, 10*time.Millisecond)
}

func TestSubscribe_AuthorizedReceivesBroadcasts(t *testing.T) {
	m := newManager(map[string][]string{"job-1": {"team-a"}})
	conn := dialManager(t, m, teamGroup())
	readFrame(t, conn) // connection.established

	send(t, conn, ClientMessage{Action: "subscribe", JobID: "job-1"})
	frame := readFrame(t, conn)
	assert.Equal(t, "subscription.confirmed", frame["type"])
	assert.Equal(t, "job-1", frame["job_id"])

	m.Broadcast("team-a", "job-1", []byte(`{"type":"task_status_update","task_id":"t1"}`))
	frame = readFrame(t, conn)
	assert.Equal(t, "task_status_update", frame["type"])
	assert.Equal(t, "t1", frame["task_id"])
}

func TestSubscribe_UnauthorizedReadsAsNotFound(t *testing.T) {
	m := newManager(map[string][]string{"job-other": {"team-b"}})
	conn := dialManager(t, m, teamGroup())
	readFrame(t, conn)

	for _, jobID := range []string{"job-other", "job-missing"} {
		send(t, conn, ClientMessage{Action: "subscribe", JobID: jobID})
		frame := readFrame(t, conn)
		assert.Equal(t, "subscription.error", frame["type"], jobID)
		assert.Equal(t, "execution not found", frame["message"],
			"a foreign job and a missing job must be indistinguishable")
	}
	assert.Equal(t, 0, m.subscriberCount("team-b", "job-other"))
}

// Two tenants running the same job id subscribe to separate channels: each
// sees only its own group's frames.
func TestBroadcast_TenantIsolationOnSharedJobID(t *testing.T) {
	m := newManager(map[string][]string{"job-1": {"acme", "globex"}})

	acme := dialManager(t, m, &groupctx.GroupContext{GroupIDs: []string{"acme"}, GroupEmail: "a@acme.test"})
	readFrame(t, acme)
	globex := dialManager(t, m, &groupctx.GroupContext{GroupIDs: []string{"globex"}, GroupEmail: "g@globex.test"})
	readFrame(t, globex)

	send(t, acme, ClientMessage{Action: "subscribe", JobID: "job-1"})
	readFrame(t, acme)
	send(t, globex, ClientMessage{Action: "subscribe", JobID: "job-1"})
	readFrame(t, globex)

	m.Broadcast("acme", "job-1", []byte(`{"type":"task_status_update","task_id":"acme-task"}`))

	frame := readFrame(t, acme)
	assert.Equal(t, "acme-task", frame["task_id"])

	// globex must not see acme's frame; the next thing it reads is its pong.
	send(t, globex, ClientMessage{Action: "ping"})
	frame = readFrame(t, globex)
	assert.Equal(t, "pong", frame["type"])
}

// A caller belonging to two groups that both own the job id gets frames from
// both executions through one subscribe.
func TestSubscribe_MultiGroupOwnerFollowsBoth(t *testing.T) {
	m := newManager(map[string][]string{"job-1": {"acme", "globex"}})
	conn := dialManager(t, m, &groupctx.GroupContext{
		GroupIDs:   []string{"acme", "globex"},
		GroupEmail: "ops@example.com",
	})
	readFrame(t, conn)

	send(t, conn, ClientMessage{Action: "subscribe", JobID: "job-1"})
	readFrame(t, conn)
	require.Eventually(t, func() bool {
		return m.subscriberCount("acme", "job-1") == 1 && m.subscriberCount("globex", "job-1") == 1
	}, time.Second, 10*time.Millisecond)

	m.Broadcast("acme", "job-1", []byte(`{"type":"task_status_update","task_id":"from-acme"}`))
	frame := readFrame(t, conn)
	assert.Equal(t, "from-acme", frame["task_id"])

	m.Broadcast("globex", "job-1", []byte(`{"type":"task_status_update","task_id":"from-globex"}`))
	frame = readFrame(t, conn)
	assert.Equal(t, "from-globex", frame["task_id"])
}

func TestSubscribe_RequiresJobID(t *testing.T) {
	m := newManager(nil)
	conn := dialManager(t, m, teamGroup())
	readFrame(t, conn)

	send(t, conn, ClientMessage{Action: "subscribe"})
	frame := readFrame(t, conn)
	assert.Equal(t, "error", frame["type"])
}

func TestUnsubscribe_StopsDelivery(t *testing.T) {
	m := newManager(map[string][]string{"job-1": {"team-a"}})
	conn := dialManager(t, m, teamGroup())
	readFrame(t, conn)

	send(t, conn, ClientMessage{Action: "subscribe", JobID: "job-1"})
	readFrame(t, conn)
	require.Eventually(t, func() bool { return m.subscriberCount("team-a", "job-1") == 1 },
		time.Second, 10*time.Millisecond)

	send(t, conn, ClientMessage{Action: "unsubscribe", JobID: "job-1"})
	require.Eventually(t, func() bool { return m.subscriberCount("team-a", "job-1") == 0 },
		time.Second, 10*time.Millisecond)

	// A broadcast after unsubscribe is not delivered; the next frame the
	// client sees is the pong.
	m.Broadcast("team-a", "job-1", []byte(`{"type":"task_status_update"}`))
	send(t, conn, ClientMessage{Action: "ping"})
	frame := readFrame(t, conn)
	assert.Equal(t, "pong", frame["type"])
}

func TestPublishTerminal_FrameShape(t *testing.T) {
	m := newManager(map[string][]string{"job-1": {"team-a"}})
	conn := dialManager(t, m, teamGroup())
	readFrame(t, conn)

	send(t, conn, ClientMessage{Action: "subscribe", JobID: "job-1"})
	readFrame(t, conn)

	m.PublishTerminal("team-a", "job-1", "failed", "worker exited without posting a result")
	frame := readFrame(t, conn)
	assert.Equal(t, "execution_complete", frame["type"])
	assert.Equal(t, "job-1", frame["execution_id"])
	assert.Equal(t, "failed", frame["status"])
	assert.Equal(t, "worker exited without posting a result", frame["error"])
}

func TestDisconnect_CleansUpSubscriptions(t *testing.T) {
	m := newManager(map[string][]string{"job-1": {"team-a"}})
	conn := dialManager(t, m, teamGroup())
	readFrame(t, conn)

	send(t, conn, ClientMessage{Action: "subscribe", JobID: "job-1"})
	readFrame(t, conn)

	require.NoError(t, conn.Close(websocket.StatusNormalClosure, ""))

	require.Eventually(t, func() bool {
		return m.ActiveConnections() == 0 && m.subscriberCount("team-a", "job-1") == 0
	}, time.Second, 10*time.Millisecond)
}
