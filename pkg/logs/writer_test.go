package logs

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/kasal-project/kasal/ent"
	"github.com/kasal-project/kasal/ent/executionlog"
	"github.com/kasal-project/kasal/test/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBroadcaster struct {
	mu     sync.Mutex
	frames map[string][][]byte
}

func (b *fakeBroadcaster) Broadcast(groupID, jobID string, frame []byte) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.frames == nil {
		b.frames = make(map[string][][]byte)
	}
	b.frames[groupID+"/"+jobID] = append(b.frames[groupID+"/"+jobID], frame)
}

func logRows(t *testing.T, client *ent.Client, jobID string) []*ent.ExecutionLog {
	t.Helper()
	rows, err := client.ExecutionLog.Query().
		Where(executionlog.ExecutionIDEQ(jobID)).
		Order(ent.Asc(executionlog.FieldID)).
		All(context.Background())
	require.NoError(t, err)
	return rows
}

func TestWriter_PersistsBatch(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)

	w := NewWriter(NewQueue(0), client, nil, DefaultWriterConfig())
	w.writeBatch(context.Background(), []Entry{
		{ExecutionID: "job-1", Content: "line one", Timestamp: time.Now(), GroupID: "team-a"},
		{ExecutionID: "job-1", Content: "line two", Timestamp: time.Now(), GroupID: "team-a", GroupEmail: "alice@example.com"},
	})

	rows := logRows(t, client, "job-1")
	require.Len(t, rows, 2)
	assert.Equal(t, "line one", rows[0].Content)
	assert.Equal(t, "team-a", rows[0].GroupID)
	assert.Equal(t, "alice@example.com", rows[1].GroupEmail)
}

func TestWriter_BroadcastsPerJobFrames(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)

	broadcaster := &fakeBroadcaster{}
	w := NewWriter(NewQueue(0), client, broadcaster, DefaultWriterConfig())
	w.writeBatch(context.Background(), []Entry{
		{ExecutionID: "job-1", Content: "a", Timestamp: time.Now(), GroupID: "team-a"},
		{ExecutionID: "job-2", Content: "b", Timestamp: time.Now(), GroupID: "team-a"},
		{ExecutionID: "job-1", Content: "c", Timestamp: time.Now(), GroupID: "team-a"},
		{ExecutionID: "job-1", Content: "other tenant", Timestamp: time.Now(), GroupID: "team-b"},
	})

	broadcaster.mu.Lock()
	defer broadcaster.mu.Unlock()
	require.Len(t, broadcaster.frames["team-a/job-1"], 1, "one frame per (group, job) per batch")
	require.Len(t, broadcaster.frames["team-a/job-2"], 1)
	require.Len(t, broadcaster.frames["team-b/job-1"], 1,
		"a colliding job id in another group gets its own frame")

	var frame struct {
		Type        string `json:"type"`
		ExecutionID string `json:"execution_id"`
		Entries     []struct {
			Content string `json:"content"`
		} `json:"entries"`
	}
	require.NoError(t, json.Unmarshal(broadcaster.frames["team-a/job-1"][0], &frame))
	assert.Equal(t, "log", frame.Type)
	assert.Equal(t, "job-1", frame.ExecutionID)
	require.Len(t, frame.Entries, 2)
	assert.Equal(t, "a", frame.Entries[0].Content)
	assert.Equal(t, "c", frame.Entries[1].Content)
}

func TestWriter_DrainsOnStop(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)

	queue := NewQueue(0)
	w := NewWriter(queue, client, nil, DefaultWriterConfig())
	w.Start(context.Background())

	for i := 0; i < 120; i++ {
		require.True(t, queue.Enqueue(Entry{ExecutionID: "job-1", Content: "line", GroupID: "team-a"}))
	}
	queue.Close()
	w.Stop()

	assert.Len(t, logRows(t, client, "job-1"), 120)
}
