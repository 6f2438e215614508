package logs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueue_EnqueueStampsTimestamp(t *testing.T) {
	q := NewQueue(10)

	require.True(t, q.Enqueue(Entry{ExecutionID: "job-1", Content: "line one"}))

	e, ok := q.tryReceive()
	require.True(t, ok)
	assert.Equal(t, "job-1", e.ExecutionID)
	assert.False(t, e.Timestamp.IsZero())
}

func TestQueue_DropOnOverflow(t *testing.T) {
	q := NewQueue(1)

	assert.True(t, q.Enqueue(Entry{Content: "kept"}))
	assert.False(t, q.Enqueue(Entry{Content: "dropped"}))
	assert.Equal(t, int64(1), q.Dropped())
}

func TestQueue_CloseRejectsNewEntries(t *testing.T) {
	q := NewQueue(4)
	require.True(t, q.Enqueue(Entry{Content: "before"}))

	q.Close()
	assert.False(t, q.Enqueue(Entry{Content: "after"}))

	e, ok := q.tryReceive()
	require.True(t, ok)
	assert.Equal(t, "before", e.Content)
}
