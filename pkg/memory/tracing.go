package memory

import (
	"context"

	"github.com/kasal-project/kasal/pkg/crew"
	"github.com/kasal-project/kasal/pkg/groupctx"
	"github.com/kasal-project/kasal/pkg/trace"
)

// tracedStore wraps a MemoryStore so saves and searches leave debug trace
// events. Attached only when debug tracing is enabled for the run.
type tracedStore struct {
	inner   crew.MemoryStore
	kind    string // short_term, long_term, entity
	backend string // default, databricks
	jobID   string
	group   groupctx.GroupContext
	emit    func(trace.Event)
}

// Traced wraps store with save/search tracing hooks.
func Traced(store crew.MemoryStore, kind, backend, jobID string, group groupctx.GroupContext, emit func(trace.Event)) crew.MemoryStore {
	if store == nil || emit == nil {
		return store
	}
	return &tracedStore{
		inner:   store,
		kind:    kind,
		backend: backend,
		jobID:   jobID,
		group:   group,
		emit:    emit,
	}
}

func (t *tracedStore) source() string {
	return "Memory[" + t.kind + ":" + t.backend + "]"
}

func (t *tracedStore) event(eventType, output string, metadata map[string]interface{}) {
	t.emit(trace.Event{
		JobID:       t.jobID,
		EventType:   eventType,
		EventSource: t.source(),
		Output:      output,
		Metadata:    metadata,
		GroupID:     t.group.PrimaryGroupID(),
		GroupEmail:  t.group.GroupEmail,
	})
}

func (t *tracedStore) Save(ctx context.Context, content string, metadata map[string]interface{}) error {
	t.event(trace.EventMemoryWriteStarted, snippet(content), nil)
	err := t.inner.Save(ctx, content, metadata)
	if err != nil {
		t.event(trace.EventMemoryWrite, "save failed: "+err.Error(), nil)
		return err
	}
	t.event(trace.EventMemoryWrite, snippet(content), nil)
	return nil
}

func (t *tracedStore) Search(ctx context.Context, query string, limit int) ([]string, error) {
	t.event(trace.EventMemoryRetrievalStarted, snippet(query), nil)
	results, err := t.inner.Search(ctx, query, limit)
	if err != nil {
		t.event(trace.EventMemoryRetrieval, "search failed: "+err.Error(), nil)
		return nil, err
	}
	out := snippet(query)
	if len(results) > 0 {
		out += " → " + snippet(results[0])
	}
	t.event(trace.EventMemoryRetrieval, out, map[string]interface{}{"hits": len(results)})
	return results, nil
}

// snippet truncates content for trace output.
func snippet(s string) string {
	const max = 200
	if len(s) <= max {
		return s
	}
	return s[:max] + "…"
}
