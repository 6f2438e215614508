package crew

import (
	"github.com/kasal-project/kasal/pkg/groupctx"
	"github.com/kasal-project/kasal/pkg/trace"
)

// kindToTrace maps bus event kinds onto the persisted trace vocabulary.
// Kinds outside this table are not traced.
var kindToTrace = map[string]string{
	EventCrewStarted:    trace.EventCrewStarted,
	EventCrewCompleted:  trace.EventCrewCompleted,
	EventTaskStarted:    trace.EventTaskStarted,
	EventTaskCompleted:  trace.EventTaskCompleted,
	EventTaskFailed:     trace.EventTaskFailed,
	EventAgentExecution: trace.EventAgentExecution,
	EventToolUsage:      trace.EventToolUsage,
	EventToolError:      trace.EventToolError,
	EventLLMCall:        trace.EventLLMCall,
	EventMemoryWrite:    trace.EventMemoryWrite,
	EventMemoryRead:     trace.EventMemoryRetrieval,

	EventKnowledgeQueryStarted: trace.EventKnowledgeRetrievalStarted,
	EventKnowledgeQuery:        trace.EventKnowledgeRetrieval,
}

// Listener translates orchestrator bus events into trace envelopes tagged
// with the ambient job and group. It is registered on the bus at worker
// startup, before kickoff.
type Listener struct {
	jobID string
	group groupctx.GroupContext
	emit  func(trace.Event)
}

// NewListener creates a listener. emit receives every translated envelope;
// the worker forwards them to the parent process.
func NewListener(jobID string, group groupctx.GroupContext, emit func(trace.Event)) *Listener {
	return &Listener{jobID: jobID, group: group, emit: emit}
}

// Register subscribes the listener to a bus.
func (l *Listener) Register(bus *Bus) {
	bus.Subscribe(l.handle)
}

func (l *Listener) handle(ev BusEvent) {
	eventType, ok := kindToTrace[ev.Kind]
	if !ok {
		return
	}

	metadata := ev.Metadata
	if ev.TaskID != "" || ev.TaskName != "" {
		if metadata == nil {
			metadata = make(map[string]interface{}, 2)
		}
		if ev.TaskID != "" {
			metadata["task_id"] = ev.TaskID
		}
		if ev.TaskName != "" {
			metadata["task_name"] = ev.TaskName
		}
	}

	output := ev.Output
	if output == "" && ev.Error != "" {
		output = ev.Error
	}

	l.emit(trace.Event{
		JobID:       l.jobID,
		EventType:   eventType,
		EventSource: ev.Source,
		Output:      output,
		Metadata:    metadata,
		GroupID:     l.group.PrimaryGroupID(),
		GroupEmail:  l.group.GroupEmail,
		CreatedAt:   ev.Timestamp,
	})
}
