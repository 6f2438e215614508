package trace

// Persisted event types — the closed vocabulary. The writer drops anything
// outside this set before it reaches the database.
const (
	EventCrewStarted               = "crew_started"
	EventCrewCompleted             = "crew_completed"
	EventTaskStarted               = "task_started"
	EventTaskCompleted             = "task_completed"
	EventTaskFailed                = "task_failed"
	EventAgentExecution            = "agent_execution"
	EventToolUsage                 = "tool_usage"
	EventToolError                 = "tool_error"
	EventLLMCall                   = "llm_call"
	EventLLMGuardrail              = "llm_guardrail"
	EventMemoryWrite               = "memory_write"
	EventMemoryRetrieval           = "memory_retrieval"
	EventMemoryWriteStarted        = "memory_write_started"
	EventMemoryRetrievalStarted    = "memory_retrieval_started"
	EventKnowledgeRetrieval        = "knowledge_retrieval"
	EventKnowledgeRetrievalStarted = "knowledge_retrieval_started"
	EventAgentReasoning            = "agent_reasoning"
	EventAgentReasoningError       = "agent_reasoning_error"
)

// persisted is the closed vocabulary of event types the writer will store.
var persisted = map[string]bool{
	EventCrewStarted:               true,
	EventCrewCompleted:             true,
	EventTaskStarted:               true,
	EventTaskCompleted:             true,
	EventTaskFailed:                true,
	EventAgentExecution:            true,
	EventToolUsage:                 true,
	EventToolError:                 true,
	EventLLMCall:                   true,
	EventLLMGuardrail:              true,
	EventMemoryWrite:               true,
	EventMemoryRetrieval:           true,
	EventMemoryWriteStarted:        true,
	EventMemoryRetrievalStarted:    true,
	EventKnowledgeRetrieval:        true,
	EventKnowledgeRetrievalStarted: true,
	EventAgentReasoning:            true,
	EventAgentReasoningError:       true,
}

// debugOnly marks event types persisted only when debug tracing is enabled.
var debugOnly = map[string]bool{
	EventLLMGuardrail:              true,
	EventMemoryWrite:               true,
	EventMemoryRetrieval:           true,
	EventMemoryWriteStarted:        true,
	EventMemoryRetrievalStarted:    true,
	EventKnowledgeRetrieval:        true,
	EventKnowledgeRetrievalStarted: true,
	EventAgentReasoning:            true,
	EventAgentReasoningError:       true,
}

// Persisted reports whether an event type belongs to the closed vocabulary.
func Persisted(eventType string) bool {
	return persisted[eventType]
}

// DebugOnly reports whether an event type requires the debug-tracing flag.
func DebugOnly(eventType string) bool {
	return debugOnly[eventType]
}

// TaskLifecycle reports whether an event type is a task_* event, which gets
// fanned out to WebSocket subscribers in addition to being persisted.
func TaskLifecycle(eventType string) bool {
	switch eventType {
	case EventTaskStarted, EventTaskCompleted, EventTaskFailed:
		return true
	}
	return false
}
