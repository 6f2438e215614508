// Package events delivers real-time execution updates over WebSockets.
//
// A process-wide subscription table maps job_id → set of connections.
// Producers (trace writer, log writer, process pool) broadcast JSON frames
// fire-and-forget: a slow or closed subscriber is removed silently and no
// backpressure ever reaches a producer.
//
// Frame shapes:
//
//	task_status_update  {type, event_type, task_id, task_name, timestamp, output}
//	log                 {type, execution_id, entries: [{content, timestamp}]}
//	execution_complete  {type, execution_id, status, error?}
package events

// ClientMessage is the JSON structure for client → server WebSocket messages.
type ClientMessage struct {
	Action string `json:"action"`           // "subscribe", "unsubscribe", "ping"
	JobID  string `json:"job_id,omitempty"` // execution to follow
}

// TerminalFrame is the execution_complete frame published on a terminal
// status transition.
type TerminalFrame struct {
	Type        string `json:"type"` // always "execution_complete"
	ExecutionID string `json:"execution_id"`
	Status      string `json:"status"`
	Error       string `json:"error,omitempty"`
}
