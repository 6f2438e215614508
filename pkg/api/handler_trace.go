package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// listTraces returns a job's persisted trace events in insertion order.
func (s *Server) listTraces(c *gin.Context) {
	gc := mustGroupContext(c)

	limit, err := intQuery(c, "limit", 100)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	offset, err := intQuery(c, "offset", 0)
	if err != nil {
		mapServiceError(c, err)
		return
	}

	traces, err := s.traces.ListTraces(c.Request.Context(), c.Param("id"), gc.GroupIDs, limit, offset)
	if err != nil {
		mapServiceError(c, err)
		return
	}

	out := make([]traceResponse, 0, len(traces))
	for _, t := range traces {
		out = append(out, traceResponse{
			ID:        t.ID,
			JobID:     t.JobID,
			EventType: t.EventType,
			Source:    t.EventSource,
			Context:   t.EventContext,
			Output:    t.Output,
			Metadata:  t.TraceMetadata,
			CreatedAt: t.CreatedAt,
		})
	}
	c.JSON(http.StatusOK, gin.H{"traces": out})
}

// listLogs returns a job's forwarded log lines in timestamp order.
func (s *Server) listLogs(c *gin.Context) {
	gc := mustGroupContext(c)

	limit, err := intQuery(c, "limit", 500)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	offset, err := intQuery(c, "offset", 0)
	if err != nil {
		mapServiceError(c, err)
		return
	}

	logs, err := s.traces.ListLogs(c.Request.Context(), c.Param("id"), gc.GroupIDs, limit, offset)
	if err != nil {
		mapServiceError(c, err)
		return
	}

	out := make([]logResponse, 0, len(logs))
	for _, l := range logs {
		out = append(out, logResponse{
			ID:        l.ID,
			JobID:     l.ExecutionID,
			Content:   l.Content,
			Timestamp: l.Timestamp,
		})
	}
	c.JSON(http.StatusOK, gin.H{"logs": out})
}
