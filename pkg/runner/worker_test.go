package runner

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/kasal-project/kasal/pkg/logs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// decodeEnvelopes parses every envelope a worker wrote to stdout.
func decodeEnvelopes(t *testing.T, out []byte) []Envelope {
	t.Helper()
	var envelopes []Envelope
	dec := json.NewDecoder(bytes.NewReader(out))
	for dec.More() {
		var env Envelope
		require.NoError(t, dec.Decode(&env))
		envelopes = append(envelopes, env)
	}
	return envelopes
}

// lastResult returns the single result envelope a worker must post.
func lastResult(t *testing.T, envelopes []Envelope) *Result {
	t.Helper()
	var results []*Result
	for _, env := range envelopes {
		if env.Kind == KindResult {
			results = append(results, env.Result)
		}
	}
	require.Len(t, results, 1, "worker posts exactly one result envelope")
	return results[0]
}

func TestRunWorker_MalformedPayload(t *testing.T) {
	var out bytes.Buffer
	code := RunWorker(strings.NewReader("this is not json"), &out)
	assert.Equal(t, 1, code)

	res := lastResult(t, decodeEnvelopes(t, out.Bytes()))
	assert.False(t, res.Success)
	assert.Contains(t, res.Error, "failed to read payload")
}

func TestRunWorker_InvalidCrewConfig(t *testing.T) {
	// A structurally valid payload whose crew cannot be built: the worker
	// still posts exactly one failed result and exits non-zero.
	payload := Payload{
		JobID:   "job-bad-crew",
		Timeout: time.Minute,
		LLMAddr: "localhost:1", // lazy dial, never contacted
	}
	data, err := json.Marshal(payload)
	require.NoError(t, err)

	var out bytes.Buffer
	code := RunWorker(bytes.NewReader(data), &out)
	assert.Equal(t, 1, code)

	res := lastResult(t, decodeEnvelopes(t, out.Bytes()))
	assert.False(t, res.Success)
	assert.Contains(t, res.Error, "no agents")
}

func TestEmitter_EnvelopeShapes(t *testing.T) {
	var out bytes.Buffer
	emit := newEmitter(&out)

	emit.Log(logs.Entry{ExecutionID: "job-1", Content: "hello"})
	emit.Result(&Result{Success: true, Content: "done"})

	envelopes := decodeEnvelopes(t, out.Bytes())
	require.Len(t, envelopes, 2)

	assert.Equal(t, KindLog, envelopes[0].Kind)
	require.NotNil(t, envelopes[0].Log)
	assert.Equal(t, "hello", envelopes[0].Log.Content)

	assert.Equal(t, KindResult, envelopes[1].Kind)
	require.NotNil(t, envelopes[1].Result)
	assert.True(t, envelopes[1].Result.Success)
}

func TestLogHandler_ForwardsAsEnvelopes(t *testing.T) {
	var out bytes.Buffer
	emit := newEmitter(&out)
	h := &logHandler{emit: emit, jobID: "job-1"}

	logger := slog.New(h)
	logger.Info("crew starting", "crew", "research")
	logger.Debug("too quiet to forward")
	logger.With("stage", "setup").Info("configured")

	envelopes := decodeEnvelopes(t, out.Bytes())
	require.Len(t, envelopes, 2, "debug level is below the forwarding threshold")

	require.NotNil(t, envelopes[0].Log)
	assert.Equal(t, "job-1", envelopes[0].Log.ExecutionID)
	assert.Contains(t, envelopes[0].Log.Content, "crew starting")
	assert.Contains(t, envelopes[0].Log.Content, "crew=research")

	assert.Contains(t, envelopes[1].Log.Content, "stage=setup")
}
