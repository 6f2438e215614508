package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/kasal-project/kasal/ent/execution"
	"github.com/kasal-project/kasal/pkg/services"
	"github.com/kasal-project/kasal/test/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeTerminator mimics the process pool: on a successful Terminate it records
// the stopped terminal state the way the real pool's await loop does. When
// terminalDelay is set the write happens on a goroutine after that delay,
// matching the real pool's asynchronous transition.
type fakeTerminator struct {
	executions *services.ExecutionService
	known      map[string]bool
	killErr    error
	partials   []map[string]interface{}

	terminalDelay time.Duration

	calls []bool // force flag per Terminate call
}

func (f *fakeTerminator) Known(groupID, jobID string) bool {
	return f.known[groupID+"/"+jobID]
}

func (f *fakeTerminator) Terminate(ctx context.Context, groupID, jobID, reason string, force bool) error {
	f.calls = append(f.calls, force)
	if f.killErr != nil {
		return f.killErr
	}
	if reason == "" {
		reason = "stopped"
	}
	mark := func() error {
		_, err := f.executions.MarkTerminal(context.Background(), groupID, jobID, execution.StatusStopped, services.TerminalPayload{
			Error:          reason,
			PartialResults: f.partials,
		})
		return err
	}
	if f.terminalDelay > 0 {
		go func() {
			time.Sleep(f.terminalDelay)
			_ = mark()
		}()
		return nil
	}
	return mark()
}

func TestStopController_Stop(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	executions := services.NewExecutionService(client)
	ctx := context.Background()

	newRunning := func(t *testing.T, jobID string) {
		createExec(t, executions, jobID, "team-a")
		require.NoError(t, executions.MarkRunning(ctx, "team-a", jobID, "pod-1"))
	}

	t.Run("invalid stop type", func(t *testing.T) {
		ctl := services.NewStopController(executions, &fakeTerminator{})
		_, err := ctl.Stop(ctx, services.StopRequest{JobID: "job-x", StopType: "please"}, adminGroup("team-a"))
		assert.True(t, services.IsValidationError(err))
	})

	t.Run("unknown or foreign job", func(t *testing.T) {
		ctl := services.NewStopController(executions, &fakeTerminator{})
		_, err := ctl.Stop(ctx, services.StopRequest{JobID: "job-x", StopType: services.StopTypeGraceful}, adminGroup("team-a"))
		assert.ErrorIs(t, err, services.ErrNotFound)
	})

	t.Run("already terminal reports current status", func(t *testing.T) {
		newRunning(t, "job-done")
		_, err := executions.MarkTerminal(ctx, "team-a", "job-done", execution.StatusCompleted, services.TerminalPayload{})
		require.NoError(t, err)

		term := &fakeTerminator{executions: executions}
		ctl := services.NewStopController(executions, term)
		resp, err := ctl.Stop(ctx, services.StopRequest{
			JobID: "job-done", StopType: services.StopTypeGraceful, PreservePartialResults: true,
		}, adminGroup("team-a"))
		require.NoError(t, err)
		assert.Equal(t, "completed", resp.Status)
		assert.Equal(t, "execution already finished", resp.Message)
		assert.Empty(t, term.calls, "no termination attempt for a finished job")
	})

	t.Run("running with no live worker on this node", func(t *testing.T) {
		newRunning(t, "job-elsewhere")
		ctl := services.NewStopController(executions, &fakeTerminator{executions: executions})
		_, err := ctl.Stop(ctx, services.StopRequest{JobID: "job-elsewhere", StopType: services.StopTypeGraceful}, adminGroup("team-a"))
		assert.ErrorIs(t, err, services.ErrNotFound)
	})

	t.Run("graceful stop preserves partials", func(t *testing.T) {
		newRunning(t, "job-live")
		term := &fakeTerminator{
			executions: executions,
			known:      map[string]bool{"team-a/job-live": true},
			partials:   []map[string]interface{}{{"task_id": "t1"}},
		}
		ctl := services.NewStopController(executions, term)

		resp, err := ctl.Stop(ctx, services.StopRequest{
			JobID:                  "job-live",
			StopType:               services.StopTypeGraceful,
			Reason:                 "user requested",
			PreservePartialResults: true,
		}, adminGroup("team-a"))
		require.NoError(t, err)
		assert.Equal(t, "stopped", resp.Status)
		require.Len(t, resp.PartialResults, 1)
		require.Equal(t, []bool{false}, term.calls, "graceful stop must not force-kill")

		got, err := executions.Get(ctx, "job-live", []string{"team-a"})
		require.NoError(t, err)
		assert.Equal(t, execution.StatusStopped, got.Status)
	})

	t.Run("discarding partials", func(t *testing.T) {
		newRunning(t, "job-discard")
		term := &fakeTerminator{
			executions: executions,
			known:      map[string]bool{"team-a/job-discard": true},
			partials:   []map[string]interface{}{{"task_id": "t1"}},
		}
		ctl := services.NewStopController(executions, term)

		resp, err := ctl.Stop(ctx, services.StopRequest{
			JobID:    "job-discard",
			StopType: services.StopTypeForce,
		}, adminGroup("team-a"))
		require.NoError(t, err)
		assert.Nil(t, resp.PartialResults)
		require.Equal(t, []bool{true}, term.calls)
	})

	t.Run("kill failure still records stopped", func(t *testing.T) {
		newRunning(t, "job-leaked")
		term := &fakeTerminator{
			executions: executions,
			known:      map[string]bool{"team-a/job-leaked": true},
			killErr:    errors.New("signal failed"),
		}
		ctl := services.NewStopController(executions, term)

		resp, err := ctl.Stop(ctx, services.StopRequest{
			JobID:    "job-leaked",
			StopType: services.StopTypeForce,
		}, adminGroup("team-a"))
		require.NoError(t, err)
		assert.Equal(t, "stopped", resp.Status)

		got, err := executions.Get(ctx, "job-leaked", []string{"team-a"})
		require.NoError(t, err)
		require.NotNil(t, got.Error)
		assert.Equal(t, "force_stop_failed", *got.Error)
	})

	t.Run("waits for an asynchronous terminal transition", func(t *testing.T) {
		newRunning(t, "job-async")
		term := &fakeTerminator{
			executions:    executions,
			known:         map[string]bool{"team-a/job-async": true},
			partials:      []map[string]interface{}{{"task_id": "t1"}},
			terminalDelay: 300 * time.Millisecond,
		}
		ctl := services.NewStopController(executions, term)

		resp, err := ctl.Stop(ctx, services.StopRequest{
			JobID:                  "job-async",
			StopType:               services.StopTypeGraceful,
			PreservePartialResults: true,
		}, adminGroup("team-a"))
		require.NoError(t, err)
		assert.Equal(t, "stopped", resp.Status, "the response reflects the settled terminal state")
		require.Len(t, resp.PartialResults, 1)
	})

	t.Run("reports stopping when the transition outlasts the wait", func(t *testing.T) {
		newRunning(t, "job-slow")
		term := &fakeTerminator{
			executions:    executions,
			known:         map[string]bool{"team-a/job-slow": true},
			terminalDelay: 2 * time.Second,
		}
		ctl := services.NewStopController(executions, term)
		ctl.TerminalWait = 200 * time.Millisecond

		resp, err := ctl.Stop(ctx, services.StopRequest{
			JobID:    "job-slow",
			StopType: services.StopTypeGraceful,
		}, adminGroup("team-a"))
		require.NoError(t, err)
		assert.Equal(t, "stopping", resp.Status)
	})
}
