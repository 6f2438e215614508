package runner

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"syscall"
	"time"

	"github.com/kasal-project/kasal/ent"
	"github.com/kasal-project/kasal/ent/execution"
)

// CleanupStartupOrphans performs a one-time sweep of executions this pod
// left behind on a previous crash. Any row still pending or running under
// this pod id has no pool entry in the new process and can never terminate
// on its own. Called once during startup, before the pool accepts
// submissions; KillStrayWorkers handles the process side of the same sweep.
func CleanupStartupOrphans(ctx context.Context, client *ent.Client, podID string) error {
	orphans, err := client.Execution.Query().
		Where(
			execution.StatusIn(execution.StatusPending, execution.StatusRunning),
			execution.PodIDEQ(podID),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to query startup orphans: %w", err)
	}

	if len(orphans) == 0 {
		return nil
	}

	slog.Warn("Found startup orphans from previous run",
		"pod_id", podID,
		"count", len(orphans))

	now := time.Now()
	for _, exec := range orphans {
		err := exec.Update().
			SetStatus(execution.StatusFailed).
			SetIsStopping(false).
			SetCompletedAt(now).
			SetError(fmt.Sprintf("Orphaned: pod %s restarted while execution was in flight", podID)).
			Exec(ctx)
		if err != nil {
			slog.Error("Failed to mark startup orphan",
				"job_id", exec.JobID,
				"error", err)
			continue
		}
		slog.Info("Startup orphan recovered", "job_id", exec.JobID)
	}

	return nil
}

// KillStrayWorkers SIGKILLs worker processes of this binary left over from a
// previous server run. Pdeathsig ties workers to a live parent, but it does
// not fire when the old server was SIGKILLed after its workers were already
// reparented, so startup sweeps the process table as well. Returns the count
// of workers killed.
func KillStrayWorkers() int {
	self, err := os.Executable()
	if err != nil {
		slog.Warn("Stray worker sweep skipped, cannot locate own binary", "error", err)
		return 0
	}
	pids, err := strayWorkerPIDs("/proc", self)
	if err != nil {
		slog.Warn("Stray worker sweep failed", "error", err)
		return 0
	}
	killed := 0
	for _, pid := range pids {
		if err := syscall.Kill(pid, syscall.SIGKILL); err != nil {
			slog.Warn("Failed to kill stray worker", "pid", pid, "error", err)
			continue
		}
		slog.Warn("Killed stray worker from previous run", "pid", pid)
		killed++
	}
	return killed
}

// strayWorkerPIDs scans the proc filesystem for processes invoked as
// "<exe> --worker". The server's own pid never matches: it runs without the
// worker flag, and a freshly started server has no workers of its own yet.
func strayWorkerPIDs(procRoot, exe string) ([]int, error) {
	entries, err := os.ReadDir(procRoot)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", procRoot, err)
	}

	var pids []int
	for _, entry := range entries {
		pid, err := strconv.Atoi(entry.Name())
		if err != nil {
			continue
		}
		cmdline, err := os.ReadFile(filepath.Join(procRoot, entry.Name(), "cmdline"))
		if err != nil {
			// Process exited between the listing and the read.
			continue
		}
		argv := splitCmdline(cmdline)
		if len(argv) >= 2 && argv[0] == exe && argv[1] == WorkerFlag {
			pids = append(pids, pid)
		}
	}
	return pids, nil
}

// splitCmdline splits a /proc cmdline buffer (NUL-separated, NUL-terminated)
// into argv.
func splitCmdline(raw []byte) []string {
	raw = bytes.TrimRight(raw, "\x00")
	if len(raw) == 0 {
		return nil
	}
	parts := bytes.Split(raw, []byte{0})
	argv := make([]string, len(parts))
	for i, p := range parts {
		argv[i] = string(p)
	}
	return argv
}
