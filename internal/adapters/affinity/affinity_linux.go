//go:build linux

package affinity

import (
	"context"
	"fmt"
	"math"
	"syscall"

	"golang.org/x/sys/unix"

	"github.com/arumata/cpupin/internal/usecase"
)

// SetProcessAffinity pins the process to a single core via sched_setaffinity(2).
// The pid itself is the addressing token; no handle is held.
func (a *Adapter) SetProcessAffinity(ctx context.Context, pid int64, core int) error {
	_ = ctx

	// pid_t is a signed 32-bit integer; 0 would address this tool itself.
	if pid <= 0 || pid > math.MaxInt32 {
		return fmt.Errorf("PID %d is not a valid process identifier: %v: %w",
			pid, syscall.EINVAL, usecase.ErrSyscall)
	}
	if core < 0 {
		return fmt.Errorf("core %d cannot be placed in a cpu set: %v: %w",
			core, syscall.EINVAL, usecase.ErrSyscall)
	}

	var set unix.CPUSet
	set.Zero()
	set.Set(core)

	a.logger.Debug("sched_setaffinity", "pid", pid, "core", core)
	if err := unix.SchedSetaffinity(int(pid), &set); err != nil {
		return fmt.Errorf("sched_setaffinity failed for PID %d: %v: %w",
			pid, err, usecase.ErrSyscall)
	}
	return nil
}
