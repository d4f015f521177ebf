//go:build linux

package cpuinfo

import (
	"context"

	"golang.org/x/sys/unix"
)

// OnlineCount returns the number of logical CPUs this tool may schedule
// on, via sched_getaffinity(2) on the current process. known is false
// when the kernel cannot report the set; that means "unknown", never
// "zero cores".
func (a *Adapter) OnlineCount(ctx context.Context) (int, bool) {
	_ = ctx

	var set unix.CPUSet
	if err := unix.SchedGetaffinity(0, &set); err != nil {
		a.logger.Warn("sched_getaffinity failed", "error", err)
		return 0, false
	}
	return set.Count(), true
}
