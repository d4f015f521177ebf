//go:build windows

package cpuinfo

import (
	"context"

	"golang.org/x/sys/windows"
)

// OnlineCount returns the active logical processor count across all
// processor groups. known is false when the system reports none; that
// means "unknown", never "zero cores".
func (a *Adapter) OnlineCount(ctx context.Context) (int, bool) {
	_ = ctx

	count := windows.GetActiveProcessorCount(windows.ALL_PROCESSOR_GROUPS)
	if count == 0 {
		a.logger.Warn("GetActiveProcessorCount reported no processors")
		return 0, false
	}
	return int(count), true
}
