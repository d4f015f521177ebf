//go:build !linux && !windows

package cpuinfo

import (
	"context"
	"runtime"
)

// OnlineCount falls back to the Go runtime's processor count on
// platforms without a dedicated query.
func (a *Adapter) OnlineCount(ctx context.Context) (int, bool) {
	_ = ctx
	return runtime.NumCPU(), true
}
