//go:build !linux && !windows

package affinity

import (
	"context"
	"fmt"
	"runtime"

	"github.com/arumata/cpupin/internal/usecase"
)

// SetProcessAffinity always fails: the host scheduler exposes no
// process affinity facility on this platform.
func (a *Adapter) SetProcessAffinity(ctx context.Context, pid int64, core int) error {
	_ = ctx
	return fmt.Errorf("setting process affinity is not supported on %s: %w",
		runtime.GOOS, usecase.ErrUnsupported)
}
