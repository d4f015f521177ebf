package usecase

import (
	"context"
	"fmt"
	"log/slog"
)

// Pin binds the process named by req.PID to the single core req.Core.
// The core index is validated against the host's online count when the
// count is known; otherwise the platform call is the final arbiter.
func Pin(ctx context.Context, req *Request, deps *Dependencies, logger *slog.Logger) (Result, error) {
	if req == nil || deps == nil || deps.Affinity == nil || deps.CPUInfo == nil {
		return Result{}, fmt.Errorf("dependencies not available: %w", ErrUsage)
	}

	count, known := deps.CPUInfo.OnlineCount(ctx)
	if known {
		if req.Core < 0 || req.Core >= count {
			return Result{}, fmt.Errorf(
				"core ID %d is out of range: available cores on this system: 0 to %d: %w",
				req.Core, count-1, ErrCoreRange,
			)
		}
	} else {
		logger.Warn("Cannot determine online core count, skipping range check")
	}

	logger.Debug("Setting process affinity",
		"platform", deps.Affinity.Platform(),
		"pid", req.PID,
		"core", req.Core,
	)
	if err := deps.Affinity.SetProcessAffinity(ctx, req.PID, req.Core); err != nil {
		return Result{}, err
	}

	return Result{
		Platform:    deps.Affinity.Platform(),
		OnlineCores: count,
		CoresKnown:  known,
	}, nil
}
