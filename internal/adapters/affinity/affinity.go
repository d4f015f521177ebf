package affinity

import (
	"log/slog"
	"runtime"
)

// Adapter implements AffinityPort against the host scheduler. The
// SetProcessAffinity method lives in the build-tagged platform files.
type Adapter struct {
	logger *slog.Logger
}

// New creates a new affinity adapter.
func New(logger *slog.Logger) *Adapter {
	if logger == nil {
		panic("affinity adapter requires logger")
	}
	return &Adapter{logger: logger}
}

// Platform names the affinity backend compiled into this binary.
func (a *Adapter) Platform() string {
	return runtime.GOOS
}
