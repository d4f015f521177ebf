package cpuinfo

import "log/slog"

// Adapter implements CPUInfoPort using the host's processor reporting.
// The OnlineCount method lives in the build-tagged platform files.
type Adapter struct {
	logger *slog.Logger
}

// New creates a new cpuinfo adapter.
func New(logger *slog.Logger) *Adapter {
	if logger == nil {
		panic("cpuinfo adapter requires logger")
	}
	return &Adapter{logger: logger}
}
