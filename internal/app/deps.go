package app

import (
	"log/slog"

	"github.com/arumata/cpupin/internal/adapters/affinity"
	"github.com/arumata/cpupin/internal/adapters/cpuinfo"
	"github.com/arumata/cpupin/internal/usecase"
)

// NewDefaultDependencies creates dependencies with real adapters.
func NewDefaultDependencies(logger *slog.Logger) *usecase.Dependencies {
	if logger == nil {
		panic("default dependencies require logger")
	}
	return &usecase.Dependencies{
		Affinity: affinity.New(logger),
		CPUInfo:  cpuinfo.New(logger),
	}
}
