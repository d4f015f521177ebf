package app

import (
	"log/slog"
	"testing"

	"github.com/arumata/cpupin/internal/adapters/affinity"
	"github.com/arumata/cpupin/internal/adapters/cpuinfo"
)

func TestNewDefaultDependencies(t *testing.T) {
	deps := NewDefaultDependencies(slog.Default())

	if deps == nil {
		t.Fatal("Expected Dependencies to be created, got nil")
	}

	if deps.Affinity == nil {
		t.Error("Expected Affinity adapter to be set")
	}

	if deps.CPUInfo == nil {
		t.Error("Expected CPUInfo adapter to be set")
	}

	// Verify actual adapter types.
	if _, ok := deps.Affinity.(*affinity.Adapter); !ok {
		t.Error("Expected Affinity to be affinity.Adapter")
	}

	if _, ok := deps.CPUInfo.(*cpuinfo.Adapter); !ok {
		t.Error("Expected CPUInfo to be cpuinfo.Adapter")
	}
}

func TestNewDefaultDependencies_RequiresLogger(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for nil logger")
		}
	}()
	NewDefaultDependencies(nil)
}
