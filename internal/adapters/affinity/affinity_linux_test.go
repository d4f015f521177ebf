//go:build linux

package affinity

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"math"
	"os"
	"strings"
	"testing"

	"golang.org/x/sys/unix"

	"github.com/arumata/cpupin/internal/usecase"
)

func testAdapter() *Adapter {
	return New(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// saveAffinity captures the test process's cpu set and returns a restore
// function, so pinning tests don't leak onto later tests.
func saveAffinity(t *testing.T) func() {
	t.Helper()
	var old unix.CPUSet
	if err := unix.SchedGetaffinity(0, &old); err != nil {
		t.Skipf("cannot read own affinity: %v", err)
	}
	return func() {
		if err := unix.SchedSetaffinity(0, &old); err != nil {
			t.Errorf("restore affinity: %v", err)
		}
	}
}

func TestSetProcessAffinity_OwnProcess(t *testing.T) {
	defer saveAffinity(t)()

	a := testAdapter()
	if err := a.SetProcessAffinity(context.Background(), int64(os.Getpid()), 0); err != nil {
		t.Fatalf("unexpected error pinning own process to core 0: %v", err)
	}

	var set unix.CPUSet
	if err := unix.SchedGetaffinity(0, &set); err != nil {
		t.Fatalf("read back affinity: %v", err)
	}
	if set.Count() != 1 || !set.IsSet(0) {
		t.Errorf("expected affinity set to exactly core 0, got count %d", set.Count())
	}
}

func TestSetProcessAffinity_NoSuchProcess(t *testing.T) {
	a := testAdapter()
	// Far above the default kernel pid_max of 4194304.
	err := a.SetProcessAffinity(context.Background(), 99999999, 0)
	if !errors.Is(err, usecase.ErrSyscall) {
		t.Fatalf("expected ErrSyscall, got %v", err)
	}
	if !strings.Contains(err.Error(), "99999999") {
		t.Errorf("error must name the PID, got %q", err.Error())
	}
}

func TestSetProcessAffinity_InvalidPID(t *testing.T) {
	tests := []struct {
		name string
		pid  int64
	}{
		{"zero", 0},
		{"negative", -1},
		{"wider than pid_t", math.MaxInt32 + 1},
	}

	a := testAdapter()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := a.SetProcessAffinity(context.Background(), tt.pid, 0)
			if !errors.Is(err, usecase.ErrSyscall) {
				t.Fatalf("expected ErrSyscall, got %v", err)
			}
		})
	}
}

func TestSetProcessAffinity_NegativeCore(t *testing.T) {
	a := testAdapter()
	err := a.SetProcessAffinity(context.Background(), int64(os.Getpid()), -1)
	if !errors.Is(err, usecase.ErrSyscall) {
		t.Fatalf("expected ErrSyscall, got %v", err)
	}
}
