//go:build !linux && !windows

package affinity

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/arumata/cpupin/internal/usecase"
)

func TestSetProcessAffinity_Unsupported(t *testing.T) {
	a := New(slog.New(slog.NewTextHandler(io.Discard, nil)))
	err := a.SetProcessAffinity(context.Background(), 123, 0)
	if !errors.Is(err, usecase.ErrUnsupported) {
		t.Fatalf("expected ErrUnsupported, got %v", err)
	}
}
