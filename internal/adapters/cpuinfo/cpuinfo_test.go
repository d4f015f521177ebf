package cpuinfo

import (
	"context"
	"io"
	"log/slog"
	"testing"
)

func TestNew_RequiresLogger(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for nil logger")
		}
	}()
	New(nil)
}

func TestOnlineCount(t *testing.T) {
	a := New(slog.New(slog.NewTextHandler(io.Discard, nil)))
	count, known := a.OnlineCount(context.Background())
	if !known {
		t.Skip("host cannot report a core count")
	}
	if count < 1 {
		t.Errorf("expected at least one online core, got %d", count)
	}
}
