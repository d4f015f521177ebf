package noop

import (
	"context"
	"testing"
)

func TestAdapter(t *testing.T) {
	a := Adapter{}

	if a.Platform() != "noop" {
		t.Errorf("Platform() = %q, want %q", a.Platform(), "noop")
	}
	if err := a.SetProcessAffinity(context.Background(), 1, 0); err == nil {
		t.Error("expected SetProcessAffinity to return error")
	}
	count, known := a.OnlineCount(context.Background())
	if count != 0 || known {
		t.Errorf("OnlineCount() = (%d, %v), want (0, false)", count, known)
	}
}
