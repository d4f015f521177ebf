// Package noop provides placeholder implementations for the usecase ports
package noop

import (
	"context"
	"errors"
)

// Adapter implements all usecase ports with no-op implementations.
// It is used by wiring tests that must not touch the host scheduler.
type Adapter struct{}

var errNotImplemented = errors.New("operation not implemented in no-op adapter")

// Platform names the no-op backend.
func (a Adapter) Platform() string {
	return "noop"
}

// SetProcessAffinity returns error for scheduler operations
func (a Adapter) SetProcessAffinity(ctx context.Context, pid int64, core int) error {
	return errNotImplemented
}

// OnlineCount reports an unknown processor count
func (a Adapter) OnlineCount(ctx context.Context) (int, bool) {
	return 0, false
}
