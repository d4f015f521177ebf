//go:build windows

package affinity

import (
	"context"
	"fmt"
	"math"
	"syscall"

	"golang.org/x/sys/windows"

	"github.com/arumata/cpupin/internal/usecase"
)

// SetProcessAffinityMask is not wrapped by x/sys/windows.
var (
	kernel32                   = windows.NewLazySystemDLL("kernel32.dll")
	procSetProcessAffinityMask = kernel32.NewProc("SetProcessAffinityMask")
)

// SetProcessAffinity pins the process to a single core through a process
// handle opened with the minimum rights needed to query and set
// scheduling information. The handle is released on every exit path.
func (a *Adapter) SetProcessAffinity(ctx context.Context, pid int64, core int) error {
	_ = ctx

	// OpenProcess addresses processes by DWORD.
	if pid <= 0 || pid > math.MaxUint32 {
		return fmt.Errorf("PID %d is not a valid process identifier: %v: %w",
			pid, syscall.EINVAL, usecase.ErrOpenProcess)
	}
	// A DWORD_PTR affinity mask holds at most 64 cores.
	if core < 0 || core >= 64 {
		return fmt.Errorf("core %d cannot be represented in an affinity mask: %v: %w",
			core, syscall.EINVAL, usecase.ErrSetAffinity)
	}

	handle, err := windows.OpenProcess(
		windows.PROCESS_SET_INFORMATION|windows.PROCESS_QUERY_INFORMATION,
		false,
		uint32(pid),
	)
	if err != nil {
		return fmt.Errorf("could not open process with PID %d: %v: %w",
			pid, err, usecase.ErrOpenProcess)
	}
	defer windows.CloseHandle(handle)

	mask := uintptr(1) << core
	a.logger.Debug("SetProcessAffinityMask", "pid", pid, "mask", mask)
	ret, _, callErr := procSetProcessAffinityMask.Call(uintptr(handle), mask)
	if ret == 0 {
		return fmt.Errorf("failed to set process affinity mask for PID %d: %v: %w",
			pid, callErr, usecase.ErrSetAffinity)
	}
	return nil
}
