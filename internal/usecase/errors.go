package usecase

import "errors"

var (
	// ErrUsage indicates user input/usage errors.
	ErrUsage = errors.New("usage error")
	// ErrCoreRange indicates a core index outside the host's online range.
	ErrCoreRange = errors.New("core out of range")
	// ErrOpenProcess indicates the target process could not be opened.
	ErrOpenProcess = errors.New("cannot open process")
	// ErrSetAffinity indicates the affinity mask was rejected for an opened process.
	ErrSetAffinity = errors.New("cannot set affinity")
	// ErrSyscall indicates the affinity syscall failed on the target identifier.
	ErrSyscall = errors.New("affinity syscall failed")
	// ErrUnsupported indicates the host platform exposes no affinity facility.
	ErrUnsupported = errors.New("unsupported platform")
)

// IsPlatformError reports whether err came from the host's affinity
// facility rather than from argument validation.
func IsPlatformError(err error) bool {
	return errors.Is(err, ErrOpenProcess) ||
		errors.Is(err, ErrSetAffinity) ||
		errors.Is(err, ErrSyscall) ||
		errors.Is(err, ErrUnsupported)
}
