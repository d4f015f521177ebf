package usecase

import "context"

// Dependencies represents all external dependencies needed by use cases
type Dependencies struct {
	Affinity AffinityPort
	CPUInfo  CPUInfoPort
}

// Ports define the interfaces that use cases need (hexagonal architecture)

// AffinityPort defines the scheduler operations needed by use cases
type AffinityPort interface {
	// Platform names the affinity backend compiled into this binary.
	Platform() string

	// SetProcessAffinity pins the process identified by pid to a single core.
	SetProcessAffinity(ctx context.Context, pid int64, core int) error
}

// CPUInfoPort reports host processor availability
type CPUInfoPort interface {
	// OnlineCount returns the number of online logical processors.
	// known is false when the host cannot report a count; callers must
	// then skip range validation rather than treat the count as zero.
	OnlineCount(ctx context.Context) (count int, known bool)
}
