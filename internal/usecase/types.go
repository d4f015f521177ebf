package usecase

// Request identifies the process and target core for one invocation.
// The PID is carried as int64 until a platform adapter checks it against
// the native identifier width.
type Request struct {
	PID  int64
	Core int
}

// Result describes a completed affinity change.
type Result struct {
	Platform    string
	OnlineCores int
	CoresKnown  bool
}
