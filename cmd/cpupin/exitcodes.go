package main

import (
	"fmt"
	"io"

	"github.com/arumata/cpupin/internal/usecase"
)

const (
	exitSuccess = 0
	exitFailure = 1
)

// reportError prints the classified error to w, followed by a
// remediation hint for failures that came from the host scheduler.
func reportError(w io.Writer, err error) {
	fmt.Fprintln(w, "An error occurred:", err)
	if usecase.IsPlatformError(err) {
		fmt.Fprintln(w, "Please ensure the PID is correct and you have sufficient "+
			"privileges (e.g. run with 'sudo' or as Administrator).")
	}
}
