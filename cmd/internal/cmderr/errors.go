// Package cmderr provides process termination helpers shared by the
// command-line binaries.
package cmderr

import (
	"errors"
	"fmt"
	"os"
)

// ExitErr carries an exit code along with the error that caused the exit.
// ExitOnErr unwraps it to pick the process exit code.
type ExitErr struct {
	Code  int
	Cause error
}

func (x ExitErr) Error() string { return x.Cause.Error() }

// ExitOnErr writes err to os.Stderr and terminates the process. The exit
// code is taken from an ExitErr in the chain, 1 otherwise. Does nothing
// if err is nil.
func ExitOnErr(err error) {
	if err == nil {
		return
	}

	code := 1

	var e ExitErr
	if errors.As(err, &e) {
		code = e.Code
	}

	fmt.Fprintln(os.Stderr, "Error:", err)
	os.Exit(code)
}
