// pkg/spawn/runner.go
package spawn

import (
	"os/exec"
)

// Runner executes external commands on behalf of the engine. Exactly one
// implementation shells out; everything else (tests, embedders) may
// substitute a fake, so no business logic spawns a process directly.
type Runner interface {
	// Run executes a command and waits for it to finish, discarding any
	// output it produces. It returns the exit code when the command ran
	// (0 means success) and a non-nil error only when the command could
	// not be started at all.
	Run(name string, args ...string) (int, error)

	// Output executes a command and captures its standard output. A
	// non-zero exit still yields whatever stdout was produced; the error
	// is non-nil only when the command could not be started.
	Output(name string, args ...string) ([]byte, error)
}

// New returns the Runner backed by os/exec.
func New() Runner {
	return execRunner{}
}

type execRunner struct{}

func (execRunner) Run(name string, args ...string) (int, error) {
	cmd := exec.Command(name, args...)
	// Stdout and Stderr stay nil so the child writes to the null device.
	err := cmd.Run()
	if err == nil {
		return 0, nil
	}
	if exitErr, ok := err.(*exec.ExitError); ok {
		return exitErr.ExitCode(), nil
	}
	return -1, err
}

func (execRunner) Output(name string, args ...string) ([]byte, error) {
	out, err := exec.Command(name, args...).Output()
	if err != nil {
		if _, ok := err.(*exec.ExitError); ok {
			return out, nil
		}
		return nil, err
	}
	return out, nil
}
