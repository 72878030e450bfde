// pkg/manager/check.go
package manager

import (
	"fmt"

	"github.com/itDaru/toolcage/pkg/spawn"
)

// Checker answers whether a single package is installed.
type Checker struct {
	run spawn.Runner
}

// NewChecker returns a Checker using the given runner.
func NewChecker(run spawn.Runner) *Checker {
	return &Checker{run: run}
}

// IsInstalled runs the manager's existence query for one package. A zero
// exit is the sole signal that the package is present. The boolean is
// always meaningful: a spawn failure degrades to false, with the error
// returned alongside so callers can tell a missing binary from a missing
// package.
func (c *Checker) IsInstalled(id ID, pkg string) (bool, error) {
	cs, ok := commands[id]
	if !ok {
		return false, fmt.Errorf("%w: %q", ErrUnknownManager, id)
	}
	argv := append(append([]string{}, cs.check...), pkg)
	code, err := c.run.Run(argv[0], argv[1:]...)
	if err != nil {
		return false, fmt.Errorf("checking %s via %s: %w", pkg, id, err)
	}
	return code == 0, nil
}
