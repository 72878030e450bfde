// pkg/manager/list.go
package manager

import (
	"fmt"

	"github.com/itDaru/toolcage/pkg/spawn"
)

// Lister fetches one manager's installed-package listing.
type Lister struct {
	run spawn.Runner
}

// NewLister returns a Lister using the given runner.
func NewLister(run spawn.Runner) *Lister {
	return &Lister{run: run}
}

// List runs the manager's native listing command and extracts package
// names with the manager's line rule, in the order the manager printed
// them. Exit status is ignored: whatever stdout was produced gets parsed.
// Only a failure to spawn the command is an error, and it names the
// manager it came from.
func (l *Lister) List(id ID) ([]string, error) {
	cs, ok := commands[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownManager, id)
	}
	out, err := l.run.Output(cs.list[0], cs.list[1:]...)
	if err != nil {
		return nil, fmt.Errorf("listing %s packages: %w", id, err)
	}
	return parseListing(id, out), nil
}
