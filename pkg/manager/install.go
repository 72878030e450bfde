// pkg/manager/install.go
package manager

import (
	"github.com/sirupsen/logrus"

	"github.com/itDaru/toolcage/pkg/spawn"
)

// Installer dispatches install commands.
type Installer struct {
	run     spawn.Runner
	elevate string
	log     *logrus.Logger
}

// NewInstaller returns an Installer using the given runner. An empty
// elevate means DefaultElevate; a nil logger means the standard logrus
// logger.
func NewInstaller(run spawn.Runner, elevate string, log *logrus.Logger) *Installer {
	if elevate == "" {
		elevate = DefaultElevate
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Installer{run: run, elevate: elevate, log: log}
}

// Install attempts to install one package. System managers run behind the
// elevation wrapper; child output is suppressed and the exit status alone
// decides the outcome. A spawn failure and a non-zero exit both come back
// false, with the cause in the log rather than the return value.
func (ins *Installer) Install(id ID, pkg string) bool {
	cs, ok := commands[id]
	if !ok {
		ins.log.Errorf("install %s: %v: %q", pkg, ErrUnknownManager, id)
		return false
	}

	argv := append(append([]string{}, cs.install...), pkg)
	if cs.elevate {
		argv = append([]string{ins.elevate}, argv...)
	}

	code, err := ins.run.Run(argv[0], argv[1:]...)
	switch {
	case err != nil:
		ins.log.Warnf("install %s via %s: %v", pkg, id, err)
		return false
	case code != 0:
		ins.log.Warnf("install %s via %s: exit code %d", pkg, id, code)
		return false
	}
	return true
}
