// pkg/manager/detect.go
package manager

import (
	"github.com/sirupsen/logrus"

	"github.com/itDaru/toolcage/pkg/spawn"
)

// Availability records which managers answered their probe on this host.
// It is captured once per run and never updated afterwards; reconciling a
// catalog made elsewhere re-detects on the host doing the reconciling.
type Availability map[ID]bool

// Available returns the available managers in canonical order.
func (a Availability) Available() []ID {
	var ids []ID
	for _, id := range All() {
		if a[id] {
			ids = append(ids, id)
		}
	}
	return ids
}

// Detector probes the host for package managers.
type Detector struct {
	run spawn.Runner
	log *logrus.Logger
}

// NewDetector returns a Detector using the given runner. A nil logger
// means the standard logrus logger.
func NewDetector(run spawn.Runner, log *logrus.Logger) *Detector {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Detector{run: run, log: log}
}

// Detect probes every registered manager with its version query and
// reports which ones ran and exited zero. A probe that cannot be spawned
// only marks its manager unavailable; Detect itself cannot fail.
func (d *Detector) Detect() Availability {
	av := make(Availability, len(commands))
	for _, id := range All() {
		probe := commands[id].probe
		code, err := d.run.Run(probe[0], probe[1:]...)
		if err != nil {
			d.log.Debugf("probe %s: %v", id, err)
		}
		av[id] = err == nil && code == 0
	}
	return av
}
