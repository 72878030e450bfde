// pkg/manager/reconcile.go
package manager

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/itDaru/toolcage/pkg/spawn"
)

// Ref names one package under one manager, as reported after
// reconciliation.
type Ref struct {
	Name    string
	Manager ID
}

func (r Ref) String() string {
	return fmt.Sprintf("%s (%s)", r.Name, r.Manager)
}

// Report partitions every catalog pair whose manager was available into
// exactly one of three buckets. Pairs under unavailable managers appear
// in none of them.
type Report struct {
	AlreadyInstalled []Ref
	NewlyInstalled   []Ref
	Failed           []Ref
}

// Total returns the number of pairs the report accounts for.
func (r *Report) Total() int {
	return len(r.AlreadyInstalled) + len(r.NewlyInstalled) + len(r.Failed)
}

// Reconciler replays a catalog against the live system.
type Reconciler struct {
	det   *Detector
	check *Checker
	inst  *Installer
	log   *logrus.Logger
}

// NewReconciler returns a Reconciler using the given runner and elevation
// wrapper. A nil logger means the standard logrus logger.
func NewReconciler(run spawn.Runner, elevate string, log *logrus.Logger) *Reconciler {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Reconciler{
		det:   NewDetector(run, log),
		check: NewChecker(run),
		inst:  NewInstaller(run, elevate, log),
		log:   log,
	}
}

// Reconcile re-detects the host's managers and walks the catalog in its
// iteration order. A manager that is not available here is skipped whole,
// its packages appearing in no bucket. Under an available manager every
// package is handled independently: present ones are recorded as already
// installed, absent ones are installed and recorded by outcome. A failed
// install never stops the run.
func (r *Reconciler) Reconcile(cat *Catalog) *Report {
	av := r.det.Detect()
	rep := &Report{}

	for _, id := range cat.Managers() {
		if !av[id] {
			r.log.Infof("skipping %s (not detected on this system)", id)
			continue
		}
		r.log.Infof("processing packages for %s", id)
		for _, pkg := range cat.Packages(id) {
			ref := Ref{Name: pkg, Manager: id}
			installed, err := r.check.IsInstalled(id, pkg)
			if err != nil {
				r.log.Debugf("installed check: %v", err)
			}
			if installed {
				rep.AlreadyInstalled = append(rep.AlreadyInstalled, ref)
				continue
			}
			r.log.Infof("installing %s via %s", pkg, id)
			if r.inst.Install(id, pkg) {
				rep.NewlyInstalled = append(rep.NewlyInstalled, ref)
			} else {
				rep.Failed = append(rep.Failed, ref)
			}
		}
	}
	return rep
}
