// pkg/manager/aggregate.go
package manager

import (
	"github.com/sirupsen/logrus"

	"github.com/itDaru/toolcage/pkg/spawn"
)

// Aggregator assembles per-manager listings into one catalog.
type Aggregator struct {
	lister *Lister
	log    *logrus.Logger
}

// NewAggregator returns an Aggregator using the given runner. A nil
// logger means the standard logrus logger.
func NewAggregator(run spawn.Runner, log *logrus.Logger) *Aggregator {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Aggregator{lister: NewLister(run), log: log}
}

// Aggregate lists every available manager, in canonical order, and
// assembles the catalog. When nothing is available it returns the marker
// catalog instead of an indistinguishable empty one. Any listing failure
// aborts the whole scan: a partial catalog would silently drop packages
// on a later restore.
func (a *Aggregator) Aggregate(av Availability) (*Catalog, error) {
	available := av.Available()
	if len(available) == 0 {
		return NewMarker(), nil
	}

	cat := NewCatalog()
	for _, id := range available {
		a.log.Infof("listing %s packages", id)
		names, err := a.lister.List(id)
		if err != nil {
			return nil, err
		}
		cat.Set(id, names)
	}
	return cat, nil
}
