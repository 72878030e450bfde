// toolcage.go
package toolcage

import (
	"github.com/sirupsen/logrus"

	"github.com/itDaru/toolcage/pkg/core"
	"github.com/itDaru/toolcage/pkg/manager"
	"github.com/itDaru/toolcage/pkg/platform"
	"github.com/itDaru/toolcage/pkg/spawn"
	"github.com/itDaru/toolcage/pkg/store"
)

// Re-export engine types for convenience
type (
	ID           = manager.ID
	Availability = manager.Availability
	Catalog      = manager.Catalog
	Report       = manager.Report
	Ref          = manager.Ref
	Config       = core.Config
	Platform     = platform.Info
	Runner       = spawn.Runner
)

// Re-export the supported manager identifiers
const (
	Apt     = manager.Apt
	YumDnf  = manager.YumDnf
	Portage = manager.Portage
	Pacman  = manager.Pacman
	Flatpak = manager.Flatpak
	Snap    = manager.Snap
	Xbps    = manager.Xbps
)

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() *Config {
	return core.DefaultConfig()
}

// System ties runner, store, and engine together for one configuration.
type System struct {
	config *core.Config
	run    spawn.Runner
	log    *logrus.Logger
	store  *store.Store
}

// New creates a System using the real subprocess runner.
func New(cfg *core.Config, log *logrus.Logger) *System {
	return NewWithRunner(cfg, spawn.New(), log)
}

// NewWithRunner creates a System with an injected runner. A nil config
// means defaults; a nil logger means the standard logrus logger.
func NewWithRunner(cfg *core.Config, run spawn.Runner, log *logrus.Logger) *System {
	if cfg == nil {
		cfg = core.DefaultConfig()
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &System{
		config: cfg,
		run:    run,
		log:    log,
		store:  store.New(cfg.WorkDir, log),
	}
}

// Config returns the active configuration.
func (s *System) Config() *core.Config {
	return s.config
}

// Store returns the catalog store for this System's working directory.
func (s *System) Store() *store.Store {
	return s.store
}

// Platform reports the host this System runs on.
func (s *System) Platform() platform.Info {
	return platform.Detect()
}

// Detect probes every supported manager on this host.
func (s *System) Detect() manager.Availability {
	return manager.NewDetector(s.run, s.log).Detect()
}

// Scan detects the host's managers and lists their installed packages.
func (s *System) Scan() (*manager.Catalog, error) {
	av := s.Detect()
	cat, err := manager.NewAggregator(s.run, s.log).Aggregate(av)
	if err != nil {
		return nil, &Error{Op: "scan", Err: err}
	}
	return cat, nil
}

// Save persists a catalog to the working directory and returns the path
// written.
func (s *System) Save(cat *manager.Catalog) (string, error) {
	path, err := s.store.Save(cat)
	if err != nil {
		return "", &Error{Op: "save", Err: err}
	}
	return path, nil
}

// Load reads the saved catalog back.
func (s *System) Load() (*manager.Catalog, error) {
	cat, err := s.store.Load()
	if err != nil {
		return nil, &Error{Op: "load", Err: err}
	}
	return cat, nil
}

// Reconcile replays a catalog against the live system.
func (s *System) Reconcile(cat *manager.Catalog) *manager.Report {
	return manager.NewReconciler(s.run, s.config.Elevate, s.log).Reconcile(cat)
}

// Restore loads the saved catalog and reconciles it.
func (s *System) Restore() (*manager.Report, error) {
	cat, err := s.Load()
	if err != nil {
		return nil, err
	}
	return s.Reconcile(cat), nil
}

// RestoreFrom reconciles a catalog imported from an arbitrary file,
// decompressing by extension.
func (s *System) RestoreFrom(path string) (*manager.Report, error) {
	cat, err := store.Import(path)
	if err != nil {
		return nil, &Error{Op: "import", Err: err}
	}
	for _, key := range cat.Skipped() {
		s.log.Warnf("ignoring unknown manager %q in %s", key, path)
	}
	return s.Reconcile(cat), nil
}

// Diff returns a unified diff between the saved catalog and a fresh
// scan. An empty string means they match.
func (s *System) Diff() (string, error) {
	saved, err := s.Load()
	if err != nil {
		return "", err
	}
	live, err := s.Scan()
	if err != nil {
		return "", err
	}
	return manager.Diff("saved", "system", saved, live), nil
}

// Export writes the saved catalog to path, compressing by extension.
// With a non-empty keyPath it also writes an armored detached signature
// and returns its path.
func (s *System) Export(path, keyPath, passphrase string) (string, error) {
	cat, err := s.Load()
	if err != nil {
		return "", err
	}
	if err := store.Export(cat, path); err != nil {
		return "", &Error{Op: "export", Err: err}
	}
	if keyPath == "" {
		return "", nil
	}
	signer, err := store.NewSigner(keyPath, passphrase)
	if err != nil {
		return "", &Error{Op: "export", Err: err}
	}
	sigPath, err := signer.Sign(path)
	if err != nil {
		return "", &Error{Op: "export", Err: err}
	}
	return sigPath, nil
}
