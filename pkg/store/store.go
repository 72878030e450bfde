// pkg/store/store.go
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/itDaru/toolcage/pkg/manager"
)

const (
	// DefaultDir is the working directory holding the catalog when none
	// is configured.
	DefaultDir = "SysBackup"

	// FileName is the catalog document's file name inside the working
	// directory.
	FileName = "package_list.json"
)

var (
	// ErrNoCatalog indicates no catalog document has been saved yet.
	ErrNoCatalog = errors.New("no package catalog saved")

	// ErrMalformedCatalog indicates the document exists but cannot be
	// decoded as a catalog.
	ErrMalformedCatalog = errors.New("malformed package catalog")
)

// Store persists the catalog document under a working directory.
type Store struct {
	dir string
	log *logrus.Logger
}

// New returns a Store rooted at dir. An empty dir means DefaultDir; a
// nil logger means the standard logrus logger.
func New(dir string, log *logrus.Logger) *Store {
	if dir == "" {
		dir = DefaultDir
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Store{dir: dir, log: log}
}

// Dir returns the working directory.
func (s *Store) Dir() string {
	return s.dir
}

// Path returns the catalog document's full path.
func (s *Store) Path() string {
	return filepath.Join(s.dir, FileName)
}

// Save writes the catalog document, creating the working directory as
// needed, and returns the path written.
func (s *Store) Save(cat *manager.Catalog) (string, error) {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return "", fmt.Errorf("creating %s: %w", s.dir, err)
	}
	data, err := json.MarshalIndent(cat, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encoding catalog: %w", err)
	}
	path := s.Path()
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	s.log.Debugf("catalog saved to %s (%d packages)", path, cat.Len())
	return path, nil
}

// Load reads the catalog document back. A missing document reports
// ErrNoCatalog; a document that does not decode reports
// ErrMalformedCatalog. Unknown manager keys in an otherwise valid
// document are dropped with a warning, not an error.
func (s *Store) Load() (*manager.Catalog, error) {
	path := s.Path()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNoCatalog, path)
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	cat, err := decode(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrMalformedCatalog, path, err)
	}
	for _, key := range cat.Skipped() {
		s.log.Warnf("ignoring unknown manager %q in %s", key, path)
	}
	return cat, nil
}

func decode(data []byte) (*manager.Catalog, error) {
	var cat manager.Catalog
	if err := json.Unmarshal(data, &cat); err != nil {
		return nil, err
	}
	return &cat, nil
}
