// errors.go
package toolcage

import (
	"fmt"

	"github.com/itDaru/toolcage/pkg/manager"
	"github.com/itDaru/toolcage/pkg/store"
)

var (
	// ErrUnknownManager indicates a manager id outside the supported set
	ErrUnknownManager = manager.ErrUnknownManager

	// ErrNoCatalog indicates no catalog document has been saved yet
	ErrNoCatalog = store.ErrNoCatalog

	// ErrMalformedCatalog indicates the catalog document cannot be decoded
	ErrMalformedCatalog = store.ErrMalformedCatalog
)

// Error wraps an engine failure with operation context
type Error struct {
	Op      string     // Operation that failed
	Manager manager.ID // Manager involved, if any
	Package string     // Package name, if any
	Err     error      // Underlying error
}

func (e *Error) Error() string {
	switch {
	case e.Manager != "" && e.Package != "":
		return fmt.Sprintf("%s %s/%s: %v", e.Op, e.Manager, e.Package, e.Err)
	case e.Manager != "":
		return fmt.Sprintf("%s %s: %v", e.Op, e.Manager, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
