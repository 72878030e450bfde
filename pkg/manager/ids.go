// pkg/manager/ids.go
package manager

import (
	"errors"
	"fmt"
)

// ID identifies one of the package managers this tool understands. The
// set is closed: the command table is total over these values and nothing
// is registered at runtime, so dispatch never sees an unknown manager.
// External input (catalog keys, flags) goes through Parse first.
type ID string

const (
	// Apt is the Debian/Ubuntu front-end
	Apt ID = "apt"

	// YumDnf is the Fedora/RHEL family, probed through dnf
	YumDnf ID = "yum_dnf"

	// Portage is Gentoo's manager, listed through qlist
	Portage ID = "portage"

	// Pacman is Arch's manager
	Pacman ID = "pacman"

	// Flatpak manages sandboxed desktop applications
	Flatpak ID = "flatpak"

	// Snap is Canonical's application manager
	Snap ID = "snap"

	// Xbps is Void Linux's manager
	Xbps ID = "xbps"
)

// ErrUnknownManager marks an identifier outside the closed manager set.
var ErrUnknownManager = errors.New("unknown package manager")

// All returns every known manager in canonical order. Detection, listing,
// reconciliation and reporting iterate in this order so runs are stable.
func All() []ID {
	return []ID{Apt, YumDnf, Portage, Pacman, Flatpak, Snap, Xbps}
}

// Parse validates a manager identifier read from external input, such as
// a catalog document key.
func Parse(s string) (ID, error) {
	id := ID(s)
	if _, ok := commands[id]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownManager, s)
	}
	return id, nil
}
