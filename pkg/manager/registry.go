// pkg/manager/registry.go
package manager

// commandSet is one manager's complete subprocess contract. The argv
// slices are templates: check and install take the package name appended
// as their final argument, probe and list run as-is.
type commandSet struct {
	probe   []string
	list    []string
	check   []string
	install []string
	elevate bool
}

// commands is the single source of truth for every supported manager.
// Keys are exactly the values returned by All.
var commands = map[ID]commandSet{
	Apt: {
		probe:   []string{"apt", "--version"},
		list:    []string{"apt", "list", "--installed"},
		check:   []string{"dpkg", "-s"},
		install: []string{"apt", "install", "-y"},
		elevate: true,
	},
	YumDnf: {
		probe:   []string{"dnf", "--version"},
		list:    []string{"dnf", "list", "installed"},
		check:   []string{"dnf", "list", "installed"},
		install: []string{"dnf", "install", "-y"},
		elevate: true,
	},
	Portage: {
		probe:   []string{"emerge", "--version"},
		list:    []string{"qlist", "-I"},
		check:   []string{"qlist", "-I"},
		install: []string{"emerge"},
		elevate: true,
	},
	Pacman: {
		probe:   []string{"pacman", "--version"},
		list:    []string{"pacman", "-Q"},
		check:   []string{"pacman", "-Q"},
		install: []string{"pacman", "-S", "--noconfirm"},
		elevate: true,
	},
	Flatpak: {
		probe:   []string{"flatpak", "--version"},
		list:    []string{"flatpak", "list", "--app"},
		check:   []string{"flatpak", "info"},
		install: []string{"flatpak", "install", "-y"},
		// Flatpak installs per-user, no elevation wrapper.
		elevate: false,
	},
	Snap: {
		probe:   []string{"snap", "--version"},
		list:    []string{"snap", "list"},
		check:   []string{"snap", "list"},
		install: []string{"snap", "install"},
		elevate: true,
	},
	Xbps: {
		probe:   []string{"xbps-query", "--version"},
		list:    []string{"xbps-query", "-l"},
		check:   []string{"xbps-query", "-S"},
		install: []string{"xbps-install", "-S", "-y"},
		elevate: true,
	},
}

// DefaultElevate is the privilege elevation wrapper used when none is
// configured.
const DefaultElevate = "sudo"
