// pkg/manager/parse.go
package manager

import (
	"strings"
)

// parseListing extracts package names from one manager's raw list output.
// Each manager has its own line shape; a line that does not match it is
// skipped, never an error. Header and blank lines fall out the same way.
func parseListing(id ID, raw []byte) []string {
	lines := strings.Split(string(raw), "\n")
	var names []string

	switch id {
	case Apt:
		// "curl/stable,now 8.5.0-2 amd64 [installed]" -> "curl".
		// The "Listing..." header has no slash and drops out.
		for _, line := range lines {
			slash := strings.Index(line, "/")
			if slash < 0 {
				continue
			}
			if name := strings.TrimSpace(line[:slash]); name != "" {
				names = append(names, name)
			}
		}

	case YumDnf:
		// "bash.x86_64  5.2.26-3.fc40  @anaconda" -> "bash". The
		// "Installed Packages" header has no dot and drops out.
		for _, line := range lines {
			dot := strings.Index(line, ".")
			if dot < 0 {
				continue
			}
			if name := strings.TrimSpace(line[:dot]); name != "" {
				names = append(names, name)
			}
		}

	case Portage:
		// qlist -I prints one category/package atom per line.
		for _, line := range lines {
			if line != "" {
				names = append(names, line)
			}
		}

	case Pacman:
		// "bash 5.2.026-2" -> "bash".
		for _, line := range lines {
			if fields := strings.Fields(line); len(fields) > 0 {
				names = append(names, fields[0])
			}
		}

	case Flatpak:
		// Columns are tab-separated; the application name is first.
		for _, line := range lines {
			if name := strings.SplitN(line, "\t", 2)[0]; name != "" {
				names = append(names, name)
			}
		}

	case Snap:
		// First line is the "Name Version Rev ..." header.
		for i, line := range lines {
			if i == 0 {
				continue
			}
			if fields := strings.Fields(line); len(fields) > 0 {
				names = append(names, fields[0])
			}
		}

	case Xbps:
		// "ii bash-5.2_26 Bourne Again Shell" -> second field, minus
		// the version after the rightmost hyphen. A second field with
		// no hyphen is not a package line.
		for _, line := range lines {
			fields := strings.Fields(line)
			if len(fields) < 2 {
				continue
			}
			if cut := strings.LastIndex(fields[1], "-"); cut > 0 {
				names = append(names, fields[1][:cut])
			}
		}
	}

	return names
}
