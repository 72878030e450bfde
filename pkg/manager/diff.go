// pkg/manager/diff.go
package manager

import (
	"fmt"
	"strings"

	"github.com/aymanbagabas/go-udiff"
)

// Text renders the catalog as stable line-oriented text, one
// manager/package per line, suitable for diffing and previews.
func (c *Catalog) Text() string {
	var b strings.Builder
	if c.note != "" {
		fmt.Fprintf(&b, "# %s\n", c.note)
		return b.String()
	}
	for _, id := range c.Managers() {
		for _, pkg := range c.pkgs[id] {
			fmt.Fprintf(&b, "%s/%s\n", id, pkg)
		}
	}
	return b.String()
}

// Diff returns a unified diff between two catalogs under the given
// labels. An empty string means they match.
func Diff(fromName, toName string, from, to *Catalog) string {
	return udiff.Unified(fromName, toName, from.Text(), to.Text())
}
