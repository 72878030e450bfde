// pkg/manager/catalog.go
package manager

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
)

// noManagersNote is the document body recorded when a scan found no
// package manager at all. It keeps "checked and found nothing"
// distinguishable from an empty or missing catalog.
const noManagersNote = "No package managers detected or no packages listed."

// noteKey is the JSON key carrying that note.
const noteKey = "message"

// Catalog is a snapshot of installed packages grouped by manager. A key
// being present means that manager was available when the snapshot was
// taken; values keep the manager's native listing order. A catalog built
// when nothing was available carries a note instead of entries.
type Catalog struct {
	pkgs    map[ID][]string
	note    string
	skipped []string
}

// NewCatalog returns an empty catalog ready for Set.
func NewCatalog() *Catalog {
	return &Catalog{pkgs: make(map[ID][]string)}
}

// NewMarker returns the catalog recording a scan that had no managers to
// list.
func NewMarker() *Catalog {
	return &Catalog{note: noManagersNote}
}

// Set records the listing for one manager, replacing any previous one.
// A nil listing is stored as empty, so an available manager with no
// packages still marshals as an array.
func (c *Catalog) Set(id ID, names []string) {
	if c.pkgs == nil {
		c.pkgs = make(map[ID][]string)
	}
	if names == nil {
		names = []string{}
	}
	c.pkgs[id] = names
	c.note = ""
}

// Packages returns the recorded listing for one manager, in listing
// order. The result is nil for managers not in the catalog.
func (c *Catalog) Packages(id ID) []string {
	return c.pkgs[id]
}

// Managers returns the managers present in the catalog, in canonical
// order.
func (c *Catalog) Managers() []ID {
	var ids []ID
	for _, id := range All() {
		if _, ok := c.pkgs[id]; ok {
			ids = append(ids, id)
		}
	}
	return ids
}

// Len returns the total number of (manager, package) pairs.
func (c *Catalog) Len() int {
	n := 0
	for _, names := range c.pkgs {
		n += len(names)
	}
	return n
}

// Empty reports whether the catalog holds no entries at all. A marker
// catalog is empty.
func (c *Catalog) Empty() bool {
	return len(c.pkgs) == 0
}

// Note returns the informational note, or "" for a catalog with entries.
func (c *Catalog) Note() string {
	return c.note
}

// Skipped returns the unknown manager keys dropped by UnmarshalJSON,
// sorted, so loaders can report them.
func (c *Catalog) Skipped() []string {
	return c.skipped
}

// MarshalJSON renders the catalog as a single JSON object, manager keys
// in canonical order, or as the note object for a marker catalog.
func (c *Catalog) MarshalJSON() ([]byte, error) {
	if c.note != "" {
		return json.Marshal(map[string]string{noteKey: c.note})
	}
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, id := range c.Managers() {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(string(id))
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(c.pkgs[id])
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a catalog document. Unknown manager keys are
// dropped and reported through Skipped, and a null entry reads as an
// empty listing. A document that is not an object of string arrays (or
// the note object) is a hard error, since a malformed catalog cannot be
// safely reconciled.
func (c *Catalog) UnmarshalJSON(data []byte) error {
	// A top-level null would decode into a nil map without error.
	if string(bytes.TrimSpace(data)) == "null" {
		return fmt.Errorf("catalog document: null is not an object")
	}
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("catalog document: %w", err)
	}

	if msg, ok := raw[noteKey]; ok && len(raw) == 1 {
		var note string
		if err := json.Unmarshal(msg, &note); err != nil {
			return fmt.Errorf("catalog note: %w", err)
		}
		*c = Catalog{note: note}
		return nil
	}

	pkgs := make(map[ID][]string, len(raw))
	var skipped []string
	for key, val := range raw {
		id, err := Parse(key)
		if err != nil {
			skipped = append(skipped, key)
			continue
		}
		var names []string
		if err := json.Unmarshal(val, &names); err != nil {
			return fmt.Errorf("catalog entry %q: %w", key, err)
		}
		if names == nil {
			names = []string{}
		}
		pkgs[id] = names
	}
	sort.Strings(skipped)
	*c = Catalog{pkgs: pkgs, skipped: skipped}
	return nil
}
