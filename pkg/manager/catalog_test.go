// pkg/manager/catalog_test.go
package manager

import (
	"encoding/json"
	"reflect"
	"strings"
	"testing"
)

func TestCatalogRoundTrip(t *testing.T) {
	cat := NewCatalog()
	cat.Set(Snap, []string{"hello", "core22"})
	cat.Set(Apt, []string{"zsh", "curl", "vim"})

	data, err := json.MarshalIndent(cat, "", "  ")
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var back Catalog
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if !reflect.DeepEqual(back.pkgs, cat.pkgs) {
		t.Errorf("round trip changed entries: %v != %v", back.pkgs, cat.pkgs)
	}
	// Listing order inside a manager survives the trip.
	if got := back.Packages(Apt); !reflect.DeepEqual(got, []string{"zsh", "curl", "vim"}) {
		t.Errorf("apt order = %v", got)
	}
}

func TestCatalogMarshalKeyOrder(t *testing.T) {
	cat := NewCatalog()
	cat.Set(Xbps, []string{"a"})
	cat.Set(Apt, []string{"b"})

	data, err := json.Marshal(cat)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	s := string(data)
	if strings.Index(s, `"apt"`) > strings.Index(s, `"xbps"`) {
		t.Errorf("keys not in canonical order: %s", s)
	}
}

func TestCatalogEmptyListing(t *testing.T) {
	cat := NewCatalog()
	cat.Set(Flatpak, nil)

	if got := cat.Packages(Flatpak); got == nil {
		t.Error("Packages() = nil for a manager in the catalog")
	}
	data, err := json.Marshal(cat)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"flatpak":[]}`
	if string(data) != want {
		t.Errorf("document = %s, want %s", data, want)
	}
}

func TestMarkerCatalog(t *testing.T) {
	cat := NewMarker()
	if !cat.Empty() {
		t.Error("marker catalog should be empty")
	}
	if cat.Note() == "" {
		t.Error("marker catalog should carry a note")
	}

	data, err := json.Marshal(cat)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if want := `{"message":`; !strings.HasPrefix(string(data), want) {
		t.Errorf("marker document = %s, want %s...", data, want)
	}

	var back Catalog
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if back.Note() != cat.Note() {
		t.Errorf("note lost in round trip: %q", back.Note())
	}
	if !back.Empty() {
		t.Error("round-tripped marker should stay empty")
	}
}

func TestUnmarshalSkipsUnknownManagers(t *testing.T) {
	doc := `{"apt": ["curl"], "brew": ["wget"], "pip": []}`

	var cat Catalog
	if err := json.Unmarshal([]byte(doc), &cat); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got := cat.Managers(); !reflect.DeepEqual(got, []ID{Apt}) {
		t.Errorf("Managers() = %v, want [apt]", got)
	}
	if got := cat.Skipped(); !reflect.DeepEqual(got, []string{"brew", "pip"}) {
		t.Errorf("Skipped() = %v, want [brew pip]", got)
	}
}

func TestUnmarshalNullEntry(t *testing.T) {
	var cat Catalog
	if err := json.Unmarshal([]byte(`{"flatpak": null}`), &cat); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got := cat.Managers(); !reflect.DeepEqual(got, []ID{Flatpak}) {
		t.Errorf("Managers() = %v, want [flatpak]", got)
	}

	data, err := json.Marshal(&cat)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"flatpak":[]}`
	if string(data) != want {
		t.Errorf("document = %s, want %s", data, want)
	}
}

func TestUnmarshalRejectsMalformedDocuments(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"array document", `["apt"]`},
		{"null document", `null`},
		{"scalar document", `42`},
		{"entry not an array", `{"apt": "curl"}`},
		{"entry element not a string", `{"apt": [1, 2]}`},
		{"truncated", `{"apt": ["curl"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var cat Catalog
			if err := json.Unmarshal([]byte(tt.doc), &cat); err == nil {
				t.Errorf("unmarshal %s: expected error", tt.doc)
			}
		})
	}
}

func TestCatalogLen(t *testing.T) {
	cat := NewCatalog()
	cat.Set(Apt, []string{"a", "b"})
	cat.Set(Pacman, []string{"c"})
	if got := cat.Len(); got != 3 {
		t.Errorf("Len() = %d, want 3", got)
	}
}
