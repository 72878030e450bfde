// pkg/manager/detect_test.go
package manager

import (
	"testing"
)

func TestDetectProbesEveryManager(t *testing.T) {
	run := newFakeRunner()
	run.ok("apt --version")
	run.ok("flatpak --version")
	run.exit("snap --version", 127)

	av := NewDetector(run, quietLogger()).Detect()

	if len(av) != len(All()) {
		t.Fatalf("availability has %d entries, want %d", len(av), len(All()))
	}
	want := Availability{
		Apt: true, YumDnf: false, Portage: false, Pacman: false,
		Flatpak: true, Snap: false, Xbps: false,
	}
	for id, wantOK := range want {
		if av[id] != wantOK {
			t.Errorf("av[%s] = %v, want %v", id, av[id], wantOK)
		}
	}
}

func TestDetectMissingBinariesNeverError(t *testing.T) {
	// Nothing scripted: every probe fails to spawn. Detection still
	// answers for the whole registry.
	av := NewDetector(newFakeRunner(), quietLogger()).Detect()

	for _, id := range All() {
		if av[id] {
			t.Errorf("av[%s] = true with no binaries present", id)
		}
	}
	if got := av.Available(); len(got) != 0 {
		t.Errorf("Available() = %v, want none", got)
	}
}

func TestAvailableCanonicalOrder(t *testing.T) {
	av := Availability{Xbps: true, Apt: true, Snap: true}
	got := av.Available()
	want := []ID{Apt, Snap, Xbps}
	if len(got) != len(want) {
		t.Fatalf("Available() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Available() = %v, want %v", got, want)
		}
	}
}
