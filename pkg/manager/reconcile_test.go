// pkg/manager/reconcile_test.go
package manager

import (
	"errors"
	"reflect"
	"testing"
)

func refs(pairs ...Ref) []Ref { return pairs }

func TestReconcileSkipsUnavailableManagers(t *testing.T) {
	run := newFakeRunner()
	run.ok("apt --version")
	run.ok("dpkg -s curl")
	run.exit("dpkg -s vim", 1)
	run.ok("sudo apt install -y vim")
	// snap is not probed successfully, so its packages must be ignored.

	cat := NewCatalog()
	cat.Set(Apt, []string{"curl", "vim"})
	cat.Set(Snap, []string{"hello"})

	rep := NewReconciler(run, "", quietLogger()).Reconcile(cat)

	if want := refs(Ref{"curl", Apt}); !reflect.DeepEqual(rep.AlreadyInstalled, want) {
		t.Errorf("AlreadyInstalled = %v, want %v", rep.AlreadyInstalled, want)
	}
	if want := refs(Ref{"vim", Apt}); !reflect.DeepEqual(rep.NewlyInstalled, want) {
		t.Errorf("NewlyInstalled = %v, want %v", rep.NewlyInstalled, want)
	}
	if len(rep.Failed) != 0 {
		t.Errorf("Failed = %v, want none", rep.Failed)
	}
	if rep.Total() != 2 {
		t.Errorf("Total = %d, want 2", rep.Total())
	}
	if run.called("snap list hello") || run.called("sudo snap install hello") {
		t.Error("touched a package under an undetected manager")
	}
}

func TestReconcileFailureDoesNotStopRun(t *testing.T) {
	run := newFakeRunner()
	run.ok("pacman --version")
	run.exit("pacman -Q zsh", 1)
	run.exit("pacman -Q broken", 1)
	run.exit("pacman -Q tmux", 1)
	run.ok("sudo pacman -S --noconfirm zsh")
	run.exit("sudo pacman -S --noconfirm broken", 1)
	run.ok("sudo pacman -S --noconfirm tmux")

	cat := NewCatalog()
	cat.Set(Pacman, []string{"zsh", "broken", "tmux"})

	rep := NewReconciler(run, "", quietLogger()).Reconcile(cat)

	if want := refs(Ref{"zsh", Pacman}, Ref{"tmux", Pacman}); !reflect.DeepEqual(rep.NewlyInstalled, want) {
		t.Errorf("NewlyInstalled = %v, want %v", rep.NewlyInstalled, want)
	}
	if want := refs(Ref{"broken", Pacman}); !reflect.DeepEqual(rep.Failed, want) {
		t.Errorf("Failed = %v, want %v", rep.Failed, want)
	}
}

func TestReconcileIsIdempotent(t *testing.T) {
	run := newFakeRunner()
	run.ok("apt --version")
	run.exit("dpkg -s vim", 1)
	run.ok("sudo apt install -y vim")

	cat := NewCatalog()
	cat.Set(Apt, []string{"vim"})

	rec := NewReconciler(run, "", quietLogger())
	first := rec.Reconcile(cat)
	if len(first.NewlyInstalled) != 1 {
		t.Fatalf("first pass NewlyInstalled = %v", first.NewlyInstalled)
	}

	// After the install succeeded the package probe reports it present.
	run.ok("dpkg -s vim")
	second := rec.Reconcile(cat)
	if want := refs(Ref{"vim", Apt}); !reflect.DeepEqual(second.AlreadyInstalled, want) {
		t.Errorf("second pass AlreadyInstalled = %v, want %v", second.AlreadyInstalled, want)
	}
	if len(second.NewlyInstalled) != 0 || len(second.Failed) != 0 {
		t.Errorf("second pass reinstalled: %v / %v", second.NewlyInstalled, second.Failed)
	}
}

func TestReconcileMarkerCatalog(t *testing.T) {
	rep := NewReconciler(newFakeRunner(), "", quietLogger()).Reconcile(NewMarker())
	if rep.Total() != 0 {
		t.Errorf("Total = %d, want 0", rep.Total())
	}
}

func TestReconcileDegradedCheckStillInstalls(t *testing.T) {
	run := newFakeRunner()
	run.ok("xbps-query --version")
	// The installed check itself fails to spawn; the package is treated
	// as absent rather than aborting the run.
	run.scripts["xbps-query -S tmux"] = fakeResult{spawnErr: errors.New("fork/exec: permission denied")}
	run.ok("sudo xbps-install -S -y tmux")

	cat := NewCatalog()
	cat.Set(Xbps, []string{"tmux"})

	rep := NewReconciler(run, "", quietLogger()).Reconcile(cat)
	if want := refs(Ref{"tmux", Xbps}); !reflect.DeepEqual(rep.NewlyInstalled, want) {
		t.Errorf("NewlyInstalled = %v, want %v", rep.NewlyInstalled, want)
	}
}

func TestRefString(t *testing.T) {
	if got := (Ref{Name: "curl", Manager: Apt}).String(); got != "curl (apt)" {
		t.Errorf("String = %q", got)
	}
}
