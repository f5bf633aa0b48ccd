package keyrepeat

import (
	"errors"
	"os/exec"
	"testing"
)

// fakeTuner records applied profiles and can fail on demand.
type fakeTuner struct {
	current    Profile
	currentErr error
	applied    []Profile
	applyErr   error
}

func (f *fakeTuner) Current() (Profile, error) {
	return f.current, f.currentErr
}

func (f *fakeTuner) Apply(p Profile) error {
	f.applied = append(f.applied, p)
	return f.applyErr
}

func TestXSetCurrentParsesOutput(t *testing.T) {
	defer func() { execCommand = exec.Command }()
	execCommand = func(name string, args ...string) *exec.Cmd {
		return exec.Command("echo", "  auto repeat delay:  660    repeat rate:  25")
	}

	p, err := XSet{}.Current()
	if err != nil {
		t.Fatalf("Current: %v", err)
	}
	if p.Delay != 660 || p.Rate != 25 {
		t.Errorf("profile = %+v, expected delay 660 rate 25", p)
	}
}

func TestXSetCurrentRejectsUnexpectedOutput(t *testing.T) {
	defer func() { execCommand = exec.Command }()
	execCommand = func(name string, args ...string) *exec.Cmd {
		return exec.Command("echo", "nothing useful here")
	}

	if _, err := (XSet{}).Current(); err == nil {
		t.Error("Current should fail when xset output has no repeat settings")
	}
}

func TestXSetApplyBuildsRateCommand(t *testing.T) {
	defer func() { execCommand = exec.Command }()
	var gotName string
	var gotArgs []string
	execCommand = func(name string, args ...string) *exec.Cmd {
		gotName = name
		gotArgs = args
		return exec.Command("true")
	}

	if err := (XSet{}).Apply(Profile{Delay: 100, Rate: 30}); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if gotName != "xset" {
		t.Errorf("command = %q, expected xset", gotName)
	}
	want := []string{"r", "rate", "100", "30"}
	if len(gotArgs) != len(want) {
		t.Fatalf("args = %v, expected %v", gotArgs, want)
	}
	for i := range want {
		if gotArgs[i] != want[i] {
			t.Errorf("arg %d = %q, expected %q", i, gotArgs[i], want[i])
		}
	}
}

func TestAcquireSavesAndApplies(t *testing.T) {
	ft := &fakeTuner{current: Profile{Delay: 660, Rate: 25}}

	r, err := Acquire(ft, Profile{Delay: 100, Rate: 30})
	if err != nil {
		t.Fatalf("Acquire: %v", err)
	}
	if len(ft.applied) != 1 || ft.applied[0] != (Profile{Delay: 100, Rate: 30}) {
		t.Errorf("applied = %v, expected the game profile", ft.applied)
	}

	if err := r.Restore(); err != nil {
		t.Fatalf("Restore: %v", err)
	}
	if len(ft.applied) != 2 || ft.applied[1] != (Profile{Delay: 660, Rate: 25}) {
		t.Errorf("applied = %v, expected the saved profile restored", ft.applied)
	}
}

func TestRestoreIsIdempotent(t *testing.T) {
	ft := &fakeTuner{current: Profile{Delay: 660, Rate: 25}}

	r, err := Acquire(ft, Profile{Delay: 100, Rate: 30})
	if err != nil {
		t.Fatalf("Acquire: %v", err)
	}
	r.Restore()
	r.Restore()
	r.Restore()

	// One apply for the game profile, one for the restore, no more.
	if len(ft.applied) != 2 {
		t.Errorf("applied %d profiles, expected 2", len(ft.applied))
	}
}

func TestAcquireWithUnreadableProfileDisarmsRestore(t *testing.T) {
	ft := &fakeTuner{currentErr: errors.New("no display")}

	r, err := Acquire(ft, Profile{Delay: 100, Rate: 30})
	if err == nil {
		t.Error("Acquire should surface the read error")
	}
	if len(ft.applied) != 0 {
		t.Errorf("applied = %v, nothing should be applied when the save failed", ft.applied)
	}
	if err := r.Restore(); err != nil {
		t.Errorf("Restore: %v, expected a silent no-op", err)
	}
	if len(ft.applied) != 0 {
		t.Errorf("applied = %v after no-op restore, expected none", ft.applied)
	}
}

func TestNoopTuner(t *testing.T) {
	r, err := Acquire(Noop{}, Profile{Delay: 100, Rate: 30})
	if err != nil {
		t.Fatalf("Acquire with Noop: %v", err)
	}
	if err := r.Restore(); err != nil {
		t.Errorf("Restore with Noop: %v", err)
	}
}
