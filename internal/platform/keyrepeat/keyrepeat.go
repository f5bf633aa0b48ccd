// Package keyrepeat saves, tunes and restores the keyboard auto-repeat
// profile. Holding a movement key is the main way to play, so the game wants
// a short repeat delay and a high rate; the user's own settings must come
// back no matter how the process exits.
package keyrepeat

import (
	"fmt"
	"os/exec"
	"regexp"
	"strconv"
)

// Profile is a keyboard auto-repeat setting: delay before the first repeat in
// milliseconds and repeats per second.
type Profile struct {
	Delay int
	Rate  int
}

// Tuner reads and writes the system keyboard repeat profile. The game core
// never talks to the OS directly; it only sees this interface.
type Tuner interface {
	Current() (Profile, error)
	Apply(Profile) error
}

// Noop is a Tuner that does nothing. Used for SSH sessions and systems
// without xset, where there is no local keyboard to tune.
type Noop struct{}

func (Noop) Current() (Profile, error) { return Profile{}, nil }
func (Noop) Apply(Profile) error       { return nil }

// execCommand is swapped out in tests.
var execCommand = exec.Command

// XSet is a Tuner backed by the xset(1) utility, so it works only inside an
// X session.
type XSet struct{}

var repeatRe = regexp.MustCompile(`auto repeat delay:\s+(\d+)\s+repeat rate:\s+(\d+)`)

// Current reads the active repeat profile from `xset q`.
func (XSet) Current() (Profile, error) {
	out, err := execCommand("xset", "q").Output()
	if err != nil {
		return Profile{}, fmt.Errorf("keyrepeat: xset q: %w", err)
	}
	m := repeatRe.FindSubmatch(out)
	if m == nil {
		return Profile{}, fmt.Errorf("keyrepeat: no auto repeat settings in xset output")
	}
	delay, _ := strconv.Atoi(string(m[1]))
	rate, _ := strconv.Atoi(string(m[2]))
	return Profile{Delay: delay, Rate: rate}, nil
}

// Apply sets the repeat profile with `xset r rate`.
func (XSet) Apply(p Profile) error {
	cmd := execCommand("xset", "r", "rate", strconv.Itoa(p.Delay), strconv.Itoa(p.Rate))
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("keyrepeat: xset r rate: %w", err)
	}
	return nil
}

// Restorer is a scoped handle over the profile that was active at startup.
// Acquire it once, defer Restore, and the terminal's keyboard is never left
// altered regardless of the exit path.
type Restorer struct {
	tuner Tuner
	saved Profile
	armed bool
}

// Acquire saves the current profile and applies the game profile. If the
// current profile cannot be read, nothing is applied and Restore is a no-op;
// the returned error is for logging, the game runs fine either way.
func Acquire(t Tuner, game Profile) (*Restorer, error) {
	saved, err := t.Current()
	if err != nil {
		return &Restorer{tuner: t}, err
	}
	r := &Restorer{tuner: t, saved: saved, armed: true}
	if err := t.Apply(game); err != nil {
		return r, err
	}
	return r, nil
}

// Restore puts the saved profile back. Safe to call multiple times.
func (r *Restorer) Restore() error {
	if !r.armed {
		return nil
	}
	r.armed = false
	return r.tuner.Apply(r.saved)
}
