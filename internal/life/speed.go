package life

import (
	"fmt"
	"strings"
	"time"
)

// Speed is one of seven step-rate levels, slowest first.
type Speed int

const (
	SpeedVerySlow Speed = iota
	SpeedSlow
	SpeedMediumSlow
	SpeedMedium
	SpeedMediumFast
	SpeedFast
	SpeedVeryFast
)

var speedIntervals = [...]time.Duration{
	SpeedVerySlow:   5 * time.Second,
	SpeedSlow:       2500 * time.Millisecond,
	SpeedMediumSlow: time.Second,
	SpeedMedium:     500 * time.Millisecond,
	SpeedMediumFast: 250 * time.Millisecond,
	SpeedFast:       100 * time.Millisecond,
	SpeedVeryFast:   50 * time.Millisecond,
}

var speedNames = [...]string{
	SpeedVerySlow:   "very-slow",
	SpeedSlow:       "slow",
	SpeedMediumSlow: "medium-slow",
	SpeedMedium:     "medium",
	SpeedMediumFast: "medium-fast",
	SpeedFast:       "fast",
	SpeedVeryFast:   "very-fast",
}

// Speeds returns every level from slowest to fastest.
func Speeds() []Speed {
	out := make([]Speed, 0, len(speedNames))
	for s := SpeedVerySlow; s <= SpeedVeryFast; s++ {
		out = append(out, s)
	}
	return out
}

func (s Speed) clamp() Speed {
	if s < SpeedVerySlow {
		return SpeedVerySlow
	}
	if s > SpeedVeryFast {
		return SpeedVeryFast
	}
	return s
}

// Interval returns the time between steps at this speed.
func (s Speed) Interval() time.Duration {
	return speedIntervals[s.clamp()]
}

// String returns the kebab-case name, e.g. "medium-fast".
func (s Speed) String() string {
	if s < SpeedVerySlow || s > SpeedVeryFast {
		return fmt.Sprintf("Speed(%d)", int(s))
	}
	return speedNames[s]
}

// Faster returns the next faster level, staying at VeryFast.
func (s Speed) Faster() Speed {
	return (s + 1).clamp()
}

// Slower returns the next slower level, staying at VerySlow.
func (s Speed) Slower() Speed {
	return (s - 1).clamp()
}

// speedAliases are extra names accepted by ParseSpeed.
var speedAliases = map[string]Speed{
	"slowest": SpeedVerySlow,
	"fastest": SpeedVeryFast,
}

// ParseSpeed accepts names like "medium-fast", "MediumFast" or "medium_fast",
// plus "slowest" and "fastest".
func ParseSpeed(name string) (Speed, error) {
	want := normalizeSpeedName(name)
	if s, ok := speedAliases[want]; ok {
		return s, nil
	}
	for s, n := range speedNames {
		if normalizeSpeedName(n) == want {
			return Speed(s), nil
		}
	}
	return SpeedMedium, fmt.Errorf("life: unknown speed %q", name)
}

func normalizeSpeedName(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	return strings.NewReplacer("-", "", "_", "", " ", "").Replace(name)
}

// Stepper is what a Clock drives.
type Stepper interface {
	Running() bool
	Step() StepResult
}

// Clock turns elapsed time into steps at the configured speed.
type Clock struct {
	speed     Speed
	remaining time.Duration
}

// NewClock creates a clock with a full countdown at speed s.
func NewClock(s Speed) *Clock {
	c := &Clock{}
	c.SetSpeed(s)
	return c
}

// Speed returns the configured level.
func (c *Clock) Speed() Speed {
	return c.speed
}

// SetSpeed changes the level and restarts the countdown.
func (c *Clock) SetSpeed(s Speed) {
	c.speed = s.clamp()
	c.remaining = c.speed.Interval()
}

// Remaining returns the time left before the next step.
func (c *Clock) Remaining() time.Duration {
	return c.remaining
}

// Advance subtracts dt from the countdown while s is running. When the
// countdown reaches zero it steps once and restarts. Reports whether it stepped.
func (c *Clock) Advance(s Stepper, dt time.Duration) bool {
	if !s.Running() {
		return false
	}
	c.remaining -= dt
	if c.remaining > 0 {
		return false
	}
	s.Step()
	c.remaining = c.speed.Interval()
	return true
}
