package life

import (
	"testing"
	"time"
)

func TestSpeedIntervals(t *testing.T) {
	tests := []struct {
		speed    Speed
		name     string
		interval time.Duration
	}{
		{SpeedVerySlow, "very-slow", 5 * time.Second},
		{SpeedSlow, "slow", 2500 * time.Millisecond},
		{SpeedMediumSlow, "medium-slow", time.Second},
		{SpeedMedium, "medium", 500 * time.Millisecond},
		{SpeedMediumFast, "medium-fast", 250 * time.Millisecond},
		{SpeedFast, "fast", 100 * time.Millisecond},
		{SpeedVeryFast, "very-fast", 50 * time.Millisecond},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.speed.Interval(); got != tc.interval {
				t.Errorf("Interval() = %v, expected %v", got, tc.interval)
			}
			if got := tc.speed.String(); got != tc.name {
				t.Errorf("String() = %q, expected %q", got, tc.name)
			}
		})
	}

	if n := len(Speeds()); n != 7 {
		t.Errorf("Speeds() returned %d levels, expected 7", n)
	}
}

func TestSpeedIntervalsStrictlyDecrease(t *testing.T) {
	speeds := Speeds()
	for i := 1; i < len(speeds); i++ {
		if speeds[i].Interval() >= speeds[i-1].Interval() {
			t.Errorf("%s is not faster than %s", speeds[i], speeds[i-1])
		}
	}
}

func TestSpeedFasterSlowerClamp(t *testing.T) {
	if s := SpeedVeryFast.Faster(); s != SpeedVeryFast {
		t.Errorf("VeryFast.Faster() = %v", s)
	}
	if s := SpeedVerySlow.Slower(); s != SpeedVerySlow {
		t.Errorf("VerySlow.Slower() = %v", s)
	}
	if s := SpeedMedium.Faster(); s != SpeedMediumFast {
		t.Errorf("Medium.Faster() = %v", s)
	}
	if s := SpeedMedium.Slower(); s != SpeedMediumSlow {
		t.Errorf("Medium.Slower() = %v", s)
	}
}

func TestParseSpeed(t *testing.T) {
	tests := []struct {
		input    string
		expected Speed
		wantErr  bool
	}{
		{"medium", SpeedMedium, false},
		{"very-fast", SpeedVeryFast, false},
		{"VerySlow", SpeedVerySlow, false},
		{"medium_fast", SpeedMediumFast, false},
		{" Medium Slow ", SpeedMediumSlow, false},
		{"slowest", SpeedVerySlow, false},
		{"Fastest", SpeedVeryFast, false},
		{"ludicrous", SpeedMedium, true},
		{"", SpeedMedium, true},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			got, err := ParseSpeed(tc.input)
			if (err != nil) != tc.wantErr {
				t.Fatalf("ParseSpeed(%q) error = %v, wantErr %v", tc.input, err, tc.wantErr)
			}
			if got != tc.expected {
				t.Errorf("ParseSpeed(%q) = %v, expected %v", tc.input, got, tc.expected)
			}
		})
	}
}

func TestSpeedNamesRoundTrip(t *testing.T) {
	for _, s := range Speeds() {
		got, err := ParseSpeed(s.String())
		if err != nil {
			t.Errorf("ParseSpeed(%q) failed: %v", s.String(), err)
			continue
		}
		if got != s {
			t.Errorf("ParseSpeed(%q) = %v, expected %v", s.String(), got, s)
		}
	}
}

type fakeStepper struct {
	running bool
	steps   int
}

func (f *fakeStepper) Running() bool { return f.running }

func (f *fakeStepper) Step() StepResult {
	f.steps++
	return StepResult{Advanced: true, Steps: f.steps}
}

func TestClockAdvance(t *testing.T) {
	c := NewClock(SpeedMedium)
	s := &fakeStepper{running: true}

	if c.Advance(s, 200*time.Millisecond) {
		t.Error("should not step before the interval elapses")
	}
	if c.Remaining() != 300*time.Millisecond {
		t.Errorf("Remaining() = %v, expected 300ms", c.Remaining())
	}
	if !c.Advance(s, 300*time.Millisecond) {
		t.Error("should step once the interval elapses")
	}
	if s.steps != 1 {
		t.Errorf("steps = %d, expected 1", s.steps)
	}
	if c.Remaining() != 500*time.Millisecond {
		t.Errorf("countdown should restart, got %v", c.Remaining())
	}
}

func TestClockPausedDoesNotCount(t *testing.T) {
	c := NewClock(SpeedFast)
	s := &fakeStepper{}

	for i := 0; i < 10; i++ {
		if c.Advance(s, time.Second) {
			t.Fatal("paused stepper should never step")
		}
	}
	if c.Remaining() != SpeedFast.Interval() {
		t.Errorf("countdown moved while paused: %v", c.Remaining())
	}
}

func TestClockSetSpeedRestartsCountdown(t *testing.T) {
	c := NewClock(SpeedVerySlow)
	s := &fakeStepper{running: true}
	c.Advance(s, 4*time.Second)

	c.SetSpeed(SpeedVeryFast)
	if c.Speed() != SpeedVeryFast || c.Remaining() != 50*time.Millisecond {
		t.Errorf("after SetSpeed: %v / %v", c.Speed(), c.Remaining())
	}

	c.SetSpeed(Speed(99))
	if c.Speed() != SpeedVeryFast {
		t.Errorf("out-of-range speed should clamp, got %v", c.Speed())
	}
}

func TestClockDrivesEngine(t *testing.T) {
	g := Generate(5, 5)
	g.At(2, 1).SetAlive(true)
	g.At(2, 2).SetAlive(true)
	g.At(2, 3).SetAlive(true)
	e := New(g)
	c := NewClock(SpeedVeryFast)

	c.Advance(e, time.Second)
	if e.Stats().Steps != 0 {
		t.Error("paused engine should not step")
	}

	e.Start()
	for i := 0; i < 4; i++ {
		c.Advance(e, 50*time.Millisecond)
	}
	if st := e.Stats(); st.Steps != 4 {
		t.Errorf("steps = %d, expected 4", st.Steps)
	}
}
