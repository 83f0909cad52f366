package logic

import "testing"

func TestTenths(t *testing.T) {
	tests := []struct {
		in   float64
		want Reading
	}{
		{37.0, 370},
		{30, 300},
		{40, 400},
		{0.1, 1},
		{-1.2, -12},
	}
	for _, tt := range tests {
		if got := Tenths(tt.in); got != tt.want {
			t.Errorf("Tenths(%v): got %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestReadingLabel(t *testing.T) {
	if got := Reading(370).Label(); got != "Temp 37.0C" {
		t.Errorf("label: got %q, want %q", got, "Temp 37.0C")
	}
	if got := Reading(301).Label(); got != "Temp 30.1C" {
		t.Errorf("label: got %q, want %q", got, "Temp 30.1C")
	}
	if got := Reading(400).Celsius(); got != 40.0 {
		t.Errorf("celsius: got %v, want 40.0", got)
	}
}

func TestRangeValidate(t *testing.T) {
	if err := DefaultRange.Validate(); err != nil {
		t.Errorf("default range: unexpected error: %v", err)
	}
	if err := (Range{Min: 400, Max: 300, Step: 1}).Validate(); err == nil {
		t.Error("expected error for min above max")
	}
	if err := (Range{Min: 300, Max: 400, Step: 0}).Validate(); err == nil {
		t.Error("expected error for zero step")
	}
}

func TestFirstStepRedraws(t *testing.T) {
	th := NewThermometer(DefaultRange, DefaultStart)

	r, changed := th.Step(Input{})
	if !changed {
		t.Error("first step should ask for a redraw")
	}
	if r != 370 {
		t.Errorf("expected 370, got %d", r)
	}

	_, changed = th.Step(Input{})
	if changed {
		t.Error("second idle step should not redraw")
	}
}

func TestStartIsClamped(t *testing.T) {
	th := NewThermometer(DefaultRange, 500)
	if th.Value() != DefaultMax {
		t.Errorf("expected start clamped to %d, got %d", DefaultMax, th.Value())
	}
	th = NewThermometer(DefaultRange, 0)
	if th.Value() != DefaultMin {
		t.Errorf("expected start clamped to %d, got %d", DefaultMin, th.Value())
	}
}

func TestStepIsExactlyOneTenth(t *testing.T) {
	th := NewThermometer(DefaultRange, DefaultStart)
	th.Step(Input{})

	r, changed := th.Step(Input{Up: true})
	if !changed || r != 371 {
		t.Errorf("up: got (%d, %v), want (371, true)", r, changed)
	}
	r, changed = th.Step(Input{Down: true})
	if !changed || r != 370 {
		t.Errorf("down: got (%d, %v), want (370, true)", r, changed)
	}
}

func TestDownTakesPriority(t *testing.T) {
	th := NewThermometer(DefaultRange, DefaultStart)
	th.Step(Input{})

	r, _ := th.Step(Input{Up: true, Down: true})
	if r != 369 {
		t.Errorf("expected down to win, got %d", r)
	}
}

func TestDownAtMinimum(t *testing.T) {
	th := NewThermometer(DefaultRange, DefaultMin)
	th.Step(Input{})

	r, changed := th.Step(Input{Down: true})
	if r != DefaultMin {
		t.Errorf("expected %d, got %d", DefaultMin, r)
	}
	if changed {
		t.Error("clamped press at minimum should not redraw")
	}
	if !th.Clamped() {
		t.Error("expected Clamped after press at minimum")
	}
}

func TestUpAtMaximum(t *testing.T) {
	th := NewThermometer(DefaultRange, DefaultMax)
	th.Step(Input{})

	r, changed := th.Step(Input{Up: true})
	if r != DefaultMax {
		t.Errorf("expected %d, got %d", DefaultMax, r)
	}
	if changed {
		t.Error("clamped press at maximum should not redraw")
	}
}

func TestUpThirtyTimesFromStart(t *testing.T) {
	th := NewThermometer(DefaultRange, DefaultStart)
	th.Step(Input{})

	redraws := 0
	for i := 0; i < 30; i++ {
		if _, changed := th.Step(Input{Up: true}); changed {
			redraws++
		}
	}
	if th.Value() != 400 {
		t.Fatalf("expected 400 after 30 presses, got %d", th.Value())
	}
	if redraws != 30 {
		t.Errorf("expected 30 redraws, got %d", redraws)
	}
	if got := th.Value().Label(); got != "Temp 40.0C" {
		t.Errorf("label: got %q", got)
	}

	// Further presses stay at the limit
	for i := 0; i < 5; i++ {
		if _, changed := th.Step(Input{Up: true}); changed {
			t.Errorf("press %d past the limit redrew", i)
		}
	}
	if th.Value() != 400 {
		t.Errorf("expected 400, got %d", th.Value())
	}
}

func TestAnySequenceStaysInRange(t *testing.T) {
	th := NewThermometer(DefaultRange, DefaultStart)
	// Deterministic pseudo-random walk biased to both ends
	seed := uint32(12345)
	for i := 0; i < 5000; i++ {
		seed = seed*1664525 + 1013904223
		in := Input{}
		switch seed >> 30 {
		case 0:
			in.Down = true
		case 1, 2:
			in.Up = i < 2500
			in.Down = i >= 2500
		}
		r, _ := th.Step(in)
		if r < DefaultMin || r > DefaultMax {
			t.Fatalf("step %d: reading %d out of range", i, r)
		}
	}
}

func TestInvalidateForcesRedraw(t *testing.T) {
	th := NewThermometer(DefaultRange, DefaultStart)
	th.Step(Input{})

	th.Invalidate()
	r, changed := th.Step(Input{})
	if !changed {
		t.Error("expected redraw after Invalidate")
	}
	if r != 370 {
		t.Errorf("expected 370, got %d", r)
	}
}
