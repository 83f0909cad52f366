package logic

import "fmt"

// Range bounds a Thermometer.
type Range struct {
	Min  Reading
	Max  Reading
	Step Reading
}

// DefaultRange is 30.0 C to 40.0 C in 0.1 C steps.
var DefaultRange = Range{Min: DefaultMin, Max: DefaultMax, Step: DefaultStep}

// Validate reports whether the range can be used.
func (r Range) Validate() error {
	if r.Min > r.Max {
		return fmt.Errorf("min %s above max %s", r.Min, r.Max)
	}
	if r.Step <= 0 {
		return fmt.Errorf("step %s must be positive", r.Step)
	}
	return nil
}

// Clamp returns v limited to [Min, Max].
func (r Range) Clamp(v Reading) Reading {
	if v < r.Min {
		return r.Min
	}
	if v > r.Max {
		return r.Max
	}
	return v
}

// Thermometer holds the synthetic temperature and the value last shown.
// Not safe for concurrent use; it is owned by the control loop.
type Thermometer struct {
	rng      Range
	value    Reading
	shown    Reading
	hasShown bool
	clamped  bool
}

// NewThermometer creates a Thermometer at start, clamped into rng.
// Nothing is considered displayed yet, so the first Step asks for a redraw.
func NewThermometer(rng Range, start Reading) *Thermometer {
	return &Thermometer{
		rng:   rng,
		value: rng.Clamp(start),
	}
}

// Step applies one iteration: down takes priority over up, the result is
// clamped, and the second return value reports whether the clamped value
// differs from the one last displayed. When it does, the value is recorded
// as displayed.
func (t *Thermometer) Step(in Input) (Reading, bool) {
	next := t.value
	switch {
	case in.Down:
		next -= t.rng.Step
	case in.Up:
		next += t.rng.Step
	}
	clampedNext := t.rng.Clamp(next)
	t.clamped = clampedNext != next
	t.value = clampedNext

	if t.hasShown && t.shown == t.value {
		return t.value, false
	}
	t.shown = t.value
	t.hasShown = true
	return t.value, true
}

// Value returns the current temperature.
func (t *Thermometer) Value() Reading {
	return t.value
}

// Clamped reports whether the last Step hit a range limit.
func (t *Thermometer) Clamped() bool {
	return t.clamped
}

// Invalidate forgets the displayed value so the next Step redraws.
// Used when a draw did not reach the panel.
func (t *Thermometer) Invalidate() {
	t.hasShown = false
}
