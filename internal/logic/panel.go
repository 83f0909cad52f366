package logic

import "time"

// Panel is the state of the control loop: two debounced buttons driving a
// Thermometer.
type Panel struct {
	up            *Debouncer
	down          *Debouncer
	thermo        *Thermometer
	startTime     time.Time
	counts        Counts
	lastHeartbeat time.Time
}

// NewPanel creates a Panel with the given debounce interval.
// The startTime is used for calculating uptime in heartbeats.
func NewPanel(thermo *Thermometer, debounce time.Duration, startTime time.Time) *Panel {
	return &Panel{
		up:            NewDebouncer(debounce),
		down:          NewDebouncer(debounce),
		thermo:        thermo,
		startTime:     startTime,
		lastHeartbeat: startTime,
	}
}

// Process runs one iteration of the loop for a raw button sample.
// Both debouncers are updated on every call, so an edge on one button is
// never held over while the other one fires.
func (p *Panel) Process(s Sample) Update {
	p.up.Update(s.Up, s.Time)
	p.down.Update(s.Down, s.Time)

	in := Input{Down: p.down.Fell(), Up: p.up.Fell()}
	reading, changed := p.thermo.Step(in)

	switch {
	case in.Down:
		p.counts.Down++
	case in.Up:
		p.counts.Up++
	}
	if (in.Down || in.Up) && p.thermo.Clamped() {
		p.counts.Clamped++
	}

	u := Update{Reading: reading, Changed: changed}
	if changed {
		p.counts.Redraws++
		u.Label = reading.Label()
	}
	return u
}

// Invalidate forces a redraw on the next Process call.
func (p *Panel) Invalidate() {
	p.thermo.Invalidate()
}

// Reading returns the current temperature.
func (p *Panel) Reading() Reading {
	return p.thermo.Value()
}

// Buttons returns the debounced levels (true = released).
func (p *Panel) Buttons() (up, down bool) {
	return p.up.Value(), p.down.Value()
}

// CountsSnapshot returns a copy of the counters.
func (p *Panel) CountsSnapshot() Counts {
	return p.counts
}

// CheckHeartbeat returns heartbeat data if the interval has elapsed since the
// last heartbeat (or startup). Returns nil if the interval has not elapsed,
// or if interval is <= 0 (disabled).
func (p *Panel) CheckHeartbeat(now time.Time, interval time.Duration) *HeartbeatData {
	if interval <= 0 {
		return nil
	}

	if now.Sub(p.lastHeartbeat) < interval {
		return nil
	}

	p.lastHeartbeat = now
	return &HeartbeatData{
		Timestamp: now,
		Uptime:    now.Sub(p.startTime),
		Reading:   p.thermo.Value(),
		Counts:    p.counts,
	}
}
