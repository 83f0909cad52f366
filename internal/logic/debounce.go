package logic

import "time"

// Debouncer turns noisy samples of a switch into clean edges.
// A new level must be observed continuously for the interval before it
// becomes the stable value.
type Debouncer struct {
	interval time.Duration

	stable   bool
	unstable bool
	since    time.Time
	seeded   bool

	changed bool
}

// NewDebouncer creates a Debouncer with the given interval.
func NewDebouncer(interval time.Duration) *Debouncer {
	return &Debouncer{interval: interval}
}

// Update feeds one sample. Edge flags describe only this call.
// The first sample seeds the stable value and never reports an edge.
func (d *Debouncer) Update(level bool, now time.Time) {
	d.changed = false

	if !d.seeded {
		d.stable = level
		d.unstable = level
		d.since = now
		d.seeded = true
		return
	}

	if level != d.unstable {
		// Bounce or start of a transition, restart the clock
		d.unstable = level
		d.since = now
		return
	}

	if level != d.stable && now.Sub(d.since) >= d.interval {
		d.stable = level
		d.since = now
		d.changed = true
	}
}

// Value returns the debounced level.
func (d *Debouncer) Value() bool {
	return d.stable
}

// Fell reports a high to low transition on the last Update.
func (d *Debouncer) Fell() bool {
	return d.changed && !d.stable
}

// Rose reports a low to high transition on the last Update.
func (d *Debouncer) Rose() bool {
	return d.changed && d.stable
}

// Seeded reports whether a sample has been seen.
func (d *Debouncer) Seeded() bool {
	return d.seeded
}
