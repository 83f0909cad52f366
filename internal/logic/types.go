// Package logic contains the pure control logic of the thermometer.
// This package has NO external dependencies (no GPIO, display, OS, or time.Sleep).
// Time is always injectable via time.Time parameters.
package logic

import (
	"fmt"
	"time"
)

// Temperatures are held as whole tenths of a degree so that a run of 0.1
// steps lands exactly on the range limits.
const (
	DefaultMin   = 300 // 30.0 C
	DefaultMax   = 400 // 40.0 C
	DefaultStep  = 1   // 0.1 C
	DefaultStart = 370 // 37.0 C
)

// DefaultDebounce matches the usual settling time of a tactile switch.
const DefaultDebounce = 10 * time.Millisecond

// Reading is a temperature in tenths of a degree Celsius.
type Reading int

// Tenths converts degrees Celsius to a Reading, rounding to the nearest tenth.
func Tenths(celsius float64) Reading {
	if celsius < 0 {
		return Reading(celsius*10 - 0.5)
	}
	return Reading(celsius*10 + 0.5)
}

// Celsius returns the reading in degrees.
func (r Reading) Celsius() float64 {
	return float64(r) / 10
}

// Label formats the reading the way the display shows it, e.g. "Temp 37.0C".
func (r Reading) Label() string {
	return fmt.Sprintf("Temp %.1fC", r.Celsius())
}

func (r Reading) String() string {
	return fmt.Sprintf("%.1f", r.Celsius())
}

// Input is one iteration's worth of debounced button edges.
type Input struct {
	Down bool // down button fell this iteration
	Up   bool // up button fell this iteration
}

// Sample is a single raw reading of both buttons.
// Levels are electrical: true = high (released under pull-up wiring).
type Sample struct {
	Up   bool
	Down bool
	Time time.Time
}

// Update is the outcome of one loop iteration.
type Update struct {
	Reading Reading
	// Changed is true when the display must be redrawn with Label.
	Changed bool
	Label   string
}

// Counts tracks button activity since startup.
type Counts struct {
	Up      int
	Down    int
	Clamped int // presses absorbed by the range limits
	Redraws int
}

// HeartbeatData contains information for a heartbeat log line.
type HeartbeatData struct {
	Timestamp time.Time
	Uptime    time.Duration
	Reading   Reading
	Counts    Counts
}
