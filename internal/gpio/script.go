package gpio

import (
	"fmt"
	"time"
	"unicode"
)

// Script characters understood by SamplesFromScript.
const (
	ScriptUp    = 'u'
	ScriptDown  = 'd'
	ScriptBoth  = 'b'
	ScriptPause = '.'
)

// HoldFor returns how many samples a level must be held at the given poll
// interval to get through a debouncer: one sample to start the clock, enough
// to cover the interval and one more so late ticks still commit the level.
func HoldFor(debounce, poll time.Duration) int {
	if poll <= 0 {
		return 3
	}
	n := int((debounce+poll-1)/poll) + 2
	if n < 3 {
		return 3
	}
	return n
}

// SamplesFromScript expands a button script into samples. Each 'u', 'd' or
// 'b' is a press of up, down or both held for hold samples followed by a
// release of the same length; '.' is a pause. Whitespace is ignored. The
// result starts with a released period so a debouncer is seeded high.
func SamplesFromScript(script string, hold int) ([]Sample, error) {
	if hold < 2 {
		return nil, fmt.Errorf("hold %d: need at least 2 samples per level", hold)
	}

	samples := repeat(Released, hold)
	for i, c := range script {
		if unicode.IsSpace(c) {
			continue
		}
		var pressed Sample
		switch unicode.ToLower(c) {
		case ScriptUp:
			pressed = Sample{Up: false, Down: true}
		case ScriptDown:
			pressed = Sample{Up: true, Down: false}
		case ScriptBoth:
			pressed = Sample{Up: false, Down: false}
		case ScriptPause:
			samples = append(samples, repeat(Released, hold)...)
			continue
		default:
			return nil, fmt.Errorf("script position %d: unknown button %q", i, c)
		}
		samples = append(samples, repeat(pressed, hold)...)
		samples = append(samples, repeat(Released, hold)...)
	}
	return samples, nil
}

// NewScriptReader returns a FakeReader playing the script once.
// Read returns io.EOF when the script is done.
func NewScriptReader(script string, hold int) (*FakeReader, error) {
	samples, err := SamplesFromScript(script, hold)
	if err != nil {
		return nil, err
	}
	r := NewFakeReader(samples)
	r.EOF = true
	return r, nil
}

func repeat(sample Sample, n int) []Sample {
	out := make([]Sample, n)
	for i := range out {
		out[i] = sample
	}
	return out
}
