// Package display shows the temperature label on an output device.
package display

import "errors"

// Display renders a single line of text. Show replaces whatever was shown
// before.
type Display interface {
	Show(text string) error
	Close() error
}

// Fake records shown labels for test assertions.
type Fake struct {
	// Labels contains every label passed to Show, in order.
	Labels []string

	// ShowError, if set, will be returned by Show and the label is not recorded.
	ShowError error

	// Closed tracks if Close was called.
	Closed bool
}

// NewFake creates a Fake display.
func NewFake() *Fake {
	return &Fake{}
}

// Show records the label.
func (f *Fake) Show(text string) error {
	if f.Closed {
		return errors.New("display closed")
	}
	if f.ShowError != nil {
		return f.ShowError
	}
	f.Labels = append(f.Labels, text)
	return nil
}

// Current returns the last shown label, or "" if nothing was shown.
func (f *Fake) Current() string {
	if len(f.Labels) == 0 {
		return ""
	}
	return f.Labels[len(f.Labels)-1]
}

// Close marks the display as closed.
func (f *Fake) Close() error {
	f.Closed = true
	return nil
}
