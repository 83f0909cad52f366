package gpio

import (
	"errors"
	"io"
)

// FakeReader is a test double that returns scripted button levels.
type FakeReader struct {
	// Samples contains scripted (up, down) levels to return.
	// Each call to Read() consumes the next sample.
	Samples []Sample

	// index tracks current position in Samples
	index int

	// EOF makes Read return io.EOF once the samples are exhausted instead
	// of repeating the last one.
	EOF bool

	// Closed tracks if Close was called
	Closed bool

	// ReadError, if set, will be returned by Read()
	ReadError error
}

// Sample represents a single reading of both buttons (raw levels, true = high).
type Sample struct {
	Up   bool
	Down bool
}

// Released is the idle level of both buttons.
var Released = Sample{Up: true, Down: true}

// NewFakeReader creates a FakeReader with the given samples.
func NewFakeReader(samples []Sample) *FakeReader {
	return &FakeReader{Samples: samples}
}

// Read returns the next scripted sample.
// If samples are exhausted, returns the last sample repeatedly, or io.EOF
// when EOF is set.
func (f *FakeReader) Read() (bool, bool, error) {
	if f.ReadError != nil {
		return false, false, f.ReadError
	}

	if len(f.Samples) == 0 {
		return false, false, errors.New("no samples configured")
	}

	if f.index >= len(f.Samples) {
		if f.EOF {
			return false, false, io.EOF
		}
		f.index = len(f.Samples) - 1
	}

	sample := f.Samples[f.index]
	f.index++

	return sample.Up, sample.Down, nil
}

// Remaining returns the number of samples not yet read.
func (f *FakeReader) Remaining() int {
	if f.index >= len(f.Samples) {
		return 0
	}
	return len(f.Samples) - f.index
}

// Close marks the reader as closed.
func (f *FakeReader) Close() error {
	f.Closed = true
	return nil
}

// Reset resets the reader to the beginning of samples.
func (f *FakeReader) Reset() {
	f.index = 0
	f.Closed = false
}
