//go:build !linux

package gpio

import "fmt"

// RealReader needs the Linux GPIO character device. Use FakeReader or a
// button script elsewhere.
type RealReader struct{}

func NewRealReader(chipName string, pins Pins) (*RealReader, error) {
	return nil, fmt.Errorf("gpio: %s unavailable, buttons need Linux (try --simulate)", chipName)
}

func (r *RealReader) Read() (bool, bool, error) {
	return false, false, fmt.Errorf("gpio: buttons need Linux")
}

func (r *RealReader) Close() error {
	return nil
}
