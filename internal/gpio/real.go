//go:build linux

package gpio

import (
	"fmt"

	"github.com/warthog618/go-gpiocdev"
)

// RealReader reads buttons from actual hardware using Linux GPIO character device.
type RealReader struct {
	chip    *gpiocdev.Chip
	upPin   *gpiocdev.Line
	downPin *gpiocdev.Line
	gndPin  *gpiocdev.Line
}

// NewRealReader requests the button lines on the named chip.
func NewRealReader(chipName string, pins Pins) (*RealReader, error) {
	if pins.Up == pins.Down {
		return nil, fmt.Errorf("up and down share pin %d", pins.Up)
	}

	chip, err := gpiocdev.NewChip(chipName)
	if err != nil {
		return nil, fmt.Errorf("open gpio chip %s: %w", chipName, err)
	}

	r := &RealReader{chip: chip}

	// Buttons short to ground when pressed, so idle must be pulled high.
	r.upPin, err = chip.RequestLine(pins.Up, gpiocdev.AsInput, gpiocdev.WithPullUp)
	if err != nil {
		r.Close()
		return nil, fmt.Errorf("request up pin %d: %w", pins.Up, err)
	}

	r.downPin, err = chip.RequestLine(pins.Down, gpiocdev.AsInput, gpiocdev.WithPullUp)
	if err != nil {
		r.Close()
		return nil, fmt.Errorf("request down pin %d: %w", pins.Down, err)
	}

	if pins.Ground != NoPin {
		r.gndPin, err = chip.RequestLine(pins.Ground, gpiocdev.AsOutput(0))
		if err != nil {
			r.Close()
			return nil, fmt.Errorf("request ground pin %d: %w", pins.Ground, err)
		}
	}

	return r, nil
}

// Read returns the raw levels of up and down (true = high = released).
func (r *RealReader) Read() (bool, bool, error) {
	upRaw, err := r.upPin.Value()
	if err != nil {
		return false, false, fmt.Errorf("read up pin: %w", err)
	}

	downRaw, err := r.downPin.Value()
	if err != nil {
		return false, false, fmt.Errorf("read down pin: %w", err)
	}

	return upRaw != 0, downRaw != 0, nil
}

// Close releases GPIO resources.
// Lines are returned to plain inputs with pull-down (matching Pi boot
// defaults) before closing; the ground line is released first so it does not
// fight the reconfigured inputs.
func (r *RealReader) Close() error {
	var errs []error

	if r.gndPin != nil {
		if err := r.gndPin.Reconfigure(gpiocdev.AsInput, gpiocdev.WithPullDown); err != nil {
			errs = append(errs, fmt.Errorf("reconfigure ground pin: %w", err))
		}
		if err := r.gndPin.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close ground pin: %w", err))
		}
	}
	if r.upPin != nil {
		if err := r.upPin.Reconfigure(gpiocdev.AsInput, gpiocdev.WithPullDown); err != nil {
			errs = append(errs, fmt.Errorf("reconfigure up pin: %w", err))
		}
		if err := r.upPin.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close up pin: %w", err))
		}
	}
	if r.downPin != nil {
		if err := r.downPin.Reconfigure(gpiocdev.AsInput, gpiocdev.WithPullDown); err != nil {
			errs = append(errs, fmt.Errorf("reconfigure down pin: %w", err))
		}
		if err := r.downPin.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close down pin: %w", err))
		}
	}
	if r.chip != nil {
		if err := r.chip.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close chip: %w", err))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("close errors: %v", errs)
	}
	return nil
}
