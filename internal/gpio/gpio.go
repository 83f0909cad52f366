// Package gpio provides button input reading with hardware abstraction.
// The real implementation uses Linux GPIO character device.
// The fake implementation allows testing and simulation without hardware.
package gpio

// Reader reads the two button inputs.
type Reader interface {
	// Read returns the raw electrical levels of the up and down buttons.
	// Buttons are wired to ground with pull-ups: true = high = released,
	// false = low = pressed.
	// Returns (up, down, error).
	Read() (bool, bool, error)

	// Close releases GPIO resources.
	Close() error
}

// Default line offsets on the GPIO chip.
const (
	DefaultChip    = "gpiochip0"
	DefaultPinUp   = 8
	DefaultPinDown = 7
)

// NoPin disables an optional line.
const NoPin = -1

// Pins selects the lines used by a RealReader.
type Pins struct {
	Up   int
	Down int
	// Ground, if not NoPin, is driven low for buttons wired to a GPIO
	// instead of a ground pin.
	Ground int
}

// DefaultPins returns the default wiring with no ground line.
func DefaultPins() Pins {
	return Pins{Up: DefaultPinUp, Down: DefaultPinDown, Ground: NoPin}
}
