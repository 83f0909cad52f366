package display

import (
	"fmt"
	"image"
	"io"
	"time"

	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/devices/v3/ssd1306"
	"periph.io/x/host/v3"
)

// OLEDOpts configures an SSD1306 panel on I²C.
type OLEDOpts struct {
	// Bus is the periph I²C bus name; empty selects the first one.
	Bus    string
	Addr   uint16
	Width  int
	Height int
	// StartupDelay is waited between opening the bus and talking to the
	// panel; some boards need the bus to settle after power up.
	StartupDelay time.Duration
}

// OLED is an SSD1306 panel showing rendered labels.
type OLED struct {
	bus      io.Closer
	dev      *ssd1306.Dev
	renderer *Renderer
}

// NewOLED initializes the host drivers, opens the bus and the panel.
func NewOLED(opts OLEDOpts, renderer *Renderer) (*OLED, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("init host drivers: %w", err)
	}

	bus, err := i2creg.Open(opts.Bus)
	if err != nil {
		return nil, fmt.Errorf("open i2c bus %q: %w", opts.Bus, err)
	}

	time.Sleep(opts.StartupDelay)

	o, err := newOLED(bus, opts, renderer)
	if err != nil {
		bus.Close()
		return nil, err
	}
	o.bus = bus
	return o, nil
}

func newOLED(bus i2c.Bus, opts OLEDOpts, renderer *Renderer) (*OLED, error) {
	devOpts := ssd1306.DefaultOpts
	devOpts.W = opts.Width
	devOpts.H = opts.Height
	if devOpts.H == 32 {
		// 32 row panels wire the COM pins sequentially
		devOpts.Sequential = true
	}

	dev, err := ssd1306.NewI2C(addrBus{Bus: bus, addr: opts.Addr}, &devOpts)
	if err != nil {
		return nil, fmt.Errorf("init ssd1306 at %#x: %w", opts.Addr, err)
	}
	if dev.Bounds() != renderer.Bounds() {
		return nil, fmt.Errorf("panel %v does not match frame %v", dev.Bounds(), renderer.Bounds())
	}

	return &OLED{dev: dev, renderer: renderer}, nil
}

// Show renders text and pushes the frame to the panel.
func (o *OLED) Show(text string) error {
	img := o.renderer.Render(text)
	if err := o.dev.Draw(o.dev.Bounds(), img, image.Point{}); err != nil {
		return fmt.Errorf("draw: %w", err)
	}
	return nil
}

func (o *OLED) String() string {
	return o.dev.String()
}

// Close blanks the panel and releases the bus.
func (o *OLED) Close() error {
	var errs []error
	if err := o.dev.Halt(); err != nil {
		errs = append(errs, fmt.Errorf("halt panel: %w", err))
	}
	if o.bus != nil {
		if err := o.bus.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close bus: %w", err))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("close errors: %v", errs)
	}
	return nil
}

// addrBus sends every transaction to addr, whatever address the driver
// was built for.
type addrBus struct {
	i2c.Bus
	addr uint16
}

func (b addrBus) Tx(_ uint16, w, r []byte) error {
	return b.Bus.Tx(b.addr, w, r)
}
