//go:build tinygo && rp2040

// Command thermometer-pico is the thermometer firmware for a Raspberry Pi
// Pico with a 128x32 SSD1306 on I2C0.
//
// Build/flash (TinyGo):
//
//	tinygo flash -target pico ./cmd/thermometer-pico
//
// Wiring:
//   - I2C0 @ 400 kHz: SDA=GP0, SCL=GP1, SSD1306 at 0x3C.
//   - Up button GP8, down button GP7, both to ground with internal pull-ups.
//   - GP9 driven low, used as ground for one of the buttons.
package main

import (
	"image/color"
	"machine"
	"time"

	"tinygo.org/x/drivers/ssd1306"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/freemono"

	"github.com/sweeney/oled-thermometer/internal/logic"
)

const (
	pinUp     = machine.GP8
	pinDown   = machine.GP7
	pinGround = machine.GP9

	poll      = 5 * time.Millisecond
	heartbeat = 15 * time.Minute

	labelX = 0
	labelY = 22 // baseline
)

var white = color.RGBA{R: 255, G: 255, B: 255, A: 255}

func main() {
	pinUp.Configure(machine.PinConfig{Mode: machine.PinInputPullup})
	pinDown.Configure(machine.PinConfig{Mode: machine.PinInputPullup})
	pinGround.Configure(machine.PinConfig{Mode: machine.PinOutput})
	pinGround.Low()

	bus := machine.I2C0
	if err := bus.Configure(machine.I2CConfig{
		Frequency: 400 * machine.KHz,
		SDA:       machine.GP0,
		SCL:       machine.GP1,
	}); err != nil {
		println("i2c configure:", err.Error())
	}

	// Let the bus and panel settle after power up.
	time.Sleep(time.Second)

	dev := ssd1306.NewI2C(bus)
	dev.Configure(ssd1306.Config{
		Width:    128,
		Height:   32,
		Address:  0x3C,
		VccState: ssd1306.SWITCHCAPVCC,
	})

	panel := logic.NewPanel(logic.NewThermometer(logic.DefaultRange, logic.DefaultStart), logic.DefaultDebounce, time.Now())

	for {
		now := time.Now()
		u := panel.Process(logic.Sample{Up: pinUp.Get(), Down: pinDown.Get(), Time: now})
		if u.Changed {
			dev.ClearBuffer()
			tinyfont.WriteLine(&dev, &freemono.Regular9pt7b, labelX, labelY, u.Label, white)
			if err := dev.Display(); err != nil {
				println("display:", err.Error())
				panel.Invalidate()
			} else {
				println(u.Reading.String())
			}
		}

		if hb := panel.CheckHeartbeat(now, heartbeat); hb != nil {
			println("heartbeat: temp", hb.Reading.String(), "up", hb.Counts.Up, "down", hb.Counts.Down)
		}

		time.Sleep(poll)
	}
}
