// Command thermometer shows a button-driven temperature on an SSD1306 OLED.
package main

import (
	"errors"
	"fmt"
	"image"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sweeney/oled-thermometer/internal/config"
	"github.com/sweeney/oled-thermometer/internal/display"
	"github.com/sweeney/oled-thermometer/internal/gpio"
	"github.com/sweeney/oled-thermometer/internal/logic"
	"github.com/sweeney/oled-thermometer/internal/ui"
)

func main() {
	Execute()
}

func run(cfg config.Config, printState, summary bool) error {
	reader, err := openReader(cfg)
	if err != nil {
		return fmt.Errorf("init gpio: %w", err)
	}
	defer func() {
		if err := reader.Close(); err != nil {
			ui.Error("close gpio: %v", err)
		}
	}()

	// Print state mode
	if printState {
		up, down, err := reader.Read()
		if err != nil {
			return fmt.Errorf("read gpio: %w", err)
		}
		ui.Printfln("UP: %s, DOWN: %s", levelString(up), levelString(down))
		return nil
	}

	renderer, err := display.NewRenderer(cfg.Width, cfg.Height, cfg.FontSize, image.Pt(cfg.AnchorX, cfg.AnchorY))
	if err != nil {
		return fmt.Errorf("init renderer: %w", err)
	}
	disp, err := openDisplay(cfg, renderer)
	if err != nil {
		return fmt.Errorf("init display: %w", err)
	}
	defer func() {
		if err := disp.Close(); err != nil {
			ui.Error("close display: %v", err)
		}
	}()

	panel := logic.NewPanel(logic.NewThermometer(cfg.Range(), cfg.StartReading()), cfg.Debounce, time.Now())

	ui.Info("started: poll=%v debounce=%v range=[%s, %s] step=%s display=%s heartbeat=%v",
		cfg.Poll, cfg.Debounce, cfg.Range().Min, cfg.Range().Max, cfg.Range().Step, cfg.Display, cfg.Heartbeat)

	ticker := time.NewTicker(cfg.Poll)
	defer ticker.Stop()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	var h *history
	if summary {
		h = &history{}
	}
	if err := runLoop(reader, disp, panel, h, cfg.Heartbeat, time.Now, ticker.C, sigCh); err != nil {
		return err
	}
	if summary {
		return printSummary(panel, h)
	}
	return nil
}

func openReader(cfg config.Config) (gpio.Reader, error) {
	if cfg.Simulate != "" {
		hold := gpio.HoldFor(cfg.Debounce, cfg.Poll)
		ui.Debug("simulating buttons %q, %d samples per level", cfg.Simulate, hold)
		r, err := gpio.NewScriptReader(cfg.Simulate, hold)
		if err != nil {
			return nil, err
		}
		return r, nil
	}
	r, err := gpio.NewRealReader(cfg.Chip, cfg.Pins())
	if err != nil {
		return nil, err
	}
	return r, nil
}

func openDisplay(cfg config.Config, renderer *display.Renderer) (display.Display, error) {
	switch cfg.Display {
	case config.DisplayConsole:
		if !cfg.Frame {
			renderer = nil
		}
		return display.NewStdoutConsole(renderer), nil
	case config.DisplayOLED:
		o, err := display.NewOLED(display.OLEDOpts{
			Bus:          cfg.I2CBus,
			Addr:         cfg.I2CAddr,
			Width:        cfg.Width,
			Height:       cfg.Height,
			StartupDelay: cfg.StartupDelay,
		}, renderer)
		if err != nil {
			return nil, err
		}
		ui.Debug("display: %s", o)
		return o, nil
	}
	return nil, fmt.Errorf("unknown display %q", cfg.Display)
}

func runLoop(reader gpio.Reader, disp display.Display, panel *logic.Panel, h *history, heartbeat time.Duration, now func() time.Time, tick <-chan time.Time, sig <-chan os.Signal) error {
	for {
		select {
		case s := <-sig:
			ui.Info("received %v, shutting down", s)
			logSummary(panel)
			return nil

		case <-tick:
			t := now()
			up, down, err := reader.Read()
			if errors.Is(err, io.EOF) {
				ui.Info("button input ended")
				logSummary(panel)
				return nil
			}
			if err != nil {
				ui.Warning("gpio read error: %v", err)
				continue
			}

			u := panel.Process(logic.Sample{Up: up, Down: down, Time: t})
			if u.Changed {
				if err := disp.Show(u.Label); err != nil {
					ui.Warning("display error: %v", err)
					// Retry on the next tick
					panel.Invalidate()
				} else {
					ui.Info("temperature: %s", u.Reading)
					h.record(u.Reading)
				}
			}

			if hb := panel.CheckHeartbeat(t, heartbeat); hb != nil {
				ui.Info("heartbeat: uptime=%v temp=%s up=%d down=%d clamped=%d redraws=%d",
					hb.Uptime, hb.Reading, hb.Counts.Up, hb.Counts.Down, hb.Counts.Clamped, hb.Counts.Redraws)
			}
		}
	}
}

func logSummary(panel *logic.Panel) {
	c := panel.CountsSnapshot()
	ui.Info("final: temp=%s up=%d down=%d clamped=%d redraws=%d",
		panel.Reading(), c.Up, c.Down, c.Clamped, c.Redraws)
}

// levelString names a raw button level; pull-ups make released read HIGH.
func levelString(high bool) string {
	if high {
		return "HIGH"
	}
	return "LOW"
}
