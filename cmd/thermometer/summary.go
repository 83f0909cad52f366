package main

import (
	"bytes"
	"strconv"

	"github.com/guptarohit/asciigraph"
	"github.com/mgutz/ansi"
	"github.com/tomlazar/table"

	"github.com/sweeney/oled-thermometer/internal/logic"
	"github.com/sweeney/oled-thermometer/internal/ui"
)

// maxHistory bounds the shown values kept for the exit plot.
const maxHistory = 100

// history records every value the display accepted.
type history struct {
	values []float64
}

func (h *history) record(r logic.Reading) {
	if h == nil {
		return
	}
	h.values = append(h.values, r.Celsius())
	if len(h.values) > maxHistory {
		h.values = h.values[len(h.values)-maxHistory:]
	}
}

// summaryTable renders the counters of panel.
func summaryTable(panel *logic.Panel, color bool) (string, error) {
	c := panel.CountsSnapshot()
	tab := table.Table{
		Headers: []string{"", ""},
		Rows: [][]string{
			{"Temperature", panel.Reading().String()},
			{"Up presses", strconv.Itoa(c.Up)},
			{"Down presses", strconv.Itoa(c.Down)},
			{"Clamped", strconv.Itoa(c.Clamped)},
			{"Redraws", strconv.Itoa(c.Redraws)},
		},
	}
	var buf bytes.Buffer
	err := tab.WriteTable(&buf, &table.Config{
		ShowIndex:       false,
		Color:           color,
		AlternateColors: true,
		TitleColorCode:  ansi.ColorCode("white+buf"),
		AltColorCodes: []string{
			ansi.ColorCode("white"),
			ansi.ColorCode("white:236"),
		},
	})
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}

// summaryPlot draws the shown values, or "" with fewer than two.
func summaryPlot(h *history) string {
	if h == nil || len(h.values) < 2 {
		return ""
	}
	return asciigraph.Plot(h.values,
		asciigraph.Height(10),
		asciigraph.Width(maxHistory),
		asciigraph.Precision(1),
		asciigraph.Caption("Temp C"))
}

func printSummary(panel *logic.Panel, h *history) error {
	tab, err := summaryTable(panel, !noColor)
	if err != nil {
		return err
	}
	ui.Printfln("%s", tab)
	if plot := summaryPlot(h); plot != "" {
		ui.Printfln("%s", plot)
	}
	return nil
}
