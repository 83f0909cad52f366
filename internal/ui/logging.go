// Package ui writes log output to the console through pterm.
package ui

import (
	"io"

	"github.com/pterm/pterm"
)

// SetDebugEnabled toggles Debug output.
func SetDebugEnabled(enabled bool) {
	pterm.PrintDebugMessages = enabled
}

// SetOutput redirects all printers, mostly for tests.
func SetOutput(w io.Writer) {
	pterm.SetDefaultOutput(w)
}

// DisableColor strips color codes from all output.
func DisableColor() {
	pterm.DisableColor()
}

// DisableStyling prints plain text without prefixes styling.
func DisableStyling() {
	pterm.DisableStyling()
}

func Printfln(format string, a ...interface{}) {
	pterm.Printfln(format, a...)
}

func Debug(format string, a ...interface{}) {
	pterm.Debug.Printfln(format, a...)
}

func Info(format string, a ...interface{}) {
	pterm.Info.Printfln(format, a...)
}

func Warning(format string, a ...interface{}) {
	pterm.Warning.Printfln(format, a...)
}

func Error(format string, a ...interface{}) {
	pterm.Error.Printfln(format, a...)
}

// Fatal prints the message and exits with status 1.
func Fatal(format string, a ...interface{}) {
	pterm.Fatal.Printfln(format, a...)
}
