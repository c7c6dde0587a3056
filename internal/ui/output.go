// Package ui provides consistent styled output for the regsw CLI.
package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

// Writer provides styled output methods that respect color settings.
type Writer struct {
	out    io.Writer
	errOut io.Writer

	red   *color.Color
	green *color.Color
	blue  *color.Color
	white *color.Color
	bold  *color.Color
	amber *color.Color
}

// NewWriter creates a Writer that writes to stdout/stderr.
// Color is disabled when noColor is true or the NO_COLOR env var is set.
func NewWriter(noColor bool) *Writer {
	return NewWriterWithOutputs(os.Stdout, os.Stderr, noColor || os.Getenv("NO_COLOR") != "")
}

// NewWriterWithOutputs creates a Writer with custom output destinations.
// Intended for testing.
func NewWriterWithOutputs(out, errOut io.Writer, noColor bool) *Writer {
	w := &Writer{
		out:    out,
		errOut: errOut,
		red:    color.New(color.FgRed),
		green:  color.New(color.FgGreen),
		blue:   color.New(color.FgBlue),
		white:  color.New(color.FgWhite),
		bold:   color.New(color.Bold),
		amber:  color.New(color.FgYellow),
	}

	for _, c := range []*color.Color{w.red, w.green, w.blue, w.white, w.bold, w.amber} {
		if noColor {
			c.DisableColor()
		} else {
			c.EnableColor()
		}
	}

	return w
}

// Success prints a message in green.
func (w *Writer) Success(msg string) {
	writeLine(w.out, w.green.Sprint(msg))
}

// Error prints a message in red to stderr.
func (w *Writer) Error(msg string) {
	writeLine(w.errOut, w.red.Sprint(msg))
}

// Warning prints a message in yellow to stderr.
func (w *Writer) Warning(msg string) {
	writeLine(w.errOut, w.amber.Sprint(msg))
}

// Info prints a message in blue.
func (w *Writer) Info(msg string) {
	writeLine(w.out, w.blue.Sprint(msg))
}

// Activity prints a progress message such as "switching...".
func (w *Writer) Activity(msg string) {
	writeLine(w.out, w.white.Sprint(msg))
}

// Line prints an already styled line as-is.
func (w *Writer) Line(msg string) {
	writeLine(w.out, msg)
}

// Successf prints a formatted success message.
func (w *Writer) Successf(format string, args ...any) {
	w.Success(fmt.Sprintf(format, args...))
}

// Errorf prints a formatted error message.
func (w *Writer) Errorf(format string, args ...any) {
	w.Error(fmt.Sprintf(format, args...))
}

// Warningf prints a formatted warning message.
func (w *Writer) Warningf(format string, args ...any) {
	w.Warning(fmt.Sprintf(format, args...))
}

// Infof prints a formatted informational message.
func (w *Writer) Infof(format string, args ...any) {
	w.Info(fmt.Sprintf(format, args...))
}

// Activityf prints a formatted progress message.
func (w *Writer) Activityf(format string, args ...any) {
	w.Activity(fmt.Sprintf(format, args...))
}

// Red returns text styled red.
func (w *Writer) Red(text string) string { return w.red.Sprint(text) }

// Green returns text styled green.
func (w *Writer) Green(text string) string { return w.green.Sprint(text) }

// Blue returns text styled blue.
func (w *Writer) Blue(text string) string { return w.blue.Sprint(text) }

// White returns text styled white.
func (w *Writer) White(text string) string { return w.white.Sprint(text) }

// Bold returns text in bold.
func (w *Writer) Bold(text string) string { return w.bold.Sprint(text) }

func writeLine(out io.Writer, msg string) {
	if _, err := fmt.Fprintln(out, msg); err != nil {
		// Best-effort output; if stderr fails there's nothing useful to do.
		return
	}
}
