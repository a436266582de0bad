package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/labstack/gommon/color"
)

// stdPrinter writes program output to stdout. Anything sent to stderr is a
// diagnostic and gets colored.
type stdPrinter struct {
	color *color.Color
}

func newStdPrinter(enableColor bool) stdPrinter {
	c := color.New()
	if !enableColor {
		c.Disable()
	}
	return stdPrinter{color: c}
}

func (s stdPrinter) Println(a ...interface{}) (n int, err error) {
	return fmt.Println(a...)
}

func (s stdPrinter) Fprintf(w io.Writer, format string, a ...interface{}) (n int, err error) {
	if w == os.Stderr {
		return fmt.Fprint(w, s.color.Red(fmt.Sprintf(format, a...)))
	}
	return fmt.Fprintf(w, format, a...)
}

func (s stdPrinter) Fprintln(w io.Writer, a ...interface{}) (n int, err error) {
	if w == os.Stderr {
		msg := strings.TrimSuffix(fmt.Sprintln(a...), "\n")
		return fmt.Fprintln(w, s.color.Red(msg))
	}
	return fmt.Fprintln(w, a...)
}

// notice prints driver messages that are not part of the program output
func (s stdPrinter) notice(format string, a ...interface{}) {
	fmt.Fprintln(os.Stderr, s.color.Yellow(fmt.Sprintf(format, a...)))
}
