package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

const (
	ansiReset  = "\x1b[0m"
	ansiRed    = "\x1b[31m"
	ansiGreen  = "\x1b[32m"
	ansiYellow = "\x1b[33m"
)

func colorizeOutput(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(file.Fd()) || isatty.IsCygwinTerminal(file.Fd())
}

func paint(color, message string, colorize bool) string {
	if !colorize || color == "" {
		return message
	}
	return color + message + ansiReset
}

func printStatus(w io.Writer, color, format string, args ...any) {
	fmt.Fprintln(w, paint(color, fmt.Sprintf(format, args...), colorizeOutput(w)))
}
