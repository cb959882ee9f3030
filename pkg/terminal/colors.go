// Package terminal provides terminal output utilities: ANSI colors, icons,
// and the progress bar shown while samples are being collected.
package terminal

import (
	"fmt"
	"os"
)

// Color codes for terminal output
const (
	Reset  = "\033[0m"
	Dim    = "\033[2m"
	Red    = "\033[31m"
	Green  = "\033[32m"
	Yellow = "\033[33m"
	Blue   = "\033[34m"
	Cyan   = "\033[36m"
	Bold   = "\033[1m"
)

// IsTerminal checks if output is to a terminal
func IsTerminal() bool {
	fileInfo, _ := os.Stdout.Stat()
	return (fileInfo.Mode() & os.ModeCharDevice) != 0
}

// Colorize returns text with color codes if terminal supports it
func Colorize(color, text string) string {
	if !IsTerminal() || os.Getenv("NO_COLOR") != "" {
		return text
	}
	return fmt.Sprintf("%s%s%s", color, text, Reset)
}

// Success returns green text
func Success(text string) string {
	return Colorize(Green, text)
}

// Error returns red text
func Error(text string) string {
	return Colorize(Red, text)
}

// Warning returns yellow text
func Warning(text string) string {
	return Colorize(Yellow, text)
}

// Info returns cyan text
func Info(text string) string {
	return Colorize(Cyan, text)
}
