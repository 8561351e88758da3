// Package ui decides how config-mapper's output is rendered: styled for a
// color terminal or plain for pipes, files and NO_COLOR.
package ui

import (
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Format represents the output format type
type Format int

const (
	// FormatAuto picks Terminal or Text from the output's capabilities
	FormatAuto Format = iota
	// FormatTerminal renders colored, styled output
	FormatTerminal
	// FormatText renders plain text without escape sequences
	FormatText
)

// String returns the color setting spelling of the format
func (f Format) String() string {
	switch f {
	case FormatAuto:
		return "auto"
	case FormatTerminal:
		return "always"
	case FormatText:
		return "never"
	default:
		return "unknown"
	}
}

// ParseFormat parses a color setting (auto, always, never) into a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "auto", "":
		return FormatAuto, nil
	case "always", "term", "terminal":
		return FormatTerminal, nil
	case "never", "text", "plain":
		return FormatText, nil
	default:
		return FormatAuto, fmt.Errorf("unknown color mode: %s", s)
	}
}

// Resolve turns FormatAuto into a concrete format for output. Other formats
// are returned as is.
func Resolve(format Format, output *os.File) Format {
	if format != FormatAuto {
		return format
	}
	return DetectFormat(output)
}

// DetectFormat determines the output format from the environment and the
// terminal's capabilities.
func DetectFormat(output *os.File) Format {
	if os.Getenv("NO_COLOR") != "" {
		return FormatText
	}

	if output == nil || (!isatty.IsTerminal(output.Fd()) && !isatty.IsCygwinTerminal(output.Fd())) {
		return FormatText
	}

	if termenv.ColorProfile() == termenv.Ascii {
		return FormatText
	}

	return FormatTerminal
}
