package ui

import (
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"

	"github.com/arthur-debert/meshdeps/pkg/errors"
)

// Format selects how command results are written
type Format int

const (
	// FormatAuto picks term on a color terminal, text otherwise
	FormatAuto Format = iota
	// FormatTerminal is styled, colored output
	FormatTerminal
	// FormatText is plain output; lists are printed bare for build scripts
	FormatText
	// FormatJSON is one JSON document per result
	FormatJSON
	// FormatYAML is one YAML document per result
	FormatYAML
)

var formatNames = []string{"auto", "term", "text", "json", "yaml"}

// aliases accepted by ParseFormat besides the canonical names
var formatAliases = map[string]Format{
	"":         FormatAuto,
	"terminal": FormatTerminal,
	"plain":    FormatText,
	"yml":      FormatYAML,
}

func (f Format) String() string {
	if f < 0 || int(f) >= len(formatNames) {
		return "unknown"
	}
	return formatNames[f]
}

// ParseFormat parses a --format value, case-insensitively
func ParseFormat(s string) (Format, error) {
	name := strings.ToLower(s)
	for i, n := range formatNames {
		if n == name {
			return Format(i), nil
		}
	}
	if f, ok := formatAliases[name]; ok {
		return f, nil
	}

	return FormatAuto, errors.Newf(errors.ErrInvalidInput, "unknown format: %s", s).
		WithDetail("supported", append([]string(nil), formatNames...))
}

// DetectFormat resolves FormatAuto for output. NO_COLOR, a pipe or a
// terminal without colors all give text.
func DetectFormat(output *os.File) Format {
	if os.Getenv("NO_COLOR") != "" {
		return FormatText
	}

	fd := output.Fd()
	if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
		return FormatText
	}

	if termenv.ColorProfile() == termenv.Ascii {
		return FormatText
	}
	return FormatTerminal
}
