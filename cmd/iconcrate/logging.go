package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// newLogger builds the diagnostic logger. Diagnostics go to stderr so they
// never mix with results written to stdout.
func newLogger(w io.Writer, format string, verbose, quiet bool) (zerolog.Logger, error) {
	var out io.Writer
	switch strings.ToLower(format) {
	case "", "text", "plain":
		out = &zerolog.ConsoleWriter{
			Out:        w,
			NoColor:    !getBoolWithFallback("color", "color", false),
			TimeFormat: time.Kitchen,
			FormatLevel: func(i interface{}) string {
				if ll, ok := i.(string); ok {
					return strings.ToUpper(ll)
				}
				return "????"
			},
		}
	case "json":
		out = w
	default:
		return zerolog.Nop(), fmt.Errorf("unsupported log format: %s", format)
	}

	level := zerolog.WarnLevel
	switch {
	case quiet:
		level = zerolog.Disabled
	case verbose:
		level = zerolog.DebugLevel
	}

	return zerolog.New(out).Level(level).With().Timestamp().Logger(), nil
}

func buildLogger() (zerolog.Logger, error) {
	return newLogger(
		os.Stderr,
		getStringWithFallback("log-format", "log.format", "text"),
		getBoolWithFallback("verbose", "verbose", false),
		getBoolWithFallback("quiet", "quiet", false),
	)
}
