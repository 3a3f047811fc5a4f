//go:build !tinygo

package sinks

import (
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
)

type fdWriter interface {
	Fd() uintptr
}

// shouldUseColor determines if color output should be used for w.
func shouldUseColor(w io.Writer) bool {
	if force := os.Getenv("MIKROLOG_FORCE_COLOR"); force != "" {
		switch strings.ToLower(force) {
		case "none", "0", "false", "off":
			return false
		case "1", "true", "on":
			return true
		}
	}

	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}

	f, ok := w.(fdWriter)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
