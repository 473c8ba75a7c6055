package app

import (
	"fmt"
	"io"
	"runtime"
)

// Build metadata, overridden at link time:
//
//	go build -ldflags "-X github.com/agbru/polycalc/internal/app.Version=v1.2.3"
var (
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"
)

// PrintVersion writes version and build information.
func PrintVersion(out io.Writer) {
	fmt.Fprintf(out, "polycalc %s\n", Version)
	fmt.Fprintf(out, "  commit:     %s\n", Commit)
	fmt.Fprintf(out, "  built:      %s\n", BuildDate)
	fmt.Fprintf(out, "  go version: %s\n", runtime.Version())
	fmt.Fprintf(out, "  platform:   %s/%s\n", runtime.GOOS, runtime.GOARCH)
}

// HasVersionFlag reports whether the argument list requests version output.
// Checked before full flag parsing so -version works even alongside invalid
// flags.
func HasVersionFlag(args []string) bool {
	for _, arg := range args {
		if arg == "-version" || arg == "--version" {
			return true
		}
	}
	return false
}
