package logger

import (
	"github.com/fatih/color"
)

// Leveled printf-style helpers, each bound to its own color. They are plain
// package-level function variables, so call sites read exactly like
// fmt.Printf: logger.Info("[INFO] ...\n", args).

// Info prints normal progress messages in green.
var Info = color.New(color.FgGreen).PrintfFunc()

// Warn prints warnings in bright magenta.
var Warn = color.New(color.FgHiMagenta).PrintfFunc()

// Error prints failures in red.
var Error = color.New(color.FgRed).PrintfFunc()

// Debug prints diagnostic detail in cyan once enabled via Init. It starts
// out as a no-op so packages can log before Init runs, for example from
// tests that never go through the CLI layer.
var Debug = func(format string, a ...any) {}

// Init switches debug output on or off for the rest of the run.
func Init(enableDebug bool) {
	if enableDebug {
		Debug = color.New(color.FgCyan).PrintfFunc()
	} else {
		Debug = func(format string, a ...any) {}
	}
}
