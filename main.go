package main

import (
	"timesheeter-install/cmd"
)

// main hands straight off to cmd.Execute, keeping all CLI wiring out of
// package main.
//
// timesheeter-install is the installer for the Timesheeter application:
//   - asks for the path of an optional Python virtual environment, or takes
//     it from the --venv flag or the YAML install config for unattended runs
//   - writes an executable timesheeter.sh launcher that activates that
//     environment, when one was given, and starts `python3 timesheeter.py`
//   - prints guidance on how to run the result
//   - records the install in a small JSON state file so that `uninstall`
//     can later remove exactly what was put there
//
// A launcher that cannot be written or marked executable fails the run with
// a non-zero exit status. Cosmetic steps, like the greeting and the state
// bookkeeping, are best-effort and only ever logged.
func main() {
	cmd.Execute()
}
