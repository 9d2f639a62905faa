package main

import "github.com/jmgilman/go/annotate/process"

// config holds the global flags shared by every subcommand.
type config struct {
	LogLevel string
	Verbose  bool
	JSON     bool

	// status is set by the run subcommand; main exits with it.
	status *process.ExitStatus
}
