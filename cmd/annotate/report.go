package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/jmgilman/go/annotate/errors"
)

// report writes err to w in the format selected by the global flags and
// logs it.
func report(w io.Writer, conf *config, err error) {
	switch {
	case conf.JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		_ = enc.Encode(errors.ToJSON(err))
	case conf.Verbose:
		_, _ = fmt.Fprintf(w, "Error: %+v\n", err)
	default:
		_, _ = fmt.Fprintf(w, "Error: %v\n", err)
	}

	if logger, lerr := newLogger(w, conf.LogLevel); lerr == nil {
		logger.Debug("command failed", errorFields(err)...)
		_ = logger.Sync()
	}
}
