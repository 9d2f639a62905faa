package process

import (
	"os"
	"sort"
	"strings"
)

// colorEnv holds the variables set by WithDisableColors.
var colorEnv = map[string]string{
	"NO_COLOR":       "1",
	"TERM":           "dumb",
	"CLICOLOR":       "0",
	"CLICOLOR_FORCE": "0",
	"FORCE_COLOR":    "0",
}

// config holds the settings applied to every process started from a Command.
type config struct {
	env           map[string]string
	dir           string
	cleanEnv      bool
	disableColors bool

	pipeStdin  bool
	pipeStdout bool
	pipeStderr bool
}

func newConfig() *config {
	return &config{
		env: make(map[string]string),
	}
}

// effectiveEnv returns the variables set on top of the base environment.
// Variables from WithEnv win over the color-disabling defaults.
func (c *config) effectiveEnv() map[string]string {
	env := make(map[string]string, len(c.env)+len(colorEnv))

	if c.disableColors {
		for k, v := range colorEnv {
			env[k] = v
		}
	}

	for k, v := range c.env {
		env[k] = v
	}

	return env
}

// environ returns the environment for the child in os/exec form. A nil
// result means the child inherits the parent environment unchanged.
func (c *config) environ() []string {
	env := c.effectiveEnv()
	if len(env) == 0 && !c.cleanEnv {
		return nil
	}

	var out []string
	if !c.cleanEnv {
		out = os.Environ()
	}

	keys := make([]string, 0, len(env))
	for k := range env {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		out = append(out, k+"="+env[k])
	}
	if out == nil {
		// An empty, non-nil Env starts the child with no variables at all.
		out = []string{}
	}
	return out
}

// splitEnv parses os/exec style KEY=value entries. Later entries win.
func splitEnv(environ []string) map[string]string {
	env := make(map[string]string, len(environ))
	for _, kv := range environ {
		k, v, _ := strings.Cut(kv, "=")
		env[k] = v
	}
	return env
}
