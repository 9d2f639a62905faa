package process

import (
	"context"
	"io"
)

// Option configures a Command.
type Option func(*Command)

// WithContext sets the context of the command. The process is killed if the
// context is done before it exits.
func WithContext(ctx context.Context) Option {
	return func(c *Command) {
		c.ctx = ctx
	}
}

// WithDir sets the working directory of the command.
func WithDir(dir string) Option {
	return func(c *Command) {
		c.config.dir = dir
	}
}

// WithEnv sets environment variables for the command on top of the
// inherited environment. Repeated use merges the maps.
func WithEnv(env map[string]string) Option {
	return func(c *Command) {
		for k, v := range env {
			c.config.env[k] = v
		}
	}
}

// WithCleanEnv starts the command with only the variables set through
// WithEnv and WithDisableColors.
func WithCleanEnv() Option {
	return func(c *Command) {
		c.config.cleanEnv = true
	}
}

// WithDisableColors disables color output by setting NO_COLOR=1, TERM=dumb
// and the other common color-disabling variables.
func WithDisableColors() Option {
	return func(c *Command) {
		c.config.disableColors = true
	}
}

// WithStdin connects r to the standard input of the command.
func WithStdin(r io.Reader) Option {
	return func(c *Command) {
		c.stdin = r
	}
}

// WithStdout connects w to the standard output of the command. Output still
// captures stdout and also writes it to w.
func WithStdout(w io.Writer) Option {
	return func(c *Command) {
		c.stdout = w
	}
}

// WithStderr connects w to the standard error of the command. Output still
// captures stderr and also writes it to w.
func WithStderr(w io.Writer) Option {
	return func(c *Command) {
		c.stderr = w
	}
}

// WithPipedStdin makes Spawn expose the standard input of the child as
// Child.Stdin. It overrides WithStdin.
func WithPipedStdin() Option {
	return func(c *Command) {
		c.config.pipeStdin = true
	}
}

// WithPipedStdout makes Spawn expose the standard output of the child as
// Child.Stdout. It overrides WithStdout.
func WithPipedStdout() Option {
	return func(c *Command) {
		c.config.pipeStdout = true
	}
}

// WithPipedStderr makes Spawn expose the standard error of the child as
// Child.Stderr. It overrides WithStderr.
func WithPipedStderr() Option {
	return func(c *Command) {
		c.config.pipeStderr = true
	}
}
