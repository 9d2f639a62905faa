package process

import (
	"bytes"
	"context"
	"io"
	"os"
	osexec "os/exec"

	"github.com/jmgilman/go/annotate/errors"
)

// Command describes a process to run. Every failure to start or wait for the
// process names the command.
//
// A Command can be run any number of times; each call to Spawn, Output or
// Status starts a new process.
type Command struct {
	path   string
	args   []string
	config *config
	ctx    context.Context
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

// New creates a Command that runs name with args. As with os/exec, a name
// without a path separator is resolved through PATH.
func New(name string, args []string, opts ...Option) *Command {
	cmd := &Command{
		path:   name,
		args:   append([]string{name}, args...),
		config: newConfig(),
		ctx:    context.Background(),
	}

	for _, opt := range opts {
		opt(cmd)
	}

	return cmd
}

// Wrap creates a Command from the program, arguments, directory, environment
// and standard streams of an unstarted cmd. Options are applied on top.
func Wrap(cmd *osexec.Cmd, opts ...Option) *Command {
	c := &Command{
		path:   cmd.Path,
		args:   append([]string(nil), cmd.Args...),
		config: newConfig(),
		ctx:    context.Background(),
		stdin:  cmd.Stdin,
		stdout: cmd.Stdout,
		stderr: cmd.Stderr,
	}
	if len(c.args) == 0 {
		c.args = []string{cmd.Path}
	}

	c.config.dir = cmd.Dir
	if cmd.Env != nil {
		c.config.cleanEnv = true
		for k, v := range splitEnv(cmd.Env) {
			c.config.env[k] = v
		}
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Describe returns the descriptor used as error context, such as
//
//	command: "ls" "-l"
func (c *Command) Describe() string {
	return describe(c.args, c.config.dir)
}

// Spawn starts the command and returns a handle to the running process.
//
// Standard streams are inherited from the current process unless set by
// options. Streams requested with the piped options are exposed on the Child.
func (c *Command) Spawn() (*Child, error) {
	cmd := c.build()
	child := &Child{
		cmd:  cmd,
		desc: c.Describe(),
	}

	cmd.Stdin = readerOr(c.stdin, os.Stdin)
	cmd.Stdout = writerOr(c.stdout, os.Stdout)
	cmd.Stderr = writerOr(c.stderr, os.Stderr)

	if c.config.pipeStdin {
		cmd.Stdin = nil
		w, err := cmd.StdinPipe()
		if err != nil {
			return nil, child.annotate(err)
		}
		child.Stdin = w
	}
	if c.config.pipeStdout {
		cmd.Stdout = nil
		r, err := cmd.StdoutPipe()
		if err != nil {
			return nil, child.annotate(err)
		}
		child.Stdout = r
	}
	if c.config.pipeStderr {
		cmd.Stderr = nil
		r, err := cmd.StderrPipe()
		if err != nil {
			return nil, child.annotate(err)
		}
		child.Stderr = r
	}

	if err := cmd.Start(); err != nil {
		return nil, child.annotate(err)
	}

	return child, nil
}

// Output runs the command to completion and collects its standard output
// and standard error. Standard input is empty unless set by WithStdin.
//
// A non-zero exit is not an error; inspect Output.Status or call
// ExitStatus.ExitOK.
func (c *Command) Output() (*Output, error) {
	cmd := c.build()
	desc := c.Describe()

	var stdout, stderr bytes.Buffer
	cmd.Stdin = c.stdin
	cmd.Stdout = tee(&stdout, c.stdout)
	cmd.Stderr = tee(&stderr, c.stderr)

	if err := run(cmd); err != nil {
		return nil, annotate(desc, err)
	}

	return &Output{
		Status: newExitStatus(cmd.ProcessState, desc),
		Stdout: stdout.Bytes(),
		Stderr: stderr.Bytes(),
	}, nil
}

// Status runs the command to completion and returns its exit status.
// Standard streams are inherited from the current process unless set by
// options.
//
// A non-zero exit is not an error; call ExitStatus.ExitOK.
func (c *Command) Status() (*ExitStatus, error) {
	cmd := c.build()
	desc := c.Describe()

	cmd.Stdin = readerOr(c.stdin, os.Stdin)
	cmd.Stdout = writerOr(c.stdout, os.Stdout)
	cmd.Stderr = writerOr(c.stderr, os.Stderr)

	if err := run(cmd); err != nil {
		return nil, annotate(desc, err)
	}

	return newExitStatus(cmd.ProcessState, desc), nil
}

// build creates a fresh, unstarted *exec.Cmd without standard streams.
func (c *Command) build() *osexec.Cmd {
	cmd := osexec.CommandContext(c.ctx, c.path)
	cmd.Args = append([]string(nil), c.args...)
	cmd.Dir = c.config.dir
	cmd.Env = c.config.environ()
	return cmd
}

// run runs cmd and reports only failures to start or wait for it. An
// unsuccessful exit leaves the status in cmd.ProcessState.
func run(cmd *osexec.Cmd) error {
	return ignoreExit(cmd.Run())
}

// ignoreExit drops the error os/exec reports for an unsuccessful exit.
func ignoreExit(err error) error {
	var exitErr *osexec.ExitError
	if errors.As(err, &exitErr) {
		return nil
	}
	return err
}

func tee(buf *bytes.Buffer, w io.Writer) io.Writer {
	if w == nil {
		return buf
	}
	return io.MultiWriter(buf, w)
}

func readerOr(r, def io.Reader) io.Reader {
	if r == nil {
		return def
	}
	return r
}

func writerOr(w, def io.Writer) io.Writer {
	if w == nil {
		return def
	}
	return w
}
