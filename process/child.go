package process

import (
	"io"
	"os"
	osexec "os/exec"

	"github.com/jmgilman/go/annotate/errors"
	"golang.org/x/sync/errgroup"
)

// Child is a running process started by Command.Spawn.
//
// Stdin, Stdout and Stderr are set only when the matching piped option was
// given. As with os/exec, reads from Stdout and Stderr must complete before
// Wait or a successful TryWait, which close them.
//
// A Child is not safe for concurrent use.
type Child struct {
	Stdin  io.WriteCloser
	Stdout io.ReadCloser
	Stderr io.ReadCloser

	cmd    *osexec.Cmd
	desc   string
	status *ExitStatus
}

// Pid returns the process id of the child.
func (c *Child) Pid() int {
	return c.cmd.Process.Pid
}

// Describe returns the command descriptor of the child.
func (c *Child) Describe() string {
	return c.desc
}

// Kill forces the child to exit and reaps it; a later Wait returns the
// resulting status. Killing a child that was already waited for is not an
// error.
func (c *Child) Kill() error {
	if c.status != nil {
		return nil
	}
	if err := c.cmd.Process.Kill(); err != nil && !errors.Is(err, os.ErrProcessDone) {
		return c.annotate(err)
	}
	_, err := c.Wait()
	return err
}

// Wait blocks until the child exits and returns its status. A non-zero exit
// is not an error. Later calls return the same status.
func (c *Child) Wait() (*ExitStatus, error) {
	if c.status != nil {
		return c.status, nil
	}

	err := ignoreExit(c.cmd.Wait())
	if c.cmd.ProcessState != nil {
		c.status = newExitStatus(c.cmd.ProcessState, c.desc)
	}
	if err != nil {
		return nil, c.annotate(err)
	}
	return c.status, nil
}

// TryWait returns the status of the child if it has exited, and nil
// otherwise. It never blocks on a running child.
func (c *Child) TryWait() (*ExitStatus, error) {
	if c.status != nil {
		return c.status, nil
	}

	done, err := exited(c.cmd.Process.Pid)
	if err != nil {
		return nil, c.annotate(err)
	}
	if !done {
		return nil, nil
	}
	return c.Wait()
}

// WaitWithOutput closes Stdin, reads Stdout and Stderr to the end and waits
// for the child to exit. Streams that were not piped yield empty output.
func (c *Child) WaitWithOutput() (*Output, error) {
	if c.Stdin != nil {
		_ = c.Stdin.Close()
		c.Stdin = nil
	}

	var (
		stdout, stderr []byte
		g              errgroup.Group
	)
	if c.Stdout != nil {
		g.Go(func() error {
			var err error
			stdout, err = io.ReadAll(c.Stdout)
			return err
		})
	}
	if c.Stderr != nil {
		g.Go(func() error {
			var err error
			stderr, err = io.ReadAll(c.Stderr)
			return err
		})
	}
	readErr := g.Wait()

	status, err := c.Wait()
	if err != nil {
		return nil, err
	}
	if readErr != nil {
		return nil, c.annotate(readErr)
	}

	return &Output{
		Status: status,
		Stdout: stdout,
		Stderr: stderr,
	}, nil
}

func (c *Child) annotate(err error) error {
	return annotate(c.desc, err)
}
