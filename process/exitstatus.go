package process

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/jmgilman/go/annotate/errors"
)

// ExitStatus is the status of an exited process together with the
// descriptor of the command that produced it.
type ExitStatus struct {
	state *os.ProcessState
	desc  string
}

func newExitStatus(state *os.ProcessState, desc string) *ExitStatus {
	return &ExitStatus{
		state: state,
		desc:  desc,
	}
}

// ProcessState returns the underlying platform status.
func (s *ExitStatus) ProcessState() *os.ProcessState {
	return s.state
}

// Describe returns the descriptor of the command that exited.
func (s *ExitStatus) Describe() string {
	return s.desc
}

// Success reports whether the process exited with code 0.
func (s *ExitStatus) Success() bool {
	return s.state.Success()
}

// Code returns the exit code. ok is false when the process did not exit
// normally, for example because it was killed by a signal.
func (s *ExitStatus) Code() (code int, ok bool) {
	code = s.state.ExitCode()
	return code, code >= 0
}

// String returns the platform rendering of the status, such as
// "exit status 1".
func (s *ExitStatus) String() string {
	return s.state.String()
}

// ExitOK returns nil if the process succeeded, and a CodeAbnormalExit error
// rendering as "status: <code>: error exit status" otherwise. The code reads
// "n/a" when the process did not exit normally.
func (s *ExitStatus) ExitOK() error {
	if s.Success() {
		return nil
	}

	code := "n/a"
	if c, ok := s.Code(); ok {
		code = strconv.Itoa(c)
	}

	return errors.ContextWithFields(
		errors.New(errors.CodeAbnormalExit, "error exit status"),
		"status: "+code,
		map[string]interface{}{
			"command": s.desc,
			"status":  s.state.String(),
		},
	)
}

// Exit terminates the current process, mirroring the status: it exits with
// 0 on success, and otherwise writes the ExitOK error to standard error and
// exits with the child's code, or -1 when there is none.
func (s *ExitStatus) Exit() {
	s.exit(os.Stderr, os.Exit)
}

func (s *ExitStatus) exit(w io.Writer, osExit func(int)) {
	err := s.ExitOK()
	if err == nil {
		osExit(0)
		return
	}

	_, _ = fmt.Fprintln(w, err)
	code, ok := s.Code()
	if !ok {
		code = -1
	}
	osExit(code)
}
