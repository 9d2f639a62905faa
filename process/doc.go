// Package process starts and waits for child processes, naming the command
// in every failure.
//
// A Command describes the program, its arguments, working directory,
// environment and standard streams. Every error it returns, and every error
// returned by the Child and ExitStatus it produces, carries the command
// descriptor as its context layer:
//
//	command: "/does/not/exist" "ARG": no such file or directory
//
// # Basic Usage
//
// Run a command and collect its output:
//
//	out, err := process.New("git", []string{"status"}).Output()
//	if err != nil {
//		log.Fatal(err)
//	}
//	if err := out.Status.ExitOK(); err != nil {
//		log.Fatal(err) // status: 128: error exit status
//	}
//	fmt.Println(string(out.Stdout))
//
// A non-zero exit is never an error from Output, Status or Wait; ExitOK
// turns it into one with CodeAbnormalExit.
//
// # Configuration
//
// Commands are configured with functional options:
//
//	cmd := process.New("make", []string{"test"},
//		process.WithDir("/src"),
//		process.WithEnv(map[string]string{"GOFLAGS": "-count=1"}),
//		process.WithDisableColors(),
//	)
//
// # Child Processes
//
// Spawn starts the command without waiting. Streams requested with the piped
// options are exposed on the Child:
//
//	child, err := process.New("sort", nil,
//		process.WithPipedStdin(),
//		process.WithPipedStdout(),
//	).Spawn()
//	if err != nil {
//		return err
//	}
//	_, _ = io.WriteString(child.Stdin, "b\na\n")
//	out, err := child.WaitWithOutput()
//
// TryWait polls a child without blocking. It is available on Linux; other
// platforms return an error wrapping errors.ErrUnsupported.
//
// # Exiting
//
// ExitStatus.Exit ends the current process with the status of the child,
// writing the ExitOK error to standard error first. It is never called
// implicitly.
package process
