//go:build linux

package process

import (
	"os"

	"golang.org/x/sys/unix"
)

// exited reports whether the process pid has exited, without reaping it.
func exited(pid int) (bool, error) {
	var info unix.Siginfo
	for {
		err := unix.Waitid(unix.P_PID, pid, &info, unix.WEXITED|unix.WNOHANG|unix.WNOWAIT, nil)
		if err == unix.EINTR {
			continue
		}
		if err != nil {
			return false, os.NewSyscallError("waitid", err)
		}
		// With WNOHANG, waitid leaves the record zeroed while the child runs.
		return info.Signo != 0, nil
	}
}
