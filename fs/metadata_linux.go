//go:build linux

package fs

import (
	"os"
	"syscall"
	"time"

	"golang.org/x/sys/unix"
)

func accessTime(m *Metadata) (time.Time, error) {
	st, ok := m.info.Sys().(*syscall.Stat_t)
	if !ok {
		return time.Time{}, unsupported("access time")
	}
	return time.Unix(st.Atim.Unix()), nil
}

func birthTime(m *Metadata) (time.Time, error) {
	flags := unix.AT_STATX_SYNC_AS_STAT
	if !m.follow {
		flags |= unix.AT_SYMLINK_NOFOLLOW
	}

	var stx unix.Statx_t
	if err := unix.Statx(unix.AT_FDCWD, m.path, flags, unix.STATX_BTIME, &stx); err != nil {
		if err == unix.ENOSYS {
			return time.Time{}, unsupported("creation time")
		}
		return time.Time{}, os.NewSyscallError("statx", err)
	}
	if stx.Mask&unix.STATX_BTIME == 0 {
		return time.Time{}, unsupported("creation time")
	}
	return time.Unix(stx.Btime.Sec, int64(stx.Btime.Nsec)), nil
}
