package fs

import (
	iofs "io/fs"
	"time"

	"github.com/jmgilman/go/annotate/errors"
)

// Metadata pairs the platform file information with the path it describes.
//
// The platform value is reachable through FileInfo; the accessors that can
// fail on some platforms (Accessed, Created) are annotated with the path.
type Metadata struct {
	info   iofs.FileInfo
	path   string
	follow bool
}

func newMetadata(info iofs.FileInfo, p string, follow bool) *Metadata {
	return &Metadata{
		info:   info,
		path:   p,
		follow: follow,
	}
}

// FileInfo returns the underlying platform file information.
func (m *Metadata) FileInfo() iofs.FileInfo {
	return m.info
}

// Path returns the path the metadata was read from.
func (m *Metadata) Path() string {
	return m.path
}

// Name returns the base name of the file.
func (m *Metadata) Name() string {
	return m.info.Name()
}

// Size returns the length in bytes for regular files.
func (m *Metadata) Size() int64 {
	return m.info.Size()
}

// Mode returns the file mode bits.
func (m *Metadata) Mode() iofs.FileMode {
	return m.info.Mode()
}

// IsDir reports whether the metadata describes a directory.
func (m *Metadata) IsDir() bool {
	return m.info.IsDir()
}

// IsSymlink reports whether the metadata describes a symlink. This is only
// possible for metadata read without following symlinks.
func (m *Metadata) IsSymlink() bool {
	return m.info.Mode()&iofs.ModeSymlink != 0
}

// Modified returns the last modification time.
func (m *Metadata) Modified() time.Time {
	return m.info.ModTime()
}

// Accessed returns the last access time.
func (m *Metadata) Accessed() (time.Time, error) {
	t, err := accessTime(m)
	if err != nil {
		return time.Time{}, annotate(m.path, err)
	}
	return t, nil
}

// Created returns the creation (birth) time. Not every platform or
// filesystem records it; the failure then wraps errors.ErrUnsupported.
//
// The birth time is not part of the record captured by Stat, so Created
// queries the path again: if the file was replaced in between, the result
// describes the new file.
func (m *Metadata) Created() (time.Time, error) {
	t, err := birthTime(m)
	if err != nil {
		return time.Time{}, annotate(m.path, err)
	}
	return t, nil
}

func unsupported(what string) error {
	return errors.Wrap(errors.ErrUnsupported, errors.CodePlatform, what+" is not available on this platform")
}
