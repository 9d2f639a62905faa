package fs

import (
	"io"
	iofs "io/fs"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/jmgilman/go/annotate/errors"
	"github.com/jmgilman/go/annotate/internal/display"
)

// Stat returns the metadata of the file at p, following symlinks.
func Stat(p string) (*Metadata, error) {
	info, err := os.Stat(p)
	if err != nil {
		return nil, annotate(p, err)
	}
	return newMetadata(info, p, true), nil
}

// Lstat returns the metadata of the file at p without following a final
// symlink.
func Lstat(p string) (*Metadata, error) {
	info, err := os.Lstat(p)
	if err != nil {
		return nil, annotate(p, err)
	}
	return newMetadata(info, p, false), nil
}

// Canonicalize returns the absolute form of p with every symlink resolved.
// The path must exist.
func Canonicalize(p string) (string, error) {
	abs, err := filepath.Abs(p)
	if err != nil {
		return "", annotate(p, err)
	}
	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", annotate(p, err)
	}
	return resolved, nil
}

// ReadLink returns the target of the symlink at p.
func ReadLink(p string) (string, error) {
	target, err := os.Readlink(p)
	if err != nil {
		return "", annotate(p, err)
	}
	return target, nil
}

// Copy copies the contents of the file at from to the file at to, creating
// or truncating the destination, and copies the permission bits of from onto
// to. It returns the number of bytes copied.
func Copy(from, to string) (int64, error) {
	n, err := copyFile(from, to)
	if err != nil {
		return n, annotatePair("copying", from, to, err)
	}
	return n, nil
}

func copyFile(from, to string) (n int64, err error) {
	src, err := os.Open(from)
	if err != nil {
		return 0, err
	}
	defer src.Close()

	info, err := src.Stat()
	if err != nil {
		return 0, err
	}
	if info.IsDir() {
		return 0, errIsDir
	}

	dst, err := os.OpenFile(to, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return 0, err
	}
	defer func() {
		if cerr := dst.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	n, err = io.Copy(dst, src)
	if err != nil {
		return n, err
	}
	return n, dst.Chmod(info.Mode().Perm())
}

// Rename moves the file at from to to, replacing to if it exists.
func Rename(from, to string) error {
	if err := os.Rename(from, to); err != nil {
		return annotatePair("renaming", from, to, err)
	}
	return nil
}

// CreateDir creates a single directory at p. The parent must exist.
func CreateDir(p string) error {
	if err := os.Mkdir(p, 0o777); err != nil {
		return annotate(p, err)
	}
	return nil
}

// CreateDirAll creates the directory at p along with any missing parents.
func CreateDirAll(p string) error {
	if err := os.MkdirAll(p, 0o777); err != nil {
		return annotate(p, err)
	}
	return nil
}

// Read returns the entire contents of the file at p.
func Read(p string) ([]byte, error) {
	data, err := os.ReadFile(p)
	if err != nil {
		return nil, annotate(p, err)
	}
	return data, nil
}

// ReadToString returns the entire contents of the file at p as a string.
// Fails with CodeInvalidEncoding if the contents are not valid UTF-8.
func ReadToString(p string) (string, error) {
	data, err := os.ReadFile(p)
	if err != nil {
		return "", annotate(p, err)
	}
	if !utf8.Valid(data) {
		return "", annotate(p, errors.New(errors.CodeInvalidEncoding, "stream did not contain valid UTF-8"))
	}
	return string(data), nil
}

// Write writes data to the file at p, creating it with perm if needed and
// truncating it otherwise.
func Write(p string, data []byte, perm iofs.FileMode) error {
	if err := os.WriteFile(p, data, perm); err != nil {
		return annotate(p, err)
	}
	return nil
}

// Remove removes the file or empty directory at p.
func Remove(p string) error {
	if err := os.Remove(p); err != nil {
		return annotate(p, err)
	}
	return nil
}

// RemoveAll removes p and everything it contains. A missing p is not an
// error.
func RemoveAll(p string) error {
	if err := os.RemoveAll(p); err != nil {
		return annotate(p, err)
	}
	return nil
}

var errIsDir = errors.New(errors.CodeInvalidInput, "the source path is not a regular file")

// annotate adds the context layer for an operation on a single path.
func annotate(p string, err error) error {
	return errors.ContextWithFields(err, "while processing path "+display.Quote(p), map[string]interface{}{
		"path": p,
	})
}

// annotatePair adds the context layer for an operation on two paths.
func annotatePair(verb, from, to string, err error) error {
	return errors.ContextWithFields(err,
		"while "+verb+" "+display.Quote(from)+" to "+display.Quote(to),
		map[string]interface{}{
			"path": from,
			"to":   to,
		},
	)
}
