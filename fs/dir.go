package fs

import (
	"io"
	iofs "io/fs"
	"iter"
	"os"

	"github.com/jmgilman/go/annotate/errors"
	"github.com/jmgilman/go/annotate/internal/display"
)

// batchSize is the number of entries requested from the platform per read.
const batchSize = 128

// dirStream is the platform directory stream. *os.File satisfies it.
type dirStream interface {
	ReadDir(n int) ([]iofs.DirEntry, error)
	Close() error
}

// Dir is a lazy, finite, non-restartable iterator over the entries of a
// directory. It owns the underlying directory stream and remembers the
// directory path so read failures can name it.
//
// A Dir is not safe for concurrent use.
type Dir struct {
	stream  dirStream
	path    string
	pending []iofs.DirEntry
	end     error
	closed  bool
}

// ReadDir opens the directory at p for iteration.
//
// The first batch of entries is read immediately, so opening a path that is
// not a directory fails here rather than on the first call to Next.
func ReadDir(p string) (*Dir, error) {
	f, err := os.Open(p)
	if err != nil {
		return nil, annotate(p, err)
	}

	entries, err := f.ReadDir(batchSize)
	if err != nil && err != io.EOF {
		_ = f.Close()
		return nil, annotate(p, err)
	}

	d := newDir(p, f)
	d.pending = entries
	if err == io.EOF {
		d.finish(io.EOF)
	}
	return d, nil
}

func newDir(p string, stream dirStream) *Dir {
	return &Dir{
		stream: stream,
		path:   p,
	}
}

// Path returns the directory being iterated.
func (d *Dir) Path() string {
	return d.path
}

// Next returns the next entry of the directory.
//
// It returns io.EOF once the directory is exhausted. A failed read returns
// an error naming the directory; every later call returns io.EOF. The
// directory stream is released as soon as iteration ends.
func (d *Dir) Next() (*DirEntry, error) {
	for len(d.pending) == 0 {
		if d.end != nil {
			err := d.end
			d.end = io.EOF
			return nil, err
		}
		d.read()
	}

	entry := d.pending[0]
	d.pending = d.pending[1:]
	return newDirEntry(entry, d.path), nil
}

// All returns the remaining entries as a sequence for use with range.
// The sequence yields at most one error, after which it stops; io.EOF is
// never yielded.
func (d *Dir) All() iter.Seq2[*DirEntry, error] {
	return func(yield func(*DirEntry, error) bool) {
		for {
			entry, err := d.Next()
			if err == io.EOF {
				return
			}
			if !yield(entry, err) || err != nil {
				return
			}
		}
	}
}

// Close releases the directory stream. Close is idempotent and is not
// required once Next has returned an error.
func (d *Dir) Close() error {
	d.pending = nil
	d.end = io.EOF
	return d.release()
}

func (d *Dir) read() {
	entries, err := d.stream.ReadDir(batchSize)
	d.pending = entries

	switch {
	case err == io.EOF:
		d.finish(io.EOF)
	case err != nil:
		d.finish(errors.ContextWithFields(err, "while reading directory "+display.Quote(d.path),
			map[string]interface{}{"path": d.path},
		))
	case len(entries) == 0:
		d.finish(io.EOF)
	}
}

// finish records how iteration ends and releases the stream. Entries already
// read stay pending and are returned before end.
func (d *Dir) finish(end error) {
	d.end = end
	_ = d.release()
}

func (d *Dir) release() error {
	if d.closed {
		return nil
	}
	d.closed = true
	if err := d.stream.Close(); err != nil {
		return annotate(d.path, err)
	}
	return nil
}
