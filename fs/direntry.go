package fs

import (
	iofs "io/fs"
	"path/filepath"
)

// DirEntry is an entry produced by Dir. It remembers its full path so that
// failures while inspecting it name the entry.
type DirEntry struct {
	entry iofs.DirEntry
	path  string
}

func newDirEntry(entry iofs.DirEntry, dir string) *DirEntry {
	return &DirEntry{
		entry: entry,
		path:  filepath.Join(dir, entry.Name()),
	}
}

// Name returns the base name of the entry.
func (e *DirEntry) Name() string {
	return e.entry.Name()
}

// Path returns the directory joined with the entry name.
func (e *DirEntry) Path() string {
	return e.path
}

// IsDir reports whether the entry is a directory.
func (e *DirEntry) IsDir() bool {
	return e.entry.IsDir()
}

// Type returns the type bits of the entry.
func (e *DirEntry) Type() iofs.FileMode {
	return e.entry.Type()
}

// Metadata returns the metadata of the entry without following a final
// symlink. The entry may have been removed since the directory was read; the
// failure then names the entry path.
func (e *DirEntry) Metadata() (*Metadata, error) {
	info, err := e.entry.Info()
	if err != nil {
		return nil, annotate(e.path, err)
	}
	return newMetadata(info, e.path, false), nil
}
