// Package fs wraps the host filesystem calls of the os package so that
// every failure names the path it was operating on.
//
// Each function is a one-to-one pass-through to its os or path/filepath
// counterpart. On success the platform value is returned unchanged; on
// failure the platform error is kept as the root cause and decorated with a
// context layer:
//
//	data, err := fs.Read("/etc/missing")
//	// err: while processing path "/etc/missing": no such file or directory
//
// The root cause is still reachable with the standard library helpers, so
// errors.Is(err, fs.ErrNotExist) from io/fs keeps working.
//
// # Directory Iteration
//
// ReadDir returns a lazy iterator over the entries of a directory. Entries
// are read from the platform in batches; an error while reading is annotated
// with the directory being iterated, and iteration ends after it:
//
//	rd, err := fs.ReadDir("/var/log")
//	if err != nil {
//		return err
//	}
//	defer rd.Close()
//
//	for entry, err := range rd.All() {
//		if err != nil {
//			return err
//		}
//		md, err := entry.Metadata()
//		if err != nil {
//			return err // names the entry path
//		}
//		fmt.Println(entry.Name(), md.Size())
//	}
//
// DirEntry and Metadata keep the path they were derived from, so failures
// on them (for example reading a creation time) name the right resource
// long after ReadDir returned.
package fs
