package paths

import (
	"unicode/utf8"

	"github.com/jmgilman/go/annotate/errors"
	"github.com/jmgilman/go/annotate/internal/display"
)

const (
	msgInvalidUTF8      = "invalid UTF8"
	msgMissingParent    = "expected parent directory"
	msgMissingFileName  = "missing expected filename"
	msgMissingExtension = "missing expected extension"
	msgPrefixNotFound   = "prefix not found"
)

// ToString returns p unchanged if it is valid UTF-8.
func ToString(p string) (string, error) {
	if !utf8.ValidString(p) {
		return "", annotate(p, errors.New(errors.CodeInvalidEncoding, msgInvalidUTF8))
	}
	return p, nil
}

// Parent returns p without its final component.
//
// The parent of a single relative component, and of "." itself, is ".". A
// root or empty path has no parent and fails with CodeNotFound.
func Parent(p string) (string, error) {
	c := split(p)
	if len(c.parts) == 0 && c.cur {
		return ".", nil
	}
	if len(c.parts) == 0 {
		return "", annotate(p, errors.New(errors.CodeNotFound, msgMissingParent))
	}
	return join(c.root, c.parts[:len(c.parts)-1]), nil
}

// FileName returns the final component of p.
//
// Fails with CodeNotFound when p has no final component or when it ends in
// "..".
func FileName(p string) (string, error) {
	name, ok := split(p).fileName()
	if !ok {
		return "", annotate(p, errors.New(errors.CodeNotFound, msgMissingFileName))
	}
	return name, nil
}

// FileStem returns the final component of p without its extension.
//
//	"/foo/bar.txt"    -> "bar"
//	"/foo/a.tar.gz"   -> "a.tar"
//	"/foo/.bashrc"    -> ".bashrc"
//
// Fails like FileName when p has no final component.
func FileStem(p string) (string, error) {
	name, ok := split(p).fileName()
	if !ok {
		return "", annotate(p, errors.New(errors.CodeNotFound, msgMissingFileName))
	}
	stem, _, _ := splitExt(name)
	return stem, nil
}

// Extension returns the extension of the final component of p, without the
// leading dot.
//
// Fails with CodeNotFound when p has no final component, when the final
// component has no dot, or when its only dot is the leading one.
func Extension(p string) (string, error) {
	name, ok := split(p).fileName()
	if ok {
		if _, ext, found := splitExt(name); found {
			return ext, nil
		}
	}
	return "", annotate(p, errors.New(errors.CodeNotFound, msgMissingExtension))
}

// StripPrefix returns p relative to base, comparing whole components.
//
// If p equals base the result is ".". When base is not a prefix of p the
// error names both values:
//
//	while processing path "/foo/bar": with prefix "/bananas": prefix not found
func StripPrefix(p, base string) (string, error) {
	pc, bc := split(p), split(base)
	if !hasPrefix(pc, bc) {
		err := errors.ContextWithFields(
			errors.New(errors.CodeNotFound, msgPrefixNotFound),
			"with prefix "+display.Quote(base),
			map[string]interface{}{"prefix": base},
		)
		return "", annotate(p, err)
	}
	return join(false, pc.parts[len(bc.parts):]), nil
}

func hasPrefix(p, base components) bool {
	if p.root != base.root || len(base.parts) > len(p.parts) {
		return false
	}
	// A leading "." is a component of its own: "." is not a prefix of "foo",
	// nor "foo" of "./foo".
	if base.cur != p.cur && (base.cur || len(base.parts) > 0) {
		return false
	}
	for i, part := range base.parts {
		if p.parts[i] != part {
			return false
		}
	}
	return true
}

// annotate adds the path context layer shared by every function in this
// package.
func annotate(p string, err error) error {
	return errors.ContextWithFields(err, "while processing path "+display.Quote(p), map[string]interface{}{
		"path": p,
	})
}
