package paths

import (
	"os"
	"strings"
	"unicode/utf8"
)

// components is a path split into its normal form. cur records a leading
// "." on a relative path; interior "." segments are dropped.
type components struct {
	root  bool
	cur   bool
	parts []string
}

func split(p string) components {
	c := components{root: len(p) > 0 && os.IsPathSeparator(p[0])}
	for i, part := range strings.FieldsFunc(p, isSeparator) {
		if part == "." {
			c.cur = c.cur || (i == 0 && !c.root)
			continue
		}
		c.parts = append(c.parts, part)
	}
	return c
}

func isSeparator(r rune) bool {
	return r < utf8.RuneSelf && os.IsPathSeparator(uint8(r))
}

// join renders parts back into a path. An empty relative path renders as ".".
func join(root bool, parts []string) string {
	joined := strings.Join(parts, string(os.PathSeparator))
	switch {
	case root:
		return string(os.PathSeparator) + joined
	case joined == "":
		return "."
	default:
		return joined
	}
}

// fileName returns the final normal component, if any.
func (c components) fileName() (string, bool) {
	if len(c.parts) == 0 {
		return "", false
	}
	last := c.parts[len(c.parts)-1]
	if last == ".." {
		return "", false
	}
	return last, true
}

// splitExt splits a file name at its last dot. A leading dot does not start
// an extension, so ".bashrc" has no extension and its stem is ".bashrc".
func splitExt(name string) (stem, ext string, ok bool) {
	i := strings.LastIndexByte(name, '.')
	if i <= 0 {
		return name, "", false
	}
	return name[:i], name[i+1:], true
}
