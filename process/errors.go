package process

import (
	"strings"

	"github.com/jmgilman/go/annotate/errors"
	"github.com/jmgilman/go/annotate/internal/display"
)

// describe renders the command descriptor: the quoted program and arguments,
// preceded by the working directory when one is set.
func describe(args []string, dir string) string {
	var b strings.Builder
	b.WriteString("command: ")
	if dir != "" {
		b.WriteString("cd ")
		b.WriteString(display.Quote(dir))
		b.WriteString(" && ")
	}
	for i, arg := range args {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(display.Quote(arg))
	}
	return b.String()
}

// annotate adds the command descriptor as the context layer of err.
func annotate(desc string, err error) error {
	return errors.ContextWithFields(err, desc, map[string]interface{}{
		"command": desc,
	})
}

func unsupported(what string) error {
	return errors.Wrap(errors.ErrUnsupported, errors.CodePlatform, what+" is not available on this platform")
}
