package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/jmgilman/go/annotate/bytestr"
	"github.com/jmgilman/go/annotate/env"
	"github.com/jmgilman/go/annotate/errors"
	"github.com/jmgilman/go/annotate/fs"
	"github.com/jmgilman/go/annotate/paths"
	"github.com/jmgilman/go/annotate/process"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func newCommand(conf *config) *cli.Command {
	return &cli.Command{
		Name:    "annotate",
		Usage:   "Inspect files, directories, environment variables and commands with annotated errors",
		Version: Version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Sources: cli.EnvVars("ANNOTATE_LOG_LEVEL"),
				Value:   "info",
				Action: func(_ context.Context, _ *cli.Command, lvl string) error {
					_, err := zapcore.ParseLevel(lvl)
					return err
				},
				Destination: &conf.LogLevel,
				Usage:       "Use to specify the level of logging.",
			},
			&cli.BoolFlag{
				Name:        "verbose",
				Sources:     cli.EnvVars("ANNOTATE_VERBOSE"),
				Destination: &conf.Verbose,
				Usage:       "Print errors with one line per context layer.",
			},
			&cli.BoolFlag{
				Name:        "json",
				Sources:     cli.EnvVars("ANNOTATE_JSON"),
				Destination: &conf.JSON,
				Usage:       "Print errors as JSON.",
			},
		},
		Commands: []*cli.Command{
			{
				Name:      "stat",
				Usage:     "Print the metadata of a path",
				ArgsUsage: "<path>",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "no-follow",
						Usage: "Do not follow a final symlink.",
					},
				},
				Action: withLogger(conf, stat),
			},
			{
				Name:      "ls",
				Usage:     "List the entries of a directory",
				ArgsUsage: "<dir>",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:    "long",
						Aliases: []string{"l"},
						Usage:   "Print the size and mode of every entry.",
					},
				},
				Action: withLogger(conf, ls),
			},
			{
				Name:      "read",
				Usage:     "Print the contents of a UTF-8 file",
				ArgsUsage: "<path>",
				Action:    withLogger(conf, read),
			},
			{
				Name:      "path",
				Usage:     "Print the components of a path",
				ArgsUsage: "<path>",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "strip",
						Usage: "Also print the path relative to this prefix.",
					},
				},
				Action: withLogger(conf, pathInfo),
			},
			{
				Name:      "env",
				Usage:     "Print the value of an environment variable",
				ArgsUsage: "<key>",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "strict",
						Usage: "Reject invalid keys and skip the UTF-8 check of the value.",
					},
				},
				Action: withLogger(conf, envVar),
			},
			{
				Name:            "run",
				Usage:           "Run a command and exit with its status",
				ArgsUsage:       "<program> [args...]",
				SkipFlagParsing: true,
				Action: withLogger(conf, func(ctx context.Context, cmd *cli.Command, logger *zap.Logger) error {
					status, err := runCommand(ctx, cmd, logger)
					conf.status = status
					return err
				}),
			},
		},
	}
}

type action func(ctx context.Context, cmd *cli.Command, logger *zap.Logger) error

// withLogger builds the logger from the global flags before running fn.
func withLogger(conf *config, fn action) cli.ActionFunc {
	return func(ctx context.Context, cmd *cli.Command) error {
		logger, err := newLogger(cmd.Root().ErrWriter, conf.LogLevel)
		if err != nil {
			return err
		}
		defer func() { _ = logger.Sync() }()

		logger.Debug("running subcommand",
			zap.String("command", cmd.Name),
			zap.Strings("args", cmd.Args().Slice()),
		)
		return fn(ctx, cmd, logger)
	}
}

func requireArgs(cmd *cli.Command, n int) error {
	if cmd.Args().Len() < n {
		return errors.Newf(errors.CodeInvalidInput, "%s: expected %s", cmd.Name, cmd.ArgsUsage)
	}
	return nil
}

func stat(_ context.Context, cmd *cli.Command, logger *zap.Logger) error {
	if err := requireArgs(cmd, 1); err != nil {
		return err
	}
	p := cmd.Args().First()

	get := fs.Stat
	if cmd.Bool("no-follow") {
		get = fs.Lstat
	}
	md, err := get(p)
	if err != nil {
		return err
	}

	w := cmd.Root().Writer
	_, _ = fmt.Fprintf(w, "path: %s\n", md.Path())
	_, _ = fmt.Fprintf(w, "size: %d\n", md.Size())
	_, _ = fmt.Fprintf(w, "mode: %s\n", md.Mode())
	_, _ = fmt.Fprintf(w, "modified: %s\n", md.Modified().Format(time.RFC3339))
	printTime(w, logger, "accessed", md.Accessed)
	printTime(w, logger, "created", md.Created)
	return nil
}

func printTime(w io.Writer, logger *zap.Logger, name string, get func() (time.Time, error)) {
	t, err := get()
	if err != nil {
		logger.Debug(name+" time unavailable", errorFields(err)...)
		_, _ = fmt.Fprintf(w, "%s: n/a\n", name)
		return
	}
	_, _ = fmt.Fprintf(w, "%s: %s\n", name, t.Format(time.RFC3339))
}

func ls(_ context.Context, cmd *cli.Command, _ *zap.Logger) error {
	if err := requireArgs(cmd, 1); err != nil {
		return err
	}

	dir, err := fs.ReadDir(cmd.Args().First())
	if err != nil {
		return err
	}
	defer func() { _ = dir.Close() }()

	w := cmd.Root().Writer
	for entry, err := range dir.All() {
		if err != nil {
			return err
		}
		if !cmd.Bool("long") {
			_, _ = fmt.Fprintln(w, entry.Path())
			continue
		}

		md, err := entry.Metadata()
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintf(w, "%s %10d %s\n", md.Mode(), md.Size(), entry.Path())
	}
	return nil
}

func read(_ context.Context, cmd *cli.Command, _ *zap.Logger) error {
	if err := requireArgs(cmd, 1); err != nil {
		return err
	}

	content, err := fs.ReadToString(cmd.Args().First())
	if err != nil {
		return err
	}
	_, err = io.WriteString(cmd.Root().Writer, content)
	return err
}

func pathInfo(_ context.Context, cmd *cli.Command, logger *zap.Logger) error {
	if err := requireArgs(cmd, 1); err != nil {
		return err
	}
	p := cmd.Args().First()
	w := cmd.Root().Writer

	components := []struct {
		name string
		get  func(string) (string, error)
	}{
		{"parent", paths.Parent},
		{"name", paths.FileName},
		{"stem", paths.FileStem},
		{"extension", paths.Extension},
	}
	for _, c := range components {
		v, err := c.get(p)
		if err != nil {
			logger.Debug(c.name+" unavailable", errorFields(err)...)
			_, _ = fmt.Fprintf(w, "%s: n/a\n", c.name)
			continue
		}
		_, _ = fmt.Fprintf(w, "%s: %s\n", c.name, v)
	}

	if prefix := cmd.String("strip"); prefix != "" {
		rel, err := paths.StripPrefix(p, prefix)
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintf(w, "relative: %s\n", rel)
	}
	return nil
}

func envVar(_ context.Context, cmd *cli.Command, _ *zap.Logger) error {
	if err := requireArgs(cmd, 1); err != nil {
		return err
	}

	get := env.Var
	if cmd.Bool("strict") {
		get = env.VarStrict
	}
	value, err := get(cmd.Args().First())
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintln(cmd.Root().Writer, value)
	return nil
}

func runCommand(ctx context.Context, cmd *cli.Command, logger *zap.Logger) (*process.ExitStatus, error) {
	if err := requireArgs(cmd, 1); err != nil {
		return nil, err
	}
	args := cmd.Args().Slice()

	c := process.New(args[0], args[1:],
		process.WithContext(ctx),
		process.WithStdin(stdin(cmd)),
		process.WithStdout(cmd.Root().Writer),
		process.WithStderr(cmd.Root().ErrWriter),
	)
	out, err := c.Output()
	if err != nil {
		return nil, err
	}

	if _, err := bytestr.ToString(out.Stdout); err != nil {
		logger.Warn("command output is not valid UTF-8", errorFields(err)...)
	}
	logger.Info("command exited",
		zap.String("command", c.Describe()),
		zap.String("status", out.Status.String()),
	)
	return out.Status, nil
}

// stdin returns the input stream of the root command, defaulting to the
// standard input of this process.
func stdin(cmd *cli.Command) io.Reader {
	if r := cmd.Root().Reader; r != nil {
		return r
	}
	return os.Stdin
}
