package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jmgilman/go/annotate/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type result struct {
	conf   *config
	stdout string
	stderr string
	err    error
}

func runCLI(t *testing.T, args ...string) result {
	t.Helper()

	var stdout, stderr bytes.Buffer
	conf := &config{}
	cmd := newCommand(conf)
	cmd.Writer = &stdout
	cmd.ErrWriter = &stderr

	err := cmd.Run(context.Background(), append([]string{"annotate"}, args...))
	return result{
		conf:   conf,
		stdout: stdout.String(),
		stderr: stderr.String(),
		err:    err,
	}
}

func TestRead(t *testing.T) {
	p := filepath.Join(t.TempDir(), "file.txt")
	require.NoError(t, os.WriteFile(p, []byte("hello\n"), 0o644))

	res := runCLI(t, "read", p)
	require.NoError(t, res.err)
	assert.Equal(t, "hello\n", res.stdout)
}

func TestRead_Missing(t *testing.T) {
	res := runCLI(t, "read", "/this/path/should/not/exist")
	require.Error(t, res.err)
	assert.Equal(t, errors.CodePlatform, errors.GetCode(res.err))
	assert.Contains(t, res.err.Error(), `while processing path "/this/path/should/not/exist": `)
}

func TestRead_NoArgs(t *testing.T) {
	res := runCLI(t, "read")
	require.Error(t, res.err)
	assert.Equal(t, errors.CodeInvalidInput, errors.GetCode(res.err))
	assert.Equal(t, "read: expected <path>", res.err.Error())
}

func TestStat(t *testing.T) {
	p := filepath.Join(t.TempDir(), "file.txt")
	require.NoError(t, os.WriteFile(p, []byte("hello"), 0o644))
	require.NoError(t, os.Chmod(p, 0o644))

	res := runCLI(t, "stat", p)
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "path: "+p+"\n")
	assert.Contains(t, res.stdout, "size: 5\n")
	assert.Contains(t, res.stdout, "mode: -rw-r--r--\n")
	assert.Contains(t, res.stdout, "created: ")
}

func TestLs(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a"), nil, 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b"), nil, 0o644))

	res := runCLI(t, "ls", dir)
	require.NoError(t, res.err)

	lines := strings.Split(strings.TrimSpace(res.stdout), "\n")
	assert.ElementsMatch(t, []string{filepath.Join(dir, "a"), filepath.Join(dir, "b")}, lines)
}

func TestLs_NotADirectory(t *testing.T) {
	p := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(p, nil, 0o644))

	res := runCLI(t, "ls", "-l", p)
	require.Error(t, res.err)
	assert.Contains(t, res.err.Error(), `while processing path "`+p+`": `)
}

func TestPath(t *testing.T) {
	res := runCLI(t, "path", "--strip", "/foo", "/foo/bar/archive.tar.gz")
	require.NoError(t, res.err)
	assert.Equal(t, strings.Join([]string{
		"parent: /foo/bar",
		"name: archive.tar.gz",
		"stem: archive.tar",
		"extension: gz",
		"relative: bar/archive.tar.gz",
		"",
	}, "\n"), res.stdout)
}

func TestPath_Missing(t *testing.T) {
	res := runCLI(t, "path", "/foo/..")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "name: n/a\n")
	assert.Contains(t, res.stdout, "extension: n/a\n")
}

func TestPath_StripPrefix(t *testing.T) {
	res := runCLI(t, "path", "--strip", "/bananas", "/foo/bar")
	require.Error(t, res.err)
	assert.Equal(t, `while processing path "/foo/bar": with prefix "/bananas": prefix not found`, res.err.Error())
}

func TestEnv(t *testing.T) {
	t.Setenv("ANNOTATE_CLI_VAR", "value")

	res := runCLI(t, "env", "ANNOTATE_CLI_VAR")
	require.NoError(t, res.err)
	assert.Equal(t, "value\n", res.stdout)

	res = runCLI(t, "env", "--strict", "BAD=KEY")
	require.Error(t, res.err)
	assert.Equal(t, `environment variable "BAD=KEY": environment variable contains '='`, res.err.Error())
}

func TestRun(t *testing.T) {
	res := runCLI(t, "run", "sh", "-c", "echo out; echo err >&2; exit 3")
	require.NoError(t, res.err)
	require.NotNil(t, res.conf.status)

	assert.Equal(t, "out\n", res.stdout)
	assert.Contains(t, res.stderr, "err\n")
	assert.Contains(t, res.stderr, `"msg":"command exited"`)

	code, ok := res.conf.status.Code()
	assert.True(t, ok)
	assert.Equal(t, 3, code)
}

func TestRun_Stdin(t *testing.T) {
	var stdout, stderr bytes.Buffer
	conf := &config{}
	cmd := newCommand(conf)
	cmd.Reader = strings.NewReader("from stdin\n")
	cmd.Writer = &stdout
	cmd.ErrWriter = &stderr

	err := cmd.Run(context.Background(), []string{"annotate", "run", "cat"})
	require.NoError(t, err)
	require.NotNil(t, conf.status)
	assert.True(t, conf.status.Success())
	assert.Equal(t, "from stdin\n", stdout.String())
}

func TestRun_Unknown(t *testing.T) {
	res := runCLI(t, "run", "/does/not/exist", "ARG")
	require.Error(t, res.err)
	assert.Nil(t, res.conf.status)
	assert.True(t, strings.HasPrefix(res.err.Error(), `command: "/does/not/exist" "ARG": `))
}

func TestLogLevel_Invalid(t *testing.T) {
	res := runCLI(t, "--log-level", "loud", "read", "/etc/hostname")
	require.Error(t, res.err)
}

func TestReport(t *testing.T) {
	_, err := os.ReadFile("/this/path/should/not/exist")
	require.Error(t, err)
	err = errors.ContextWithFields(err, `while processing path "/this/path/should/not/exist"`,
		map[string]interface{}{"path": "/this/path/should/not/exist"})

	t.Run("flattened", func(t *testing.T) {
		var buf bytes.Buffer
		report(&buf, &config{LogLevel: "info"}, err)
		assert.Equal(t, "Error: "+err.Error()+"\n", buf.String())
	})

	t.Run("verbose", func(t *testing.T) {
		var buf bytes.Buffer
		report(&buf, &config{LogLevel: "info", Verbose: true}, err)
		assert.Equal(t, "Error: "+errors.Verbose(err)+"\n", buf.String())
	})

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		report(&buf, &config{LogLevel: "info", JSON: true}, err)

		var resp errors.ErrorResponse
		require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
		assert.Equal(t, string(errors.CodePlatform), resp.Code)
		assert.Equal(t, "/this/path/should/not/exist", resp.Fields["path"])
	})

	t.Run("debug log", func(t *testing.T) {
		var buf bytes.Buffer
		report(&buf, &config{LogLevel: "debug"}, err)
		assert.Contains(t, buf.String(), `"msg":"command failed"`)
		assert.Contains(t, buf.String(), `"code":"PLATFORM_ERROR"`)
	})
}
