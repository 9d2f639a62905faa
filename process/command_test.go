package process

import (
	"bytes"
	"context"
	iofs "io/fs"
	"os"
	osexec "os/exec"
	"path/filepath"
	"strings"
	"syscall"
	"testing"

	"github.com/jmgilman/go/annotate/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDescribe(t *testing.T) {
	tests := []struct {
		name string
		cmd  *Command
		want string
	}{
		{
			name: "program only",
			cmd:  New("ls", nil),
			want: `command: "ls"`,
		},
		{
			name: "arguments",
			cmd:  New("echo", []string{"hello world", `"quoted"`}),
			want: `command: "echo" "hello world" "\"quoted\""`,
		},
		{
			name: "directory",
			cmd:  New("pwd", nil, WithDir("/tmp")),
			want: `command: cd "/tmp" && "pwd"`,
		},
		{
			name: "wrapped",
			cmd:  Wrap(osexec.Command("git", "status")),
			want: `command: "git" "status"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.cmd.Describe())
		})
	}
}

func TestUnknownProgram(t *testing.T) {
	want := `command: "/does/not/exist" "ARG": ` + syscall.ENOENT.Error()

	tests := []struct {
		name string
		call func(*Command) error
	}{
		{"Spawn", func(c *Command) error { _, err := c.Spawn(); return err }},
		{"Output", func(c *Command) error { _, err := c.Output(); return err }},
		{"Status", func(c *Command) error { _, err := c.Status(); return err }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.call(New("/does/not/exist", []string{"ARG"}))
			require.Error(t, err)
			assert.Equal(t, want, err.Error())
			assert.Equal(t, errors.CodePlatform, errors.GetCode(err))
			assert.True(t, errors.Is(err, iofs.ErrNotExist))
			assert.Equal(t, `command: "/does/not/exist" "ARG"`, errors.AllFields(err)["command"])
		})
	}
}

func TestUnknownProgram_Path(t *testing.T) {
	_, err := New("annotate-no-such-program", nil).Output()
	require.Error(t, err)
	assert.True(t, errors.Is(err, osexec.ErrNotFound))
	assert.True(t, strings.HasPrefix(err.Error(), `command: "annotate-no-such-program": `))
}

func TestOutput(t *testing.T) {
	out, err := helper("cat", WithStdin(strings.NewReader("hello"))).Output()
	require.NoError(t, err)

	assert.True(t, out.Status.Success())
	assert.NoError(t, out.Status.ExitOK())
	assert.Equal(t, "hello", string(out.Stdout))
	assert.Equal(t, "done", string(out.Stderr))
}

func TestOutput_Passthrough(t *testing.T) {
	var stdout, stderr bytes.Buffer
	out, err := helper("cat",
		WithStdin(strings.NewReader("hello")),
		WithStdout(&stdout),
		WithStderr(&stderr),
	).Output()
	require.NoError(t, err)

	assert.Equal(t, "hello", string(out.Stdout))
	assert.Equal(t, "hello", stdout.String())
	assert.Equal(t, "done", stderr.String())
}

func TestOutput_Reusable(t *testing.T) {
	cmd := helper("exit:3")
	for i := 0; i < 2; i++ {
		out, err := cmd.Output()
		require.NoError(t, err)
		code, ok := out.Status.Code()
		assert.True(t, ok)
		assert.Equal(t, 3, code)
	}
}

func TestStatus(t *testing.T) {
	status, err := helper("exit:101").Status()
	require.NoError(t, err)

	assert.False(t, status.Success())
	code, ok := status.Code()
	assert.True(t, ok)
	assert.Equal(t, 101, code)
	assert.Equal(t, "exit status 101", status.String())
	assert.Equal(t, helper("exit:101").Describe(), status.Describe())
}

func TestWithEnv(t *testing.T) {
	out, err := helper("printenv:ANNOTATE_TEST_VAR",
		WithEnv(map[string]string{"ANNOTATE_TEST_VAR": "test_value"}),
	).Output()
	require.NoError(t, err)
	assert.Equal(t, "test_value", string(out.Stdout))
}

func TestWithCleanEnv(t *testing.T) {
	t.Setenv("ANNOTATE_INHERITED", "yes")

	out, err := helper("printenv:ANNOTATE_INHERITED").Output()
	require.NoError(t, err)
	assert.Equal(t, "yes", string(out.Stdout))

	out, err = helper("printenv:ANNOTATE_INHERITED", WithCleanEnv()).Output()
	require.NoError(t, err)
	assert.Empty(t, out.Stdout)
}

func TestWithDisableColors(t *testing.T) {
	out, err := helper("printenv:NO_COLOR", WithDisableColors()).Output()
	require.NoError(t, err)
	assert.Equal(t, "1", string(out.Stdout))

	out, err = helper("printenv:TERM",
		WithDisableColors(),
		WithEnv(map[string]string{"TERM": "xterm"}),
	).Output()
	require.NoError(t, err)
	assert.Equal(t, "xterm", string(out.Stdout))
}

func TestWithDir(t *testing.T) {
	dir, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)

	out, err := helper("pwd", WithDir(dir)).Output()
	require.NoError(t, err)
	assert.Equal(t, dir, string(out.Stdout))
}

func TestWithDir_Missing(t *testing.T) {
	_, err := helper("pwd", WithDir("/does/not/exist")).Output()
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(err.Error(), `command: cd "/does/not/exist" && `))
	assert.True(t, errors.Is(err, iofs.ErrNotExist))
}

func TestWithContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := helper("sleep", WithContext(ctx)).Output()
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
	assert.True(t, strings.HasSuffix(err.Error(), ": context canceled"))
}

func TestWrap(t *testing.T) {
	cmd := osexec.Command(os.Args[0], "-test.run=^$")
	cmd.Env = []string{helperEnv + "=printenv:ANNOTATE_WRAPPED", "ANNOTATE_WRAPPED=wrapped"}
	cmd.Stdin = strings.NewReader("ignored")

	out, err := Wrap(cmd).Output()
	require.NoError(t, err)
	assert.Equal(t, "wrapped", string(out.Stdout))
}
