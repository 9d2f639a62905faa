package env

import (
	"testing"

	"github.com/jmgilman/go/annotate/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const unset = "!% SHOULD NOT EXIST %!"

func assertErrorDesc(t *testing.T, err error, code errors.ErrorCode, want string) {
	t.Helper()
	require.Error(t, err)
	assert.Equal(t, want, err.Error())
	assert.Equal(t, code, errors.GetCode(err))
}

func TestVar(t *testing.T) {
	t.Setenv("ANNOTATE_TEST_VAR", "value")

	got, err := Var("ANNOTATE_TEST_VAR")
	require.NoError(t, err)
	assert.Equal(t, "value", got)
}

func TestVar_Empty(t *testing.T) {
	t.Setenv("ANNOTATE_TEST_VAR", "")

	got, err := Var("ANNOTATE_TEST_VAR")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestVar_NotFound(t *testing.T) {
	_, err := Var(unset)
	assertErrorDesc(t, err, errors.CodeNotFound,
		`environment variable "!% SHOULD NOT EXIST %!": environment variable not found`)
	assert.Equal(t, unset, errors.AllFields(err)["env"])
}

func TestVar_InvalidEncoding(t *testing.T) {
	t.Setenv("ANNOTATE_TEST_VAR", "bad \xff value")

	_, err := Var("ANNOTATE_TEST_VAR")
	assertErrorDesc(t, err, errors.CodeInvalidEncoding,
		`environment variable "ANNOTATE_TEST_VAR": environment variable was not valid unicode`)
}

func TestVarStrict(t *testing.T) {
	t.Setenv("ANNOTATE_TEST_VAR", "bad \xff value")

	got, err := VarStrict("ANNOTATE_TEST_VAR")
	require.NoError(t, err)
	assert.Equal(t, "bad \xff value", got)
}

func TestVarStrict_Errors(t *testing.T) {
	tests := []struct {
		name string
		key  string
		code errors.ErrorCode
		want string
	}{
		{
			name: "not found",
			key:  unset,
			code: errors.CodeNotFound,
			want: `environment variable "!% SHOULD NOT EXIST %!": environment variable not found`,
		},
		{
			name: "equals sign",
			key:  "BAD = SIGN",
			code: errors.CodeInvalidInput,
			want: `environment variable "BAD = SIGN": environment variable contains '='`,
		},
		{
			name: "nul",
			key:  "BAD \x00 CHAR",
			code: errors.CodeInvalidInput,
			want: `environment variable "BAD \x00 CHAR": environment variable contains '\x00'`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := VarStrict(tt.key)
			assertErrorDesc(t, err, tt.code, tt.want)
		})
	}
}

func TestSetUnset(t *testing.T) {
	t.Setenv("ANNOTATE_TEST_VAR", "before")

	require.NoError(t, Set("ANNOTATE_TEST_VAR", "after"))
	got, err := Var("ANNOTATE_TEST_VAR")
	require.NoError(t, err)
	assert.Equal(t, "after", got)

	require.NoError(t, Unset("ANNOTATE_TEST_VAR"))
	_, err = Var("ANNOTATE_TEST_VAR")
	assert.Equal(t, errors.CodeNotFound, errors.GetCode(err))
}

func TestSet_InvalidKey(t *testing.T) {
	err := Set("BAD = SIGN", "x")
	assertErrorDesc(t, err, errors.CodePlatform,
		`environment variable "BAD = SIGN": invalid argument`)
}
