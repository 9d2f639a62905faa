// Package env reads and writes process environment variables, naming the
// variable in every failure.
//
// Every error carries the layer
//
//	environment variable "<key>"
//
// and a structured "env" field holding the key.
package env

import (
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/jmgilman/go/annotate/errors"
	"github.com/jmgilman/go/annotate/internal/display"
)

const (
	msgNotFound        = "environment variable not found"
	msgInvalidEncoding = "environment variable was not valid unicode"
)

// Var returns the value of the environment variable key.
//
// Fails with CodeNotFound when the variable is unset and with
// CodeInvalidEncoding when its value is not valid UTF-8.
func Var(key string) (string, error) {
	value, ok := os.LookupEnv(key)
	if !ok {
		return "", annotate(key, errors.New(errors.CodeNotFound, msgNotFound))
	}
	if !utf8.ValidString(value) {
		return "", annotate(key, errors.New(errors.CodeInvalidEncoding, msgInvalidEncoding))
	}
	return value, nil
}

// VarStrict returns the raw value of the environment variable key without
// checking its encoding.
//
// A key containing '=' or NUL can never name a variable, so it fails with
// CodeInvalidInput before the environment is consulted. An unset variable
// fails with CodeNotFound.
func VarStrict(key string) (string, error) {
	if err := validate(key); err != nil {
		return "", annotate(key, err)
	}

	value, ok := os.LookupEnv(key)
	if !ok {
		return "", annotate(key, errors.New(errors.CodeNotFound, msgNotFound))
	}
	return value, nil
}

// Set sets the environment variable key to value.
func Set(key, value string) error {
	if err := os.Setenv(key, value); err != nil {
		return annotate(key, err)
	}
	return nil
}

// Unset removes the environment variable key. Removing an unset variable is
// not an error.
func Unset(key string) error {
	if err := os.Unsetenv(key); err != nil {
		return annotate(key, err)
	}
	return nil
}

func validate(key string) error {
	for _, c := range []rune{'=', 0} {
		if strings.ContainsRune(key, c) {
			return errors.New(errors.CodeInvalidInput, fmt.Sprintf("environment variable contains %q", c))
		}
	}
	return nil
}

func annotate(key string, err error) error {
	return errors.ContextWithFields(err, "environment variable "+display.Quote(display.Lossy([]byte(key))),
		map[string]interface{}{
			"env": key,
		},
	)
}
