package main

import (
	"io"

	"github.com/jmgilman/go/annotate/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// newLogger returns a JSON logger writing to w at the given level.
func newLogger(w io.Writer, level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeInvalidInput, "invalid log level")
	}

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
		zapcore.AddSync(w),
		lvl,
	)
	return zap.New(core), nil
}

// errorFields returns the zap fields describing an annotated error.
func errorFields(err error) []zap.Field {
	fields := []zap.Field{
		zap.Error(err),
		zap.String("code", string(errors.GetCode(err))),
	}
	if all := errors.AllFields(err); len(all) > 0 {
		fields = append(fields, zap.Any("context", all))
	}
	return fields
}
