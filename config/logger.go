// SPDX-License-Identifier: MIT

package config

import (
	"fmt"
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger builds the logger described by LogFormat and LogLevel, writing
// to w. "console" uses the development encoder, "json" the production one.
func (c Config) NewLogger(w io.Writer) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("config.NewLogger: %w", err)
	}

	var enc zapcore.Encoder
	switch c.LogFormat {
	case "json":
		enc = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	case "console":
		ec := zap.NewDevelopmentEncoderConfig()
		ec.EncodeLevel = zapcore.CapitalLevelEncoder
		enc = zapcore.NewConsoleEncoder(ec)
	default:
		return nil, fmt.Errorf("config.NewLogger: log format %q: %w", c.LogFormat, ErrInvalidConfig)
	}

	core := zapcore.NewCore(enc, zapcore.AddSync(w), zap.NewAtomicLevelAt(level))

	return zap.New(core, zap.AddStacktrace(zap.ErrorLevel)), nil
}
