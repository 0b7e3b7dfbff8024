package logger

import (
	"io"

	"go.uber.org/zap/zapcore"
)

type option struct {
	level      string
	encoder    func(zapcore.EncoderConfig) zapcore.Encoder
	writer     io.Writer
	serverName string
}

type Option func(*option)

// WithLevel debug, info, warn or error, lower or upper case
func WithLevel(level string) Option {
	return func(o *option) {
		o.level = level
	}
}

// WithFormat "json" switches to the json encoder, anything else keeps the console one
func WithFormat(format string) Option {
	return func(o *option) {
		if format == "json" {
			o.encoder = zapcore.NewJSONEncoder
		}
	}
}

func WithWriter(w io.Writer) Option {
	return func(o *option) {
		o.writer = w
	}
}

func WithServerName(name string) Option {
	return func(o *option) {
		o.serverName = name
	}
}
