package logger

import (
	"os"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"usercenter/pkg/timex"
)

// level is shared by every logger New builds, SetLevel and the /log api change it at runtime
var level = zap.NewAtomicLevelAt(zapcore.InfoLevel)

// New builds the service logger
func New(opts ...Option) *zap.Logger {
	o := &option{
		level:   zapcore.InfoLevel.String(),
		encoder: zapcore.NewConsoleEncoder,
		writer:  os.Stdout,
	}
	for _, opt := range opts {
		opt(o)
	}
	_ = SetLevel(o.level)

	core := zapcore.NewCore(o.encoder(newEncoderConfig()), zapcore.AddSync(o.writer), level)
	l := zap.New(core, zap.AddCaller(), zap.AddStacktrace(zapcore.DPanicLevel), zap.WithClock(systemClock{}))
	if o.serverName != "" {
		l = l.With(zap.String("service_name", o.serverName))
	}
	return l
}

// SetLevel changes the level of every logger built by New, unknown names are rejected
func SetLevel(name string) error {
	l, err := zapcore.ParseLevel(name)
	if err != nil {
		return err
	}
	level.SetLevel(l)
	return nil
}

// Level 当前日志级别
func Level() zapcore.Level {
	return level.Level()
}

func newEncoderConfig() zapcore.EncoderConfig {
	return zapcore.EncoderConfig{
		MessageKey:     "Message",
		LevelKey:       "Level",
		TimeKey:        "Time",
		NameKey:        "Logger",
		CallerKey:      "Caller",
		StacktraceKey:  "Stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.CapitalLevelEncoder,
		EncodeTime:     zapcore.TimeEncoderOfLayout(timex.TimeFormatLayout),
		EncodeDuration: zapcore.MillisDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
		EncodeName:     zapcore.FullNameEncoder,
	}
}

// systemClock stamps log lines in CST.
type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now().In(timex.CST)
}

func (systemClock) NewTicker(duration time.Duration) *time.Ticker {
	return time.NewTicker(duration)
}
