package log

import (
	"context"
	"io"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"

	lferrors "github.com/YuminosukeSato/linefit/pkg/errors"
)

// ZerologLogger adapts zerolog to Logger. Errors that implement
// zerolog.LogObjectMarshaler are embedded as structured objects.
type ZerologLogger struct {
	zl zerolog.Logger
}

// NewZerologLogger creates a logger writing JSON lines to w at the given minimum level.
func NewZerologLogger(w io.Writer, level Level) *ZerologLogger {
	zl := zerolog.New(w).Level(toZerologLevel(level)).With().Timestamp().Logger()
	return &ZerologLogger{zl: zl}
}

func toZerologLevel(level Level) zerolog.Level {
	switch {
	case level <= LevelDebug:
		return zerolog.DebugLevel
	case level <= LevelInfo:
		return zerolog.InfoLevel
	case level <= LevelWarn:
		return zerolog.WarnLevel
	default:
		return zerolog.ErrorLevel
	}
}

func (z *ZerologLogger) Debug(msg string, fields ...any) { z.zl.Debug().Fields(fields).Msg(msg) }
func (z *ZerologLogger) Info(msg string, fields ...any)  { z.zl.Info().Fields(fields).Msg(msg) }
func (z *ZerologLogger) Warn(msg string, fields ...any)  { z.zl.Warn().Fields(fields).Msg(msg) }

func (z *ZerologLogger) Error(msg string, fields ...any) {
	ev := z.zl.Error()
	if len(fields) > 0 {
		if err, ok := fields[0].(error); ok {
			ev = ev.Err(err)
			var m zerolog.LogObjectMarshaler
			if errors.As(err, &m) {
				ev = ev.Object("detail", m)
			}
			fields = fields[1:]
		}
	}
	ev.Fields(fields).Msg(msg)
}

func (z *ZerologLogger) With(fields ...any) Logger {
	return &ZerologLogger{zl: z.zl.With().Fields(fields).Logger()}
}

func (z *ZerologLogger) Enabled(_ context.Context, level Level) bool {
	return toZerologLevel(level) >= z.zl.GetLevel()
}

// RouteWarnings sends warnings raised through pkg/errors.Warn (for example the
// R² zero-variance fallback) to l. Passing nil restores the default handler.
func RouteWarnings(l Logger) {
	if l == nil {
		lferrors.SetZerologWarnFunc(nil)
		return
	}
	lferrors.SetZerologWarnFunc(func(w error) {
		if z, ok := l.(*ZerologLogger); ok {
			ev := z.zl.Warn()
			if m, ok := w.(zerolog.LogObjectMarshaler); ok {
				ev = ev.EmbedObject(m)
			}
			ev.Msg(w.Error())
			return
		}
		l.Warn(w.Error())
	})
}
