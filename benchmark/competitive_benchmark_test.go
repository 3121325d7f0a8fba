package benchmark

import (
	"io"
	"log/slog"
	"testing"

	"github.com/rs/zerolog"
	"github.com/sirupsen/logrus"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/Philipp01105/forestry/handler"
	"github.com/Philipp01105/forestry/logger"
)

// ---------------------------------------------------------------------------
// Helpers – identical sink for every framework (io.Discard)
// ---------------------------------------------------------------------------

// newForestryLogger returns a forestry logger with default decorations.
func newForestryLogger(opts ...logger.Option) *logger.Logger {
	return logger.NewBuilder().
		WithWriter(io.Discard).
		WithOptions(opts...).
		Build()
}

// newZapLogger returns a zap.Logger with the console encoder.
func newZapLogger() *zap.Logger {
	enc := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	core := zapcore.NewCore(enc, zapcore.AddSync(io.Discard), zap.DebugLevel)
	return zap.New(core)
}

// newSlogLogger returns an slog.Logger with the text handler.
func newSlogLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

// newLogrusLogger returns a logrus.Logger with the text formatter.
func newLogrusLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	l.SetFormatter(&logrus.TextFormatter{ForceColors: true})
	l.SetLevel(logrus.DebugLevel)
	return l
}

// newZerologLogger returns a zerolog.Logger writing to io.Discard.
func newZerologLogger() zerolog.Logger {
	return zerolog.New(io.Discard).Level(zerolog.DebugLevel)
}

// ---------------------------------------------------------------------------
// Scenario 1 – Info message
// ---------------------------------------------------------------------------

func BenchmarkCompetitive_Info(b *testing.B) {
	b.Run("forestry", func(b *testing.B) {
		l := newForestryLogger()
		defer l.Close()
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Info("info message")
		}
	})

	b.Run("forestry-plain", func(b *testing.B) {
		l := newForestryLogger(logger.Plain)
		defer l.Close()
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Info("info message")
		}
	})

	b.Run("zap", func(b *testing.B) {
		l := newZapLogger()
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Info("info message")
		}
	})

	b.Run("slog", func(b *testing.B) {
		l := newSlogLogger()
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Info("info message")
		}
	})

	b.Run("logrus", func(b *testing.B) {
		l := newLogrusLogger()
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Info("info message")
		}
	})

	b.Run("zerolog", func(b *testing.B) {
		l := newZerologLogger()
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Info().Msg("info message")
		}
	})
}

// ---------------------------------------------------------------------------
// Scenario 2 – Elapsed time stamp
// ---------------------------------------------------------------------------

func BenchmarkCompetitive_Timer(b *testing.B) {
	b.Run("forestry", func(b *testing.B) {
		l := newForestryLogger(logger.Timer)
		defer l.Close()
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Warning("warning message")
		}
	})

	b.Run("zap", func(b *testing.B) {
		l := newZapLogger()
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Warn("warning message")
		}
	})

	b.Run("zerolog", func(b *testing.B) {
		l := newZerologLogger().With().Timestamp().Logger()
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Warn().Msg("warning message")
		}
	})
}

// ---------------------------------------------------------------------------
// Scenario 3 – Front-ends routed through forestry
// ---------------------------------------------------------------------------

func BenchmarkCompetitive_Adapters(b *testing.B) {
	b.Run("zap-on-forestry", func(b *testing.B) {
		locked := handler.NewLockedLogger(newForestryLogger())
		defer locked.Close()
		l := zap.New(handler.NewZapCore(locked, zapcore.DebugLevel))
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Info("info message", zap.Int("status", 200))
		}
	})

	b.Run("slog-on-forestry", func(b *testing.B) {
		locked := handler.NewLockedLogger(newForestryLogger())
		defer locked.Close()
		l := slog.New(handler.NewSlogHandler(locked, nil))
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Info("info message", "status", 200)
		}
	})

	b.Run("forestry-parallel", func(b *testing.B) {
		locked := handler.NewLockedLogger(newForestryLogger())
		defer locked.Close()
		b.ResetTimer()
		b.ReportAllocs()
		b.RunParallel(func(pb *testing.PB) {
			for pb.Next() {
				locked.Log(logger.InfoLevel, "info message")
			}
		})
	})
}
