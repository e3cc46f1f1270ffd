package log

import (
	"context"
	"github.com/hyperdxio/opentelemetry-go/otelzap"
	"github.com/hyperdxio/opentelemetry-logs-go/exporters/otlp/otlplogs"
	sdk "github.com/hyperdxio/opentelemetry-logs-go/sdk/logs"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"os"
)

// InitLogger builds the console logger at level. With telemetry the entries
// are also batched to the OTLP log exporter configured through the
// OTEL_EXPORTER_OTLP_* environment. The returned shutdown flushes and stops
// the log provider and must run before the process exits.
func InitLogger(ctx context.Context, level string, telemetry bool) (*zap.Logger, func(context.Context) error, error) {
	shutdown := func(context.Context) error { return nil }

	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, nil, err
	}

	consoleErrors := zapcore.Lock(os.Stderr)
	consoleEncoder := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	cores := []zapcore.Core{zapcore.NewCore(consoleEncoder, consoleErrors, lvl)}

	if telemetry {
		logExporter, err := otlplogs.NewExporter(ctx)
		if err != nil {
			return nil, nil, err
		}
		loggerProvider := sdk.NewLoggerProvider(
			sdk.WithBatcher(logExporter),
		)
		cores = append(cores, otelzap.NewOtelCore(loggerProvider))
		shutdown = func(ctx context.Context) error { return loggerProvider.Shutdown(ctx) }
	}

	return zap.New(zapcore.NewTee(cores...)), shutdown, nil
}

func LoggerWithTrace(ctx context.Context, logger *zap.Logger) *zap.Logger {
	spanContext := trace.SpanContextFromContext(ctx)
	if !spanContext.IsValid() {
		return logger
	}
	return logger.With(
		zap.String("trace_id", spanContext.TraceID().String()),
		zap.String("span_id", spanContext.SpanID().String()),
	)
}
