package cli

import (
	"context"
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/hyperdxio/otel-config-go/otelconfig"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"imgresize/config"
	"imgresize/converter"
	img "imgresize/converter/image"
	"imgresize/service"
	"imgresize/shared/log"
	"imgresize/shared/trace"
	"imgresize/storage"
	"io"
)

// runtime holds what every command needs once flags are parsed.
type runtime struct {
	configPath string
	stderr     io.Writer

	cfg     *config.Config
	logger  *zap.Logger
	service *service.ResizeService

	closers []func(context.Context)
}

func (rt *runtime) setup(ctx context.Context) error {
	cfg, err := config.Load(rt.configPath)
	if err != nil {
		return err
	}
	rt.cfg = cfg

	if cfg.TelemetryEnabled {
		otelShutdown, err := otelconfig.ConfigureOpenTelemetry()
		if err != nil {
			return errors.Wrap(err, "configure OpenTelemetry")
		}
		rt.closers = append(rt.closers, func(context.Context) { otelShutdown() })
	}

	logger, logShutdown, err := log.InitLogger(ctx, cfg.LogLevel, cfg.TelemetryEnabled)
	if err != nil {
		return errors.Wrap(err, "init logger")
	}
	rt.logger = logger
	rt.closers = append(rt.closers, func(ctx context.Context) {
		_ = logger.Sync()
		if err := logShutdown(ctx); err != nil {
			logger.Error("Error shutting down logger provider", zap.Error(err))
		}
	})

	if cfg.TraceEnabled {
		tp, err := trace.InitTrace(rt.stderr)
		if err != nil {
			return errors.Wrap(err, "init trace")
		}
		rt.closers = append(rt.closers, func(ctx context.Context) {
			if err := tp.Shutdown(ctx); err != nil {
				logger.Error("Error shutting down tracer provider", zap.Error(err))
			}
		})
	}

	resampler, err := img.NewResampler(cfg.Engine, cfg.Filter)
	if err != nil {
		return err
	}

	st, err := newStorage(cfg, logger)
	if err != nil {
		return err
	}

	conv := converter.New(img.MustStrategy(logger), cfg.AutoOrient, logger)
	rt.service = service.NewResizeService(cfg, st, conv, resampler, logger)
	return nil
}

// close runs the registered closers in reverse order.
func (rt *runtime) close(ctx context.Context) {
	for i := len(rt.closers) - 1; i >= 0; i-- {
		rt.closers[i](ctx)
	}
	rt.closers = nil
}

func newStorage(cfg *config.Config, logger *zap.Logger) (storage.Storage, error) {
	if !cfg.S3Enabled() {
		return storage.NewRouter(storage.NewLocal(), nil), nil
	}

	awsConfig := &aws.Config{
		Region:           aws.String(cfg.S3Region),
		S3ForcePathStyle: aws.Bool(cfg.S3ForcePathStyle),
	}
	if cfg.S3Endpoint != "" {
		awsConfig.Endpoint = aws.String(cfg.S3Endpoint)
	}
	if cfg.S3AccessKey != "" {
		awsConfig.Credentials = credentials.NewStaticCredentials(cfg.S3AccessKey, cfg.S3SecretKey, "")
	}

	awsSession, err := session.NewSession(awsConfig)
	if err != nil {
		return nil, errors.Wrap(err, "create aws session")
	}

	remote := storage.NewS3(s3.New(awsSession), cfg.S3Bucket, logger.Named("s3"))
	return storage.NewRouter(storage.NewLocal(), remote), nil
}
