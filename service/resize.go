package service

import (
	"context"
	"github.com/pkg/errors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"imgresize/api/model"
	"imgresize/config"
	"imgresize/converter"
	img "imgresize/converter/image"
	"imgresize/shared/log"
	"imgresize/size"
	"imgresize/storage"
	"io"
	"mime"
)

type ResizeService struct {
	config *config.Config

	storage   storage.Storage
	converter *converter.Converter
	resampler img.Resampler
	tracer    trace.Tracer

	logger *zap.Logger
}

func NewResizeService(
	c *config.Config,
	st storage.Storage,
	conv *converter.Converter,
	resampler img.Resampler,
	logger *zap.Logger,
) *ResizeService {
	return &ResizeService{
		config:    c,
		storage:   st,
		converter: conv,
		resampler: resampler,
		tracer:    otel.Tracer("imgresize/service"),
		logger:    logger,
	}
}

type ResizeFileInput struct {
	Source    string
	OutputDir string
	Params    size.Params
	// Quality overrides the configured quality when positive.
	Quality float32
}

type ResizeFileOutput struct {
	Location string
	Original size.Size
	Size     size.Size
	Advisory size.Advisory
}

// ResizeFile resizes the image at in.Source and stores it in in.OutputDir
// under OutputName. Parameters are validated before the source is opened and
// nothing is written unless every step succeeds.
func (s *ResizeService) ResizeFile(ctx context.Context, in ResizeFileInput) (out *ResizeFileOutput, err error) {
	ctx, span := s.tracer.Start(ctx, "ResizeFile", trace.WithAttributes(
		attribute.String("source", in.Source),
		attribute.String("output_dir", in.OutputDir),
	))
	defer func() { endSpan(span, err) }()
	logger := log.LoggerWithTrace(ctx, s.logger)

	advisory, err := size.Validate(in.Params)
	if err != nil {
		return nil, err
	}

	src, err := s.storage.Open(ctx, in.Source)
	if err != nil {
		return nil, errors.Wrapf(err, "open %s", in.Source)
	}
	defer src.Close()

	var target *img.Type
	if t, err := img.MakeFromExtension(in.Source); err == nil {
		target = &t
	}

	result, err := s.converter.Convert(ctx, src, target, s.quality(in.Quality), s.plan(in.Params))
	if err != nil {
		return nil, errors.Wrapf(err, "convert %s", in.Source)
	}

	outputDir := in.OutputDir
	if outputDir == "" {
		outputDir = s.config.OutputDir
	}
	location := s.storage.Join(outputDir, storage.OutputName(in.Source, result.Size))
	if err := s.storage.Save(ctx, location, result.Body); err != nil {
		return nil, errors.Wrapf(err, "save %s", location)
	}

	span.SetAttributes(attribute.String("location", location), attribute.String("size", result.Size.String()))
	logger.Info("Image resized",
		zap.String("source", in.Source),
		zap.String("location", location),
		zap.Stringer("original", result.Original),
		zap.Stringer("size", result.Size),
		zap.Int64("bytes", result.ContentLength),
	)

	return &ResizeFileOutput{
		Location: location,
		Original: result.Original,
		Size:     result.Size,
		Advisory: advisory,
	}, nil
}

// Process resizes an image held in memory, as received by the HTTP API.
func (s *ResizeService) Process(ctx context.Context, body io.Reader, params model.ResizeRequest) (resp *model.ImageResponse, err error) {
	ctx, span := s.tracer.Start(ctx, "Process")
	defer func() { endSpan(span, err) }()
	logger := log.LoggerWithTrace(ctx, s.logger)

	p, err := params.Params()
	if err != nil {
		return nil, err
	}
	quality, err := params.QualityOr(s.config.Quality)
	if err != nil {
		return nil, err
	}

	var target *img.Type
	if params.Type != "" {
		t, err := img.MakeFromString(params.Type)
		if err != nil {
			return nil, errors.Wrap(model.ErrInvalidParam, err.Error())
		}
		target = &t
	}

	advisory, err := size.Validate(p)
	if err != nil {
		return nil, err
	}

	result, err := s.converter.Convert(ctx, body, target, quality, s.plan(p))
	if err != nil {
		return nil, err
	}

	name := params.Name
	if name == "" {
		name = "image." + result.Type.String()
	}
	fileName := storage.OutputName(name, result.Size)

	logger.Debug("Processed image", zap.String("file", fileName), zap.Stringer("size", result.Size))

	return &model.ImageResponse{
		Type:               result.Type.MIME(),
		ContentLength:      result.ContentLength,
		ContentDisposition: mime.FormatMediaType("inline", map[string]string{"filename": fileName}),
		Advisory:           advisory.String(),
		Width:              result.Size.Width,
		Height:             result.Size.Height,
		Body:               result.Body,
	}, nil
}

func (s *ResizeService) plan(p size.Params) converter.PlanFunc {
	return func(original size.Size) ([]img.Transform, error) {
		res, err := size.Resolve(original, p)
		if err != nil {
			return nil, err
		}
		return []img.Transform{img.WithSize(res.Size, s.resampler)}, nil
	}
}

func (s *ResizeService) quality(q float32) float32 {
	if q > 0 {
		return q
	}
	return s.config.Quality
}

func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}
