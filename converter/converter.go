package converter

import (
	"context"
	"go.uber.org/zap"
	img "imgresize/converter/image"
	"imgresize/shared/log"
	"imgresize/size"
	"io"
)

// PlanFunc receives the decoded image's size and returns the transforms to apply.
type PlanFunc func(original size.Size) ([]img.Transform, error)

type Converter struct {
	strategy   *img.Strategy
	autoOrient bool

	logger *zap.Logger
}

type Result struct {
	Body          io.Reader
	ContentLength int64
	Type          img.Type
	Original      size.Size
	Size          size.Size
}

func New(strategy *img.Strategy, autoOrient bool, logger *zap.Logger) *Converter {
	return &Converter{strategy: strategy, autoOrient: autoOrient, logger: logger}
}

// Convert decodes reader, applies the transforms plan returns and encodes the
// result as target, or in the source format when target is nil.
func (c *Converter) Convert(ctx context.Context, reader io.Reader, target *img.Type, quality float32, plan PlanFunc) (*Result, error) {
	logger := log.LoggerWithTrace(ctx, c.logger)

	ci, err := img.Decode(reader, c.autoOrient)
	if err != nil {
		logger.Error("Error decoding image", zap.Error(err))
		return nil, err
	}
	original := ci.Size()

	t := ci.Format()
	if target != nil {
		t = *target
	}
	enc, err := c.strategy.Apply(t)
	if err != nil {
		return nil, err
	}

	transforms, err := plan(original)
	if err != nil {
		return nil, err
	}
	if err := ci.Transform(transforms...); err != nil {
		logger.Error("Error transforming image", zap.Error(err))
		return nil, err
	}

	body, n, err := ci.Encode(ctx, enc, quality)
	if err != nil {
		return nil, err
	}

	logger.Debug("Converted image",
		zap.Stringer("type", t),
		zap.Stringer("original", original),
		zap.Stringer("size", ci.Size()),
		zap.Int64("bytes", n),
	)

	return &Result{
		Body:          body,
		ContentLength: n,
		Type:          t,
		Original:      original,
		Size:          ci.Size(),
	}, nil
}
