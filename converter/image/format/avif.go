package format

import (
	"bytes"
	"context"
	"fmt"
	"github.com/gen2brain/avif"
	"go.uber.org/zap"
	"image"
	"imgresize/shared/log"
	"io"
)

// AvifSpeed trades encoding time for size, 0 (slowest) to 10 (fastest).
const AvifSpeed = 8

type Avif struct {
	logger *zap.Logger
}

func MustAvif(logger *zap.Logger) *Avif {
	return &Avif{logger: logger}
}

func (w *Avif) Encode(ctx context.Context, img image.Image, quality float32) (io.Reader, int64, error) {
	logger := log.LoggerWithTrace(ctx, w.logger)

	q := clampQuality(quality)
	logger.Debug(fmt.Sprintf("Converting image to avif with quality: %d", q))

	var buf bytes.Buffer
	if err := avif.Encode(&buf, img, avif.Options{Quality: q, QualityAlpha: q, Speed: AvifSpeed}); err != nil {
		logger.Error("Error converting image to avif", zap.Error(err))
		return nil, 0, err
	}

	return &buf, int64(buf.Len()), nil
}
