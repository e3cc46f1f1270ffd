package format

import (
	"bytes"
	"context"
	"fmt"
	"github.com/disintegration/imaging"
	"go.uber.org/zap"
	"image"
	"imgresize/shared/log"
	"io"
)

// Lossless encodes the quality-less formats imaging writes natively: gif, tiff and bmp.
type Lossless struct {
	format imaging.Format
	logger *zap.Logger
}

func MustGif(logger *zap.Logger) *Lossless {
	return &Lossless{format: imaging.GIF, logger: logger}
}

func MustTiff(logger *zap.Logger) *Lossless {
	return &Lossless{format: imaging.TIFF, logger: logger}
}

func MustBmp(logger *zap.Logger) *Lossless {
	return &Lossless{format: imaging.BMP, logger: logger}
}

func (w *Lossless) Encode(ctx context.Context, img image.Image, _ float32) (io.Reader, int64, error) {
	logger := log.LoggerWithTrace(ctx, w.logger)
	logger.Debug(fmt.Sprintf("Converting image to %s", w.format))

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, w.format); err != nil {
		logger.Error(fmt.Sprintf("Error converting image to %s", w.format), zap.Error(err))
		return nil, 0, err
	}

	return &buf, int64(buf.Len()), nil
}
