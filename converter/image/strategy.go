package image

import (
	"fmt"
	"go.uber.org/zap"
	"imgresize/converter/image/format"
)

type Strategy struct {
	m map[Type]Encoder
}

func MustStrategy(logger *zap.Logger) *Strategy {
	return &Strategy{m: map[Type]Encoder{
		JPEG: format.MustJpeg(logger),
		PNG:  format.MustPng(logger),
		GIF:  format.MustGif(logger),
		TIFF: format.MustTiff(logger),
		BMP:  format.MustBmp(logger),
		WEBP: format.MustWebp(logger),
		AVIF: format.MustAvif(logger),
	}}
}

func (s *Strategy) Apply(t Type) (Encoder, error) {
	enc, ok := s.m[t]
	if !ok {
		return nil, fmt.Errorf("no encoder for type: %s", t)
	}
	return enc, nil
}
