package model

import (
	"github.com/pkg/errors"
	"imgresize/size"
	"io"
	"strconv"
	"strings"
)

// ErrInvalidParam marks a query value that is not a number.
var ErrInvalidParam = errors.New("invalid parameter")

type ResizeRequest struct {
	Width   string `query:"width"`
	Height  string `query:"height"`
	Scale   string `query:"scale"`
	Quality string `query:"quality"`
	Type    string `query:"type"`
	Name    string `query:"name"`
}

type ImageResponse struct {
	Type               string
	ContentLength      int64
	ContentDisposition string
	Advisory           string
	Width              int
	Height             int

	Body io.Reader
}

// Params converts the query strings into sizing parameters. Empty values are
// left unset; values that are present but not numbers are rejected.
func (r ResizeRequest) Params() (size.Params, error) {
	var p size.Params

	if v := strings.TrimSpace(r.Width); v != "" {
		w, err := strconv.Atoi(v)
		if err != nil {
			return size.Params{}, errors.Wrapf(ErrInvalidParam, "width %q", r.Width)
		}
		p.Width = &w
	}
	if v := strings.TrimSpace(r.Height); v != "" {
		h, err := strconv.Atoi(v)
		if err != nil {
			return size.Params{}, errors.Wrapf(ErrInvalidParam, "height %q", r.Height)
		}
		p.Height = &h
	}
	if v := strings.TrimSpace(r.Scale); v != "" {
		s, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return size.Params{}, errors.Wrapf(ErrInvalidParam, "scale %q", r.Scale)
		}
		p.Scale = &s
	}

	return p, nil
}

// QualityOr returns the requested quality, or def when none was given.
func (r ResizeRequest) QualityOr(def float32) (float32, error) {
	v := strings.TrimSpace(r.Quality)
	if v == "" {
		return def, nil
	}
	q, err := strconv.ParseFloat(v, 32)
	if err != nil || q < 1 || q > 100 {
		return 0, errors.Wrapf(ErrInvalidParam, "quality %q", r.Quality)
	}
	return float32(q), nil
}
