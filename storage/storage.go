package storage

import (
	"context"
	"github.com/pkg/errors"
	"io"
	"strings"
)

// ErrS3NotConfigured is returned for s3:// locations when no S3 client was configured.
var ErrS3NotConfigured = errors.New("s3 location given but S3 is not configured")

const s3Scheme = "s3://"

// Storage reads source images and writes resized ones. Locations are backend
// specific: file paths for Local, s3://bucket/key for S3.
type Storage interface {
	Open(ctx context.Context, location string) (io.ReadCloser, error)
	Save(ctx context.Context, location string, body io.Reader) error
	Join(dir, name string) string
}

// Router sends s3:// locations to the remote backend and everything else to local.
type Router struct {
	local  Storage
	remote Storage
}

// NewRouter returns a Router. remote may be nil when S3 is not configured.
func NewRouter(local, remote Storage) *Router {
	return &Router{local: local, remote: remote}
}

func (r *Router) backend(location string) (Storage, error) {
	if !strings.HasPrefix(location, s3Scheme) {
		return r.local, nil
	}
	if r.remote == nil {
		return nil, ErrS3NotConfigured
	}
	return r.remote, nil
}

func (r *Router) Open(ctx context.Context, location string) (io.ReadCloser, error) {
	b, err := r.backend(location)
	if err != nil {
		return nil, err
	}
	return b.Open(ctx, location)
}

func (r *Router) Save(ctx context.Context, location string, body io.Reader) error {
	b, err := r.backend(location)
	if err != nil {
		return err
	}
	return b.Save(ctx, location, body)
}

func (r *Router) Join(dir, name string) string {
	if strings.HasPrefix(dir, s3Scheme) {
		return strings.TrimSuffix(dir, "/") + "/" + name
	}
	return r.local.Join(dir, name)
}
