package storage

import (
	"context"
	"github.com/pkg/errors"
	"io"
	"os"
	"path/filepath"
)

// Local stores images on the local filesystem.
type Local struct{}

func NewLocal() *Local {
	return &Local{}
}

func (l *Local) Open(_ context.Context, location string) (io.ReadCloser, error) {
	f, err := os.Open(location)
	if err != nil {
		return nil, err
	}
	return f, nil
}

func (l *Local) Save(_ context.Context, location string, body io.Reader) error {
	return AtomicWrite(location, body)
}

func (l *Local) Join(dir, name string) string {
	return filepath.Join(dir, name)
}

// AtomicWrite writes data to path through a temp file in the same directory,
// so readers never observe a partial file.
func AtomicWrite(path string, data io.Reader) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrap(err, "ensure dir")
	}

	tmp, err := os.CreateTemp(dir, ".tmp-*")
	if err != nil {
		return errors.Wrap(err, "create temp file")
	}
	tmpName := tmp.Name()
	defer func() {
		tmp.Close()
		os.Remove(tmpName)
	}()

	if _, err := io.Copy(tmp, data); err != nil {
		return errors.Wrap(err, "write temp file")
	}
	if err := tmp.Sync(); err != nil {
		return errors.Wrap(err, "sync temp file")
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrap(err, "close temp file")
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		return errors.Wrap(err, "chmod temp file")
	}

	if err := os.Rename(tmpName, path); err != nil {
		return errors.Wrap(err, "rename temp to final")
	}
	return nil
}
