package storage

import (
	"bytes"
	"context"
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"imgresize/shared/log"
	"io"
	"mime"
	"path"
	"strings"
)

// S3 stores images in S3 compatible object storage. Locations have the form
// s3://bucket/key; s3:///key uses the default bucket.
type S3 struct {
	client        s3iface.S3API
	defaultBucket string
	logger        *zap.Logger
}

func NewS3(client s3iface.S3API, defaultBucket string, logger *zap.Logger) *S3 {
	return &S3{client: client, defaultBucket: defaultBucket, logger: logger}
}

func (s *S3) parse(location string) (bucket, key string, err error) {
	rest, ok := strings.CutPrefix(location, s3Scheme)
	if !ok {
		return "", "", errors.Errorf("not an s3 location: %s", location)
	}
	bucket, key, _ = strings.Cut(rest, "/")
	if bucket == "" {
		bucket = s.defaultBucket
	}
	if bucket == "" || key == "" {
		return "", "", errors.Errorf("s3 location needs a bucket and a key: %s", location)
	}
	return bucket, key, nil
}

func (s *S3) Open(ctx context.Context, location string) (io.ReadCloser, error) {
	bucket, key, err := s.parse(location)
	if err != nil {
		return nil, err
	}
	log.LoggerWithTrace(ctx, s.logger).Debug("Fetching object", zap.String("bucket", bucket), zap.String("key", key))

	out, err := s.client.GetObjectWithContext(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, errors.Wrapf(err, "get %s", location)
	}
	return out.Body, nil
}

func (s *S3) Save(ctx context.Context, location string, body io.Reader) error {
	bucket, key, err := s.parse(location)
	if err != nil {
		return err
	}
	data, err := io.ReadAll(body)
	if err != nil {
		return errors.Wrap(err, "read body")
	}
	log.LoggerWithTrace(ctx, s.logger).Debug("Uploading object",
		zap.String("bucket", bucket), zap.String("key", key), zap.Int("bytes", len(data)))

	input := &s3.PutObjectInput{
		Bucket:        aws.String(bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentLength: aws.Int64(int64(len(data))),
	}
	if ct := mime.TypeByExtension(path.Ext(key)); ct != "" {
		input.ContentType = aws.String(ct)
	}

	if _, err := s.client.PutObjectWithContext(ctx, input); err != nil {
		return errors.Wrapf(err, "put %s", location)
	}
	return nil
}

func (s *S3) Join(dir, name string) string {
	return strings.TrimSuffix(dir, "/") + "/" + name
}
