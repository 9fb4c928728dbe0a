// Package coldstore exports archived reservations to object storage.
package coldstore

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"path"

	appcfg "branch-reservations/internal/pkg/config"
	"branch-reservations/internal/pkg/errs"
	"branch-reservations/internal/usecase/commands"
	"branch-reservations/internal/usecase/queries"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// ObjectPutter is the subset of *s3.Client used here.
type ObjectPutter interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

type S3Exporter struct {
	client ObjectPutter
	bucket string
	prefix string
}

func NewS3Exporter(client ObjectPutter, bucket, prefix string) *S3Exporter {
	return &S3Exporter{client: client, bucket: bucket, prefix: prefix}
}

func NewS3Client(ctx context.Context, cfg appcfg.ArchiveConfig) (*s3.Client, error) {
	opts := []func(*config.LoadOptions) error{
		config.WithRegion(cfg.Region),
	}
	if cfg.AccessKey != "" {
		opts = append(opts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		))
	}

	awsCfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, errs.Wrap(err, "failed to load aws config")
	}

	return s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	}), nil
}

func (e *S3Exporter) Key(id int64) string {
	return path.Join(e.prefix, "reservations", fmt.Sprintf("%d.json", id))
}

func (e *S3Exporter) Export(ctx context.Context, view *queries.ArchivedReservationView) error {
	body, err := json.Marshal(view)
	if err != nil {
		return errs.Wrap(err, "failed to encode archived reservation")
	}

	_, err = e.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(e.bucket),
		Key:         aws.String(e.Key(view.ID)),
		Body:        bytes.NewReader(body),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return errs.Wrapf(err, "failed to upload archived reservation %d", view.ID)
	}
	return nil
}

type NoopExporter struct{}

func (NoopExporter) Export(context.Context, *queries.ArchivedReservationView) error {
	return nil
}

// New returns the S3 exporter when a bucket is configured.
func New(ctx context.Context, cfg appcfg.ArchiveConfig) (commands.ArchiveExporter, error) {
	if !cfg.Enabled() {
		return NoopExporter{}, nil
	}
	client, err := NewS3Client(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return NewS3Exporter(client, cfg.Bucket, cfg.Prefix), nil
}
