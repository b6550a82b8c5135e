package publish

import (
	"bytes"
	"context"
	"fmt"
	"path"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"

	"github.com/df07/go-pathtracer/pkg/config"
	"github.com/df07/go-pathtracer/pkg/core"
)

// Uploader puts rendered PNGs into an S3-compatible bucket
type Uploader struct {
	client s3iface.S3API
	bucket string
	prefix string
	logger core.Logger
}

// NewUploader creates an uploader from the S3 settings.
// Static credentials are used when an access key is configured, otherwise
// the SDK's default credential chain applies.
func NewUploader(cfg config.S3Config, logger core.Logger) (*Uploader, error) {
	if !cfg.Enabled() {
		return nil, fmt.Errorf("S3 upload requires S3_BUCKET")
	}

	awsConfig := &aws.Config{
		Region: aws.String(cfg.Region),
	}
	if cfg.Endpoint != "" {
		awsConfig.Endpoint = aws.String(cfg.Endpoint)
		awsConfig.S3ForcePathStyle = aws.Bool(true)
	}
	if cfg.AccessKey != "" {
		awsConfig.Credentials = credentials.NewStaticCredentials(cfg.AccessKey, cfg.SecretKey, "")
	}

	sess, err := session.NewSession(awsConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create S3 session: %w", err)
	}

	return NewUploaderWithClient(s3.New(sess), cfg.Bucket, logger), nil
}

// NewUploaderWithClient wraps an existing S3 client
func NewUploaderWithClient(client s3iface.S3API, bucket string, logger core.Logger) *Uploader {
	return &Uploader{
		client: client,
		bucket: bucket,
		prefix: "renders",
		logger: logger,
	}
}

// UploadPNG stores data under renders/<name> and returns the object key
func (u *Uploader) UploadPNG(ctx context.Context, name string, data []byte) (string, error) {
	key := path.Join(u.prefix, name)

	_, err := u.client.PutObjectWithContext(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(u.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentLength: aws.Int64(int64(len(data))),
		ContentType:   aws.String("image/png"),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload %s to bucket %s: %w", key, u.bucket, err)
	}

	if u.logger != nil {
		u.logger.Printf("Uploaded %d bytes to s3://%s/%s\n", len(data), u.bucket, key)
	}
	return key, nil
}
