package storage

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/google/uuid"
)

// Upload describes a single incoming file stream.
type Upload struct {
	Field       string
	Filename    string
	ContentType string
	Size        int64
	Body        io.Reader
}

// Uploader stores a file and returns its publicly resolvable URL.
type Uploader interface {
	Upload(ctx context.Context, up Upload) (string, error)
}

// S3Uploader stores uploads in a public-read S3 bucket.
type S3Uploader struct {
	client *s3.Client
	bucket string
	region string
}

func NewS3Uploader(awsCfg aws.Config, bucket string) *S3Uploader {
	return &S3Uploader{
		client: s3.NewFromConfig(awsCfg),
		bucket: bucket,
		region: awsCfg.Region,
	}
}

func (u *S3Uploader) Upload(ctx context.Context, up Upload) (string, error) {
	key := ObjectKey(up.Field, up.Filename)

	input := &s3.PutObjectInput{
		Bucket: aws.String(u.bucket),
		Key:    aws.String(key),
		Body:   up.Body,
		ACL:    types.ObjectCannedACLPublicRead,
	}
	if up.ContentType != "" {
		input.ContentType = aws.String(up.ContentType)
	}
	if up.Size > 0 {
		input.ContentLength = aws.Int64(up.Size)
	}

	if _, err := u.client.PutObject(ctx, input); err != nil {
		return "", fmt.Errorf("s3 put object: %w", err)
	}

	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", u.bucket, u.region, key), nil
}

// ObjectKey names an upload `{field}-{uuid}{ext}`. A uuid rather than a
// timestamp keeps two uploads of the same filename in the same millisecond
// from colliding.
func ObjectKey(field, filename string) string {
	if field == "" {
		field = "file"
	}
	ext := strings.ToLower(path.Ext(filename))
	return fmt.Sprintf("%s-%s%s", field, uuid.NewString(), ext)
}
