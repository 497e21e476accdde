package storage

import (
	"context"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
)

type S3Client struct {
	uploader *s3manager.Uploader
	bucket   string
}

func NewS3Client(region, bucket string) (*S3Client, error) {
	sess, err := session.NewSession(&aws.Config{
		Region: aws.String(region),
	})
	if err != nil {
		return nil, err
	}

	return &S3Client{
		uploader: s3manager.NewUploader(sess),
		bucket:   bucket,
	}, nil
}

// Put streams r to the bucket and returns the object URL
func (c *S3Client) Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) (string, error) {
	out, err := c.uploader.UploadWithContext(ctx, &s3manager.UploadInput{
		Bucket:      aws.String(c.bucket),
		Key:         aws.String(key),
		Body:        r,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload %s to s3: %w", key, err)
	}

	if out.Location != "" {
		return out.Location, nil
	}
	return fmt.Sprintf("https://%s.s3.amazonaws.com/%s", c.bucket, key), nil
}
