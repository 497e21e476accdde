package storage

import (
	"context"
	"fmt"
	"io"

	"cloud.google.com/go/storage"
	"google.golang.org/api/option"
)

type GCSClient struct {
	client     *storage.Client
	bucketName string
}

func NewGCSClient(ctx context.Context, bucketName, credentialsFile string) (*GCSClient, error) {
	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}
	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, err
	}

	return &GCSClient{
		client:     client,
		bucketName: bucketName,
	}, nil
}

// Put streams r to the bucket and returns the public object URL
func (c *GCSClient) Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) (string, error) {
	writer := c.client.Bucket(c.bucketName).Object(key).NewWriter(ctx)
	writer.ContentType = contentType

	if _, err := io.Copy(writer, r); err != nil {
		writer.Close()
		return "", fmt.Errorf("failed to upload %s to gcs: %w", key, err)
	}
	// the object is only committed on Close
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("failed to upload %s to gcs: %w", key, err)
	}

	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", c.bucketName, key), nil
}

// Close releases the underlying client
func (c *GCSClient) Close() error {
	return c.client.Close()
}
