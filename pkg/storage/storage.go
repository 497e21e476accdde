// Package storage uploads post media to a blob store. The returned reference
// is what posts carry as their media_ref.
package storage

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/google/uuid"
)

// MediaStore stores media objects under a key and returns a reference to them
type MediaStore interface {
	Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) (string, error)
}

// NewKey builds a unique object key under prefix, keeping the extension of filename
func NewKey(prefix, filename string) string {
	ext := strings.ToLower(path.Ext(filename))
	return fmt.Sprintf("%s/%s%s", prefix, uuid.NewString(), ext)
}
