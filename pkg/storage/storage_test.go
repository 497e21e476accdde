package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewKey(t *testing.T) {
	key := NewKey("video", "Clip.MP4")
	assert.True(t, strings.HasPrefix(key, "video/"))
	assert.True(t, strings.HasSuffix(key, ".mp4"))
	assert.NotEqual(t, key, NewKey("video", "Clip.MP4"))
}

func TestLocalStoragePut(t *testing.T) {
	base := t.TempDir()
	store, err := NewLocalStorage(base, zap.NewNop())
	require.NoError(t, err)

	ref, err := store.Put(context.Background(), "photo/a.jpg", strings.NewReader("jpeg"), 4, "image/jpeg")
	require.NoError(t, err)
	assert.Equal(t, "photo/a.jpg", ref)

	data, err := os.ReadFile(filepath.Join(base, "photo", "a.jpg"))
	require.NoError(t, err)
	assert.Equal(t, "jpeg", string(data))
}

func TestLocalStorageRejectsEscapingKeys(t *testing.T) {
	store, err := NewLocalStorage(t.TempDir(), zap.NewNop())
	require.NoError(t, err)

	for _, key := range []string{"../escape.jpg", "photo/../../escape.jpg", "/etc/passwd"} {
		_, err := store.Put(context.Background(), key, strings.NewReader("x"), 1, "image/jpeg")
		assert.Error(t, err, key)
	}
}
