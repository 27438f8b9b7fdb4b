package storage

import (
	"context"
	"io"
	"strings"
	"testing"

	"curator/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

func TestBlobStorage_RoundTrip(t *testing.T) {
	ctx := context.Background()
	bucket := memblob.OpenBucket(nil)
	defer bucket.Close()

	storage := NewBlobStorage(bucket, "https://cdn.example.com/images/")

	url, err := storage.Upload(ctx, "products/p1/abc.png", "image/png", strings.NewReader("png-bytes"))
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/images/products/p1/abc.png", url)

	key, ok := storage.KeyFromURL(url)
	require.True(t, ok)
	assert.Equal(t, "products/p1/abc.png", key)

	r, contentType, err := storage.Open(ctx, key)
	require.NoError(t, err)
	defer r.Close()
	data, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(data))
	assert.Equal(t, "image/png", contentType)

	require.NoError(t, storage.Delete(ctx, key))
	_, _, err = storage.Open(ctx, key)
	assert.ErrorIs(t, err, service.ErrImageNotFound)

	assert.NoError(t, storage.Delete(ctx, key), "deleting a missing key is not an error")
}

func TestBlobStorage_KeyFromForeignURL(t *testing.T) {
	bucket := memblob.OpenBucket(nil)
	defer bucket.Close()

	storage := NewBlobStorage(bucket, "https://cdn.example.com/images")

	_, ok := storage.KeyFromURL("https://elsewhere.example.com/logo.png")
	assert.False(t, ok)

	_, ok = storage.KeyFromURL("https://cdn.example.com/images/")
	assert.False(t, ok)
}
