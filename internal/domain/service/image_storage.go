package service

import (
	"context"
	"errors"
	"io"
)

// ErrImageNotFound is returned by ImageStorage.Open for unknown keys.
var ErrImageNotFound = errors.New("image not found")

// ImageStorage stores product images and returns the URL they are served from.
type ImageStorage interface {
	// Upload writes the image under key and returns its public URL.
	Upload(ctx context.Context, key, contentType string, r io.Reader) (string, error)

	// Open streams a stored image back together with its content type.
	Open(ctx context.Context, key string) (io.ReadCloser, string, error)

	// Delete removes a previously uploaded image. Missing keys are not an error.
	Delete(ctx context.Context, key string) error

	// KeyFromURL returns the key of an image URL produced by Upload, or false for foreign URLs.
	KeyFromURL(url string) (string, bool)
}
