package qrcode

import (
	"bytes"
	"image/png"
	"testing"

	"curator/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQRCodeService(t *testing.T) {
	tests := []struct {
		name                 string
		size                 int
		errorCorrectionLevel string
	}{
		{"Low error correction", 256, "L"},
		{"Medium error correction", 256, "M"},
		{"High error correction", 256, "Q"},
		{"Highest error correction", 256, "H"},
		{"Default error correction", 256, "invalid"},
		{"Default size", 0, "M"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(tt.size, tt.errorCorrectionLevel, "https://curator.example.com")
			assert.NotNil(t, service)
		})
	}
}

func TestQRCodeService_ShareURL(t *testing.T) {
	id := uuid.MustParse("3f1d3c2a-7a36-4a42-9c1e-0d2d5b6b7a10")

	service := NewQRCodeService(256, "M", "https://curator.example.com/")
	assert.Equal(t, "https://curator.example.com/q/3f1d3c2a-7a36-4a42-9c1e-0d2d5b6b7a10", service.ShareURL(id))

	fallback := New(&config.Config{})
	assert.Equal(t, "http://localhost:3000/q/3f1d3c2a-7a36-4a42-9c1e-0d2d5b6b7a10", fallback.ShareURL(id))
}

func TestQRCodeService_GenerateShareQR(t *testing.T) {
	tests := []struct {
		name string
		size int
	}{
		{"Small", 128},
		{"Medium", 256},
		{"Large", 512},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(tt.size, "M", "https://curator.example.com")

			qrBytes, err := service.GenerateShareQR(uuid.New())
			require.NoError(t, err)

			img, err := png.Decode(bytes.NewReader(qrBytes))
			require.NoError(t, err)
			assert.Equal(t, tt.size, img.Bounds().Dx())
		})
	}
}

func TestQRCodeService_ParseShareURL(t *testing.T) {
	service := NewQRCodeService(256, "M", "https://curator.example.com")
	id := uuid.New()

	t.Run("round trip", func(t *testing.T) {
		parsed, err := service.ParseShareURL(service.ShareURL(id))
		require.NoError(t, err)
		assert.Equal(t, id, parsed)
	})

	t.Run("other host", func(t *testing.T) {
		parsed, err := service.ParseShareURL("https://staging.example.com/q/" + id.String())
		require.NoError(t, err)
		assert.Equal(t, id, parsed)
	})

	invalid := []string{
		"",
		"https://curator.example.com/p/" + id.String(),
		"https://curator.example.com/q/not-a-uuid",
		"https://curator.example.com/",
	}
	for _, data := range invalid {
		t.Run("invalid "+data, func(t *testing.T) {
			_, err := service.ParseShareURL(data)
			assert.Error(t, err)
		})
	}
}
