package util

import (
	"testing"
)

func TestFormatBytes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		bytes    int64
		expected string
	}{
		{name: "zero bytes", bytes: 0, expected: "0 B"},
		{name: "bytes under kilobyte", bytes: 512, expected: "512 B"},
		{name: "exact kilobyte", bytes: 1024, expected: "1.0 KB"},
		{name: "fractional kilobyte", bytes: 1536, expected: "1.5 KB"},
		{name: "megabyte", bytes: 1024 * 1024, expected: "1.0 MB"},
		{name: "gigabyte", bytes: 5 * 1024 * 1024 * 1024, expected: "5.0 GB"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := FormatBytes(tt.bytes); got != tt.expected {
				t.Fatalf("FormatBytes(%d) = %s, want %s", tt.bytes, got, tt.expected)
			}
		})
	}
}

func TestChecksum(t *testing.T) {
	t.Parallel()

	const emptySHA256 = "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"
	if got := Checksum(nil); got != emptySHA256 {
		t.Fatalf("Checksum(nil) = %s, want %s", got, emptySHA256)
	}
	if Checksum([]byte("a")) == Checksum([]byte("b")) {
		t.Fatal("different inputs produced the same checksum")
	}
}

func TestImageExtension(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		contentType string
		filename    string
		expected    string
	}{
		{name: "png content type", contentType: "image/png", filename: "x.bin", expected: ".png"},
		{name: "jpeg with params", contentType: "image/jpeg; charset=binary", filename: "", expected: ".jpg"},
		{name: "filename fallback", contentType: "application/octet-stream", filename: "photo.PNG", expected: ".png"},
		{name: "not an image", contentType: "text/plain", filename: "notes.txt", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := ImageExtension(tt.contentType, tt.filename); got != tt.expected {
				t.Fatalf("ImageExtension(%q, %q) = %q, want %q", tt.contentType, tt.filename, got, tt.expected)
			}
		})
	}
}
