package service

import (
	"github.com/google/uuid"
)

// QRCodeService defines the interface for questionnaire share QR codes
type QRCodeService interface {
	// ShareURL returns the public link customers use to open a questionnaire
	ShareURL(questionnaireID uuid.UUID) string

	// GenerateShareQR renders the share link of a questionnaire as a PNG QR code
	GenerateShareQR(questionnaireID uuid.UUID) ([]byte, error)

	// ParseShareURL extracts the questionnaire ID from a scanned share link
	ParseShareURL(data string) (uuid.UUID, error)
}
