// Package qrcode renders questionnaire share links as QR codes.
package qrcode

import (
	"net/url"
	"strings"

	"curator/config"
	"curator/internal/domain/service"
	"curator/internal/errors"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
)

const (
	defaultSize    = 256
	defaultBaseURL = "http://localhost:3000"
	sharePathPart  = "q"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel, baseURL string) service.QRCodeService {
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	if size <= 0 {
		size = defaultSize
	}
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
		baseURL:              strings.TrimRight(baseURL, "/"),
	}
}

// New builds the service from the qrcode config section.
func New(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		return NewQRCodeService(defaultSize, "M", defaultBaseURL)
	}

	return NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel, cfg.QRCode.BaseURL)
}

// ShareURL returns <baseUrl>/q/<id>.
func (s *qrcodeService) ShareURL(questionnaireID uuid.UUID) string {
	return s.baseURL + "/" + sharePathPart + "/" + questionnaireID.String()
}

// GenerateShareQR renders the share URL as a PNG
func (s *qrcodeService) GenerateShareQR(questionnaireID uuid.UUID) ([]byte, error) {
	qrCode, err := qrcode.New(s.ShareURL(questionnaireID), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}

// ParseShareURL accepts any share link whose path ends in /q/<id>, regardless of host.
func (s *qrcodeService) ParseShareURL(data string) (uuid.UUID, error) {
	u, err := url.Parse(strings.TrimSpace(data))
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "failed to parse share URL")
	}

	segments := strings.Split(strings.Trim(u.Path, "/"), "/")
	if len(segments) < 2 || segments[len(segments)-2] != sharePathPart {
		return uuid.Nil, errors.Errorf("not a questionnaire share URL: %s", data)
	}

	questionnaireID, err := uuid.Parse(segments[len(segments)-1])
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "failed to parse questionnaire ID")
	}

	return questionnaireID, nil
}
