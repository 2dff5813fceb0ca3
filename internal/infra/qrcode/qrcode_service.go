package qrcode

import (
	"strings"

	"portfolio/config"
	"portfolio/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(cfg *config.Config) service.QRCodeService {
	qr := cfg.QRCode
	if qr == nil {
		qr = &config.QRCodeConfig{}
	}

	return newQRCodeService(qr.Size, qr.ErrorCorrectionLevel, qr.BaseURL)
}

func newQRCodeService(size int, errorCorrectionLevel, baseURL string) *qrcodeService {
	if size <= 0 {
		size = 256
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: parseRecoveryLevel(errorCorrectionLevel),
		baseURL:              strings.TrimRight(baseURL, "/"),
	}
}

func parseRecoveryLevel(level string) qrcode.RecoveryLevel {
	switch strings.ToUpper(level) {
	case "L", "LOW":
		return qrcode.Low
	case "Q", "HIGH":
		return qrcode.High
	case "H", "HIGHEST":
		return qrcode.Highest
	default:
		return qrcode.Medium
	}
}

// ProjectURL builds the public page link for slug.
func (s *qrcodeService) ProjectURL(slug string) string {
	return s.baseURL + "/projects/" + slug
}

// ProjectQR renders ProjectURL(slug) as a PNG.
func (s *qrcodeService) ProjectQR(slug string) ([]byte, error) {
	qrCode, err := qrcode.New(s.ProjectURL(slug), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}
