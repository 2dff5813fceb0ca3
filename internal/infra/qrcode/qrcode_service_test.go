package qrcode

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/skip2/go-qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectURL(t *testing.T) {
	svc := newQRCodeService(128, "M", "https://portfolio.dev/")

	assert.Equal(t, "https://portfolio.dev/projects/iot-hub", svc.ProjectURL("iot-hub"))
}

func TestProjectQR_RendersPNG(t *testing.T) {
	svc := newQRCodeService(128, "H", "https://portfolio.dev")

	data, err := svc.ProjectQR("iot-hub")
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 128, img.Bounds().Dx())
}

func TestParseRecoveryLevel(t *testing.T) {
	tests := map[string]qrcode.RecoveryLevel{
		"L":       qrcode.Low,
		"low":     qrcode.Low,
		"M":       qrcode.Medium,
		"":        qrcode.Medium,
		"Q":       qrcode.High,
		"H":       qrcode.Highest,
		"highest": qrcode.Highest,
		"bogus":   qrcode.Medium,
	}

	for input, want := range tests {
		t.Run(input, func(t *testing.T) {
			assert.Equal(t, want, parseRecoveryLevel(input))
		})
	}
}

func TestNewQRCodeService_DefaultSize(t *testing.T) {
	svc := newQRCodeService(0, "", "http://localhost")

	assert.Equal(t, 256, svc.size)
}
