package qrcode

import (
	"fervo/internal/pkg/errs"

	qr "github.com/skip2/go-qrcode"
)

const DefaultSize = 256

// PNG renders content as a QR code with medium error correction.
func PNG(content string, size int) ([]byte, error) {
	if size <= 0 {
		size = DefaultSize
	}
	png, err := qr.Encode(content, qr.Medium, size)
	if err != nil {
		return nil, errs.Wrap(err, "encode qr code")
	}
	return png, nil
}
