package driven

import "github.com/ericfisherdev/qrnetctl/internal/domain/model"

// PayloadParser defines the driven port for decoding QR code text into Wi-Fi
// credentials.
type PayloadParser interface {
	// Parse decodes a raw QR payload. Returns (nil, nil) when the payload is
	// not a Wi-Fi code. Returns an error wrapping model.ErrInvalidPayload when
	// the payload is a Wi-Fi code that cannot be decoded.
	Parse(raw []byte) (*model.WifiCredential, error)
}
