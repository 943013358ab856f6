// Package wifiqr implements the driven adapter that decodes the WIFI: QR code
// payload format.
package wifiqr

import (
	"fmt"
	"strings"

	"github.com/ericfisherdev/qrnetctl/internal/domain/model"
	"github.com/ericfisherdev/qrnetctl/internal/domain/port/driven"
)

const (
	// scannerPrefix is prepended by zbarimg-style scanners to every decoded code.
	scannerPrefix = "QR-Code:"
	wifiScheme    = "WIFI:"
)

// Compile-time check that Parser implements the driven port.
var _ driven.PayloadParser = (*Parser)(nil)

// Parser decodes WIFI: payloads. It holds no state and is safe for
// concurrent use.
type Parser struct{}

// NewParser creates a Parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse decodes one scanned QR payload. A trailing line break and the
// optional "QR-Code:" scanner prefix are ignored. Returns (nil, nil) if the
// payload does not use the WIFI: scheme.
//
// Fields may appear in any order and unknown keys are skipped. A repeated key
// replaces the earlier value. The payload is rejected with an error wrapping
// model.ErrInvalidPayload when the SSID is missing or empty, or when the T
// field holds an unknown authentication type.
func (p *Parser) Parse(raw []byte) (*model.WifiCredential, error) {
	text := strings.TrimRight(string(raw), "\r\n")
	text = strings.TrimPrefix(text, scannerPrefix)

	if len(text) < len(wifiScheme) || !strings.EqualFold(text[:len(wifiScheme)], wifiScheme) {
		return nil, nil
	}

	var (
		ssid, password, authType string
		hidden                   bool
	)
	for _, f := range splitFields(text[len(wifiScheme):]) {
		switch f.key {
		case "T":
			authType = f.value
		case "S":
			ssid = f.value
		case "P":
			password = f.value
		case "H":
			hidden = true
		}
	}

	security, err := model.ParseSecurity(authType)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", model.ErrInvalidPayload, err)
	}

	cred, err := model.NewWifiCredential(ssid,
		model.WithSecurity(security),
		model.WithPassword(password),
		model.WithHidden(hidden),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", model.ErrInvalidPayload, err)
	}

	return &cred, nil
}

// field is one key:value segment with escapes already resolved. A segment
// without an unescaped colon is stored as a key with an empty value.
type field struct {
	key   string
	value string
}

// splitFields scans the body of a WIFI: payload into fields. Segments are
// separated by unescaped semicolons and the record ends at the first empty
// segment or at the end of input. Each segment splits at its first unescaped
// colon.
//
// A backslash escapes the following ';', ':', '.' or '\'. Any other
// backslash, including a trailing one, is kept as literal text.
func splitFields(s string) []field {
	var (
		fields   []field
		buf      strings.Builder
		key      string
		hasKey   bool
		escaped  bool
		segStart int
	)

	for i := 0; i < len(s); i++ {
		c := s[i]

		if escaped {
			if !isEscapable(c) {
				buf.WriteByte('\\')
			}
			buf.WriteByte(c)
			escaped = false
			continue
		}

		switch {
		case c == '\\':
			escaped = true
		case c == ':' && !hasKey:
			key = buf.String()
			hasKey = true
			buf.Reset()
		case c == ';':
			if i == segStart {
				return fields
			}
			fields = append(fields, newField(key, hasKey, buf.String()))
			key, hasKey = "", false
			buf.Reset()
			segStart = i + 1
		default:
			buf.WriteByte(c)
		}
	}

	if escaped {
		buf.WriteByte('\\')
	}
	if segStart < len(s) {
		fields = append(fields, newField(key, hasKey, buf.String()))
	}

	return fields
}

func newField(key string, hasKey bool, text string) field {
	if !hasKey {
		return field{key: text}
	}
	return field{key: key, value: text}
}

func isEscapable(c byte) bool {
	return c == ';' || c == ':' || c == '.' || c == '\\'
}
