package wifiqr

import (
	"strings"

	"github.com/ericfisherdev/qrnetctl/internal/domain/model"
)

var escaper = strings.NewReplacer(
	`\`, `\\`,
	`;`, `\;`,
	`:`, `\:`,
	`.`, `\.`,
)

// Escape backslash-escapes the characters that are special inside a WIFI:
// field value. Parsing the result recovers s exactly.
func Escape(s string) string {
	return escaper.Replace(s)
}

// Encode returns the canonical WIFI: payload for c. Open networks use the
// "nopass" type and carry no P field.
func Encode(c model.WifiCredential) string {
	var b strings.Builder

	b.WriteString(wifiScheme)
	b.WriteString("T:")
	b.WriteString(authToken(c.Security()))
	b.WriteString(";S:")
	b.WriteString(Escape(c.SSID()))
	b.WriteByte(';')

	if c.Security().RequiresKey() {
		b.WriteString("P:")
		b.WriteString(Escape(c.Password()))
		b.WriteByte(';')
	}
	if c.Hidden() {
		b.WriteString("H:true;")
	}
	b.WriteByte(';')

	return b.String()
}

func authToken(s model.Security) string {
	switch s {
	case model.SecurityWPA:
		return "WPA"
	case model.SecurityWEP:
		return "WEP"
	default:
		return "nopass"
	}
}
