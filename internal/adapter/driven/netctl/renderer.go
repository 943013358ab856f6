// Package netctl implements the driven adapter that renders netctl wireless
// profiles.
package netctl

import (
	"strings"
	"unicode"

	"github.com/ericfisherdev/qrnetctl/internal/domain/model"
	"github.com/ericfisherdev/qrnetctl/internal/domain/port/driven"
)

// Compile-time check that Renderer implements the driven port.
var _ driven.ProfileRenderer = (*Renderer)(nil)

// Renderer produces netctl profile text. It holds no state and is safe for
// concurrent use.
type Renderer struct{}

// NewRenderer creates a Renderer.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// Render returns a DHCP wireless profile for c on the named interface. Lines
// are emitted in a fixed order and each ends with a newline. The Key line is
// omitted for open networks and the Hidden line for broadcast networks; when
// both are omitted a single empty line takes their place, so an open
// broadcast network always renders six lines.
func (r *Renderer) Render(interfaceName string, c model.WifiCredential) string {
	var b strings.Builder

	writeLine(&b, "Interface", interfaceName)
	writeLine(&b, "Connection", "wireless")
	writeLine(&b, "ESSID", quote(c.SSID()))
	writeLine(&b, "Security", string(c.Security()))

	optional := b.Len()
	if c.Security().RequiresKey() {
		writeLine(&b, "Key", quote(c.Password()))
	}
	if c.Hidden() {
		writeLine(&b, "Hidden", "yes")
	}
	if b.Len() == optional {
		b.WriteByte('\n')
	}

	writeLine(&b, "IP", "dhcp")

	return b.String()
}

// ProfileName returns "<interface>-<ssid>" with path separators, whitespace
// and control characters in the SSID replaced by underscores.
func (r *Renderer) ProfileName(interfaceName, ssid string) string {
	safe := strings.Map(func(ch rune) rune {
		if ch == '/' || unicode.IsSpace(ch) || unicode.IsControl(ch) {
			return '_'
		}
		return ch
	}, ssid)

	return interfaceName + "-" + safe
}

func writeLine(b *strings.Builder, key, value string) {
	b.WriteString(key)
	b.WriteByte('=')
	b.WriteString(value)
	b.WriteByte('\n')
}

// quote wraps v in single quotes, tripling any single quote inside it.
//
// netctl hands a value that starts with a double quote to wpa_supplicant
// verbatim after dropping that quote. Such values are re-wrapped as `""v"` so
// the leading double quote survives as part of the string.
func quote(v string) string {
	if strings.HasPrefix(v, `"`) {
		v = `""` + v + `"`
	}
	return "'" + strings.ReplaceAll(v, "'", "'''") + "'"
}
