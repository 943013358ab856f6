package model

import (
	"fmt"
	"strings"
)

// Security represents the netctl security mode of a wireless network.
type Security string

const (
	SecurityWPA  Security = "wpa"
	SecurityWEP  Security = "wep"
	SecurityNone Security = "none"
)

// ParseSecurity maps a QR code authentication type token to a Security.
// Matching is case-insensitive. An empty token and "nopass" both mean an open
// network. WPA2, WPA3 and SAE are handled by netctl's wpa mode.
func ParseSecurity(token string) (Security, error) {
	switch strings.ToUpper(token) {
	case "", "NOPASS":
		return SecurityNone, nil
	case "WPA", "WPA2", "WPA3", "SAE":
		return SecurityWPA, nil
	case "WEP":
		return SecurityWEP, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedSecurity, token)
	}
}

// IsValid reports whether s is one of the known security modes.
func (s Security) IsValid() bool {
	switch s {
	case SecurityWPA, SecurityWEP, SecurityNone:
		return true
	default:
		return false
	}
}

// RequiresKey reports whether a profile for this mode carries a key.
func (s Security) RequiresKey() bool {
	return s != SecurityNone
}
