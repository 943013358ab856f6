package model

import "errors"

// Domain errors for Wi-Fi payloads and netctl profiles.
var (
	ErrInvalidPayload       = errors.New("invalid wifi payload")
	ErrNoWifiPayload        = errors.New("payload does not contain wifi credentials")
	ErrMissingSSID          = errors.New("missing ssid")
	ErrUnsupportedSecurity  = errors.New("unsupported security type")
	ErrInvalidInterfaceName = errors.New("invalid interface name")
	ErrUnsafeValue          = errors.New("value contains a line break or NUL")
)
