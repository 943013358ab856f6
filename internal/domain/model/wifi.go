package model

// WifiCredential is the network described by a Wi-Fi QR code. It is built
// once with NewWifiCredential and never changes afterwards. All fields hold
// unescaped values.
type WifiCredential struct {
	ssid     string
	security Security
	password string
	hidden   bool
}

// CredentialOption overrides one of the WifiCredential defaults.
type CredentialOption func(*WifiCredential)

// WithSecurity sets the security mode. The default is SecurityNone.
func WithSecurity(s Security) CredentialOption {
	return func(c *WifiCredential) { c.security = s }
}

// WithPassword sets the network key. The default is empty.
func WithPassword(password string) CredentialOption {
	return func(c *WifiCredential) { c.password = password }
}

// WithHidden marks the network as not broadcasting its SSID.
func WithHidden(hidden bool) CredentialOption {
	return func(c *WifiCredential) { c.hidden = hidden }
}

// NewWifiCredential returns a credential for ssid with the given options
// applied over the defaults (security none, empty password, not hidden).
// Returns ErrMissingSSID if ssid is empty and ErrUnsupportedSecurity if an
// option set an unknown security mode.
func NewWifiCredential(ssid string, opts ...CredentialOption) (WifiCredential, error) {
	c := WifiCredential{
		ssid:     ssid,
		security: SecurityNone,
	}
	for _, opt := range opts {
		opt(&c)
	}

	if c.ssid == "" {
		return WifiCredential{}, ErrMissingSSID
	}
	if !c.security.IsValid() {
		return WifiCredential{}, ErrUnsupportedSecurity
	}

	return c, nil
}

// SSID returns the network name.
func (c WifiCredential) SSID() string { return c.ssid }

// Security returns the security mode.
func (c WifiCredential) Security() Security { return c.security }

// Password returns the network key. It is meaningless for open networks.
func (c WifiCredential) Password() string { return c.password }

// Hidden reports whether the network hides its SSID.
func (c WifiCredential) Hidden() bool { return c.hidden }
