package model

// Profile is a rendered netctl profile together with the inputs it was built
// from. Content is the complete profile text.
type Profile struct {
	Name       string
	Interface  string
	Credential WifiCredential
	Content    string
}
