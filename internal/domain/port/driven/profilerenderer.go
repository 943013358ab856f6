package driven

import "github.com/ericfisherdev/qrnetctl/internal/domain/model"

// ProfileRenderer defines the driven port for serializing credentials into a
// network profile.
type ProfileRenderer interface {
	// Render returns the profile text for the credential on the named interface.
	Render(interfaceName string, c model.WifiCredential) string

	// ProfileName returns the conventional profile name for the pair.
	ProfileName(interfaceName, ssid string) string
}
