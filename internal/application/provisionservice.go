package application

import (
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/ericfisherdev/qrnetctl/internal/domain/model"
	"github.com/ericfisherdev/qrnetctl/internal/domain/port/driven"
)

// maxInterfaceNameLen is IFNAMSIZ minus the trailing NUL.
const maxInterfaceNameLen = 15

var interfaceNameRegex = regexp.MustCompile(`^[a-zA-Z0-9._-]+$`)

// ProvisionService turns scanned Wi-Fi QR payloads into netctl profiles. It
// depends only on port interfaces and is safe for concurrent use.
type ProvisionService struct {
	parser   driven.PayloadParser
	renderer driven.ProfileRenderer
	metrics  driven.MetricsRecorder
	logger   *slog.Logger
}

// NewProvisionService creates a ProvisionService. metrics may be nil.
func NewProvisionService(
	parser driven.PayloadParser,
	renderer driven.ProfileRenderer,
	metrics driven.MetricsRecorder,
	logger *slog.Logger,
) *ProvisionService {
	if metrics == nil {
		metrics = nopRecorder{}
	}
	return &ProvisionService{
		parser:   parser,
		renderer: renderer,
		metrics:  metrics,
		logger:   logger,
	}
}

// Parse decodes a raw QR payload. Returns (nil, nil) when the payload is not a
// Wi-Fi code.
func (s *ProvisionService) Parse(raw []byte) (*model.WifiCredential, error) {
	cred, err := s.parser.Parse(raw)
	if err != nil {
		s.metrics.PayloadParsed(driven.OutcomeInvalid)
		s.logger.Debug("rejected wifi payload", "error", err)
		return nil, err
	}

	if cred == nil {
		s.metrics.PayloadParsed(driven.OutcomeNoMatch)
		s.logger.Debug("payload is not a wifi code", "bytes", len(raw))
		return nil, nil
	}

	s.metrics.PayloadParsed(driven.OutcomeWifi)
	s.logger.Debug("parsed wifi payload",
		"ssid", cred.SSID(),
		"security", cred.Security(),
		"hidden", cred.Hidden(),
	)

	return cred, nil
}

// Render builds the netctl profile for c on the named interface. Returns
// model.ErrInvalidInterfaceName for names the kernel would not accept and
// model.ErrUnsafeValue when the SSID or key would break the line-oriented
// profile format.
func (s *ProvisionService) Render(interfaceName string, c model.WifiCredential) (*model.Profile, error) {
	if !isValidInterfaceName(interfaceName) {
		return nil, fmt.Errorf("%w: %q", model.ErrInvalidInterfaceName, interfaceName)
	}
	if hasUnsafeChars(c.SSID()) {
		return nil, fmt.Errorf("%w: ssid", model.ErrUnsafeValue)
	}
	if c.Security().RequiresKey() && hasUnsafeChars(c.Password()) {
		return nil, fmt.Errorf("%w: key", model.ErrUnsafeValue)
	}

	profile := &model.Profile{
		Name:       s.renderer.ProfileName(interfaceName, c.SSID()),
		Interface:  interfaceName,
		Credential: c,
		Content:    s.renderer.Render(interfaceName, c),
	}

	s.metrics.ProfileRendered(c.Security())
	s.logger.Info("rendered netctl profile",
		"profile", profile.Name,
		"interface", interfaceName,
		"security", c.Security(),
		"hidden", c.Hidden(),
	)

	return profile, nil
}

// Provision parses raw and renders the resulting credential. Returns
// model.ErrNoWifiPayload when raw is not a Wi-Fi code.
func (s *ProvisionService) Provision(interfaceName string, raw []byte) (*model.Profile, error) {
	cred, err := s.Parse(raw)
	if err != nil {
		return nil, err
	}
	if cred == nil {
		return nil, model.ErrNoWifiPayload
	}

	return s.Render(interfaceName, *cred)
}

// isValidInterfaceName checks that name is a plausible Linux interface name.
func isValidInterfaceName(name string) bool {
	if len(name) == 0 || len(name) > maxInterfaceNameLen {
		return false
	}
	return interfaceNameRegex.MatchString(name)
}

func hasUnsafeChars(v string) bool {
	return strings.ContainsAny(v, "\r\n\x00")
}

type nopRecorder struct{}

func (nopRecorder) PayloadParsed(string) {}
func (nopRecorder) ProfileRendered(model.Security) {}
