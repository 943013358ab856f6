package driven

import "github.com/ericfisherdev/qrnetctl/internal/domain/model"

// Parse outcomes reported to MetricsRecorder.
const (
	OutcomeWifi    = "wifi"
	OutcomeNoMatch = "no_match"
	OutcomeInvalid = "invalid"
)

// MetricsRecorder defines the driven port for operational counters.
type MetricsRecorder interface {
	PayloadParsed(outcome string)
	ProfileRendered(security model.Security)
}
