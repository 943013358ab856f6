package httphandler

import (
	"encoding/json"
	"net/http"

	"github.com/ericfisherdev/qrnetctl/internal/domain/model"
)

// writeJSON marshals v to JSON and writes it to the response with the given
// status code. If marshaling fails, a 500 error is written instead.
func writeJSON(w http.ResponseWriter, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"internal server error"}`))
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(data)
}

// writeError writes a JSON error response with the given status code and message.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// errorResponse is the standard error response body.
type errorResponse struct {
	Error string `json:"error"`
}

// ParseRequest is the JSON body for POST /api/v1/wifi/parse.
type ParseRequest struct {
	Payload string `json:"payload"`
}

// ProvisionRequest is the JSON body for POST /api/v1/netctl.
type ProvisionRequest struct {
	Interface string `json:"interface"`
	Payload   string `json:"payload"`
}

// RenderRequest is the JSON body for POST /api/v1/netctl/render.
type RenderRequest struct {
	Interface  string            `json:"interface"`
	Credential CredentialRequest `json:"credential"`
}

// CredentialRequest carries explicit credentials. Security is one of "wpa",
// "wep" or "none"; empty means "none".
type CredentialRequest struct {
	SSID     string `json:"ssid"`
	Security string `json:"security"`
	Password string `json:"password"`
	Hidden   bool   `json:"hidden"`
}

// ParseResponse reports whether a payload carried Wi-Fi credentials.
// Credential is null when Matched is false.
type ParseResponse struct {
	Matched    bool                `json:"matched"`
	Credential *CredentialResponse `json:"credential"`
}

// CredentialResponse is the JSON representation of a Wi-Fi credential.
type CredentialResponse struct {
	SSID     string `json:"ssid"`
	Security string `json:"security"`
	Password string `json:"password"`
	Hidden   bool   `json:"hidden"`
}

// HealthResponse is the JSON response for the health endpoint.
type HealthResponse struct {
	Status string `json:"status"`
	Time   string `json:"time"`
}

// toCredentialResponse converts a domain WifiCredential to its JSON representation.
func toCredentialResponse(c model.WifiCredential) CredentialResponse {
	return CredentialResponse{
		SSID:     c.SSID(),
		Security: string(c.Security()),
		Password: c.Password(),
		Hidden:   c.Hidden(),
	}
}
