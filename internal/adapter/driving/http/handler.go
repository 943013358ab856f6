// Package httphandler implements the HTTP driving adapter that serves the
// provisioning REST API.
package httphandler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"mime"
	"net/http"
	"strings"
	"time"

	"github.com/ericfisherdev/qrnetctl/internal/application"
	"github.com/ericfisherdev/qrnetctl/internal/domain/model"
)

// Handler is the HTTP driving adapter that serves the REST API.
type Handler struct {
	svc              *application.ProvisionService
	defaultInterface string
	maxBodyBytes     int64
	logger           *slog.Logger
}

// NewHandler creates a Handler with all required dependencies.
// defaultInterface is used when a request does not name an interface.
func NewHandler(
	svc *application.ProvisionService,
	defaultInterface string,
	maxBodyBytes int64,
	logger *slog.Logger,
) *Handler {
	return &Handler{
		svc:              svc,
		defaultInterface: defaultInterface,
		maxBodyBytes:     maxBodyBytes,
		logger:           logger,
	}
}

// NewServeMux creates an http.Handler with all routes registered and wrapped
// with request ID, logging and recovery middleware. metrics, if non-nil, is
// served at /metrics.
func NewServeMux(h *Handler, metrics http.Handler, logger *slog.Logger) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/v1/wifi/parse", h.ParseWifi)
	mux.HandleFunc("POST /api/v1/netctl", h.Provision)
	mux.HandleFunc("POST /api/v1/netctl/render", h.RenderProfile)
	mux.HandleFunc("GET /api/v1/health", h.Health)
	if metrics != nil {
		mux.Handle("GET /metrics", metrics)
	}

	// Recovery innermost so panics are caught before logging.
	wrapped := recoveryMiddleware(logger, mux)
	wrapped = loggingMiddleware(logger, wrapped)
	wrapped = requestIDMiddleware(wrapped)

	return wrapped
}

// ParseWifi decodes a QR payload and reports whether it carries Wi-Fi
// credentials.
func (h *Handler) ParseWifi(w http.ResponseWriter, r *http.Request) {
	var req ParseRequest
	if !h.decodeBody(w, r, &req) {
		return
	}

	cred, err := h.svc.Parse([]byte(req.Payload))
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	resp := ParseResponse{Matched: cred != nil}
	if cred != nil {
		c := toCredentialResponse(*cred)
		resp.Credential = &c
	}

	writeJSON(w, http.StatusOK, resp)
}

// Provision decodes a QR payload and returns the netctl profile for it.
func (h *Handler) Provision(w http.ResponseWriter, r *http.Request) {
	var req ProvisionRequest
	if !h.decodeBody(w, r, &req) {
		return
	}

	profile, err := h.svc.Provision(h.interfaceOrDefault(req.Interface), []byte(req.Payload))
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	writeProfile(w, profile)
}

// RenderProfile returns the netctl profile for explicitly supplied credentials.
func (h *Handler) RenderProfile(w http.ResponseWriter, r *http.Request) {
	var req RenderRequest
	if !h.decodeBody(w, r, &req) {
		return
	}

	security := model.SecurityNone
	if req.Credential.Security != "" {
		security = model.Security(strings.ToLower(req.Credential.Security))
	}

	cred, err := model.NewWifiCredential(req.Credential.SSID,
		model.WithSecurity(security),
		model.WithPassword(req.Credential.Password),
		model.WithHidden(req.Credential.Hidden),
	)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	profile, err := h.svc.Render(h.interfaceOrDefault(req.Interface), cred)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	writeProfile(w, profile)
}

// Health returns a simple health check response.
func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status: "ok",
		Time:   time.Now().UTC().Format(time.RFC3339),
	})
}

func (h *Handler) interfaceOrDefault(name string) string {
	if name == "" {
		return h.defaultInterface
	}
	return name
}

// decodeBody decodes the size-limited JSON request body into v. On failure it
// writes the error response and returns false.
func (h *Handler) decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBodyBytes)

	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			writeError(w, http.StatusRequestEntityTooLarge, "request body too large")
			return false
		}
		writeError(w, http.StatusBadRequest, "invalid request body")
		return false
	}

	return true
}

// writeServiceError maps domain errors to 422 and anything else to 500.
func (h *Handler) writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, model.ErrInvalidPayload),
		errors.Is(err, model.ErrNoWifiPayload),
		errors.Is(err, model.ErrMissingSSID),
		errors.Is(err, model.ErrUnsupportedSecurity),
		errors.Is(err, model.ErrInvalidInterfaceName),
		errors.Is(err, model.ErrUnsafeValue):
		writeError(w, http.StatusUnprocessableEntity, err.Error())
	default:
		h.logger.Error("request failed", "path", r.URL.Path, "request_id", requestIDFromContext(r.Context()), "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

// writeProfile writes the profile text as a downloadable plain-text body.
func writeProfile(w http.ResponseWriter, p *model.Profile) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": p.Name}))
	w.Header().Set("X-Profile-Name", p.Name)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(p.Content))
}
