// Package httpapi exposes the form submission endpoint: CORS gate, body
// normalization, validation, dispatch and outcome-to-JSON mapping.
package httpapi

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"slices"
	"strings"

	"github.com/aigrade/submit-api/internal/submission"
)

// maxBodyBytes caps the request body; form submissions are small.
const maxBodyBytes = 1 << 20

// SubmitHandler implements the submission pipeline as one http.Handler.
// Method gating and the OPTIONS short-circuit live here rather than in the
// router so that 405 responses still carry the CORS headers.
type SubmitHandler struct {
	svc         *submission.Service
	cfg         Config
	log         *slog.Logger
	allowList   []string
	allowOrigin string
}

// NewSubmitHandler validates the config and wires the pipeline.
// A nil logger discards logs.
func NewSubmitHandler(svc *submission.Service, cfg Config, log *slog.Logger) (*SubmitHandler, error) {
	if svc == nil {
		return nil, errors.New("httpapi.NewSubmitHandler: nil service")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &SubmitHandler{
		svc:         svc,
		cfg:         cfg,
		log:         log,
		allowList:   cfg.allowList(),
		allowOrigin: cfg.allowOriginHeader(),
	}, nil
}

func (h *SubmitHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	header := w.Header()
	header.Set("Access-Control-Allow-Origin", h.allowOrigin)
	header.Set("Vary", "Origin")
	header.Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	header.Set("Access-Control-Allow-Headers", "Content-Type")

	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusOK)
		return
	}

	if r.Method != http.MethodPost {
		header.Set("Allow", http.MethodPost)
		h.respondError(w, http.StatusMethodNotAllowed,
			h.errorMessage("Method not allowed", "Method Not Allowed"))
		return
	}

	// A request without an Origin header is not a browser cross-origin call,
	// so it passes even when an allow-list is configured.
	origin := r.Header.Get("Origin")
	if len(h.allowList) > 0 && origin != "" && !slices.Contains(h.allowList, origin) {
		h.respondError(w, http.StatusForbidden,
			h.errorMessage("Origin not allowed", "Forbidden"))
		return
	}

	fields, err := parseBody(r)
	if err != nil {
		h.respondError(w, http.StatusBadRequest,
			h.errorMessage("Invalid JSON body", "Invalid JSON"))
		return
	}

	payload := submission.FromMap(fields)

	err = h.svc.Process(r.Context(), payload)
	switch {
	case errors.Is(err, submission.ErrMissingNameOrEmail):
		h.respondError(w, http.StatusBadRequest, "Missing name or email")
	case err != nil:
		// The underlying send error is logged by the service; the ok-false
		// shape keeps the client message generic.
		h.respondError(w, http.StatusInternalServerError,
			h.errorMessage("Email send failed", err.Error()))
	default:
		h.respondOK(w)
	}
}

// parseBody normalizes the inbound payload into a field map. Accepted forms:
// a JSON object, a JSON-encoded string that itself contains a JSON object
// (clients posting without a Content-Type tend to double-encode), JSON null,
// and an empty body. Everything else is ErrInvalidBody.
func parseBody(r *http.Request) (map[string]any, error) {
	raw, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBody, err)
	}

	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return map[string]any{}, nil
	}

	var decoded any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBody, err)
	}

	switch v := decoded.(type) {
	case map[string]any:
		return v, nil
	case string:
		if strings.TrimSpace(v) == "" {
			return map[string]any{}, nil
		}
		var fields map[string]any
		if err := json.Unmarshal([]byte(v), &fields); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidBody, err)
		}
		return fields, nil
	case nil:
		return map[string]any{}, nil
	default:
		return nil, fmt.Errorf("%w: payload must be a JSON object", ErrInvalidBody)
	}
}
