package httpapi

import (
	"encoding/json"
	"net/http"
)

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func (h *SubmitHandler) respondOK(w http.ResponseWriter) {
	writeJSON(w, http.StatusOK, map[string]any{"ok": true})
}

func (h *SubmitHandler) respondError(w http.ResponseWriter, status int, message string) {
	switch h.cfg.ErrorShape {
	case ShapeBareError:
		writeJSON(w, status, map[string]any{"error": message})
	default:
		writeJSON(w, status, map[string]any{"ok": false, "error": message})
	}
}

// errorMessage picks the client-facing wording for an outcome. The two error
// shapes carry the phrasing of the frontends they serve.
func (h *SubmitHandler) errorMessage(okFalse, bare string) string {
	if h.cfg.ErrorShape == ShapeBareError {
		return bare
	}
	return okFalse
}
