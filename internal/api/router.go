// internal/api/router.go
package api

import "net/http"

// RegisterRoutes wires every handler onto the mux. All routes except the
// curriculum listing act on the caller's own data and require a bearer token.
func RegisterRoutes(mux *http.ServeMux, h *Handler) {
	authed := RequireAuth(h.verifier)

	// Attempt log
	mux.HandleFunc("POST /attempts", authed(h.logAttempt))
	mux.HandleFunc("GET /attempts", authed(h.listAttempts))
	mux.HandleFunc("GET /attempts/stats", authed(h.getAttemptStats))
	mux.HandleFunc("GET /attempts/export", authed(h.exportAttempts))
	mux.HandleFunc("DELETE /attempts", authed(h.clearAttempts))

	// Session generation
	mux.HandleFunc("POST /sessions", authed(h.generateSession))

	// Handwritten answer analysis
	mux.HandleFunc("POST /analysis", authed(h.analyzeAnswer))
	mux.HandleFunc("POST /analysis/batch", authed(h.analyzeAnswerBatch))

	// Curriculum reference data
	mux.HandleFunc("GET /curriculum", h.getCurriculum)
}
