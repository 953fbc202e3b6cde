package api

import (
	"errors"
	"net/http"

	"github.com/medprep/backend/internal/domain/curriculum"
	"github.com/medprep/backend/internal/service"
)

// ── Request / Response types ────────────────────────────────────────────────

type GenerateSessionRequest struct {
	Subject string `json:"subject" example:"Physiology"`
	Topic   string `json:"topic" example:"Blood"`
}

func (req *GenerateSessionRequest) Validate() error {
	if req.Subject == "" {
		return errors.New("subject is required")
	}
	if req.Topic == "" {
		return errors.New("topic is required")
	}
	return nil
}

// ── Handlers ────────────────────────────────────────────────────────────────

// generateSession creates a fresh AI-generated practice session.
// @Summary      Generate a practice session
// @Description  Generates a full exam-pattern practice session for a subject and topic. Pick "Entire Subject" as the topic for whole-subject coverage.
// @Tags         Sessions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      GenerateSessionRequest  true  "Subject and topic selection"
// @Success      200   {object}  session.PracticeSession
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      502   {object}  errorResponse
// @Router       /sessions [post]
func (h *Handler) generateSession(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, ok := h.identity(w, r)
	if !ok {
		return
	}

	var req GenerateSessionRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	sess, err := h.sessions.Generate(ctx, curriculum.Subject(req.Subject), req.Topic)
	switch {
	case errors.Is(err, service.ErrUnknownSubject), errors.Is(err, service.ErrUnknownTopic):
		respondError(w, http.StatusBadRequest, err.Error())
		return
	case err != nil:
		h.logger.Error("session generation failed",
			"owner", id.UserID,
			"subject", req.Subject,
			"topic", req.Topic,
			"error", err,
		)
		respondError(w, http.StatusBadGateway, "session generation failed")
		return
	}

	respondJSON(w, http.StatusOK, sess)
}
