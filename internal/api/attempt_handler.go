package api

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/medprep/backend/internal/domain/attempt"
	"github.com/medprep/backend/internal/domain/curriculum"
	"github.com/medprep/backend/internal/stats"
	"github.com/medprep/backend/internal/store"
)

// ── Request / Response types ────────────────────────────────────────────────

type OptionsDTO struct {
	A string `json:"A" example:"Albumin"`
	B string `json:"B" example:"Fibrinogen"`
	C string `json:"C" example:"Globulin"`
	D string `json:"D" example:"Transferrin"`
}

type LogAttemptRequest struct {
	MCQID         string     `json:"mcqId" example:"q3f8a2"`
	Question      string     `json:"question"`
	Options       OptionsDTO `json:"options"`
	CorrectOption string     `json:"correctOption" example:"A"`
	Explanation   string     `json:"explanation"`
	UserAnswer    string     `json:"userAnswer" example:"B"`
	Subject       string     `json:"subject" example:"Physiology"`
	Topic         string     `json:"topic" example:"Blood"`
}

// toRecord defers to the domain constructor so the API and the store reject
// the same shapes for the same reasons.
func (req *LogAttemptRequest) toRecord() (*attempt.Record, error) {
	return attempt.New(
		req.MCQID,
		req.Question,
		attempt.Options{A: req.Options.A, B: req.Options.B, C: req.Options.C, D: req.Options.D},
		attempt.Option(req.CorrectOption),
		req.Explanation,
		attempt.Option(req.UserAnswer),
		curriculum.Subject(req.Subject),
		req.Topic,
	)
}

type LogAttemptResponse struct {
	ID        string `json:"id"`
	IsCorrect bool   `json:"isCorrect"`
}

type AttemptResponse struct {
	ID            string     `json:"id"`
	MCQID         string     `json:"mcqId"`
	Question      string     `json:"question"`
	Options       OptionsDTO `json:"options"`
	CorrectOption string     `json:"correctOption"`
	Explanation   string     `json:"explanation"`
	UserAnswer    string     `json:"userAnswer"`
	IsCorrect     bool       `json:"isCorrect"`
	Subject       string     `json:"subject"`
	Topic         string     `json:"topic"`
	Timestamp     int64      `json:"timestamp"`
}

func toAttemptResponse(r attempt.Record) AttemptResponse {
	return AttemptResponse{
		ID:            r.ID,
		MCQID:         r.MCQID,
		Question:      r.Question,
		Options:       OptionsDTO{A: r.Options.A, B: r.Options.B, C: r.Options.C, D: r.Options.D},
		CorrectOption: string(r.CorrectOption),
		Explanation:   r.Explanation,
		UserAnswer:    string(r.UserAnswer),
		IsCorrect:     r.IsCorrect,
		Subject:       string(r.Subject),
		Topic:         r.Topic,
		Timestamp:     r.Timestamp.UnixMilli(),
	}
}

type ClearAttemptsResponse struct {
	Deleted int64 `json:"deleted"`
}

type ExportData struct {
	Version    string            `json:"version"`
	ExportedAt string            `json:"exportedAt"`
	Attempts   []AttemptResponse `json:"attempts"`
}

// ── Handlers ────────────────────────────────────────────────────────────────

// logAttempt records one answered MCQ for the caller.
// @Summary      Log an attempt
// @Description  Records an answered multiple choice question. Correctness is derived server-side from the submitted answer and the correct option.
// @Tags         Attempts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      LogAttemptRequest  true  "Answered question"
// @Success      201   {object}  LogAttemptResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /attempts [post]
func (h *Handler) logAttempt(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, ok := h.identity(w, r)
	if !ok {
		return
	}

	var req LogAttemptRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	rec, err := req.toRecord()
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	attemptID, err := h.store.AppendAttempt(ctx, id.UserID, rec)
	if h.handleStoreError(w, err, "append attempt") {
		return
	}

	respondJSON(w, http.StatusCreated, LogAttemptResponse{
		ID:        attemptID,
		IsCorrect: rec.IsCorrect,
	})
}

// listAttempts returns the caller's attempt log, newest first.
// @Summary      List attempts
// @Description  Returns the caller's attempts, newest first. Supports filtering by subject and correctness.
// @Tags         Attempts
// @Produce      json
// @Security     BearerAuth
// @Param        limit    query     int     false  "Maximum records to return (default 100)"
// @Param        subject  query     string  false  "Filter by subject"
// @Param        correct  query     bool    false  "Filter by correctness"
// @Success      200      {array}   AttemptResponse
// @Failure      400      {object}  errorResponse
// @Failure      401      {object}  errorResponse
// @Failure      500      {object}  errorResponse
// @Router       /attempts [get]
func (h *Handler) listAttempts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, ok := h.identity(w, r)
	if !ok {
		return
	}

	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			respondError(w, http.StatusBadRequest, "limit must be a non-negative integer")
			return
		}
		limit = n
	}

	var filter store.ListFilter
	if v := r.URL.Query().Get("subject"); v != "" {
		s := curriculum.Subject(v)
		if !curriculum.Valid(s) {
			respondError(w, http.StatusBadRequest, "unknown subject")
			return
		}
		filter.Subject = &s
	}
	if v := r.URL.Query().Get("correct"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			respondError(w, http.StatusBadRequest, "correct must be a boolean")
			return
		}
		filter.Correct = &b
	}

	records, err := h.store.ListAttemptsByOwner(ctx, id.UserID, filter, limit)
	if h.handleStoreError(w, err, "list attempts") {
		return
	}

	response := make([]AttemptResponse, len(records))
	for i, rec := range records {
		response[i] = toAttemptResponse(rec)
	}
	respondJSON(w, http.StatusOK, response)
}

// getAttemptStats aggregates the caller's full attempt log.
// @Summary      Attempt statistics
// @Description  Computes accuracy, per-subject and per-topic breakdowns, and strong/weak topic rankings over the caller's entire log.
// @Tags         Attempts
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  stats.Aggregate
// @Failure      401  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /attempts/stats [get]
func (h *Handler) getAttemptStats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, ok := h.identity(w, r)
	if !ok {
		return
	}

	records, err := h.store.ListAllAttemptsByOwner(ctx, id.UserID)
	if h.handleStoreError(w, err, "load attempts for stats") {
		return
	}

	respondJSON(w, http.StatusOK, stats.Compute(records))
}

// exportAttempts downloads the caller's full attempt log as a JSON file.
// @Summary      Export attempts
// @Description  Returns the caller's entire attempt log as a downloadable JSON document.
// @Tags         Attempts
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  ExportData
// @Failure      401  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /attempts/export [get]
func (h *Handler) exportAttempts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, ok := h.identity(w, r)
	if !ok {
		return
	}

	records, err := h.store.ListAllAttemptsByOwner(ctx, id.UserID)
	if h.handleStoreError(w, err, "export attempts") {
		return
	}

	export := ExportData{
		Version:    "1.0",
		ExportedAt: time.Now().UTC().Format(time.RFC3339),
		Attempts:   make([]AttemptResponse, len(records)),
	}
	for i, rec := range records {
		export.Attempts[i] = toAttemptResponse(rec)
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", "attachment; filename=medprep-attempts.json")
	json.NewEncoder(w).Encode(export)
}

// clearAttempts deletes the caller's entire attempt log.
// @Summary      Clear attempts
// @Description  Deletes every attempt belonging to the caller in a single operation and reports the count.
// @Tags         Attempts
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  ClearAttemptsResponse
// @Failure      401  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /attempts [delete]
func (h *Handler) clearAttempts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, ok := h.identity(w, r)
	if !ok {
		return
	}

	deleted, err := h.store.DeleteAttemptsByOwner(ctx, id.UserID)
	if h.handleStoreError(w, err, "clear attempts") {
		return
	}

	respondJSON(w, http.StatusOK, ClearAttemptsResponse{Deleted: deleted})
}
