package api

import (
	"errors"
	"net/http"

	"github.com/medprep/backend/internal/genai"
	"github.com/medprep/backend/internal/service"
)

// ── Request / Response types ────────────────────────────────────────────────

type AnalyzeRequest struct {
	Question    string `json:"question"`
	ImageBase64 string `json:"imageBase64"`
}

func (req *AnalyzeRequest) Validate() error {
	if req.Question == "" {
		return errors.New("question is required")
	}
	if req.ImageBase64 == "" {
		return errors.New("imageBase64 is required")
	}
	return nil
}

type AnalyzeBatchRequest struct {
	Items []AnalyzeBatchItem `json:"items"`
}

type AnalyzeBatchItem struct {
	QuestionID  string `json:"questionId"`
	Question    string `json:"question"`
	ImageBase64 string `json:"imageBase64"`
}

func (req *AnalyzeBatchRequest) Validate() error {
	if len(req.Items) == 0 {
		return errors.New("items must not be empty")
	}
	for _, item := range req.Items {
		if item.QuestionID == "" || item.Question == "" || item.ImageBase64 == "" {
			return errors.New("every item needs questionId, question and imageBase64")
		}
	}
	return nil
}

type AnalyzeBatchEntry struct {
	QuestionID string          `json:"questionId"`
	Feedback   *genai.Feedback `json:"feedback,omitempty"`
	Error      string          `json:"error,omitempty"`
}

type AnalyzeBatchResponse struct {
	Results []AnalyzeBatchEntry `json:"results"`
}

// ── Handlers ────────────────────────────────────────────────────────────────

// analyzeAnswer critiques one handwritten answer photo.
// @Summary      Analyze a handwritten answer
// @Description  Reads a photographed handwritten answer and returns structured feedback. No numerical grade is assigned.
// @Tags         Analysis
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      AnalyzeRequest  true  "Question text and base64-encoded answer image"
// @Success      200   {object}  genai.Feedback
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      502   {object}  errorResponse
// @Router       /analysis [post]
func (h *Handler) analyzeAnswer(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, ok := h.identity(w, r)
	if !ok {
		return
	}

	var req AnalyzeRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	fb, err := h.analysis.Analyze(ctx, req.Question, req.ImageBase64)
	if err != nil {
		h.logger.Error("answer analysis failed", "owner", id.UserID, "error", err)
		respondError(w, http.StatusBadGateway, "answer analysis failed")
		return
	}

	respondJSON(w, http.StatusOK, fb)
}

// analyzeAnswerBatch critiques a set of handwritten answers concurrently.
// @Summary      Analyze a batch of handwritten answers
// @Description  Analyzes several answers with bounded concurrency. A failed item reports its error without aborting the rest; results keep input order.
// @Tags         Analysis
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      AnalyzeBatchRequest  true  "Answers to analyze"
// @Success      200   {object}  AnalyzeBatchResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /analysis/batch [post]
func (h *Handler) analyzeAnswerBatch(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if _, ok := h.identity(w, r); !ok {
		return
	}

	var req AnalyzeBatchRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	items := make([]service.BatchItem, len(req.Items))
	for i, item := range req.Items {
		items[i] = service.BatchItem{
			QuestionID:  item.QuestionID,
			Question:    item.Question,
			ImageBase64: item.ImageBase64,
		}
	}

	results := h.analysis.AnalyzeBatch(ctx, items)

	response := AnalyzeBatchResponse{Results: make([]AnalyzeBatchEntry, len(results))}
	for i, res := range results {
		entry := AnalyzeBatchEntry{QuestionID: res.QuestionID, Feedback: res.Feedback}
		if res.Err != nil {
			entry.Feedback = nil
			entry.Error = "analysis failed"
		}
		response.Results[i] = entry
	}
	respondJSON(w, http.StatusOK, response)
}
