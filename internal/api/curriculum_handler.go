package api

import (
	"net/http"

	"github.com/medprep/backend/internal/domain/curriculum"
	"github.com/medprep/backend/internal/reference"
)

// ── Response types ──────────────────────────────────────────────────────────

type CurriculumSubject struct {
	Subject string   `json:"subject" example:"Physiology"`
	Topics  []string `json:"topics"`
}

type CurriculumResponse struct {
	Subjects []CurriculumSubject `json:"subjects"`
}

// ── Handlers ────────────────────────────────────────────────────────────────

// getCurriculum lists the fixed subjects and their topics.
// @Summary      Curriculum listing
// @Description  Returns the closed set of subjects with their topic lists. Pass a subject and topic as query parameters to also get past-paper weightage analysis.
// @Tags         Curriculum
// @Produce      json
// @Param        subject  query     string  false  "Subject to analyze weightage for"
// @Param        topic    query     string  false  "Topic to analyze weightage for"
// @Success      200      {object}  CurriculumResponse
// @Failure      400      {object}  errorResponse
// @Router       /curriculum [get]
func (h *Handler) getCurriculum(w http.ResponseWriter, r *http.Request) {
	if subj := r.URL.Query().Get("subject"); subj != "" {
		s := curriculum.Subject(subj)
		if !curriculum.Valid(s) {
			respondError(w, http.StatusBadRequest, "unknown subject")
			return
		}
		respondJSON(w, http.StatusOK, reference.AnalyzeWeightage(s, r.URL.Query().Get("topic")))
		return
	}

	subjects := curriculum.Subjects()
	response := CurriculumResponse{Subjects: make([]CurriculumSubject, len(subjects))}
	for i, s := range subjects {
		response.Subjects[i] = CurriculumSubject{
			Subject: string(s),
			Topics:  curriculum.TopicsFor(s),
		}
	}
	respondJSON(w, http.StatusOK, response)
}
