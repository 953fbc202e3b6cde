package genai

import (
	"context"
	"fmt"

	"github.com/medprep/backend/internal/domain/curriculum"
	"github.com/medprep/backend/internal/domain/session"
)

// Feedback is the structured critique returned for a handwritten answer.
// Deliberately has no numeric score: the product gives guidance, not grades.
type Feedback struct {
	KeyConceptsCovered       []string `json:"keyConceptsCovered"`
	AreasForImprovement      []string `json:"areasForImprovement"`
	ClarityAndStructureScore string   `json:"clarityAndStructureScore"`
	Suggestions              []string `json:"suggestions"`
}

// Client talks to the generative model. Implementations may call a real
// endpoint or return canned output (for tests).
type Client interface {
	// GenerateSession asks the model for a complete practice paper for the
	// subject/topic, grounded in the embedded past-papers digest.
	GenerateSession(ctx context.Context, subject curriculum.Subject, topic string) (*session.PracticeSession, error)

	// AnalyzeAnswer submits a handwritten answer photo (base64 JPEG) with
	// its question text and returns structured feedback.
	AnalyzeAnswer(ctx context.Context, questionText, imageBase64 string) (*Feedback, error)
}

// GenError distinguishes "the model returned something unusable" from
// "the model was unreachable" for callers that care.
type GenError struct {
	Reason  string
	Wrapped error
}

func (e *GenError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("generation failed: %s: %v", e.Reason, e.Wrapped)
	}
	return fmt.Sprintf("generation failed: %s", e.Reason)
}

func (e *GenError) Unwrap() error {
	return e.Wrapped
}
