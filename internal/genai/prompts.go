package genai

import (
	"fmt"

	"github.com/medprep/backend/internal/domain/curriculum"
	"github.com/medprep/backend/internal/reference"
)

// ============================================================================
// Response schemas in Gemini's responseSchema dialect (a subset of OpenAPI).
// Kept as data so they marshal straight into generationConfig.
// ============================================================================

var shortQuestionSchema = map[string]any{
	"type": "OBJECT",
	"properties": map[string]any{
		"id":       map[string]any{"type": "STRING"},
		"question": map[string]any{"type": "STRING"},
		"marks":    map[string]any{"type": "INTEGER"},
	},
}

var mcqSchema = map[string]any{
	"type": "OBJECT",
	"properties": map[string]any{
		"id":       map[string]any{"type": "STRING"},
		"question": map[string]any{"type": "STRING"},
		"options": map[string]any{
			"type": "OBJECT",
			"properties": map[string]any{
				"A": map[string]any{"type": "STRING"},
				"B": map[string]any{"type": "STRING"},
				"C": map[string]any{"type": "STRING"},
				"D": map[string]any{"type": "STRING"},
			},
		},
		"correctOption": map[string]any{"type": "STRING"},
		"explanation":   map[string]any{"type": "STRING"},
	},
}

var sessionSchema = map[string]any{
	"type": "OBJECT",
	"properties": map[string]any{
		"subject":                 map[string]any{"type": "STRING"},
		"topic":                   map[string]any{"type": "STRING"},
		"longEssayQuestion":       shortQuestionSchema,
		"multipleChoiceQuestions": map[string]any{"type": "ARRAY", "items": mcqSchema},
		"shortAnswerQuestions":    map[string]any{"type": "ARRAY", "items": shortQuestionSchema},
		"reasoningQuestions":      map[string]any{"type": "ARRAY", "items": shortQuestionSchema},
	},
}

var feedbackSchema = map[string]any{
	"type": "OBJECT",
	"properties": map[string]any{
		"keyConceptsCovered":       map[string]any{"type": "ARRAY", "items": map[string]any{"type": "STRING"}},
		"areasForImprovement":      map[string]any{"type": "ARRAY", "items": map[string]any{"type": "STRING"}},
		"clarityAndStructureScore": map[string]any{"type": "STRING"},
		"suggestions":              map[string]any{"type": "ARRAY", "items": map[string]any{"type": "STRING"}},
	},
}

// ============================================================================
// Prompt builders
// ============================================================================

// maxReferenceBytes bounds how much of the past-papers digest goes into the
// session prompt, keeping the request inside smaller models' context windows.
const maxReferenceBytes = 30000

// buildSessionPrompt embeds the past-papers digest and the requested
// subject/topic. The required structure is stated twice (rules up top, digest
// last) because long context pushes instructions out of small models' focus.
func buildSessionPrompt(subject curriculum.Subject, topic string) string {
	return fmt.Sprintf(`You are an expert medical educator specializing in the Indian 1st year MBBS CBME curriculum.
Generate a complete, unique practice exam session based on authentic question patterns.

REQUESTED SUBJECT: %s
REQUESTED TOPIC: %s

ANALYSIS INSTRUCTIONS:
Study the reference past papers below to understand topic weightage, question
patterns, difficulty levels, clinical focus, and mark distribution.

QUESTION GENERATION RULES:
- Generate NEW and UNIQUE questions, never copies from the reference.
- Keep the same clinical focus and difficulty as the reference papers.
- Every question must be relevant to the requested topic.
- All question ids must be unique strings.

REQUIRED SESSION STRUCTURE:
- 1 long essay question (10 marks): complex clinical scenario with sub-parts.
- 20 multiple choice questions (1 mark each): mini clinical vignettes,
  single best answer, options A-D, each with a one-line explanation.
- 11 short notes / applied questions (5 marks each).
- 5 reasoning questions (3 marks each), "explain why" style.

REFERENCE PAST PAPERS:
---
%s
---

Generate the session as JSON matching the response schema.`,
		subject, topic, reference.Excerpt(maxReferenceBytes))
}

// buildFeedbackPrompt instructs the model to read a handwritten answer photo
// and critique it without assigning a grade.
func buildFeedbackPrompt(questionText string) string {
	return fmt.Sprintf(`You are an expert medical examiner providing constructive feedback to a 1st year MBBS student.
The student was asked the following question: %q

The student's handwritten answer is in the provided image.

Your tasks:
1. Perform OCR on the image to read the student's answer.
2. Analyze the transcribed text for accuracy, completeness, and clarity.
3. Provide structured feedback. Do NOT give a numerical score or a simple
   right/wrong grade; be a helpful, educational guide.

Respond as JSON matching the response schema.`, questionText)
}
