package genai

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/medprep/backend/internal/domain/curriculum"
	"github.com/medprep/backend/internal/reference"
)

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"bare object", `{"a": 1}`, `{"a": 1}`},
		{"prose around object", `Here you go: {"a": 1} hope that helps`, `{"a": 1}`},
		{"nested braces", `{"a": {"b": 2}}`, `{"a": {"b": 2}}`},
		{"braces in strings", `{"a": "open { brace"}`, `{"a": "open { brace"}`},
		{"escaped quotes", `{"a": "he said \"hi\" {"}`, `{"a": "he said \"hi\" {"}`},
		{"no object", `just text`, ""},
		{"unclosed object", `{"a": 1`, ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := extractJSON(tc.input); got != tc.want {
				t.Errorf("extractJSON(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestBuildSessionPrompt_EmbedsReferenceWithinBudget(t *testing.T) {
	prompt := buildSessionPrompt(curriculum.SubjectPhysiology, "Blood")

	if !strings.Contains(prompt, "Physiology") || !strings.Contains(prompt, "Blood") {
		t.Error("prompt must name the requested subject and topic")
	}
	excerpt := reference.Excerpt(maxReferenceBytes)
	if excerpt == "" {
		t.Fatal("expected a non-empty reference excerpt")
	}
	if !strings.Contains(prompt, excerpt) {
		t.Error("prompt must embed the budget-capped past-papers digest")
	}
}

// fakeModel serves a canned generateContent response.
func fakeModel(t *testing.T, payload string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("unexpected method %s", r.Method)
		}
		resp := map[string]any{
			"candidates": []map[string]any{{
				"content": map[string]any{
					"parts": []map[string]any{{"text": payload}},
				},
			}},
		}
		json.NewEncoder(w).Encode(resp)
	}))
}

func TestGenerateSession_ParsesModelOutput(t *testing.T) {
	payload := `{
		"subject": "Physiology",
		"topic": "Blood",
		"longEssayQuestion": {"id": "e1", "question": "Describe erythropoiesis.", "marks": 10},
		"multipleChoiceQuestions": [{
			"id": "m1",
			"question": "Normal adult haemoglobin is composed of?",
			"options": {"A": "2 alpha, 2 beta", "B": "2 alpha, 2 gamma", "C": "2 alpha, 2 delta", "D": "4 beta"},
			"correctOption": "A",
			"explanation": "HbA is alpha2beta2."
		}],
		"shortAnswerQuestions": [],
		"reasoningQuestions": []
	}`
	srv := fakeModel(t, payload)
	defer srv.Close()

	c := NewGeminiClient(srv.URL, "test-model", "key")
	s, err := c.GenerateSession(context.Background(), curriculum.SubjectPhysiology, "Blood")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if s.Subject != "Physiology" || s.Topic != "Blood" {
		t.Errorf("unexpected session header: %s/%s", s.Subject, s.Topic)
	}
	if len(s.MultipleChoiceQuestions) != 1 {
		t.Fatalf("expected 1 MCQ, got %d", len(s.MultipleChoiceQuestions))
	}
	if s.MultipleChoiceQuestions[0].CorrectOption != "A" {
		t.Errorf("unexpected correct option %q", s.MultipleChoiceQuestions[0].CorrectOption)
	}
}

func TestGenerateSession_ProseWrappedJSON(t *testing.T) {
	payload := `Sure! Here is the session: {"subject": "Anatomy", "topic": "Thorax",
		"longEssayQuestion": {"id": "e1", "question": "Describe the arch of aorta.", "marks": 10},
		"multipleChoiceQuestions": [], "shortAnswerQuestions": [], "reasoningQuestions": []}`
	srv := fakeModel(t, payload)
	defer srv.Close()

	c := NewGeminiClient(srv.URL, "test-model", "key")
	s, err := c.GenerateSession(context.Background(), curriculum.SubjectAnatomy, "Thorax")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Subject != "Anatomy" {
		t.Errorf("expected Anatomy, got %q", s.Subject)
	}
}

func TestAnalyzeAnswer_ParsesFeedback(t *testing.T) {
	payload := `{
		"keyConceptsCovered": ["erythropoietin source"],
		"areasForImprovement": ["stages not named"],
		"clarityAndStructureScore": "Good",
		"suggestions": ["use a flow diagram"]
	}`
	srv := fakeModel(t, payload)
	defer srv.Close()

	c := NewGeminiClient(srv.URL, "test-model", "key")
	fb, err := c.AnalyzeAnswer(context.Background(), "Describe erythropoiesis.", "aGVsbG8=")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(fb.KeyConceptsCovered) != 1 || fb.ClarityAndStructureScore != "Good" {
		t.Errorf("unexpected feedback: %+v", fb)
	}
}

func TestGenerateSession_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewGeminiClient(srv.URL, "test-model", "key")
	_, err := c.GenerateSession(context.Background(), curriculum.SubjectPhysiology, "Blood")
	if err == nil {
		t.Fatal("expected error from failing endpoint")
	}

	var genErr *GenError
	if !errors.As(err, &genErr) {
		t.Fatalf("expected *GenError, got %T", err)
	}
}
