package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/medprep/backend/internal/domain/attempt"
	"github.com/medprep/backend/internal/domain/curriculum"
	"github.com/medprep/backend/internal/domain/session"
	"github.com/medprep/backend/internal/genai"
	"github.com/medprep/backend/internal/service"
)

// fakeGen returns canned output and records what it was asked.
type fakeGen struct {
	session    *session.PracticeSession
	feedback   *genai.Feedback
	err        error
	analyzed   []string
	lastTopic  string
	lastSubj   curriculum.Subject
}

func (f *fakeGen) GenerateSession(_ context.Context, subject curriculum.Subject, topic string) (*session.PracticeSession, error) {
	f.lastSubj, f.lastTopic = subject, topic
	if f.err != nil {
		return nil, f.err
	}
	s := *f.session
	return &s, nil
}

func (f *fakeGen) AnalyzeAnswer(_ context.Context, questionText, _ string) (*genai.Feedback, error) {
	f.analyzed = append(f.analyzed, questionText)
	if f.err != nil {
		return nil, f.err
	}
	return f.feedback, nil
}

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func generatedSession() *session.PracticeSession {
	return &session.PracticeSession{
		Subject: "wrong echo",
		Topic:   "wrong echo",
		MultipleChoiceQuestions: []session.MCQ{{
			Question: "Which plasma protein maintains oncotic pressure?",
			Options: attempt.Options{
				A: "Albumin", B: "Fibrinogen", C: "Globulin", D: "Transferrin",
			},
			CorrectOption: attempt.OptionA,
			Explanation:   "Albumin contributes most to oncotic pressure.",
		}},
	}
}

func TestGenerate_ValidatesSelection(t *testing.T) {
	svc := service.NewSessionService(&fakeGen{session: generatedSession()}, discard())

	_, err := svc.Generate(context.Background(), "Pathology", "Blood")
	if !errors.Is(err, service.ErrUnknownSubject) {
		t.Errorf("expected ErrUnknownSubject, got %v", err)
	}

	_, err = svc.Generate(context.Background(), curriculum.SubjectAnatomy, "Blood")
	if !errors.Is(err, service.ErrUnknownTopic) {
		t.Errorf("expected ErrUnknownTopic, got %v", err)
	}
}

func TestGenerate_NormalizesAndOverridesEcho(t *testing.T) {
	gen := &fakeGen{session: generatedSession()}
	svc := service.NewSessionService(gen, discard())

	s, err := svc.Generate(context.Background(), curriculum.SubjectPhysiology, "Blood")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if s.Subject != "Physiology" || s.Topic != "Blood" {
		t.Errorf("expected requested subject/topic, got %s/%s", s.Subject, s.Topic)
	}
	if s.MultipleChoiceQuestions[0].ID == "" {
		t.Error("expected normalize to assign question ids")
	}
	if gen.lastTopic != "Blood" {
		t.Errorf("expected topic passed to client, got %q", gen.lastTopic)
	}
}

func TestGenerate_RejectsUnusableSession(t *testing.T) {
	bad := generatedSession()
	bad.MultipleChoiceQuestions[0].Options.D = ""
	svc := service.NewSessionService(&fakeGen{session: bad}, discard())

	if _, err := svc.Generate(context.Background(), curriculum.SubjectPhysiology, "Blood"); err == nil {
		t.Error("expected error for session with malformed MCQ")
	}
}

func TestGenerate_PropagatesClientError(t *testing.T) {
	wantErr := &genai.GenError{Reason: "model unreachable"}
	svc := service.NewSessionService(&fakeGen{err: wantErr}, discard())

	_, err := svc.Generate(context.Background(), curriculum.SubjectPhysiology, "Blood")
	var genErr *genai.GenError
	if !errors.As(err, &genErr) {
		t.Errorf("expected client error to propagate verbatim, got %v", err)
	}
}

func TestAnalyzeBatch_OrderAndPartialFailure(t *testing.T) {
	fb := &genai.Feedback{ClarityAndStructureScore: "Good"}
	gen := &fakeGen{feedback: fb}
	svc := service.NewAnalysisService(gen, discard())

	items := []service.BatchItem{
		{QuestionID: "q1", Question: "Describe haemostasis.", ImageBase64: "aa=="},
		{QuestionID: "q2", Question: "Describe the cardiac cycle.", ImageBase64: "bb=="},
		{QuestionID: "q3", Question: "Describe surfactant.", ImageBase64: "cc=="},
	}

	results := svc.AnalyzeBatch(context.Background(), items)
	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}
	for i, r := range results {
		if r.QuestionID != items[i].QuestionID {
			t.Errorf("results[%d] = %q, want %q (input order)", i, r.QuestionID, items[i].QuestionID)
		}
		if r.Err != nil || r.Feedback == nil {
			t.Errorf("results[%d]: unexpected failure %v", i, r.Err)
		}
	}

	// All failing: every result carries the error, none panics the batch.
	gen.err = errors.New("model down")
	results = svc.AnalyzeBatch(context.Background(), items)
	for i, r := range results {
		if r.Err == nil {
			t.Errorf("results[%d]: expected error", i)
		}
	}
}

func TestAnalyzeBatch_Empty(t *testing.T) {
	svc := service.NewAnalysisService(&fakeGen{}, discard())
	if results := svc.AnalyzeBatch(context.Background(), nil); len(results) != 0 {
		t.Errorf("expected no results, got %d", len(results))
	}
}
