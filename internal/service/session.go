package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/medprep/backend/internal/domain/curriculum"
	"github.com/medprep/backend/internal/domain/session"
	"github.com/medprep/backend/internal/genai"
)

var (
	ErrUnknownSubject = errors.New("unknown subject")
	ErrUnknownTopic   = errors.New("topic does not belong to subject")
)

// SessionService validates a subject/topic selection against the curriculum
// and turns the model's raw output into a usable practice session.
type SessionService struct {
	gen    genai.Client
	logger *slog.Logger
}

func NewSessionService(gen genai.Client, logger *slog.Logger) *SessionService {
	return &SessionService{gen: gen, logger: logger}
}

// Generate produces a practice session for the selection. One blocking model
// call per invocation; failures surface to the caller, nothing retries here.
func (s *SessionService) Generate(ctx context.Context, subject curriculum.Subject, topic string) (*session.PracticeSession, error) {
	if !curriculum.Valid(subject) {
		return nil, ErrUnknownSubject
	}
	if !curriculum.HasTopic(subject, topic) {
		return nil, ErrUnknownTopic
	}

	sess, err := s.gen.GenerateSession(ctx, subject, topic)
	if err != nil {
		return nil, err
	}

	// The model echoes subject/topic back but is not trusted to get them right.
	sess.Subject = string(subject)
	sess.Topic = topic

	sess.Normalize()
	if err := sess.Validate(); err != nil {
		s.logger.Error("model produced unusable session",
			"subject", subject,
			"topic", topic,
			"error", err,
		)
		return nil, fmt.Errorf("generated session is unusable: %w", err)
	}

	s.logger.Info("session generated",
		"subject", subject,
		"topic", topic,
		"mcq_count", len(sess.MultipleChoiceQuestions),
	)
	return sess, nil
}
