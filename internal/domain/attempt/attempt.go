package attempt

import (
	"fmt"
	"time"

	"github.com/medprep/backend/internal/domain/curriculum"
)

// Option is one of the four MCQ choice letters.
type Option string

const (
	OptionA Option = "A"
	OptionB Option = "B"
	OptionC Option = "C"
	OptionD Option = "D"
)

// ValidOption reports whether o is one of A–D.
func ValidOption(o Option) bool {
	switch o {
	case OptionA, OptionB, OptionC, OptionD:
		return true
	}
	return false
}

// Options holds the four labelled choices exactly as the question presented them.
type Options struct {
	A string
	B string
	C string
	D string
}

// Record is one answered MCQ. It is written once and never mutated:
// the question fields are a denormalized snapshot (generated questions are
// ephemeral AI output, there is nothing to reference), and the only
// destructive operation is the owner-scoped bulk delete in the store.
type Record struct {
	ID            string
	OwnerID       string
	MCQID         string
	Question      string
	Options       Options
	CorrectOption Option
	Explanation   string
	UserAnswer    Option
	IsCorrect     bool
	Subject       curriculum.Subject
	Topic         string
	Timestamp     time.Time
}

// ValidationError reports a malformed attempt write. The store rejects these
// instead of persisting an inconsistent shape.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid attempt: %s %s", e.Field, e.Reason)
}

// New builds an unsaved Record from the submitted answer. IsCorrect is
// derived here, at write time, so aggregation never has to recompute it.
// ID and Timestamp are assigned by the store on append.
func New(mcqID, question string, opts Options, correct Option, explanation string, answer Option, subject curriculum.Subject, topic string) (*Record, error) {
	r := &Record{
		MCQID:         mcqID,
		Question:      question,
		Options:       opts,
		CorrectOption: correct,
		Explanation:   explanation,
		UserAnswer:    answer,
		IsCorrect:     answer == correct,
		Subject:       subject,
		Topic:         topic,
	}
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return r, nil
}

// Validate checks the fixed record shape: four non-empty options, option
// letters in A–D, a known subject, and a non-empty topic.
func (r *Record) Validate() error {
	if r.Question == "" {
		return &ValidationError{Field: "question", Reason: "is required"}
	}
	if r.Options.A == "" || r.Options.B == "" || r.Options.C == "" || r.Options.D == "" {
		return &ValidationError{Field: "options", Reason: "must contain all four choices A-D"}
	}
	if !ValidOption(r.CorrectOption) {
		return &ValidationError{Field: "correct_option", Reason: "must be one of A, B, C, D"}
	}
	if !ValidOption(r.UserAnswer) {
		return &ValidationError{Field: "user_answer", Reason: "must be one of A, B, C, D"}
	}
	if !curriculum.Valid(r.Subject) {
		return &ValidationError{Field: "subject", Reason: "is not a curriculum subject"}
	}
	if r.Topic == "" {
		return &ValidationError{Field: "topic", Reason: "is required"}
	}
	if r.IsCorrect != (r.UserAnswer == r.CorrectOption) {
		return &ValidationError{Field: "is_correct", Reason: "does not match user_answer vs correct_option"}
	}
	return nil
}
