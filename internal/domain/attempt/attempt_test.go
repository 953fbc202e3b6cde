package attempt_test

import (
	"errors"
	"testing"

	"github.com/medprep/backend/internal/domain/attempt"
	"github.com/medprep/backend/internal/domain/curriculum"
)

func validOptions() attempt.Options {
	return attempt.Options{
		A: "Subclavian artery",
		B: "Axillary artery",
		C: "Brachial artery",
		D: "Radial artery",
	}
}

func TestNew_DerivesIsCorrect(t *testing.T) {
	rec, err := attempt.New(
		"mcq-1", "Which artery is palpated at the wrist?",
		validOptions(), attempt.OptionD, "The radial artery lies lateral at the wrist.",
		attempt.OptionD, curriculum.SubjectAnatomy, "Superior Extremity",
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !rec.IsCorrect {
		t.Error("expected IsCorrect when user answer matches correct option")
	}

	rec, err = attempt.New(
		"mcq-1", "Which artery is palpated at the wrist?",
		validOptions(), attempt.OptionD, "The radial artery lies lateral at the wrist.",
		attempt.OptionB, curriculum.SubjectAnatomy, "Superior Extremity",
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.IsCorrect {
		t.Error("expected IsCorrect=false when user answer differs")
	}
}

func TestNew_Validation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(opts *attempt.Options, correct, answer *attempt.Option, subject *curriculum.Subject, topic, question *string)
		wantErr string
	}{
		{
			name: "empty question",
			mutate: func(_ *attempt.Options, _, _ *attempt.Option, _ *curriculum.Subject, _, q *string) {
				*q = ""
			},
			wantErr: "question",
		},
		{
			name: "missing option C",
			mutate: func(o *attempt.Options, _, _ *attempt.Option, _ *curriculum.Subject, _, _ *string) {
				o.C = ""
			},
			wantErr: "options",
		},
		{
			name: "correct option out of range",
			mutate: func(_ *attempt.Options, c, _ *attempt.Option, _ *curriculum.Subject, _, _ *string) {
				*c = "E"
			},
			wantErr: "correct_option",
		},
		{
			name: "lowercase user answer",
			mutate: func(_ *attempt.Options, _, a *attempt.Option, _ *curriculum.Subject, _, _ *string) {
				*a = "a"
			},
			wantErr: "user_answer",
		},
		{
			name: "unknown subject",
			mutate: func(_ *attempt.Options, _, _ *attempt.Option, s *curriculum.Subject, _, _ *string) {
				*s = "Pathology"
			},
			wantErr: "subject",
		},
		{
			name: "empty topic",
			mutate: func(_ *attempt.Options, _, _ *attempt.Option, _ *curriculum.Subject, tp, _ *string) {
				*tp = ""
			},
			wantErr: "topic",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			opts := validOptions()
			correct, answer := attempt.OptionA, attempt.OptionA
			subject := curriculum.SubjectAnatomy
			topic, question := "Thorax", "Some question?"
			tc.mutate(&opts, &correct, &answer, &subject, &topic, &question)

			_, err := attempt.New("mcq-1", question, opts, correct, "", answer, subject, topic)
			if err == nil {
				t.Fatal("expected validation error, got nil")
			}

			var vErr *attempt.ValidationError
			if !errors.As(err, &vErr) {
				t.Fatalf("expected *ValidationError, got %T", err)
			}
			if vErr.Field != tc.wantErr {
				t.Errorf("expected error on field %q, got %q", tc.wantErr, vErr.Field)
			}
		})
	}
}

func TestValidate_RejectsInconsistentIsCorrect(t *testing.T) {
	rec, err := attempt.New(
		"mcq-1", "Q?", validOptions(), attempt.OptionA, "",
		attempt.OptionA, curriculum.SubjectPhysiology, "Blood",
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// A caller flipping the materialized field must not slip past the store.
	rec.IsCorrect = false
	if err := rec.Validate(); err == nil {
		t.Error("expected validation to catch IsCorrect inconsistency")
	}
}
