package session

import (
	"errors"
	"fmt"

	"github.com/medprep/backend/internal/domain/attempt"
	"github.com/medprep/backend/internal/id"
)

// MCQ is a single-best-answer question with four labelled options.
type MCQ struct {
	ID            string          `json:"id"`
	Question      string          `json:"question"`
	Options       attempt.Options `json:"options"`
	CorrectOption attempt.Option  `json:"correctOption"`
	Explanation   string          `json:"explanation"`
}

// ShortQuestion is a written question worth a fixed number of marks
// (long essays, short notes, and reasoning questions all share this shape).
type ShortQuestion struct {
	ID       string `json:"id"`
	Question string `json:"question"`
	Marks    int    `json:"marks"`
}

// PracticeSession is one generated exam paper. The model returns it as a
// schema-constrained JSON object; Normalize and Validate run before it is
// handed to the caller.
type PracticeSession struct {
	Subject                 string          `json:"subject"`
	Topic                   string          `json:"topic"`
	LongEssayQuestion       ShortQuestion   `json:"longEssayQuestion"`
	MultipleChoiceQuestions []MCQ           `json:"multipleChoiceQuestions"`
	ShortAnswerQuestions    []ShortQuestion `json:"shortAnswerQuestions"`
	ReasoningQuestions      []ShortQuestion `json:"reasoningQuestions"`
}

// Normalize assigns server-generated ids wherever the model left them blank
// or produced duplicates. Question ids only need to be unique within the
// session, but downstream attempt records snapshot them, so collisions here
// would muddy the log view.
func (s *PracticeSession) Normalize() {
	seen := make(map[string]bool)

	fix := func(qid *string) {
		if *qid == "" || seen[*qid] {
			*qid = id.GenerateID()
		}
		seen[*qid] = true
	}

	fix(&s.LongEssayQuestion.ID)
	for i := range s.MultipleChoiceQuestions {
		fix(&s.MultipleChoiceQuestions[i].ID)
	}
	for i := range s.ShortAnswerQuestions {
		fix(&s.ShortAnswerQuestions[i].ID)
	}
	for i := range s.ReasoningQuestions {
		fix(&s.ReasoningQuestions[i].ID)
	}
}

// Validate checks the parts of the session the presentation layer depends on.
// The mark breakdown is left to the model; a session with a thin question set
// is still usable, but an MCQ with a missing option or a correct option
// outside A-D would break answering.
func (s *PracticeSession) Validate() error {
	if len(s.MultipleChoiceQuestions) == 0 {
		return errors.New("session has no multiple choice questions")
	}
	for i, q := range s.MultipleChoiceQuestions {
		if q.Question == "" {
			return fmt.Errorf("mcq %d: question text is empty", i)
		}
		if q.Options.A == "" || q.Options.B == "" || q.Options.C == "" || q.Options.D == "" {
			return fmt.Errorf("mcq %d: missing one of the four options", i)
		}
		if !attempt.ValidOption(q.CorrectOption) {
			return fmt.Errorf("mcq %d: correct option %q is not one of A-D", i, q.CorrectOption)
		}
	}
	return nil
}
