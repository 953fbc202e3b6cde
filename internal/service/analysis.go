package service

import (
	"context"
	"log/slog"
	"strconv"

	"github.com/medprep/backend/internal/genai"
	"github.com/medprep/backend/internal/worker"
)

// analysisWorkers bounds concurrent model calls in a batch. The written part
// of a session has 17 questions; three in flight keeps a batch well under the
// model timeout without hammering the endpoint.
const analysisWorkers = 3

// AnalysisService submits handwritten answers for model feedback.
type AnalysisService struct {
	gen    genai.Client
	logger *slog.Logger
}

func NewAnalysisService(gen genai.Client, logger *slog.Logger) *AnalysisService {
	return &AnalysisService{gen: gen, logger: logger}
}

// Analyze critiques a single answer image. One blocking model call.
func (a *AnalysisService) Analyze(ctx context.Context, questionText, imageBase64 string) (*genai.Feedback, error) {
	fb, err := a.gen.AnalyzeAnswer(ctx, questionText, imageBase64)
	if err != nil {
		a.logger.Error("answer analysis failed", "error", err)
		return nil, err
	}
	return fb, nil
}

// BatchItem is one uploaded answer in a batch analysis request.
type BatchItem struct {
	QuestionID  string
	Question    string
	ImageBase64 string
}

// BatchResult carries either feedback or the failure for one item. A failed
// item does not abort the rest of the batch.
type BatchResult struct {
	QuestionID string
	Feedback   *genai.Feedback
	Err        error
}

// AnalyzeBatch runs the items through a bounded worker pool and returns
// results in input order.
func (a *AnalysisService) AnalyzeBatch(ctx context.Context, items []BatchItem) []BatchResult {
	pool := worker.NewPool[BatchResult](analysisWorkers, len(items))

	for i, item := range items {
		item := item
		pool.Submit(strconv.Itoa(i), func() BatchResult {
			fb, err := a.gen.AnalyzeAnswer(ctx, item.Question, item.ImageBase64)
			return BatchResult{QuestionID: item.QuestionID, Feedback: fb, Err: err}
		})
	}
	pool.Close()

	results := make([]BatchResult, len(items))
	for r := range pool.Results() {
		i, _ := strconv.Atoi(r.JobID)
		results[i] = r.Output
		if r.Output.Err != nil {
			a.logger.Error("batch item analysis failed",
				"question_id", r.Output.QuestionID,
				"error", r.Output.Err,
			)
		}
	}
	return results
}
