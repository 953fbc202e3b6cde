package genai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/medprep/backend/internal/domain/curriculum"
	"github.com/medprep/backend/internal/domain/session"
)

// GeminiClient implements Client against a Gemini-style generateContent
// endpoint. Responses are constrained with a JSON response schema, but small
// models still occasionally wrap the object in prose, so parsing goes through
// extractJSON with one retry.
type GeminiClient struct {
	baseURL string // e.g. "https://generativelanguage.googleapis.com"
	model   string // e.g. "gemini-2.5-flash"
	apiKey  string
	client  *http.Client
}

var _ Client = (*GeminiClient)(nil)

// NewGeminiClient creates a client for the given endpoint and model.
func NewGeminiClient(baseURL, model, apiKey string) *GeminiClient {
	return &GeminiClient{
		baseURL: baseURL,
		model:   model,
		apiKey:  apiKey,
		client: &http.Client{
			Timeout: 120 * time.Second,
		},
	}
}

const maxAttempts = 2

func (g *GeminiClient) GenerateSession(ctx context.Context, subject curriculum.Subject, topic string) (*session.PracticeSession, error) {
	req := generateRequest{
		Contents: []content{{
			Parts: []part{{Text: buildSessionPrompt(subject, topic)}},
		}},
		GenerationConfig: &generationConfig{
			ResponseMIMEType: "application/json",
			ResponseSchema:   sessionSchema,
		},
	}

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		raw, err := g.generateContent(ctx, req)
		if err != nil {
			lastErr = err
			continue
		}

		jsonStr := extractJSON(raw)
		if jsonStr == "" {
			lastErr = &GenError{Reason: "no JSON object in model response"}
			continue
		}

		var s session.PracticeSession
		if err := json.Unmarshal([]byte(jsonStr), &s); err != nil {
			lastErr = &GenError{Reason: "invalid session JSON from model", Wrapped: err}
			continue
		}
		return &s, nil
	}

	return nil, &GenError{
		Reason:  fmt.Sprintf("session generation failed after %d attempts", maxAttempts),
		Wrapped: lastErr,
	}
}

func (g *GeminiClient) AnalyzeAnswer(ctx context.Context, questionText, imageBase64 string) (*Feedback, error) {
	req := generateRequest{
		Contents: []content{{
			Parts: []part{
				{InlineData: &inlineData{MIMEType: "image/jpeg", Data: imageBase64}},
				{Text: buildFeedbackPrompt(questionText)},
			},
		}},
		GenerationConfig: &generationConfig{
			ResponseMIMEType: "application/json",
			ResponseSchema:   feedbackSchema,
		},
	}

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		raw, err := g.generateContent(ctx, req)
		if err != nil {
			lastErr = err
			continue
		}

		jsonStr := extractJSON(raw)
		if jsonStr == "" {
			lastErr = &GenError{Reason: "no JSON object in model response"}
			continue
		}

		var fb Feedback
		if err := json.Unmarshal([]byte(jsonStr), &fb); err != nil {
			lastErr = &GenError{Reason: "invalid feedback JSON from model", Wrapped: err}
			continue
		}
		return &fb, nil
	}

	return nil, &GenError{
		Reason:  fmt.Sprintf("answer analysis failed after %d attempts", maxAttempts),
		Wrapped: lastErr,
	}
}

// ============================================================================
// Wire types
// ============================================================================

type generateRequest struct {
	Contents         []content         `json:"contents"`
	GenerationConfig *generationConfig `json:"generationConfig,omitempty"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text       string      `json:"text,omitempty"`
	InlineData *inlineData `json:"inlineData,omitempty"`
}

type inlineData struct {
	MIMEType string `json:"mimeType"`
	Data     string `json:"data"`
}

type generationConfig struct {
	ResponseMIMEType string         `json:"responseMimeType,omitempty"`
	ResponseSchema   map[string]any `json:"responseSchema,omitempty"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// generateContent performs one request and returns the raw text of the first
// candidate.
func (g *GeminiClient) generateContent(ctx context.Context, body generateRequest) (string, error) {
	jsonData, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent", g.baseURL, g.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", g.apiKey)

	resp, err := g.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("model request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("model returned status %d", resp.StatusCode)
	}

	var genResp generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&genResp); err != nil {
		return "", fmt.Errorf("failed to decode model response: %w", err)
	}

	if len(genResp.Candidates) == 0 || len(genResp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("model returned no candidates")
	}

	text := genResp.Candidates[0].Content.Parts[0].Text
	if text == "" {
		return "", fmt.Errorf("model returned empty content")
	}
	return text, nil
}

// ============================================================================
// JSON extraction
// ============================================================================

// extractJSON finds the outermost JSON object in a string. It handles nested
// braces and skips braces inside quoted strings.
func extractJSON(s string) string {
	start := -1
	depth := 0
	inString := false
	escaped := false

	for i, ch := range s {
		if escaped {
			escaped = false
			continue
		}
		if ch == '\\' && inString {
			escaped = true
			continue
		}
		if ch == '"' {
			inString = !inString
			continue
		}
		if inString {
			continue
		}

		if ch == '{' {
			if depth == 0 {
				start = i
			}
			depth++
		} else if ch == '}' {
			depth--
			if depth == 0 && start != -1 {
				return s[start : i+1]
			}
		}
	}
	return ""
}
