package analyzer

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"symptomchecker/internal/config"
	"symptomchecker/internal/llm"
)

// ValidationError reports a defect in the caller's input. Always
// recoverable by resubmitting corrected input; no provider call is made.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// Result is the analyzer's successful output. Constructed once per call,
// never partially filled.
type Result struct {
	Analysis   string
	Disclaimer string
	Emergency  bool
	Model      string
	TokensUsed int64
}

// Analyzer validates symptom input, builds the prompt pair, invokes the
// provider, and classifies the reply. It holds no cross-request state, so
// a single instance serves concurrent requests without locking.
type Analyzer struct {
	provider llm.Provider
	cfg      config.AnalysisConfig
}

func New(provider llm.Provider, cfg config.AnalysisConfig) *Analyzer {
	return &Analyzer{
		provider: provider,
		cfg:      cfg,
	}
}

func (a *Analyzer) Analyze(ctx context.Context, rawText string) (*Result, error) {
	symptoms, err := a.validate(rawText)
	if err != nil {
		return nil, err
	}

	slog.Info("analyzing symptoms", "length", utf8.RuneCountInString(symptoms))

	resp, err := a.provider.Complete(ctx, SystemPrompt, symptoms)
	if err != nil {
		slog.Error("symptom analysis failed", "error", err)
		return nil, fmt.Errorf("symptom analysis failed: %w", err)
	}

	analysis := resp.Content
	if !hasEducationalBanner(analysis) {
		analysis = EducationalBanner + "\n\n" + analysis
	}

	return &Result{
		Analysis:   analysis,
		Disclaimer: Disclaimer,
		Emergency:  containsUrgencyKeyword(resp.Content),
		Model:      resp.Model,
		TokensUsed: resp.Usage.TotalTokens,
	}, nil
}

// validate trims the input and applies the ordered length checks. Returns
// the trimmed text on success.
func (a *Analyzer) validate(rawText string) (string, error) {
	symptoms := strings.TrimSpace(rawText)
	if symptoms == "" {
		return "", &ValidationError{Reason: "please provide a description of your symptoms"}
	}

	length := utf8.RuneCountInString(symptoms)
	if length < a.cfg.MinSymptomLength {
		return "", &ValidationError{Reason: fmt.Sprintf(
			"please provide a more detailed description of your symptoms (at least %d characters)", a.cfg.MinSymptomLength)}
	}
	if length > a.cfg.MaxSymptomLength {
		return "", &ValidationError{Reason: fmt.Sprintf(
			"symptom description is too long (maximum %d characters)", a.cfg.MaxSymptomLength)}
	}

	return symptoms, nil
}

func hasEducationalBanner(text string) bool {
	upper := strings.ToUpper(text)
	return strings.Contains(upper, "EDUCATIONAL") || strings.Contains(upper, "NOT MEDICAL ADVICE")
}

func containsUrgencyKeyword(text string) bool {
	lower := strings.ToLower(text)
	for _, kw := range urgencyKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
