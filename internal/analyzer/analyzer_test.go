package analyzer

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"symptomchecker/internal/config"
	"symptomchecker/internal/llm"
)

type fakeProvider struct {
	resp       *llm.Response
	err        error
	calls      int
	lastSystem string
	lastUser   string
}

func (f *fakeProvider) Complete(ctx context.Context, systemMessage string, userMessage string, opts ...llm.Option) (*llm.Response, error) {
	f.calls++
	f.lastSystem = systemMessage
	f.lastUser = userMessage
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

func testConfig() config.AnalysisConfig {
	return config.AnalysisConfig{MinSymptomLength: 10, MaxSymptomLength: 1000}
}

func benignResponse() *llm.Response {
	return &llm.Response{
		Content: "⚠️ EDUCATIONAL INFORMATION ONLY - NOT MEDICAL ADVICE ⚠️\n\n" +
			"Possible conditions: common cold, influenza, sinusitis.\n" +
			"Rest and drink fluids. See a clinician if symptoms persist beyond a week.",
		Model: "llama-3.3-70b-versatile",
		Usage: llm.Usage{PromptTokens: 120, CompletionTokens: 80, TotalTokens: 200},
	}
}

func TestAnalyzeValidation(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"whitespace only", "   "},
		{"too short", "headache"},
		{"too short after trimming", "  headache  "},
		{"too long", strings.Repeat("a", 1001)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			provider := &fakeProvider{resp: benignResponse()}
			a := New(provider, testConfig())

			result, err := a.Analyze(context.Background(), tc.input)

			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Nil(t, result)
			assert.Zero(t, provider.calls, "validation failure must not reach the provider")
		})
	}
}

func TestAnalyzeSuccess(t *testing.T) {
	provider := &fakeProvider{resp: benignResponse()}
	a := New(provider, testConfig())

	input := "I have a headache, fever of 100°F, body aches, sore throat, and runny nose for the past 2 days."
	result, err := a.Analyze(context.Background(), input)
	require.NoError(t, err)

	assert.Equal(t, 1, provider.calls)
	assert.Equal(t, SystemPrompt, provider.lastSystem)
	assert.Equal(t, input, provider.lastUser, "user message is the trimmed symptom text verbatim")

	assert.NotEmpty(t, result.Analysis)
	assert.Equal(t, Disclaimer, result.Disclaimer)
	assert.Equal(t, "llama-3.3-70b-versatile", result.Model)
	assert.Equal(t, int64(200), result.TokensUsed)
	assert.False(t, result.Emergency)
}

func TestAnalyzeTrimsBeforeSending(t *testing.T) {
	provider := &fakeProvider{resp: benignResponse()}
	a := New(provider, testConfig())

	_, err := a.Analyze(context.Background(), "  fever and chills for three days  ")
	require.NoError(t, err)
	assert.Equal(t, "fever and chills for three days", provider.lastUser)
}

func TestEmergencyFlag(t *testing.T) {
	tests := []struct {
		name      string
		content   string
		emergency bool
	}{
		{"mentions 911", "These symptoms may indicate a heart attack. Call 911 now.", true},
		{"mentions hospital", "You should go to the nearest hospital.", true},
		{"mixed case keyword", "Please visit URGENT CARE today.", true},
		{"keyword inside sentence", "This could be serious and warrants attention.", true},
		{"immediately", "Seek help immediately.", true},
		{"benign", "Rest, hydrate, and monitor your temperature.", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			provider := &fakeProvider{resp: &llm.Response{
				Content: "⚠️ EDUCATIONAL INFORMATION ONLY - NOT MEDICAL ADVICE ⚠️\n\n" + tc.content,
				Model:   "llama-3.3-70b-versatile",
			}}
			a := New(provider, testConfig())

			result, err := a.Analyze(context.Background(), "persistent chest tightness and shortness of breath")
			require.NoError(t, err)
			assert.Equal(t, tc.emergency, result.Emergency)
		})
	}
}

func TestBannerPrependedWhenMissing(t *testing.T) {
	provider := &fakeProvider{resp: &llm.Response{
		Content: "Possible conditions include tension headache and dehydration.",
		Model:   "llama-3.3-70b-versatile",
	}}
	a := New(provider, testConfig())

	result, err := a.Analyze(context.Background(), "dull headache behind the eyes since yesterday")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(result.Analysis, EducationalBanner))
}

func TestBannerNotDuplicated(t *testing.T) {
	provider := &fakeProvider{resp: benignResponse()}
	a := New(provider, testConfig())

	result, err := a.Analyze(context.Background(), "dull headache behind the eyes since yesterday")
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(result.Analysis, EducationalBanner))
}

func TestAnalyzeIsRetryTransparent(t *testing.T) {
	provider := &fakeProvider{resp: benignResponse()}
	a := New(provider, testConfig())

	input := "sore throat and swollen glands for four days"
	first, err := a.Analyze(context.Background(), input)
	require.NoError(t, err)
	second, err := a.Analyze(context.Background(), input)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 2, provider.calls)
}

func TestAnalyzeProviderFailures(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"timeout", llm.ErrTimeout},
		{"auth", llm.ErrAuth},
		{"quota", llm.ErrQuota},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			provider := &fakeProvider{err: tc.err}
			a := New(provider, testConfig())

			result, err := a.Analyze(context.Background(), "a valid symptom description of adequate length")
			assert.Nil(t, result, "no partial result on failure")
			assert.ErrorIs(t, err, tc.err)
		})
	}
}
