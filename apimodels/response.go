package apimodels

import "time"

type AnalyzeResponse struct {
	Success bool `json:"success"`

	// The model's educational analysis of the described symptoms
	Analysis string `json:"analysis"`

	// Fixed medical disclaimer attached to every successful analysis
	Disclaimer string `json:"disclaimer"`

	// Emergency indicates the analysis text contains urgent-care language.
	// Heuristic UI signal only, not a clinical judgement.
	Emergency bool `json:"emergency"`

	// Metadata about the analysis
	Metadata AnalysisMetadata `json:"metadata"`

	// QueryID is set when the query was persisted to the log
	QueryID *int64 `json:"query_id,omitempty"`
}

type AnalysisMetadata struct {
	// Model used for analysis
	Model string `json:"model"`

	// Tokens used in analysis
	TokensUsed int64 `json:"tokens_used"`
}

type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

type QueryRecord struct {
	ID         int64     `json:"id"`
	Symptoms   string    `json:"symptoms"`
	Response   string    `json:"response"`
	Model      string    `json:"model"`
	TokensUsed int64     `json:"tokens_used"`
	CreatedAt  time.Time `json:"created_at"`
}

type HistoryResponse struct {
	Success bool          `json:"success"`
	History []QueryRecord `json:"history"`
	Count   int           `json:"count"`
}

type QueryResponse struct {
	Success bool        `json:"success"`
	Query   QueryRecord `json:"query"`
}

type HealthResponse struct {
	Status          string `json:"status"`
	DatabaseEnabled bool   `json:"database_enabled"`
	Model           string `json:"model"`
}
