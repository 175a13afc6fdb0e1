package apimodels

type AnalyzeRequest struct {
	// Symptoms is the free-text symptom description to analyze
	Symptoms string `json:"symptoms"`
}
