package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"symptomchecker/apimodels"
	"symptomchecker/internal/analyzer"
	"symptomchecker/internal/llm"
	"symptomchecker/internal/store"
)

const (
	defaultHistoryLimit = 10
	maxHistoryLimit     = 50
)

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req apimodels.AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	defer r.Body.Close()

	result, err := s.analyzer.Analyze(r.Context(), req.Symptoms)
	if err != nil {
		writeAnalyzeError(w, err)
		return
	}

	resp := apimodels.AnalyzeResponse{
		Success:    true,
		Analysis:   result.Analysis,
		Disclaimer: result.Disclaimer,
		Emergency:  result.Emergency,
		Metadata: apimodels.AnalysisMetadata{
			Model:      result.Model,
			TokensUsed: result.TokensUsed,
		},
	}

	// Persist after, never during, analysis. A logging failure must not
	// fail a successful analysis.
	if s.store.Enabled() {
		id, err := s.store.Record(r.Context(), strings.TrimSpace(req.Symptoms), result.Analysis, result.Model, result.TokensUsed)
		if err != nil {
			slog.Error("failed to record query", "error", err)
		} else {
			resp.QueryID = &id
		}
	}

	writeJSON(w, http.StatusOK, resp)
}

// writeAnalyzeError maps the analyzer's typed failures to HTTP statuses:
// input defects to 400, upstream failures to 502/504, the rest to 500.
// Upstream detail stays in the logs, not in the response.
func writeAnalyzeError(w http.ResponseWriter, err error) {
	var verr *analyzer.ValidationError
	var perr *llm.ProviderError

	switch {
	case errors.As(err, &verr):
		writeError(w, http.StatusBadRequest, verr.Error())
	case errors.Is(err, llm.ErrTimeout):
		writeError(w, http.StatusGatewayTimeout, "the analysis request timed out, please try again")
	case errors.Is(err, llm.ErrAuth):
		writeError(w, http.StatusBadGateway, "analysis service authentication failed")
	case errors.Is(err, llm.ErrQuota):
		writeError(w, http.StatusBadGateway, "analysis service is busy, please try again in a moment")
	case errors.As(err, &perr):
		writeError(w, http.StatusBadGateway, "the analysis service returned an error, please try again")
	default:
		writeError(w, http.StatusInternalServerError, "an error occurred while processing your request")
	}
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	limit := defaultHistoryLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 1 {
			writeError(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = v
	}
	if limit > maxHistoryLimit {
		limit = maxHistoryLimit
	}

	records, err := s.store.Recent(r.Context(), limit)
	if err != nil {
		slog.Error("failed to load history", "error", err)
		writeError(w, http.StatusInternalServerError, "an error occurred while retrieving history")
		return
	}

	history := make([]apimodels.QueryRecord, 0, len(records))
	for _, rec := range records {
		history = append(history, toAPIRecord(rec))
	}

	writeJSON(w, http.StatusOK, apimodels.HistoryResponse{
		Success: true,
		History: history,
		Count:   len(history),
	})
}

func (s *Server) handleQuery(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid query id")
		return
	}

	rec, err := s.store.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "query not found")
			return
		}
		slog.Error("failed to load query", "error", err, "id", id)
		writeError(w, http.StatusInternalServerError, "an error occurred while retrieving the query")
		return
	}

	writeJSON(w, http.StatusOK, apimodels.QueryResponse{
		Success: true,
		Query:   toAPIRecord(*rec),
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, apimodels.HealthResponse{
		Status:          "healthy",
		DatabaseEnabled: s.store.Enabled(),
		Model:           s.cfg.Groq.Model,
	})
}

func toAPIRecord(rec store.QueryRecord) apimodels.QueryRecord {
	return apimodels.QueryRecord{
		ID:         rec.ID,
		Symptoms:   rec.Symptoms,
		Response:   rec.Response,
		Model:      rec.Model,
		TokensUsed: rec.TokensUsed,
		CreatedAt:  rec.CreatedAt,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, apimodels.ErrorResponse{Success: false, Error: message})
}
