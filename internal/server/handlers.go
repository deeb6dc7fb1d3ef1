package server

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/google/uuid"

	"github.com/marisa/content-optimizer/internal/benchmark"
	"github.com/marisa/content-optimizer/internal/bulk"
	"github.com/marisa/content-optimizer/internal/pipeline"
	"github.com/marisa/content-optimizer/internal/types"
)

// AnalyzeRequest represents the request body for /analyze
type AnalyzeRequest struct {
	Keyword    string `json:"keyword"`
	UseBrowser bool   `json:"use_browser,omitempty"`
	SkipCache  bool   `json:"skip_cache,omitempty"`
}

// BenchmarksResponse represents the response for /benchmarks
type BenchmarksResponse struct {
	Keyword    string                   `json:"keyword"`
	Benchmarks *types.PreciseBenchmarks `json:"benchmarks"`
}

// TargetsResponse represents the response for /targets
type TargetsResponse struct {
	Targets *types.ExactTargets `json:"targets"`
}

// handleBenchmarks aggregates statistical benchmarks from a provided
// competitor sample.
func (s *Server) handleBenchmarks(w http.ResponseWriter, r *http.Request) {
	var req types.BenchmarkAPIRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	benchmarks, err := benchmark.NewAggregator().CalculateBenchmarks(req.Competitors)
	if err != nil {
		s.errorResponse(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, BenchmarksResponse{
		Keyword:    req.Keyword,
		Benchmarks: benchmarks,
	})
}

// handleTargets derives exact optimization targets from benchmarks.
func (s *Server) handleTargets(w http.ResponseWriter, r *http.Request) {
	var req types.TargetsAPIRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, TargetsResponse{
		Targets: benchmark.DeriveTargets(req.Benchmarks),
	})
}

// handleAnalyze runs the full analysis pipeline for one keyword: discovery,
// fetch, analysis, benchmarks, and targets.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if req.Keyword == "" {
		s.errorResponse(w, http.StatusBadRequest, "keyword is required")
		return
	}

	result, err := pipeline.RunAnalysis(r.Context(), pipeline.RunOptions{
		Keyword:      req.Keyword,
		SearchAPIKey: s.cfg.SearchAPIKey,
		SearchCX:     s.cfg.SearchCX,
		UseBrowser:   req.UseBrowser,
		SkipCache:    req.SkipCache,
	})
	if err != nil {
		s.errorResponse(w, http.StatusBadGateway, err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, result)
}

// handleBulk runs a bulk generation job synchronously and returns the
// compacted result.
func (s *Server) handleBulk(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodeBulkRequest(w, r)
	if !ok {
		return
	}

	result, err := bulk.NewRunner(s.generateFn).Process(r.Context(), toBulkRequest(req), nil)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	s.storeBulkRun(result)
	s.jsonResponse(w, http.StatusOK, result)
}

// handleBulkStream runs a bulk generation job and streams per-item progress
// updates over SSE, ending with the full result.
func (s *Server) handleBulkStream(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodeBulkRequest(w, r)
	if !ok {
		return
	}

	sse, err := NewSSEWriter(w)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	onProgress := func(update types.ProgressUpdate) {
		if werr := sse.WriteEvent("progress", update); werr != nil {
			log.Printf("Error writing progress event: %v", werr)
		}
	}

	result, err := bulk.NewRunner(s.generateFn).Process(r.Context(), toBulkRequest(req), onProgress)
	if err != nil {
		sse.WriteError(err.Error())
		return
	}

	s.storeBulkRun(result)
	if err := sse.WriteEvent("result", result); err != nil {
		log.Printf("Error writing result event: %v", err)
		return
	}
	sse.WriteComplete(result.RunID, runStatus(result))
}

// handleGetBulkRun returns a previously completed bulk run by ID.
func (s *Server) handleGetBulkRun(w http.ResponseWriter, r *http.Request) {
	idStr := r.PathValue("id")
	if _, err := uuid.Parse(idStr); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid run ID format")
		return
	}

	s.runsMu.RLock()
	result, ok := s.runs[idStr]
	s.runsMu.RUnlock()
	if !ok {
		err := &ErrRunNotFound{RunID: idStr}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, result)
}

// decodeBulkRequest parses and validates the shared /bulk request body.
func (s *Server) decodeBulkRequest(w http.ResponseWriter, r *http.Request) (*types.BulkAPIRequest, bool) {
	var req types.BulkAPIRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return nil, false
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return nil, false
	}
	return &req, true
}

// storeBulkRun keeps a completed run retrievable by its ID.
func (s *Server) storeBulkRun(result *types.BulkResult) {
	s.runsMu.Lock()
	s.runs[result.RunID] = result
	s.runsMu.Unlock()
}

// toBulkRequest maps the API DTO onto the runner's request type.
func toBulkRequest(req *types.BulkAPIRequest) types.BulkRequest {
	return types.BulkRequest{
		Items:     req.Items,
		Config:    req.Config,
		UserID:    req.UserID,
		ProjectID: req.ProjectID,
	}
}

// runStatus summarizes a bulk result for the SSE completion event.
func runStatus(result *types.BulkResult) string {
	if result.FailureCount == 0 {
		return "completed"
	}
	if result.SuccessCount == 0 {
		return "failed"
	}
	return "partial"
}
