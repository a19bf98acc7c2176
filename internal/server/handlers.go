package server

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/jonathan/ats-scorer/internal/types"
	"golang.org/x/sync/errgroup"
)

// maxBatchCandidates bounds one batch request.
const maxBatchCandidates = 50

// ScoreResponse is the envelope for successful scoring responses.
type ScoreResponse struct {
	Success bool               `json:"success"`
	Data    *types.ScoreResult `json:"data"`
}

// BatchScoreResponse is the envelope for batch scoring responses.
type BatchScoreResponse struct {
	Success bool                 `json:"success"`
	Data    []*types.ScoreResult `json:"data"`
}

// handleScore scores one candidate against one job description
func (s *Server) handleScore(w http.ResponseWriter, r *http.Request) {
	var req types.ScoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if req.Candidate == nil || req.JobDescription == nil {
		s.errorResponse(w, http.StatusBadRequest, "Missing candidate or jobDescription")
		return
	}

	result := s.engine.Score(req.Candidate, req.JobDescription)

	// Persistence is best-effort: a history failure never fails the scoring
	// request itself.
	if s.db != nil {
		if _, err := s.db.SaveScore(r.Context(), req.JobDescription.Title, result); err != nil {
			log.Printf("Failed to save score report: %v", err)
		}
	}

	s.jsonResponse(w, http.StatusOK, ScoreResponse{Success: true, Data: result})
}

// handleScoreBatch scores many candidates against one job description
func (s *Server) handleScoreBatch(w http.ResponseWriter, r *http.Request) {
	var req types.BatchScoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if err := req.Validate(); err != nil {
		verr := &ErrValidation{Message: "Missing candidates or jobDescription"}
		s.errorResponse(w, HTTPStatus(verr), verr.Error())
		return
	}
	if len(req.Candidates) > maxBatchCandidates {
		s.errorResponse(w, http.StatusBadRequest, "Too many candidates in one batch")
		return
	}

	// The engine is read-only after construction, so candidates can be
	// scored concurrently.
	results := make([]*types.ScoreResult, len(req.Candidates))
	g, _ := errgroup.WithContext(r.Context())
	g.SetLimit(8)
	for i := range req.Candidates {
		g.Go(func() error {
			results[i] = s.engine.Score(&req.Candidates[i], req.JobDescription)
			return nil
		})
	}
	_ = g.Wait()

	s.jsonResponse(w, http.StatusOK, BatchScoreResponse{Success: true, Data: results})
}

// handleListScores returns recent persisted score reports
func (s *Server) handleListScores(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		err := &ErrHistoryDisabled{}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	limit := 50
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			s.errorResponse(w, http.StatusBadRequest, "Invalid limit")
			return
		}
		limit = parsed
	}

	scores, err := s.db.ListScores(r.Context(), limit)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"scores": scores,
		"count":  len(scores),
	})
}

// handleGetScore returns one persisted score report by ID
func (s *Server) handleGetScore(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		err := &ErrHistoryDisabled{}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid score report ID")
		return
	}

	record, err := s.db.GetScoreByID(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if record == nil {
		notFound := &ErrScoreNotFound{ID: id}
		s.errorResponse(w, HTTPStatus(notFound), notFound.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, record)
}

// handleDictionary returns the active skill vocabulary
func (s *Server) handleDictionary(w http.ResponseWriter, _ *http.Request) {
	canonicalCount, aliasCount := s.dict.Size()
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"canonical_count": canonicalCount,
		"alias_count":     aliasCount,
		"canonical":       s.dict.Canonical(),
	})
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}
