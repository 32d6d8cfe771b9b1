package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jonathan/resume-fit/internal/scoring"
)

// ScoreRequest is the request body for /score and /score/quick. The resume is
// a hard precondition; the job text is optional.
type ScoreRequest struct {
	Resume string `json:"resume" validate:"required"`
	Job    string `json:"job,omitempty"`
	Save   bool   `json:"save,omitempty"` // persist to history when enabled
}

// BatchScoreRequest is the request body for /score/batch.
type BatchScoreRequest struct {
	Resume string               `json:"resume" validate:"required"`
	Jobs   []scoring.JobPosting `json:"jobs" validate:"required,min=1,dive"`
}

// decodeAndValidate parses the request body and applies struct validation.
func (s *Server) decodeAndValidate(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return &ErrValidation{Field: "body", Message: "invalid JSON: " + err.Error()}
	}
	if err := s.validate.Struct(dst); err != nil {
		var invalid validator.ValidationErrors
		if errors.As(err, &invalid) && len(invalid) > 0 {
			return &ErrValidation{Field: invalid[0].Field(), Message: "failed " + invalid[0].Tag() + " validation"}
		}
		return &ErrValidation{Field: "body", Message: err.Error()}
	}
	return nil
}

// handleScore runs the full three-signal pipeline for one resume/job pair.
func (s *Server) handleScore(w http.ResponseWriter, r *http.Request) {
	var req ScoreRequest
	if err := s.decodeAndValidate(r, &req); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	report := s.engine.Score(r.Context(), req.Resume, req.Job)

	if req.Save && s.history != nil {
		if _, err := s.history.SaveReport(r.Context(), "", "", report); err != nil {
			// History is best-effort; the report is still returned.
			s.logger.Warn("failed to persist report", zap.Error(err))
		}
	}

	s.jsonResponse(w, http.StatusOK, report)
}

// handleQuickScore runs the two-signal variant; it never calls the external
// service.
func (s *Server) handleQuickScore(w http.ResponseWriter, r *http.Request) {
	var req ScoreRequest
	if err := s.decodeAndValidate(r, &req); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, s.engine.QuickScore(req.Resume, req.Job))
}

// handleScoreBatch ranks the resume against multiple postings.
func (s *Server) handleScoreBatch(w http.ResponseWriter, r *http.Request) {
	var req BatchScoreRequest
	if err := s.decodeAndValidate(r, &req); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	results := s.engine.ScoreBatch(r.Context(), req.Resume, req.Jobs)
	s.jsonResponse(w, http.StatusOK, map[string]any{"results": results})
}

// handleTaxonomy returns the read-only taxonomy snapshot for client display.
func (s *Server) handleTaxonomy(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, s.engine.Taxonomy())
}

// handleListReports returns recent report summaries from history.
func (s *Server) handleListReports(w http.ResponseWriter, r *http.Request) {
	if s.history == nil {
		err := &ErrHistoryDisabled{}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		limit, _ = strconv.Atoi(v)
	}

	summaries, err := s.history.ListReports(r.Context(), limit)
	if err != nil {
		s.logger.Error("failed to list reports", zap.Error(err))
		s.errorResponse(w, HTTPStatus(err), "failed to list reports")
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"reports": summaries})
}

// handleGetReport returns one persisted report.
func (s *Server) handleGetReport(w http.ResponseWriter, r *http.Request) {
	if s.history == nil {
		err := &ErrHistoryDisabled{}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		verr := &ErrValidation{Field: "id", Message: "must be a UUID"}
		s.errorResponse(w, HTTPStatus(verr), verr.Error())
		return
	}

	stored, err := s.history.GetReport(r.Context(), id)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, stored)
}
