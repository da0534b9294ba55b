// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/danielhkuo/class-ballot/middleware"
	"github.com/danielhkuo/class-ballot/models"
	"github.com/danielhkuo/class-ballot/store"
)

type CandidateHandler struct {
	store *store.Store
}

func NewCandidateHandler(st *store.Store) *CandidateHandler {
	return &CandidateHandler{store: st}
}

// RegisterCandidate handles POST /candidates
func (h *CandidateHandler) RegisterCandidate(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterCandidateRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	ident := normalizeIdentity(req.Identity())
	if msg := validateIdentity(ident, ""); msg != "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, msg)
		return
	}
	req.Name, req.Surname, req.Group = ident.Name, ident.Surname, ident.Group

	req.Statement = strings.TrimSpace(req.Statement)
	if req.Statement == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "statement is required")
		return
	}

	candidateID, err := h.store.RegisterCandidate(r.Context(), req)
	if err != nil {
		writeStoreError(w, r, err, "register candidate")
		return
	}

	slog.Info("candidate registered", "candidate_id", candidateID, "group", req.Group)

	middleware.JSONResponse(w, http.StatusCreated, models.MessageResponse{
		Message: "Candidate added successfully",
	})
}

// IsCandidate handles POST /candidates/check
func (h *CandidateHandler) IsCandidate(w http.ResponseWriter, r *http.Request) {
	ident, ok := parseIdentity(w, r)
	if !ok {
		return
	}

	isCandidate, err := h.store.IsCandidate(r.Context(), ident)
	if err != nil {
		writeStoreError(w, r, err, "check candidate")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.IsCandidateResponse{IsCandidate: isCandidate})
}

// RemoveCandidate handles POST /candidates/remove
// Votes cast for the candidate are withdrawn along with it.
func (h *CandidateHandler) RemoveCandidate(w http.ResponseWriter, r *http.Request) {
	ident, ok := parseIdentity(w, r)
	if !ok {
		return
	}

	cleared, err := h.store.RemoveCandidate(r.Context(), ident)
	if err != nil {
		writeStoreError(w, r, err, "remove candidate")
		return
	}

	slog.Info("candidate removed", "group", ident.Group, "votes_cleared", cleared)

	middleware.JSONResponse(w, http.StatusOK, models.MessageResponse{
		Message: "Candidate removed successfully",
	})
}

// ListCandidates handles GET /candidates
func (h *CandidateHandler) ListCandidates(w http.ResponseWriter, r *http.Request) {
	candidates, err := h.store.ListCandidates(r.Context())
	if err != nil {
		writeStoreError(w, r, err, "list candidates")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.CandidatesResponse{Candidates: candidates})
}
