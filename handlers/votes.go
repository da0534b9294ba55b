// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/danielhkuo/class-ballot/middleware"
	"github.com/danielhkuo/class-ballot/models"
	"github.com/danielhkuo/class-ballot/store"
)

type VoteHandler struct {
	store *store.Store
}

func NewVoteHandler(st *store.Store) *VoteHandler {
	return &VoteHandler{store: st}
}

// CastVote handles POST /votes
// A voter who already voted has the earlier vote replaced.
func (h *VoteHandler) CastVote(w http.ResponseWriter, r *http.Request) {
	var req models.CastVoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	voter := normalizeIdentity(req.Voter)
	if msg := validateIdentity(voter, "voter"); msg != "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, msg)
		return
	}
	candidate := normalizeIdentity(req.Candidate)
	if msg := validateIdentity(candidate, "candidate"); msg != "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, msg)
		return
	}

	if err := h.store.Cast(r.Context(), voter, candidate); err != nil {
		writeStoreError(w, r, err, "cast vote")
		return
	}

	slog.Info("vote cast", "voter_group", voter.Group, "candidate_group", candidate.Group)

	middleware.JSONResponse(w, http.StatusOK, models.MessageResponse{
		Message: "Vote registered successfully",
	})
}

// WithdrawVote handles POST /votes/withdraw
func (h *VoteHandler) WithdrawVote(w http.ResponseWriter, r *http.Request) {
	voter, ok := parseIdentity(w, r)
	if !ok {
		return
	}

	removed, err := h.store.Withdraw(r.Context(), voter)
	if err != nil {
		writeStoreError(w, r, err, "withdraw vote")
		return
	}

	slog.Info("vote withdrawn", "voter_group", voter.Group, "had_vote", removed)

	middleware.JSONResponse(w, http.StatusOK, models.MessageResponse{
		Message: "Vote removed successfully",
	})
}

// QueryVote handles POST /votes/query
func (h *VoteHandler) QueryVote(w http.ResponseWriter, r *http.Request) {
	voter, ok := parseIdentity(w, r)
	if !ok {
		return
	}

	votingFor, err := h.store.Query(r.Context(), voter)
	if err != nil {
		writeStoreError(w, r, err, "query vote")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.QueryVoteResponse{VotingFor: votingFor})
}
