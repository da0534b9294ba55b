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

type VoterHandler struct {
	store *store.Store
}

func NewVoterHandler(st *store.Store) *VoterHandler {
	return &VoterHandler{store: st}
}

// RegisterVoter handles POST /voters
func (h *VoterHandler) RegisterVoter(w http.ResponseWriter, r *http.Request) {
	ident, ok := parseIdentity(w, r)
	if !ok {
		return
	}

	voterID, err := h.store.RegisterVoter(r.Context(), ident)
	if err != nil {
		writeStoreError(w, r, err, "register voter")
		return
	}

	slog.Info("voter registered", "voter_id", voterID, "group", ident.Group)

	middleware.JSONResponse(w, http.StatusCreated, models.MessageResponse{
		Message: "Voter added successfully",
	})
}

// ListVoters handles GET /voters
func (h *VoterHandler) ListVoters(w http.ResponseWriter, r *http.Request) {
	voters, err := h.store.ListVoters(r.Context())
	if err != nil {
		writeStoreError(w, r, err, "list voters")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.VotersResponse{Voters: voters})
}
