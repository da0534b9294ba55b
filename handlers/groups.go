// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/danielhkuo/class-ballot/middleware"
	"github.com/danielhkuo/class-ballot/models"
	"github.com/danielhkuo/class-ballot/store"
)

type GroupHandler struct {
	store *store.Store
}

func NewGroupHandler(st *store.Store) *GroupHandler {
	return &GroupHandler{store: st}
}

// ListGroups handles GET /groups
func (h *GroupHandler) ListGroups(w http.ResponseWriter, r *http.Request) {
	groups, err := h.store.ListGroups(r.Context())
	if err != nil {
		writeStoreError(w, r, err, "list groups")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.GroupsResponse{Groups: groups})
}
