// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/danielhkuo/class-ballot/middleware"
	"github.com/danielhkuo/class-ballot/models"
	"github.com/danielhkuo/class-ballot/report"
	"github.com/danielhkuo/class-ballot/store"
)

type StatsHandler struct {
	store *store.Store
}

func NewStatsHandler(st *store.Store) *StatsHandler {
	return &StatsHandler{store: st}
}

// GetStats handles GET /stats
func (h *StatsHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.store.Tally(r.Context())
	if err != nil {
		writeStoreError(w, r, err, "tally votes")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.StatsResponse{Stats: stats})
}

// GetStatsTable handles GET /stats/table
// Same data as GetStats rendered as a plain-text table.
func (h *StatsHandler) GetStatsTable(w http.ResponseWriter, r *http.Request) {
	stats, err := h.store.Tally(r.Context())
	if err != nil {
		writeStoreError(w, r, err, "tally votes")
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	report.NewTallyReport(stats).PrintTallyTable(w)
}
