// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/class-ballot/cliparse"
	"github.com/danielhkuo/class-ballot/handlers"
	"github.com/danielhkuo/class-ballot/middleware"
	"github.com/danielhkuo/class-ballot/store"
)

func NewRouter(st *store.Store, cfg cliparse.Config) http.Handler {
	mux := http.NewServeMux()

	// Initialize handlers
	groupHandler := handlers.NewGroupHandler(st)
	candidateHandler := handlers.NewCandidateHandler(st)
	voterHandler := handlers.NewVoterHandler(st)
	voteHandler := handlers.NewVoteHandler(st)
	statsHandler := handlers.NewStatsHandler(st)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Groups
	mux.HandleFunc("GET /groups", middleware.WithLogging(groupHandler.ListGroups))

	// Candidates
	mux.HandleFunc("GET /candidates", middleware.WithLogging(candidateHandler.ListCandidates))
	mux.HandleFunc("POST /candidates", middleware.WithLogging(candidateHandler.RegisterCandidate))
	mux.HandleFunc("POST /candidates/check", middleware.WithLogging(candidateHandler.IsCandidate))
	mux.HandleFunc("POST /candidates/remove", middleware.WithLogging(candidateHandler.RemoveCandidate))

	// Voters
	mux.HandleFunc("GET /voters", middleware.WithLogging(voterHandler.ListVoters))
	mux.HandleFunc("POST /voters", middleware.WithLogging(voterHandler.RegisterVoter))

	// Votes
	mux.HandleFunc("POST /votes", middleware.WithLogging(voteHandler.CastVote))
	mux.HandleFunc("POST /votes/withdraw", middleware.WithLogging(voteHandler.WithdrawVote))
	mux.HandleFunc("POST /votes/query", middleware.WithLogging(voteHandler.QueryVote))

	// Tally
	mux.HandleFunc("GET /stats", middleware.WithLogging(statsHandler.GetStats))
	mux.HandleFunc("GET /stats/table", middleware.WithLogging(statsHandler.GetStatsTable))

	// Root endpoint
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("class-ballot API v1"))
	})

	return middleware.CORS(cfg.CORSOrigin, mux)
}
