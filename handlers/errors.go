// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/danielhkuo/class-ballot/middleware"
	"github.com/danielhkuo/class-ballot/models"
	"github.com/danielhkuo/class-ballot/store"
)

// writeStoreError maps store errors to client responses. Unknown errors are
// logged and reported as 500.
func writeStoreError(w http.ResponseWriter, r *http.Request, err error, action string) {
	switch {
	case errors.Is(err, store.ErrInvalidGroup), errors.Is(err, store.ErrDuplicate):
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, store.ErrNotFound):
		middleware.ErrorResponse(w, http.StatusNotFound, err.Error())
	default:
		slog.Error("failed to "+action, "error", err, "request_id", middleware.RequestID(r.Context()))
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
	}
}

// normalizeIdentity trims surrounding whitespace from every field
func normalizeIdentity(id models.Identity) models.Identity {
	return models.Identity{
		Name:    strings.TrimSpace(id.Name),
		Surname: strings.TrimSpace(id.Surname),
		Group:   strings.TrimSpace(id.Group),
	}
}

// validateIdentity returns a client-facing message, or "" when id is valid.
// prefix names the JSON object holding the fields, if any.
func validateIdentity(id models.Identity, prefix string) string {
	field := func(name string) string {
		if prefix == "" {
			return name
		}
		return prefix + "." + name
	}

	switch {
	case id.Name == "":
		return field("name") + " is required"
	case id.Surname == "":
		return field("surname") + " is required"
	case id.Group == "":
		return field("group") + " is required"
	case utf8.RuneCountInString(id.Name) > models.MaxNameLength:
		return field("name") + " is too long"
	case utf8.RuneCountInString(id.Surname) > models.MaxNameLength:
		return field("surname") + " is too long"
	case utf8.RuneCountInString(id.Group) > models.MaxGroupLength:
		return field("group") + " is too long"
	}
	return ""
}

// parseIdentity decodes and validates a {name, surname, group} body.
// On failure it writes a 400 and returns false.
func parseIdentity(w http.ResponseWriter, r *http.Request) (models.Identity, bool) {
	var req models.Identity
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return models.Identity{}, false
	}

	req = normalizeIdentity(req)
	if msg := validateIdentity(req, ""); msg != "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, msg)
		return models.Identity{}, false
	}

	return req, true
}
