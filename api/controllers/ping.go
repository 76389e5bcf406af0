package controllers

import (
	"net/http"

	"github.com/angelmondragon/hotelsuite/api/middleware"
	"github.com/angelmondragon/hotelsuite/api/responses"
)

func PublicPing() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, map[string]string{"scope": "public", "status": "ok"})
	}
}

func PrivatePing() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		payload := map[string]string{"scope": "private", "status": "ok"}
		if id := middleware.EstablishmentIDFromContext(r.Context()); id != "" {
			payload["establishment_id"] = id
		}
		if role := middleware.RoleFromContext(r.Context()); role != "" {
			payload["role"] = role
		}
		responses.WriteSuccess(w, payload)
	}
}
