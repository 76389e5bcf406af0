package middleware

import (
	"net/http"

	"github.com/go-chi/cors"

	"github.com/angelmondragon/hotelsuite/api/responses"
)

var defaultCORSOrigins = []string{
	"http://localhost:3000", // renderer dev server
	"http://localhost:5173",
}

// CORS applies the renderer origin policy. With no origins the local dev
// servers are allowed.
func CORS(origins ...string) func(http.Handler) http.Handler {
	if len(origins) == 0 {
		origins = defaultCORSOrigins
	}
	return cors.New(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", responses.RequestIDHeader, "X-Requested-With"},
		ExposedHeaders:   []string{responses.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           300,
	}).Handler
}
