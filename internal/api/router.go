package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func NewRouter(apiHandler *APIHandler, staticDir string) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Logger)       // Basic request logging
	r.Use(middleware.Recoverer)    // Recover from panics
	r.Use(middleware.StripSlashes) // Ensure consistent path handling

	r.Post("/chat", apiHandler.ChatHandler)
	r.Post("/get-conversation", apiHandler.GetConversationHandler)
	r.Post("/search", apiHandler.SearchHandler)
	r.Post("/process-text", apiHandler.ProcessTextHandler)
	r.Post("/reset-session", apiHandler.ResetSessionHandler)
	r.Get("/get-session", apiHandler.GetSessionHandler)
	r.Get("/health", apiHandler.HealthHandler)

	if staticDir != "" {
		fileServer := http.FileServer(http.Dir(staticDir))
		r.Handle("/*", fileServer)
	}

	return r
}
