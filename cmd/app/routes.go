package app

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"socialfeed/internal/config"
	handlers "socialfeed/internal/handler"
	"socialfeed/internal/middleware"
)

// NewRouter registers every route. Reads, registration and login are public;
// writes need a bearer token.
func NewRouter(h *handlers.Handlers, cfg *config.Config, logger *slog.Logger) http.Handler {
	r := mux.NewRouter()

	auth := middleware.AuthMiddleware(h.AuthService)
	protected := func(fn http.HandlerFunc) http.Handler {
		return auth(fn)
	}

	r.HandleFunc("/health", h.Health).Methods(http.MethodGet)
	r.HandleFunc("/auth/login", h.Login).Methods(http.MethodPost)

	r.HandleFunc("/posts", h.GetPosts).Methods(http.MethodGet)
	r.Handle("/posts", protected(h.CreatePost)).Methods(http.MethodPost)
	r.HandleFunc("/posts/{id}", h.GetPost).Methods(http.MethodGet)
	r.Handle("/posts/{id}", protected(h.DeletePost)).Methods(http.MethodDelete)
	r.HandleFunc("/posts/{id}/images", h.GetImages).Methods(http.MethodGet)
	r.Handle("/posts/{id}/images", protected(h.AddImage)).Methods(http.MethodPost)

	r.HandleFunc("/likes", h.GetLikes).Methods(http.MethodGet)
	r.Handle("/likes", protected(h.CreateLike)).Methods(http.MethodPost)
	r.HandleFunc("/likes/{id}", h.GetLike).Methods(http.MethodGet)
	r.Handle("/likes/{id}", protected(h.DeleteLike)).Methods(http.MethodDelete)

	r.HandleFunc("/users", h.GetUsers).Methods(http.MethodGet)
	r.HandleFunc("/users", h.CreateUser).Methods(http.MethodPost)
	r.HandleFunc("/users/{id}", h.GetUser).Methods(http.MethodGet)
	r.Handle("/users/{id}", protected(h.DeleteUser)).Methods(http.MethodDelete)

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		handlers.WriteError(w, "Not found", http.StatusNotFound)
	})
	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		handlers.WriteError(w, "Method not allowed", http.StatusMethodNotAllowed)
	})

	return middleware.Chain(
		r,
		middleware.TimeoutMiddleware(cfg.RequestTimeout),
		middleware.CORSMiddleware,
		middleware.LoggingMiddleware(logger),
		middleware.RecoverMiddleware(logger),
	)
}
