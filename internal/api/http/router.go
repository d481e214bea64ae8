package http

import (
	"net/http"

	"github.com/gorilla/mux"
)

// RouterDependencies bundles everything the route table needs.
type RouterDependencies struct {
	Auth           *AuthHandler
	Positions      *PositionHandler
	Applications   *ApplicationHandler
	Contacts       *ContactHandler
	Files          *FileHandler // nil unless local storage is in use
	AuthMiddleware *AuthMiddleware
	AllowedOrigins []string
}

// NewRouter builds the full route table. The admin subtree sits behind the
// auth gate: bearer token plus a database role check on every request.
func NewRouter(deps RouterDependencies) http.Handler {
	r := mux.NewRouter()

	r.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	}).Methods(http.MethodGet)

	api := r.PathPrefix("/api/v1").Subrouter()

	// Public surface
	api.HandleFunc("/auth/signup", deps.Auth.Signup).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", deps.Auth.Login).Methods(http.MethodPost)
	api.HandleFunc("/auth/refresh", deps.Auth.Refresh).Methods(http.MethodPost)
	api.HandleFunc("/positions", deps.Positions.ListPublic).Methods(http.MethodGet)
	api.HandleFunc("/applications", deps.Applications.Submit).Methods(http.MethodPost)
	api.HandleFunc("/contact", deps.Contacts.Submit).Methods(http.MethodPost)

	// Session introspection needs identity but not the admin role
	api.Handle("/auth/session",
		deps.AuthMiddleware.Authenticate(http.HandlerFunc(deps.Auth.Session))).Methods(http.MethodGet)

	// Admin surface
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(deps.AuthMiddleware.RequireAdmin)
	admin.HandleFunc("/positions", deps.Positions.List).Methods(http.MethodGet)
	admin.HandleFunc("/positions", deps.Positions.Create).Methods(http.MethodPost)
	admin.HandleFunc("/positions/{id}", deps.Positions.Update).Methods(http.MethodPatch)
	admin.HandleFunc("/positions/{id}", deps.Positions.Delete).Methods(http.MethodDelete)
	admin.HandleFunc("/positions/{id}/toggle", deps.Positions.ToggleActive).Methods(http.MethodPost)
	admin.HandleFunc("/applications", deps.Applications.List).Methods(http.MethodGet)
	admin.HandleFunc("/applications/{id}/status", deps.Applications.UpdateStatus).Methods(http.MethodPatch)
	admin.HandleFunc("/messages", deps.Contacts.List).Methods(http.MethodGet)

	// Local-storage document route
	if deps.Files != nil {
		r.PathPrefix("/files/").HandlerFunc(deps.Files.Serve).Methods(http.MethodGet)
	}

	var handler http.Handler = r
	handler = CORS(deps.AllowedOrigins)(handler)
	handler = RequestLogging(handler)
	handler = Recover(handler)
	return handler
}
