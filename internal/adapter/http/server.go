// Package adapthttp implements the HTTP adapter for the application.
package adapthttp

import (
	"net/http"

	"loginsvc/internal/app"
)

// Server is the driving HTTP adapter that routes requests to application
// services.
type Server struct {
	accounts *app.AccountService
	auth     *app.AuthService
	oidc     *OIDCConfig
}

// New creates a Server wired to the given application services.
func New(accounts *app.AccountService, auth *app.AuthService) *Server {
	return &Server{accounts: accounts, auth: auth}
}

// WithSSO enables OIDC single sign-on on the server.
func (s *Server) WithSSO(cfg *OIDCConfig) *Server {
	s.oidc = cfg
	return s
}

// Handler returns the root http.Handler for the application.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", s.handleRoot)
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("POST /ping", s.handlePing)

	mux.HandleFunc("POST /users", s.handleCreateUser)
	mux.HandleFunc("GET /users/{user_id}", s.handleGetUser)

	mux.HandleFunc("POST /login", s.handleLogin)
	mux.HandleFunc("GET /me", s.handleMe)
	mux.HandleFunc("GET /validate", s.handleValidate)

	mux.HandleFunc("GET /auth/config", s.handleSSOEnabled)
	mux.HandleFunc("GET /auth/sso/login", s.handleSSOLogin)
	mux.HandleFunc("GET /auth/sso/callback", s.handleSSOCallback)

	return s.loggingMiddleware(withCORS(mux))
}
