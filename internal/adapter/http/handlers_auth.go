package adapthttp

import (
	"errors"
	"net/http"

	"loginsvc/internal/app"
)

var errMissingToken = errors.New("missing bearer token")

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req struct {
		UserID   string `json:"user_id"`
		Password string `json:"password"`
	}
	if err := parseJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	token, err := s.auth.Login(r.Context(), req.UserID, req.Password)
	if errors.Is(err, app.ErrInvalidCredentials) {
		writeError(w, http.StatusUnauthorized, err)
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, errors.New("internal error"))
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"ok": true, "token": token, "user_id": req.UserID})
}

func (s *Server) handleMe(w http.ResponseWriter, r *http.Request) {
	token, ok := bearerToken(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, errMissingToken)
		return
	}

	user, err := s.auth.CurrentUser(r.Context(), token)
	if errors.Is(err, app.ErrInvalidToken) {
		writeError(w, http.StatusUnauthorized, err)
		return
	}
	if errors.Is(err, app.ErrAccountNotFound) {
		writeError(w, http.StatusNotFound, err)
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, errors.New("internal error"))
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"ok": true, "user": user})
}

// handleValidate lets other services confirm a token and learn its user
// id. Like the original, an invalid token is a 200 with ok:false rather
// than an error status.
func (s *Server) handleValidate(w http.ResponseWriter, r *http.Request) {
	token, ok := bearerToken(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, errMissingToken)
		return
	}

	userID, err := s.auth.ResolveSession(r.Context(), token)
	if errors.Is(err, app.ErrInvalidToken) {
		writeJSON(w, http.StatusOK, map[string]any{"ok": false, "message": "invalid token"})
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, errors.New("internal error"))
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"ok": true, "user_id": userID})
}
