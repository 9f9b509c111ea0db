package adapthttp

import (
	"errors"
	"net/http"

	"loginsvc/internal/app"
)

func (s *Server) handleCreateUser(w http.ResponseWriter, r *http.Request) {
	var req struct {
		UserID      string `json:"user_id"`
		Password    string `json:"password"`
		DisplayName string `json:"display_name"`
	}
	if err := parseJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	user, err := s.accounts.CreateAccount(r.Context(), req.UserID, req.Password, req.DisplayName)
	if errors.Is(err, app.ErrDuplicateUser) {
		writeError(w, http.StatusConflict, err)
		return
	}
	if errors.Is(err, app.ErrInvalidInput) {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, errors.New("internal error"))
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"ok": true, "user": user})
}

func (s *Server) handleGetUser(w http.ResponseWriter, r *http.Request) {
	user, err := s.accounts.PublicProfile(r.Context(), r.PathValue("user_id"))
	if errors.Is(err, app.ErrAccountNotFound) {
		writeError(w, http.StatusNotFound, err)
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, errors.New("internal error"))
		return
	}

	writeJSON(w, http.StatusOK, user)
}
