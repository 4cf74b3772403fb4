package api

import (
	"net/http"

	"github.com/Tahmid447/Tahmid-English-Club/internal/audio"
	"github.com/Tahmid447/Tahmid-English-Club/internal/logger"
)

type loginRequest struct {
	ID   string `json:"id"`
	Pass string `json:"pass"`
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, err)
		return
	}

	user, err := s.Auth.Login(r.Context(), req.ID, req.Pass)
	if err != nil {
		s.Player.Play(r.Context(), audio.CueWrong)
		handleError(w, r, err)
		return
	}

	s.Player.Play(r.Context(), audio.CueSuccess)
	writeJSON(w, http.StatusOK, map[string]any{"user": user})
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())
	s.Auth.Logout(r.Context())

	s.mu.Lock()
	s.session = nil
	s.mu.Unlock()

	log.Debug("session cleared")
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleSession(w http.ResponseWriter, r *http.Request) {
	user, ok := s.Auth.CurrentUser(r.Context())
	if !ok {
		writeJSON(w, http.StatusOK, map[string]any{"user": nil})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"user": user})
}
