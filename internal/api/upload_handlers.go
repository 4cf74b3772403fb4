package api

import (
	"io"
	"net/http"

	apperrors "github.com/Tahmid447/Tahmid-English-Club/internal/errors"
	"github.com/Tahmid447/Tahmid-English-Club/internal/media"
	"github.com/Tahmid447/Tahmid-English-Club/internal/quiz"
)

// handleUpload converts an uploaded image into a referenceable URL.
func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxBodySize); err != nil {
		handleError(w, r, apperrors.NewBadRequestError("invalid multipart form"))
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		handleError(w, r, apperrors.NewBadRequestError("file field required"))
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxBodySize))
	if err != nil {
		handleError(w, r, apperrors.NewInternalError(err))
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"url": media.DataURL(data)})
}

type speakRequest struct {
	Text string `json:"text"`
}

// handleSpeak reads arbitrary text aloud (vocabulary cards).
func (s *Server) handleSpeak(w http.ResponseWriter, r *http.Request) {
	var req speakRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, err)
		return
	}
	s.Speaker.Speak(r.Context(), req.Text)
	w.WriteHeader(http.StatusNoContent)
}

type shuffleRequest struct {
	CorrectAnswer string `json:"correctAnswer"`
}

// handleShuffle builds the options for a sorting question by shuffling the
// words of the correct answer (teacher editor helper).
func (s *Server) handleShuffle(w http.ResponseWriter, r *http.Request) {
	var req shuffleRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, err)
		return
	}
	if req.CorrectAnswer == "" {
		handleError(w, r, apperrors.NewBadRequestError("correctAnswer required"))
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"options": quiz.ShuffleTokens(req.CorrectAnswer)})
}
