package api

import (
	"net/http"

	"github.com/Tahmid447/Tahmid-English-Club/internal/audio"
	apperrors "github.com/Tahmid447/Tahmid-English-Club/internal/errors"
	"github.com/Tahmid447/Tahmid-English-Club/internal/models"
	"github.com/Tahmid447/Tahmid-English-Club/internal/quiz"
)

func groupedOrEmpty(questions []models.QuestionRecord) []quiz.Assignment {
	groups := quiz.GroupAssignments(questions)
	if groups == nil {
		groups = []quiz.Assignment{}
	}
	return groups
}

type quizStartRequest struct {
	Title string `json:"title"`
	Date  string `json:"date"`
}

func (s *Server) handleQuizStart(w http.ResponseWriter, r *http.Request) {
	var req quizStartRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, err)
		return
	}

	user, _ := userFromContext(r.Context())

	var items []models.QuestionRecord
	for _, group := range groupedOrEmpty(s.questions(r)) {
		if group.Title == req.Title && group.Date == req.Date {
			items = group.Items
			break
		}
	}
	if len(items) == 0 {
		handleError(w, r, apperrors.NewNotFoundError("assignment", req.Title))
		return
	}

	session := quiz.NewSession(user, items, quiz.NewStoreRecorder(s.Store))

	s.mu.Lock()
	s.session = session
	s.mu.Unlock()

	s.writeQuizState(w, r, session)
}

func (s *Server) activeSession() (*quiz.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.session == nil {
		return nil, apperrors.NewBadRequestError("no active quiz")
	}
	return s.session, nil
}

func (s *Server) writeQuizState(w http.ResponseWriter, r *http.Request, session *quiz.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state := map[string]any{
		"state":    session.State().String(),
		"index":    session.Index(),
		"score":    session.Score(),
		"total":    session.Total(),
		"feedback": session.Feedback().String(),
		"answer":   session.Answer(),
		"tokens":   session.Tokens(),
	}
	if q, ok := session.Current(); ok {
		state["question"] = q
	}
	writeJSON(w, http.StatusOK, state)
}

func (s *Server) handleQuizState(w http.ResponseWriter, r *http.Request) {
	session, err := s.activeSession()
	if err != nil {
		handleError(w, r, err)
		return
	}
	s.writeQuizState(w, r, session)
}

type quizAnswerRequest struct {
	Answer string `json:"answer"`
}

func (s *Server) handleQuizAnswer(w http.ResponseWriter, r *http.Request) {
	session, err := s.activeSession()
	if err != nil {
		handleError(w, r, err)
		return
	}

	var req quizAnswerRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, err)
		return
	}

	s.mu.Lock()
	session.SetAnswer(req.Answer)
	s.mu.Unlock()

	s.writeQuizState(w, r, session)
}

type quizTokenRequest struct {
	Token string `json:"token"`
}

func (s *Server) handleQuizSelectToken(w http.ResponseWriter, r *http.Request) {
	session, err := s.activeSession()
	if err != nil {
		handleError(w, r, err)
		return
	}

	var req quizTokenRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, err)
		return
	}

	s.mu.Lock()
	added := session.SelectToken(req.Token)
	s.mu.Unlock()

	if added {
		s.Player.Play(r.Context(), audio.CuePop)
	}
	s.writeQuizState(w, r, session)
}

func (s *Server) handleQuizDeselectToken(w http.ResponseWriter, r *http.Request) {
	session, err := s.activeSession()
	if err != nil {
		handleError(w, r, err)
		return
	}

	var req quizTokenRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, err)
		return
	}

	s.mu.Lock()
	session.DeselectToken(req.Token)
	s.mu.Unlock()

	s.Player.Play(r.Context(), audio.CuePop)
	s.writeQuizState(w, r, session)
}

func (s *Server) handleQuizSubmit(w http.ResponseWriter, r *http.Request) {
	session, err := s.activeSession()
	if err != nil {
		handleError(w, r, err)
		return
	}

	s.mu.Lock()
	verdict, ok := session.Submit(r.Context())
	s.mu.Unlock()

	if !ok {
		handleError(w, r, apperrors.NewBadRequestError("quiz is not accepting an answer"))
		return
	}

	if verdict.IsCorrect {
		s.Player.Play(r.Context(), audio.CueCorrect)
	} else {
		s.Player.Play(r.Context(), audio.CueWrong)
	}
	s.writeQuizState(w, r, session)
}

func (s *Server) handleQuizNext(w http.ResponseWriter, r *http.Request) {
	session, err := s.activeSession()
	if err != nil {
		handleError(w, r, err)
		return
	}

	s.mu.Lock()
	session.Advance()
	done := session.State() == quiz.StateComplete
	s.mu.Unlock()

	if done {
		s.Player.Play(r.Context(), audio.CueSuccess)
	}
	s.writeQuizState(w, r, session)
}

type quizJumpRequest struct {
	Index int `json:"index"`
}

func (s *Server) handleQuizJump(w http.ResponseWriter, r *http.Request) {
	session, err := s.activeSession()
	if err != nil {
		handleError(w, r, err)
		return
	}

	var req quizJumpRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, err)
		return
	}

	s.mu.Lock()
	session.JumpTo(req.Index)
	s.mu.Unlock()

	s.writeQuizState(w, r, session)
}

// handleQuizSpeak reads the current question's correct answer aloud, for
// listening questions. The client never sees the answer text.
func (s *Server) handleQuizSpeak(w http.ResponseWriter, r *http.Request) {
	session, err := s.activeSession()
	if err != nil {
		handleError(w, r, err)
		return
	}

	s.mu.Lock()
	q, ok := session.Current()
	s.mu.Unlock()

	if ok {
		s.Speaker.Speak(r.Context(), q.CorrectAnswer)
	}
	w.WriteHeader(http.StatusNoContent)
}
