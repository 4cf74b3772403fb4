package quiz

import (
	"context"
	"strings"
	"time"

	"github.com/Tahmid447/Tahmid-English-Club/internal/models"
)

// State is the quiz session's position in its lifecycle.
type State int

const (
	StateInProgress State = iota
	StateFeedback
	StateComplete
)

func (s State) String() string {
	switch s {
	case StateInProgress:
		return "in_progress"
	case StateFeedback:
		return "feedback"
	case StateComplete:
		return "complete"
	default:
		return "unknown"
	}
}

// Feedback is the per-question grading flag shown after a submission.
type Feedback int

const (
	FeedbackNone Feedback = iota
	FeedbackCorrect
	FeedbackIncorrect
)

func (f Feedback) String() string {
	switch f {
	case FeedbackCorrect:
		return "correct"
	case FeedbackIncorrect:
		return "incorrect"
	default:
		return "none"
	}
}

// Session drives one student through an ordered question list. It owns only
// in-memory progress state; the single external effect is appending one
// result per submission through the recorder.
type Session struct {
	student   models.UserRecord
	questions []models.QuestionRecord
	recorder  ResultRecorder
	now       func() time.Time

	state    State
	index    int
	score    int
	answer   string
	tokens   []string
	feedback Feedback
}

// NewSession starts a session at the first question. An empty question list
// yields an already-complete session.
func NewSession(student models.UserRecord, questions []models.QuestionRecord, recorder ResultRecorder) *Session {
	s := &Session{
		student:   student,
		questions: questions,
		recorder:  recorder,
		now:       time.Now,
		state:     StateInProgress,
	}
	if len(questions) == 0 {
		s.state = StateComplete
	}
	return s
}

// State returns the session's lifecycle state.
func (s *Session) State() State { return s.state }

// Index returns the current question index.
func (s *Session) Index() int { return s.index }

// Score returns the running score.
func (s *Session) Score() int { return s.score }

// Total returns the number of questions.
func (s *Session) Total() int { return len(s.questions) }

// Feedback returns the per-question grading flag.
func (s *Session) Feedback() Feedback { return s.feedback }

// Answer returns the in-progress free-text answer.
func (s *Session) Answer() string { return s.answer }

// Tokens returns the in-progress sorting selection, in tap order.
func (s *Session) Tokens() []string {
	out := make([]string, len(s.tokens))
	copy(out, s.tokens)
	return out
}

// Current returns the question at the current index.
func (s *Session) Current() (models.QuestionRecord, bool) {
	if s.state == StateComplete || s.index >= len(s.questions) {
		return models.QuestionRecord{}, false
	}
	return s.questions[s.index], true
}

// SetAnswer records the in-progress free-text (or selected-option) answer.
func (s *Session) SetAnswer(answer string) {
	if s.state != StateInProgress {
		return
	}
	s.answer = answer
}

// SelectToken adds one occurrence of a sorting token to the selection. A
// token may not be selected more times than it appears in the question's
// options; duplicate tokens are counted independently.
func (s *Session) SelectToken(token string) bool {
	q, ok := s.Current()
	if !ok || s.state != StateInProgress || q.Type != models.QuestionSorting {
		return false
	}
	if countOf(s.tokens, token) >= countOf(q.Options, token) {
		return false
	}
	s.tokens = append(s.tokens, token)
	return true
}

// DeselectToken removes one occurrence of a sorting token from the
// selection, if present.
func (s *Session) DeselectToken(token string) {
	if s.state != StateInProgress {
		return
	}
	for i, t := range s.tokens {
		if t == token {
			s.tokens = append(s.tokens[:i], s.tokens[i+1:]...)
			return
		}
	}
}

func countOf(list []string, token string) int {
	n := 0
	for _, t := range list {
		if t == token {
			n++
		}
	}
	return n
}

// Submit grades the in-progress answer, appends exactly one result record
// (correct or not) and moves the session to feedback. It reports false when
// the session is not accepting a submission.
func (s *Session) Submit(ctx context.Context) (Verdict, bool) {
	q, ok := s.Current()
	if !ok || s.state != StateInProgress {
		return Verdict{}, false
	}

	submitted := s.answer
	if q.Type == models.QuestionSorting {
		submitted = strings.Join(s.tokens, " ")
	}

	verdict := CheckAnswer(q, submitted)

	// The result is recorded before the state transition; recorder failures
	// are swallowed downstream and never abort grading.
	if s.recorder != nil {
		s.recorder.Record(ctx, models.ResultRecord{
			StudentID:   s.student.ID,
			StudentName: s.student.Name,
			Question:    q.Question,
			IsCorrect:   verdict.IsCorrect,
			Date:        s.now().UnixMilli(),
		})
	}

	s.score += verdict.ScoreDelta
	if verdict.IsCorrect {
		s.feedback = FeedbackCorrect
	} else {
		s.feedback = FeedbackIncorrect
	}
	s.state = StateFeedback
	return verdict, true
}

// Advance moves from feedback to the next question, or completes the
// session after the last one. Score and total are fixed on completion.
func (s *Session) Advance() {
	if s.state != StateFeedback {
		return
	}
	s.resetQuestionState()
	if s.index+1 < len(s.questions) {
		s.index++
		s.state = StateInProgress
		return
	}
	s.state = StateComplete
}

// JumpTo moves directly to any question index while the session is active,
// resetting the in-progress answer and feedback. Jumping never re-grades a
// question and never changes the score.
func (s *Session) JumpTo(index int) {
	if s.state == StateComplete || index < 0 || index >= len(s.questions) {
		return
	}
	s.resetQuestionState()
	s.index = index
	s.state = StateInProgress
}

func (s *Session) resetQuestionState() {
	s.answer = ""
	s.tokens = nil
	s.feedback = FeedbackNone
}
