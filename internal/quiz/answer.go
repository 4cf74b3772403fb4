package quiz

import (
	"strings"

	"github.com/Tahmid447/Tahmid-English-Club/internal/models"
)

// Verdict is the outcome of grading one submitted answer.
type Verdict struct {
	IsCorrect  bool
	ScoreDelta int
}

// normalize lowercases, strips the characters ". , ? !" and trims
// surrounding whitespace before comparison.
func normalize(s string) string {
	s = strings.ToLower(s)
	s = strings.Map(func(r rune) rune {
		switch r {
		case '.', ',', '?', '!':
			return -1
		}
		return r
	}, s)
	return strings.TrimSpace(s)
}

// CheckAnswer grades submitted against the question. It is a pure function
// of its inputs.
//
// For sorting questions submitted is the selected tokens joined with single
// spaces; punctuation is stripped from the whole joined string, not per
// token. image_select options are opaque image references and compare by
// exact value; every other type compares normalized strings.
func CheckAnswer(q models.QuestionRecord, submitted string) Verdict {
	var correct bool
	if q.Type == models.QuestionImageSelect {
		correct = submitted == q.CorrectAnswer
	} else {
		correct = normalize(submitted) == normalize(q.CorrectAnswer)
	}
	if correct {
		return Verdict{IsCorrect: true, ScoreDelta: 1}
	}
	return Verdict{}
}
