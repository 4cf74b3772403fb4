package quiz_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Tahmid447/Tahmid-English-Club/internal/models"
	"github.com/Tahmid447/Tahmid-English-Club/internal/quiz"
)

func grammarQuestion(correct string) models.QuestionRecord {
	return models.QuestionRecord{
		Base:          models.Base{ID: "q1"},
		Type:          models.QuestionGrammar,
		Question:      "I ___ playing soccer now.",
		CorrectAnswer: correct,
	}
}

func TestCheckAnswer_CaseAndWhitespaceInsensitive(t *testing.T) {
	q := grammarQuestion("am")

	assert.True(t, quiz.CheckAnswer(q, "am").IsCorrect)
	assert.True(t, quiz.CheckAnswer(q, "  AM ").IsCorrect)
	assert.True(t, quiz.CheckAnswer(q, "Am.").IsCorrect)
	assert.False(t, quiz.CheckAnswer(q, "is").IsCorrect)
}

func TestCheckAnswer_PunctuationStripped(t *testing.T) {
	q := models.QuestionRecord{Type: models.QuestionWriting, CorrectAnswer: "Yes, it is."}

	assert.True(t, quiz.CheckAnswer(q, "yes it is").IsCorrect)
	assert.True(t, quiz.CheckAnswer(q, "Yes, it is!").IsCorrect)
	assert.False(t, quiz.CheckAnswer(q, "yes it was").IsCorrect)
}

func TestCheckAnswer_ScoreDelta(t *testing.T) {
	q := grammarQuestion("am")

	assert.Equal(t, 1, quiz.CheckAnswer(q, "am").ScoreDelta)
	assert.Equal(t, 0, quiz.CheckAnswer(q, "is").ScoreDelta)
}

func TestCheckAnswer_SortingJoinedString(t *testing.T) {
	q := models.QuestionRecord{
		Type:          models.QuestionSorting,
		Options:       []string{"a", "This", "pen", "is"},
		CorrectAnswer: "This is a pen",
	}

	join := func(tokens ...string) string {
		out := ""
		for i, tok := range tokens {
			if i > 0 {
				out += " "
			}
			out += tok
		}
		return out
	}

	assert.True(t, quiz.CheckAnswer(q, join("This", "is", "a", "pen")).IsCorrect)
	assert.False(t, quiz.CheckAnswer(q, join("is", "This", "a", "pen")).IsCorrect)

	// Punctuation is stripped from the whole joined string, not per token,
	// so a trailing period on the final token still matches.
	assert.True(t, quiz.CheckAnswer(q, join("This", "is", "a", "pen.")).IsCorrect)
}

func TestCheckAnswer_ImageSelectExactValue(t *testing.T) {
	q := models.QuestionRecord{
		Type:          models.QuestionImageSelect,
		Options:       []string{"https://img/cat.png", "https://img/dog.png"},
		CorrectAnswer: "https://img/cat.png",
	}

	assert.True(t, quiz.CheckAnswer(q, "https://img/cat.png").IsCorrect)
	assert.False(t, quiz.CheckAnswer(q, "https://img/dog.png").IsCorrect)
	// No normalization for image references: value must match exactly.
	assert.False(t, quiz.CheckAnswer(q, "HTTPS://IMG/CAT.PNG").IsCorrect)
}

func TestCheckAnswer_Deterministic(t *testing.T) {
	q := grammarQuestion("am")
	first := quiz.CheckAnswer(q, "  AM ")
	for range 10 {
		assert.Equal(t, first, quiz.CheckAnswer(q, "  AM "))
	}
}
