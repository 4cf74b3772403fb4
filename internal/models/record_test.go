package models_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Tahmid447/Tahmid-English-Club/internal/models"
)

func TestRecordAccessors(t *testing.T) {
	r := models.Record{"id": "v1", "createdAt": float64(1700000000000)}
	assert.Equal(t, "v1", r.ID())
	assert.Equal(t, int64(1700000000000), r.CreatedAt())

	empty := models.Record{}
	assert.Equal(t, "", empty.ID())
	assert.Zero(t, empty.CreatedAt())
}

func TestRecordMerge(t *testing.T) {
	base := models.Record{"id": "v1", "word": "Elephant", "meaning": "ぞう"}
	merged := base.Merge(models.Record{"meaning": "elephant (en)"})

	assert.Equal(t, "Elephant", merged["word"], "unspecified fields retained")
	assert.Equal(t, "elephant (en)", merged["meaning"])
	assert.Equal(t, "ぞう", base["meaning"], "original untouched")
}

func TestDecodeRoundTrip(t *testing.T) {
	vocab := models.VocabRecord{
		Base:    models.Base{ID: "v1", CreatedAt: 1700000000000},
		Word:    "Elephant",
		Meaning: "ぞう",
	}

	rec, err := models.ToRecord(vocab)
	require.NoError(t, err)
	assert.Equal(t, "v1", rec.ID())

	decoded, err := models.Decode[models.VocabRecord](rec)
	require.NoError(t, err)
	assert.Equal(t, vocab, decoded)
}

func TestDecodePreservesUnknownKeys(t *testing.T) {
	rec := models.Record{"id": "v1", "word": "Cat", "extra": "kept"}
	decoded, err := models.Decode[models.VocabRecord](rec)
	require.NoError(t, err)
	assert.Equal(t, "Cat", decoded.Word)

	// Unknown keys survive in the generic shape even though the typed
	// record drops them.
	assert.Equal(t, "kept", rec["extra"])
}

func TestDecodeAllDropsAndReports(t *testing.T) {
	records := []models.Record{
		{"id": "q1", "type": "grammar", "question": "ok", "correctAnswer": "ok"},
		{"id": "q2", "type": 42},
	}

	var reported []models.Record
	questions := models.DecodeAll[models.QuestionRecord](records, func(r models.Record, err error) {
		reported = append(reported, r)
	})

	require.Len(t, questions, 1)
	assert.Equal(t, "q1", questions[0].ID)
	require.Len(t, reported, 1)
	assert.Equal(t, "q2", reported[0].ID())
}

func TestValidate(t *testing.T) {
	assert.NoError(t, models.Validate("quiz", models.Record{
		"id": "q1", "type": "grammar", "question": "x", "correctAnswer": "y",
	}))
	assert.Error(t, models.Validate("quiz", models.Record{
		"id": "q2", "type": "telepathy", "question": "x", "correctAnswer": "y",
	}))
	assert.Error(t, models.Validate("users", models.Record{"age": "twelve"}))

	// Unknown collections carry no schema.
	assert.NoError(t, models.Validate("scores", models.Record{"anything": true}))
}

func TestQuestionTypeValid(t *testing.T) {
	assert.True(t, models.QuestionGrammar.Valid())
	assert.True(t, models.QuestionImageSelect.Valid())
	assert.False(t, models.QuestionType("telepathy").Valid())
	assert.False(t, models.QuestionType("").Valid())
}
