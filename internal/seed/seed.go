// Package seed holds the demo content used to pre-populate the store on
// first run.
package seed

import (
	"context"
	"time"

	"github.com/Tahmid447/Tahmid-English-Club/internal/logger"
	"github.com/Tahmid447/Tahmid-English-Club/internal/models"
	"github.com/Tahmid447/Tahmid-English-Club/internal/store"
)

// Vocab returns the demo vocabulary cards.
func Vocab() []models.VocabRecord {
	now := time.Now().UnixMilli()
	return []models.VocabRecord{
		{Base: models.Base{ID: "v1", CreatedAt: now}, Word: "Elephant", Meaning: "ぞう", Emoji: "🐘", Category: "animals"},
		{Base: models.Base{ID: "v2", CreatedAt: now}, Word: "Delicious", Meaning: "おいしい", Emoji: "😋", Category: "adjectives"},
		{Base: models.Base{ID: "v3", CreatedAt: now}, Word: "Rainbow", Meaning: "にじ", Emoji: "🌈", Category: "nature"},
	}
}

// Questions returns the demo homework questions.
func Questions() []models.QuestionRecord {
	return []models.QuestionRecord{
		{
			Base:          models.Base{ID: "q1"},
			Type:          models.QuestionGrammar,
			Title:         "Unit 1 Grammar",
			Date:          "2025-12-16",
			Question:      "I ___ playing soccer now.",
			Options:       []string{"is", "am", "are", "be"},
			CorrectAnswer: "am",
			Explanation:   `主語が "I" なので "am" を使います。`,
			Category:      "grammar",
		},
		{
			Base:          models.Base{ID: "q2"},
			Type:          models.QuestionSorting,
			Title:         "Unit 1 Grammar",
			Date:          "2025-12-16",
			Question:      "並べ替えて「これはペンです」にしなさい。",
			Options:       []string{"a", "This", "pen", "is"},
			CorrectAnswer: "This is a pen",
			Explanation:   "This (これ) + is (は) + a pen (ペンです)。",
			Category:      "grammar",
		},
	}
}

// Users returns the demo student accounts.
func Users() []models.UserRecord {
	return []models.UserRecord{
		{Base: models.Base{ID: "haru"}, Name: "Haru", Role: models.RoleStudent, Gender: "girl", Pass: "haru123", Age: 10},
		{Base: models.Base{ID: "kan"}, Name: "Kansuke", Role: models.RoleStudent, Gender: "boy", Pass: "kan123", Age: 8},
		{Base: models.Base{ID: "sasa"}, Name: "Sasa", Role: models.RoleStudent, Gender: "boy", Pass: "sasa123", Age: 9},
	}
}

// Records returns the demo content keyed by collection name, in the generic
// record shape the store works with. Results start empty.
func Records() map[string][]models.Record {
	data := map[string][]models.Record{
		store.CollectionResults: {},
	}
	for _, v := range Vocab() {
		data[store.CollectionVocab] = append(data[store.CollectionVocab], models.MustRecord(v))
	}
	for _, q := range Questions() {
		data[store.CollectionQuiz] = append(data[store.CollectionQuiz], models.MustRecord(q))
	}
	for _, u := range Users() {
		data[store.CollectionUsers] = append(data[store.CollectionUsers], models.MustRecord(u))
	}
	return data
}

// Materialize writes the demo content when the users collection comes back
// empty, so later mutations start from a persisted demo set.
func Materialize(ctx context.Context, s *store.Store) {
	log := logger.FromContext(ctx).WithPrefix("seed")

	if users := s.Get(ctx, store.CollectionUsers); len(users) > 0 {
		return
	}

	log.Info("first run, materializing demo data")
	data := Records()
	s.Set(ctx, store.CollectionUsers, data[store.CollectionUsers])
	s.Set(ctx, store.CollectionVocab, data[store.CollectionVocab])
	s.Set(ctx, store.CollectionQuiz, data[store.CollectionQuiz])
}
