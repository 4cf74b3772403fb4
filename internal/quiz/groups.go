package quiz

import (
	"math/rand/v2"
	"strings"

	"github.com/Tahmid447/Tahmid-English-Club/internal/models"
)

// Assignment is one homework group shown on the student dashboard.
type Assignment struct {
	Title string                  `json:"title"`
	Date  string                  `json:"date"`
	Items []models.QuestionRecord `json:"items"`
}

// GroupAssignments buckets questions into homework groups by title and date,
// preserving first-seen order. Untitled questions fall into "Homework".
func GroupAssignments(questions []models.QuestionRecord) []Assignment {
	var out []Assignment
	index := map[string]int{}
	for _, q := range questions {
		title := q.Title
		if title == "" {
			title = "Homework"
		}
		date := q.Date
		if date == "" {
			date = "No Date"
		}
		key := title + "_" + date

		i, ok := index[key]
		if !ok {
			i = len(out)
			index[key] = i
			out = append(out, Assignment{Title: title, Date: q.Date})
		}
		out[i].Items = append(out[i].Items, q)
	}
	return out
}

// ShuffleTokens splits a correct answer into words and shuffles them,
// producing the options list for a sorting question.
func ShuffleTokens(correctAnswer string) []string {
	words := strings.Fields(correctAnswer)
	shuffled := make([]string, len(words))
	copy(shuffled, words)
	rand.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	return shuffled
}
