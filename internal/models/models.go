package models

import "fmt"

// Base carries the system-managed fields every stored record acquires on
// creation.
type Base struct {
	ID        string `json:"id"`
	CreatedAt int64  `json:"createdAt,omitempty"` // milliseconds since epoch
}

// User roles.
const (
	RoleStudent = "student"
	RoleTeacher = "teacher"
)

// QuestionType identifies how a question is presented and graded.
type QuestionType string

const (
	QuestionGrammar     QuestionType = "grammar"
	QuestionSorting     QuestionType = "sorting"
	QuestionWriting     QuestionType = "writing"
	QuestionListening   QuestionType = "listening"
	QuestionImageSelect QuestionType = "image_select"
)

// Valid reports whether t is a known question type.
func (t QuestionType) Valid() bool {
	switch t {
	case QuestionGrammar, QuestionSorting, QuestionWriting, QuestionListening, QuestionImageSelect:
		return true
	}
	return false
}

// VocabRecord is one vocabulary card.
type VocabRecord struct {
	Base
	Word     string `json:"word"`
	Meaning  string `json:"meaning"`
	Emoji    string `json:"emoji,omitempty"`
	Category string `json:"category,omitempty"`
}

// QuestionRecord is one homework question. The meaning of Options depends on
// Type: answer choices for grammar, word tokens for sorting, image references
// for image_select; unused for writing and listening.
type QuestionRecord struct {
	Base
	Type          QuestionType `json:"type"`
	Title         string       `json:"title,omitempty"`
	Date          string       `json:"date,omitempty"`
	Question      string       `json:"question"`
	Options       []string     `json:"options,omitempty"`
	CorrectAnswer string       `json:"correctAnswer"`
	Explanation   string       `json:"explanation,omitempty"`
	ImageURL      string       `json:"imageUrl,omitempty"`
	Category      string       `json:"category,omitempty"`
}

// UserRecord is one account. Students authenticate with ID + Pass; the
// teacher account carries an Email and is verified externally.
type UserRecord struct {
	Base
	Name   string `json:"name"`
	Role   string `json:"role"`
	Gender string `json:"gender,omitempty"`
	Pass   string `json:"pass,omitempty"`
	Age    int    `json:"age,omitempty"`
	Email  string `json:"email,omitempty"`
}

// ResultRecord is one graded attempt. Results are append-only.
type ResultRecord struct {
	Base
	StudentID   string `json:"studentId"`
	StudentName string `json:"studentName"`
	Question    string `json:"question"`
	IsCorrect   bool   `json:"isCorrect"`
	Date        int64  `json:"date"` // milliseconds since epoch
}

// Validate checks a generic record against the typed shape registered for
// the collection. Unknown collections are schema-free and always pass.
func Validate(collection string, r Record) error {
	switch collection {
	case "vocab":
		_, err := Decode[VocabRecord](r)
		return err
	case "quiz":
		q, err := Decode[QuestionRecord](r)
		if err != nil {
			return err
		}
		if q.Type != "" && !q.Type.Valid() {
			return fmt.Errorf("unknown question type %q", q.Type)
		}
		return nil
	case "users":
		_, err := Decode[UserRecord](r)
		return err
	case "results":
		_, err := Decode[ResultRecord](r)
		return err
	default:
		return nil
	}
}
