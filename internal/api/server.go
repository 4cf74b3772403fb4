package api

import (
	"sync"

	"github.com/Tahmid447/Tahmid-English-Club/internal/audio"
	"github.com/Tahmid447/Tahmid-English-Club/internal/auth"
	"github.com/Tahmid447/Tahmid-English-Club/internal/quiz"
	"github.com/Tahmid447/Tahmid-English-Club/internal/store"
)

// Server exposes the app over a localhost JSON API. The browser UI is the
// presentation collaborator; all state lives behind the document store.
type Server struct {
	Store   *store.Store
	Auth    *auth.Service
	Player  audio.Player
	Speaker audio.Speaker

	// One active quiz session, matching the single-tab model.
	mu      sync.Mutex
	session *quiz.Session
}

// tabToCollection maps teacher-console tab names to store collection names.
// The aliasing lives here, at the boundary between UI intent and storage.
var tabToCollection = map[string]string{
	"vocab":    store.CollectionVocab,
	"quiz":     store.CollectionQuiz,
	"students": store.CollectionUsers,
	"logs":     store.CollectionResults,
}
