package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(recoveryMiddleware)
	r.Use(loggingMiddleware)

	r.Route("/api", func(r chi.Router) {
		r.Post("/login", s.handleLogin)
		r.Post("/logout", s.handleLogout)
		r.Get("/session", s.handleSession)

		r.Group(func(r chi.Router) {
			r.Use(s.requireUser)

			r.Route("/collections/{tab}", func(r chi.Router) {
				r.Get("/", s.handleListCollection)
				r.Post("/", s.handleAddRecord)
				r.Put("/{id}", s.handleUpdateRecord)
				r.Delete("/{id}", s.handleDeleteRecord)
			})

			r.Get("/assignments", s.handleAssignments)

			r.Route("/quiz", func(r chi.Router) {
				r.Post("/start", s.handleQuizStart)
				r.Get("/", s.handleQuizState)
				r.Post("/answer", s.handleQuizAnswer)
				r.Post("/select-token", s.handleQuizSelectToken)
				r.Post("/deselect-token", s.handleQuizDeselectToken)
				r.Post("/submit", s.handleQuizSubmit)
				r.Post("/next", s.handleQuizNext)
				r.Post("/jump", s.handleQuizJump)
				r.Post("/speak", s.handleQuizSpeak)
			})

			r.Post("/speak", s.handleSpeak)
			r.Post("/uploads", s.handleUpload)
			r.Post("/shuffle", s.handleShuffle)
		})
	})

	return r
}
