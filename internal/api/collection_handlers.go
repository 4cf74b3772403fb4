package api

import (
	"net/http"
	"sort"

	"github.com/go-chi/chi/v5"

	apperrors "github.com/Tahmid447/Tahmid-English-Club/internal/errors"
	"github.com/Tahmid447/Tahmid-English-Club/internal/models"
	"github.com/Tahmid447/Tahmid-English-Club/internal/store"
)

func resolveTab(r *http.Request) (string, error) {
	tab := chi.URLParam(r, "tab")
	collection, ok := tabToCollection[tab]
	if !ok {
		return "", apperrors.NewNotFoundError("tab", tab)
	}
	return collection, nil
}

func (s *Server) handleListCollection(w http.ResponseWriter, r *http.Request) {
	collection, err := resolveTab(r)
	if err != nil {
		handleError(w, r, err)
		return
	}

	records := s.Store.Get(r.Context(), collection)
	switch chi.URLParam(r, "tab") {
	case "logs":
		// Newest attempts first, as the teacher dashboard shows them.
		sort.SliceStable(records, func(i, j int) bool {
			return resultDate(records[i]) > resultDate(records[j])
		})
	case "students":
		filtered := records[:0]
		for _, rec := range records {
			if role, _ := rec["role"].(string); role == models.RoleStudent {
				filtered = append(filtered, rec)
			}
		}
		records = filtered
	}

	writeJSON(w, http.StatusOK, map[string]any{"records": records})
}

func resultDate(r models.Record) int64 {
	if v, ok := r["date"].(float64); ok {
		return int64(v)
	}
	return 0
}

func (s *Server) handleAddRecord(w http.ResponseWriter, r *http.Request) {
	collection, err := resolveTab(r)
	if err != nil {
		handleError(w, r, err)
		return
	}

	var record models.Record
	if err := decodeJSON(r, &record); err != nil {
		handleError(w, r, err)
		return
	}

	added, err := s.Store.Add(r.Context(), collection, record)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"record": added})
}

func (s *Server) handleUpdateRecord(w http.ResponseWriter, r *http.Request) {
	collection, err := resolveTab(r)
	if err != nil {
		handleError(w, r, err)
		return
	}

	var patch models.Record
	if err := decodeJSON(r, &patch); err != nil {
		handleError(w, r, err)
		return
	}

	// A missing id is a silent no-op; the response does not distinguish it.
	s.Store.Update(r.Context(), collection, chi.URLParam(r, "id"), patch)
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleDeleteRecord(w http.ResponseWriter, r *http.Request) {
	collection, err := resolveTab(r)
	if err != nil {
		handleError(w, r, err)
		return
	}

	s.Store.Delete(r.Context(), collection, chi.URLParam(r, "id"))
	w.WriteHeader(http.StatusNoContent)
}

// handleAssignments returns the homework groups for the student dashboard.
func (s *Server) handleAssignments(w http.ResponseWriter, r *http.Request) {
	questions := s.questions(r)
	writeJSON(w, http.StatusOK, map[string]any{"assignments": groupedOrEmpty(questions)})
}

func (s *Server) questions(r *http.Request) []models.QuestionRecord {
	records := s.Store.Get(r.Context(), store.CollectionQuiz)
	return models.DecodeAll[models.QuestionRecord](records, nil)
}
