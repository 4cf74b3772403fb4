package api

import (
	"encoding/json"
	"net/http"

	apperrors "github.com/Tahmid447/Tahmid-English-Club/internal/errors"
)

const maxBodySize = 10 << 20 // uploads carry inlined images

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func decodeJSON(r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(nil, r.Body, maxBodySize)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return apperrors.NewBadRequestError("invalid JSON body")
	}
	return nil
}
