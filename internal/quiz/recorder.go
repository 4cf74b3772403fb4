package quiz

import (
	"context"

	"github.com/Tahmid447/Tahmid-English-Club/internal/logger"
	"github.com/Tahmid447/Tahmid-English-Club/internal/models"
	"github.com/Tahmid447/Tahmid-English-Club/internal/store"
)

// ResultRecorder appends one graded attempt. Implementations must not fail
// the grading flow.
type ResultRecorder interface {
	Record(ctx context.Context, result models.ResultRecord)
}

// DocumentAdder is the slice of the document store the recorder needs.
type DocumentAdder interface {
	Add(ctx context.Context, collection string, record models.Record) (models.Record, error)
}

type storeRecorder struct {
	db DocumentAdder
}

// NewStoreRecorder returns a ResultRecorder that appends to the results
// collection.
func NewStoreRecorder(db DocumentAdder) ResultRecorder {
	return &storeRecorder{db: db}
}

func (r *storeRecorder) Record(ctx context.Context, result models.ResultRecord) {
	log := logger.FromContext(ctx).WithPrefix("quiz")

	rec, err := models.ToRecord(result)
	if err != nil {
		log.Warn("failed to encode result record: %v", err)
		return
	}
	if _, err := r.db.Add(ctx, store.CollectionResults, rec); err != nil {
		// Results never collide on id, but a failing Add must not abort
		// grading either way.
		log.Warn("failed to append result record: %v", err)
	}
}
