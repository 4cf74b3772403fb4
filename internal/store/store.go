package store

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	apperrors "github.com/Tahmid447/Tahmid-English-Club/internal/errors"
	"github.com/Tahmid447/Tahmid-English-Club/internal/kv"
	"github.com/Tahmid447/Tahmid-English-Club/internal/logger"
	"github.com/Tahmid447/Tahmid-English-Club/internal/models"
)

// Collection names used by the application.
const (
	CollectionVocab   = "vocab"
	CollectionQuiz    = "quiz"
	CollectionUsers   = "users"
	CollectionResults = "results"
)

// DefaultNamespace is the storage key prefix for collections.
const DefaultNamespace = "tec_v5_"

// sessionKey holds the current authenticated identity. It predates the
// collection namespace and is deliberately unprefixed.
const sessionKey = "tec_session_v5"

// DuplicateIDMessage is shown to the end user when a users id collides.
const DuplicateIDMessage = "ID already exists (IDが重複しています)"

// Diagnostic describes a recovered internal failure. The store never
// propagates deserialization or persistence errors; it reports them here
// and carries on.
type Diagnostic struct {
	Op         string
	Collection string
	Err        error
}

// Option configures a Store.
type Option func(*Store)

// WithSeeds sets the default record sequences returned by Get for
// collections that have never been persisted.
func WithSeeds(seeds map[string][]models.Record) Option {
	return func(s *Store) {
		s.seeds = seeds
	}
}

// WithDiagnostics replaces the default log-only diagnostic sink.
func WithDiagnostics(fn func(Diagnostic)) Option {
	return func(s *Store) {
		s.diag = fn
	}
}

// WithIDGenerator replaces the random id generator. Used by tests.
func WithIDGenerator(fn func() string) Option {
	return func(s *Store) {
		s.newID = fn
	}
}

// WithClock replaces the creation timestamp source. Used by tests.
func WithClock(fn func() time.Time) Option {
	return func(s *Store) {
		s.now = fn
	}
}

// Store is a namespaced document store over a key-value substrate: one
// storage key per collection, holding the JSON-serialized record sequence.
// All operations are synchronous and complete (including change
// notification) before returning.
type Store struct {
	kv        kv.Store
	namespace string
	seeds     map[string][]models.Record
	diag      func(Diagnostic)
	newID     func() string
	now       func() time.Time
	log       *logger.Logger

	mu   sync.Mutex // guards subs
	subs []*subscription
}

type subscription struct {
	fn     func()
	active bool
}

// New creates a Store over the given substrate.
func New(kvs kv.Store, opts ...Option) *Store {
	s := &Store{
		kv:        kvs,
		namespace: DefaultNamespace,
		newID:     NewID,
		now:       time.Now,
		log:       logger.Default().WithPrefix("store"),
	}
	s.diag = func(d Diagnostic) {
		s.log.Error("%s failed: collection=%s err=%v", d.Op, d.Collection, d.Err)
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// WithNamespace sets the storage key prefix for collections.
func WithNamespace(namespace string) Option {
	return func(s *Store) {
		s.namespace = namespace
	}
}

func (s *Store) key(collection string) string {
	return s.namespace + collection
}

func (s *Store) report(op, collection string, err error) {
	s.diag(Diagnostic{Op: op, Collection: collection, Err: err})
}

// Get returns the collection's records in stored order. A collection that
// has never been persisted yields its seed (or nothing); malformed persisted
// data is treated as no data, reported to the diagnostic sink, and yields
// nothing. Get never fails.
func (s *Store) Get(ctx context.Context, collection string) []models.Record {
	log := logger.FromContext(ctx).WithPrefix("store")

	raw, ok, err := s.kv.Get(ctx, s.key(collection))
	if err != nil {
		s.report("get", collection, err)
		return []models.Record{}
	}
	if !ok {
		return s.seed(collection)
	}

	var records []models.Record
	if err := json.Unmarshal(raw, &records); err != nil {
		s.report("get", collection, err)
		return []models.Record{}
	}
	for _, r := range records {
		if err := models.Validate(collection, r); err != nil {
			s.report("validate", collection, err)
		}
	}
	log.Debug("loaded %d records from %q", len(records), collection)
	if records == nil {
		records = []models.Record{}
	}
	return records
}

func (s *Store) seed(collection string) []models.Record {
	seed, ok := s.seeds[collection]
	if !ok {
		return []models.Record{}
	}
	out := make([]models.Record, len(seed))
	for i, r := range seed {
		out[i] = r.Clone()
	}
	return out
}

// Set replaces the collection contents, persists them and emits one change
// notification. Persistence failures are reported to the diagnostic sink and
// leave the prior persisted state untouched; Set never fails.
func (s *Store) Set(ctx context.Context, collection string, records []models.Record) {
	log := logger.FromContext(ctx).WithPrefix("store")

	if records == nil {
		records = []models.Record{}
	}
	for _, r := range records {
		if err := models.Validate(collection, r); err != nil {
			s.report("validate", collection, err)
		}
	}

	raw, err := json.Marshal(records)
	if err != nil {
		s.report("set", collection, err)
		return
	}
	if err := s.kv.Set(ctx, s.key(collection), raw); err != nil {
		s.report("set", collection, err)
		return
	}
	log.Debug("persisted %d records to %q", len(records), collection)
	s.notify()
}

// Add assigns id and createdAt to the record, appends it to the collection
// and returns the finalized record. Adding to users with an explicit id that
// is already taken fails with a DUPLICATE_KEY error and leaves the
// collection unmodified.
func (s *Store) Add(ctx context.Context, collection string, record models.Record) (models.Record, error) {
	list := s.Get(ctx, collection)

	if collection == CollectionUsers && record.ID() != "" {
		for _, existing := range list {
			if existing.ID() == record.ID() {
				return nil, apperrors.NewDuplicateKeyError(DuplicateIDMessage)
			}
		}
	}

	newRecord := record.Clone()
	if newRecord.ID() == "" {
		newRecord["id"] = s.uniqueID(list)
	}
	newRecord["createdAt"] = s.now().UnixMilli()

	list = append(list, newRecord)
	s.Set(ctx, collection, list)
	return newRecord, nil
}

func (s *Store) uniqueID(list []models.Record) string {
	taken := make(map[string]bool, len(list))
	for _, r := range list {
		taken[r.ID()] = true
	}
	for {
		id := s.newID()
		if id != "" && !taken[id] {
			return id
		}
	}
}

// Update merges patch over the record with the given id and persists the
// collection. A missing id is a silent no-op: nothing is written and no
// notification fires.
func (s *Store) Update(ctx context.Context, collection, id string, patch models.Record) {
	list := s.Get(ctx, collection)
	for i, r := range list {
		if r.ID() == id {
			list[i] = r.Merge(patch)
			s.Set(ctx, collection, list)
			return
		}
	}
}

// Delete removes the record with the given id if present and persists the
// collection. Deleting an absent id still rewrites (and notifies); the
// operation is idempotent.
func (s *Store) Delete(ctx context.Context, collection, id string) {
	list := s.Get(ctx, collection)
	out := make([]models.Record, 0, len(list))
	for _, r := range list {
		if r.ID() != id {
			out = append(out, r)
		}
	}
	s.Set(ctx, collection, out)
}

// Clear removes all records from the collection.
func (s *Store) Clear(ctx context.Context, collection string) {
	s.Set(ctx, collection, []models.Record{})
}

// Subscribe registers a change listener and returns its unsubscribe
// function. Listeners receive no payload; they are expected to re-read
// whichever collections they care about.
func (s *Store) Subscribe(fn func()) func() {
	sub := &subscription{fn: fn, active: true}

	s.mu.Lock()
	s.subs = append(s.subs, sub)
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		sub.active = false
		for i, candidate := range s.subs {
			if candidate == sub {
				s.subs = append(s.subs[:i], s.subs[i+1:]...)
				break
			}
		}
	}
}

// notify dispatches synchronously to all registered listeners in
// registration order. A listener unsubscribed during dispatch is skipped.
func (s *Store) notify() {
	s.mu.Lock()
	snapshot := make([]*subscription, len(s.subs))
	copy(snapshot, s.subs)
	s.mu.Unlock()

	for _, sub := range snapshot {
		s.mu.Lock()
		alive := sub.active
		s.mu.Unlock()
		if alive {
			sub.fn()
		}
	}
}

// SaveSession persists the authenticated identity under the session key.
func (s *Store) SaveSession(ctx context.Context, identity models.Record) {
	raw, err := json.Marshal(identity)
	if err != nil {
		s.report("session_save", "", err)
		return
	}
	if err := s.kv.Set(ctx, sessionKey, raw); err != nil {
		s.report("session_save", "", err)
	}
}

// LoadSession returns the persisted identity, if any.
func (s *Store) LoadSession(ctx context.Context) (models.Record, bool) {
	raw, ok, err := s.kv.Get(ctx, sessionKey)
	if err != nil {
		s.report("session_load", "", err)
		return nil, false
	}
	if !ok {
		return nil, false
	}
	var identity models.Record
	if err := json.Unmarshal(raw, &identity); err != nil {
		s.report("session_load", "", err)
		return nil, false
	}
	return identity, true
}

// ClearSession removes the persisted identity.
func (s *Store) ClearSession(ctx context.Context) {
	if err := s.kv.Delete(ctx, sessionKey); err != nil {
		s.report("session_clear", "", err)
	}
}
