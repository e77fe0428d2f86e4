package recordstore

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	pkgerrors "github.com/skillswap/skillswap-backend/pkg/errors"
	"github.com/skillswap/skillswap-backend/pkg/logger"
	"github.com/skillswap/skillswap-backend/pkg/metrics"
)

// Record is an entity held by a Store. Identifiers are positive integers.
type Record interface {
	RecordID() int
}

// Patch is a typed partial update. Apply receives a private copy of the stored
// record and returns the merged result; fields the patch does not set must be
// returned untouched.
type Patch[T any] interface {
	Apply(T) T
}

// Options wires a Store. Assign is required: it sets the identifier and stamps
// the entity's creation timestamp on a record being created.
type Options[T Record] struct {
	Entity  string
	Seed    []T
	Assign  func(rec T, id int, now time.Time) T
	Clone   func(T) T
	Latency Latency
	Clock   Clock
	Metrics *metrics.StoreMetrics
	Logger  *logger.Logger
}

// Store owns one entity type's ordered record sequence. Records are kept in
// insertion order and every value crossing the API boundary is a copy.
type Store[T Record] struct {
	entity  string
	assign  func(T, int, time.Time) T
	clone   func(T) T
	latency Latency
	clock   Clock
	metrics *metrics.StoreMetrics
	logg    *logger.Logger

	mu      sync.RWMutex
	records []T
}

// New builds a store seeded with opts.Seed. Seed identifiers must be unique and positive.
func New[T Record](opts Options[T]) (*Store[T], error) {
	if opts.Entity == "" {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "record store entity name required")
	}
	if opts.Assign == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, fmt.Sprintf("%s store requires an assign hook", opts.Entity))
	}

	s := &Store[T]{
		entity:  opts.Entity,
		assign:  opts.Assign,
		clone:   opts.Clone,
		latency: opts.Latency,
		clock:   opts.Clock,
		metrics: opts.Metrics,
		logg:    opts.Logger,
	}
	if s.clone == nil {
		s.clone = func(rec T) T { return rec }
	}
	if s.latency == nil {
		s.latency = NoLatency{}
	}
	if s.clock == nil {
		s.clock = RealClock{}
	}
	if s.logg == nil {
		s.logg = logger.Nop()
	}

	seen := make(map[int]struct{}, len(opts.Seed))
	s.records = make([]T, 0, len(opts.Seed))
	for _, rec := range opts.Seed {
		id := rec.RecordID()
		if id <= 0 {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("%s seed has non-positive id %d", s.entity, id))
		}
		if _, dup := seen[id]; dup {
			return nil, pkgerrors.New(pkgerrors.CodeConflict, fmt.Sprintf("%s seed has duplicate id %d", s.entity, id))
		}
		seen[id] = struct{}{}
		s.records = append(s.records, s.clone(rec))
	}
	s.metrics.SetRecords(s.entity, len(s.records))
	return s, nil
}

// Entity returns the store's entity name.
func (s *Store[T]) Entity() string {
	return s.entity
}

// Len returns the current record count without simulated latency.
func (s *Store[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

// GetAll returns a copy of every record in storage order.
func (s *Store[T]) GetAll(ctx context.Context) (out []T, err error) {
	defer s.observe(OpGetAll, time.Now(), &err)
	if err = s.wait(ctx, OpGetAll); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	out = make([]T, len(s.records))
	for i, rec := range s.records {
		out[i] = s.clone(rec)
	}
	return out, nil
}

// GetByID returns a copy of the record with the given id; ok is false when absent.
func (s *Store[T]) GetByID(ctx context.Context, id int) (rec T, ok bool, err error) {
	defer s.observe(OpGetByID, time.Now(), &err)
	if err = s.wait(ctx, OpGetByID); err != nil {
		return rec, false, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	idx := s.indexOf(id)
	if idx < 0 {
		return rec, false, nil
	}
	return s.clone(s.records[idx]), true, nil
}

// Create assigns the next identifier (max existing + 1, or 1 when empty),
// stamps the creation time, appends the record and returns a copy.
func (s *Store[T]) Create(ctx context.Context, rec T) (created T, err error) {
	defer s.observe(OpCreate, time.Now(), &err)
	if err = s.wait(ctx, OpCreate); err != nil {
		return created, err
	}

	s.mu.Lock()
	id := s.nextID()
	stored := s.assign(s.clone(rec), id, s.clock.Now())
	s.records = append(s.records, stored)
	count := len(s.records)
	created = s.clone(stored)
	s.mu.Unlock()

	s.metrics.SetRecords(s.entity, count)
	s.logg.Info(s.logg.WithRecord(ctx, s.entity, id), "record.created")
	return created, nil
}

// Update shallow-merges patch into the record with the given id. Nothing is
// mutated when the record is missing.
func (s *Store[T]) Update(ctx context.Context, id int, patch Patch[T]) (updated T, err error) {
	defer s.observe(OpUpdate, time.Now(), &err)
	if err = s.wait(ctx, OpUpdate); err != nil {
		return updated, err
	}

	s.mu.Lock()
	idx := s.indexOf(id)
	if idx < 0 {
		s.mu.Unlock()
		return updated, s.notFound(ctx, id)
	}
	merged := s.clone(s.records[idx])
	if patch != nil {
		merged = patch.Apply(merged)
	}
	if merged.RecordID() != id {
		s.mu.Unlock()
		return updated, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("%s identifier is immutable", s.entity))
	}
	s.records[idx] = merged
	updated = s.clone(merged)
	s.mu.Unlock()

	s.logg.Info(s.logg.WithRecord(ctx, s.entity, id), "record.updated")
	return updated, nil
}

// Delete removes exactly one record.
func (s *Store[T]) Delete(ctx context.Context, id int) (err error) {
	defer s.observe(OpDelete, time.Now(), &err)
	if err = s.wait(ctx, OpDelete); err != nil {
		return err
	}

	s.mu.Lock()
	idx := s.indexOf(id)
	if idx < 0 {
		s.mu.Unlock()
		return s.notFound(ctx, id)
	}
	s.records = slices.Delete(s.records, idx, idx+1)
	count := len(s.records)
	s.mu.Unlock()

	s.metrics.SetRecords(s.entity, count)
	s.logg.Info(s.logg.WithRecord(ctx, s.entity, id), "record.deleted")
	return nil
}

// indexOf must be called with s.mu held.
func (s *Store[T]) indexOf(id int) int {
	return slices.IndexFunc(s.records, func(rec T) bool { return rec.RecordID() == id })
}

// nextID must be called with s.mu held for writing.
func (s *Store[T]) nextID() int {
	maxID := 0
	for _, rec := range s.records {
		if id := rec.RecordID(); id > maxID {
			maxID = id
		}
	}
	return maxID + 1
}

func (s *Store[T]) wait(ctx context.Context, op Op) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if err := s.latency.Wait(ctx, op); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeCanceled, err, fmt.Sprintf("%s %s canceled", s.entity, op))
	}
	return nil
}

func (s *Store[T]) notFound(ctx context.Context, id int) error {
	s.logg.Warn(s.logg.WithRecord(ctx, s.entity, id), "record.not_found")
	return pkgerrors.New(pkgerrors.CodeNotFound, fmt.Sprintf("%s not found", s.entity))
}

func (s *Store[T]) observe(op Op, start time.Time, err *error) {
	s.metrics.Observe(s.entity, string(op), time.Since(start), *err)
}
