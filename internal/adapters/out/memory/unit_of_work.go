package memory

import (
	"context"
	"errors"
	"log/slog"
	"maps"

	"servicerequest/internal/adapters/out/notify"
	"servicerequest/internal/core/domain/model/kernel"
	"servicerequest/internal/core/domain/model/participant"
	"servicerequest/internal/core/domain/model/request"
	"servicerequest/internal/core/ports"
	"servicerequest/internal/pkg/errs"
)

// ErrNoTransaction is returned by Commit and Rollback without a preceding Begin.
var ErrNoTransaction = errors.New("no active transaction")

type UnitOfWorkFactory struct {
	store     *Store
	publisher ports.EventPublisher
	logger    *slog.Logger
}

// NewUnitOfWorkFactory creates a factory over store. A nil publisher drops events.
func NewUnitOfWorkFactory(store *Store, publisher ports.EventPublisher, logger *slog.Logger) *UnitOfWorkFactory {
	if logger == nil {
		logger = slog.Default()
	}
	return &UnitOfWorkFactory{
		store:     store,
		publisher: publisher,
		logger:    logger.With("component", "memory_unit_of_work"),
	}
}

func (f *UnitOfWorkFactory) Create() ports.UnitOfWork {
	return &UnitOfWork{
		store:     f.store,
		publisher: f.publisher,
		logger:    f.logger,
	}
}

// write is one staged change, checked and applied on Commit.
type write struct {
	apply func(s *Store) error
}

// UnitOfWork stages writes while a transaction is open. Without Begin,
// writes are applied immediately.
type UnitOfWork struct {
	store     *Store
	publisher ports.EventPublisher
	logger    *slog.Logger

	active    bool
	staged    []write
	collector notify.Collector
}

func (uow *UnitOfWork) Begin(_ context.Context) error {
	uow.active = true
	return nil
}

// Commit applies all staged writes atomically. If any write conflicts,
// none is applied and the error is returned.
func (uow *UnitOfWork) Commit(ctx context.Context) error {
	if !uow.active {
		return ErrNoTransaction
	}
	staged := uow.staged
	uow.active = false
	uow.staged = nil

	if err := uow.store.applyAll(staged); err != nil {
		uow.collector.Discard()
		return err
	}

	notify.Dispatch(ctx, uow.publisher, uow.logger, uow.collector.Drain())
	return nil
}

func (uow *UnitOfWork) Rollback(_ context.Context) error {
	if !uow.active {
		return ErrNoTransaction
	}
	uow.active = false
	uow.staged = nil
	uow.collector.Discard()
	return nil
}

func (uow *UnitOfWork) RequestRepository() ports.RequestRepository {
	return &requestRepository{uow: uow}
}

func (uow *UnitOfWork) ParticipantRepository() ports.ParticipantRepository {
	return &participantRepository{uow: uow}
}

func (uow *UnitOfWork) stage(w write) error {
	if uow.active {
		uow.staged = append(uow.staged, w)
		return nil
	}
	return uow.store.applyAll([]write{w})
}

// applyAll runs every write against copies of the maps so a failing write
// leaves the store unchanged.
func (s *Store) applyAll(writes []write) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	shadow := &Store{
		requests:   maps.Clone(s.requests),
		actors:     maps.Clone(s.actors),
		satellites: maps.Clone(s.satellites),
	}
	for _, w := range writes {
		if err := w.apply(shadow); err != nil {
			return err
		}
	}

	s.requests = shadow.requests
	s.actors = shadow.actors
	s.satellites = shadow.satellites
	return nil
}

type requestRepository struct {
	uow *UnitOfWork
}

func (r *requestRepository) Add(_ context.Context, aggregate *request.Request) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	rec := recordFromDomain(aggregate, aggregate.Version()+1)
	err := r.uow.stage(write{apply: func(s *Store) error {
		if _, ok := s.requests[rec.id]; ok {
			return errs.NewConflictError("request", rec.id.String())
		}
		s.requests[rec.id] = rec
		return nil
	}})
	if err != nil {
		return err
	}

	aggregate.MarkSaved()
	r.uow.collector.Track(aggregate)
	return nil
}

func (r *requestRepository) Update(_ context.Context, aggregate *request.Request) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	expected := aggregate.Version()
	rec := recordFromDomain(aggregate, expected+1)
	err := r.uow.stage(write{apply: func(s *Store) error {
		current, ok := s.requests[rec.id]
		if !ok {
			return errs.NewObjectNotFoundError("request", rec.id.String())
		}
		if current.version != expected {
			return errs.NewConflictError("request", rec.id.String())
		}
		s.requests[rec.id] = rec
		return nil
	}})
	if err != nil {
		return err
	}

	aggregate.MarkSaved()
	r.uow.collector.Track(aggregate)
	return nil
}

func (r *requestRepository) Get(_ context.Context, id kernel.UUID) (*request.Request, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	r.uow.store.mu.RLock()
	rec, ok := r.uow.store.requests[id]
	r.uow.store.mu.RUnlock()
	if !ok {
		return nil, errs.NewObjectNotFoundError("request", id.String())
	}
	return rec.toDomain()
}

type participantRepository struct {
	uow *UnitOfWork
}

func (r *participantRepository) Add(_ context.Context, actor *participant.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	ref := actor.Ref()
	return r.uow.stage(write{apply: func(s *Store) error {
		if _, ok := s.actors[ref]; ok {
			return errs.NewConflictError("participant", ref.String())
		}
		s.actors[ref] = actor
		return nil
	}})
}

func (r *participantRepository) Lookup(_ context.Context, ref participant.ActorRef) (*participant.Actor, error) {
	if err := ref.Validate(); err != nil {
		return nil, err
	}

	r.uow.store.mu.RLock()
	actor, ok := r.uow.store.actors[ref]
	r.uow.store.mu.RUnlock()
	if !ok {
		return nil, errs.NewObjectNotFoundError(ref.Role.String(), ref.ID.String())
	}
	return actor, nil
}

func (r *participantRepository) AddSatellite(_ context.Context, satellite *participant.Satellite) error {
	if err := satellite.Validate(); err != nil {
		return err
	}
	id := satellite.ID()
	return r.uow.stage(write{apply: func(s *Store) error {
		if _, ok := s.satellites[id]; ok {
			return errs.NewConflictError("satellite", id.String())
		}
		s.satellites[id] = satellite
		return nil
	}})
}

func (r *participantRepository) GetSatellite(_ context.Context, id kernel.ParticipantID) (*participant.Satellite, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	r.uow.store.mu.RLock()
	sat, ok := r.uow.store.satellites[id]
	r.uow.store.mu.RUnlock()
	if !ok {
		return nil, errs.NewObjectNotFoundError("satellite", id.String())
	}
	return sat, nil
}
