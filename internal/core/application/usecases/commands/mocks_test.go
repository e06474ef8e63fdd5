package commands_test

import (
	"context"

	"servicerequest/internal/core/application/usecases/commands"
	"servicerequest/internal/core/domain/model/kernel"
	"servicerequest/internal/core/domain/model/participant"
	"servicerequest/internal/core/domain/model/request"
	"servicerequest/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockRequestRepository struct{ mock.Mock }

func (m *MockRequestRepository) Add(ctx context.Context, r *request.Request) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockRequestRepository) Update(ctx context.Context, r *request.Request) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockRequestRepository) Get(ctx context.Context, id kernel.UUID) (*request.Request, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*request.Request), args.Error(1)
}

type MockParticipantRepository struct{ mock.Mock }

func (m *MockParticipantRepository) Add(ctx context.Context, a *participant.Actor) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockParticipantRepository) Lookup(ctx context.Context, ref participant.ActorRef) (*participant.Actor, error) {
	args := m.Called(ctx, ref)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*participant.Actor), args.Error(1)
}

func (m *MockParticipantRepository) AddSatellite(ctx context.Context, s *participant.Satellite) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockParticipantRepository) GetSatellite(ctx context.Context, id kernel.ParticipantID) (*participant.Satellite, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*participant.Satellite), args.Error(1)
}

// MockUoW satisfies every unit of work flavour used by the handlers.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) RequestRepository() ports.RequestRepository {
	args := m.Called()
	return args.Get(0).(ports.RequestRepository)
}

func (m *MockUoW) ParticipantRepository() ports.ParticipantRepository {
	args := m.Called()
	return args.Get(0).(ports.ParticipantRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockRequestUoWFactory struct{ mock.Mock }

func (m *MockRequestUoWFactory) Create() commands.RequestUoW {
	args := m.Called()
	return args.Get(0).(commands.RequestUoW)
}

type MockParticipantUoWFactory struct{ mock.Mock }

func (m *MockParticipantUoWFactory) Create() commands.ParticipantUoW {
	args := m.Called()
	return args.Get(0).(commands.ParticipantUoW)
}
