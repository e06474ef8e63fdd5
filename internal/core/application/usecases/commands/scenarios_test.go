package commands_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"

	"servicerequest/internal/adapters/out/memory"
	"servicerequest/internal/core/application/usecases/commands"
	"servicerequest/internal/core/domain/model/kernel"
	"servicerequest/internal/core/domain/model/participant"
	"servicerequest/internal/core/domain/model/request"
	"servicerequest/internal/core/domain/services"
	"servicerequest/internal/core/ports"
	"servicerequest/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type uowFactory struct{ ports.UnitOfWorkFactory }

func (f uowFactory) Create() commands.UoW { return f.UnitOfWorkFactory.Create() }

type requestUoWFactory struct{ ports.UnitOfWorkFactory }

func (f requestUoWFactory) Create() commands.RequestUoW { return f.UnitOfWorkFactory.Create() }

type participantUoWFactory struct{ ports.UnitOfWorkFactory }

func (f participantUoWFactory) Create() commands.ParticipantUoW { return f.UnitOfWorkFactory.Create() }

type eventLog struct {
	mu     sync.Mutex
	events []request.Event
}

func (l *eventLog) Publish(_ context.Context, events ...request.Event) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.events = append(l.events, events...)
	return nil
}

func (l *eventLog) names() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]string, 0, len(l.events))
	for _, e := range l.events {
		out = append(out, e.Name())
	}
	return out
}

// registry wires every handler over one in-process gateway seeded with
// the participants used by the scenarios.
type registry struct {
	t      *testing.T
	store  *memory.Store
	events *eventLog
	uows   ports.UnitOfWorkFactory

	create   commands.CreateRequestCommandHandler
	approve  commands.ApproveRequestCommandHandler
	reject   commands.RejectRequestCommandHandler
	ship     commands.SendToGroundStationCommandHandler
	receive  commands.ReceivedByGroundStationCommandHandler
	confirm  commands.SatelliteConfirmationCommandHandler
	download commands.GroundStationDownloadCommandHandler
	ready    commands.ReadyForPaymentCommandHandler
	close    commands.CloseRequestCommandHandler
}

func newRegistry(t *testing.T) *registry {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store := memory.NewStore()
	events := &eventLog{}
	uows := memory.NewUnitOfWorkFactory(store, events, logger)

	r := &registry{
		t:        t,
		store:    store,
		events:   events,
		uows:     uows,
		create:   commands.NewCreateRequestCommandHandler(uowFactory{uows}),
		approve:  commands.NewApproveRequestCommandHandler(uowFactory{uows}, services.NewApprovalService(false), logger),
		reject:   commands.NewRejectRequestCommandHandler(requestUoWFactory{uows}),
		ship:     commands.NewSendToGroundStationCommandHandler(requestUoWFactory{uows}),
		receive:  commands.NewReceivedByGroundStationCommandHandler(requestUoWFactory{uows}),
		confirm:  commands.NewSatelliteConfirmationCommandHandler(requestUoWFactory{uows}),
		download: commands.NewGroundStationDownloadCommandHandler(requestUoWFactory{uows}),
		ready:    commands.NewReadyForPaymentCommandHandler(requestUoWFactory{uows}),
		close:    commands.NewCloseRequestCommandHandler(requestUoWFactory{uows}),
	}

	r.register("Startup", participant.Customer, "USA")
	r.register("Bakery", participant.Customer, "FRANCE")
	r.register("ESA", participant.Company, "FRANCE")
	r.register("FCC", participant.Regulator, "USA")
	r.register("Kiruna", participant.GroundStation, "SWEDEN")
	r.satellite("ESA1", "CHINA")
	return r
}

func (r *registry) register(id string, role participant.Role, origin string) {
	r.t.Helper()
	cmd, err := commands.NewRegisterParticipantCommand(
		participant.ActorRef{ID: kernel.MustParticipantID(id), Role: role},
		participant.Profile{Name: id, CountryOfOrigin: country(r.t, origin)},
	)
	require.NoError(r.t, err)
	require.NoError(r.t, commands.NewRegisterParticipantCommandHandler(participantUoWFactory{r.uows}).Handle(context.Background(), cmd))
}

func (r *registry) satellite(id string, excluded ...string) {
	r.t.Helper()
	cs, err := kernel.NewCountries(excluded)
	require.NoError(r.t, err)
	cmd, err := commands.NewRegisterSatelliteCommand(kernel.MustParticipantID(id), id, cs)
	require.NoError(r.t, err)
	require.NoError(r.t, commands.NewRegisterSatelliteCommandHandler(participantUoWFactory{r.uows}).Handle(context.Background(), cmd))
}

func (r *registry) open(applicant, target string) kernel.UUID {
	r.t.Helper()
	id := kernel.NewUUID()
	cmd, err := commands.NewCreateRequestCommand(id,
		kernel.MustParticipantID(applicant), kernel.MustParticipantID("ESA"), kernel.MustParticipantID("ESA1"),
		request.NewDetails(country(r.t, target), "weekly imagery"))
	require.NoError(r.t, err)
	require.NoError(r.t, r.create.Handle(context.Background(), cmd))
	return id
}

func (r *registry) approveBy(id kernel.UUID, approver string, role participant.Role) error {
	cmd, err := commands.NewApproveRequestCommand(id, participant.ActorRef{ID: kernel.MustParticipantID(approver), Role: role})
	require.NoError(r.t, err)
	return r.approve.Handle(context.Background(), cmd)
}

func (r *registry) get(id kernel.UUID) *request.Request {
	r.t.Helper()
	req, err := r.uows.Create().RequestRepository().Get(context.Background(), id)
	require.NoError(r.t, err)
	return req
}

// operations returns every lifecycle operation as a closure over id.
func (r *registry) operations(id kernel.UUID) map[string]func() error {
	ctx := context.Background()
	return map[string]func() error{
		"approve": func() error { return r.approveBy(id, "FCC", participant.Regulator) },
		"reject": func() error {
			cmd, _ := commands.NewRejectRequestCommand(id, "again")
			return r.reject.Handle(ctx, cmd)
		},
		"send to ground station": func() error {
			cmd, _ := commands.NewSendToGroundStationCommand(id, "e")
			return r.ship.Handle(ctx, cmd)
		},
		"received by ground station": func() error {
			cmd, _ := commands.NewReceivedByGroundStationCommand(id, "e")
			return r.receive.Handle(ctx, cmd)
		},
		"satellite confirmation": func() error {
			cmd, _ := commands.NewSatelliteConfirmationCommand(id, "e")
			return r.confirm.Handle(ctx, cmd)
		},
		"ground station download": func() error {
			cmd, _ := commands.NewGroundStationDownloadCommand(id, "e", "d")
			return r.download.Handle(ctx, cmd)
		},
		"ready for payment": func() error {
			cmd, _ := commands.NewReadyForPaymentCommand(id)
			return r.ready.Handle(ctx, cmd)
		},
		"close": func() error {
			cmd, _ := commands.NewCloseRequestCommand(id, "again")
			return r.close.Handle(ctx, cmd)
		},
	}
}

func TestScenario_USAApplicantExcludedTarget_Rejected(t *testing.T) {
	r := newRegistry(t)
	id := r.open("Startup", "CHINA")

	err := r.approveBy(id, "FCC", participant.Regulator)

	require.ErrorIs(t, err, errs.ErrComplianceViolation)
	req := r.get(id)
	assert.Equal(t, request.Rejected, req.Status())
	reason, ok := req.CloseReason()
	assert.True(t, ok)
	assert.Equal(t, "requesting excluded services: CHINA", reason)
	assert.Equal(t, []string{request.EventRequestCreated, request.EventRequestRejected}, r.events.names())
}

func TestScenario_USAApplicantAllowedTarget_Approved(t *testing.T) {
	r := newRegistry(t)
	id := r.open("Startup", "FRANCE")

	require.NoError(t, r.approveBy(id, "FCC", participant.Regulator))

	assert.Equal(t, request.Approved, r.get(id).Status())
	assert.Equal(t, []string{request.EventRequestCreated, request.EventRequestApproved}, r.events.names())
}

func TestScenario_NonUSAApplicant_AlwaysApproved(t *testing.T) {
	r := newRegistry(t)
	id := r.open("Bakery", "CHINA")

	require.NoError(t, r.approveBy(id, "FCC", participant.Regulator))

	assert.Equal(t, request.Approved, r.get(id).Status())
}

func TestScenario_NonRegulatorApproval_LeavesStatus(t *testing.T) {
	r := newRegistry(t)
	id := r.open("Startup", "CHINA")

	require.NoError(t, r.approveBy(id, "ESA", participant.Company))

	req := r.get(id)
	assert.Equal(t, request.AwaitingApproval, req.Status())
	assert.Equal(t, 2, req.Version(), "the acknowledgement is persisted")
	assert.Equal(t, []string{request.EventRequestCreated, request.EventRequestApproved}, r.events.names())
}

func TestScenario_FullLifecycle_Closed(t *testing.T) {
	ctx := context.Background()
	r := newRegistry(t)
	id := r.open("Startup", "FRANCE")
	require.NoError(t, r.approveBy(id, "FCC", participant.Regulator))

	ship, _ := commands.NewSendToGroundStationCommand(id, "pass scheduled")
	require.NoError(t, r.ship.Handle(ctx, ship))
	receive, _ := commands.NewReceivedByGroundStationCommand(id, "uplink ok")
	require.NoError(t, r.receive.Handle(ctx, receive))
	confirm, _ := commands.NewSatelliteConfirmationCommand(id, "ack 0x1f")
	require.NoError(t, r.confirm.Handle(ctx, confirm))
	download, _ := commands.NewGroundStationDownloadCommand(id, "downlink ok", "s3://imagery/42")
	require.NoError(t, r.download.Handle(ctx, download))
	ready, _ := commands.NewReadyForPaymentCommand(id)
	require.NoError(t, r.ready.Handle(ctx, ready))
	closeCmd, _ := commands.NewCloseRequestCommand(id, "done")
	require.NoError(t, r.close.Handle(ctx, closeCmd))

	req := r.get(id)
	assert.Equal(t, request.Closed, req.Status())
	reason, _ := req.CloseReason()
	assert.Equal(t, "done", reason)
	assert.Equal(t, []string{"pass scheduled", "uplink ok", "ack 0x1f", "downlink ok"}, req.Evidence())
	assert.Equal(t, []string{"s3://imagery/42"}, req.RequestedData())
	assert.Equal(t, []string{
		request.EventRequestCreated,
		request.EventRequestApproved,
		request.EventShippedToStation,
		request.EventReceivedByStation,
		request.EventSatelliteConfirmed,
		request.EventDataDownloaded,
		request.EventReadyForPayment,
		request.EventClosed,
	}, r.events.names())
}

func TestScenario_SkippingApproval_Fails(t *testing.T) {
	r := newRegistry(t)
	id := r.open("Startup", "FRANCE")

	cmd, _ := commands.NewSendToGroundStationCommand(id, "too early")
	err := r.ship.Handle(context.Background(), cmd)

	require.ErrorIs(t, err, errs.ErrWrongPredecessorState)
	req := r.get(id)
	assert.Equal(t, request.AwaitingApproval, req.Status())
	assert.Empty(t, req.Evidence())
	assert.Equal(t, []string{request.EventRequestCreated}, r.events.names())
}

func TestScenario_TransitionTwice_Fails(t *testing.T) {
	r := newRegistry(t)
	id := r.open("Startup", "FRANCE")
	require.NoError(t, r.approveBy(id, "FCC", participant.Regulator))
	ship := r.operations(id)["send to ground station"]
	require.NoError(t, ship())

	err := ship()

	require.ErrorIs(t, err, errs.ErrWrongPredecessorState)
	assert.Len(t, r.get(id).Evidence(), 1)
}

func TestScenario_TerminalRequestRefusesEverything(t *testing.T) {
	r := newRegistry(t)
	id := r.open("Startup", "CHINA")
	require.ErrorIs(t, r.approveBy(id, "FCC", participant.Regulator), errs.ErrComplianceViolation)
	before := r.get(id)
	published := len(r.events.names())

	for name, op := range r.operations(id) {
		t.Run(name, func(t *testing.T) {
			require.ErrorIs(t, op(), errs.ErrAlreadyClosed)
		})
	}

	after := r.get(id)
	assert.Equal(t, before.Version(), after.Version())
	assert.Equal(t, before.Status(), after.Status())
	assert.Len(t, r.events.names(), published)
}

func TestScenario_TerminalRequestRefusesUnknownApprover(t *testing.T) {
	r := newRegistry(t)
	id := r.open("Startup", "CHINA")
	require.ErrorIs(t, r.approveBy(id, "FCC", participant.Regulator), errs.ErrComplianceViolation)
	published := len(r.events.names())

	err := r.approveBy(id, "Nobody", participant.Regulator)

	require.ErrorIs(t, err, errs.ErrAlreadyClosed)
	assert.NotErrorIs(t, err, errs.ErrObjectNotFound)
	assert.Equal(t, request.Rejected, r.get(id).Status())
	assert.Len(t, r.events.names(), published)
}

func TestScenario_TerminalRequestBlankPayloadIsRequiredFirst(t *testing.T) {
	r := newRegistry(t)
	id := r.open("Startup", "CHINA")
	require.ErrorIs(t, r.approveBy(id, "FCC", participant.Regulator), errs.ErrComplianceViolation)

	_, err := commands.NewSendToGroundStationCommand(id, "")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
	assert.NotErrorIs(t, err, errs.ErrAlreadyClosed)

	cmd, err := commands.NewSendToGroundStationCommand(id, "pass")
	require.NoError(t, err)
	require.ErrorIs(t, r.ship.Handle(t.Context(), cmd), errs.ErrAlreadyClosed)
	assert.Equal(t, request.Rejected, r.get(id).Status())
}

func TestScenario_ConcurrentTransitions_OneWins(t *testing.T) {
	r := newRegistry(t)
	id := r.open("Startup", "FRANCE")
	require.NoError(t, r.approveBy(id, "FCC", participant.Regulator))

	const writers = 8
	results := make([]error, writers)
	var wg sync.WaitGroup
	for i := range writers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			cmd, _ := commands.NewSendToGroundStationCommand(id, "pass")
			results[i] = r.ship.Handle(context.Background(), cmd)
		}()
	}
	wg.Wait()

	succeeded := 0
	for _, err := range results {
		if err == nil {
			succeeded++
			continue
		}
		assert.True(t, errors.Is(err, errs.ErrConflict) || errors.Is(err, errs.ErrWrongPredecessorState), "unexpected error: %v", err)
	}
	assert.Equal(t, 1, succeeded)
	assert.Len(t, r.get(id).Evidence(), 1)
}

func TestScenario_CreateWithUnknownParties(t *testing.T) {
	r := newRegistry(t)

	cmd, err := commands.NewCreateRequestCommand(kernel.NewUUID(),
		kernel.MustParticipantID("ESA"), kernel.MustParticipantID("ESA"), kernel.MustParticipantID("ESA1"),
		request.NewDetails(kernel.Country{}, ""))
	require.NoError(t, err)

	require.ErrorIs(t, r.create.Handle(context.Background(), cmd), errs.ErrObjectNotFound,
		"ESA is registered as a company, not as a customer")
	all, err := r.store.Requests()
	require.NoError(t, err)
	assert.Empty(t, all)
}
