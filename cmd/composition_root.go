package cmd

import (
	"log/slog"

	httpadapter "servicerequest/internal/adapters/in/http"
	"servicerequest/internal/adapters/out/postgres"
	"servicerequest/internal/core/application/usecases/commands"
	"servicerequest/internal/core/application/usecases/queries"
	"servicerequest/internal/core/domain/services"
	"servicerequest/internal/core/ports"
	"servicerequest/internal/jobs"
	"servicerequest/internal/pkg/metrics"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	metrics    *metrics.Metrics
	logger     *slog.Logger
}

func NewCompositionRoot(
	config Config,
	gormDB *gorm.DB,
	publisher ports.EventPublisher,
	m *metrics.Metrics,
	logger *slog.Logger,
) CompositionRoot {
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB, publisher, logger),
		metrics:    m,
		logger:     logger,
	}
}

func (c *CompositionRoot) CreateHTTPServer() *httpadapter.Server {
	return httpadapter.NewServer(httpadapter.Handlers{
		CreateRequest:           c.CreateCreateRequestCommandHandler(),
		ApproveRequest:          c.CreateApproveRequestCommandHandler(),
		RejectRequest:           commands.NewRejectRequestCommandHandler(c.requestUoWFactory()),
		SendToGroundStation:     commands.NewSendToGroundStationCommandHandler(c.requestUoWFactory()),
		ReceivedByGroundStation: commands.NewReceivedByGroundStationCommandHandler(c.requestUoWFactory()),
		SatelliteConfirmation:   commands.NewSatelliteConfirmationCommandHandler(c.requestUoWFactory()),
		GroundStationDownload:   commands.NewGroundStationDownloadCommandHandler(c.requestUoWFactory()),
		ReadyForPayment:         commands.NewReadyForPaymentCommandHandler(c.requestUoWFactory()),
		CloseRequest:            commands.NewCloseRequestCommandHandler(c.requestUoWFactory()),
		RegisterParticipant:     commands.NewRegisterParticipantCommandHandler(c.participantUoWFactory()),
		RegisterSatellite:       commands.NewRegisterSatelliteCommandHandler(c.participantUoWFactory()),
		GetRequest:              queries.NewGetRequestQueryHandler(c.gormDB),
		ListOpenRequests:        queries.NewListOpenRequestsQueryHandler(c.gormDB),
		StatusSummary:           c.CreateGetStatusSummaryQueryHandler(),
	}, c.metrics, c.logger)
}

func (c *CompositionRoot) CreateCreateRequestCommandHandler() commands.CreateRequestCommandHandler {
	return commands.NewCreateRequestCommandHandler(c.fullUoWFactory())
}

func (c *CompositionRoot) CreateApproveRequestCommandHandler() commands.ApproveRequestCommandHandler {
	return commands.NewApproveRequestCommandHandler(
		c.fullUoWFactory(),
		services.NewApprovalService(c.config.StrictApprover),
		c.logger,
	)
}

func (c *CompositionRoot) CreateGetStatusSummaryQueryHandler() queries.GetStatusSummaryQueryHandler {
	return queries.NewGetStatusSummaryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateGetStatusSummaryQueryHandler(),
		c.metrics,
		c.config.StatusGaugeSchedule,
		c.logger,
	)
}

func (c *CompositionRoot) fullUoWFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) requestUoWFactory() commands.RequestUoWFactory {
	return FuncRequestUoWFactory(func() commands.RequestUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) participantUoWFactory() commands.ParticipantUoWFactory {
	return FuncParticipantUoWFactory(func() commands.ParticipantUoW {
		return c.uowFactory.Create()
	})
}

type FuncRequestUoWFactory func() commands.RequestUoW

func (f FuncRequestUoWFactory) Create() commands.RequestUoW {
	return f()
}

type FuncParticipantUoWFactory func() commands.ParticipantUoW

func (f FuncParticipantUoWFactory) Create() commands.ParticipantUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
