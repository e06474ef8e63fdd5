package http

import (
	"context"
	"log/slog"

	"servicerequest/internal/core/application/usecases/commands"
	"servicerequest/internal/core/application/usecases/queries"
	"servicerequest/internal/generated/servers"
	"servicerequest/internal/pkg/metrics"
)

var _ servers.ServerInterface = (*Server)(nil)

type (
	GetRequestHandler interface {
		Handle(ctx context.Context, query queries.GetRequestQuery) (queries.RequestView, error)
	}

	ListOpenRequestsHandler interface {
		Handle(ctx context.Context, query queries.ListOpenRequestsQuery) ([]queries.RequestView, error)
	}

	StatusSummaryHandler interface {
		Handle(ctx context.Context, query queries.GetStatusSummaryQuery) (queries.StatusSummary, error)
	}
)

// Handlers groups the use cases served over HTTP.
type Handlers struct {
	// Command handlers
	CreateRequest           commands.CreateRequestCommandHandler
	ApproveRequest          commands.ApproveRequestCommandHandler
	RejectRequest           commands.RejectRequestCommandHandler
	SendToGroundStation     commands.SendToGroundStationCommandHandler
	ReceivedByGroundStation commands.ReceivedByGroundStationCommandHandler
	SatelliteConfirmation   commands.SatelliteConfirmationCommandHandler
	GroundStationDownload   commands.GroundStationDownloadCommandHandler
	ReadyForPayment         commands.ReadyForPaymentCommandHandler
	CloseRequest            commands.CloseRequestCommandHandler
	RegisterParticipant     commands.RegisterParticipantCommandHandler
	RegisterSatellite       commands.RegisterSatelliteCommandHandler

	// Query handlers
	GetRequest       GetRequestHandler
	ListOpenRequests ListOpenRequestsHandler
	StatusSummary    StatusSummaryHandler
}

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	handlers Handlers
	metrics  *metrics.Metrics
	logger   *slog.Logger
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(handlers Handlers, m *metrics.Metrics, logger *slog.Logger) *Server {
	return &Server{
		handlers: handlers,
		metrics:  m,
		logger:   logger.With("component", "HTTPServer"),
	}
}
