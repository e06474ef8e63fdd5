package http

import (
	"errors"
	"net/http"

	"servicerequest/internal/core/application/usecases/commands"
	"servicerequest/internal/core/application/usecases/queries"
	"servicerequest/internal/core/domain/model/kernel"
	"servicerequest/internal/core/domain/model/participant"
	"servicerequest/internal/core/domain/model/request"
	"servicerequest/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// CreateRequest handles POST /api/v1/requests - opens a request awaiting approval.
func (s *Server) CreateRequest(ctx echo.Context) error {
	var body servers.CreateRequestJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := newCreateRequestCommand(body)
	if err != nil {
		return s.fail(ctx, err)
	}

	err = s.handlers.CreateRequest.Handle(ctx.Request().Context(), cmd)
	s.metrics.ObserveCommand("create", err)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.Created{Id: body.Id})
}

// ApproveRequest handles POST /api/v1/requests/{requestId}/approve.
// A compliance refusal answers 422 although the rejection itself is saved.
func (s *Server) ApproveRequest(ctx echo.Context, requestID servers.RequestId) error {
	var body servers.ApproveRequestJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	id, idErr := requestUUID(requestID)
	approverID, approverErr := kernel.NewParticipantID(body.ApproverId)
	role, roleErr := participant.ParseRole(string(body.ApproverRole))
	if err := errors.Join(idErr, approverErr, roleErr); err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewApproveRequestCommand(id, participant.ActorRef{ID: approverID, Role: role})
	if err != nil {
		return s.fail(ctx, err)
	}

	return s.respond(ctx, "approve", s.handlers.ApproveRequest.Handle(ctx.Request().Context(), cmd))
}

// RejectRequest handles POST /api/v1/requests/{requestId}/reject.
func (s *Server) RejectRequest(ctx echo.Context, requestID servers.RequestId) error {
	var body servers.RejectRequestJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	id, err := requestUUID(requestID)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewRejectRequestCommand(id, body.CloseReason)
	if err != nil {
		return s.fail(ctx, err)
	}

	return s.respond(ctx, "reject", s.handlers.RejectRequest.Handle(ctx.Request().Context(), cmd))
}

// SendToGroundStation handles POST /api/v1/requests/{requestId}/send-to-ground-station.
func (s *Server) SendToGroundStation(ctx echo.Context, requestID servers.RequestId) error {
	var body servers.SendToGroundStationJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	id, err := requestUUID(requestID)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewSendToGroundStationCommand(id, body.Evidence)
	if err != nil {
		return s.fail(ctx, err)
	}

	return s.respond(ctx, "send_to_ground_station", s.handlers.SendToGroundStation.Handle(ctx.Request().Context(), cmd))
}

// ReceivedByGroundStation handles POST /api/v1/requests/{requestId}/received-by-ground-station.
func (s *Server) ReceivedByGroundStation(ctx echo.Context, requestID servers.RequestId) error {
	var body servers.ReceivedByGroundStationJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	id, err := requestUUID(requestID)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewReceivedByGroundStationCommand(id, body.Evidence)
	if err != nil {
		return s.fail(ctx, err)
	}

	return s.respond(ctx, "received_by_ground_station",
		s.handlers.ReceivedByGroundStation.Handle(ctx.Request().Context(), cmd))
}

// SatelliteConfirmation handles POST /api/v1/requests/{requestId}/satellite-confirmation.
func (s *Server) SatelliteConfirmation(ctx echo.Context, requestID servers.RequestId) error {
	var body servers.SatelliteConfirmationJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	id, err := requestUUID(requestID)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewSatelliteConfirmationCommand(id, body.Evidence)
	if err != nil {
		return s.fail(ctx, err)
	}

	return s.respond(ctx, "satellite_confirmation", s.handlers.SatelliteConfirmation.Handle(ctx.Request().Context(), cmd))
}

// GroundStationDownload handles POST /api/v1/requests/{requestId}/ground-station-download.
func (s *Server) GroundStationDownload(ctx echo.Context, requestID servers.RequestId) error {
	var body servers.GroundStationDownloadJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	id, err := requestUUID(requestID)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewGroundStationDownloadCommand(id, body.Evidence, body.RequestedData)
	if err != nil {
		return s.fail(ctx, err)
	}

	return s.respond(ctx, "ground_station_download", s.handlers.GroundStationDownload.Handle(ctx.Request().Context(), cmd))
}

// ReadyForPayment handles POST /api/v1/requests/{requestId}/ready-for-payment.
func (s *Server) ReadyForPayment(ctx echo.Context, requestID servers.RequestId) error {
	id, err := requestUUID(requestID)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewReadyForPaymentCommand(id)
	if err != nil {
		return s.fail(ctx, err)
	}

	return s.respond(ctx, "ready_for_payment", s.handlers.ReadyForPayment.Handle(ctx.Request().Context(), cmd))
}

// CloseRequest handles POST /api/v1/requests/{requestId}/close.
func (s *Server) CloseRequest(ctx echo.Context, requestID servers.RequestId) error {
	var body servers.CloseRequestJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	id, err := requestUUID(requestID)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewCloseRequestCommand(id, body.CloseReason)
	if err != nil {
		return s.fail(ctx, err)
	}

	return s.respond(ctx, "close", s.handlers.CloseRequest.Handle(ctx.Request().Context(), cmd))
}

// GetRequest handles GET /api/v1/requests/{requestId}.
func (s *Server) GetRequest(ctx echo.Context, requestID servers.RequestId) error {
	id, err := requestUUID(requestID)
	if err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewGetRequestQuery(id)
	if err != nil {
		return s.fail(ctx, err)
	}

	view, err := s.handlers.GetRequest.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toResponse(view))
}

// ListOpenRequests handles GET /api/v1/requests - open requests, oldest first.
func (s *Server) ListOpenRequests(ctx echo.Context, params servers.ListOpenRequestsParams) error {
	status := request.Unknown
	if params.Status != nil {
		parsed, err := request.ParseStatus(*params.Status)
		if err != nil {
			return s.fail(ctx, err)
		}
		status = parsed
	}

	var applicant *kernel.ParticipantID
	if params.Applicant != nil {
		id, err := kernel.NewParticipantID(*params.Applicant)
		if err != nil {
			return s.fail(ctx, err)
		}
		applicant = &id
	}

	limit := 0
	if params.Limit != nil {
		limit = *params.Limit
	}

	query, err := queries.NewListOpenRequestsQuery(status, applicant, limit)
	if err != nil {
		return s.fail(ctx, err)
	}

	views, err := s.handlers.ListOpenRequests.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]servers.Request, len(views))
	for i, view := range views {
		response[i] = toResponse(view)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetStatusSummary handles GET /api/v1/requests/summary.
func (s *Server) GetStatusSummary(ctx echo.Context) error {
	summary, err := s.handlers.StatusSummary.Handle(ctx.Request().Context(), queries.NewGetStatusSummaryQuery())
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, summary)
}

func (s *Server) respond(ctx echo.Context, operation string, err error) error {
	s.metrics.ObserveCommand(operation, err)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

func newCreateRequestCommand(body servers.NewRequest) (commands.CreateRequestCommand, error) {
	id, idErr := requestUUID(body.Id)
	applicant, applicantErr := kernel.NewParticipantID(body.Applicant)
	beneficiary, beneficiaryErr := kernel.NewParticipantID(body.Beneficiary)
	satellite, satelliteErr := kernel.NewParticipantID(body.IssuingSatellite)
	if err := errors.Join(idErr, applicantErr, beneficiaryErr, satelliteErr); err != nil {
		return commands.CreateRequestCommand{}, err
	}

	var target kernel.Country
	if t := value(body.TargetCountry); t != "" {
		country, err := kernel.NewCountry(t)
		if err != nil {
			return commands.CreateRequestCommand{}, err
		}
		target = country
	}

	return commands.NewCreateRequestCommand(
		id, applicant, beneficiary, satellite,
		request.NewDetails(target, value(body.Description)),
	)
}

func requestUUID(id servers.RequestId) (kernel.UUID, error) {
	return kernel.UUIDFromBytes(id[:])
}

func toResponse(view queries.RequestView) servers.Request {
	createdAt, updatedAt := view.CreatedAt, view.UpdatedAt

	return servers.Request{
		Id:               view.ID.Bytes(),
		Applicant:        view.Applicant,
		Beneficiary:      view.Beneficiary,
		IssuingSatellite: view.IssuingSatellite,
		TargetCountry:    optional(view.TargetCountry),
		Description:      optional(view.Description),
		Status:           view.Status.String(),
		Evidence:         nonNil(view.Evidence),
		RequestedData:    nonNil(view.RequestedData),
		CloseReason:      optional(view.CloseReason),
		Version:          view.Version,
		CreatedAt:        &createdAt,
		UpdatedAt:        &updatedAt,
	}
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
