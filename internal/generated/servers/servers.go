// Package servers provides the HTTP types and echo routing for the registry
// API described in api/openapi.yml.
package servers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Defines values for ApprovalApproverRole.
const (
	ApprovalApproverRoleCompany       ApprovalApproverRole = "Company"
	ApprovalApproverRoleCustomer      ApprovalApproverRole = "Customer"
	ApprovalApproverRoleGroundStation ApprovalApproverRole = "GroundStation"
	ApprovalApproverRoleRegulator     ApprovalApproverRole = "Regulator"
)

// Defines values for NewParticipantRole.
const (
	NewParticipantRoleCompany       NewParticipantRole = "Company"
	NewParticipantRoleCustomer      NewParticipantRole = "Customer"
	NewParticipantRoleGroundStation NewParticipantRole = "GroundStation"
	NewParticipantRoleRegulator     NewParticipantRole = "Regulator"
)

// Approval defines model for Approval.
type Approval struct {
	ApproverId   string               `json:"approverId"`
	ApproverRole ApprovalApproverRole `json:"approverRole"`
}

// ApprovalApproverRole defines model for Approval.ApproverRole.
type ApprovalApproverRole string

// Closure defines model for Closure.
type Closure struct {
	CloseReason string `json:"closeReason"`
}

// Created defines model for Created.
type Created struct {
	Id openapi_types.UUID `json:"id"`
}

// Download defines model for Download.
type Download struct {
	Evidence      string `json:"evidence"`
	RequestedData string `json:"requestedData"`
}

// Error defines model for Error.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Evidence defines model for Evidence.
type Evidence struct {
	Evidence string `json:"evidence"`
}

// NewParticipant defines model for NewParticipant.
type NewParticipant struct {
	CompanyName     *string            `json:"companyName,omitempty"`
	CountryOfOrigin *string            `json:"countryOfOrigin,omitempty"`
	Id              string             `json:"id"`
	LastName        *string            `json:"lastName,omitempty"`
	Name            string             `json:"name"`
	Role            NewParticipantRole `json:"role"`
	SatelliteId     *string            `json:"satelliteId,omitempty"`
}

// NewParticipantRole defines model for NewParticipant.Role.
type NewParticipantRole string

// NewRequest defines model for NewRequest.
type NewRequest struct {
	Applicant        string             `json:"applicant"`
	Beneficiary      string             `json:"beneficiary"`
	Description      *string            `json:"description,omitempty"`
	Id               openapi_types.UUID `json:"id"`
	IssuingSatellite string             `json:"issuingSatellite"`
	TargetCountry    *string            `json:"targetCountry,omitempty"`
}

// NewSatellite defines model for NewSatellite.
type NewSatellite struct {
	ExcludedCountries *[]string `json:"excludedCountries,omitempty"`
	Id                string    `json:"id"`
	Name              string    `json:"name"`
}

// Request defines model for Request.
type Request struct {
	Applicant        string             `json:"applicant"`
	Beneficiary      string             `json:"beneficiary"`
	CloseReason      *string            `json:"closeReason,omitempty"`
	CreatedAt        *time.Time         `json:"createdAt,omitempty"`
	Description      *string            `json:"description,omitempty"`
	Evidence         []string           `json:"evidence"`
	Id               openapi_types.UUID `json:"id"`
	IssuingSatellite string             `json:"issuingSatellite"`
	RequestedData    []string           `json:"requestedData"`
	Status           string             `json:"status"`
	TargetCountry    *string            `json:"targetCountry,omitempty"`
	UpdatedAt        *time.Time         `json:"updatedAt,omitempty"`
	Version          int                `json:"version"`
}

// RequestId defines model for RequestId.
type RequestId = openapi_types.UUID

// ListOpenRequestsParams defines parameters for ListOpenRequests.
type ListOpenRequestsParams struct {
	Status    *string `form:"status,omitempty" json:"status,omitempty"`
	Applicant *string `form:"applicant,omitempty" json:"applicant,omitempty"`
	Limit     *int    `form:"limit,omitempty" json:"limit,omitempty"`
}

// RegisterParticipantJSONRequestBody defines body for RegisterParticipant for application/json ContentType.
type RegisterParticipantJSONRequestBody = NewParticipant

// CreateRequestJSONRequestBody defines body for CreateRequest for application/json ContentType.
type CreateRequestJSONRequestBody = NewRequest

// ApproveRequestJSONRequestBody defines body for ApproveRequest for application/json ContentType.
type ApproveRequestJSONRequestBody = Approval

// CloseRequestJSONRequestBody defines body for CloseRequest for application/json ContentType.
type CloseRequestJSONRequestBody = Closure

// GroundStationDownloadJSONRequestBody defines body for GroundStationDownload for application/json ContentType.
type GroundStationDownloadJSONRequestBody = Download

// ReceivedByGroundStationJSONRequestBody defines body for ReceivedByGroundStation for application/json ContentType.
type ReceivedByGroundStationJSONRequestBody = Evidence

// RejectRequestJSONRequestBody defines body for RejectRequest for application/json ContentType.
type RejectRequestJSONRequestBody = Closure

// SatelliteConfirmationJSONRequestBody defines body for SatelliteConfirmation for application/json ContentType.
type SatelliteConfirmationJSONRequestBody = Evidence

// SendToGroundStationJSONRequestBody defines body for SendToGroundStation for application/json ContentType.
type SendToGroundStationJSONRequestBody = Evidence

// RegisterSatelliteJSONRequestBody defines body for RegisterSatellite for application/json ContentType.
type RegisterSatelliteJSONRequestBody = NewSatellite

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// Register a customer, company, regulator or ground station
	// (POST /participants)
	RegisterParticipant(ctx echo.Context) error
	// List requests that are neither closed nor rejected
	// (GET /requests)
	ListOpenRequests(ctx echo.Context, params ListOpenRequestsParams) error
	// Open a request awaiting approval
	// (POST /requests)
	CreateRequest(ctx echo.Context) error
	// Count requests per status
	// (GET /requests/summary)
	GetStatusSummary(ctx echo.Context) error
	// Read a request with its evidence and data
	// (GET /requests/{requestId})
	GetRequest(ctx echo.Context, requestId RequestId) error

	// (POST /requests/{requestId}/approve)
	ApproveRequest(ctx echo.Context, requestId RequestId) error

	// (POST /requests/{requestId}/close)
	CloseRequest(ctx echo.Context, requestId RequestId) error

	// (POST /requests/{requestId}/ground-station-download)
	GroundStationDownload(ctx echo.Context, requestId RequestId) error

	// (POST /requests/{requestId}/ready-for-payment)
	ReadyForPayment(ctx echo.Context, requestId RequestId) error

	// (POST /requests/{requestId}/received-by-ground-station)
	ReceivedByGroundStation(ctx echo.Context, requestId RequestId) error

	// (POST /requests/{requestId}/reject)
	RejectRequest(ctx echo.Context, requestId RequestId) error

	// (POST /requests/{requestId}/satellite-confirmation)
	SatelliteConfirmation(ctx echo.Context, requestId RequestId) error

	// (POST /requests/{requestId}/send-to-ground-station)
	SendToGroundStation(ctx echo.Context, requestId RequestId) error
	// Register a satellite and the countries its operator refuses to serve
	// (POST /satellites)
	RegisterSatellite(ctx echo.Context) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

// RegisterParticipant converts echo context to params.
func (w *ServerInterfaceWrapper) RegisterParticipant(ctx echo.Context) error {
	return w.Handler.RegisterParticipant(ctx)
}

// ListOpenRequests converts echo context to params.
func (w *ServerInterfaceWrapper) ListOpenRequests(ctx echo.Context) error {
	var err error

	var params ListOpenRequestsParams

	err = runtime.BindQueryParameter("form", true, false, "status", ctx.QueryParams(), &params.Status)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter status: %s", err))
	}

	err = runtime.BindQueryParameter("form", true, false, "applicant", ctx.QueryParams(), &params.Applicant)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter applicant: %s", err))
	}

	err = runtime.BindQueryParameter("form", true, false, "limit", ctx.QueryParams(), &params.Limit)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter limit: %s", err))
	}

	return w.Handler.ListOpenRequests(ctx, params)
}

// CreateRequest converts echo context to params.
func (w *ServerInterfaceWrapper) CreateRequest(ctx echo.Context) error {
	return w.Handler.CreateRequest(ctx)
}

// GetStatusSummary converts echo context to params.
func (w *ServerInterfaceWrapper) GetStatusSummary(ctx echo.Context) error {
	return w.Handler.GetStatusSummary(ctx)
}

// GetRequest converts echo context to params.
func (w *ServerInterfaceWrapper) GetRequest(ctx echo.Context) error {
	requestId, err := bindRequestId(ctx)
	if err != nil {
		return err
	}
	return w.Handler.GetRequest(ctx, requestId)
}

// ApproveRequest converts echo context to params.
func (w *ServerInterfaceWrapper) ApproveRequest(ctx echo.Context) error {
	requestId, err := bindRequestId(ctx)
	if err != nil {
		return err
	}
	return w.Handler.ApproveRequest(ctx, requestId)
}

// CloseRequest converts echo context to params.
func (w *ServerInterfaceWrapper) CloseRequest(ctx echo.Context) error {
	requestId, err := bindRequestId(ctx)
	if err != nil {
		return err
	}
	return w.Handler.CloseRequest(ctx, requestId)
}

// GroundStationDownload converts echo context to params.
func (w *ServerInterfaceWrapper) GroundStationDownload(ctx echo.Context) error {
	requestId, err := bindRequestId(ctx)
	if err != nil {
		return err
	}
	return w.Handler.GroundStationDownload(ctx, requestId)
}

// ReadyForPayment converts echo context to params.
func (w *ServerInterfaceWrapper) ReadyForPayment(ctx echo.Context) error {
	requestId, err := bindRequestId(ctx)
	if err != nil {
		return err
	}
	return w.Handler.ReadyForPayment(ctx, requestId)
}

// ReceivedByGroundStation converts echo context to params.
func (w *ServerInterfaceWrapper) ReceivedByGroundStation(ctx echo.Context) error {
	requestId, err := bindRequestId(ctx)
	if err != nil {
		return err
	}
	return w.Handler.ReceivedByGroundStation(ctx, requestId)
}

// RejectRequest converts echo context to params.
func (w *ServerInterfaceWrapper) RejectRequest(ctx echo.Context) error {
	requestId, err := bindRequestId(ctx)
	if err != nil {
		return err
	}
	return w.Handler.RejectRequest(ctx, requestId)
}

// SatelliteConfirmation converts echo context to params.
func (w *ServerInterfaceWrapper) SatelliteConfirmation(ctx echo.Context) error {
	requestId, err := bindRequestId(ctx)
	if err != nil {
		return err
	}
	return w.Handler.SatelliteConfirmation(ctx, requestId)
}

// SendToGroundStation converts echo context to params.
func (w *ServerInterfaceWrapper) SendToGroundStation(ctx echo.Context) error {
	requestId, err := bindRequestId(ctx)
	if err != nil {
		return err
	}
	return w.Handler.SendToGroundStation(ctx, requestId)
}

// RegisterSatellite converts echo context to params.
func (w *ServerInterfaceWrapper) RegisterSatellite(ctx echo.Context) error {
	return w.Handler.RegisterSatellite(ctx)
}

func bindRequestId(ctx echo.Context) (RequestId, error) {
	var requestId RequestId

	err := runtime.BindStyledParameterWithOptions("simple", "requestId", ctx.Param("requestId"), &requestId,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return requestId, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter requestId: %s", err))
	}
	return requestId, nil
}

// EchoRouter is an interface that wraps the methods of echo.Echo and echo.Group.
type EchoRouter interface {
	CONNECT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	DELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	HEAD(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	OPTIONS(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PATCH(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	TRACE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds each server route to the EchoRouter.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	RegisterHandlersWithBaseURL(router, si, "")
}

// RegisterHandlersWithBaseURL registers handlers, and prepends BaseURL to the paths, so that the paths
// can be served under a prefix.
func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string) {
	wrapper := ServerInterfaceWrapper{
		Handler: si,
	}

	router.POST(baseURL+"/participants", wrapper.RegisterParticipant)
	router.GET(baseURL+"/requests", wrapper.ListOpenRequests)
	router.POST(baseURL+"/requests", wrapper.CreateRequest)
	router.GET(baseURL+"/requests/summary", wrapper.GetStatusSummary)
	router.GET(baseURL+"/requests/:requestId", wrapper.GetRequest)
	router.POST(baseURL+"/requests/:requestId/approve", wrapper.ApproveRequest)
	router.POST(baseURL+"/requests/:requestId/close", wrapper.CloseRequest)
	router.POST(baseURL+"/requests/:requestId/ground-station-download", wrapper.GroundStationDownload)
	router.POST(baseURL+"/requests/:requestId/ready-for-payment", wrapper.ReadyForPayment)
	router.POST(baseURL+"/requests/:requestId/received-by-ground-station", wrapper.ReceivedByGroundStation)
	router.POST(baseURL+"/requests/:requestId/reject", wrapper.RejectRequest)
	router.POST(baseURL+"/requests/:requestId/satellite-confirmation", wrapper.SatelliteConfirmation)
	router.POST(baseURL+"/requests/:requestId/send-to-ground-station", wrapper.SendToGroundStation)
	router.POST(baseURL+"/satellites", wrapper.RegisterSatellite)
}
