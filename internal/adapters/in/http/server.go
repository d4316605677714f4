// Package http exposes the warehouse use cases over REST using echo.
// It translates transport concerns (binding, status codes) to and from the
// command/query handlers; no business rules live here.
package http

import (
	"errors"
	"net/http"

	"warehouse/internal/core/application/usecases/commands"
	"warehouse/internal/core/application/usecases/queries"
	"warehouse/internal/core/domain/model/parcel"
	"warehouse/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	registerParcelHandler commands.RegisterParcelCommandHandler
	updateStatusHandler   commands.UpdateParcelStatusCommandHandler

	// Query handlers
	findParcelHandler    queries.FindParcelQueryHandler
	summaryReportHandler queries.SummaryReportQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	registerParcelHandler commands.RegisterParcelCommandHandler,
	updateStatusHandler commands.UpdateParcelStatusCommandHandler,
	findParcelHandler queries.FindParcelQueryHandler,
	summaryReportHandler queries.SummaryReportQueryHandler,
) *Server {
	return &Server{
		registerParcelHandler: registerParcelHandler,
		updateStatusHandler:   updateStatusHandler,
		findParcelHandler:     findParcelHandler,
		summaryReportHandler:  summaryReportHandler,
	}
}

// RegisterRoutes attaches all warehouse endpoints to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")
	api.POST("/packages", s.RegisterPackage)
	api.GET("/packages/:barcode", s.GetPackage)
	api.PATCH("/packages/:barcode/status", s.UpdatePackageStatus)
	api.GET("/reports/summary", s.GetSummaryReport)

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
}

type apiError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type registerPackageRequest struct {
	Barcode     string  `json:"barcode"`
	Weight      float64 `json:"weight"`
	Length      float64 `json:"length"`
	Width       float64 `json:"width"`
	Height      float64 `json:"height"`
	Destination string  `json:"destination"`
	Priority    string  `json:"priority"`
}

type registerPackageResponse struct {
	ID       string `json:"id"`
	Barcode  string `json:"barcode"`
	Category string `json:"category"`
	Location string `json:"location"`
	Status   string `json:"status"`
}

// RegisterPackage handles POST /api/v1/packages - registers an incoming package.
func (s *Server) RegisterPackage(ctx echo.Context) error {
	var request registerPackageRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, apiError{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	dims, err := parcel.NewDimensions(request.Weight, request.Length, request.Width, request.Height)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, apiError{
			Code:    http.StatusBadRequest,
			Message: "Invalid package dimensions: " + err.Error(),
		})
	}

	cmd, err := commands.NewRegisterParcelCommand(
		request.Barcode, dims, request.Destination, request.Priority)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, apiError{
			Code:    http.StatusBadRequest,
			Message: "Invalid package data: " + err.Error(),
		})
	}

	result, err := s.registerParcelHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrDuplicateBarcode):
			return ctx.JSON(http.StatusConflict, apiError{
				Code:    http.StatusConflict,
				Message: err.Error(),
			})
		case errors.Is(err, errs.ErrNoAvailableLocation):
			return ctx.JSON(http.StatusConflict, apiError{
				Code:    http.StatusConflict,
				Message: err.Error(),
			})
		default:
			return ctx.JSON(http.StatusInternalServerError, apiError{
				Code:    http.StatusInternalServerError,
				Message: "Failed to register package",
			})
		}
	}

	return ctx.JSON(http.StatusCreated, registerPackageResponse{
		ID:       result.ParcelID.String(),
		Barcode:  cmd.Barcode(),
		Category: result.Category.String(),
		Location: result.LocationCode,
		Status:   result.Status,
	})
}

type packageResponse struct {
	ID          string  `json:"id"`
	Barcode     string  `json:"barcode"`
	Status      string  `json:"status"`
	Category    string  `json:"category"`
	Zone        string  `json:"zone"`
	Location    string  `json:"location,omitempty"`
	Destination string  `json:"destination"`
	Priority    string  `json:"priority"`
	Weight      float64 `json:"weight"`
	ReceivedAt  string  `json:"received_at"`
}

// GetPackage handles GET /api/v1/packages/:barcode - retrieves one package.
func (s *Server) GetPackage(ctx echo.Context) error {
	query, err := queries.NewFindParcelQuery(ctx.Param("barcode"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, apiError{
			Code:    http.StatusBadRequest,
			Message: "Barcode is required",
		})
	}

	view, err := s.findParcelHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return ctx.JSON(http.StatusNotFound, apiError{
				Code:    http.StatusNotFound,
				Message: "Package not found",
			})
		}
		return ctx.JSON(http.StatusInternalServerError, apiError{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve package",
		})
	}

	return ctx.JSON(http.StatusOK, packageResponse{
		ID:          view.ID.String(),
		Barcode:     view.Barcode,
		Status:      view.Status,
		Category:    view.Category,
		Zone:        view.Zone,
		Location:    view.LocationCode,
		Destination: view.Destination,
		Priority:    view.Priority,
		Weight:      view.Weight,
		ReceivedAt:  view.ReceivedAt.Format("2006-01-02T15:04:05Z07:00"),
	})
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

type updateStatusResponse struct {
	Barcode          string `json:"barcode"`
	OldStatus        string `json:"old_status"`
	NewStatus        string `json:"new_status"`
	ReleasedLocation string `json:"released_location,omitempty"`
}

// UpdatePackageStatus handles PATCH /api/v1/packages/:barcode/status.
func (s *Server) UpdatePackageStatus(ctx echo.Context) error {
	var request updateStatusRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, apiError{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewUpdateParcelStatusCommand(ctx.Param("barcode"), request.Status)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, apiError{
			Code:    http.StatusBadRequest,
			Message: "Invalid status data: " + err.Error(),
		})
	}

	result, err := s.updateStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrObjectNotFound):
			return ctx.JSON(http.StatusNotFound, apiError{
				Code:    http.StatusNotFound,
				Message: "Package not found",
			})
		case errors.Is(err, errs.ErrValueIsInvalid):
			// The transition table rejected the change.
			return ctx.JSON(http.StatusUnprocessableEntity, apiError{
				Code:    http.StatusUnprocessableEntity,
				Message: err.Error(),
			})
		default:
			return ctx.JSON(http.StatusInternalServerError, apiError{
				Code:    http.StatusInternalServerError,
				Message: "Failed to update package status",
			})
		}
	}

	return ctx.JSON(http.StatusOK, updateStatusResponse{
		Barcode:          result.Barcode,
		OldStatus:        result.OldStatus,
		NewStatus:        result.NewStatus,
		ReleasedLocation: result.ReleasedLocation,
	})
}

// GetSummaryReport handles GET /api/v1/reports/summary?limit=N.
func (s *Server) GetSummaryReport(ctx echo.Context) error {
	limit := 0
	if raw := ctx.QueryParam("limit"); raw != "" {
		if err := echo.QueryParamsBinder(ctx).Int("limit", &limit).BindError(); err != nil {
			return ctx.JSON(http.StatusBadRequest, apiError{
				Code:    http.StatusBadRequest,
				Message: "Invalid limit parameter",
			})
		}
	}

	query, err := queries.NewSummaryReportQuery(limit)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, apiError{
			Code:    http.StatusBadRequest,
			Message: "Invalid limit parameter",
		})
	}

	report, err := s.summaryReportHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, apiError{
			Code:    http.StatusInternalServerError,
			Message: "Failed to build summary report",
		})
	}

	return ctx.JSON(http.StatusOK, report)
}
