package http

import (
	"errors"
	"net/http"

	"opsboard/internal/core/application/controller"
	"opsboard/internal/core/application/usecases/commands"
	"opsboard/internal/core/domain/model/booking"
	"opsboard/internal/core/domain/model/kernel"
	"opsboard/internal/core/domain/model/messaging"
	"opsboard/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server exposes the application controller over HTTP.
// It coordinates between HTTP handlers and the application's intents and
// read models; all state lives behind the controller.
type Server struct {
	ctrl *controller.Controller
}

// NewServer creates a new HTTP server around the application controller.
func NewServer(ctrl *controller.Controller) *Server {
	return &Server{ctrl: ctrl}
}

// RegisterRoutes attaches every endpoint to the given echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.GetHealth)

	api := e.Group("/api/v1")
	api.GET("/orders", s.GetOrders)
	api.POST("/orders", s.CreateOrder)
	api.GET("/orders/selected", s.GetSelectedOrder)
	api.GET("/orders/:id", s.GetOrder)
	api.PUT("/orders/:id", s.EditOrder)
	api.POST("/orders/:id/select", s.SelectOrder)
	api.PUT("/search", s.SetSearchTerm)
	api.GET("/summary", s.GetSummary)
	api.POST("/booking", s.RequestBooking)
	api.GET("/booking", s.GetBooking)
	api.DELETE("/booking", s.DismissBooking)
	api.GET("/templates", s.GetTemplates)
	api.POST("/messages", s.SendMessage)
	api.POST("/uploads", s.TriggerBulkUpload)
	api.GET("/notifications", s.GetNotifications)
	api.DELETE("/notifications/toast", s.DismissToast)
}

// GetHealth handles GET /health - liveness probe.
func (s *Server) GetHealth(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "healthy"})
}

// GetOrders handles GET /api/v1/orders - the order list filtered by the
// current search term. A "search" query parameter updates the term first.
func (s *Server) GetOrders(ctx echo.Context) error {
	if term := ctx.QueryParam("search"); ctx.QueryParams().Has("search") {
		s.ctrl.SetSearchTerm(term)
	}

	orders, err := s.ctrl.Orders(ctx.Request().Context())
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponses(orders))
}

// CreateOrder handles POST /api/v1/orders - submits the add-order form.
// The save resolves after the configured latency; 202 signals acceptance.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var request OrderRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewCreateOrderCommand(
		request.ID,
		request.CustomerName,
		request.CustomerPhone,
		request.Address,
		request.Status,
		request.PickupTime,
	)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.ctrl.SubmitAdd(cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusAccepted)
}

// GetSelectedOrder handles GET /api/v1/orders/selected - the selected order,
// falling back to the most recent one when the selection is stale.
func (s *Server) GetSelectedOrder(ctx echo.Context) error {
	selected, err := s.ctrl.SelectedOrder(ctx.Request().Context())
	if err != nil {
		return writeError(ctx, err)
	}
	if selected == nil {
		return ctx.NoContent(http.StatusNoContent)
	}

	return ctx.JSON(http.StatusOK, toOrderResponse(selected))
}

// GetOrder handles GET /api/v1/orders/:id - a single order by id.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := kernel.NewOrderID(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, err)
	}

	target, err := s.ctrl.Order(ctx.Request().Context(), orderID)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponse(target))
}

// EditOrder handles PUT /api/v1/orders/:id - submits the edit-order form.
func (s *Server) EditOrder(ctx echo.Context) error {
	orderID, err := kernel.NewOrderID(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, err)
	}

	var request OrderRequest
	if err = ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewEditOrderCommand(
		orderID,
		request.CustomerName,
		request.CustomerPhone,
		request.Address,
		request.Status,
	)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.ctrl.SubmitEdit(cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusAccepted)
}

// SelectOrder handles POST /api/v1/orders/:id/select - makes the order the
// selected one.
func (s *Server) SelectOrder(ctx echo.Context) error {
	orderID, err := kernel.NewOrderID(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.ctrl.Select(ctx.Request().Context(), orderID); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// SetSearchTerm handles PUT /api/v1/search - records the search input.
func (s *Server) SetSearchTerm(ctx echo.Context) error {
	var request SearchRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	s.ctrl.SetSearchTerm(request.Term)
	return ctx.NoContent(http.StatusNoContent)
}

// GetSummary handles GET /api/v1/summary - the derived status counts.
func (s *Server) GetSummary(ctx echo.Context) error {
	summary, err := s.ctrl.Summary(ctx.Request().Context())
	if err != nil {
		return writeError(ctx, err)
	}

	response := SummaryResponse{
		PendingCount:   summary.PendingCount,
		InTransitCount: summary.InTransitCount,
	}
	if selected, selErr := s.ctrl.SelectedOrder(ctx.Request().Context()); selErr == nil && selected != nil {
		response.SelectedOrderID = selected.ID().String()
	}

	return ctx.JSON(http.StatusOK, response)
}

// RequestBooking handles POST /api/v1/booking - starts a pickup booking for
// the selected order.
func (s *Server) RequestBooking(ctx echo.Context) error {
	if err := s.ctrl.RequestBooking(ctx.Request().Context()); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusAccepted)
}

// GetBooking handles GET /api/v1/booking - the booking view state.
func (s *Server) GetBooking(ctx echo.Context) error {
	response := BookingResponse{State: s.ctrl.BookingState().String()}
	if quote, ok := s.ctrl.BookingResult(); ok {
		response.Quote = &QuoteResponse{
			Price:      quote.Price(),
			EtaMinutes: quote.EtaMinutes(),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// DismissBooking handles DELETE /api/v1/booking - closes the booking view.
func (s *Server) DismissBooking(ctx echo.Context) error {
	s.ctrl.DismissBooking()
	return ctx.NoContent(http.StatusNoContent)
}

// GetTemplates handles GET /api/v1/templates - the template catalogue and
// the in-flight send, if any.
func (s *Server) GetTemplates(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, TemplatesResponse{
		Templates: s.ctrl.Templates(),
		Sending:   s.ctrl.SendingTemplate(),
	})
}

// SendMessage handles POST /api/v1/messages - sends a templated message to
// the selected order.
func (s *Server) SendMessage(ctx echo.Context) error {
	var request SendMessageRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	if err := s.ctrl.SendTemplate(ctx.Request().Context(), request.Template); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusAccepted)
}

// TriggerBulkUpload handles POST /api/v1/uploads - acknowledges a bulk
// upload request.
func (s *Server) TriggerBulkUpload(ctx echo.Context) error {
	s.ctrl.TriggerBulkUpload()
	return ctx.NoContent(http.StatusAccepted)
}

// GetNotifications handles GET /api/v1/notifications - the toast and the
// success overlay state.
func (s *Server) GetNotifications(ctx echo.Context) error {
	toast := s.ctrl.CurrentToast()
	return ctx.JSON(http.StatusOK, NotificationsResponse{
		Toast: ToastResponse{
			Message: toast.Message,
			Kind:    string(toast.Kind),
			Visible: toast.Visible,
		},
		OverlayVisible: s.ctrl.OverlayVisible(),
	})
}

// DismissToast handles DELETE /api/v1/notifications/toast - hides the toast
// ahead of its deadline.
func (s *Server) DismissToast(ctx echo.Context) error {
	s.ctrl.DismissToast()
	return ctx.NoContent(http.StatusNoContent)
}

// writeError maps domain and application errors onto HTTP status codes.
func writeError(ctx echo.Context, err error) error {
	code := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrObjectNotFound),
		errors.Is(err, controller.ErrNoOrderAvailable):
		code = http.StatusNotFound
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		code = http.StatusBadRequest
	case errors.Is(err, booking.ErrBookingAlreadyInFlight),
		errors.Is(err, messaging.ErrSendAlreadyInFlight),
		errors.Is(err, controller.ErrSubmitAlreadyInFlight):
		code = http.StatusConflict
	}

	return ctx.JSON(code, Error{Code: code, Message: err.Error()})
}
