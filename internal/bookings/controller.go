package bookings

import (
	"errors"
	"net/http"

	"seatwise/internal/sessions"
	"seatwise/internal/shared/utils/response"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type Controller struct {
	service   Service
	validator *validator.Validate
}

func NewController(service Service) *Controller {
	return &Controller{
		service:   service,
		validator: validator.New(),
	}
}

// Dashboard handles GET /api/v1/dashboard
func (c *Controller) Dashboard(ctx *gin.Context) {
	sess, ok := sessions.FromContext(ctx)
	if !ok {
		response.RedirectToLogin(ctx)
		return
	}

	dashboard, err := c.service.Dashboard(ctx.Request.Context(), sess)
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to load dashboard", nil, nil)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Dashboard retrieved successfully", dashboard, nil)
}

// Book handles POST /api/v1/book
func (c *Controller) Book(ctx *gin.Context) {
	sess, ok := sessions.FromContext(ctx)
	if !ok {
		response.RedirectToLogin(ctx)
		return
	}

	var req BookRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "No seats selected", nil, err.Error())
		return
	}

	if err := c.validator.Struct(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Validation failed", nil, err.Error())
		return
	}

	booking, err := c.service.Book(ctx.Request.Context(), sess.Username, req.Seats)
	if err != nil {
		switch {
		case errors.Is(err, ErrNoSeatsSelected):
			response.RespondJSON(ctx, "error", http.StatusBadRequest, "No seats selected", nil, nil)
		case errors.Is(err, ErrUnknownSeat):
			response.RespondJSON(ctx, "error", http.StatusBadRequest, "Selected seats do not exist", nil, nil)
		case errors.Is(err, ErrSeatConflict):
			response.RespondJSON(ctx, "error", http.StatusConflict, "Some selected seats are already booked", nil, nil)
		default:
			response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to book seats", nil, nil)
		}
		return
	}

	response.RespondJSON(ctx, "success", http.StatusCreated, "Seats booked successfully", booking.ToResponse(), nil)
}

// Cancel handles POST /api/v1/cancel
func (c *Controller) Cancel(ctx *gin.Context) {
	sess, ok := sessions.FromContext(ctx)
	if !ok {
		response.RedirectToLogin(ctx)
		return
	}

	var req CancelRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	if err := c.validator.Struct(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Validation failed", nil, err.Error())
		return
	}

	bookingID, err := uuid.Parse(req.BookingID)
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid booking ID", nil, nil)
		return
	}

	booking, err := c.service.Cancel(ctx.Request.Context(), sess.Username, bookingID, req.Seats)
	if err != nil {
		switch {
		case errors.Is(err, ErrBookingNotFound):
			response.RespondJSON(ctx, "error", http.StatusNotFound, "Booking not found", nil, nil)
		case errors.Is(err, ErrNotOwner):
			response.RespondJSON(ctx, "error", http.StatusForbidden, "Booking does not belong to you", nil, nil)
		case errors.Is(err, ErrInvalidCancellation):
			response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid booking or seat selection", nil, nil)
		case errors.Is(err, ErrNoSeatsSelected):
			response.RespondJSON(ctx, "error", http.StatusBadRequest, "No seats selected", nil, nil)
		default:
			response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to cancel seats", nil, nil)
		}
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Seats released successfully", booking.ToResponse(), nil)
}
