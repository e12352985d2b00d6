package payments

import (
	"errors"
	"net/http"

	"seatwise/internal/bookings"
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

// Pay handles POST /api/v1/payment/:id
func (c *Controller) Pay(ctx *gin.Context) {
	sess, ok := sessions.FromContext(ctx)
	if !ok {
		response.RedirectToLogin(ctx)
		return
	}

	bookingID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid booking ID", nil, nil)
		return
	}

	var req PayRequest
	if ctx.Request.ContentLength > 0 {
		if err := ctx.ShouldBindJSON(&req); err != nil {
			response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
			return
		}
		if err := c.validator.Struct(&req); err != nil {
			response.RespondJSON(ctx, "error", http.StatusBadRequest, "Validation failed", nil, err.Error())
			return
		}
	}

	payment, err := c.service.Pay(ctx.Request.Context(), sess, bookingID, &req)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			response.RespondJSON(ctx, "error", http.StatusNotFound, "Booking not found", nil, nil)
		case errors.Is(err, ErrNotBookingOwner):
			response.RespondJSON(ctx, "error", http.StatusForbidden, "Booking does not belong to you", nil, nil)
		default:
			response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to process payment", nil, nil)
		}
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Payment processed successfully", payment, nil)
}

// GetPayments handles GET /api/v1/payment/:id
func (c *Controller) GetPayments(ctx *gin.Context) {
	sess, ok := sessions.FromContext(ctx)
	if !ok {
		response.RedirectToLogin(ctx)
		return
	}

	bookingID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid booking ID", nil, nil)
		return
	}

	booking, payments, err := c.service.GetPaymentsForBooking(ctx.Request.Context(), sess, bookingID)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			response.RespondJSON(ctx, "error", http.StatusNotFound, "Booking not found", nil, nil)
		case errors.Is(err, ErrNotBookingOwner):
			response.RespondJSON(ctx, "error", http.StatusForbidden, "Booking does not belong to you", nil, nil)
		default:
			response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to get payments", nil, nil)
		}
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Payments retrieved successfully", gin.H{
		"booking":  booking.ToResponse(),
		"payments": payments,
	}, nil)
}
