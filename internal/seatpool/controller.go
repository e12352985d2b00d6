package seatpool

import (
	"errors"
	"net/http"

	"seatwise/internal/shared/utils/response"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
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

// ResetTickets handles POST /api/v1/admin/reset_tickets
func (c *Controller) ResetTickets(ctx *gin.Context) {
	if err := c.service.Reset(ctx.Request.Context()); err != nil {
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to reset seat pool", nil, nil)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Seat pool reset successfully", nil, nil)
}

// SetTickets handles POST /api/v1/admin/set_tickets
func (c *Controller) SetTickets(ctx *gin.Context) {
	var req ResizePoolRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	if err := c.validator.Struct(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Validation failed", nil, err.Error())
		return
	}

	pool, err := c.service.Resize(ctx.Request.Context(), req.TotalTickets)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidPoolSize):
			response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid pool size", nil, nil)
		default:
			response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to resize seat pool", nil, nil)
		}
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Seat pool resized successfully", pool.ToResponse(), nil)
}
