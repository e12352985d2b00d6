package accessrequests

import (
	"errors"
	"net/http"

	"seatwise/internal/sessions"
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

// Request handles POST /api/v1/request
func (c *Controller) Request(ctx *gin.Context) {
	sess, ok := sessions.FromContext(ctx)
	if !ok {
		response.RedirectToLogin(ctx)
		return
	}

	var req AccessRequestBody
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	if err := c.validator.Struct(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Validation failed", nil, err.Error())
		return
	}

	request, err := c.service.Request(ctx.Request.Context(), sess.Username, req.Timestamp)
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to record request", nil, nil)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusCreated, "Request recorded successfully", request, nil)
}

// Reply handles POST /api/v1/reply
func (c *Controller) Reply(ctx *gin.Context) {
	sess, ok := sessions.FromContext(ctx)
	if !ok {
		response.RedirectToLogin(ctx)
		return
	}

	var req ReplyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	if err := c.validator.Struct(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Validation failed", nil, err.Error())
		return
	}

	request, err := c.service.Reply(ctx.Request.Context(), sess, req.Requester)
	if err != nil {
		switch {
		case errors.Is(err, ErrReplyForbidden):
			response.RespondJSON(ctx, "error", http.StatusForbidden, "Not allowed to grant requests", nil, nil)
		case errors.Is(err, ErrNoPendingRequest):
			response.RespondJSON(ctx, "error", http.StatusNotFound, "No pending request for user", nil, nil)
		default:
			response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to grant request", nil, nil)
		}
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Request granted successfully", request, nil)
}
