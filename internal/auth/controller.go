package auth

import (
	"net/http"

	"seatwise/internal/shared/config"
	"seatwise/internal/shared/utils/response"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type Controller struct {
	service   Service
	config    *config.Config
	validator *validator.Validate
}

func NewController(service Service, cfg *config.Config) *Controller {
	return &Controller{
		service:   service,
		config:    cfg,
		validator: validator.New(),
	}
}

// Login handles POST /api/v1/login
func (c *Controller) Login(ctx *gin.Context) {
	var req LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	if err := c.validator.Struct(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Validation failed", nil, err.Error())
		return
	}

	resp, token, err := c.service.Login(ctx.Request.Context(), &req)
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to log in", nil, nil)
		return
	}

	ctx.SetCookie(
		c.config.Session.CookieName,
		token,
		int(c.config.Session.TTL.Seconds()),
		"/",
		"",
		c.config.IsProduction(),
		true,
	)

	response.RespondJSON(ctx, "success", http.StatusOK, "Logged in successfully", resp, nil)
}
