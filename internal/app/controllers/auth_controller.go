package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cursoscarioca/webciclo/internal/app/models/dto"
	"github.com/cursoscarioca/webciclo/internal/app/services"
	"github.com/cursoscarioca/webciclo/internal/middleware"
	"github.com/cursoscarioca/webciclo/internal/pkg/logger"
)

// AuthController handles staff authentication
type AuthController struct {
	authService *services.AuthService
}

// NewAuthController creates a new AuthController
func NewAuthController(authService *services.AuthService) *AuthController {
	return &AuthController{authService: authService}
}

// Login handles a staff login request
// @Summary Staff login
// @Description Authenticates a staff account and returns a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Credentials"
// @Success 200 {object} dto.APIResponse{data=dto.LoginResponse} "Authenticated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 401 {object} dto.ErrorResponse "Invalid credentials"
// @Failure 403 {object} dto.ErrorResponse "Account disabled"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		logger.Warn().Err(err).Msg("Invalid login request payload")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	user, token, expiresIn, err := c.authService.Login(ctx.Request.Context(), req.Username, req.Password)
	if err != nil {
		logger.Warn().Err(err).Str("username", req.Username).Msg("Login failed")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.LoginResponse{
		Token:     token,
		ExpiresIn: expiresIn,
		User: dto.UserResponse{
			ID:          user.ID,
			Username:    user.Username,
			DisplayName: user.DisplayName,
		},
	}, "Login realizado com sucesso"))
}
