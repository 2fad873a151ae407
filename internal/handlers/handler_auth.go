package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	"github.com/saiuttej/books-backend/internal/apperrors"
	"github.com/saiuttej/books-backend/internal/core/domain"
	portssvc "github.com/saiuttej/books-backend/internal/core/ports/services"
	"github.com/saiuttej/books-backend/internal/dto"
	"github.com/saiuttej/books-backend/internal/middleware"
	"github.com/saiuttej/books-backend/internal/platform/config"
)

// authHandler handles registration, login and token refresh.
type authHandler struct {
	userService  portssvc.UserSvcFacade
	tokenService portssvc.TokenSvcFacade
	cfg          *config.Config
}

func newAuthHandler(services *portssvc.ServiceContainer, cfg *config.Config) *authHandler {
	return &authHandler{
		userService:  services.User,
		tokenService: services.Token,
		cfg:          cfg,
	}
}

// registerAuthRoutes sets up the public authentication routes. Login and
// register are rate limited per IP.
func registerAuthRoutes(r *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer) {
	h := newAuthHandler(services, cfg)

	rate, _ := limiter.NewRateFromFormatted("10-M")
	ipLimiter := limiter.New(memory.NewStore(), rate)
	limitMiddleware := middleware.RateLimit(ipLimiter)

	auth := r.Group("/api/v1/auth")
	{
		auth.POST("/register", limitMiddleware, h.register)
		auth.POST("/login", limitMiddleware, h.login)
		auth.POST("/refresh", h.refresh)
		auth.POST("/logout", h.logout)
	}
}

// setRefreshTokenCookie writes the refresh token as an HTTP-only cookie scoped
// to the auth routes.
func (h *authHandler) setRefreshTokenCookie(c *gin.Context, token string, maxAge int) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(
		h.cfg.RefreshTokenCookieName,
		token,
		maxAge,
		h.cfg.RefreshTokenCookiePath,
		"",
		h.cfg.IsProduction,
		true,
	)
}

// register godoc
// @Summary Register new user
// @Description Creates a new user account with email and password.
// @Tags auth
// @Accept json
// @Produce json
// @Param register body dto.RegisterUserRequest true "User registration details"
// @Success 201 {object} dto.UserResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 409 {object} map[string]string "Email already registered"
// @Router /auth/register [post]
func (h *authHandler) register(c *gin.Context) {
	var req dto.RegisterUserRequest
	if !bindJSON(c, &req) {
		return
	}

	user, err := h.userService.CreateUser(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToUserResponse(user))
}

// login godoc
// @Summary User login
// @Description Authenticates with email and password. Returns an access token
// @Description and sets the refresh token as an HTTP-only cookie.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Invalid credentials"
// @Router /auth/login [post]
func (h *authHandler) login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	user, err := h.userService.AuthenticateUser(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	h.issueTokens(c, user)
}

// refresh godoc
// @Summary Refresh access token
// @Description Exchanges the refresh token cookie for a new access token and
// @Description rotates the refresh token.
// @Tags auth
// @Produce json
// @Param userId query string true "User ID the refresh token belongs to"
// @Success 200 {object} dto.LoginResponse
// @Failure 401 {object} map[string]string "Missing, invalid or expired refresh token"
// @Router /auth/refresh [post]
func (h *authHandler) refresh(c *gin.Context) {
	refreshToken, err := c.Cookie(h.cfg.RefreshTokenCookieName)
	if err != nil || refreshToken == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Refresh token missing"})
		return
	}

	userID := strings.TrimSpace(c.Query("userId"))
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "userId query parameter required"})
		return
	}

	user, err := h.tokenService.ValidateRefreshToken(c.Request.Context(), userID, refreshToken)
	if err != nil {
		if errors.Is(err, apperrors.ErrRefreshTokenExpired) || errors.Is(err, apperrors.ErrUnauthorized) {
			h.setRefreshTokenCookie(c, "", -1)
		}
		respondError(c, err)
		return
	}

	h.issueTokens(c, user)
}

// logout godoc
// @Summary Logout
// @Description Clears the stored refresh token and the cookie.
// @Tags auth
// @Produce json
// @Success 204 "No Content"
// @Security BearerAuth
// @Router /auth/logout [post]
func (h *authHandler) logout(c *gin.Context) {
	refreshToken, err := c.Cookie(h.cfg.RefreshTokenCookieName)
	if err == nil && refreshToken != "" {
		if userID := strings.TrimSpace(c.Query("userId")); userID != "" {
			if user, vErr := h.tokenService.ValidateRefreshToken(c.Request.Context(), userID, refreshToken); vErr == nil {
				if clearErr := h.userService.ClearRefreshToken(c.Request.Context(), user.UserID); clearErr != nil {
					logger := middleware.GetLoggerFromCtx(c.Request.Context())
					logger.Error("Failed to clear refresh token", slog.String("error", clearErr.Error()))
				}
			}
		}
	}

	h.setRefreshTokenCookie(c, "", -1)
	c.Status(http.StatusNoContent)
}

// issueTokens generates the access and refresh token pair, sets the refresh
// cookie and writes the login response.
func (h *authHandler) issueTokens(c *gin.Context, user *domain.User) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	accessToken, _, err := h.tokenService.GenerateAccessToken(c.Request.Context(), user)
	if err != nil {
		logger.Error("Failed to generate access token", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	refreshToken, _, err := h.tokenService.GenerateRefreshToken(c.Request.Context(), user)
	if err != nil {
		logger.Error("Failed to generate refresh token", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	h.setRefreshTokenCookie(c, refreshToken, int(h.cfg.RefreshTokenExpiryDuration.Seconds()))
	c.JSON(http.StatusOK, dto.LoginResponse{
		AccessToken: accessToken,
		User:        dto.ToUserResponse(user),
	})
}
