package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/saiuttej/books-backend/internal/apperrors"
	"github.com/saiuttej/books-backend/internal/core/domain"
	portssvc "github.com/saiuttej/books-backend/internal/core/ports/services"
	"github.com/saiuttej/books-backend/internal/middleware"
	"github.com/saiuttej/books-backend/internal/platform/config"
)

const oauthStateCookieName = "oauth_state"

// ExchangeCodeRequest carries the authorization code obtained by the frontend.
type ExchangeCodeRequest struct {
	Code string `json:"code" binding:"required"`
}

// googleOAuthHandler handles the Google sign-in flows: the redirect flow for
// browsers and the exchange-code flow for SPAs.
type googleOAuthHandler struct {
	googleOAuthService portssvc.GoogleOAuthSvcFacade
	userService        portssvc.UserSvcFacade
	tokenService       portssvc.TokenSvcFacade
	authHandler        *authHandler
	cfg                *config.Config
}

func registerGoogleOAuthRoutes(r *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer) {
	h := &googleOAuthHandler{
		googleOAuthService: services.GoogleOAuth,
		userService:        services.User,
		tokenService:       services.Token,
		authHandler:        newAuthHandler(services, cfg),
		cfg:                cfg,
	}

	google := r.Group("/api/v1/auth/google")
	{
		google.GET("/login", h.login)
		google.GET("/callback", h.callback)
		google.POST("/exchange-code", h.exchangeCode)
	}
}

// login godoc
// @Summary Start Google sign-in
// @Description Redirects the browser to the Google consent screen.
// @Tags oauth
// @Success 307 "Redirect to Google"
// @Router /auth/google/login [get]
func (h *googleOAuthHandler) login(c *gin.Context) {
	state, err := h.googleOAuthService.GenerateStateString(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(oauthStateCookieName, state, 600, "/api/v1/auth/google", "", h.cfg.IsProduction, true)
	c.Redirect(http.StatusTemporaryRedirect, h.googleOAuthService.GetGoogleLoginURL(c.Request.Context(), state))
}

// callback godoc
// @Summary Google sign-in callback
// @Description Completes the redirect flow: verifies the state, exchanges the
// @Description code and redirects to the frontend with tokens issued.
// @Tags oauth
// @Success 307 "Redirect to frontend"
// @Failure 400 {object} map[string]string "State mismatch or invalid code"
// @Router /auth/google/callback [get]
func (h *googleOAuthHandler) callback(c *gin.Context) {
	stateCookie, err := c.Cookie(oauthStateCookieName)
	if err != nil || stateCookie == "" || stateCookie != c.Query("state") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "OAuth state mismatch"})
		return
	}
	c.SetCookie(oauthStateCookieName, "", -1, "/api/v1/auth/google", "", h.cfg.IsProduction, true)

	code := c.Query("code")
	if code == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Authorization code missing"})
		return
	}

	user, err := h.resolveUserFromCode(c.Request.Context(), code)
	if err != nil {
		respondError(c, err)
		return
	}

	h.authHandler.issueTokens(c, user)
}

// exchangeCode godoc
// @Summary Exchange Google authorization code
// @Description Exchanges an authorization code obtained by the frontend for
// @Description application tokens, creating the account on first sign-in.
// @Tags oauth
// @Accept json
// @Produce json
// @Param code body ExchangeCodeRequest true "Authorization code"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} map[string]string "Invalid or expired authorization code"
// @Router /auth/google/exchange-code [post]
func (h *googleOAuthHandler) exchangeCode(c *gin.Context) {
	var req ExchangeCodeRequest
	if !bindJSON(c, &req) {
		return
	}

	user, err := h.resolveUserFromCode(c.Request.Context(), req.Code)
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "invalid_grant") {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid or expired authorization code"})
			return
		}
		respondError(c, err)
		return
	}

	h.authHandler.issueTokens(c, user)
}

// resolveUserFromCode exchanges the authorization code, validates the ID
// token, and finds or creates the matching user account.
func (h *googleOAuthHandler) resolveUserFromCode(ctx context.Context, code string) (*domain.User, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	oauth2Token, err := h.googleOAuthService.ExchangeCodeForToken(ctx, code)
	if err != nil {
		return nil, err
	}

	idTokenString, ok := oauth2Token.Extra("id_token").(string)
	if !ok || idTokenString == "" {
		return nil, errors.New("ID token missing from google token response")
	}

	payload, err := h.googleOAuthService.ValidateGoogleIDToken(ctx, idTokenString)
	if err != nil {
		return nil, err
	}

	info := domain.GoogleUserInfo{
		Sub:           payload.Subject,
		Email:         stringClaim(payload.Claims, "email"),
		EmailVerified: boolClaim(payload.Claims, "email_verified"),
		Name:          stringClaim(payload.Claims, "name"),
		Picture:       stringClaim(payload.Claims, "picture"),
	}

	user, err := h.userService.GetUserByEmail(ctx, info.Email)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	logger.Info("Creating account from Google sign-in", slog.String("email", info.Email))
	return h.userService.CreateGoogleUser(ctx, info)
}

func stringClaim(claims map[string]any, key string) string {
	if v, ok := claims[key].(string); ok {
		return v
	}
	return ""
}

func boolClaim(claims map[string]any, key string) bool {
	if v, ok := claims[key].(bool); ok {
		return v
	}
	return false
}
