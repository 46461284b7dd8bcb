package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"stavquote/internal/auth"
	"stavquote/internal/middleware"
	"stavquote/internal/models"
	"stavquote/internal/services"
)

// AuthHandler exposes contractor registration and login.
type AuthHandler struct {
	authService *services.AuthService
	logger      *logrus.Logger
}

// NewAuthHandler builds the auth handler.
func NewAuthHandler(authService *services.AuthService, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		logger:      logger,
	}
}

// Register creates a contractor account
// @Summary Register a contractor
// @Description Creates a contractor account and returns a signed token.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body models.RegisterRequest true "Registration data"
// @Success 201 {object} models.AuthResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Router /api/auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var request models.RegisterRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: *models.NewValidationError("Invalid registration payload", err.Error()),
		})
		return
	}

	contractor, err := h.authService.Register(c.Request.Context(), &request)
	if err != nil {
		if errors.Is(err, services.ErrEmailAlreadyExists) {
			c.JSON(http.StatusConflict, models.ErrorResponse{
				Error: *models.NewConflictError("Email already registered"),
			})
			return
		}
		h.logger.WithError(err).Error("Registration failed")
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: *models.NewInternalError("Failed to register contractor"),
		})
		return
	}

	token, expiresAt, err := auth.GenerateContractorJWT(contractor.ID, contractor.Email, contractor.Name)
	if err != nil {
		h.logger.WithError(err).Error("Token generation failed")
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: *models.NewInternalError("Failed to generate token"),
		})
		return
	}

	h.logger.WithField("email", contractor.Email).Info("Contractor registered")

	c.JSON(http.StatusCreated, models.AuthResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      *contractor,
	})
}

// Login authenticates a contractor
// @Summary Log in
// @Description Authenticates a contractor and returns a signed token.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body models.LoginRequest true "Credentials"
// @Success 200 {object} models.AuthResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Router /api/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var request models.LoginRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: *models.NewValidationError("Invalid login payload", err.Error()),
		})
		return
	}

	contractor, err := h.authService.Login(c.Request.Context(), &request)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse{
				Error: *models.NewAuthenticationError("Invalid email or password"),
			})
			return
		}
		h.logger.WithError(err).Error("Login failed")
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: *models.NewInternalError("Failed to log in"),
		})
		return
	}

	token, expiresAt, err := auth.GenerateContractorJWT(contractor.ID, contractor.Email, contractor.Name)
	if err != nil {
		h.logger.WithError(err).Error("Token generation failed")
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: *models.NewInternalError("Failed to generate token"),
		})
		return
	}

	c.JSON(http.StatusOK, models.AuthResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      *contractor,
	})
}

// Me returns the authenticated contractor
// @Summary Current contractor
// @Description Returns the account behind the presented token.
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.Contractor
// @Failure 401 {object} models.ErrorResponse
// @Router /api/auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	contractorID, _, _, err := middleware.GetContractorFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{
			Error: *models.NewAuthenticationError("Contractor not authenticated"),
		})
		return
	}

	contractor, err := h.authService.GetContractorByID(c.Request.Context(), contractorID.String())
	if err != nil {
		// Supabase-issued tokens have no local row; resolve the account
		// from Supabase instead.
		if errors.Is(err, services.ErrContractorNotFound) {
			if user, serr := h.authService.SupabaseUser(c.Request.Context(), bearerToken(c)); serr == nil {
				c.JSON(http.StatusOK, user)
				return
			}
		}
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error: *models.NewNotFoundError("Contractor not found"),
		})
		return
	}

	c.JSON(http.StatusOK, contractor)
}

// Refresh exchanges a refresh token for a new session
// @Summary Refresh a session
// @Description Exchanges a Supabase refresh token for a fresh session.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body models.RefreshRequest true "Refresh token"
// @Success 200 {object} models.SupabaseSession
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Router /api/auth/refresh [post]
func (h *AuthHandler) Refresh(c *gin.Context) {
	var request models.RefreshRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: *models.NewValidationError("Invalid refresh payload", err.Error()),
		})
		return
	}

	session, err := h.authService.RefreshSession(c.Request.Context(), request.RefreshToken)
	if err != nil {
		if errors.Is(err, services.ErrSupabaseNotConfigured) {
			c.JSON(http.StatusServiceUnavailable, models.ErrorResponse{
				Error: *models.NewInternalError("Session refresh is not available"),
			})
			return
		}
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{
			Error: *models.NewAuthenticationError("Invalid or expired refresh token"),
		})
		return
	}

	c.JSON(http.StatusOK, session)
}

// Logout invalidates the current session
// @Summary Log out
// @Description Revokes the Supabase session behind the presented token.
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 204
// @Failure 401 {object} models.ErrorResponse
// @Router /api/auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.authService.Logout(c.Request.Context(), bearerToken(c)); err != nil {
		h.logger.WithError(err).Warn("Logout failed")
	}
	c.Status(http.StatusNoContent)
}

// bearerToken returns the raw token from the Authorization header, or ""
// when the header is absent or malformed.
func bearerToken(c *gin.Context) string {
	parts := strings.Split(c.GetHeader("Authorization"), " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}
	return parts[1]
}
