package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/campusfunds/event_funds_app/internal/dto"
	"github.com/campusfunds/event_funds_app/internal/middleware"
	"github.com/campusfunds/event_funds_app/internal/utils"
	"github.com/campusfunds/event_funds_app/pkg/config"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// authHandler issues bearer tokens for the write API.
type authHandler struct {
	cfg *config.Config
}

// newAuthHandler creates a new authHandler.
func newAuthHandler(cfg *config.Config) *authHandler {
	return &authHandler{cfg: cfg}
}

// registerAuthRoutes registers the login route.
func registerAuthRoutes(rg *gin.RouterGroup, cfg *config.Config) {
	h := newAuthHandler(cfg)

	rg.POST("/auth/login", h.login)
}

// login godoc
// @Summary Admin login
// @Description Verifies the admin password and issues a JWT for the write routes.
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body dto.LoginRequest true "Admin password"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Invalid credentials"
// @Router /auth/login [post]
func (h *authHandler) login(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for login", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	if h.cfg.AdminPasswordHash == "" || !utils.CheckPasswordHash(req.Password, h.cfg.AdminPasswordHash) {
		logger.Warn("Rejected admin login attempt", slog.String("clientIP", c.ClientIP()))
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	expiresAt := time.Now().Add(h.cfg.JWTExpiryDuration)
	claims := jwt.RegisteredClaims{
		Subject:   "admin",
		Issuer:    h.cfg.JWTIssuer,
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(h.cfg.JWTSecret))
	if err != nil {
		logger.Error("Failed to sign token", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to issue token"})
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{Token: signed, ExpiresAt: expiresAt})
}
