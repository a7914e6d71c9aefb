package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"eventflow/internal/middleware"
	"eventflow/internal/models"
)

// Register - POST /register
func (h *Handlers) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.services.Users.Register(c.Request.Context(), req.Username, req.Password, req.Email); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, models.MessageResponse{
		Message: "Registration successful! You can now log in.",
	})
}

// Login - POST /login
// Establishes the session identity for subsequent requests
func (h *Handlers) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.services.Users.Authenticate(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		h.handleError(c, err)
		return
	}

	h.startSession(c, user)
}

// AdminLogin - POST /admin-login
// Same as Login but only admin accounts may pass
func (h *Handlers) AdminLogin(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.services.Users.AuthenticateAdmin(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		h.handleError(c, err)
		return
	}

	h.startSession(c, user)
}

func (h *Handlers) startSession(c *gin.Context, user *models.User) {
	ident := models.Identity{
		Username: user.Username,
		Role:     user.Role,
		Email:    user.Email,
	}
	if err := middleware.SetIdentity(c, ident); err != nil {
		slog.Error("failed to save session", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, models.LoginResponse{
		Username: user.Username,
		Role:     user.Role,
		Email:    user.Email,
	})
}

// Logout - POST /logout
func (h *Handlers) Logout(c *gin.Context) {
	if err := middleware.ClearIdentity(c); err != nil {
		slog.Error("failed to clear session", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, models.MessageResponse{Message: "You have been logged out."})
}

// GeneratePassword - GET /generate_pwd?password=...
// Hash helper kept from the original service, handy for seeding store files
// by hand.
func (h *Handlers) GeneratePassword(c *gin.Context) {
	password := c.Query("password")
	if password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "password query parameter is required"})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.String(http.StatusOK, string(hash))
}
