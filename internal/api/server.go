package api

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"eventflow/internal/config"
	"eventflow/internal/handlers"
	"eventflow/internal/mailer"
	"eventflow/internal/middleware"
	"eventflow/internal/repository"
	"eventflow/internal/service"
)

const sessionCookieName = "eventflow_session"

// Server is the HTTP API server
type Server struct {
	router   *gin.Engine
	config   *config.Config
	services *service.Services
	repos    *repository.Repositories
}

// NewServer wires the file stores, services and routes
func NewServer(cfg *config.Config) *Server {
	return newServer(cfg, mailer.New(cfg.SMTP))
}

func newServer(cfg *config.Config, m handlers.Mailer) *Server {
	gin.SetMode(cfg.GinMode)

	repos := repository.NewRepositories(cfg.DataDir)
	services := service.NewServices(repos)

	router := gin.New()
	router.Use(
		sessions.Sessions(sessionCookieName, cookie.NewStore([]byte(cfg.SecretKey))),
		middleware.CORS(),
		middleware.Logger(),
		middleware.Metrics(),
		middleware.Recovery(),
	)

	server := &Server{
		router:   router,
		config:   cfg,
		services: services,
		repos:    repos,
	}

	server.setupRoutes(handlers.NewHandlers(services, m))

	return server
}

func (s *Server) setupRoutes(h *handlers.Handlers) {
	// Auth
	s.router.POST("/register", h.Register)
	s.router.POST("/login", h.Login)
	s.router.POST("/admin-login", h.AdminLogin)
	s.router.POST("/logout", h.Logout)
	s.router.GET("/generate_pwd", h.GeneratePassword)

	// Events are browsable without logging in
	s.router.GET("/get_events", h.ListEvents)

	// Routes for logged-in users
	user := s.router.Group("/", middleware.RequireUser())
	{
		user.POST("/book_event", h.BookEvent)
		user.POST("/cancel_registration", h.CancelRegistration)
		user.GET("/get_user_events", h.GetUserEvents)
		user.GET("/get_user_notifications", h.GetUserNotifications)
	}

	// Admin-only routes
	admin := s.router.Group("/", middleware.RequireAdmin())
	{
		admin.POST("/add_event", h.AddEvent)
		admin.GET("/get_all_user_events", h.GetAllUserEvents)
		admin.POST("/add_notification", h.AddNotification)
		admin.POST("/send-email", h.SendEmail)
		admin.GET("/admin/users", h.ListUsers)
		admin.POST("/admin/users", h.ManageUser)
	}

	// Operational endpoints
	s.router.GET("/health", s.healthCheck)
	s.router.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

func (s *Server) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "eventflow-api",
		"version": "1.0.0",
	})
}

// GetRouter returns the router, also used by tests
func (s *Server) GetRouter() *gin.Engine {
	return s.router
}
