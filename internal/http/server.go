package http

import (
	"dc_inventory_server/config"
	"dc_inventory_server/internal/http/middleware"
	"dc_inventory_server/internal/services"
	"dc_inventory_server/pkg/logger"

	"github.com/gin-gonic/gin"
)

// Server represents the HTTP server
type Server struct {
	router *gin.Engine
	port   string
}

// NewServer creates a new HTTP server instance wired to the services
func NewServer(cfg *config.Config, assetService *services.AssetService, deviceService *services.DeviceService) *Server {
	// Set Gin to release mode to reduce debug output
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())

	// Only log requests if LOG_HTTP is set to true
	if cfg.LogHTTP {
		router.Use(middleware.RequestLogger())
	}

	router.Use(CORSMiddleware())

	SetupRoutes(router, assetService, deviceService)

	return &Server{
		router: router,
		port:   cfg.HTTPPort,
	}
}

// Router exposes the gin engine, used by tests
func (s *Server) Router() *gin.Engine {
	return s.router
}

// Start starts the HTTP server
func (s *Server) Start() error {
	logger.Info().Str("port", s.port).Msg("HTTP REST API server starting")
	return s.router.Run(":" + s.port)
}

// CORSMiddleware handles CORS for the operator UI
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if origin != "" {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		} else {
			c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		}

		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
