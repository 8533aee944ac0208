package http

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/oadeniran/Nexus/internal/logging"
	"github.com/oadeniran/Nexus/internal/session"
)

// NewRouter builds the gin engine with all endpoints and middleware.
func NewRouter(service *session.Service, production bool) *gin.Engine {
	if production {
		gin.SetMode(gin.ReleaseMode)
	}

	logger := logging.NewComponentLogger("HTTP")
	handler := NewAPIHandler(service)

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(RequestLogger(logger))

	// The frontend runs on a different origin during development.
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}
	engine.Use(cors.New(corsConfig))

	engine.GET("/", handler.HandleRoot)
	engine.GET("/api/health", handler.HandleHealth)
	engine.POST("/api/save-session", handler.HandleSaveSession)
	engine.POST("/api/search", handler.HandleSearch)
	engine.GET("/api/history", handler.HandleHistory)

	return engine
}
