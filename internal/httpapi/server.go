// Package httpapi serves path queries, rendered maps and live search
// streams over HTTP.
package httpapi

import (
	"io"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/pdrpinto/gridpath/internal/config"
)

type Server struct {
	cfg      config.Config
	logger   *log.Logger
	engine   *gin.Engine
	upgrader websocket.Upgrader
}

// New builds the router. A nil logger discards output.
func New(cfg config.Config, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	s := &Server{
		cfg:    cfg,
		logger: logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestLogger(logger))
	router.Use(CORSMiddleware(cfg.CORSOrigin))
	router.Use(BrotliMiddleware())

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	api := router.Group("/api")
	api.POST("/path", s.handlePath)
	api.POST("/path.png", s.handlePathPNG)
	api.POST("/batch", s.handleBatch)
	api.GET("/schema", s.handleSchema)
	router.GET("/ws/step", s.handleStepStream)

	s.engine = router
	return s
}

func (s *Server) Handler() http.Handler { return s.engine }
