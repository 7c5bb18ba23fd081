package httpserver

import (
	"database/sql"
	"errors"

	"github.com/gin-gonic/gin"

	"mentalbank/config"
	syncPkg "mentalbank/internal/sync"
	"mentalbank/pkg/log"
	"mentalbank/pkg/scope"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	db         *sql.DB
	jwtManager scope.Manager
	publisher  syncPkg.Publisher
	cfg        *config.Config
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	DB         *sql.DB
	JWTManager scope.Manager
	// Publisher may be nil when the queue is not configured; goal
	// mutations then skip calendar-sync events.
	Publisher syncPkg.Publisher
	AppConfig *config.Config
}

// New creates a new HTTPServer instance.
func New(cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:           cfg.Logger,
		gin:         gin.Default(),
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		db:          cfg.DB,
		jwtManager:  cfg.JWTManager,
		publisher:   cfg.Publisher,
		cfg:         cfg.AppConfig,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.db == nil {
		return errors.New("database is required")
	}
	if srv.jwtManager == nil {
		return errors.New("jwt manager is required")
	}
	if srv.cfg == nil {
		return errors.New("app config is required")
	}
	return nil
}
