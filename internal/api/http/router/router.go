package router

import (
	"fmt"

	"github.com/dtroode/statementbox/internal/api/http/handler"
	"github.com/dtroode/statementbox/internal/api/http/middleware"
	"github.com/dtroode/statementbox/internal/logger"
	"github.com/dtroode/statementbox/internal/model"
	"github.com/gin-gonic/gin"
)

// Router wires HTTP handlers and middleware for the statement upload API.
type Router struct {
	sessionService handler.SessionService
	authService    handler.AuthService
	fileService    handler.FileService
	tokenParser    middleware.TokenParser
	db             handler.Pinger
	contextManager model.ContextManager
	maxFiles       int
	maxFileSize    int64
	trustedProxies []string
	logger         *logger.Logger
}

// Option configures a Router.
type Option func(*Router)

// WithUploadLimits sets how many files and bytes per file an upload request may carry.
func WithUploadLimits(maxFiles int, maxFileSize int64) Option {
	return func(r *Router) {
		r.maxFiles = maxFiles
		r.maxFileSize = maxFileSize
	}
}

// WithTrustedProxies lists the proxies whose forwarding headers are honoured
// when resolving the client IP. Without it no proxy is trusted.
func WithTrustedProxies(proxies []string) Option {
	return func(r *Router) {
		r.trustedProxies = proxies
	}
}

// New creates new Router instance.
func New(
	sessionService handler.SessionService,
	authService handler.AuthService,
	fileService handler.FileService,
	tokenParser middleware.TokenParser,
	db handler.Pinger,
	contextManager model.ContextManager,
	logger *logger.Logger,
	opts ...Option,
) *Router {
	r := &Router{
		sessionService: sessionService,
		authService:    authService,
		fileService:    fileService,
		tokenParser:    tokenParser,
		db:             db,
		contextManager: contextManager,
		logger:         logger,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register builds the gin engine with request logging, authentication and all routes.
func (r *Router) Register() (*gin.Engine, error) {
	logging := middleware.NewLogging(r.logger)
	authenticate := middleware.NewAuthenticate(r.tokenParser, r.contextManager, r.logger)

	engine := gin.New()
	if err := engine.SetTrustedProxies(r.trustedProxies); err != nil {
		return nil, fmt.Errorf("failed to set trusted proxies: %w", err)
	}
	engine.Use(gin.Recovery(), logging.Handle)

	engine.GET("/healthz", handler.NewHealth(r.db, r.logger).Check)

	r.registerAuthRoutes(engine)

	authed := engine.Group("", authenticate.Handle)
	r.registerSessionRoutes(engine, authed)
	r.registerFileRoutes(authed)

	return engine, nil
}

func (r *Router) registerAuthRoutes(engine *gin.Engine) {
	authHandler := handler.NewAuth(r.authService, r.logger)

	auth := engine.Group("/auth")
	auth.POST("/request-link", authHandler.RequestLink)
	auth.POST("/request-sessions", authHandler.RequestSessions)
	auth.POST("/verify", authHandler.Verify)
}

func (r *Router) registerSessionRoutes(engine *gin.Engine, authed *gin.RouterGroup) {
	sessionHandler := handler.NewSession(r.sessionService, r.contextManager, r.logger)

	engine.POST("/sessions", sessionHandler.Create)
	authed.GET("/sessions", sessionHandler.List)
	authed.GET("/sessions/:id", sessionHandler.Get)
	authed.PATCH("/sessions/:id/settings", sessionHandler.UpdateSettings)
	authed.DELETE("/sessions/:id", sessionHandler.Delete)
}

func (r *Router) registerFileRoutes(authed *gin.RouterGroup) {
	fileHandler := handler.NewFile(r.fileService, r.contextManager, r.maxFiles, r.maxFileSize, r.logger)

	authed.POST("/sessions/:id/files", fileHandler.Upload)
	authed.POST("/sessions/:id/files/detect", fileHandler.Detect)
	authed.GET("/sessions/:id/files", fileHandler.List)
	authed.PATCH("/sessions/:id/files/category", fileHandler.MoveToCategory)
	authed.PATCH("/files/:id", fileHandler.UpdateStatementType)
	authed.DELETE("/files/:id", fileHandler.Delete)
	authed.GET("/files/:id/raw", fileHandler.Raw)
}
