package router

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/renewed-app/backend/config"
	"github.com/renewed-app/backend/pkg/logger"
	"gorm.io/gorm"
)

// HandlerFunc is the typed signature every domain operation exposes. The
// router binds the request, runs the middleware chain, and serializes the
// response or error.
type HandlerFunc[Request, Response any] func(ctx context.Context, req *Request) (*Response, error)

// MiddlewareFunc runs before the handler. It can derive a new context (for
// example to attach the authenticated user) or abort with an error.
type MiddlewareFunc func(ctx context.Context) (context.Context, error)

// CloserFunc runs after the handler, observing the outcome through
// xcontext.GetError and xcontext.GetResponse.
type CloserFunc func(ctx context.Context)

type Router struct {
	Inner gin.IRouter

	engine  *gin.Engine
	db      *gorm.DB
	cfg     config.Configs
	logger  logger.Logger
	befores []MiddlewareFunc
	closers []CloserFunc
}

func New(db *gorm.DB, cfg config.Configs, logger logger.Logger) *Router {
	if cfg.Env == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(gin.Recovery())

	return &Router{
		Inner:  engine,
		engine: engine,
		db:     db,
		cfg:    cfg,
		logger: logger,
	}
}

// Branch clones the router so middleware registered on the branch does not
// leak back to the parent.
func (r *Router) Branch() *Router {
	return &Router{
		Inner:   r.Inner,
		engine:  r.engine,
		db:      r.db,
		cfg:     r.cfg,
		logger:  r.logger,
		befores: append([]MiddlewareFunc{}, r.befores...),
		closers: append([]CloserFunc{}, r.closers...),
	}
}

func (r *Router) Before(middlewares ...MiddlewareFunc) {
	r.befores = append(r.befores, middlewares...)
}

func (r *Router) AddCloser(closers ...CloserFunc) {
	r.closers = append(r.closers, closers...)
}

func GET[Request, Response any](r *Router, pattern string, handler HandlerFunc[Request, Response]) {
	r.Inner.GET(pattern, wrapHandler(r, http.MethodGet, handler))
}

func POST[Request, Response any](r *Router, pattern string, handler HandlerFunc[Request, Response]) {
	r.Inner.POST(pattern, wrapHandler(r, http.MethodPost, handler))
}

func (r *Router) Handler() http.Handler {
	return r.engine
}
