package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/supplierhub/relay/internal/interfaces/http/dto"
	"github.com/supplierhub/relay/internal/interfaces/http/middleware"
)

// MsgRouteNotFound is returned for paths no endpoint serves
const MsgRouteNotFound = "Route not found"

// RouteRegistrar defines the interface for registering routes
type RouteRegistrar interface {
	RegisterRoutes(rg *gin.RouterGroup)
}

// Router manages HTTP route registration
type Router struct {
	engine     *gin.Engine
	prefix     string
	registrars []RouteRegistrar
}

// RouterOption is a functional option for Router configuration
type RouterOption func(*Router)

// WithPrefix sets the path prefix shared by every route (default "/api")
func WithPrefix(prefix string) RouterOption {
	return func(r *Router) {
		r.prefix = prefix
	}
}

// NewRouter creates a new Router instance
func NewRouter(engine *gin.Engine, opts ...RouterOption) *Router {
	r := &Router{
		engine:     engine,
		prefix:     "/api",
		registrars: make([]RouteRegistrar, 0),
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Register adds a RouteRegistrar to be registered later
func (r *Router) Register(registrar RouteRegistrar) *Router {
	r.registrars = append(r.registrars, registrar)
	return r
}

// Setup registers all routes with the engine. Unknown paths get a 404
// envelope instead of gin's plain text.
func (r *Router) Setup() {
	api := r.engine.Group(r.prefix)

	for _, registrar := range r.registrars {
		registrar.RegisterRoutes(api)
	}

	r.engine.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, MsgRouteNotFound))
	})
}

// DomainGroup creates a route group for a specific domain.
// Every route answers all methods: the declared one reaches the handlers,
// OPTIONS gets the CORS preflight and anything else a 405 envelope.
type DomainGroup struct {
	name       string
	prefix     string
	routes     []routeDefinition
	subgroups  []*DomainGroup
	middleware []gin.HandlerFunc
	cors       middleware.CORSConfig
}

type routeDefinition struct {
	method   string
	path     string
	handlers []gin.HandlerFunc
}

// NewDomainGroup creates a new domain-specific route group
func NewDomainGroup(name, prefix string) *DomainGroup {
	return &DomainGroup{
		name:       name,
		prefix:     prefix,
		routes:     make([]routeDefinition, 0),
		subgroups:  make([]*DomainGroup, 0),
		middleware: make([]gin.HandlerFunc, 0),
		cors:       middleware.DefaultCORSConfig(),
	}
}

// Use adds middleware to this group. It runs after the method guard, so
// preflight and 405 responses never reach it.
func (dg *DomainGroup) Use(middleware ...gin.HandlerFunc) *DomainGroup {
	dg.middleware = append(dg.middleware, middleware...)
	return dg
}

// WithCORS overrides the CORS headers set on this group's routes
func (dg *DomainGroup) WithCORS(cfg middleware.CORSConfig) *DomainGroup {
	dg.cors = cfg
	return dg
}

// GET registers a GET route
func (dg *DomainGroup) GET(path string, handlers ...gin.HandlerFunc) *DomainGroup {
	return dg.handle(http.MethodGet, path, handlers)
}

// POST registers a POST route
func (dg *DomainGroup) POST(path string, handlers ...gin.HandlerFunc) *DomainGroup {
	return dg.handle(http.MethodPost, path, handlers)
}

// PATCH registers a PATCH route
func (dg *DomainGroup) PATCH(path string, handlers ...gin.HandlerFunc) *DomainGroup {
	return dg.handle(http.MethodPatch, path, handlers)
}

func (dg *DomainGroup) handle(method, path string, handlers []gin.HandlerFunc) *DomainGroup {
	dg.routes = append(dg.routes, routeDefinition{
		method:   method,
		path:     path,
		handlers: handlers,
	})
	return dg
}

// Group creates a sub-group within this domain. Only the CORS settings are
// inherited; middleware must be added to the sub-group itself.
func (dg *DomainGroup) Group(name, prefix string) *DomainGroup {
	subgroup := NewDomainGroup(name, prefix)
	subgroup.cors = dg.cors
	dg.subgroups = append(dg.subgroups, subgroup)
	return subgroup
}

// RegisterRoutes implements RouteRegistrar interface
func (dg *DomainGroup) RegisterRoutes(rg *gin.RouterGroup) {
	group := rg.Group(dg.prefix)

	for _, route := range dg.routes {
		chain := make([]gin.HandlerFunc, 0, len(dg.middleware)+len(route.handlers)+1)
		chain = append(chain, middleware.AllowMethodWithConfig(route.method, dg.cors))
		chain = append(chain, dg.middleware...)
		chain = append(chain, route.handlers...)
		group.Any(route.path, chain...)
	}

	for _, subgroup := range dg.subgroups {
		subgroup.RegisterRoutes(group)
	}
}

// Name returns the group name
func (dg *DomainGroup) Name() string {
	return dg.name
}

// Prefix returns the group prefix
func (dg *DomainGroup) Prefix() string {
	return dg.prefix
}
