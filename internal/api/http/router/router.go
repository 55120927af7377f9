package router

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/Om-mac/multiple-shop-analysis/internal/api/http/handler"
	"github.com/Om-mac/multiple-shop-analysis/internal/api/http/middleware"
	"github.com/Om-mac/multiple-shop-analysis/internal/api/http/view"
	"github.com/Om-mac/multiple-shop-analysis/internal/logger"
	"github.com/Om-mac/multiple-shop-analysis/internal/model"
)

// MetricsExporter records request metrics and serves them for scraping.
type MetricsExporter interface {
	middleware.RequestObserver
	Handler() http.Handler
}

// Dependencies are the services the routes are backed by.
type Dependencies struct {
	AuthService    handler.AuthService
	Authenticator  middleware.Authenticator
	SalesService   handler.SalesService
	Pinger         handler.Pinger
	Metrics        MetricsExporter
	ContextManager model.ContextManager
}

// Router builds the gin engine serving the web pages and the JSON API.
type Router struct {
	deps        Dependencies
	cookie      handler.CookieConfig
	serviceName string
	logger      *logger.Logger
}

func New(deps Dependencies, cookie handler.CookieConfig, serviceName string, logger *logger.Logger) *Router {
	return &Router{
		deps:        deps,
		cookie:      cookie,
		serviceName: serviceName,
		logger:      logger,
	}
}

// Register wires middleware and routes into a new engine.
func (r *Router) Register() (*gin.Engine, error) {
	tmpl, err := view.LoadTemplates()
	if err != nil {
		return nil, fmt.Errorf("failed to load templates: %w", err)
	}

	logging := middleware.NewLogging(r.logger)

	e := gin.New()
	e.SetHTMLTemplate(tmpl)
	e.Use(
		otelgin.Middleware(r.serviceName),
		logging.Recovery(),
		logging.Handle,
		view.SecureCookies(r.cookie.Secure),
	)
	if r.deps.Metrics != nil {
		e.Use(middleware.NewMetrics(r.deps.Metrics).Handle)
		e.GET("/metrics", gin.WrapH(r.deps.Metrics.Handler()))
	}

	e.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/login")
	})
	e.GET("/healthz", handler.NewHealth(r.deps.Pinger, r.logger).Check)

	r.registerAuthRoutes(e)
	r.registerSalesRoutes(e)

	return e, nil
}

func (r *Router) registerAuthRoutes(e *gin.Engine) {
	auth := handler.NewAuth(r.deps.AuthService, r.cookie, r.logger)

	e.GET("/register", auth.ShowRegister)
	e.POST("/register", auth.Register)
	e.GET("/login", auth.ShowLogin)
	e.POST("/login", auth.Login)
	e.GET("/logout", auth.Logout)
}

func (r *Router) registerSalesRoutes(e *gin.Engine) {
	authenticate := middleware.NewAuthenticate(r.deps.Authenticator, r.deps.ContextManager, r.cookie.Name, r.logger)
	sales := handler.NewSales(r.deps.SalesService, r.deps.ContextManager, r.logger)

	pages := e.Group("/", authenticate.Page())
	pages.GET("/dashboard", sales.Dashboard)
	pages.GET("/add-sale", sales.ShowAddSale)
	pages.POST("/add-sale", sales.AddSale)
	pages.GET("/sales", sales.List)
	pages.GET("/analytics", sales.Analytics)

	api := e.Group("/api", authenticate.API())
	api.GET("/sales-summary", sales.Summary)
	api.GET("/analytics", sales.APIAnalytics)
}
