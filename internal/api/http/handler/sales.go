package handler

import (
	"context"
	"errors"
	"net/http"

	"cloud.google.com/go/civil"
	"github.com/gin-gonic/gin"

	"github.com/Om-mac/multiple-shop-analysis/internal/analytics"
	"github.com/Om-mac/multiple-shop-analysis/internal/api/http/view"
	"github.com/Om-mac/multiple-shop-analysis/internal/logger"
	"github.com/Om-mac/multiple-shop-analysis/internal/model"
)

const msgInvalidDate = "Invalid date format."

// SalesService records and analyses one user's sales.
type SalesService interface {
	Submit(ctx context.Context, params model.SubmitSaleParams) (model.Sale, error)
	ListSales(ctx context.Context, userID int64, filter analytics.TableFilter) ([]model.Sale, error)
	Analytics(ctx context.Context, userID int64, sel analytics.Selector) (analytics.Report, error)
	DailySummary(ctx context.Context, userID int64) (analytics.Daily, error)
}

// Sales serves every page and endpoint that needs a logged in user.
type Sales struct {
	service        SalesService
	contextManager model.ContextManager
	logger         *logger.Logger
}

func NewSales(service SalesService, contextManager model.ContextManager, logger *logger.Logger) *Sales {
	return &Sales{
		service:        service,
		contextManager: contextManager,
		logger:         logger,
	}
}

func (h *Sales) principal(c *gin.Context) (model.Principal, bool) {
	return h.contextManager.GetPrincipalFromContext(c.Request.Context())
}

func (h *Sales) pagePrincipal(c *gin.Context) (model.Principal, bool) {
	p, ok := h.principal(c)
	if !ok {
		view.AddFlash(c, view.FlashWarning, "Please login first!")
		c.Redirect(http.StatusFound, "/login")
		c.Abort()
	}
	return p, ok
}

func (h *Sales) Dashboard(c *gin.Context) {
	p, ok := h.pagePrincipal(c)
	if !ok {
		return
	}
	renderPage(c, http.StatusOK, "dashboard.html", "Dashboard", p.Username, nil)
}

func (h *Sales) ShowAddSale(c *gin.Context) {
	p, ok := h.pagePrincipal(c)
	if !ok {
		return
	}
	renderPage(c, http.StatusOK, "add_sale.html", "Add Sale", p.Username, nil)
}

func (h *Sales) AddSale(c *gin.Context) {
	p, ok := h.pagePrincipal(c)
	if !ok {
		return
	}

	var params model.SubmitSaleParams
	if err := c.ShouldBind(&params); err != nil {
		view.AddFlash(c, view.FlashDanger, "Invalid form submission.")
		renderPage(c, http.StatusBadRequest, "add_sale.html", "Add Sale", p.Username, nil)
		return
	}
	params.UserID = p.UserID

	_, err := h.service.Submit(c.Request.Context(), params)
	if err != nil {
		var vErr *model.ValidationError
		if errors.As(err, &vErr) {
			view.AddFlash(c, view.FlashDanger, vErr.Error())
			renderPage(c, http.StatusOK, "add_sale.html", "Add Sale", p.Username, nil)
			return
		}
		renderError(c, err, p.Username, h.logger)
		return
	}

	view.AddFlash(c, view.FlashSuccess, "Sale added successfully!")
	renderPage(c, http.StatusOK, "add_sale.html", "Add Sale", p.Username, nil)
}

// List shows the sales table. A malformed date is reported and ignored.
func (h *Sales) List(c *gin.Context) {
	p, ok := h.pagePrincipal(c)
	if !ok {
		return
	}

	var filter analytics.TableFilter
	if q, ok := analytics.ParseQuickFilter(c.Query("quick_filter")); ok {
		filter.Quick = q
	} else if raw := c.Query("date"); raw != "" {
		d, err := civil.ParseDate(raw)
		if err != nil {
			view.AddFlash(c, view.FlashWarning, msgInvalidDate)
		} else {
			filter.Day = d
		}
	}

	sales, err := h.service.ListSales(c.Request.Context(), p.UserID, filter)
	if err != nil {
		renderError(c, err, p.Username, h.logger)
		return
	}

	renderPage(c, http.StatusOK, "sales_table.html", "Sales", p.Username, view.SalesPage{
		Rows:        view.Rows(sales),
		QuickFilter: string(filter.Quick),
		Date:        c.Query("date"),
	})
}

// Analytics renders the aggregate page. Malformed bounds fall back to the whole history.
func (h *Sales) Analytics(c *gin.Context) {
	p, ok := h.pagePrincipal(c)
	if !ok {
		return
	}

	sel, valid := parseSelector(c)
	if !valid {
		view.AddFlash(c, view.FlashWarning, msgInvalidDate)
	}

	report, err := h.service.Analytics(c.Request.Context(), p.UserID, sel)
	if err != nil {
		renderError(c, err, p.Username, h.logger)
		return
	}

	renderPage(c, http.StatusOK, "analytics.html", "Analytics", p.Username, view.AnalyticsPage{
		Analytics:   view.Analytics(report),
		QuickFilter: string(sel.Quick),
		StartDate:   c.Query("start_date"),
		EndDate:     c.Query("end_date"),
	})
}

// APIAnalytics returns the same aggregation as the analytics page in JSON.
func (h *Sales) APIAnalytics(c *gin.Context) {
	p, ok := h.principal(c)
	if !ok {
		handleAPIError(c, model.ErrUnauthorized, h.logger)
		return
	}

	sel, valid := parseSelector(c)
	if !valid {
		handleAPIError(c, model.NewValidationError("", msgInvalidDate), h.logger)
		return
	}

	report, err := h.service.Analytics(c.Request.Context(), p.UserID, sel)
	if err != nil {
		handleAPIError(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, view.Analytics(report))
}

// Summary returns today's sales count, best seller, revenue and trend.
func (h *Sales) Summary(c *gin.Context) {
	p, ok := h.principal(c)
	if !ok {
		handleAPIError(c, model.ErrUnauthorized, h.logger)
		return
	}

	daily, err := h.service.DailySummary(c.Request.Context(), p.UserID)
	if err != nil {
		handleAPIError(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, view.Summary(daily))
}

// parseSelector reads quick_filter, start_date and end_date. It reports false
// when both bounds were given but either is not an ISO date.
func parseSelector(c *gin.Context) (analytics.Selector, bool) {
	var sel analytics.Selector
	if q, ok := analytics.ParseQuickFilter(c.Query("quick_filter")); ok {
		sel.Quick = q
		return sel, true
	}

	rawStart, rawEnd := c.Query("start_date"), c.Query("end_date")
	if rawStart == "" || rawEnd == "" {
		return sel, true
	}

	start, errStart := civil.ParseDate(rawStart)
	end, errEnd := civil.ParseDate(rawEnd)
	if errStart != nil || errEnd != nil {
		return sel, false
	}

	sel.Start, sel.End = start, end
	return sel, true
}
