// Package web serves the dashboard over HTTP.
package web

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/reparto-pfr/reparto-go/internal/config"
	"github.com/reparto-pfr/reparto-go/pkg/reparto"
	"github.com/reparto-pfr/reparto-go/pkg/reparto/present"
)

const pageTitle = "Página Principal - Integración Reparto PFR"

type modeOption struct {
	Value string
	Label string
}

var reportModes = []modeOption{
	{string(reparto.ReportDaily), reparto.ReportDaily.Label()},
	{string(reparto.ReportMonthly), reparto.ReportMonthly.Label()},
}

var eventModes = []modeOption{
	{string(reparto.EventsPreviousDay), reparto.EventsPreviousDay.Label()},
	{string(reparto.EventsMonthly), reparto.EventsMonthly.Label()},
}

// Server renders dashboard pages. Every request runs its own render pass.
type Server struct {
	cfg    *config.Config
	loader *reparto.Loader
}

// NewServer creates a Server reading datasets as configured.
func NewServer(cfg *config.Config) *Server {
	return &Server{
		cfg:    cfg,
		loader: reparto.NewLoader(cfg.Options()),
	}
}

// Router returns the gin engine with every route registered.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())
	r.SetHTMLTemplate(parseTemplates())

	r.GET("/healthz", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	r.GET("/", s.handleDashboard)
	r.GET("/chart/scatter.svg", s.handleScatter)

	api := r.Group("/api")
	api.GET("/dashboard", s.handleDashboardJSON)
	api.GET("/units", s.handleUnits)

	return r
}

// ── Handlers ──────────────────────────────────────────────────────────────────

func (s *Server) handleDashboard(c *gin.Context) {
	sel, err := selectionFromQuery(c)
	if err != nil {
		s.renderError(c, http.StatusBadRequest, err)
		return
	}

	d, err := reparto.Render(s.loader, sel)
	if err != nil {
		s.renderError(c, statusFor(err), err)
		return
	}

	c.Header("X-Render-Pass", d.PassID)
	c.HTML(http.StatusOK, "dashboard", gin.H{
		"Title":       pageTitle,
		"Dashboard":   d,
		"ReportModes": reportModes,
		"EventModes":  eventModes,
		"ChartWidth":  s.cfg.Chart.Width,
		"ChartHeight": s.cfg.Chart.Height,
	})
}

func (s *Server) handleDashboardJSON(c *gin.Context) {
	sel, err := selectionFromQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	d, err := reparto.Render(s.loader, sel)
	if err != nil {
		log.Printf("[web] render failed: %v", err)
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	c.Header("X-Render-Pass", d.PassID)
	c.JSON(http.StatusOK, d)
}

func (s *Server) handleUnits(c *gin.Context) {
	units, err := s.loader.UnitIDs()
	if err != nil {
		log.Printf("[web] units failed: %v", err)
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	options := []string{reparto.AllUnitsLabel}
	for _, u := range units {
		options = append(options, u.String())
	}
	c.JSON(http.StatusOK, gin.H{"units": options})
}

func (s *Server) handleScatter(c *gin.Context) {
	mode, err := reparto.ParseReportMode(c.Query("report"))
	if err != nil {
		c.String(http.StatusBadRequest, err.Error())
		return
	}

	table, err := s.loader.UnitReport(mode)
	if err != nil {
		log.Printf("[web] scatter failed: %v", err)
		c.String(statusFor(err), err.Error())
		return
	}

	view := present.FormatReport(table, "", nil)
	if len(view.Scatter.Points) == 0 {
		c.String(http.StatusNotFound, "no units with distance and fuel")
		return
	}

	svg, err := present.RenderScatterSVG(view.Scatter, s.cfg.Chart.Width, s.cfg.Chart.Height)
	if err != nil {
		log.Printf("[web] scatter render failed: %v", err)
		c.String(http.StatusInternalServerError, err.Error())
		return
	}
	c.Data(http.StatusOK, "image/svg+xml", svg)
}

func (s *Server) renderError(c *gin.Context, status int, err error) {
	log.Printf("[web] %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	c.HTML(status, "error", gin.H{
		"Title":   pageTitle,
		"Message": err.Error(),
	})
}

// selectionFromQuery reads unit, report, events and col parameters.
func selectionFromQuery(c *gin.Context) (reparto.Selection, error) {
	report, err := reparto.ParseReportMode(c.Query("report"))
	if err != nil {
		return reparto.Selection{}, err
	}
	events, err := reparto.ParseEventMode(c.Query("events"))
	if err != nil {
		return reparto.Selection{}, err
	}
	return reparto.Selection{
		Unit:         reparto.ParseUnit(c.Query("unit")),
		ReportMode:   report,
		EventMode:    events,
		ExtraColumns: c.QueryArray("col"),
	}, nil
}

// statusFor maps load errors to HTTP status codes.
func statusFor(err error) int {
	var loadErr *reparto.LoadError
	if errors.As(err, &loadErr) {
		return http.StatusInternalServerError
	}
	return http.StatusBadRequest
}

// Serve runs handler on addr until ctx is canceled, then shuts down.
func Serve(ctx context.Context, addr string, handler http.Handler) error {
	server := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("[web] listening on %s", addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Println("[web] shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
