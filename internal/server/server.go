// Package server exposes stored training plans over HTTP: JSON summaries
// and plans, the rendered HTML document, and deletion.
package server

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/Evelyn-Tan-0417/AI-Fitness-Coach/internal/planstore"
	"github.com/Evelyn-Tan-0417/AI-Fitness-Coach/internal/render"
)

// Server serves the read/delete API over the plan store.
type Server struct {
	store *planstore.Store
	addr  string
	log   zerolog.Logger
}

// New creates a Server for the given store.
func New(store *planstore.Store, addr string, logger zerolog.Logger) *Server {
	return &Server{store: store, addr: addr, log: logger}
}

func (s *Server) routes() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	})
	e.GET("/plans", s.handleList)
	e.GET("/plans/:id", s.handleGet)
	e.GET("/plans/:id/html", s.handleHTML)
	e.DELETE("/plans/:id", s.handleDelete)

	return e
}

// Start runs the HTTP server with production timeouts until it fails.
func (s *Server) Start() error {
	srv := &http.Server{
		Addr:         s.addr,
		Handler:      s.routes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}
	s.log.Info().Str("addr", s.addr).Msg("plan server listening")
	return srv.ListenAndServe()
}

func (s *Server) handleList(c echo.Context) error {
	summaries, err := s.store.List(c.Request().Context())
	if err != nil {
		s.log.Error().Err(err).Msg("failed to list plans")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to list plans"})
	}
	if summaries == nil {
		summaries = []planstore.Summary{}
	}
	return c.JSON(http.StatusOK, summaries)
}

func (s *Server) handleGet(c echo.Context) error {
	id, err := planID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid plan id"})
	}

	p, err := s.store.Load(c.Request().Context(), id)
	if errors.Is(err, planstore.ErrPlanNotFound) {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "plan not found"})
	}
	if err != nil {
		s.log.Error().Err(err).Int64("plan_id", id).Msg("failed to load plan")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load plan"})
	}
	return c.JSON(http.StatusOK, p)
}

func (s *Server) handleHTML(c echo.Context) error {
	id, err := planID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid plan id"})
	}

	p, err := s.store.Load(c.Request().Context(), id)
	if errors.Is(err, planstore.ErrPlanNotFound) {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "plan not found"})
	}
	if err != nil {
		s.log.Error().Err(err).Int64("plan_id", id).Msg("failed to load plan")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load plan"})
	}
	return c.HTML(http.StatusOK, render.HTML(p))
}

func (s *Server) handleDelete(c echo.Context) error {
	id, err := planID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid plan id"})
	}

	err = s.store.Delete(c.Request().Context(), id)
	if errors.Is(err, planstore.ErrPlanNotFound) {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "plan not found"})
	}
	if err != nil {
		s.log.Error().Err(err).Int64("plan_id", id).Msg("failed to delete plan")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to delete plan"})
	}
	return c.NoContent(http.StatusNoContent)
}

func planID(c echo.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}
