// Package app wires the generation pipeline together: screenshot prep,
// model call, validation, then persistence and artifact rendering.
package app

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/Evelyn-Tan-0417/AI-Fitness-Coach/internal/coach"
	"github.com/Evelyn-Tan-0417/AI-Fitness-Coach/internal/config"
	"github.com/Evelyn-Tan-0417/AI-Fitness-Coach/internal/plan"
	"github.com/Evelyn-Tan-0417/AI-Fitness-Coach/internal/planstore"
	"github.com/Evelyn-Tan-0417/AI-Fitness-Coach/internal/render"
	"github.com/Evelyn-Tan-0417/AI-Fitness-Coach/internal/screenshot"
)

// App holds the application's dependencies.
type App struct {
	cfg   *config.Config
	gen   coach.Generator
	store *planstore.Store
	log   zerolog.Logger
}

// New creates and initializes a new App instance.
func New(cfg *config.Config, gen coach.Generator, store *planstore.Store, logger zerolog.Logger) *App {
	return &App{cfg: cfg, gen: gen, store: store, log: logger}
}

// GenerateResult reports the outcome of one generation run. Persistence and
// rendering are independent best-effort steps: either can fail without
// discarding the other's work, so their errors ride alongside the plan.
type GenerateResult struct {
	Plan      *plan.Plan
	PlanID    int64
	UsedImage bool
	SaveErr   error
	RenderErr error
}

// GeneratePlan runs the full pipeline for a validated goal query. A missing
// or corrupt screenshot degrades to a text-only request; a model failure or
// a structurally invalid response aborts before persistence and rendering.
func (a *App) GeneratePlan(ctx context.Context, query string) (*GenerateResult, error) {
	var img *screenshot.Prepared
	if a.cfg.ImagePath != "" {
		prepared, err := screenshot.Prepare(a.cfg.ImagePath)
		if err != nil {
			a.log.Warn().Err(err).Str("path", a.cfg.ImagePath).
				Msg("proceeding without image, results may be less personalized")
		} else {
			img = prepared
			a.log.Info().Str("path", a.cfg.ImagePath).
				Str("format", img.Info.Format).
				Str("size", screenshot.FormatFileSize(img.Info.FileSize)).
				Msg("screenshot loaded")
		}
	}

	req := coach.BuildRequest(query, img)
	p, err := a.gen.GeneratePlan(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("plan generation failed: %w", err)
	}

	// Second validation gate, independent of response decoding.
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("model returned a malformed plan: %w", err)
	}

	result := &GenerateResult{Plan: p, UsedImage: img != nil}

	if id, err := a.store.Save(ctx, p); err != nil {
		result.SaveErr = err
		a.log.Error().Err(err).Msg("failed to save plan to database")
	} else {
		result.PlanID = id
		a.log.Info().Int64("plan_id", id).Msg("plan saved")
	}

	if err := render.WriteFiles(p, a.cfg.OutputDir, a.cfg.HTMLFile, a.cfg.JSONFile, a.cfg.CSSFile); err != nil {
		result.RenderErr = err
		a.log.Error().Err(err).Msg("failed to write output files")
	} else {
		a.log.Info().Str("dir", a.cfg.OutputDir).Msg("output files written")
	}

	return result, nil
}

// ListPlans returns summaries of all stored plans, newest first.
func (a *App) ListPlans(ctx context.Context) ([]planstore.Summary, error) {
	return a.store.List(ctx)
}

// ShowPlan loads a stored plan by id.
func (a *App) ShowPlan(ctx context.Context, id int64) (*plan.Plan, error) {
	return a.store.Load(ctx, id)
}

// DeletePlan removes a stored plan and all its days and meals.
func (a *App) DeletePlan(ctx context.Context, id int64) error {
	return a.store.Delete(ctx, id)
}
