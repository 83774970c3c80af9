package coach

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/Evelyn-Tan-0417/AI-Fitness-Coach/internal/config"
	"github.com/Evelyn-Tan-0417/AI-Fitness-Coach/internal/plan"
)

// Generator produces a training plan from a request.
type Generator interface {
	GeneratePlan(ctx context.Context, req Request) (*plan.Plan, error)
}

// GeminiGenerator calls the Gemini API with structured output enabled.
type GeminiGenerator struct {
	client  *genai.Client
	model   string
	timeout time.Duration
}

// NewGeminiGenerator creates a Gemini-backed Generator.
func NewGeminiGenerator(ctx context.Context, cfg *config.Config) (*GeminiGenerator, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.GeminiAPIKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &GeminiGenerator{client: client, model: cfg.Model, timeout: cfg.ModelTimeout}, nil
}

// GeneratePlan sends the request to the model and decodes the structured
// response. The call carries an explicit timeout; expiry is reported as a
// retryable failure, not retried here.
func (g *GeminiGenerator) GeneratePlan(ctx context.Context, req Request) (*plan.Plan, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	model := g.client.GenerativeModel(g.model)
	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(req.SystemInstruction)},
	}
	model.ResponseMIMEType = "application/json"
	model.ResponseSchema = req.Schema

	parts := []genai.Part{genai.Text(req.UserQuery)}
	if req.Image != nil {
		raw, err := base64.StdEncoding.DecodeString(req.Image.Base64)
		if err != nil {
			return nil, fmt.Errorf("failed to decode image payload: %w", err)
		}
		parts = append(parts, genai.ImageData(req.Image.Format, raw))
	}

	resp, err := model.GenerateContent(ctx, parts...)
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return nil, fmt.Errorf("model call timed out after %s, try again: %w", g.timeout, err)
		}
		return nil, fmt.Errorf("failed to generate plan: %w", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("no content generated")
	}

	text, ok := resp.Candidates[0].Content.Parts[0].(genai.Text)
	if !ok {
		return nil, fmt.Errorf("generated content is not text")
	}

	return plan.Decode([]byte(text))
}

// Close closes the underlying Gemini client.
func (g *GeminiGenerator) Close() error {
	return g.client.Close()
}
