// Package coach builds model requests for training plan generation and
// holds the Gemini-backed generator.
package coach

import (
	"github.com/google/generative-ai-go/genai"

	"github.com/Evelyn-Tan-0417/AI-Fitness-Coach/internal/plan"
	"github.com/Evelyn-Tan-0417/AI-Fitness-Coach/internal/screenshot"
)

// SystemPrompt directs the model to produce a complete multi-week plan
// with exactly the number of weeks the user asked for.
const SystemPrompt = "You are an expert running coach. First, determine the total number of " +
	"training weeks required from the user's query. Then, generate a running plan with a " +
	"'motivation' message, a 'feedback' message based on the stats in the uploaded image, a " +
	"'supplement_suggestion' naming the supplements the athlete should take for best " +
	"performance, and a 'plan' list where each item represents one week's schedule. Match the " +
	"number of weeks exactly, no more and no fewer. For every day include a breakfast, lunch " +
	"and dinner suggestion with the name of the meal and its calories."

// InlineImage is an image attached to a request, base64 encoded.
type InlineImage struct {
	Base64 string
	Format string // "png", "jpeg", ...
}

// Request is the full payload for one plan generation call. Building it
// performs no I/O; the Generator owns the actual model invocation.
type Request struct {
	SystemInstruction string
	UserQuery         string
	Image             *InlineImage
	Schema            *genai.Schema
}

// BuildRequest assembles the request for a user query and an optional
// prepared screenshot.
func BuildRequest(query string, img *screenshot.Prepared) Request {
	req := Request{
		SystemInstruction: SystemPrompt,
		UserQuery:         query,
		Schema:            plan.Schema(),
	}
	if img != nil {
		req.Image = &InlineImage{
			Base64: img.Base64,
			Format: img.Info.Format,
		}
	}
	return req
}
