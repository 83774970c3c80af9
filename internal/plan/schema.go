package plan

import "github.com/google/generative-ai-go/genai"

// Schema returns the response schema sent to the model so structured output
// matches the Plan shape exactly. Every field is required; 'plan' is an
// array of weekly arrays of day objects.
func Schema() *genai.Schema {
	mealSchema := &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"suggestion": {
				Type:        genai.TypeString,
				Description: "Name of the suggested meal",
			},
			"calories": {
				Type:        genai.TypeString,
				Description: "Approximate calories for the meal",
			},
		},
		Required: []string{"suggestion", "calories"},
	}

	daySchema := &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"day": {
				Type:        genai.TypeString,
				Description: "Day label, e.g. a weekday name",
			},
			"titles": {
				Type:        genai.TypeString,
				Description: "Short title for the day's training",
			},
			"details": {
				Type:        genai.TypeString,
				Description: "Full description of the day's training",
			},
			"breakfast": mealSchema,
			"lunch":     mealSchema,
			"dinner":    mealSchema,
		},
		Required: []string{"day", "titles", "details", "breakfast", "lunch", "dinner"},
	}

	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"motivation": {
				Type:        genai.TypeString,
				Description: "Motivational message for the athlete",
			},
			"feedback": {
				Type:        genai.TypeString,
				Description: "Feedback derived from the uploaded fitness stats",
			},
			"supplement_suggestion": {
				Type:        genai.TypeString,
				Description: "Supplements recommended for best performance",
			},
			"plan": {
				Type:        genai.TypeArray,
				Description: "One entry per training week, each a list of daily plans",
				Items: &genai.Schema{
					Type:  genai.TypeArray,
					Items: daySchema,
				},
			},
		},
		Required: []string{"motivation", "feedback", "supplement_suggestion", "plan"},
	}
}
