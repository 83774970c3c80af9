// Package render serializes a training plan to HTML, JSON, and a console
// summary, and writes the output artifacts.
package render

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html"
	"html/template"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/Evelyn-Tan-0417/AI-Fitness-Coach/internal/plan"
)

const documentTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<title>Your Running Plan</title>
<link rel="stylesheet" href="style.css">
</head>
<body>
<header class="plan-header">
  <h1>{{.Motivation}}</h1>
  <p class="plan-feedback">{{.Feedback}}</p>
  <p class="plan-supplements">{{.SupplementSuggestion}}</p>
</header>
<div class="week-grid">
{{- range $wi, $week := .Weeks}}
  <div class="week">
    <h2>Week {{weekNumber $wi}}</h2>
{{- range $week}}
    <div class="day">
      <div class="day-title">{{.Day}} - {{.Titles}}</div>
      <div class="details">{{.Details}}</div>
      <div class="meal_plan">
        <h4>Nutrition Plan</h4>
        <ul>
          <li><strong>Breakfast:</strong> {{.Breakfast.Suggestion}} - ({{.Breakfast.Calories}} kcal)</li>
          <li><strong>Lunch:</strong> {{.Lunch.Suggestion}} - ({{.Lunch.Calories}} kcal)</li>
          <li><strong>Dinner:</strong> {{.Dinner.Suggestion}} - ({{.Dinner.Calories}} kcal)</li>
        </ul>
      </div>
    </div>
{{- end}}
  </div>
{{- end}}
</div>
</body>
</html>
`

var planTemplate = template.Must(template.New("plan").Funcs(template.FuncMap{
	"weekNumber": func(i int) int { return i + 1 },
}).Parse(documentTemplate))

// HTML renders the plan as a full document. All interpolated text is
// HTML-escaped by the template engine. A rendering failure yields a minimal
// error page instead of an error.
func HTML(p *plan.Plan) string {
	var buf bytes.Buffer
	if err := planTemplate.Execute(&buf, p); err != nil {
		return fmt.Sprintf("<html><body><h1>Error generating HTML</h1><p>%s</p></body></html>",
			html.EscapeString(err.Error()))
	}
	return buf.String()
}

// JSON serializes the plan tree, pretty-printed, with field names matching
// the model response exactly.
func JSON(p *plan.Plan) ([]byte, error) {
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal plan: %w", err)
	}
	return data, nil
}

// WriteSummary prints a console summary of the plan: the header fields, then
// each week's days with their training and meals.
func WriteSummary(w io.Writer, p *plan.Plan) {
	fmt.Fprintf(w, "Motivation: %s\n\n", p.Motivation)
	fmt.Fprintf(w, "Feedback: %s\n\n", p.Feedback)
	fmt.Fprintf(w, "Supplements: %s\n\n", p.SupplementSuggestion)

	for wi, week := range p.Weeks {
		fmt.Fprintf(w, "--- Week %d ---\n", wi+1)
		for _, day := range week {
			fmt.Fprintf(w, "- %s: %s - %s\n", day.Day, day.Titles, day.Details)
			fmt.Fprintf(w, "  Breakfast: %s (%s)\n", day.Breakfast.Suggestion, day.Breakfast.Calories)
			fmt.Fprintf(w, "  Lunch: %s (%s)\n", day.Lunch.Suggestion, day.Lunch.Calories)
			fmt.Fprintf(w, "  Dinner: %s (%s)\n", day.Dinner.Suggestion, day.Dinner.Calories)
		}
		fmt.Fprintln(w)
	}
}

// Summary returns the console summary as a string.
func Summary(p *plan.Plan) string {
	var sb strings.Builder
	WriteSummary(&sb, p)
	return sb.String()
}

// WriteFiles writes the HTML, JSON, and CSS artifacts into dir using the
// given filenames.
func WriteFiles(p *plan.Plan, dir, htmlName, jsonName, cssName string) error {
	if err := os.WriteFile(filepath.Join(dir, htmlName), []byte(HTML(p)), 0644); err != nil {
		return fmt.Errorf("failed to write HTML file: %w", err)
	}

	data, err := JSON(p)
	if err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(dir, jsonName), data, 0644); err != nil {
		return fmt.Errorf("failed to write JSON file: %w", err)
	}

	if err := os.WriteFile(filepath.Join(dir, cssName), []byte(StyleCSS), 0644); err != nil {
		return fmt.Errorf("failed to write CSS file: %w", err)
	}
	return nil
}
