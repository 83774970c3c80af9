package render

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"

	"github.com/Evelyn-Tan-0417/AI-Fitness-Coach/internal/plan"
)

func testMeal(name string) plan.Meal {
	return plan.Meal{Suggestion: name, Calories: "400"}
}

func testPlan() *plan.Plan {
	return &plan.Plan{
		Motivation:           "Every mile counts.",
		Feedback:             "Your pace is improving.",
		SupplementSuggestion: "Creatine and omega-3.",
		Weeks: []plan.Week{
			{
				{
					Day: "Monday", Titles: "Intervals", Details: "6x400m at 5k pace",
					Breakfast: testMeal("Oatmeal"), Lunch: testMeal("Wrap"), Dinner: testMeal("Pasta"),
				},
				{
					Day: "Tuesday", Titles: "Recovery", Details: "30 minutes easy",
					Breakfast: testMeal("Yogurt"), Lunch: testMeal("Soup"), Dinner: testMeal("Rice bowl"),
				},
			},
			{
				{
					Day: "Monday", Titles: "Tempo", Details: "20 minutes at threshold",
					Breakfast: testMeal("Eggs"), Lunch: testMeal("Salad"), Dinner: testMeal("Salmon"),
				},
			},
		},
	}
}

func TestHTML(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(HTML(testPlan())))
	if err != nil {
		t.Fatalf("Failed to parse rendered HTML: %v", err)
	}

	if got := doc.Find("header.plan-header h1").Text(); got != "Every mile counts." {
		t.Errorf("Expected motivation headline, got '%s'", got)
	}
	if got := doc.Find(".week").Length(); got != 2 {
		t.Errorf("Expected 2 week sections, got %d", got)
	}
	if got := doc.Find(".day").Length(); got != 3 {
		t.Errorf("Expected 3 day blocks, got %d", got)
	}
	if got := doc.Find(".week h2").First().Text(); got != "Week 1" {
		t.Errorf("Expected 'Week 1' heading, got '%s'", got)
	}
	if got := doc.Find(".meal_plan li").Length(); got != 9 {
		t.Errorf("Expected 9 meal entries, got %d", got)
	}
}

func TestHTMLEscapesInterpolatedText(t *testing.T) {
	p := testPlan()
	p.Weeks = p.Weeks[:1]
	p.Weeks[0] = p.Weeks[0][:1]
	p.Weeks[0][0].Details = `intervals <script>alert("x")</script> & strides`
	p.Motivation = "Fast & <strong>strong</strong>"

	out := HTML(p)
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(out))
	if err != nil {
		t.Fatalf("Failed to parse rendered HTML: %v", err)
	}

	// The markup-special characters must survive as text without altering
	// the document structure.
	if got := doc.Find(".details").Text(); got != p.Weeks[0][0].Details {
		t.Errorf("Expected details text to round-trip verbatim, got '%s'", got)
	}
	if doc.Find(".details script").Length() != 0 {
		t.Error("Interpolated text injected a script element")
	}
	if doc.Find("header strong").Length() != 0 {
		t.Error("Interpolated text injected markup into the header")
	}
	if got := doc.Find(".day").Length(); got != 1 {
		t.Errorf("Document structure changed: expected 1 day block, got %d", got)
	}
	if strings.Contains(out, `<script>alert`) {
		t.Error("Raw script tag leaked into the document")
	}
}

func TestJSONRoundTrip(t *testing.T) {
	p := testPlan()

	data, err := JSON(p)
	if err != nil {
		t.Fatalf("Failed to render JSON: %v", err)
	}

	for _, field := range []string{`"motivation"`, `"feedback"`, `"supplement_suggestion"`, `"plan"`, `"suggestion"`, `"calories"`} {
		if !strings.Contains(string(data), field) {
			t.Errorf("Expected JSON to contain %s", field)
		}
	}

	decoded, err := plan.Decode(data)
	if err != nil {
		t.Fatalf("Rendered JSON failed to decode: %v", err)
	}
	if decoded.Motivation != p.Motivation {
		t.Errorf("Expected motivation '%s', got '%s'", p.Motivation, decoded.Motivation)
	}
	if len(decoded.Weeks) != len(p.Weeks) {
		t.Fatalf("Expected %d weeks, got %d", len(p.Weeks), len(decoded.Weeks))
	}
	for wi := range p.Weeks {
		for di := range p.Weeks[wi] {
			if decoded.Weeks[wi][di] != p.Weeks[wi][di] {
				t.Errorf("Week %d day %d did not round-trip", wi+1, di+1)
			}
		}
	}
}

func TestSummary(t *testing.T) {
	out := Summary(testPlan())

	for _, line := range []string{
		"Motivation: Every mile counts.",
		"Feedback: Your pace is improving.",
		"Supplements: Creatine and omega-3.",
		"--- Week 1 ---",
		"--- Week 2 ---",
		"- Monday: Intervals - 6x400m at 5k pace",
		"  Breakfast: Oatmeal (400)",
	} {
		if !strings.Contains(out, line) {
			t.Errorf("Expected summary to contain %q", line)
		}
	}
}

func TestWriteFiles(t *testing.T) {
	dir := t.TempDir()

	if err := WriteFiles(testPlan(), dir, "plan.html", "plan.json", "plan.css"); err != nil {
		t.Fatalf("Failed to write files: %v", err)
	}

	for _, name := range []string{"plan.html", "plan.json", "plan.css"} {
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			t.Fatalf("Expected %s to be written: %v", name, err)
		}
		if len(data) == 0 {
			t.Errorf("Expected %s to be non-empty", name)
		}
	}
}
