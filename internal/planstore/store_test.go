package planstore

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Evelyn-Tan-0417/AI-Fitness-Coach/internal/database"
	"github.com/Evelyn-Tan-0417/AI-Fitness-Coach/internal/plan"
)

func newTestStore(t *testing.T) (*Store, *database.DB) {
	t.Helper()
	db, err := database.New(filepath.Join(t.TempDir(), "test.sqlite"))
	if err != nil {
		t.Fatalf("Failed to initialize test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return New(db.SQL), db
}

func testMeal(name string) plan.Meal {
	return plan.Meal{Suggestion: name, Calories: "500"}
}

func testDay(label, title string) plan.Day {
	return plan.Day{
		Day:       label,
		Titles:    title,
		Details:   "Details for " + title,
		Breakfast: testMeal("Oatmeal"),
		Lunch:     testMeal("Salad"),
		Dinner:    testMeal("Pasta"),
	}
}

func testPlan(weeks, daysPerWeek int) *plan.Plan {
	labels := []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}
	p := &plan.Plan{
		Motivation:           "Keep showing up.",
		Feedback:             "Strong aerobic base.",
		SupplementSuggestion: "Electrolytes.",
	}
	for w := 0; w < weeks; w++ {
		var week plan.Week
		for d := 0; d < daysPerWeek; d++ {
			week = append(week, testDay(labels[d%len(labels)], fmt.Sprintf("W%dD%d", w+1, d+1)))
		}
		p.Weeks = append(p.Weeks, week)
	}
	return p
}

func TestSaveLoadRoundTrip(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	// Day labels deliberately not in lexical order: the day_index column
	// must preserve authoring order on reload.
	p := &plan.Plan{
		Motivation:           "Trust the process.",
		Feedback:             "VO2 max trending up.",
		SupplementSuggestion: "Iron and vitamin D.",
		Weeks: []plan.Week{
			{
				testDay("Wednesday", "Tempo"),
				testDay("Monday", "Recovery"),
				testDay("Friday", "Long run"),
			},
		},
	}

	id, err := store.Save(ctx, p)
	if err != nil {
		t.Fatalf("Failed to save plan: %v", err)
	}
	if id <= 0 {
		t.Fatalf("Expected a positive plan id, got %d", id)
	}

	loaded, err := store.Load(ctx, id)
	if err != nil {
		t.Fatalf("Failed to load plan: %v", err)
	}

	if loaded.Motivation != p.Motivation {
		t.Errorf("Expected motivation '%s', got '%s'", p.Motivation, loaded.Motivation)
	}
	if loaded.Feedback != p.Feedback {
		t.Errorf("Expected feedback '%s', got '%s'", p.Feedback, loaded.Feedback)
	}
	if loaded.SupplementSuggestion != p.SupplementSuggestion {
		t.Errorf("Expected supplements '%s', got '%s'", p.SupplementSuggestion, loaded.SupplementSuggestion)
	}

	if len(loaded.Weeks) != 1 {
		t.Fatalf("Expected 1 week, got %d", len(loaded.Weeks))
	}
	wantOrder := []string{"Wednesday", "Monday", "Friday"}
	for i, day := range loaded.Weeks[0] {
		if day.Day != wantOrder[i] {
			t.Errorf("Day %d: expected '%s', got '%s'", i, wantOrder[i], day.Day)
		}
	}
	if loaded.Weeks[0][0].Lunch != testMeal("Salad") {
		t.Errorf("Expected lunch to round-trip, got %+v", loaded.Weeks[0][0].Lunch)
	}
}

func TestEightWeekScenario(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	p := testPlan(8, 7)
	if err := p.Validate(); err != nil {
		t.Fatalf("Expected the 8-week plan to validate: %v", err)
	}

	id, err := store.Save(ctx, p)
	if err != nil {
		t.Fatalf("Failed to save plan: %v", err)
	}

	loaded, err := store.Load(ctx, id)
	if err != nil {
		t.Fatalf("Failed to load plan: %v", err)
	}

	if len(loaded.Weeks) != 8 {
		t.Fatalf("Expected 8 weeks, got %d", len(loaded.Weeks))
	}
	for wi, week := range loaded.Weeks {
		if len(week) != 7 {
			t.Fatalf("Week %d: expected 7 days, got %d", wi+1, len(week))
		}
		for di, day := range week {
			want := p.Weeks[wi][di]
			if day != want {
				t.Errorf("Week %d day %d: expected %+v, got %+v", wi+1, di+1, want, day)
			}
		}
	}
	if err := loaded.Validate(); err != nil {
		t.Errorf("Expected the loaded plan to validate: %v", err)
	}
}

func TestLoadNotFound(t *testing.T) {
	store, _ := newTestStore(t)

	_, err := store.Load(context.Background(), 9999)
	if !errors.Is(err, ErrPlanNotFound) {
		t.Errorf("Expected ErrPlanNotFound, got %v", err)
	}
}

func TestList(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	longMotivation := strings.Repeat("Run far, run free. ", 4) // 76 chars
	first := testPlan(1, 2)
	second := testPlan(2, 3)
	second.Motivation = longMotivation

	firstID, err := store.Save(ctx, first)
	if err != nil {
		t.Fatalf("Failed to save first plan: %v", err)
	}
	secondID, err := store.Save(ctx, second)
	if err != nil {
		t.Fatalf("Failed to save second plan: %v", err)
	}

	summaries, err := store.List(ctx)
	if err != nil {
		t.Fatalf("Failed to list plans: %v", err)
	}
	if len(summaries) != 2 {
		t.Fatalf("Expected 2 summaries, got %d", len(summaries))
	}

	// Newest first.
	if summaries[0].ID != secondID || summaries[1].ID != firstID {
		t.Errorf("Expected order [%d %d], got [%d %d]", secondID, firstID, summaries[0].ID, summaries[1].ID)
	}

	want := longMotivation[:50] + "..."
	if summaries[0].Motivation != want {
		t.Errorf("Expected truncated motivation '%s', got '%s'", want, summaries[0].Motivation)
	}
	if summaries[1].Motivation != first.Motivation {
		t.Errorf("Expected short motivation untouched, got '%s'", summaries[1].Motivation)
	}
	if summaries[0].CreatedAt.IsZero() {
		t.Error("Expected a creation timestamp")
	}
}

func TestDelete(t *testing.T) {
	store, db := newTestStore(t)
	ctx := context.Background()

	id, err := store.Save(ctx, testPlan(2, 3))
	if err != nil {
		t.Fatalf("Failed to save plan: %v", err)
	}

	if err := store.Delete(ctx, id); err != nil {
		t.Fatalf("Failed to delete plan: %v", err)
	}

	// All child rows referencing the plan must be gone.
	for _, q := range []string{
		`SELECT COUNT(*) FROM running_plan WHERE id = ?`,
		`SELECT COUNT(*) FROM daily_plan WHERE running_plan_id = ?`,
		`SELECT COUNT(*) FROM daily_meal WHERE daily_plan_id IN (SELECT id FROM daily_plan WHERE running_plan_id = ?)`,
	} {
		var count int
		if err := db.SQL.QueryRow(q, id).Scan(&count); err != nil {
			t.Fatalf("Failed to count rows: %v", err)
		}
		if count != 0 {
			t.Errorf("Expected 0 rows for %q, got %d", q, count)
		}
	}

	if _, err := store.Load(ctx, id); !errors.Is(err, ErrPlanNotFound) {
		t.Errorf("Expected ErrPlanNotFound after delete, got %v", err)
	}
}

func TestDeleteNotFound(t *testing.T) {
	store, _ := newTestStore(t)

	err := store.Delete(context.Background(), 12345)
	if !errors.Is(err, ErrPlanNotFound) {
		t.Errorf("Expected ErrPlanNotFound, got %v", err)
	}
}
