// Package planstore persists training plans to the relational schema:
// one running_plan row per plan, one daily_plan row per day tagged with its
// 1-based week number and position within the week, three daily_meal rows
// per day.
package planstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Evelyn-Tan-0417/AI-Fitness-Coach/internal/plan"
)

// ErrPlanNotFound is returned when no running_plan row matches the id.
var ErrPlanNotFound = errors.New("plan not found")

const motivationSummaryLen = 50

// Summary is a compact listing entry for a stored plan.
type Summary struct {
	ID         int64     `json:"id"`
	Motivation string    `json:"motivation"`
	CreatedAt  time.Time `json:"created_at"`
}

// Store is a database-backed repository for training plans.
type Store struct {
	db *sql.DB
}

// New creates a Store over an open database connection.
func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// Save inserts the whole plan tree in a single transaction and returns the
// generated plan id. A failed insert rolls everything back so partial
// writes never persist.
func (s *Store) Save(ctx context.Context, p *plan.Plan) (int64, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		`INSERT INTO running_plan (motivation, feedback, supplement_suggestion, created_at) VALUES (?, ?, ?, ?)`,
		p.Motivation, p.Feedback, p.SupplementSuggestion, time.Now().UTC(),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert running plan: %w", err)
	}
	planID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read plan id: %w", err)
	}

	for weekIdx, week := range p.Weeks {
		for dayIdx, day := range week {
			dayRes, err := tx.ExecContext(ctx,
				`INSERT INTO daily_plan (running_plan_id, day, titles, details, week_number, day_index) VALUES (?, ?, ?, ?, ?, ?)`,
				planID, day.Day, day.Titles, day.Details, weekIdx+1, dayIdx,
			)
			if err != nil {
				return 0, fmt.Errorf("failed to insert day %q of week %d: %w", day.Day, weekIdx+1, err)
			}
			dayID, err := dayRes.LastInsertId()
			if err != nil {
				return 0, fmt.Errorf("failed to read day id: %w", err)
			}

			for _, m := range []struct {
				mealType string
				meal     plan.Meal
			}{
				{"breakfast", day.Breakfast},
				{"lunch", day.Lunch},
				{"dinner", day.Dinner},
			} {
				if _, err := tx.ExecContext(ctx,
					`INSERT INTO daily_meal (daily_plan_id, meal_type, suggestion, calories) VALUES (?, ?, ?, ?)`,
					dayID, m.mealType, m.meal.Suggestion, m.meal.Calories,
				); err != nil {
					return 0, fmt.Errorf("failed to insert %s for day %q: %w", m.mealType, day.Day, err)
				}
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit plan: %w", err)
	}
	return planID, nil
}

// Load rebuilds the plan tree for the given id. Days are returned in their
// original authoring order via the day_index column.
func (s *Store) Load(ctx context.Context, planID int64) (*plan.Plan, error) {
	p := &plan.Plan{}
	err := s.db.QueryRowContext(ctx,
		`SELECT motivation, feedback, supplement_suggestion FROM running_plan WHERE id = ?`,
		planID,
	).Scan(&p.Motivation, &p.Feedback, &p.SupplementSuggestion)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: id %d", ErrPlanNotFound, planID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load plan %d: %w", planID, err)
	}

	rows, err := s.db.QueryContext(ctx, `
        SELECT dp.day, dp.titles, dp.details, dp.week_number,
               dm1.suggestion, dm1.calories,
               dm2.suggestion, dm2.calories,
               dm3.suggestion, dm3.calories
        FROM daily_plan dp
        LEFT JOIN daily_meal dm1 ON dp.id = dm1.daily_plan_id AND dm1.meal_type = 'breakfast'
        LEFT JOIN daily_meal dm2 ON dp.id = dm2.daily_plan_id AND dm2.meal_type = 'lunch'
        LEFT JOIN daily_meal dm3 ON dp.id = dm3.daily_plan_id AND dm3.meal_type = 'dinner'
        WHERE dp.running_plan_id = ?
        ORDER BY dp.week_number, dp.day_index`,
		planID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load days for plan %d: %w", planID, err)
	}
	defer rows.Close()

	var (
		weeks       []plan.Week
		currentWeek plan.Week
		lastWeekNum int
	)
	for rows.Next() {
		var day plan.Day
		var weekNum int
		var bSuggestion, bCalories, lSuggestion, lCalories, dSuggestion, dCalories sql.NullString
		if err := rows.Scan(
			&day.Day, &day.Titles, &day.Details, &weekNum,
			&bSuggestion, &bCalories,
			&lSuggestion, &lCalories,
			&dSuggestion, &dCalories,
		); err != nil {
			return nil, fmt.Errorf("failed to scan day row: %w", err)
		}
		day.Breakfast = plan.Meal{Suggestion: bSuggestion.String, Calories: bCalories.String}
		day.Lunch = plan.Meal{Suggestion: lSuggestion.String, Calories: lCalories.String}
		day.Dinner = plan.Meal{Suggestion: dSuggestion.String, Calories: dCalories.String}

		if weekNum != lastWeekNum {
			if currentWeek != nil {
				weeks = append(weeks, currentWeek)
			}
			currentWeek = nil
			lastWeekNum = weekNum
		}
		currentWeek = append(currentWeek, day)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read day rows: %w", err)
	}
	if currentWeek != nil {
		weeks = append(weeks, currentWeek)
	}

	p.Weeks = weeks
	return p, nil
}

// List returns summaries of all stored plans, newest first. Long motivation
// text is truncated to its first 50 characters plus an ellipsis.
func (s *Store) List(ctx context.Context) ([]Summary, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, motivation, created_at FROM running_plan ORDER BY created_at DESC, id DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list plans: %w", err)
	}
	defer rows.Close()

	var summaries []Summary
	for rows.Next() {
		var sm Summary
		if err := rows.Scan(&sm.ID, &sm.Motivation, &sm.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan plan summary: %w", err)
		}
		if len(sm.Motivation) > motivationSummaryLen {
			sm.Motivation = sm.Motivation[:motivationSummaryLen] + "..."
		}
		summaries = append(summaries, sm)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read plan summaries: %w", err)
	}
	return summaries, nil
}

// Delete removes a plan and all its days and meals, child rows first to
// satisfy the foreign key constraints.
func (s *Store) Delete(ctx context.Context, planID int64) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	var exists int
	err = tx.QueryRowContext(ctx, `SELECT 1 FROM running_plan WHERE id = ?`, planID).Scan(&exists)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: id %d", ErrPlanNotFound, planID)
	}
	if err != nil {
		return fmt.Errorf("failed to check plan %d: %w", planID, err)
	}

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM daily_meal WHERE daily_plan_id IN (SELECT id FROM daily_plan WHERE running_plan_id = ?)`,
		planID,
	); err != nil {
		return fmt.Errorf("failed to delete meals for plan %d: %w", planID, err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM daily_plan WHERE running_plan_id = ?`, planID); err != nil {
		return fmt.Errorf("failed to delete days for plan %d: %w", planID, err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM running_plan WHERE id = ?`, planID); err != nil {
		return fmt.Errorf("failed to delete plan %d: %w", planID, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit delete of plan %d: %w", planID, err)
	}
	return nil
}
