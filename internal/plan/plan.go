// Package plan defines the structured training plan returned by the model
// and the validation shared by decoding, persistence, and rendering.
package plan

import (
	"encoding/json"
	"fmt"
)

// Meal is a single meal recommendation. Calories is free text because the
// model is not guaranteed to return a numeric value.
type Meal struct {
	Suggestion string `json:"suggestion"`
	Calories   string `json:"calories"`
}

// IsZero reports whether the meal carries no content at all.
func (m Meal) IsZero() bool {
	return m.Suggestion == "" && m.Calories == ""
}

// Day is one day's training description plus its three meals.
type Day struct {
	Day       string `json:"day"`
	Titles    string `json:"titles"`
	Details   string `json:"details"`
	Breakfast Meal   `json:"breakfast"`
	Lunch     Meal   `json:"lunch"`
	Dinner    Meal   `json:"dinner"`
}

// Week is an ordered group of days. Its position in Plan.Weeks determines
// the 1-based week number.
type Week = []Day

// Plan is the full structured training and nutrition plan for a user query.
type Plan struct {
	Motivation           string `json:"motivation"`
	Feedback             string `json:"feedback"`
	SupplementSuggestion string `json:"supplement_suggestion"`
	Weeks                []Week `json:"plan"`
}

// Validate checks the structural invariants: at least one week, at least one
// day per week, and three populated meals per day. It is invoked both after
// decoding a model response and again before persistence and rendering.
func (p *Plan) Validate() error {
	if p == nil {
		return fmt.Errorf("plan is nil")
	}
	if len(p.Weeks) == 0 {
		return fmt.Errorf("plan has no weeks")
	}
	for wi, week := range p.Weeks {
		if len(week) == 0 {
			return fmt.Errorf("week %d has no days", wi+1)
		}
		for di, day := range week {
			for _, meal := range []struct {
				name string
				meal Meal
			}{
				{"breakfast", day.Breakfast},
				{"lunch", day.Lunch},
				{"dinner", day.Dinner},
			} {
				if meal.meal.IsZero() {
					return fmt.Errorf("week %d day %d (%s) is missing %s", wi+1, di+1, day.Day, meal.name)
				}
			}
		}
	}
	return nil
}

// Wire mirrors of the plan types. Pointer fields let Decode distinguish a
// missing field from an empty one.
type wireMeal struct {
	Suggestion *string `json:"suggestion"`
	Calories   *string `json:"calories"`
}

type wireDay struct {
	Day       *string   `json:"day"`
	Titles    *string   `json:"titles"`
	Details   *string   `json:"details"`
	Breakfast *wireMeal `json:"breakfast"`
	Lunch     *wireMeal `json:"lunch"`
	Dinner    *wireMeal `json:"dinner"`
}

type wirePlan struct {
	Motivation           *string      `json:"motivation"`
	Feedback             *string      `json:"feedback"`
	SupplementSuggestion *string      `json:"supplement_suggestion"`
	Weeks                *[][]wireDay `json:"plan"`
}

// Decode parses a model response into a Plan. It fails on missing fields and
// wrong shapes instead of coercing them, then runs Validate on the result.
func Decode(data []byte) (*Plan, error) {
	var wp wirePlan
	if err := json.Unmarshal(data, &wp); err != nil {
		return nil, fmt.Errorf("failed to parse plan JSON: %w", err)
	}

	if wp.Motivation == nil {
		return nil, fmt.Errorf("plan response is missing 'motivation'")
	}
	if wp.Feedback == nil {
		return nil, fmt.Errorf("plan response is missing 'feedback'")
	}
	if wp.SupplementSuggestion == nil {
		return nil, fmt.Errorf("plan response is missing 'supplement_suggestion'")
	}
	if wp.Weeks == nil {
		return nil, fmt.Errorf("plan response is missing 'plan'")
	}

	p := &Plan{
		Motivation:           *wp.Motivation,
		Feedback:             *wp.Feedback,
		SupplementSuggestion: *wp.SupplementSuggestion,
		Weeks:                make([]Week, 0, len(*wp.Weeks)),
	}

	for wi, week := range *wp.Weeks {
		days := make([]Day, 0, len(week))
		for di, wd := range week {
			day, err := decodeDay(wd)
			if err != nil {
				return nil, fmt.Errorf("week %d day %d: %w", wi+1, di+1, err)
			}
			days = append(days, day)
		}
		p.Weeks = append(p.Weeks, days)
	}

	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

func decodeDay(wd wireDay) (Day, error) {
	if wd.Day == nil {
		return Day{}, fmt.Errorf("missing 'day'")
	}
	if wd.Titles == nil {
		return Day{}, fmt.Errorf("missing 'titles'")
	}
	if wd.Details == nil {
		return Day{}, fmt.Errorf("missing 'details'")
	}

	day := Day{Day: *wd.Day, Titles: *wd.Titles, Details: *wd.Details}
	for _, m := range []struct {
		name string
		wire *wireMeal
		dst  *Meal
	}{
		{"breakfast", wd.Breakfast, &day.Breakfast},
		{"lunch", wd.Lunch, &day.Lunch},
		{"dinner", wd.Dinner, &day.Dinner},
	} {
		if m.wire == nil {
			return Day{}, fmt.Errorf("missing '%s'", m.name)
		}
		if m.wire.Suggestion == nil || m.wire.Calories == nil {
			return Day{}, fmt.Errorf("'%s' is missing 'suggestion' or 'calories'", m.name)
		}
		*m.dst = Meal{Suggestion: *m.wire.Suggestion, Calories: *m.wire.Calories}
	}
	return day, nil
}
