package coach

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

const (
	minGoalLength = 5
	maxGoalLength = 500

	minWeeks = 1
	maxWeeks = 52
)

// ValidateGoal checks a user's fitness goal before any network call.
// Failures are recoverable: callers re-prompt instead of aborting.
func ValidateGoal(query string) error {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return fmt.Errorf("please enter a running goal")
	}
	if len(trimmed) < minGoalLength {
		return fmt.Errorf("please provide a more detailed running goal")
	}
	if len(query) > maxGoalLength {
		return fmt.Errorf("please keep your goal under %d characters", maxGoalLength)
	}
	return nil
}

var weekPatterns = []*regexp.Regexp{
	regexp.MustCompile(`in\s*(\d+)\s*weeks?`),
	regexp.MustCompile(`(\d+)-week`),
	regexp.MustCompile(`(\d+)\s*weeks?`),
}

// WeeksFromQuery tries to extract the requested number of training weeks
// from a goal like "run a 10k in 8 weeks". It is used for console feedback
// only; the model remains the authority on the week count.
func WeeksFromQuery(query string) (int, bool) {
	lower := strings.ToLower(query)
	for _, pattern := range weekPatterns {
		match := pattern.FindStringSubmatch(lower)
		if match == nil {
			continue
		}
		weeks, err := strconv.Atoi(match[1])
		if err != nil || weeks < minWeeks || weeks > maxWeeks {
			continue
		}
		return weeks, true
	}
	return 0, false
}
