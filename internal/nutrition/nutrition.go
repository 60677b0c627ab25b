// Package nutrition contains the pure derived computations over fetched food
// and entry lists. Nothing here performs I/O.
package nutrition

import "github.com/Thecodingpm/calories-counterr/internal/domain"

// MacroTotals accumulates absolute nutrient amounts for a set of entries.
type MacroTotals struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

// ProgressStatus classifies consumption against the daily goal.
type ProgressStatus string

const (
	StatusNormal ProgressStatus = "normal"
	StatusNear   ProgressStatus = "near_goal"
	StatusOver   ProgressStatus = "over_goal"
)

// Progress describes where the day stands against the calorie goal.
type Progress struct {
	Percentage float64        `json:"percentage"`
	Status     ProgressStatus `json:"status"`
	Remaining  float64        `json:"remaining"`
}

// BuildLookup maps food IDs to foods for O(1) resolution. Later duplicates
// win, which cannot happen with well-formed catalogs since IDs are unique.
func BuildLookup(foods []domain.Food) map[string]domain.Food {
	lookup := make(map[string]domain.Food, len(foods))
	for _, f := range foods {
		lookup[f.ID] = f
	}
	return lookup
}

// DailyTotals sums calories and macros over the entries whose foodId
// resolves. Nutrients are per-100g rates, so each entry contributes
// rate/100*grams. Entries with dangling food references are skipped.
func DailyTotals(entries []domain.FoodEntry, lookup map[string]domain.Food) MacroTotals {
	var totals MacroTotals
	for _, e := range entries {
		food, ok := lookup[e.FoodID]
		if !ok {
			continue
		}
		factor := e.Grams / 100
		totals.Calories += food.Calories * factor
		totals.Protein += food.Protein * factor
		totals.Carbs += food.Carbs * factor
		totals.Fat += food.Fat * factor
	}
	return totals
}

// CaloriesByDate groups entries by their date string and sums calories per
// day. Days without entries are absent from the result; callers fill zeros
// for display.
func CaloriesByDate(entries []domain.FoodEntry, lookup map[string]domain.Food) map[string]float64 {
	byDate := make(map[string]float64)
	for _, e := range entries {
		food, ok := lookup[e.FoodID]
		if !ok {
			continue
		}
		byDate[e.Date] += food.Calories / 100 * e.Grams
	}
	return byDate
}

// ClassifyProgress computes the consumed fraction of the goal and the
// remaining allowance. A non-positive goal reads as 0% progress.
func ClassifyProgress(current, goal float64) Progress {
	var pct float64
	if goal > 0 {
		pct = current / goal
	}

	status := StatusNormal
	switch {
	case pct > 1:
		status = StatusOver
	case pct > 0.85:
		status = StatusNear
	}

	remaining := goal - current
	if remaining < 0 {
		remaining = 0
	}

	return Progress{Percentage: pct, Status: status, Remaining: remaining}
}
