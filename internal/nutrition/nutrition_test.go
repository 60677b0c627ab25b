package nutrition

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Thecodingpm/calories-counterr/internal/domain"
)

var testFoods = []domain.Food{
	{ID: "1", Name: "Apple", Calories: 52, Protein: 0.3, Carbs: 14, Fat: 0.2},
	{ID: "3", Name: "Chicken Breast (Cooked)", Calories: 165, Protein: 31, Carbs: 0, Fat: 3.6},
}

func TestBuildLookup(t *testing.T) {
	lookup := BuildLookup(testFoods)
	require.Len(t, lookup, 2)
	assert.Equal(t, "Apple", lookup["1"].Name)
	assert.Equal(t, "Chicken Breast (Cooked)", lookup["3"].Name)
}

func TestDailyTotals(t *testing.T) {
	lookup := BuildLookup(testFoods)
	entries := []domain.FoodEntry{
		{ID: "e1", FoodID: "1", Date: "2025-06-01", Grams: 150},
		{ID: "e2", FoodID: "3", Date: "2025-06-01", Grams: 200},
	}

	totals := DailyTotals(entries, lookup)
	// 52*1.5 + 165*2.0 = 78 + 330
	assert.InDelta(t, 408, totals.Calories, 1e-9)
	assert.InDelta(t, 0.3*1.5+31*2, totals.Protein, 1e-9)
	assert.InDelta(t, 14*1.5, totals.Carbs, 1e-9)
	assert.InDelta(t, 0.2*1.5+3.6*2, totals.Fat, 1e-9)
}

func TestDailyTotalsOrderInvariant(t *testing.T) {
	lookup := BuildLookup(testFoods)
	entries := []domain.FoodEntry{
		{ID: "e1", FoodID: "1", Date: "2025-06-01", Grams: 150},
		{ID: "e2", FoodID: "3", Date: "2025-06-01", Grams: 200},
		{ID: "e3", FoodID: "1", Date: "2025-06-01", Grams: 80},
	}
	reversed := []domain.FoodEntry{entries[2], entries[1], entries[0]}

	assert.Equal(t, DailyTotals(entries, lookup), DailyTotals(reversed, lookup))
}

func TestDailyTotalsSkipsDanglingReferences(t *testing.T) {
	lookup := BuildLookup(testFoods)
	entries := []domain.FoodEntry{
		{ID: "e1", FoodID: "1", Date: "2025-06-01", Grams: 100},
		{ID: "e2", FoodID: "deleted-food", Date: "2025-06-01", Grams: 500},
	}

	totals := DailyTotals(entries, lookup)
	assert.InDelta(t, 52, totals.Calories, 1e-9)
}

func TestDailyTotalsEmpty(t *testing.T) {
	totals := DailyTotals(nil, BuildLookup(testFoods))
	assert.Zero(t, totals)
}

func TestCaloriesByDate(t *testing.T) {
	lookup := BuildLookup(testFoods)
	entries := []domain.FoodEntry{
		{ID: "e1", FoodID: "1", Date: "2025-06-01", Grams: 100},
		{ID: "e2", FoodID: "3", Date: "2025-06-03", Grams: 100},
		{ID: "e3", FoodID: "1", Date: "2025-06-03", Grams: 100},
	}

	byDate := CaloriesByDate(entries, lookup)
	require.Len(t, byDate, 2)
	assert.InDelta(t, 52, byDate["2025-06-01"], 1e-9)
	assert.InDelta(t, 217, byDate["2025-06-03"], 1e-9)

	// Day 2 has no entries: absent, not zero.
	_, present := byDate["2025-06-02"]
	assert.False(t, present)
}

func TestClassifyProgress(t *testing.T) {
	tests := []struct {
		name      string
		current   float64
		goal      float64
		status    ProgressStatus
		remaining float64
	}{
		{"nothing consumed", 0, 2000, StatusNormal, 2000},
		{"near goal", 1800, 2000, StatusNear, 200},
		{"over goal", 2100, 2000, StatusOver, 0},
		{"exactly at goal", 2000, 2000, StatusNear, 0},
		{"zero goal", 500, 0, StatusNormal, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := ClassifyProgress(tt.current, tt.goal)
			assert.Equal(t, tt.status, p.Status)
			assert.InDelta(t, tt.remaining, p.Remaining, 1e-9)
		})
	}
}

func TestClassifyProgressPercentage(t *testing.T) {
	assert.InDelta(t, 0.5, ClassifyProgress(1000, 2000).Percentage, 1e-9)
	assert.Zero(t, ClassifyProgress(1000, 0).Percentage)
}
