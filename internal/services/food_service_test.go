package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Thecodingpm/calories-counterr/internal/catalog"
	"github.com/Thecodingpm/calories-counterr/internal/domain"
	"github.com/Thecodingpm/calories-counterr/internal/storage"
)

func TestGetFoodsBuiltinsFirst(t *testing.T) {
	ctx := context.Background()
	svc := NewFoodService(storage.NewMemoryStore())

	foods, err := svc.GetFoods(ctx)
	require.NoError(t, err)
	assert.Equal(t, catalog.Builtin(), foods)
}

func TestAddCustomFoodRoundTrip(t *testing.T) {
	ctx := context.Background()
	svc := NewFoodService(storage.NewMemoryStore())

	input := domain.Food{Name: "Protein Bar", Calories: 380, Protein: 30, Carbs: 40, Fat: 12}
	added, err := svc.AddCustomFood(ctx, input)
	require.NoError(t, err)
	assert.NotEmpty(t, added.ID)
	assert.True(t, added.IsCustom)

	foods, err := svc.GetFoods(ctx)
	require.NoError(t, err)

	last := foods[len(foods)-1]
	assert.Equal(t, added.ID, last.ID)
	assert.True(t, last.IsCustom)
	// Equal to the input apart from the assigned ID and the custom flag.
	expected := input
	expected.ID = added.ID
	expected.IsCustom = true
	assert.Equal(t, expected, last)
}

func TestAddCustomFoodIgnoresCallerID(t *testing.T) {
	ctx := context.Background()
	svc := NewFoodService(storage.NewMemoryStore())

	added, err := svc.AddCustomFood(ctx, domain.Food{ID: "1", Name: "Sneaky"})
	require.NoError(t, err)
	assert.NotEqual(t, "1", added.ID)
}

func TestSearchFoods(t *testing.T) {
	ctx := context.Background()
	svc := NewFoodService(storage.NewMemoryStore())

	matches, err := svc.SearchFoods(ctx, "chicken")
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, "Chicken Breast (Cooked)", matches[0].Name)

	all, err := svc.SearchFoods(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, len(catalog.Builtin()))

	none, err := svc.SearchFoods(ctx, "zzzz")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestSearchFoodsIncludesCustom(t *testing.T) {
	ctx := context.Background()
	svc := NewFoodService(storage.NewMemoryStore())

	_, err := svc.AddCustomFood(ctx, domain.Food{Name: "Grandma's Lasagna", Calories: 180})
	require.NoError(t, err)

	matches, err := svc.SearchFoods(ctx, "LASAGNA")
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.True(t, matches[0].IsCustom)
}
