package services

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/Thecodingpm/calories-counterr/internal/catalog"
	"github.com/Thecodingpm/calories-counterr/internal/domain"
	"github.com/Thecodingpm/calories-counterr/internal/storage"
)

// FoodService serves the food catalog: the built-in list concatenated with
// persisted custom foods, in that order.
type FoodService struct {
	store storage.Store
}

func NewFoodService(store storage.Store) *FoodService {
	return &FoodService{store: store}
}

func (s *FoodService) GetFoods(ctx context.Context) ([]domain.Food, error) {
	custom, err := storage.LoadList[domain.Food](ctx, s.store, storage.CollectionCustomFoods)
	if err != nil {
		return nil, err
	}
	return append(catalog.Builtin(), custom...), nil
}

// SearchFoods filters the catalog by case-insensitive name substring. An
// empty query returns the whole catalog.
func (s *FoodService) SearchFoods(ctx context.Context, query string) ([]domain.Food, error) {
	foods, err := s.GetFoods(ctx)
	if err != nil {
		return nil, err
	}
	if query == "" {
		return foods, nil
	}

	needle := strings.ToLower(query)
	matched := make([]domain.Food, 0, len(foods))
	for _, f := range foods {
		if strings.Contains(strings.ToLower(f.Name), needle) {
			matched = append(matched, f)
		}
	}
	return matched, nil
}

// AddCustomFood assigns a fresh ID, marks the food custom and appends it to
// the custom collection. The caller's ID and IsCustom values are ignored.
func (s *FoodService) AddCustomFood(ctx context.Context, food domain.Food) (*domain.Food, error) {
	custom, err := storage.LoadList[domain.Food](ctx, s.store, storage.CollectionCustomFoods)
	if err != nil {
		return nil, err
	}

	food.ID = uuid.NewString()
	food.IsCustom = true

	custom = append(custom, food)
	if err := storage.SaveList(ctx, s.store, storage.CollectionCustomFoods, custom); err != nil {
		return nil, err
	}
	return &food, nil
}
