// Package catalog holds the seeded built-in food list. Built-ins are
// immutable and never persisted; custom foods live in storage and are
// appended after these by the food service.
package catalog

import "github.com/Thecodingpm/calories-counterr/internal/domain"

var builtin = []domain.Food{
	{ID: "1", Name: "Apple", Calories: 52, Protein: 0.3, Carbs: 14, Fat: 0.2},
	{ID: "2", Name: "Banana", Calories: 89, Protein: 1.1, Carbs: 23, Fat: 0.3},
	{ID: "3", Name: "Chicken Breast (Cooked)", Calories: 165, Protein: 31, Carbs: 0, Fat: 3.6},
	{ID: "4", Name: "Brown Rice (Cooked)", Calories: 111, Protein: 2.6, Carbs: 23, Fat: 0.9},
	{ID: "5", Name: "Broccoli (Raw)", Calories: 34, Protein: 2.8, Carbs: 7, Fat: 0.4},
	{ID: "6", Name: "Salmon (Cooked)", Calories: 206, Protein: 22, Carbs: 0, Fat: 13},
	{ID: "7", Name: "Almonds", Calories: 579, Protein: 21, Carbs: 22, Fat: 49},
	{ID: "8", Name: "Egg (Large)", Calories: 155, Protein: 13, Carbs: 1.1, Fat: 11},
	{ID: "9", Name: "Whole Milk", Calories: 61, Protein: 3.2, Carbs: 4.8, Fat: 3.3},
	{ID: "10", Name: "Oats (Uncooked)", Calories: 389, Protein: 17, Carbs: 66, Fat: 7},
	{ID: "11", Name: "Avocado", Calories: 160, Protein: 2, Carbs: 9, Fat: 15},
	{ID: "12", Name: "White Bread", Calories: 265, Protein: 9, Carbs: 49, Fat: 3.2},
	{ID: "13", Name: "Peanut Butter", Calories: 588, Protein: 25, Carbs: 20, Fat: 50},
	{ID: "14", Name: "Greek Yogurt (Plain, Non-fat)", Calories: 59, Protein: 10, Carbs: 3.6, Fat: 0.4},
	{ID: "15", Name: "Spinach (Raw)", Calories: 23, Protein: 2.9, Carbs: 3.6, Fat: 0.4},
}

// Builtin returns a copy of the built-in food list so callers cannot mutate
// the seed data.
func Builtin() []domain.Food {
	out := make([]domain.Food, len(builtin))
	copy(out, builtin)
	return out
}
