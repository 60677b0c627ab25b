package domain

import "context"

// AuthService handles account registration and login.
type AuthService interface {
	RegisterUser(ctx context.Context, email, password string) (*AuthResult, error)
	LoginUser(ctx context.Context, email, password string) (*AuthResult, error)
	UpdateGoal(ctx context.Context, userID string, goal float64) (*User, error)
}

// FoodService handles the food catalog.
type FoodService interface {
	GetFoods(ctx context.Context) ([]Food, error)
	SearchFoods(ctx context.Context, query string) ([]Food, error)
	AddCustomFood(ctx context.Context, food Food) (*Food, error)
}

// EntryService handles the food log.
type EntryService interface {
	AddEntry(ctx context.Context, entry FoodEntry) (*FoodEntry, error)
	RemoveEntry(ctx context.Context, entryID string) (bool, error)
	EntriesForDate(ctx context.Context, date string) ([]FoodEntry, error)
	EntriesForRange(ctx context.Context, startDate, endDate string) ([]FoodEntry, error)
}

// Analyzer estimates nutrition facts from a food photo. A nil result with a
// nil error means the image could not be analyzed.
type Analyzer interface {
	Analyze(ctx context.Context, imageData []byte) (*AnalyzedFoodInfo, error)
}
