package domain

// User represents a registered account. DailyCalorieGoal defaults to 2000
// kcal at registration and is mutable by the owning user only.
type User struct {
	ID               string  `json:"id"`
	Email            string  `json:"email"`
	PasswordHash     string  `json:"-"`
	DailyCalorieGoal float64 `json:"dailyCalorieGoal"`
}

// Food is a catalog item. All nutrient fields are per-100-gram rates.
type Food struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
	IsCustom bool    `json:"isCustom,omitempty"`
}

// FoodEntry is one dated, weighed instance of consuming a Food. FoodID is a
// soft reference: entries whose food no longer resolves are skipped during
// aggregation rather than rejected at write time.
type FoodEntry struct {
	ID     string  `json:"id"`
	FoodID string  `json:"foodId"`
	Date   string  `json:"date"` // YYYY-MM-DD
	Grams  float64 `json:"grams"`
}

// AuthResult is returned by register and login on success.
type AuthResult struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}

// AnalyzedFoodInfo is the AI adapter's estimate for a food photo. Nutrient
// values are absolute totals for EstimatedWeight grams, not per-100g rates.
type AnalyzedFoodInfo struct {
	FoodName          string  `json:"foodName"`
	EstimatedWeight   float64 `json:"estimatedWeight"`
	EstimatedCalories float64 `json:"estimatedCalories"`
	Protein           float64 `json:"protein"`
	Carbs             float64 `json:"carbs"`
	Fat               float64 `json:"fat"`
}

// SessionRecord is the durable {token, user} pair persisted on login and
// deleted on logout.
type SessionRecord struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}
