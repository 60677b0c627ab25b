package server

import (
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"github.com/Thecodingpm/calories-counterr/internal/apperrors"
	"github.com/Thecodingpm/calories-counterr/internal/domain"
	"github.com/Thecodingpm/calories-counterr/internal/nutrition"
	"github.com/Thecodingpm/calories-counterr/internal/services"
)

const (
	msgInvalidCredentials = "Invalid email or password."
	msgDuplicateEmail     = "Email already in use."
	msgAnalysisFailed     = "Could not analyze the image. Please try again."
)

const maxImageBytes = 8 << 20

type credentialsInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (s *Server) register(c *gin.Context) {
	var input credentialsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	res, err := s.sessions.Register(c.Request.Context(), input.Email, input.Password)
	if err != nil {
		s.internalError(c, err)
		return
	}
	if res == nil {
		c.JSON(http.StatusConflict, gin.H{"error": msgDuplicateEmail})
		return
	}
	c.JSON(http.StatusCreated, res)
}

func (s *Server) login(c *gin.Context) {
	var input credentialsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	res, err := s.sessions.Login(c.Request.Context(), input.Email, input.Password)
	if err != nil {
		s.internalError(c, err)
		return
	}
	if res == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": msgInvalidCredentials})
		return
	}
	c.JSON(http.StatusOK, res)
}

func (s *Server) logout(c *gin.Context) {
	if err := s.sessions.Logout(c.Request.Context(), currentToken(c)); err != nil {
		s.internalError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) getFoods(c *gin.Context) {
	foods, err := s.foods.SearchFoods(c.Request.Context(), c.Query("q"))
	if err != nil {
		s.internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, foods)
}

type foodInput struct {
	Name     string  `json:"name" binding:"required"`
	Calories float64 `json:"calories" binding:"min=0"`
	Protein  float64 `json:"protein" binding:"min=0"`
	Carbs    float64 `json:"carbs" binding:"min=0"`
	Fat      float64 `json:"fat" binding:"min=0"`
}

func (s *Server) addFood(c *gin.Context) {
	var input foodInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	food, err := s.foods.AddCustomFood(c.Request.Context(), domain.Food{
		Name:     input.Name,
		Calories: input.Calories,
		Protein:  input.Protein,
		Carbs:    input.Carbs,
		Fat:      input.Fat,
	})
	if err != nil {
		s.internalError(c, err)
		return
	}
	c.JSON(http.StatusCreated, food)
}

type entryInput struct {
	FoodID string  `json:"foodId" binding:"required"`
	Date   string  `json:"date" binding:"required"`
	Grams  float64 `json:"grams" binding:"required,gt=0"`
}

func (s *Server) addEntry(c *gin.Context) {
	var input entryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if _, err := services.ParseDate(input.Date); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
		return
	}

	entry, err := s.entries.AddEntry(c.Request.Context(), domain.FoodEntry{
		FoodID: input.FoodID,
		Date:   input.Date,
		Grams:  input.Grams,
	})
	if err != nil {
		s.internalError(c, err)
		return
	}
	c.JSON(http.StatusCreated, entry)
}

func (s *Server) deleteEntry(c *gin.Context) {
	removed, err := s.entries.RemoveEntry(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"removed": removed})
}

func (s *Server) getEntries(c *gin.Context) {
	ctx := c.Request.Context()

	if date := c.Query("date"); date != "" {
		entries, err := s.entries.EntriesForDate(ctx, date)
		if err != nil {
			s.internalError(c, err)
			return
		}
		c.JSON(http.StatusOK, entries)
		return
	}

	start, end := c.Query("start"), c.Query("end")
	if start == "" || end == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date or start/end query parameters required"})
		return
	}
	entries, err := s.entries.EntriesForRange(ctx, start, end)
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) && appErr.Type == apperrors.ErrorTypeValidation {
		c.JSON(http.StatusBadRequest, gin.H{"error": "start and end must be YYYY-MM-DD"})
		return
	}
	if err != nil {
		s.internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}

// getProgress returns the day's totals, macro breakdown and goal
// classification. Catalog and entries are independent, so both fetches run
// concurrently.
func (s *Server) getProgress(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		date = time.Now().UTC().Format("2006-01-02")
	} else if _, err := services.ParseDate(date); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
		return
	}

	var (
		foods   []domain.Food
		entries []domain.FoodEntry
	)
	g, ctx := errgroup.WithContext(c.Request.Context())
	g.Go(func() error {
		var err error
		foods, err = s.foods.GetFoods(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		entries, err = s.entries.EntriesForDate(ctx, date)
		return err
	})
	if err := g.Wait(); err != nil {
		s.internalError(c, err)
		return
	}

	totals := nutrition.DailyTotals(entries, nutrition.BuildLookup(foods))
	user := currentUser(c)
	progress := nutrition.ClassifyProgress(totals.Calories, user.DailyCalorieGoal)

	c.JSON(http.StatusOK, gin.H{
		"date":     date,
		"goal":     user.DailyCalorieGoal,
		"totals":   totals,
		"progress": progress,
	})
}

// getStats returns per-day calorie totals over the trailing N days. Days
// without entries are absent from the map; clients fill zeros for display.
func (s *Server) getStats(c *gin.Context) {
	days := 7
	if c.Query("days") == "30" {
		days = 30
	}

	end := time.Now().UTC()
	start := end.AddDate(0, 0, -(days - 1))
	startStr := start.Format("2006-01-02")
	endStr := end.Format("2006-01-02")

	ctx := c.Request.Context()
	entries, err := s.entries.EntriesForRange(ctx, startStr, endStr)
	if err != nil {
		s.internalError(c, err)
		return
	}
	foods, err := s.foods.GetFoods(ctx)
	if err != nil {
		s.internalError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"start":    startStr,
		"end":      endStr,
		"calories": nutrition.CaloriesByDate(entries, nutrition.BuildLookup(foods)),
	})
}

type goalInput struct {
	DailyCalorieGoal float64 `json:"dailyCalorieGoal" binding:"required,gt=0"`
}

func (s *Server) updateGoal(c *gin.Context) {
	var input goalInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := s.sessions.UpdateGoal(c.Request.Context(), currentToken(c), input.DailyCalorieGoal)
	if errors.Is(err, apperrors.ErrUnauthorized) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "session expired"})
		return
	}
	if err != nil {
		s.internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (s *Server) analyze(c *gin.Context) {
	file, _, err := c.Request.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image file required"})
		return
	}
	defer file.Close()

	imageData, err := io.ReadAll(io.LimitReader(file, maxImageBytes))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read image"})
		return
	}

	info, err := s.analyzer.Analyze(c.Request.Context(), imageData)
	if err != nil {
		s.internalError(c, err)
		return
	}
	if info == nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": msgAnalysisFailed})
		return
	}
	c.JSON(http.StatusOK, info)
}

type acceptAnalysisInput struct {
	FoodName          string  `json:"foodName" binding:"required"`
	EstimatedWeight   float64 `json:"estimatedWeight" binding:"required,gt=0"`
	EstimatedCalories float64 `json:"estimatedCalories" binding:"min=0"`
	Protein           float64 `json:"protein" binding:"min=0"`
	Carbs             float64 `json:"carbs" binding:"min=0"`
	Fat               float64 `json:"fat" binding:"min=0"`
	Date              string  `json:"date" binding:"required"`
}

// acceptAnalysis turns an accepted photo estimate into a custom food plus a
// log entry. Estimate values are absolute totals for the estimated weight,
// so they rescale by 100/weight into per-100g rates before storing.
func (s *Server) acceptAnalysis(c *gin.Context) {
	var input acceptAnalysisInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if _, err := services.ParseDate(input.Date); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
		return
	}

	ctx := c.Request.Context()
	scale := 100 / input.EstimatedWeight
	food, err := s.foods.AddCustomFood(ctx, domain.Food{
		Name:     input.FoodName,
		Calories: input.EstimatedCalories * scale,
		Protein:  input.Protein * scale,
		Carbs:    input.Carbs * scale,
		Fat:      input.Fat * scale,
	})
	if err != nil {
		s.internalError(c, err)
		return
	}

	entry, err := s.entries.AddEntry(ctx, domain.FoodEntry{
		FoodID: food.ID,
		Date:   input.Date,
		Grams:  input.EstimatedWeight,
	})
	if err != nil {
		s.internalError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"food": food, "entry": entry})
}

func (s *Server) internalError(c *gin.Context, err error) {
	s.errHandler.Handle(c.Request.Context(), err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
}
