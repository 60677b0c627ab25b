package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/Thecodingpm/calories-counterr/internal/domain"
	"github.com/Thecodingpm/calories-counterr/internal/logger"
)

const geminiModel = "gemini-1.5-flash"

// mockAnalysisDelay imitates the round trip so offline development behaves
// like the real adapter.
const mockAnalysisDelay = 1500 * time.Millisecond

const analysisPrompt = `Analyze the food item(s) in this image.
Identify the main dish.
Provide a realistic estimation of its weight in grams.
Estimate the total calories, protein, carbohydrates, and fat in grams for the estimated weight.

CRITICAL JSON FORMAT REQUIREMENTS:
- Your response MUST be a valid JSON object with no additional text or markdown formatting
- The JSON must have these exact fields, all required:
  {
    "foodName": "Name of the identified food item",
    "estimatedWeight": 300,
    "estimatedCalories": 450,
    "protein": 25,
    "carbs": 55,
    "fat": 15
  }
- estimatedWeight is grams; nutrient values are totals for that weight, not per 100g`

// AIService estimates nutrition facts from food photos via Gemini. With no
// API key configured it runs in mock mode and returns a fixed estimate, so
// the rest of the app works offline. Failures never propagate: any
// transport, parse or schema problem yields a nil result.
type AIService struct {
	client *genai.Client
}

// NewAIService creates the adapter. An empty API key selects mock mode.
func NewAIService(ctx context.Context, apiKey string) (*AIService, error) {
	if apiKey == "" {
		logger.Warn("GEMINI_API_KEY not set, food analysis runs in mock mode")
		return &AIService{}, nil
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &AIService{client: client}, nil
}

func (s *AIService) Analyze(ctx context.Context, imageData []byte) (*domain.AnalyzedFoodInfo, error) {
	if s.client == nil {
		return s.mockAnalyze(ctx)
	}

	model := s.client.GenerativeModel(geminiModel)
	img := genai.ImageData("image/jpeg", imageData)

	resp, err := model.GenerateContent(ctx, img, genai.Text(analysisPrompt))
	if err != nil {
		logger.Error("Food image analysis failed", "error", err)
		return nil, nil
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		logger.Error("Food image analysis returned no candidates")
		return nil, nil
	}

	text, ok := resp.Candidates[0].Content.Parts[0].(genai.Text)
	if !ok {
		logger.Error("Food image analysis returned a non-text part")
		return nil, nil
	}

	jsonStr := extractJSON(string(text))
	if jsonStr == "" {
		logger.Error("No JSON object found in analysis response")
		return nil, nil
	}

	var info domain.AnalyzedFoodInfo
	if err := json.Unmarshal([]byte(jsonStr), &info); err != nil {
		logger.Error("Failed to parse analysis response", "error", err)
		return nil, nil
	}
	if info.FoodName == "" || info.EstimatedWeight <= 0 {
		logger.Error("Analysis response missing required fields", "response", jsonStr)
		return nil, nil
	}

	return &info, nil
}

func (s *AIService) mockAnalyze(ctx context.Context) (*domain.AnalyzedFoodInfo, error) {
	select {
	case <-time.After(mockAnalysisDelay):
	case <-ctx.Done():
		return nil, nil
	}
	return &domain.AnalyzedFoodInfo{
		FoodName:          "Spaghetti Bolognese (Mock)",
		EstimatedWeight:   300,
		EstimatedCalories: 450,
		Protein:           25,
		Carbs:             55,
		Fat:               15,
	}, nil
}

// extractJSON pulls a JSON object out of a reply that may wrap it in code
// fences or surrounding text.
func extractJSON(s string) string {
	start := strings.Index(s, "{")
	if start == -1 {
		return ""
	}
	end := strings.LastIndex(s, "}")
	if end == -1 || end <= start {
		return ""
	}
	return s[start : end+1]
}
