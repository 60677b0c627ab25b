package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeMockMode(t *testing.T) {
	ctx := context.Background()
	svc, err := NewAIService(ctx, "")
	require.NoError(t, err)

	info, err := svc.Analyze(ctx, []byte("not-a-real-jpeg"))
	require.NoError(t, err)
	require.NotNil(t, info)
	assert.Equal(t, "Spaghetti Bolognese (Mock)", info.FoodName)
	assert.EqualValues(t, 300, info.EstimatedWeight)
	assert.EqualValues(t, 450, info.EstimatedCalories)
}

func TestAnalyzeMockModeDeterministic(t *testing.T) {
	ctx := context.Background()
	svc, err := NewAIService(ctx, "")
	require.NoError(t, err)

	first, err := svc.Analyze(ctx, []byte("a"))
	require.NoError(t, err)
	second, err := svc.Analyze(ctx, []byte("b"))
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestAnalyzeMockModeCancelled(t *testing.T) {
	svc, err := NewAIService(context.Background(), "")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	info, err := svc.Analyze(ctx, []byte("a"))
	require.NoError(t, err)
	assert.Nil(t, info)
}

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"bare object", `{"a":1}`, `{"a":1}`},
		{"code fence", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"surrounding text", `Here you go: {"a":1} hope that helps`, `{"a":1}`},
		{"no object", "just text", ""},
		{"unbalanced", "} {", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extractJSON(tt.in))
		})
	}
}
