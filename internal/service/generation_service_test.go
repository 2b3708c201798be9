package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aifolio/internal/repository"
)

func TestGenerationService_Generate(t *testing.T) {
	ctx := context.Background()
	svc := NewGenerationService(repository.NewMemoryStore().Generations())
	start := time.Now()

	generation, err := svc.Generate(ctx, 1, "Write a tagline", "")
	require.NoError(t, err)

	assert.Equal(t, 1, generation.UserID)
	assert.Equal(t, "Write a tagline", generation.Prompt)
	assert.Contains(t, generation.Result, "Write a tagline")
	assert.Equal(t, DefaultModel, generation.ModelUsed)
	assert.False(t, generation.CreatedAt.Before(start))

	assert.Equal(t, len("Write a tagline"), generation.Metadata["promptLength"])
	assert.Equal(t, len(generation.Result), generation.Metadata["responseLength"])

	stamp, ok := generation.Metadata["generationTime"].(string)
	require.True(t, ok)
	_, err = time.Parse(time.RFC3339, stamp)
	assert.NoError(t, err)
}

func TestGenerationService_GenerateEmbedsPromptVerbatim(t *testing.T) {
	svc := NewGenerationService(repository.NewMemoryStore().Generations())

	prompt := `Say "hello" with a \ backslash`
	generation, err := svc.Generate(context.Background(), 1, prompt, "")
	require.NoError(t, err)

	// The prompt is interpolated raw, not escaped.
	assert.Contains(t, generation.Result, prompt)
	assert.True(t, strings.HasPrefix(generation.Result, `Generated content based on: "`+prompt+`".`))
	assert.Equal(t, len(generation.Result), generation.Metadata["responseLength"])
}

func TestGenerationService_GenerateEchoesModel(t *testing.T) {
	svc := NewGenerationService(repository.NewMemoryStore().Generations())

	generation, err := svc.Generate(context.Background(), 1, "prompt", "gpt-4")
	require.NoError(t, err)
	assert.Equal(t, "gpt-4", generation.ModelUsed)
}

func TestGenerationService_History(t *testing.T) {
	ctx := context.Background()
	svc := NewGenerationService(repository.NewMemoryStore().Generations())

	empty, err := svc.History(ctx, 1)
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)

	first, err := svc.Generate(ctx, 1, "first prompt", "")
	require.NoError(t, err)
	_, err = svc.Generate(ctx, 2, "someone else", "")
	require.NoError(t, err)
	second, err := svc.Generate(ctx, 1, "second prompt", "")
	require.NoError(t, err)

	history, err := svc.History(ctx, 1)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, first.ID, history[0].ID)
	assert.Equal(t, second.ID, history[1].ID)
}
