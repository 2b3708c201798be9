package service

import (
	"context"
	"fmt"
	"time"

	"aifolio/internal/model"
	"aifolio/internal/repository"
)

// DefaultModel is used when a generation request names no model.
const DefaultModel = "default-model"

const resultSuffix = "\n\nThis is a simulated response that would normally come from an AI model. " +
	"In a real application, this would be the output from an AI model like GPT-4 or a custom model " +
	"trained for specific generation tasks."

// GenerationService handles the mock content generator and its history.
type GenerationService interface {
	Generate(ctx context.Context, userID int, prompt, modelUsed string) (*model.Generation, error)
	History(ctx context.Context, userID int) ([]model.Generation, error)
}

type generationService struct {
	generations repository.GenerationRepository
}

// NewGenerationService creates a new generation service.
func NewGenerationService(generations repository.GenerationRepository) GenerationService {
	return &generationService{generations: generations}
}

// Generate synthesizes a deterministic templated response embedding the
// prompt and records the invocation. No inference happens; the template is
// a stand-in for an external model call.
func (s *generationService) Generate(ctx context.Context, userID int, prompt, modelUsed string) (*model.Generation, error) {
	if modelUsed == "" {
		modelUsed = DefaultModel
	}

	result := fmt.Sprintf("Generated content based on: \"%s\".%s", prompt, resultSuffix)

	generation, err := s.generations.Create(ctx, model.InsertGeneration{
		UserID:    userID,
		Prompt:    prompt,
		Result:    result,
		ModelUsed: modelUsed,
		Metadata: map[string]interface{}{
			"generationTime": time.Now().Format(time.RFC3339),
			"promptLength":   len(prompt),
			"responseLength": len(result),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("record generation: %w", err)
	}
	return generation, nil
}

// History returns every generation recorded for the user, oldest first.
func (s *generationService) History(ctx context.Context, userID int) ([]model.Generation, error) {
	generations, err := s.generations.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list generations: %w", err)
	}
	if generations == nil {
		generations = []model.Generation{}
	}
	return generations, nil
}
