package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"aifolio/internal/model"
)

// GenerationRepository defines generation persistence operations.
// Generations are append-only.
type GenerationRepository interface {
	ListByUser(ctx context.Context, userID int) ([]model.Generation, error)
	FindByID(ctx context.Context, id int) (*model.Generation, error)
	Create(ctx context.Context, input model.InsertGeneration) (*model.Generation, error)
}

type generationRepository struct {
	db *gorm.DB
}

// NewGenerationRepository builds a GORM-backed generation repository.
func NewGenerationRepository(db *gorm.DB) GenerationRepository {
	return &generationRepository{db: db}
}

func (r *generationRepository) ListByUser(ctx context.Context, userID int) ([]model.Generation, error) {
	var generations []model.Generation
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("id").Find(&generations).Error; err != nil {
		return nil, err
	}
	return generations, nil
}

func (r *generationRepository) FindByID(ctx context.Context, id int) (*model.Generation, error) {
	var generation model.Generation
	if err := r.db.WithContext(ctx).First(&generation, id).Error; err != nil {
		return nil, translate(err)
	}
	return &generation, nil
}

func (r *generationRepository) Create(ctx context.Context, input model.InsertGeneration) (*model.Generation, error) {
	generation := model.Generation{
		UserID:    input.UserID,
		Prompt:    input.Prompt,
		Result:    input.Result,
		ModelUsed: input.ModelUsed,
		CreatedAt: time.Now(),
		Metadata:  input.Metadata,
	}
	if err := r.db.WithContext(ctx).Create(&generation).Error; err != nil {
		return nil, err
	}
	return &generation, nil
}
