package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"aifolio/internal/model"
)

// CaseStudyRepository defines case-study persistence operations.
type CaseStudyRepository interface {
	List(ctx context.Context) ([]model.CaseStudy, error)
	FindByID(ctx context.Context, id int) (*model.CaseStudy, error)
	FindBySlug(ctx context.Context, slug string) (*model.CaseStudy, error)
	Create(ctx context.Context, input model.InsertCaseStudy) (*model.CaseStudy, error)
	Update(ctx context.Context, id int, patch model.UpdateCaseStudy) (*model.CaseStudy, error)
	Delete(ctx context.Context, id int) (bool, error)
}

type caseStudyRepository struct {
	db *gorm.DB
}

// NewCaseStudyRepository builds a GORM-backed case-study repository.
func NewCaseStudyRepository(db *gorm.DB) CaseStudyRepository {
	return &caseStudyRepository{db: db}
}

func (r *caseStudyRepository) List(ctx context.Context) ([]model.CaseStudy, error) {
	var studies []model.CaseStudy
	if err := r.db.WithContext(ctx).Order("id").Find(&studies).Error; err != nil {
		return nil, err
	}
	return studies, nil
}

func (r *caseStudyRepository) FindByID(ctx context.Context, id int) (*model.CaseStudy, error) {
	var study model.CaseStudy
	if err := r.db.WithContext(ctx).First(&study, id).Error; err != nil {
		return nil, translate(err)
	}
	return &study, nil
}

func (r *caseStudyRepository) FindBySlug(ctx context.Context, slug string) (*model.CaseStudy, error) {
	var study model.CaseStudy
	if err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&study).Error; err != nil {
		return nil, translate(err)
	}
	return &study, nil
}

func (r *caseStudyRepository) Create(ctx context.Context, input model.InsertCaseStudy) (*model.CaseStudy, error) {
	study := model.CaseStudy{
		Title:        input.Title,
		Slug:         input.Slug,
		Summary:      input.Summary,
		Content:      input.Content,
		ImageURL:     input.ImageURL,
		Status:       input.Status,
		Category:     input.Category,
		ClientName:   input.ClientName,
		Technologies: input.Technologies,
	}
	if err := r.db.WithContext(ctx).Create(&study).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicate
		}
		return nil, err
	}
	return &study, nil
}

func (r *caseStudyRepository) Update(ctx context.Context, id int, patch model.UpdateCaseStudy) (*model.CaseStudy, error) {
	updates := map[string]interface{}{}
	if patch.Title != nil {
		updates["title"] = *patch.Title
	}
	if patch.Slug != nil {
		updates["slug"] = *patch.Slug
	}
	if patch.Summary != nil {
		updates["summary"] = *patch.Summary
	}
	if patch.Content != nil {
		updates["content"] = *patch.Content
	}
	if patch.ImageURL != nil {
		updates["image_url"] = *patch.ImageURL
	}
	if patch.Status != nil {
		updates["status"] = *patch.Status
	}
	if patch.Category != nil {
		updates["category"] = *patch.Category
	}
	if patch.ClientName != nil {
		updates["client_name"] = *patch.ClientName
	}

	var study model.CaseStudy
	if err := r.db.WithContext(ctx).First(&study, id).Error; err != nil {
		return nil, translate(err)
	}
	if len(updates) > 0 {
		if err := r.db.WithContext(ctx).Model(&study).Updates(updates).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return nil, ErrDuplicate
			}
			return nil, err
		}
	}
	// Technologies goes through the JSON serializer, so it cannot ride in
	// the column map above.
	if patch.Technologies != nil {
		study.Technologies = *patch.Technologies
		if err := r.db.WithContext(ctx).Model(&study).Update("technologies", study.Technologies).Error; err != nil {
			return nil, err
		}
	}
	if err := r.db.WithContext(ctx).First(&study, id).Error; err != nil {
		return nil, translate(err)
	}
	return &study, nil
}

func (r *caseStudyRepository) Delete(ctx context.Context, id int) (bool, error) {
	res := r.db.WithContext(ctx).Delete(&model.CaseStudy{}, id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
