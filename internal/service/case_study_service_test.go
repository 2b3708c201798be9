package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aifolio/internal/cache"
	apperrors "aifolio/internal/errors"
	"aifolio/internal/model"
	"aifolio/internal/repository"
)

// newCaseStudyFixture wires the service over a fresh memory store with the
// cache disabled, the same shape the server runs with no Redis configured.
func newCaseStudyFixture() CaseStudyService {
	store := repository.NewMemoryStore()
	return NewCaseStudyService(store.CaseStudies(), cache.New("", "", 0))
}

func TestCaseStudyService_ListIncludesSeedsAndDrafts(t *testing.T) {
	ctx := context.Background()
	svc := newCaseStudyFixture()

	_, err := svc.Create(ctx, model.InsertCaseStudy{
		Title:    "Draft Entry",
		Slug:     "draft-entry",
		Summary:  "s",
		Content:  "c",
		Status:   model.StatusDraft,
		Category: "Misc",
	})
	require.NoError(t, err)

	studies, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, studies, 4)
	// The public listing does not filter drafts out.
	assert.Equal(t, model.StatusDraft, studies[3].Status)
}

func TestCaseStudyService_CreateDefaultsToPublished(t *testing.T) {
	ctx := context.Background()
	svc := newCaseStudyFixture()

	created, err := svc.Create(ctx, model.InsertCaseStudy{
		Title:    "No Status",
		Slug:     "no-status",
		Summary:  "s",
		Content:  "c",
		Category: "Misc",
	})
	require.NoError(t, err)
	assert.Equal(t, model.StatusPublished, created.Status)
}

func TestCaseStudyService_CreateDuplicateSlug(t *testing.T) {
	svc := newCaseStudyFixture()

	_, err := svc.Create(context.Background(), model.InsertCaseStudy{
		Title:    "Clone",
		Slug:     "ai-powered-smart-shopping-assistant",
		Summary:  "s",
		Content:  "c",
		Category: "Misc",
	})
	assert.ErrorIs(t, err, apperrors.ErrSlugTaken)
}

func TestCaseStudyService_GetBySlug(t *testing.T) {
	ctx := context.Background()
	svc := newCaseStudyFixture()

	study, err := svc.GetBySlug(ctx, "generative-design-system-architecture")
	require.NoError(t, err)
	assert.Equal(t, "Generative Design System for Architecture", study.Title)

	_, err = svc.GetBySlug(ctx, "missing")
	assert.ErrorIs(t, err, apperrors.ErrCaseStudyNotFound)
}

func TestCaseStudyService_UpdateMissing(t *testing.T) {
	svc := newCaseStudyFixture()
	title := "x"
	_, err := svc.Update(context.Background(), 42, model.UpdateCaseStudy{Title: &title})
	assert.ErrorIs(t, err, apperrors.ErrCaseStudyNotFound)
}

func TestCaseStudyService_Delete(t *testing.T) {
	ctx := context.Background()
	svc := newCaseStudyFixture()

	require.NoError(t, svc.Delete(ctx, 1))

	_, err := svc.GetBySlug(ctx, "ai-powered-smart-shopping-assistant")
	assert.ErrorIs(t, err, apperrors.ErrCaseStudyNotFound)

	assert.ErrorIs(t, svc.Delete(ctx, 1), apperrors.ErrCaseStudyNotFound)
}
