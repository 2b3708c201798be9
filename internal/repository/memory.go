package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"aifolio/internal/model"
)

// MemoryStore is the in-memory authoritative store for all three entity
// kinds. It lives for the process lifetime and is discarded on exit; there
// is no eviction and no persistence. Ids are monotonic per entity kind and
// never reused, even after deletion. A single mutex makes every operation
// atomic, which also closes the check-then-insert race on the uniqueness
// constraints: creates reject duplicates under the same lock.
//
// The per-entity repositories are views over the shared core; construct a
// fresh store per test for isolation.
type MemoryStore struct {
	mu sync.Mutex

	users       map[int]model.User
	caseStudies map[int]model.CaseStudy
	generations map[int]model.Generation

	nextUserID       int
	nextCaseStudyID  int
	nextGenerationID int
}

// NewMemoryStore builds a store pre-seeded with the fixed demo case studies.
func NewMemoryStore() *MemoryStore {
	s := &MemoryStore{
		users:            make(map[int]model.User),
		caseStudies:      make(map[int]model.CaseStudy),
		generations:      make(map[int]model.Generation),
		nextUserID:       1,
		nextCaseStudyID:  1,
		nextGenerationID: 1,
	}
	for _, seed := range SeedCaseStudies() {
		id := s.nextCaseStudyID
		s.nextCaseStudyID++
		s.caseStudies[id] = model.CaseStudy{
			ID:           id,
			Title:        seed.Title,
			Slug:         seed.Slug,
			Summary:      seed.Summary,
			Content:      seed.Content,
			ImageURL:     seed.ImageURL,
			Status:       seed.Status,
			Category:     seed.Category,
			ClientName:   seed.ClientName,
			Technologies: append([]string(nil), seed.Technologies...),
		}
	}
	return s
}

// Users returns the user view of the store.
func (s *MemoryStore) Users() UserRepository { return memoryUsers{s} }

// CaseStudies returns the case-study view of the store.
func (s *MemoryStore) CaseStudies() CaseStudyRepository { return memoryCaseStudies{s} }

// Generations returns the generation view of the store.
func (s *MemoryStore) Generations() GenerationRepository { return memoryGenerations{s} }

type memoryUsers struct{ s *MemoryStore }

var _ UserRepository = memoryUsers{}

func (v memoryUsers) FindByID(ctx context.Context, id int) (*model.User, error) {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()
	user, ok := v.s.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &user, nil
}

func (v memoryUsers) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()
	for _, id := range sortedKeys(v.s.users) {
		if v.s.users[id].Username == username {
			user := v.s.users[id]
			return &user, nil
		}
	}
	return nil, ErrNotFound
}

func (v memoryUsers) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()
	for _, id := range sortedKeys(v.s.users) {
		if v.s.users[id].Email == email {
			user := v.s.users[id]
			return &user, nil
		}
	}
	return nil, ErrNotFound
}

func (v memoryUsers) Create(ctx context.Context, input model.InsertUser) (*model.User, error) {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()
	for _, u := range v.s.users {
		if u.Username == input.Username || u.Email == input.Email {
			return nil, ErrDuplicate
		}
	}
	id := v.s.nextUserID
	v.s.nextUserID++
	user := model.User{
		ID:       id,
		Username: input.Username,
		Email:    input.Email,
		Password: input.Password,
	}
	v.s.users[id] = user
	return &user, nil
}

type memoryCaseStudies struct{ s *MemoryStore }

var _ CaseStudyRepository = memoryCaseStudies{}

func (v memoryCaseStudies) List(ctx context.Context) ([]model.CaseStudy, error) {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()
	studies := make([]model.CaseStudy, 0, len(v.s.caseStudies))
	for _, id := range sortedKeys(v.s.caseStudies) {
		studies = append(studies, copyCaseStudy(v.s.caseStudies[id]))
	}
	return studies, nil
}

func (v memoryCaseStudies) FindByID(ctx context.Context, id int) (*model.CaseStudy, error) {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()
	study, ok := v.s.caseStudies[id]
	if !ok {
		return nil, ErrNotFound
	}
	study = copyCaseStudy(study)
	return &study, nil
}

func (v memoryCaseStudies) FindBySlug(ctx context.Context, slug string) (*model.CaseStudy, error) {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()
	for _, id := range sortedKeys(v.s.caseStudies) {
		if v.s.caseStudies[id].Slug == slug {
			study := copyCaseStudy(v.s.caseStudies[id])
			return &study, nil
		}
	}
	return nil, ErrNotFound
}

func (v memoryCaseStudies) Create(ctx context.Context, input model.InsertCaseStudy) (*model.CaseStudy, error) {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()
	for _, c := range v.s.caseStudies {
		if c.Slug == input.Slug {
			return nil, ErrDuplicate
		}
	}
	id := v.s.nextCaseStudyID
	v.s.nextCaseStudyID++
	study := model.CaseStudy{
		ID:           id,
		Title:        input.Title,
		Slug:         input.Slug,
		Summary:      input.Summary,
		Content:      input.Content,
		ImageURL:     input.ImageURL,
		Status:       input.Status,
		Category:     input.Category,
		ClientName:   input.ClientName,
		Technologies: append([]string(nil), input.Technologies...),
	}
	v.s.caseStudies[id] = study
	study = copyCaseStudy(study)
	return &study, nil
}

func (v memoryCaseStudies) Update(ctx context.Context, id int, patch model.UpdateCaseStudy) (*model.CaseStudy, error) {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()
	study, ok := v.s.caseStudies[id]
	if !ok {
		return nil, ErrNotFound
	}
	if patch.Slug != nil {
		for otherID, other := range v.s.caseStudies {
			if otherID != id && other.Slug == *patch.Slug {
				return nil, ErrDuplicate
			}
		}
	}
	// Shallow merge: a set field overwrites, an unset field is preserved.
	// Technologies is replaced wholesale, never element-merged.
	if patch.Title != nil {
		study.Title = *patch.Title
	}
	if patch.Slug != nil {
		study.Slug = *patch.Slug
	}
	if patch.Summary != nil {
		study.Summary = *patch.Summary
	}
	if patch.Content != nil {
		study.Content = *patch.Content
	}
	if patch.ImageURL != nil {
		study.ImageURL = *patch.ImageURL
	}
	if patch.Status != nil {
		study.Status = *patch.Status
	}
	if patch.Category != nil {
		study.Category = *patch.Category
	}
	if patch.ClientName != nil {
		study.ClientName = *patch.ClientName
	}
	if patch.Technologies != nil {
		study.Technologies = append([]string(nil), (*patch.Technologies)...)
	}
	v.s.caseStudies[id] = study
	study = copyCaseStudy(study)
	return &study, nil
}

func (v memoryCaseStudies) Delete(ctx context.Context, id int) (bool, error) {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()
	_, ok := v.s.caseStudies[id]
	delete(v.s.caseStudies, id)
	return ok, nil
}

type memoryGenerations struct{ s *MemoryStore }

var _ GenerationRepository = memoryGenerations{}

func (v memoryGenerations) ListByUser(ctx context.Context, userID int) ([]model.Generation, error) {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()
	var generations []model.Generation
	for _, id := range sortedKeys(v.s.generations) {
		if v.s.generations[id].UserID == userID {
			generations = append(generations, copyGeneration(v.s.generations[id]))
		}
	}
	return generations, nil
}

func (v memoryGenerations) FindByID(ctx context.Context, id int) (*model.Generation, error) {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()
	generation, ok := v.s.generations[id]
	if !ok {
		return nil, ErrNotFound
	}
	generation = copyGeneration(generation)
	return &generation, nil
}

func (v memoryGenerations) Create(ctx context.Context, input model.InsertGeneration) (*model.Generation, error) {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()
	id := v.s.nextGenerationID
	v.s.nextGenerationID++
	generation := model.Generation{
		ID:        id,
		UserID:    input.UserID,
		Prompt:    input.Prompt,
		Result:    input.Result,
		ModelUsed: input.ModelUsed,
		CreatedAt: time.Now(),
		Metadata:  copyMetadata(input.Metadata),
	}
	v.s.generations[id] = generation
	generation = copyGeneration(generation)
	return &generation, nil
}

// copy helpers keep callers from aliasing the store's internal slices and
// maps.

func copyCaseStudy(c model.CaseStudy) model.CaseStudy {
	c.Technologies = append([]string(nil), c.Technologies...)
	return c
}

func copyGeneration(g model.Generation) model.Generation {
	g.Metadata = copyMetadata(g.Metadata)
	return g
}

func copyMetadata(m map[string]interface{}) map[string]interface{} {
	if m == nil {
		return nil
	}
	out := make(map[string]interface{}, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func sortedKeys[V any](m map[int]V) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}
