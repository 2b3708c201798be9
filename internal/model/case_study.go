package model

// Case study publication states.
const (
	StatusDraft     = "draft"
	StatusPublished = "published"
)

// CaseStudy is a portfolio entry. Slugs are unique and used for public
// lookup; content is freeform markdown-ish text.
type CaseStudy struct {
	ID           int      `json:"id" gorm:"primaryKey"`
	Title        string   `json:"title" gorm:"size:255;not null"`
	Slug         string   `json:"slug" gorm:"uniqueIndex;size:255;not null"`
	Summary      string   `json:"summary" gorm:"type:text;not null"`
	Content      string   `json:"content" gorm:"type:text;not null"`
	ImageURL     string   `json:"imageUrl,omitempty" gorm:"size:512"`
	Status       string   `json:"status" gorm:"size:20;not null;default:'published'"`
	Category     string   `json:"category" gorm:"size:255;not null"`
	ClientName   string   `json:"clientName,omitempty" gorm:"size:255"`
	Technologies []string `json:"technologies,omitempty" gorm:"serializer:json"`
}

// InsertCaseStudy carries the caller-supplied fields for a new case study.
type InsertCaseStudy struct {
	Title        string
	Slug         string
	Summary      string
	Content      string
	ImageURL     string
	Status       string
	Category     string
	ClientName   string
	Technologies []string
}

// UpdateCaseStudy is a partial update: nil fields are left untouched,
// non-nil fields overwrite. Technologies is replaced wholesale when set.
type UpdateCaseStudy struct {
	Title        *string
	Slug         *string
	Summary      *string
	Content      *string
	ImageURL     *string
	Status       *string
	Category     *string
	ClientName   *string
	Technologies *[]string
}
