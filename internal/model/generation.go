package model

import "time"

// Generation records one invocation of the content generator. Generations
// are append-only: never updated, never deleted.
type Generation struct {
	ID        int                    `json:"id" gorm:"primaryKey"`
	UserID    int                    `json:"userId" gorm:"index"`
	Prompt    string                 `json:"prompt" gorm:"type:text;not null"`
	Result    string                 `json:"result" gorm:"type:text;not null"`
	ModelUsed string                 `json:"modelUsed" gorm:"size:255;not null"`
	CreatedAt time.Time              `json:"createdAt"`
	Metadata  map[string]interface{} `json:"metadata,omitempty" gorm:"serializer:json"`
}

// InsertGeneration carries the caller-supplied fields for a new generation.
// CreatedAt is stamped by the store.
type InsertGeneration struct {
	UserID    int
	Prompt    string
	Result    string
	ModelUsed string
	Metadata  map[string]interface{}
}
