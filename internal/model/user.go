package model

// User represents a registered account. Users are created through
// registration only and are never updated or deleted afterwards.
type User struct {
	ID       int    `json:"id" gorm:"primaryKey"`
	Username string `json:"username" gorm:"uniqueIndex;size:255;not null"`
	Email    string `json:"email" gorm:"uniqueIndex;size:255;not null"`
	Password string `json:"-" gorm:"size:255;not null"` // Never expose in JSON
}

// InsertUser carries the caller-supplied fields for a new user. The id is
// assigned by the store.
type InsertUser struct {
	Username string
	Email    string
	Password string
}
