package models

import "time"

// Blog represents a single blog post.
// AuthorName is free text, not a foreign key into users, and blog names carry
// no unique index even though lookups assume a single match.
type Blog struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	BlogName   string    `json:"blogName" gorm:"type:varchar(200);not null"`
	Category   string    `json:"category" gorm:"type:varchar(100);not null;index"`
	Article    string    `json:"article" gorm:"type:text;not null"`
	AuthorName string    `json:"authorName" gorm:"type:varchar(50);not null;index"`
	CreatedAt  time.Time `json:"createdAt"`
}
