package models

import "time"

// User represents a registered user of the blog site.
// The password column holds the value exactly as supplied by the caller and
// carries no json tag so it never appears in a response.
type User struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserName  string    `json:"userName" gorm:"uniqueIndex;type:varchar(50);not null"`
	UserEmail string    `json:"userEmail" gorm:"uniqueIndex;type:varchar(100);not null"`
	Password  string    `json:"-" gorm:"type:varchar(255);not null"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
