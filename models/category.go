package models

import (
	"time"
)

type Category struct {
	ID          uint      `json:"id" gorm:"primarykey"`
	Name        string    `json:"name" gorm:"not null;size:100"`
	Description string    `json:"description"`
	Posts       []Post    `json:"-" gorm:"many2many:post_categories;"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
