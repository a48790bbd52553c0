package models

import (
	"time"
)

type PostStatus string

const (
	StatusDraft     PostStatus = "Draft"
	StatusPublished PostStatus = "Published"
)

func (s PostStatus) Valid() bool {
	return s == StatusDraft || s == StatusPublished
}

type Post struct {
	ID          uint       `json:"id" gorm:"primarykey"`
	Title       string     `json:"title" gorm:"not null;size:255"`
	Content     string     `json:"content" gorm:"type:text;not null"`
	Status      PostStatus `json:"status" gorm:"not null;default:'Draft'"`
	PublishedAt *time.Time `json:"published_at"`
	AuthorID    uint       `json:"author_id" gorm:"not null"`
	Author      User       `json:"author" gorm:"foreignKey:AuthorID"`
	Categories  []Category `json:"categories" gorm:"many2many:post_categories;"`
	// CreatedAt is assigned by the server at creation and never changed
	// by updates.
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
