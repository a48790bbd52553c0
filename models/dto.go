package models

import "time"

type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3,max=50"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

type CategoryRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=100"`
	Description string `json:"description"`
}

type PostRequest struct {
	Title       string     `json:"title" binding:"required,min=1,max=255"`
	Content     string     `json:"content" binding:"required"`
	Status      PostStatus `json:"status" binding:"required"`
	PublishedAt *time.Time `json:"published_at"`
	CategoryIDs []uint     `json:"category_ids" binding:"required,min=1"`
}

type PostListParams struct {
	SearchText  string `form:"search_text"`
	PublishDate string `form:"publish_date"`
}
