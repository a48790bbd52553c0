package repositories

import (
	"blogapi/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PostRepository interface {
	Create(post *models.Post) error
	GetByID(id uint) (*models.Post, error)
	GetList(searchText string, publishDate string) ([]models.Post, error)
	Update(post *models.Post, categories []models.Category) error
	Delete(post *models.Post) error
}

type postRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(post *models.Post) error {
	return r.db.Omit("Author").Create(post).Error
}

func (r *postRepository) GetByID(id uint) (*models.Post, error) {
	var post models.Post
	err := r.db.Preload("Author").Preload("Categories").First(&post, id).Error
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// GetList filters by text across title and content and by calendar day of
// the publish timestamp. publishDate arrives pre-validated as YYYY-MM-DD.
func (r *postRepository) GetList(searchText string, publishDate string) ([]models.Post, error) {
	posts := make([]models.Post, 0)

	query := r.db.Model(&models.Post{}).Preload("Author").Preload("Categories")

	if searchText != "" {
		pattern := "%" + searchText + "%"
		query = query.Where("title ILIKE ? OR content ILIKE ?", pattern, pattern)
	}

	if publishDate != "" {
		query = query.Where("published_at IS NOT NULL AND DATE(published_at) = ?", publishDate)
	}

	err := query.Order("created_at desc").Find(&posts).Error
	return posts, err
}

// Update saves the scalar fields and replaces the category association in
// one transaction, so no partial association survives a failure.
func (r *postRepository) Update(post *models.Post, categories []models.Category) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Categories", "Author", "CreatedAt").Save(post).Error; err != nil {
			return err
		}
		return tx.Model(post).Association("Categories").Replace(categories)
	})
}

// Delete removes the post together with its category join rows.
func (r *postRepository) Delete(post *models.Post) error {
	return r.db.Select(clause.Associations).Delete(post).Error
}
