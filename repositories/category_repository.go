package repositories

import (
	"blogapi/models"

	"gorm.io/gorm"
)

type CategoryRepository interface {
	Create(category *models.Category) error
	GetByID(id uint) (*models.Category, error)
	GetByIDs(ids []uint) ([]models.Category, error)
	GetByName(name string) (*models.Category, error)
	GetAll() ([]models.Category, error)
	Update(category *models.Category) error
	Delete(category *models.Category) error
	CountPosts(categoryID uint) (int64, error)
}

type categoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) Create(category *models.Category) error {
	return r.db.Create(category).Error
}

func (r *categoryRepository) GetByID(id uint) (*models.Category, error) {
	var category models.Category
	err := r.db.First(&category, id).Error
	if err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepository) GetByIDs(ids []uint) ([]models.Category, error) {
	var categories []models.Category
	err := r.db.Where("id IN ?", ids).Find(&categories).Error
	return categories, err
}

// GetByName matches case-insensitively, mirroring the unique index on
// LOWER(name).
func (r *categoryRepository) GetByName(name string) (*models.Category, error) {
	var category models.Category
	err := r.db.Where("LOWER(name) = LOWER(?)", name).First(&category).Error
	if err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepository) GetAll() ([]models.Category, error) {
	categories := make([]models.Category, 0)
	err := r.db.Order("name asc").Find(&categories).Error
	return categories, err
}

func (r *categoryRepository) Update(category *models.Category) error {
	return r.db.Save(category).Error
}

func (r *categoryRepository) Delete(category *models.Category) error {
	return r.db.Delete(category).Error
}

// CountPosts counts join rows directly so the check sees exactly what the
// RESTRICT constraint sees.
func (r *categoryRepository) CountPosts(categoryID uint) (int64, error) {
	var count int64
	err := r.db.Table("post_categories").Where("category_id = ?", categoryID).Count(&count).Error
	return count, err
}
