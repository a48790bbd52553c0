package services

import (
	"errors"

	"blogapi/models"
	"blogapi/repositories"

	"gorm.io/gorm"
)

type CategoryService interface {
	CreateCategory(req models.CategoryRequest) (*models.Category, error)
	GetCategory(id uint) (*models.Category, error)
	GetCategories() ([]models.Category, error)
	UpdateCategory(id uint, req models.CategoryRequest) error
	DeleteCategory(id uint) error
}

type categoryService struct {
	categoryRepo repositories.CategoryRepository
}

func NewCategoryService(categoryRepo repositories.CategoryRepository) CategoryService {
	return &categoryService{categoryRepo: categoryRepo}
}

func (s *categoryService) CreateCategory(req models.CategoryRequest) (*models.Category, error) {
	if err := s.checkNameAvailable(req.Name, 0); err != nil {
		return nil, err
	}

	category := &models.Category{
		Name:        req.Name,
		Description: req.Description,
	}

	if err := s.categoryRepo.Create(category); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, models.ErrorConflict{Message: "category already exists"}
		}
		return nil, err
	}

	return category, nil
}

func (s *categoryService) GetCategory(id uint) (*models.Category, error) {
	category, err := s.categoryRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrorNotFound{Message: "category not found"}
		}
		return nil, err
	}
	return category, nil
}

func (s *categoryService) GetCategories() ([]models.Category, error) {
	return s.categoryRepo.GetAll()
}

func (s *categoryService) UpdateCategory(id uint, req models.CategoryRequest) error {
	category, err := s.GetCategory(id)
	if err != nil {
		return err
	}

	if err := s.checkNameAvailable(req.Name, category.ID); err != nil {
		return err
	}

	category.Name = req.Name
	category.Description = req.Description

	if err := s.categoryRepo.Update(category); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return models.ErrorConflict{Message: "another category with the same name already exists"}
		}
		return err
	}

	return nil
}

// DeleteCategory refuses to delete a category while any post references it.
// The pre-check produces the friendly error; the RESTRICT constraint on
// post_categories closes the race against a concurrent post creation.
func (s *categoryService) DeleteCategory(id uint) error {
	category, err := s.GetCategory(id)
	if err != nil {
		return err
	}

	count, err := s.categoryRepo.CountPosts(category.ID)
	if err != nil {
		return err
	}
	if count > 0 {
		return models.ErrorIntegrity{Message: "cannot delete category linked to posts"}
	}

	if err := s.categoryRepo.Delete(category); err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return models.ErrorIntegrity{Message: "cannot delete category linked to posts"}
		}
		return err
	}

	return nil
}

// checkNameAvailable enforces case-insensitive name uniqueness, excluding
// the record being updated itself.
func (s *categoryService) checkNameAvailable(name string, selfID uint) error {
	existing, err := s.categoryRepo.GetByName(name)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}
	if existing.ID != selfID {
		return models.ErrorConflict{Message: "another category with the same name already exists"}
	}
	return nil
}
