package services

import (
	"errors"
	"time"

	"blogapi/models"
	"blogapi/repositories"

	"gorm.io/gorm"
)

type PostService interface {
	CreatePost(req models.PostRequest, identity models.Identity) (*models.Post, error)
	GetPost(id uint) (*models.Post, error)
	GetPosts(params models.PostListParams) ([]models.Post, error)
	UpdatePost(id uint, req models.PostRequest, identity models.Identity) error
	DeletePost(id uint, identity models.Identity) error
}

type postService struct {
	postRepo     repositories.PostRepository
	categoryRepo repositories.CategoryRepository
	guard        AuthorizationGuard
}

func NewPostService(postRepo repositories.PostRepository, categoryRepo repositories.CategoryRepository) PostService {
	return &postService{
		postRepo:     postRepo,
		categoryRepo: categoryRepo,
	}
}

func (s *postService) CreatePost(req models.PostRequest, identity models.Identity) (*models.Post, error) {
	if !req.Status.Valid() {
		return nil, models.ErrorValidation{Message: "status must be Draft or Published"}
	}

	categories, err := s.resolveCategories(req.CategoryIDs)
	if err != nil {
		return nil, err
	}

	post := &models.Post{
		Title:       req.Title,
		Content:     req.Content,
		Status:      req.Status,
		PublishedAt: req.PublishedAt,
		AuthorID:    identity.UserID,
		Categories:  categories,
	}

	if err := s.postRepo.Create(post); err != nil {
		// A category deleted between resolution and insert trips the
		// reference constraint.
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return nil, models.ErrorValidation{Message: "one or more categories not found"}
		}
		return nil, err
	}

	return s.GetPost(post.ID)
}

func (s *postService) GetPost(id uint) (*models.Post, error) {
	post, err := s.postRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrorNotFound{Message: "post not found"}
		}
		return nil, err
	}
	return post, nil
}

func (s *postService) GetPosts(params models.PostListParams) ([]models.Post, error) {
	if params.PublishDate != "" {
		if _, err := time.Parse("2006-01-02", params.PublishDate); err != nil {
			return nil, models.ErrorValidation{Message: "publish_date must be formatted as YYYY-MM-DD"}
		}
	}
	return s.postRepo.GetList(params.SearchText, params.PublishDate)
}

func (s *postService) UpdatePost(id uint, req models.PostRequest, identity models.Identity) error {
	post, err := s.GetPost(id)
	if err != nil {
		return err
	}

	if err := s.guard.AuthorizeMutation(identity, post.AuthorID); err != nil {
		return err
	}

	if !req.Status.Valid() {
		return models.ErrorValidation{Message: "status must be Draft or Published"}
	}

	categories, err := s.resolveCategories(req.CategoryIDs)
	if err != nil {
		return err
	}

	// AuthorID and CreatedAt are immutable; only the mutable fields move.
	post.Title = req.Title
	post.Content = req.Content
	post.Status = req.Status
	post.PublishedAt = req.PublishedAt

	if err := s.postRepo.Update(post, categories); err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return models.ErrorValidation{Message: "one or more categories not found"}
		}
		return err
	}

	return nil
}

func (s *postService) DeletePost(id uint, identity models.Identity) error {
	post, err := s.GetPost(id)
	if err != nil {
		return err
	}

	if err := s.guard.AuthorizeMutation(identity, post.AuthorID); err != nil {
		return err
	}

	return s.postRepo.Delete(post)
}

// resolveCategories resolves every id or fails the whole operation. Nothing
// is silently dropped: one unknown id rejects the full set.
func (s *postService) resolveCategories(ids []uint) ([]models.Category, error) {
	unique := make([]uint, 0, len(ids))
	seen := make(map[uint]bool, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			unique = append(unique, id)
		}
	}

	categories, err := s.categoryRepo.GetByIDs(unique)
	if err != nil {
		return nil, err
	}
	if len(categories) != len(unique) {
		return nil, models.ErrorValidation{Message: "one or more categories not found"}
	}

	return categories, nil
}
