package services

import (
	"strings"
	"time"

	"blogapi/models"

	"gorm.io/gorm"
)

// In-memory repository fakes backing the service tests. They reproduce the
// gorm contract the services rely on: ErrRecordNotFound on a miss and
// case-insensitive name lookups.

type fakeUserRepo struct {
	users  map[uint]*models.User
	nextID uint
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[uint]*models.User{}}
}

func (r *fakeUserRepo) Create(user *models.User) error {
	r.nextID++
	user.ID = r.nextID
	stored := *user
	r.users[user.ID] = &stored
	return nil
}

func (r *fakeUserRepo) GetByUsername(username string) (*models.User, error) {
	for _, user := range r.users {
		if strings.EqualFold(user.Username, username) {
			found := *user
			return &found, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) GetByID(id uint) (*models.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	found := *user
	return &found, nil
}

type fakeCategoryRepo struct {
	categories map[uint]*models.Category
	postCounts map[uint]int64
	nextID     uint
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{
		categories: map[uint]*models.Category{},
		postCounts: map[uint]int64{},
	}
}

func (r *fakeCategoryRepo) Create(category *models.Category) error {
	r.nextID++
	category.ID = r.nextID
	stored := *category
	r.categories[category.ID] = &stored
	return nil
}

func (r *fakeCategoryRepo) GetByID(id uint) (*models.Category, error) {
	category, ok := r.categories[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	found := *category
	return &found, nil
}

func (r *fakeCategoryRepo) GetByIDs(ids []uint) ([]models.Category, error) {
	var categories []models.Category
	for _, id := range ids {
		if category, ok := r.categories[id]; ok {
			categories = append(categories, *category)
		}
	}
	return categories, nil
}

func (r *fakeCategoryRepo) GetByName(name string) (*models.Category, error) {
	for _, category := range r.categories {
		if strings.EqualFold(category.Name, name) {
			found := *category
			return &found, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeCategoryRepo) GetAll() ([]models.Category, error) {
	var categories []models.Category
	for _, category := range r.categories {
		categories = append(categories, *category)
	}
	return categories, nil
}

func (r *fakeCategoryRepo) Update(category *models.Category) error {
	stored := *category
	r.categories[category.ID] = &stored
	return nil
}

func (r *fakeCategoryRepo) Delete(category *models.Category) error {
	delete(r.categories, category.ID)
	return nil
}

func (r *fakeCategoryRepo) CountPosts(categoryID uint) (int64, error) {
	return r.postCounts[categoryID], nil
}

type fakePostRepo struct {
	posts  map[uint]*models.Post
	nextID uint
}

func newFakePostRepo() *fakePostRepo {
	return &fakePostRepo{posts: map[uint]*models.Post{}}
}

func (r *fakePostRepo) Create(post *models.Post) error {
	r.nextID++
	post.ID = r.nextID
	if post.CreatedAt.IsZero() {
		post.CreatedAt = time.Now()
	}
	stored := *post
	r.posts[post.ID] = &stored
	return nil
}

func (r *fakePostRepo) GetByID(id uint) (*models.Post, error) {
	post, ok := r.posts[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	found := *post
	return &found, nil
}

func (r *fakePostRepo) GetList(searchText string, publishDate string) ([]models.Post, error) {
	var posts []models.Post
	for _, post := range r.posts {
		if searchText != "" &&
			!strings.Contains(strings.ToLower(post.Title), strings.ToLower(searchText)) &&
			!strings.Contains(strings.ToLower(post.Content), strings.ToLower(searchText)) {
			continue
		}
		if publishDate != "" {
			if post.PublishedAt == nil || post.PublishedAt.Format("2006-01-02") != publishDate {
				continue
			}
		}
		posts = append(posts, *post)
	}
	return posts, nil
}

func (r *fakePostRepo) Update(post *models.Post, categories []models.Category) error {
	stored := *post
	stored.Categories = categories
	r.posts[post.ID] = &stored
	return nil
}

func (r *fakePostRepo) Delete(post *models.Post) error {
	delete(r.posts, post.ID)
	return nil
}
