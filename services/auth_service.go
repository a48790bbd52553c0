package services

import (
	"errors"

	"blogapi/models"
	"blogapi/repositories"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService interface {
	Register(req models.RegisterRequest) (*models.User, error)
	Login(req models.LoginRequest) (*models.AuthResponse, error)
	GetUserByID(id uint) (*models.User, error)
}

type authService struct {
	userRepo repositories.UserRepository
	tokens   TokenService
}

func NewAuthService(userRepo repositories.UserRepository, tokens TokenService) AuthService {
	return &authService{userRepo: userRepo, tokens: tokens}
}

func (s *authService) Register(req models.RegisterRequest) (*models.User, error) {
	// Case-insensitive lookup; "Alice" and "alice" are the same user.
	_, err := s.userRepo.GetByUsername(req.Username)
	if err == nil {
		return nil, models.ErrorConflict{Message: "user already exists"}
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username: req.Username,
		Password: string(hashedPassword),
		Role:     models.RoleUser,
	}

	if err := s.userRepo.Create(user); err != nil {
		// The unique index on LOWER(username) closes the race between the
		// pre-check and the insert.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, models.ErrorConflict{Message: "user already exists"}
		}
		return nil, err
	}

	return user, nil
}

func (s *authService) Login(req models.LoginRequest) (*models.AuthResponse, error) {
	user, err := s.userRepo.GetByUsername(req.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Same failure as a wrong password, so callers cannot probe
			// which usernames exist.
			return nil, models.ErrorUnauthorized{Message: "invalid credentials"}
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, models.ErrorUnauthorized{Message: "invalid credentials"}
	}

	token, err := s.tokens.Issue(models.Identity{
		UserID:   user.ID,
		Username: user.Username,
		Role:     user.Role,
	})
	if err != nil {
		return nil, err
	}

	return &models.AuthResponse{
		Token: token,
		User:  *user,
	}, nil
}

func (s *authService) GetUserByID(id uint) (*models.User, error) {
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrorNotFound{Message: "user not found"}
		}
		return nil, err
	}
	return user, nil
}
