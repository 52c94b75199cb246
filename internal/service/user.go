package service

import (
	"StockKeeper/internal/model"
	"StockKeeper/internal/repo"
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserService — авторизация и администрирование пользователей.
type UserService struct {
	repo repo.UserRepository
}

func NewUserService(r repo.UserRepository) *UserService {
	return &UserService{repo: r}
}

// Login проверяет имя и пароль. Отключённые пользователи не проходят.
// Наружу в любом случае уходит одна и та же ошибка, чтобы не подсказывать,
// что именно не совпало.
func (s *UserService) Login(ctx context.Context, name, password string) (*model.User, error) {
	u, err := s.repo.GetUserByName(ctx, name)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !u.IsActive {
		return nil, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}

// GetByID возвращает пользователя по id.
func (s *UserService) GetByID(ctx context.Context, id int64) (*model.User, error) {
	u, err := s.repo.GetUserByID(ctx, id)
	if err != nil {
		return nil, translateNotFound(err)
	}
	return u, nil
}

// CreateUser создаёт нового пользователя. Доступно только администраторам.
func (s *UserService) CreateUser(ctx context.Context, actorID int64, name, post, password string) (*model.User, error) {
	actor, err := s.repo.GetUserByID(ctx, actorID)
	if err != nil {
		return nil, translateNotFound(err)
	}
	if !actor.IsAdmin {
		return nil, ErrForbidden
	}

	if existing, err := s.repo.GetUserByName(ctx, name); err == nil && existing != nil {
		return nil, ErrNameTaken
	} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	u, err := s.repo.CreateUser(ctx, &model.User{
		Name:     name,
		Post:     post,
		Password: string(hash),
		IsActive: true,
	})
	if err != nil {
		if isDuplicateKey(err) {
			return nil, ErrNameTaken
		}
		return nil, err
	}
	return u, nil
}
