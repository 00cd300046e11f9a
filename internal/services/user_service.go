package services

import (
	"errors"

	"github.com/shirtstore/shirts-api/internal/models"
	"gorm.io/gorm"
)

var ErrUserAlreadyExists = errors.New("user_already_exists")

type UserService interface {
	CreateUser(user *models.User, password string) error
	GetUserByUsername(username string) (*models.User, error)
	GetUserByID(id uint) (*models.User, error)
	Authenticate(username, password string) (*models.User, bool)
}

type userService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) UserService {
	return &userService{db: db}
}

func (s *userService) CreateUser(user *models.User, password string) error {
	var existing models.User
	if err := s.db.Where("username = ? OR email = ?", user.Username, user.Email).First(&existing).Error; err == nil {
		return ErrUserAlreadyExists
	}

	if err := user.HashPassword(password); err != nil {
		return err
	}
	return s.db.Create(user).Error
}

func (s *userService) GetUserByUsername(username string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("username = ?", username).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *userService) GetUserByID(id uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// Authenticate verifies a username/password pair, failing closed on unknown
// users and hash mismatches alike.
func (s *userService) Authenticate(username, password string) (*models.User, bool) {
	user, err := s.GetUserByUsername(username)
	if err != nil || !user.CheckPassword(password) {
		return nil, false
	}
	return user, true
}
