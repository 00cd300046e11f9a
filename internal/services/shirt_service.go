package services

import (
	"github.com/shirtstore/shirts-api/internal/models"
	"gorm.io/gorm"
)

// ShirtService provides methods to interact with the shirt inventory
type ShirtService interface {
	// GetAllShirts retrieves all shirts from the database
	GetAllShirts() ([]models.Shirt, error)
	// GetShirtByID retrieves a shirt by its ID
	GetShirtByID(id int) (models.Shirt, error)
	// CreateShirt creates a new shirt in the database
	CreateShirt(shirt models.Shirt) (models.Shirt, error)
	// UpdateShirt updates an existing shirt in the database
	UpdateShirt(shirt models.Shirt) (models.Shirt, error)
	// DeleteShirt deletes a shirt from the database by its ID
	DeleteShirt(id int) (models.Shirt, error)
}

// shirtService is the implementation of the ShirtService interface
type shirtService struct {
	db *gorm.DB
}

// NewShirtService creates a new instance of ShirtService
func NewShirtService(db *gorm.DB) ShirtService {
	return &shirtService{db: db}
}

func (s *shirtService) GetAllShirts() ([]models.Shirt, error) {
	var shirts []models.Shirt
	if err := s.db.Find(&shirts).Error; err != nil {
		return nil, err
	}
	return shirts, nil
}

func (s *shirtService) GetShirtByID(id int) (models.Shirt, error) {
	var shirt models.Shirt
	if err := s.db.First(&shirt, id).Error; err != nil {
		return models.Shirt{}, err
	}
	return shirt, nil
}

func (s *shirtService) CreateShirt(shirt models.Shirt) (models.Shirt, error) {
	if err := s.db.Create(&shirt).Error; err != nil {
		return models.Shirt{}, err
	}
	return shirt, nil
}

func (s *shirtService) UpdateShirt(shirt models.Shirt) (models.Shirt, error) {
	if err := s.db.Save(&shirt).Error; err != nil {
		return models.Shirt{}, err
	}
	return shirt, nil
}

func (s *shirtService) DeleteShirt(id int) (models.Shirt, error) {
	shirt, err := s.GetShirtByID(id)
	if err != nil {
		return models.Shirt{}, err
	}
	if err := s.db.Delete(&models.Shirt{}, id).Error; err != nil {
		return models.Shirt{}, err
	}
	return shirt, nil
}
