package auth

import (
	"context"
	"errors"
	"time"

	"github.com/shirtstore/shirts-api/internal/models"
	"gorm.io/gorm"
)

type GormApplicationStore struct {
	db *gorm.DB
}

func NewGormApplicationStore(db *gorm.DB) *GormApplicationStore {
	return &GormApplicationStore{db: db}
}

func (s *GormApplicationStore) GetByClientID(ctx context.Context, clientID string) (*models.Application, error) {
	var app models.Application
	err := s.db.WithContext(ctx).Where("client_id = ?", clientID).First(&app).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &app, nil
}

func (s *GormApplicationStore) Create(ctx context.Context, app *models.Application) error {
	return s.db.WithContext(ctx).Create(app).Error
}

type GormRefreshTokenStore struct {
	db *gorm.DB
}

func NewGormRefreshTokenStore(db *gorm.DB) *GormRefreshTokenStore {
	return &GormRefreshTokenStore{db: db}
}

func (s *GormRefreshTokenStore) Create(ctx context.Context, token *models.RefreshToken) error {
	return s.db.WithContext(ctx).Create(token).Error
}

func (s *GormRefreshTokenStore) GetByHash(ctx context.Context, hash, clientID string) (*models.RefreshToken, error) {
	query := s.db.WithContext(ctx).Where("token = ?", hash)
	if clientID != "" {
		query = query.Where("client_id = ?", clientID)
	}

	var token models.RefreshToken
	err := query.First(&token).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &token, nil
}

func (s *GormRefreshTokenStore) RevokeByHash(ctx context.Context, hash, revokedByIP string, at time.Time) (bool, error) {
	return revokeByHash(s.db.WithContext(ctx), hash, revokedByIP, at)
}

// revokeByHash is a conditional UPDATE: the is_revoked guard in the WHERE
// clause makes it a compare-and-swap, so two racing revocations of the same
// hash cannot both observe a transition.
func revokeByHash(db *gorm.DB, hash, revokedByIP string, at time.Time) (bool, error) {
	result := db.Model(&models.RefreshToken{}).
		Where("token = ? AND is_revoked = ?", hash, false).
		Updates(map[string]interface{}{
			"is_revoked":    true,
			"revoked_at":    at,
			"revoked_by_ip": revokedByIP,
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected == 1, nil
}

func (s *GormRefreshTokenStore) Rotate(ctx context.Context, oldHash, revokedByIP string, at time.Time, replacement *models.RefreshToken) (bool, error) {
	rotated := false
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ok, err := revokeByHash(tx, oldHash, revokedByIP, at)
		if err != nil {
			return err
		}
		if !ok {
			// Lost the race, or the token was already terminal. No
			// replacement gets created.
			return nil
		}
		if err := tx.Create(replacement).Error; err != nil {
			return err
		}
		rotated = true
		return nil
	})
	if err != nil {
		return false, err
	}
	return rotated, nil
}

func (s *GormRefreshTokenStore) DeleteExpired(ctx context.Context, cutoff time.Time) (int64, error) {
	result := s.db.WithContext(ctx).
		Where("expires_at < ?", cutoff).
		Delete(&models.RefreshToken{})
	return result.RowsAffected, result.Error
}
