package repositories

import (
	"errors"
	"time"

	"movieblend_backend/internal/models"

	"gorm.io/gorm"
)

var (
	// ErrRefreshTokenNotFound возвращается, когда refresh-токен не найден в БД
	ErrRefreshTokenNotFound = errors.New("refresh token not found")
)

// RefreshTokenRepository определяет интерфейс для операций с refresh-токенами
type RefreshTokenRepository interface {
	Create(token *models.RefreshToken) error
	FindByToken(tokenString string) (*models.RefreshToken, error)
	DeleteByToken(tokenString string) error
	DeleteByUserID(userID string) error
	CleanExpired() error
	CountByUserID(userID string) (int64, error)
}

type refreshTokenRepository struct {
	db *gorm.DB
}

// NewRefreshTokenRepository создает новый экземпляр RefreshTokenRepository
func NewRefreshTokenRepository(db *gorm.DB) RefreshTokenRepository {
	return &refreshTokenRepository{db: db}
}

func (r *refreshTokenRepository) Create(token *models.RefreshToken) error {
	return r.db.Create(token).Error
}

func (r *refreshTokenRepository) FindByToken(tokenString string) (*models.RefreshToken, error) {
	var token models.RefreshToken
	if err := r.db.Where("token = ?", tokenString).First(&token).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRefreshTokenNotFound
		}
		return nil, err
	}
	return &token, nil
}

func (r *refreshTokenRepository) DeleteByToken(tokenString string) error {
	result := r.db.Where("token = ?", tokenString).Delete(&models.RefreshToken{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		// Возвращаем ошибку, чтобы сервис мог ее обработать
		return ErrRefreshTokenNotFound
	}
	return nil
}

func (r *refreshTokenRepository) DeleteByUserID(userID string) error {
	return r.db.Where("user_id = ?", userID).Delete(&models.RefreshToken{}).Error
}

// CleanExpired удаляет все истекшие токены
func (r *refreshTokenRepository) CleanExpired() error {
	return r.db.Where("expires_at < ?", time.Now()).Delete(&models.RefreshToken{}).Error
}

func (r *refreshTokenRepository) CountByUserID(userID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.RefreshToken{}).
		Where("user_id = ? AND expires_at > ?", userID, time.Now()).
		Count(&count).Error
	return count, err
}
