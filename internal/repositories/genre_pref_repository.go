package repositories

import (
	"movieblend_backend/internal/models"

	"gorm.io/gorm"
)

// GenrePrefRepository работает с денормализованными счетчиками жанров,
// которые пересчитывает фоновый воркер.
type GenrePrefRepository interface {
	// ReplaceForUser атомарно заменяет все счетчики пользователя
	ReplaceForUser(userID string, prefs []models.UserGenrePref) error
	FindByUser(userID string) ([]models.UserGenrePref, error)
	// ListUserIDs возвращает пользователей, у которых есть хоть один плейлист
	// с фильмами (кандидаты на пересчет)
	ListUserIDs() ([]string, error)
}

type GenrePrefRepositoryImpl struct {
	db *gorm.DB
}

func NewGenrePrefRepository(db *gorm.DB) GenrePrefRepository {
	return &GenrePrefRepositoryImpl{db: db}
}

func (r *GenrePrefRepositoryImpl) ReplaceForUser(userID string, prefs []models.UserGenrePref) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).Delete(&models.UserGenrePref{}).Error; err != nil {
			return err
		}
		if len(prefs) == 0 {
			return nil
		}
		return tx.Create(&prefs).Error
	})
}

func (r *GenrePrefRepositoryImpl) FindByUser(userID string) ([]models.UserGenrePref, error) {
	var prefs []models.UserGenrePref
	err := r.db.Where("user_id = ?", userID).
		Order("watch_count DESC").
		Find(&prefs).Error
	return prefs, err
}

func (r *GenrePrefRepositoryImpl) ListUserIDs() ([]string, error) {
	var ids []string
	err := r.db.Model(&models.PlaylistMovie{}).
		Distinct("playlists.user_id").
		Joins("JOIN playlists ON playlists.id = playlist_movies.playlist_id").
		Where("playlists.deleted_at IS NULL").
		Pluck("playlists.user_id", &ids).Error
	return ids, err
}
