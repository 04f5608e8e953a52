package repositories

import (
	"errors"

	"movieblend_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrPlaylistNotFound      = errors.New("playlist not found")
	ErrPlaylistNameTaken     = errors.New("playlist name already taken")
	ErrPlaylistEntryNotFound = errors.New("movie not found in playlist")
	ErrPlaylistEntryExists   = errors.New("movie already in playlist")
)

type PlaylistRepository interface {
	Create(playlist *models.Playlist) error
	FindByID(id string) (*models.Playlist, error)
	FindByUserAndName(userID, name string) (*models.Playlist, error)
	// ListByUser возвращает плейлисты без вложенных фильмов
	ListByUser(userID string) ([]models.Playlist, error)
	// ListByUserWithMovies возвращает плейлисты с фильмами, для сборки коллекции
	ListByUserWithMovies(userID string) ([]models.Playlist, error)
	Rename(id, name string) error
	Delete(id string) error

	AddMovie(playlistID string, movieID int64) error
	RemoveMovie(playlistID string, movieID int64) error
	HasMovie(playlistID string, movieID int64) (bool, error)
	CountMovies(playlistID string) (int64, error)
}

type PlaylistRepositoryImpl struct {
	db *gorm.DB
}

func NewPlaylistRepository(db *gorm.DB) PlaylistRepository {
	return &PlaylistRepositoryImpl{db: db}
}

func (r *PlaylistRepositoryImpl) Create(playlist *models.Playlist) error {
	var existing models.Playlist
	err := r.db.Where("user_id = ? AND name = ?", playlist.UserID, playlist.Name).
		First(&existing).Error
	if err == nil {
		return ErrPlaylistNameTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	return r.db.Create(playlist).Error
}

func (r *PlaylistRepositoryImpl) FindByID(id string) (*models.Playlist, error) {
	var playlist models.Playlist
	err := r.db.Preload("Entries", func(db *gorm.DB) *gorm.DB {
		return db.Order("playlist_movies.position ASC, playlist_movies.created_at ASC")
	}).Preload("Entries.Movie").
		First(&playlist, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPlaylistNotFound
		}
		return nil, err
	}
	return &playlist, nil
}

func (r *PlaylistRepositoryImpl) FindByUserAndName(userID, name string) (*models.Playlist, error) {
	var playlist models.Playlist
	err := r.db.Where("user_id = ? AND name = ?", userID, name).First(&playlist).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPlaylistNotFound
		}
		return nil, err
	}
	return &playlist, nil
}

func (r *PlaylistRepositoryImpl) ListByUser(userID string) ([]models.Playlist, error) {
	var playlists []models.Playlist
	err := r.db.Where("user_id = ?", userID).
		Order("is_default DESC, created_at ASC").
		Find(&playlists).Error
	return playlists, err
}

func (r *PlaylistRepositoryImpl) ListByUserWithMovies(userID string) ([]models.Playlist, error) {
	var playlists []models.Playlist
	err := r.db.Preload("Entries", func(db *gorm.DB) *gorm.DB {
		return db.Order("playlist_movies.position ASC, playlist_movies.created_at ASC")
	}).Preload("Entries.Movie").
		Where("user_id = ?", userID).
		Order("is_default DESC, created_at ASC").
		Find(&playlists).Error
	return playlists, err
}

func (r *PlaylistRepositoryImpl) Rename(id, name string) error {
	result := r.db.Model(&models.Playlist{}).Where("id = ?", id).Update("name", name)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPlaylistNotFound
	}
	return nil
}

func (r *PlaylistRepositoryImpl) Delete(id string) error {
	// Транзакция: записи плейлиста удаляются вместе с ним
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("playlist_id = ?", id).Delete(&models.PlaylistMovie{}).Error; err != nil {
			return err
		}

		result := tx.Where("id = ?", id).Delete(&models.Playlist{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrPlaylistNotFound
		}
		return nil
	})
}

func (r *PlaylistRepositoryImpl) AddMovie(playlistID string, movieID int64) error {
	exists, err := r.HasMovie(playlistID, movieID)
	if err != nil {
		return err
	}
	if exists {
		return ErrPlaylistEntryExists
	}

	// Позиция в конце списка
	var maxPos int
	r.db.Model(&models.PlaylistMovie{}).
		Where("playlist_id = ?", playlistID).
		Select("COALESCE(MAX(position), 0)").
		Scan(&maxPos)

	entry := &models.PlaylistMovie{
		PlaylistID: playlistID,
		MovieID:    movieID,
		Position:   maxPos + 1,
	}
	return r.db.Create(entry).Error
}

func (r *PlaylistRepositoryImpl) RemoveMovie(playlistID string, movieID int64) error {
	result := r.db.Where("playlist_id = ? AND movie_id = ?", playlistID, movieID).
		Delete(&models.PlaylistMovie{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPlaylistEntryNotFound
	}
	return nil
}

func (r *PlaylistRepositoryImpl) HasMovie(playlistID string, movieID int64) (bool, error) {
	var count int64
	err := r.db.Model(&models.PlaylistMovie{}).
		Where("playlist_id = ? AND movie_id = ?", playlistID, movieID).
		Count(&count).Error
	return count > 0, err
}

func (r *PlaylistRepositoryImpl) CountMovies(playlistID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.PlaylistMovie{}).
		Where("playlist_id = ?", playlistID).
		Count(&count).Error
	return count, err
}
