package models

import "movieblend_backend/internal/algorithms"

// Playlist - именованный список фильмов пользователя. Зарезервированные
// списки "Watched" и "Liked" создаются автоматически при регистрации
// и не могут быть удалены (IsDefault).
type Playlist struct {
	BaseModelWithDeleted
	UserID    string `gorm:"not null;index;uniqueIndex:idx_user_playlist_name"`
	Name      string `gorm:"not null;uniqueIndex:idx_user_playlist_name"`
	IsDefault bool   `gorm:"default:false"`

	// Relations
	Entries []PlaylistMovie `gorm:"foreignKey:PlaylistID"`
}

// IsReserved сообщает, является ли плейлист одним из системных.
func (p *Playlist) IsReserved() bool {
	return p.Name == algorithms.WatchedPlaylistName || p.Name == algorithms.LikedPlaylistName
}

// PlaylistMovie - вхождение фильма в плейлист с позицией для сортировки.
type PlaylistMovie struct {
	BaseModel
	PlaylistID string `gorm:"not null;index;uniqueIndex:idx_playlist_movie"`
	MovieID    int64  `gorm:"not null;autoIncrement:false;uniqueIndex:idx_playlist_movie"`
	Position   int    `gorm:"default:0"`

	// Relations
	Movie *Movie `gorm:"foreignKey:MovieID"`
}
