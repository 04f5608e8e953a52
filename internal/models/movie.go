package models

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
)

// Genre - фиксированный справочник жанров (18 жанров TMDB).
// Засеивается миграцией, ядро получает его через GenreLookup.
type Genre struct {
	ID   int64  `gorm:"primaryKey;autoIncrement:false" json:"genre_id"`
	Name string `gorm:"uniqueIndex;not null" json:"name"`
}

// Movie - строка каталога. ID совпадает с внешним (TMDB) идентификатором,
// поэтому без uuid.
type Movie struct {
	ID          int64          `gorm:"primaryKey;autoIncrement:false" json:"movie_id"`
	Title       string         `gorm:"not null;index" json:"title"`
	Overview    string         `json:"overview,omitempty"`
	ReleaseYear int            `gorm:"index" json:"release_year,omitempty"`
	VoteAverage float64        `gorm:"default:0" json:"vote_average"`
	PosterPath  string         `json:"poster_path,omitempty"`
	GenreIDs    datatypes.JSON `gorm:"type:jsonb" json:"genre_ids"` // [28, 35]
	CreatedAt   time.Time      `gorm:"default:now()" json:"-"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime" json:"-"`
}

// GetGenreIDs возвращает жанры фильма как slice ID
func (m *Movie) GetGenreIDs() []int64 {
	var ids []int64
	if len(m.GenreIDs) > 0 {
		_ = json.Unmarshal(m.GenreIDs, &ids)
	}
	return ids
}

// SetGenreIDs устанавливает жанры фильма
func (m *Movie) SetGenreIDs(ids []int64) {
	data, _ := json.Marshal(ids)
	m.GenreIDs = datatypes.JSON(data)
}

// UserGenrePref - денормализованный счетчик голосов по жанрам,
// пересчитывается фоновым воркером для быстрых выборок "самый
// просматриваемый жанр".
type UserGenrePref struct {
	UserID     string    `gorm:"primaryKey" json:"user_id"`
	GenreID    int64     `gorm:"primaryKey;autoIncrement:false" json:"genre_id"`
	WatchCount int       `gorm:"default:0" json:"watch_count"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" json:"-"`
}
