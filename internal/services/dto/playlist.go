package dto

import "time"

// PlaylistCreateRequest - создание пользовательского плейлиста.
// Имена системных плейлистов запрещены кастомным правилом.
type PlaylistCreateRequest struct {
	Name string `json:"name" binding:"required,min=1,max=64" validate:"not-reserved-playlist"`
}

// PlaylistRenameRequest - переименование плейлиста
type PlaylistRenameRequest struct {
	Name string `json:"name" binding:"required,min=1,max=64" validate:"not-reserved-playlist"`
}

// PlaylistAddMovieRequest - добавление фильма в плейлист
type PlaylistAddMovieRequest struct {
	MovieID int64 `json:"movie_id" binding:"required,gt=0"`
}

// PlaylistResponse - плейлист с вложенными фильмами
type PlaylistResponse struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	IsDefault bool       `json:"is_default"`
	Movies    []MovieDTO `json:"movies"`
	CreatedAt time.Time  `json:"created_at"`
}

// PlaylistSummary - плейлист без фильмов, для списков
type PlaylistSummary struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	IsDefault  bool   `json:"is_default"`
	MovieCount int    `json:"movie_count"`
}

// MarkMovieResponse - результат переключения watched/liked
type MarkMovieResponse struct {
	MovieID int64 `json:"movie_id"`
	Marked  bool  `json:"marked"` // true если фильм добавлен, false если снят
}
