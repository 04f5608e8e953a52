package dto

// GenreDTO - элемент справочника жанров
type GenreDTO struct {
	ID   int64  `json:"genre_id"`
	Name string `json:"name"`
}

// MovieDTO - карточка фильма в ответах API
type MovieDTO struct {
	ID          int64   `json:"movie_id"`
	Title       string  `json:"title"`
	Overview    string  `json:"overview,omitempty"`
	ReleaseYear int     `json:"release_year,omitempty"`
	VoteAverage float64 `json:"vote_average"`
	PosterPath  string  `json:"poster_path,omitempty"`
	GenreIDs    []int64 `json:"genre_ids"`
}

// MovieCreateRequest - добавление фильма в каталог (admin)
type MovieCreateRequest struct {
	ID          int64   `json:"movie_id" binding:"required,gt=0"`
	Title       string  `json:"title" binding:"required,max=255"`
	Overview    string  `json:"overview" binding:"omitempty,max=2000"`
	ReleaseYear int     `json:"release_year" binding:"omitempty,gte=1888"`
	VoteAverage float64 `json:"vote_average" binding:"omitempty,gte=0,lte=10"`
	PosterPath  string  `json:"poster_path" binding:"omitempty,max=255"`
	GenreIDs    []int64 `json:"genre_ids" binding:"required,min=1"`
}

// MovieSearchFilter - фильтр каталога
type MovieSearchFilter struct {
	Query    string `form:"q" binding:"omitempty,min=1"`
	GenreID  int64  `form:"genre_id" binding:"omitempty,gt=0"`
	Year     int    `form:"year" binding:"omitempty,gte=1888"`
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
}

// MovieListResponse - страница каталога
type MovieListResponse struct {
	Movies []MovieDTO `json:"movies"`
	Total  int64      `json:"total"`
	Page   int        `json:"page"`
}
