package repositories

import (
	"errors"

	"movieblend_backend/internal/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var (
	ErrMovieNotFound      = errors.New("movie not found")
	ErrMovieAlreadyExists = errors.New("movie already exists")
)

type MovieRepository interface {
	FindByID(id int64) (*models.Movie, error)
	FindByIDs(ids []int64) ([]models.Movie, error)
	Create(movie *models.Movie) error
	Update(movie *models.Movie) error
	Delete(id int64) error
	Search(filter MovieFilter) ([]models.Movie, int64, error)
}

type MovieFilter struct {
	Query    string
	GenreID  int64
	Year     int
	Page     int
	PageSize int
}

type MovieRepositoryImpl struct {
	db *gorm.DB
}

func NewMovieRepository(db *gorm.DB) MovieRepository {
	return &MovieRepositoryImpl{db: db}
}

func (r *MovieRepositoryImpl) FindByID(id int64) (*models.Movie, error) {
	var movie models.Movie
	err := r.db.First(&movie, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMovieNotFound
		}
		return nil, err
	}
	return &movie, nil
}

func (r *MovieRepositoryImpl) FindByIDs(ids []int64) ([]models.Movie, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var movies []models.Movie
	err := r.db.Where("id IN ?", ids).Find(&movies).Error
	return movies, err
}

func (r *MovieRepositoryImpl) Create(movie *models.Movie) error {
	var existing models.Movie
	if err := r.db.Where("id = ?", movie.ID).First(&existing).Error; err == nil {
		return ErrMovieAlreadyExists
	}

	return r.db.Create(movie).Error
}

func (r *MovieRepositoryImpl) Update(movie *models.Movie) error {
	result := r.db.Model(movie).Updates(map[string]interface{}{
		"title":        movie.Title,
		"overview":     movie.Overview,
		"release_year": movie.ReleaseYear,
		"vote_average": movie.VoteAverage,
		"poster_path":  movie.PosterPath,
		"genre_ids":    movie.GenreIDs,
	})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrMovieNotFound
	}
	return nil
}

func (r *MovieRepositoryImpl) Delete(id int64) error {
	// Транзакция: фильм выносится и из всех плейлистов
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("movie_id = ?", id).Delete(&models.PlaylistMovie{}).Error; err != nil {
			return err
		}

		result := tx.Where("id = ?", id).Delete(&models.Movie{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrMovieNotFound
		}
		return nil
	})
}

func (r *MovieRepositoryImpl) Search(filter MovieFilter) ([]models.Movie, int64, error) {
	var movies []models.Movie
	query := r.db.Model(&models.Movie{})

	if filter.Query != "" {
		query = query.Where("title ILIKE ?", "%"+filter.Query+"%")
	}
	if filter.GenreID > 0 {
		// genre_ids хранится как JSON-массив, ищем вхождение
		query = query.Where(datatypes.JSONArrayQuery("genre_ids").Contains(filter.GenreID))
	}
	if filter.Year > 0 {
		query = query.Where("release_year = ?", filter.Year)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	pageSize := filter.PageSize
	if pageSize < 1 {
		pageSize = 20
	}

	err := query.Order("vote_average DESC, title ASC").
		Limit(pageSize).Offset((page - 1) * pageSize).
		Find(&movies).Error

	return movies, total, err
}
