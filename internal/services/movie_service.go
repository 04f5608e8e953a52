package services

import (
	"movieblend_backend/internal/models"
	"movieblend_backend/internal/repositories"
	"movieblend_backend/internal/services/dto"
	"movieblend_backend/pkg/apperrors"
)

type MovieService interface {
	GetByID(movieID int64) (*dto.MovieDTO, error)
	Create(req *dto.MovieCreateRequest) (*dto.MovieDTO, error)
	Delete(movieID int64) error
	Search(filter dto.MovieSearchFilter) (*dto.MovieListResponse, error)
	ListGenres() ([]dto.GenreDTO, error)
}

type MovieServiceImpl struct {
	movieRepo repositories.MovieRepository
	genreRepo repositories.GenreRepository
}

func NewMovieService(
	movieRepo repositories.MovieRepository,
	genreRepo repositories.GenreRepository,
) MovieService {
	return &MovieServiceImpl{
		movieRepo: movieRepo,
		genreRepo: genreRepo,
	}
}

func (s *MovieServiceImpl) GetByID(movieID int64) (*dto.MovieDTO, error) {
	movie, err := s.movieRepo.FindByID(movieID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrMovieNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	m := buildMovieDTO(movie)
	return &m, nil
}

func (s *MovieServiceImpl) Create(req *dto.MovieCreateRequest) (*dto.MovieDTO, error) {
	// Все жанры должны существовать в справочнике
	for _, genreID := range req.GenreIDs {
		if _, err := s.genreRepo.FindByID(genreID); err != nil {
			if apperrors.Is(err, repositories.ErrGenreNotFound) {
				return nil, apperrors.NewBadRequestError("Unknown genre id")
			}
			return nil, apperrors.InternalError(err)
		}
	}

	movie := &models.Movie{
		ID:          req.ID,
		Title:       req.Title,
		Overview:    req.Overview,
		ReleaseYear: req.ReleaseYear,
		VoteAverage: req.VoteAverage,
		PosterPath:  req.PosterPath,
	}
	movie.SetGenreIDs(req.GenreIDs)

	if err := s.movieRepo.Create(movie); err != nil {
		if apperrors.Is(err, repositories.ErrMovieAlreadyExists) {
			return nil, apperrors.ErrAlreadyExists(err)
		}
		return nil, apperrors.InternalError(err)
	}

	m := buildMovieDTO(movie)
	return &m, nil
}

func (s *MovieServiceImpl) Delete(movieID int64) error {
	if err := s.movieRepo.Delete(movieID); err != nil {
		if apperrors.Is(err, repositories.ErrMovieNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *MovieServiceImpl) Search(filter dto.MovieSearchFilter) (*dto.MovieListResponse, error) {
	page := filter.Page
	if page < 1 {
		page = 1
	}

	movies, total, err := s.movieRepo.Search(repositories.MovieFilter{
		Query:    filter.Query,
		GenreID:  filter.GenreID,
		Year:     filter.Year,
		Page:     page,
		PageSize: filter.PageSize,
	})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	result := make([]dto.MovieDTO, 0, len(movies))
	for i := range movies {
		result = append(result, buildMovieDTO(&movies[i]))
	}

	return &dto.MovieListResponse{
		Movies: result,
		Total:  total,
		Page:   page,
	}, nil
}

func (s *MovieServiceImpl) ListGenres() ([]dto.GenreDTO, error) {
	genres, err := s.genreRepo.FindAll()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	result := make([]dto.GenreDTO, 0, len(genres))
	for _, g := range genres {
		result = append(result, dto.GenreDTO{ID: g.ID, Name: g.Name})
	}
	return result, nil
}

func buildMovieDTO(movie *models.Movie) dto.MovieDTO {
	return dto.MovieDTO{
		ID:          movie.ID,
		Title:       movie.Title,
		Overview:    movie.Overview,
		ReleaseYear: movie.ReleaseYear,
		VoteAverage: movie.VoteAverage,
		PosterPath:  movie.PosterPath,
		GenreIDs:    movie.GetGenreIDs(),
	}
}
