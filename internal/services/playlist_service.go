package services

import (
	"movieblend_backend/internal/algorithms"
	"movieblend_backend/internal/models"
	"movieblend_backend/internal/repositories"
	"movieblend_backend/internal/services/dto"
	"movieblend_backend/pkg/apperrors"
)

type PlaylistService interface {
	Create(userID string, req *dto.PlaylistCreateRequest) (*dto.PlaylistResponse, error)
	Get(userID, playlistID string) (*dto.PlaylistResponse, error)
	List(userID string) ([]dto.PlaylistSummary, error)
	Rename(userID, playlistID string, req *dto.PlaylistRenameRequest) (*dto.PlaylistResponse, error)
	Delete(userID, playlistID string) error

	AddMovie(userID, playlistID string, movieID int64) error
	RemoveMovie(userID, playlistID string, movieID int64) error

	// ToggleWatched/ToggleLiked переключают фильм в системных плейлистах
	ToggleWatched(userID string, movieID int64) (*dto.MarkMovieResponse, error)
	ToggleLiked(userID string, movieID int64) (*dto.MarkMovieResponse, error)

	// LoadCollection собирает коллекцию пользователя для алгоритмов blend
	LoadCollection(userID string) (algorithms.UserMovieCollection, error)
}

type PlaylistServiceImpl struct {
	playlistRepo repositories.PlaylistRepository
	movieRepo    repositories.MovieRepository
}

func NewPlaylistService(
	playlistRepo repositories.PlaylistRepository,
	movieRepo repositories.MovieRepository,
) PlaylistService {
	return &PlaylistServiceImpl{
		playlistRepo: playlistRepo,
		movieRepo:    movieRepo,
	}
}

func (s *PlaylistServiceImpl) Create(userID string, req *dto.PlaylistCreateRequest) (*dto.PlaylistResponse, error) {
	if isReservedName(req.Name) {
		return nil, apperrors.ErrReservedPlaylistName
	}

	playlist := &models.Playlist{
		UserID: userID,
		Name:   req.Name,
	}

	if err := s.playlistRepo.Create(playlist); err != nil {
		if apperrors.Is(err, repositories.ErrPlaylistNameTaken) {
			return nil, apperrors.ErrPlaylistNameTaken
		}
		return nil, apperrors.InternalError(err)
	}

	return buildPlaylistResponse(playlist), nil
}

func (s *PlaylistServiceImpl) Get(userID, playlistID string) (*dto.PlaylistResponse, error) {
	playlist, err := s.loadOwned(userID, playlistID)
	if err != nil {
		return nil, err
	}
	return buildPlaylistResponse(playlist), nil
}

func (s *PlaylistServiceImpl) List(userID string) ([]dto.PlaylistSummary, error) {
	playlists, err := s.playlistRepo.ListByUser(userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	result := make([]dto.PlaylistSummary, 0, len(playlists))
	for i := range playlists {
		count, err := s.playlistRepo.CountMovies(playlists[i].ID)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		result = append(result, dto.PlaylistSummary{
			ID:         playlists[i].ID,
			Name:       playlists[i].Name,
			IsDefault:  playlists[i].IsDefault,
			MovieCount: int(count),
		})
	}
	return result, nil
}

func (s *PlaylistServiceImpl) Rename(userID, playlistID string, req *dto.PlaylistRenameRequest) (*dto.PlaylistResponse, error) {
	if isReservedName(req.Name) {
		return nil, apperrors.ErrReservedPlaylistName
	}

	playlist, err := s.loadOwned(userID, playlistID)
	if err != nil {
		return nil, err
	}

	if playlist.IsReserved() || playlist.IsDefault {
		return nil, apperrors.ErrReservedPlaylist
	}

	if err := s.playlistRepo.Rename(playlistID, req.Name); err != nil {
		return nil, apperrors.InternalError(err)
	}
	playlist.Name = req.Name

	return buildPlaylistResponse(playlist), nil
}

func (s *PlaylistServiceImpl) Delete(userID, playlistID string) error {
	playlist, err := s.loadOwned(userID, playlistID)
	if err != nil {
		return err
	}

	if playlist.IsReserved() || playlist.IsDefault {
		return apperrors.ErrReservedPlaylist
	}

	if err := s.playlistRepo.Delete(playlistID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *PlaylistServiceImpl) AddMovie(userID, playlistID string, movieID int64) error {
	if _, err := s.loadOwned(userID, playlistID); err != nil {
		return err
	}

	if _, err := s.movieRepo.FindByID(movieID); err != nil {
		if apperrors.Is(err, repositories.ErrMovieNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}

	if err := s.playlistRepo.AddMovie(playlistID, movieID); err != nil {
		if apperrors.Is(err, repositories.ErrPlaylistEntryExists) {
			return apperrors.ErrMovieAlreadyInPlaylist
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *PlaylistServiceImpl) RemoveMovie(userID, playlistID string, movieID int64) error {
	if _, err := s.loadOwned(userID, playlistID); err != nil {
		return err
	}

	if err := s.playlistRepo.RemoveMovie(playlistID, movieID); err != nil {
		if apperrors.Is(err, repositories.ErrPlaylistEntryNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *PlaylistServiceImpl) ToggleWatched(userID string, movieID int64) (*dto.MarkMovieResponse, error) {
	return s.toggleReserved(userID, algorithms.WatchedPlaylistName, movieID)
}

func (s *PlaylistServiceImpl) ToggleLiked(userID string, movieID int64) (*dto.MarkMovieResponse, error) {
	return s.toggleReserved(userID, algorithms.LikedPlaylistName, movieID)
}

// LoadCollection строит коллекцию пользователя в терминах алгоритмов:
// системные плейлисты становятся наборами Watched/Liked, остальные
// попадают в Playlists.
func (s *PlaylistServiceImpl) LoadCollection(userID string) (algorithms.UserMovieCollection, error) {
	var collection algorithms.UserMovieCollection

	playlists, err := s.playlistRepo.ListByUserWithMovies(userID)
	if err != nil {
		return collection, apperrors.InternalError(err)
	}

	for i := range playlists {
		movies := entriesToMovieRefs(playlists[i].Entries)

		switch playlists[i].Name {
		case algorithms.WatchedPlaylistName:
			collection.Watched = movies
		case algorithms.LikedPlaylistName:
			collection.Liked = movies
		default:
			collection.Playlists = append(collection.Playlists, algorithms.Playlist{
				Name:   playlists[i].Name,
				Movies: movies,
			})
		}
	}

	return collection, nil
}

// --- Helpers ---

func (s *PlaylistServiceImpl) loadOwned(userID, playlistID string) (*models.Playlist, error) {
	playlist, err := s.playlistRepo.FindByID(playlistID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrPlaylistNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	if playlist.UserID != userID {
		return nil, apperrors.ErrPlaylistAccessDenied
	}

	return playlist, nil
}

// toggleReserved добавляет или убирает фильм из системного плейлиста
func (s *PlaylistServiceImpl) toggleReserved(userID, name string, movieID int64) (*dto.MarkMovieResponse, error) {
	if _, err := s.movieRepo.FindByID(movieID); err != nil {
		if apperrors.Is(err, repositories.ErrMovieNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	playlist, err := s.playlistRepo.FindByUserAndName(userID, name)
	if err != nil {
		if apperrors.Is(err, repositories.ErrPlaylistNotFound) {
			// Системный плейлист мог не создаться у старых аккаунтов
			playlist = &models.Playlist{UserID: userID, Name: name, IsDefault: true}
			if err := s.playlistRepo.Create(playlist); err != nil {
				return nil, apperrors.InternalError(err)
			}
		} else {
			return nil, apperrors.InternalError(err)
		}
	}

	has, err := s.playlistRepo.HasMovie(playlist.ID, movieID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	if has {
		if err := s.playlistRepo.RemoveMovie(playlist.ID, movieID); err != nil {
			return nil, apperrors.InternalError(err)
		}
		return &dto.MarkMovieResponse{MovieID: movieID, Marked: false}, nil
	}

	if err := s.playlistRepo.AddMovie(playlist.ID, movieID); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return &dto.MarkMovieResponse{MovieID: movieID, Marked: true}, nil
}

func isReservedName(name string) bool {
	return name == algorithms.WatchedPlaylistName || name == algorithms.LikedPlaylistName
}

func entriesToMovieRefs(entries []models.PlaylistMovie) []algorithms.MovieRef {
	refs := make([]algorithms.MovieRef, 0, len(entries))
	for _, e := range entries {
		if e.Movie == nil {
			continue
		}
		refs = append(refs, algorithms.MovieRef{
			ID:       e.Movie.ID,
			Title:    e.Movie.Title,
			GenreIDs: e.Movie.GetGenreIDs(),
			Rating:   e.Movie.VoteAverage,
		})
	}
	return refs
}

func buildPlaylistResponse(playlist *models.Playlist) *dto.PlaylistResponse {
	movies := make([]dto.MovieDTO, 0, len(playlist.Entries))
	for _, e := range playlist.Entries {
		if e.Movie == nil {
			continue
		}
		movies = append(movies, buildMovieDTO(e.Movie))
	}

	return &dto.PlaylistResponse{
		ID:        playlist.ID,
		Name:      playlist.Name,
		IsDefault: playlist.IsDefault,
		Movies:    movies,
		CreatedAt: playlist.CreatedAt,
	}
}
