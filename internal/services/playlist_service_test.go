package services

import (
	"fmt"
	"testing"

	"movieblend_backend/internal/algorithms"
	"movieblend_backend/internal/models"
	"movieblend_backend/internal/repositories"
	"movieblend_backend/internal/services/dto"
	"movieblend_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memPlaylistRepo - полноценная in-memory реализация PlaylistRepository
type memPlaylistRepo struct {
	playlists map[string]*models.Playlist
	entries   map[string][]int64 // playlistID -> movieIDs в порядке добавления
	catalog   map[int64]models.Movie
	nextID    int
}

func newMemPlaylistRepo(catalog map[int64]models.Movie) *memPlaylistRepo {
	return &memPlaylistRepo{
		playlists: make(map[string]*models.Playlist),
		entries:   make(map[string][]int64),
		catalog:   catalog,
	}
}

func (r *memPlaylistRepo) Create(playlist *models.Playlist) error {
	for _, p := range r.playlists {
		if p.UserID == playlist.UserID && p.Name == playlist.Name {
			return repositories.ErrPlaylistNameTaken
		}
	}
	if playlist.ID == "" {
		r.nextID++
		playlist.ID = fmt.Sprintf("pl-%d", r.nextID)
	}
	stored := *playlist
	r.playlists[playlist.ID] = &stored
	return nil
}

func (r *memPlaylistRepo) FindByID(id string) (*models.Playlist, error) {
	p, ok := r.playlists[id]
	if !ok {
		return nil, repositories.ErrPlaylistNotFound
	}
	out := *p
	return &out, nil
}

func (r *memPlaylistRepo) FindByUserAndName(userID, name string) (*models.Playlist, error) {
	for _, p := range r.playlists {
		if p.UserID == userID && p.Name == name {
			out := *p
			return &out, nil
		}
	}
	return nil, repositories.ErrPlaylistNotFound
}

func (r *memPlaylistRepo) ListByUser(userID string) ([]models.Playlist, error) {
	var out []models.Playlist
	for _, p := range r.playlists {
		if p.UserID == userID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *memPlaylistRepo) ListByUserWithMovies(userID string) ([]models.Playlist, error) {
	playlists, _ := r.ListByUser(userID)
	for i := range playlists {
		for pos, movieID := range r.entries[playlists[i].ID] {
			movie, ok := r.catalog[movieID]
			if !ok {
				continue
			}
			m := movie
			playlists[i].Entries = append(playlists[i].Entries, models.PlaylistMovie{
				PlaylistID: playlists[i].ID,
				MovieID:    movieID,
				Position:   pos + 1,
				Movie:      &m,
			})
		}
	}
	return playlists, nil
}

func (r *memPlaylistRepo) Rename(id, name string) error {
	p, ok := r.playlists[id]
	if !ok {
		return repositories.ErrPlaylistNotFound
	}
	p.Name = name
	return nil
}

func (r *memPlaylistRepo) Delete(id string) error {
	delete(r.playlists, id)
	delete(r.entries, id)
	return nil
}

func (r *memPlaylistRepo) AddMovie(playlistID string, movieID int64) error {
	for _, id := range r.entries[playlistID] {
		if id == movieID {
			return repositories.ErrPlaylistEntryExists
		}
	}
	r.entries[playlistID] = append(r.entries[playlistID], movieID)
	return nil
}

func (r *memPlaylistRepo) RemoveMovie(playlistID string, movieID int64) error {
	ids := r.entries[playlistID]
	for i, id := range ids {
		if id == movieID {
			r.entries[playlistID] = append(ids[:i], ids[i+1:]...)
			return nil
		}
	}
	return repositories.ErrPlaylistEntryNotFound
}

func (r *memPlaylistRepo) HasMovie(playlistID string, movieID int64) (bool, error) {
	for _, id := range r.entries[playlistID] {
		if id == movieID {
			return true, nil
		}
	}
	return false, nil
}

func (r *memPlaylistRepo) CountMovies(playlistID string) (int64, error) {
	return int64(len(r.entries[playlistID])), nil
}

// --- Вспомогательная сборка ---

func newPlaylistFixture() (PlaylistService, *memPlaylistRepo) {
	catalog := map[int64]models.Movie{}
	for _, m := range []struct {
		id     int64
		title  string
		rating float64
		genres []int64
	}{
		{550, "Fight Club", 8.4, []int64{18}},
		{680, "Pulp Fiction", 8.5, []int64{80, 18}},
		{603, "The Matrix", 8.2, []int64{28, 878}},
	} {
		movie := models.Movie{ID: m.id, Title: m.title, VoteAverage: m.rating}
		movie.SetGenreIDs(m.genres)
		catalog[m.id] = movie
	}

	repo := newMemPlaylistRepo(catalog)
	svc := NewPlaylistService(repo, &fakeMovieCatalog{movies: catalog})
	return svc, repo
}

// --- Тесты ---

func TestCreatePlaylist_ReservedName(t *testing.T) {
	svc, _ := newPlaylistFixture()

	_, err := svc.Create("user-1", &dto.PlaylistCreateRequest{Name: algorithms.WatchedPlaylistName})

	assert.ErrorIs(t, err, apperrors.ErrReservedPlaylistName)
}

func TestCreatePlaylist_DuplicateName(t *testing.T) {
	svc, _ := newPlaylistFixture()

	_, err := svc.Create("user-1", &dto.PlaylistCreateRequest{Name: "Horror night"})
	require.NoError(t, err)

	_, err = svc.Create("user-1", &dto.PlaylistCreateRequest{Name: "Horror night"})
	assert.ErrorIs(t, err, apperrors.ErrPlaylistNameTaken)
}

func TestRenamePlaylist_SystemPlaylistBlocked(t *testing.T) {
	svc, repo := newPlaylistFixture()

	watched := &models.Playlist{UserID: "user-1", Name: algorithms.WatchedPlaylistName, IsDefault: true}
	require.NoError(t, repo.Create(watched))

	_, err := svc.Rename("user-1", watched.ID, &dto.PlaylistRenameRequest{Name: "My films"})
	assert.ErrorIs(t, err, apperrors.ErrReservedPlaylist)

	err = svc.Delete("user-1", watched.ID)
	assert.ErrorIs(t, err, apperrors.ErrReservedPlaylist)
}

func TestAddMovie_ForeignPlaylist(t *testing.T) {
	svc, repo := newPlaylistFixture()

	other := &models.Playlist{UserID: "user-2", Name: "Weekend"}
	require.NoError(t, repo.Create(other))

	err := svc.AddMovie("user-1", other.ID, 550)
	assert.ErrorIs(t, err, apperrors.ErrPlaylistAccessDenied)
}

func TestAddMovie_Duplicate(t *testing.T) {
	svc, _ := newPlaylistFixture()

	playlist, err := svc.Create("user-1", &dto.PlaylistCreateRequest{Name: "Weekend"})
	require.NoError(t, err)

	require.NoError(t, svc.AddMovie("user-1", playlist.ID, 550))
	err = svc.AddMovie("user-1", playlist.ID, 550)
	assert.ErrorIs(t, err, apperrors.ErrMovieAlreadyInPlaylist)
}

func TestToggleWatched_Cycle(t *testing.T) {
	svc, _ := newPlaylistFixture()

	// Первый вызов лениво создает системный плейлист и добавляет фильм
	marked, err := svc.ToggleWatched("user-1", 550)
	require.NoError(t, err)
	assert.True(t, marked.Marked)

	// Повторный вызов убирает фильм
	unmarked, err := svc.ToggleWatched("user-1", 550)
	require.NoError(t, err)
	assert.False(t, unmarked.Marked)
}

func TestToggleWatched_UnknownMovie(t *testing.T) {
	svc, _ := newPlaylistFixture()

	_, err := svc.ToggleWatched("user-1", 999999)

	var appErr *apperrors.AppError
	require.True(t, apperrors.As(err, &appErr))
	assert.Equal(t, apperrors.CodeNotFound, appErr.Code)
}

func TestLoadCollection_MapsSystemPlaylists(t *testing.T) {
	svc, _ := newPlaylistFixture()

	_, err := svc.ToggleWatched("user-1", 550)
	require.NoError(t, err)
	_, err = svc.ToggleLiked("user-1", 680)
	require.NoError(t, err)

	playlist, err := svc.Create("user-1", &dto.PlaylistCreateRequest{Name: "Sci-fi"})
	require.NoError(t, err)
	require.NoError(t, svc.AddMovie("user-1", playlist.ID, 603))

	collection, err := svc.LoadCollection("user-1")
	require.NoError(t, err)

	require.Len(t, collection.Watched, 1)
	assert.Equal(t, int64(550), collection.Watched[0].ID)
	require.Len(t, collection.Liked, 1)
	assert.Equal(t, int64(680), collection.Liked[0].ID)
	require.Len(t, collection.Playlists, 1)
	assert.Equal(t, "Sci-fi", collection.Playlists[0].Name)
	require.Len(t, collection.Playlists[0].Movies, 1)
	assert.Equal(t, int64(603), collection.Playlists[0].Movies[0].ID)
	// Рейтинг и жанры доезжают до алгоритмов
	assert.InDelta(t, 8.2, collection.Playlists[0].Movies[0].Rating, 0.001)
	assert.Equal(t, []int64{28, 878}, collection.Playlists[0].Movies[0].GenreIDs)
}
