package services

import (
	"testing"

	"movieblend_backend/internal/algorithms"
	"movieblend_backend/internal/config"
	"movieblend_backend/internal/models"
	"movieblend_backend/internal/repositories"
	"movieblend_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- Фейки (встраивание интерфейса покрывает неиспользуемые методы) ---

type fakePlaylistService struct {
	PlaylistService
	collections map[string]algorithms.UserMovieCollection
	loadCalls   int
}

func (f *fakePlaylistService) LoadCollection(userID string) (algorithms.UserMovieCollection, error) {
	f.loadCalls++
	return f.collections[userID], nil
}

type fakeFriendshipRepo struct {
	repositories.FriendshipRepository
	friends bool
}

func (f *fakeFriendshipRepo) AreFriends(userA, userB string) (bool, error) {
	return f.friends, nil
}

type fakeGenreRepo struct {
	repositories.GenreRepository
	names map[int64]string
}

func (f *fakeGenreRepo) NameMap() (map[int64]string, error) {
	return f.names, nil
}

type fakeMovieCatalog struct {
	repositories.MovieRepository
	movies map[int64]models.Movie
}

func (f *fakeMovieCatalog) FindByIDs(ids []int64) ([]models.Movie, error) {
	var out []models.Movie
	for _, id := range ids {
		if m, ok := f.movies[id]; ok {
			out = append(out, m)
		}
	}
	return out, nil
}

func (f *fakeMovieCatalog) FindByID(id int64) (*models.Movie, error) {
	if m, ok := f.movies[id]; ok {
		return &m, nil
	}
	return nil, repositories.ErrMovieNotFound
}

// --- Вспомогательная сборка ---

func testConfig() {
	cfg := &config.Config{}
	cfg.Blend.RecommendLimit = 6
	cfg.Blend.CacheTTLSeconds = 300
	config.AppConfig = cfg
}

func movieRef(id int64, rating float64, genreIDs ...int64) algorithms.MovieRef {
	return algorithms.MovieRef{ID: id, GenreIDs: genreIDs, Rating: rating}
}

func newBlendFixture(friends bool, collections map[string]algorithms.UserMovieCollection, catalog map[int64]models.Movie) (*BlendServiceImpl, *fakePlaylistService) {
	testConfig()

	playlists := &fakePlaylistService{collections: collections}
	svc := NewBlendService(
		playlists,
		&fakeFriendshipRepo{friends: friends},
		&fakeGenreRepo{names: map[int64]string{28: "Action", 35: "Comedy", 18: "Drama"}},
		&fakeMovieCatalog{movies: catalog},
	)
	return svc.(*BlendServiceImpl), playlists
}

// --- Тесты ---

func TestGetCompatibility_SelfComparison(t *testing.T) {
	svc, _ := newBlendFixture(true, nil, nil)

	_, err := svc.GetCompatibility("user-1", "user-1")

	assert.ErrorIs(t, err, apperrors.ErrCannotModifySelf)
}

func TestGetCompatibility_NotFriends(t *testing.T) {
	svc, _ := newBlendFixture(false, nil, nil)

	_, err := svc.GetCompatibility("user-1", "user-2")

	assert.ErrorIs(t, err, apperrors.ErrNotFriends)
}

func TestGetCompatibility_IdenticalCollections(t *testing.T) {
	shared := algorithms.UserMovieCollection{
		Watched: []algorithms.MovieRef{movieRef(1, 8.0, 28), movieRef(2, 7.5, 35)},
	}
	svc, _ := newBlendFixture(true, map[string]algorithms.UserMovieCollection{
		"user-1": shared,
		"user-2": shared,
	}, nil)

	result, err := svc.GetCompatibility("user-1", "user-2")

	require.NoError(t, err)
	assert.Equal(t, 100, result.Compatibility)
	assert.Equal(t, 100, result.MovieOverlapScore)
	assert.Equal(t, 100, result.GenreMatchScore)
	assert.Equal(t, "user-1", result.UserID)
	assert.Equal(t, "user-2", result.FriendID)
}

func TestGetCompatibility_UsesCache(t *testing.T) {
	shared := algorithms.UserMovieCollection{
		Watched: []algorithms.MovieRef{movieRef(1, 8.0, 28)},
	}
	svc, playlists := newBlendFixture(true, map[string]algorithms.UserMovieCollection{
		"user-1": shared,
		"user-2": shared,
	}, nil)

	first, err := svc.GetCompatibility("user-1", "user-2")
	require.NoError(t, err)
	assert.Equal(t, 2, playlists.loadCalls)

	// Повторный запрос и зеркальная пара обслуживаются из кэша
	second, err := svc.GetCompatibility("user-1", "user-2")
	require.NoError(t, err)
	mirrored, err := svc.GetCompatibility("user-2", "user-1")
	require.NoError(t, err)

	assert.Equal(t, 2, playlists.loadCalls)
	assert.Equal(t, first.Compatibility, second.Compatibility)
	assert.Equal(t, first.Compatibility, mirrored.Compatibility)
}

func TestGetTasteProfile_WeightsWatchedHigher(t *testing.T) {
	svc, _ := newBlendFixture(true, map[string]algorithms.UserMovieCollection{
		"user-1": {
			Watched: []algorithms.MovieRef{movieRef(1, 8.0, 28)},
			Playlists: []algorithms.Playlist{
				{Name: "Evening picks", Movies: []algorithms.MovieRef{movieRef(2, 7.0, 35)}},
			},
		},
	}, nil)

	profile, err := svc.GetTasteProfile("user-1")

	require.NoError(t, err)
	// Action: 1 базовый + 1 за Watched = 2 из 3 голосов
	assert.Equal(t, 67, profile.Genres["Action"])
	assert.Equal(t, 33, profile.Genres["Comedy"])
}

func TestGetRecommendations_SharedGenre(t *testing.T) {
	collections := map[string]algorithms.UserMovieCollection{
		"user-1": {Watched: []algorithms.MovieRef{movieRef(1, 8.0, 28)}},
		"user-2": {Watched: []algorithms.MovieRef{
			movieRef(1, 8.0, 28),
			movieRef(2, 8.3, 28),
			movieRef(3, 7.0, 28),
		}},
	}
	catalog := map[int64]models.Movie{}
	heat := models.Movie{ID: 2, Title: "Heat", VoteAverage: 8.3}
	heat.SetGenreIDs([]int64{28})
	catalog[2] = heat

	svc, _ := newBlendFixture(true, collections, catalog)

	result, err := svc.GetRecommendations("user-1", "user-2", 6)

	require.NoError(t, err)
	require.Len(t, result.Movies, 2)
	// Просмотренный фильм не рекомендуется, порядок - по рейтингу
	assert.Equal(t, int64(2), result.Movies[0].ID)
	assert.Equal(t, "Heat", result.Movies[0].Title)
	// Фильм, пропавший из каталога, отдаем частичной карточкой
	assert.Equal(t, int64(3), result.Movies[1].ID)
}

func TestGetRecommendations_NegativeLimit(t *testing.T) {
	svc, _ := newBlendFixture(true, map[string]algorithms.UserMovieCollection{}, nil)

	_, err := svc.GetRecommendations("user-1", "user-2", -1)

	assert.ErrorIs(t, err, apperrors.ErrInvalidLimit)
}
