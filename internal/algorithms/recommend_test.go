package algorithms

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecommendShared_CommonGenreFilter(t *testing.T) {
	// Общий жанр по порогу >= 10: только Action
	selfProfile := GenreDistribution{"Action": 20, "Drama": 5}
	friendProfile := GenreDistribution{"Action": 15, "Horror": 10}

	self := UserMovieCollection{Watched: movieList(1)}
	friend := UserMovieCollection{
		Playlists: []Playlist{{Name: "Mix", Movies: []MovieRef{
			{ID: 1, GenreIDs: []int64{28}, Rating: 9.0}, // уже просмотрен
			{ID: 2, GenreIDs: []int64{28}, Rating: 7.1},
			{ID: 3, GenreIDs: []int64{27}, Rating: 8.5}, // Horror не общий
			{ID: 4, GenreIDs: []int64{28, 35}, Rating: 8.0},
		}}},
	}

	recs, err := RecommendShared(self, selfProfile, friend, friendProfile, testGenres, 0)
	require.NoError(t, err)

	ids := make([]int64, 0, len(recs))
	for _, m := range recs {
		ids = append(ids, m.ID)
	}
	assert.Equal(t, []int64{4, 2}, ids, "Only unseen Action movies, rating descending")
}

func TestRecommendShared_TopGenresFallback(t *testing.T) {
	// Общих жанров нет: берем топ-3 жанра друга
	selfProfile := GenreDistribution{"Comedy": 100}
	friendProfile := GenreDistribution{"Action": 50, "Drama": 30, "Horror": 15, "Comedy": 5}

	friend := UserMovieCollection{
		Watched: []MovieRef{
			{ID: 10, GenreIDs: []int64{28}, Rating: 6.0},
			{ID: 11, GenreIDs: []int64{35}, Rating: 9.9}, // Comedy не в топ-3
		},
	}

	recs, err := RecommendShared(UserMovieCollection{}, selfProfile, friend, friendProfile, testGenres, 0)
	require.NoError(t, err)

	require.Len(t, recs, 1)
	assert.Equal(t, int64(10), recs[0].ID)
}

func TestRecommendShared_RatingFallbackPool(t *testing.T) {
	// Ни один фильм не проходит жанровый фильтр: общий жанр Drama,
	// но у друга только Comedy. Фолбэк отдает лучшие по рейтингу.
	selfProfile := GenreDistribution{"Drama": 50}
	friendProfile := GenreDistribution{"Drama": 50}

	var comedies []MovieRef
	for i := int64(1); i <= 8; i++ {
		comedies = append(comedies, MovieRef{ID: i, GenreIDs: []int64{35}, Rating: float64(i)})
	}
	friend := UserMovieCollection{
		Playlists: []Playlist{{Name: "Funny", Movies: comedies}},
	}

	recs, err := RecommendShared(UserMovieCollection{}, selfProfile, friend, friendProfile, testGenres, 10)
	require.NoError(t, err)

	// Пул фолбэка ограничен шестью лучшими
	require.Len(t, recs, 6)
	assert.Equal(t, int64(8), recs[0].ID)
	assert.Equal(t, int64(3), recs[5].ID)
}

func TestRecommendShared_SelfExclusion(t *testing.T) {
	// Фильм 42 просмотрен пользователем: исключается, даже если жанр общий
	selfProfile := GenreDistribution{"Action": 40}
	friendProfile := GenreDistribution{"Action": 40}

	self := UserMovieCollection{Watched: []MovieRef{{ID: 42, GenreIDs: []int64{28}}}}
	friend := UserMovieCollection{Liked: []MovieRef{{ID: 42, GenreIDs: []int64{28}, Rating: 9.9}}}

	recs, err := RecommendShared(self, selfProfile, friend, friendProfile, testGenres, 0)
	require.NoError(t, err)

	assert.Empty(t, recs)
}

func TestRecommendShared_EmptyFriend(t *testing.T) {
	recs, err := RecommendShared(
		UserMovieCollection{Watched: movieList(1, 2)},
		GenreDistribution{"Action": 100},
		UserMovieCollection{},
		GenreDistribution{},
		testGenres, 0,
	)
	require.NoError(t, err)
	assert.Empty(t, recs, "Friend with no movies yields empty list, not an error")
}

func TestRecommendShared_NegativeLimit(t *testing.T) {
	_, err := RecommendShared(UserMovieCollection{}, nil, UserMovieCollection{}, nil, testGenres, -1)
	assert.ErrorIs(t, err, ErrNegativeLimit)
}

func TestRecommendShared_LimitTruncation(t *testing.T) {
	friendProfile := GenreDistribution{"Action": 100}
	var actions []MovieRef
	for i := int64(1); i <= 5; i++ {
		actions = append(actions, MovieRef{ID: i, GenreIDs: []int64{28}, Rating: float64(i)})
	}
	friend := UserMovieCollection{Watched: actions}

	recs, err := RecommendShared(UserMovieCollection{}, GenreDistribution{"Action": 100}, friend, friendProfile, testGenres, 2)
	require.NoError(t, err)

	require.Len(t, recs, 2)
	assert.Equal(t, int64(5), recs[0].ID)
	assert.Equal(t, int64(4), recs[1].ID)
}

func TestRecommendShared_StableOrderOnRatingTies(t *testing.T) {
	friendProfile := GenreDistribution{"Action": 100}
	friend := UserMovieCollection{
		Playlists: []Playlist{{Name: "Mix", Movies: []MovieRef{
			{ID: 1, GenreIDs: []int64{28}, Rating: 7.0},
			{ID: 2, GenreIDs: []int64{28}, Rating: 7.0},
			{ID: 3, GenreIDs: []int64{28}, Rating: 7.0},
		}}},
	}

	first, err := RecommendShared(UserMovieCollection{}, GenreDistribution{"Action": 100}, friend, friendProfile, testGenres, 0)
	require.NoError(t, err)
	second, err := RecommendShared(UserMovieCollection{}, GenreDistribution{"Action": 100}, friend, friendProfile, testGenres, 0)
	require.NoError(t, err)

	assert.Equal(t, []int64{1, 2, 3}, []int64{first[0].ID, first[1].ID, first[2].ID})
	assert.Equal(t, first, second, "Recommendations must be deterministic")
}
