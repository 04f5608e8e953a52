package algorithms

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var testGenres = NewStaticGenreLookup(map[int64]string{
	28: "Action",
	35: "Comedy",
	18: "Drama",
	27: "Horror",
})

func TestBuildTasteProfile_WatchedOnly(t *testing.T) {
	// Два фильма Action + один Comedy в Watched: 2 голоса против 1
	collection := UserMovieCollection{
		Watched: []MovieRef{
			{ID: 1, GenreIDs: []int64{28}},
			{ID: 2, GenreIDs: []int64{28}},
			{ID: 3, GenreIDs: []int64{35}},
		},
	}

	profile := BuildTasteProfile(collection, testGenres)

	assert.Equal(t, 67, profile["Action"], "Action should get round(2/3*100)")
	assert.Equal(t, 33, profile["Comedy"], "Comedy should get round(1/3*100)")
}

func TestBuildTasteProfile_EmptyCollection(t *testing.T) {
	profile := BuildTasteProfile(UserMovieCollection{}, testGenres)
	assert.Empty(t, profile, "User with no movies should get an empty distribution")
}

func TestBuildTasteProfile_UnknownGenresSkipped(t *testing.T) {
	collection := UserMovieCollection{
		Playlists: []Playlist{
			{Name: "Favorites", Movies: []MovieRef{
				{ID: 1, GenreIDs: []int64{28, 9999}}, // 9999 нет в таблице жанров
				{ID: 2},                              // фильм вообще без жанров
			}},
		},
	}

	profile := BuildTasteProfile(collection, testGenres)

	assert.Equal(t, GenreDistribution{"Action": 100}, profile)
}

func TestBuildTasteProfile_WatchedAndLikedWeighting(t *testing.T) {
	// Фильм 1: watched + liked (x3). Фильм 2: обычный плейлист (x1).
	collection := UserMovieCollection{
		Watched: []MovieRef{{ID: 1, GenreIDs: []int64{28}}},
		Liked:   []MovieRef{{ID: 1, GenreIDs: []int64{28}}},
		Playlists: []Playlist{
			{Name: "Weekend", Movies: []MovieRef{{ID: 2, GenreIDs: []int64{35}}}},
		},
	}

	profile := BuildTasteProfile(collection, testGenres)

	// Фильм 1 входит в Watched и Liked как плейлисты: 2 базовых голоса
	// + 1 за watched-or-liked + 1 за оба = 4. Фильм 2 - 1 голос.
	assert.Equal(t, 80, profile["Action"])
	assert.Equal(t, 20, profile["Comedy"])
}

func TestBuildTasteProfile_WeightingMonotonicity(t *testing.T) {
	// Перенос фильма из обычного плейлиста в Watched не должен уменьшать
	// вклад его жанра.
	inPlain := UserMovieCollection{
		Playlists: []Playlist{
			{Name: "Later", Movies: []MovieRef{{ID: 1, GenreIDs: []int64{28}}}},
			{Name: "Stuff", Movies: []MovieRef{{ID: 2, GenreIDs: []int64{18}}}},
		},
	}
	inWatched := UserMovieCollection{
		Watched: []MovieRef{{ID: 1, GenreIDs: []int64{28}}},
		Playlists: []Playlist{
			{Name: "Stuff", Movies: []MovieRef{{ID: 2, GenreIDs: []int64{18}}}},
		},
	}

	before := BuildTasteProfile(inPlain, testGenres)
	after := BuildTasteProfile(inWatched, testGenres)

	assert.GreaterOrEqual(t, after["Action"], before["Action"])
}

func TestBuildTasteProfile_RangeAndDeterminism(t *testing.T) {
	collection := UserMovieCollection{
		Watched: []MovieRef{
			{ID: 1, GenreIDs: []int64{28, 35}},
			{ID: 2, GenreIDs: []int64{18}},
		},
		Liked: []MovieRef{{ID: 1, GenreIDs: []int64{28, 35}}},
		Playlists: []Playlist{
			{Name: "Scary", Movies: []MovieRef{{ID: 3, GenreIDs: []int64{27}}}},
		},
	}

	first := BuildTasteProfile(collection, testGenres)
	second := BuildTasteProfile(collection, testGenres)

	assert.Equal(t, first, second, "Profile must be deterministic")
	for genre, pct := range first {
		assert.GreaterOrEqual(t, pct, 0, genre)
		assert.LessOrEqual(t, pct, 100, genre)
	}
}
