package algorithms

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func movieList(ids ...int64) []MovieRef {
	movies := make([]MovieRef, 0, len(ids))
	for _, id := range ids {
		movies = append(movies, MovieRef{ID: id})
	}
	return movies
}

func TestComputeBlendCompatibility_MovieOverlap(t *testing.T) {
	// moviesA = {1,2,3,4}, moviesB = {3,4,5,6}: overlap 2, union 6 -> 33
	a := BlendInput{Collection: UserMovieCollection{
		Liked:     movieList(1, 2, 3),
		Playlists: []Playlist{{Name: "All", Movies: movieList(1, 2, 3, 4)}},
	}}
	b := BlendInput{Collection: UserMovieCollection{
		Liked:     movieList(3, 4, 5),
		Playlists: []Playlist{{Name: "All", Movies: movieList(3, 4, 5, 6)}},
	}}

	result := ComputeBlendCompatibility(a, b)

	assert.Equal(t, 33, result.MovieOverlapScore)
}

func TestComputeBlendCompatibility_GenreMatch(t *testing.T) {
	a := BlendInput{Profile: GenreDistribution{"Action": 60, "Comedy": 40}}
	b := BlendInput{Profile: GenreDistribution{"Action": 40, "Drama": 60}}

	result := ComputeBlendCompatibility(a, b)

	// min: Action 40. max: Action 60 + Comedy 40 + Drama 60 = 160 -> 25
	assert.Equal(t, 25, result.GenreMatchScore)
	// Фильмов нет вообще: overlap 0, итог round(0*0.5 + 25*0.5) = 13
	assert.Equal(t, 0, result.MovieOverlapScore)
	assert.Equal(t, 13, result.Compatibility)
}

func TestComputeBlendCompatibility_Symmetry(t *testing.T) {
	a := BlendInput{
		Collection: UserMovieCollection{
			Watched:   movieList(1, 2, 3),
			Liked:     movieList(2),
			Playlists: []Playlist{{Name: "Noir", Movies: movieList(7, 8)}},
		},
		Profile: GenreDistribution{"Action": 50, "Drama": 30, "Comedy": 20},
	}
	b := BlendInput{
		Collection: UserMovieCollection{
			Watched: movieList(2, 3, 9),
			Liked:   movieList(9),
		},
		Profile: GenreDistribution{"Action": 20, "Horror": 80},
	}

	ab := ComputeBlendCompatibility(a, b)
	ba := ComputeBlendCompatibility(b, a)

	assert.Equal(t, ab, ba, "Blend compatibility must be symmetric")
}

func TestComputeBlendCompatibility_EmptyUsers(t *testing.T) {
	result := ComputeBlendCompatibility(BlendInput{}, BlendInput{})

	assert.Equal(t, 0, result.Compatibility)
	assert.Equal(t, 0, result.MovieOverlapScore)
	assert.Equal(t, 0, result.GenreMatchScore)
}

func TestComputeBlendCompatibility_IdenticalUsers(t *testing.T) {
	input := BlendInput{
		Collection: UserMovieCollection{
			Liked:   movieList(1, 2),
			Watched: movieList(1, 3),
		},
		Profile: GenreDistribution{"Action": 70, "Comedy": 30},
	}

	result := ComputeBlendCompatibility(input, input)

	assert.Equal(t, 100, result.Compatibility, "A user blends perfectly with themselves")
}

func TestComputeBlendCompatibility_Range(t *testing.T) {
	cases := []struct {
		name string
		a, b BlendInput
	}{
		{"disjoint", BlendInput{
			Collection: UserMovieCollection{Liked: movieList(1)},
			Profile:    GenreDistribution{"Action": 100},
		}, BlendInput{
			Collection: UserMovieCollection{Liked: movieList(2)},
			Profile:    GenreDistribution{"Drama": 100},
		}},
		{"one_empty", BlendInput{}, BlendInput{
			Collection: UserMovieCollection{Watched: movieList(5)},
			Profile:    GenreDistribution{"Horror": 100},
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result := ComputeBlendCompatibility(tc.a, tc.b)
			assert.GreaterOrEqual(t, result.Compatibility, 0)
			assert.LessOrEqual(t, result.Compatibility, 100)
		})
	}
}
