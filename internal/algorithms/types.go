package algorithms

// Имена зарезервированных плейлистов. Они создаются автоматически
// для каждого пользователя и участвуют в взвешивании профиля.
const (
	WatchedPlaylistName = "Watched"
	LikedPlaylistName   = "Liked"
)

// MovieRef is the canonical movie shape the blend core works with.
// Equality is by ID only; genre IDs and rating are metadata carried
// along for profiling and ranking.
type MovieRef struct {
	ID       int64   `json:"movie_id"`
	Title    string  `json:"title,omitempty"`
	GenreIDs []int64 `json:"genre_ids,omitempty"`
	Rating   float64 `json:"vote_average,omitempty"` // 0-10, 0 when unknown
}

// Playlist is a named, ordered list of movies. Order is irrelevant to
// scoring but preserved for stable iteration.
type Playlist struct {
	Name   string
	Movies []MovieRef
}

// UserMovieCollection is an in-memory snapshot of one user's movie
// footprint: liked movies, watched movies and any named playlists.
// Missing sub-collections are treated as empty, never as errors.
type UserMovieCollection struct {
	Liked     []MovieRef
	Watched   []MovieRef
	Playlists []Playlist
}

// GenreDistribution maps genre name to an interest percentage in [0,100].
// Values are derived from a collection snapshot; the sum is close to 100
// but not exact because of rounding.
type GenreDistribution map[string]int

// CompatibilityResult is the pairwise blend score plus the two
// contributing sub-scores, all integer percentages in [0,100].
type CompatibilityResult struct {
	Compatibility     int `json:"compatibility"`
	MovieOverlapScore int `json:"movie_overlap_score"`
	GenreMatchScore   int `json:"genre_match_score"`
}

// BlendInput объединяет коллекцию пользователя с уже посчитанным профилем.
type BlendInput struct {
	Collection UserMovieCollection
	Profile    GenreDistribution
}

// allPlaylists returns the user's named playlists plus the reserved
// Watched and Liked lists, so that every scoring pass can iterate one
// uniform sequence.
func (c *UserMovieCollection) allPlaylists() []Playlist {
	out := make([]Playlist, 0, len(c.Playlists)+2)
	if len(c.Watched) > 0 {
		out = append(out, Playlist{Name: WatchedPlaylistName, Movies: c.Watched})
	}
	if len(c.Liked) > 0 {
		out = append(out, Playlist{Name: LikedPlaylistName, Movies: c.Liked})
	}
	out = append(out, c.Playlists...)
	return out
}

// movieIDSet собирает множество ID всех фильмов пользователя:
// лайки, просмотры и все плейлисты.
func (c *UserMovieCollection) movieIDSet() map[int64]struct{} {
	ids := make(map[int64]struct{})
	for _, pl := range c.allPlaylists() {
		for _, m := range pl.Movies {
			ids[m.ID] = struct{}{}
		}
	}
	return ids
}
