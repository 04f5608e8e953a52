package algorithms

import (
	"errors"
	"sort"
)

const (
	// Порог общего интереса к жанру (в процентах профиля)
	sharedGenreThreshold = 10
	// Сколько топ-жанров друга берем, если общих жанров нет
	topGenresFallback = 3
	// Размер пула при полном фолбэке без жанрового фильтра
	fallbackPoolSize = 6

	// DefaultRecommendLimit используется, когда вызывающий передал limit = 0.
	DefaultRecommendLimit = 6
)

// ErrNegativeLimit возвращается при нарушении контракта recommend:
// отрицательный limit - ошибка аргумента, а не повод для молчаливого клампа.
var ErrNegativeLimit = errors.New("recommend: limit must not be negative")

// recommendContext carries the immutable inputs through the strategy list.
type recommendContext struct {
	friend       *UserMovieCollection
	selfSeen     map[int64]struct{}
	targetGenres map[int64]struct{}
}

// recommendStrategy is one pure candidate producer. Strategies are tried
// in order until one yields a non-empty result.
type recommendStrategy struct {
	name string
	run  func(*recommendContext) []MovieRef
}

var recommendStrategies = []recommendStrategy{
	{name: "shared_genre_scan", run: sharedGenreScan},
	{name: "unseen_by_rating", run: unseenByRating},
}

// RecommendShared derives shared-taste recommendations: movies from the
// friend's collection that the user has not seen, filtered by genres both
// users care about and ranked by rating.
//
// limit = 0 означает DefaultRecommendLimit, limit < 0 - ошибка контракта.
func RecommendShared(
	self UserMovieCollection, selfProfile GenreDistribution,
	friend UserMovieCollection, friendProfile GenreDistribution,
	lookup GenreLookup, limit int,
) ([]MovieRef, error) {
	if limit < 0 {
		return nil, ErrNegativeLimit
	}
	if limit == 0 {
		limit = DefaultRecommendLimit
	}

	ctx := &recommendContext{
		friend:       &friend,
		selfSeen:     self.movieIDSet(),
		targetGenres: targetGenreIDs(selfProfile, friendProfile, lookup),
	}

	var candidates []MovieRef
	for _, strategy := range recommendStrategies {
		if candidates = strategy.run(ctx); len(candidates) > 0 {
			break
		}
	}

	sortByRatingDesc(candidates)
	if len(candidates) > limit {
		candidates = candidates[:limit]
	}
	return candidates, nil
}

// targetGenreIDs computes the genre ID set both users share an interest
// in (both profiles >= sharedGenreThreshold). Если общих жанров нет,
// берутся топ-3 жанра друга. Имена, не известные lookup, отбрасываются.
func targetGenreIDs(selfProfile, friendProfile GenreDistribution, lookup GenreLookup) map[int64]struct{} {
	target := make(map[int64]struct{})

	for genre, selfPct := range selfProfile {
		if selfPct < sharedGenreThreshold || friendProfile[genre] < sharedGenreThreshold {
			continue
		}
		if id, ok := lookup.GenreID(genre); ok {
			target[id] = struct{}{}
		}
	}
	if len(target) > 0 {
		return target
	}

	for _, genre := range topGenres(friendProfile, topGenresFallback) {
		if id, ok := lookup.GenreID(genre); ok {
			target[id] = struct{}{}
		}
	}
	return target
}

// topGenres returns the n highest-percentage genres of a profile.
// Порядок детерминирован: по убыванию процента, при равенстве - по имени.
func topGenres(profile GenreDistribution, n int) []string {
	names := make([]string, 0, len(profile))
	for genre := range profile {
		names = append(names, genre)
	}
	sort.Slice(names, func(i, j int) bool {
		if profile[names[i]] != profile[names[j]] {
			return profile[names[i]] > profile[names[j]]
		}
		return names[i] < names[j]
	})
	if len(names) > n {
		names = names[:n]
	}
	return names
}

// sharedGenreScan собирает непросмотренные фильмы друга, пересекающиеся
// с целевыми жанрами (или все непросмотренные, если целевых жанров нет).
// Дубликаты по ID отбрасываются, сохраняется первое вхождение.
func sharedGenreScan(ctx *recommendContext) []MovieRef {
	var candidates []MovieRef
	picked := make(map[int64]struct{})

	for _, pl := range ctx.friend.allPlaylists() {
		for _, m := range pl.Movies {
			if _, seen := ctx.selfSeen[m.ID]; seen {
				continue
			}
			if _, dup := picked[m.ID]; dup {
				continue
			}
			if len(ctx.targetGenres) > 0 && !intersectsGenres(m, ctx.targetGenres) {
				continue
			}
			picked[m.ID] = struct{}{}
			candidates = append(candidates, m)
		}
	}
	return candidates
}

// unseenByRating - последний фолбэк: все непросмотренные фильмы друга
// без жанрового фильтра, лучшие по рейтингу.
func unseenByRating(ctx *recommendContext) []MovieRef {
	var candidates []MovieRef
	picked := make(map[int64]struct{})

	for _, pl := range ctx.friend.allPlaylists() {
		for _, m := range pl.Movies {
			if _, seen := ctx.selfSeen[m.ID]; seen {
				continue
			}
			if _, dup := picked[m.ID]; dup {
				continue
			}
			picked[m.ID] = struct{}{}
			candidates = append(candidates, m)
		}
	}

	sortByRatingDesc(candidates)
	if len(candidates) > fallbackPoolSize {
		candidates = candidates[:fallbackPoolSize]
	}
	return candidates
}

func intersectsGenres(m MovieRef, target map[int64]struct{}) bool {
	for _, id := range m.GenreIDs {
		if _, ok := target[id]; ok {
			return true
		}
	}
	return false
}

// sortByRatingDesc сортирует стабильно: при равном рейтинге сохраняется
// порядок обхода плейлистов.
func sortByRatingDesc(movies []MovieRef) {
	sort.SliceStable(movies, func(i, j int) bool {
		return movies[i].Rating > movies[j].Rating
	})
}
