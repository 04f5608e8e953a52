package algorithms

import "math"

// BuildTasteProfile converts a user's collection snapshot into a genre
// interest distribution (percentages, round half-up).
//
// Весовая схема:
//   - каждое вхождение фильма в любой плейлист = 1 голос за каждый его жанр;
//   - фильм из "Watched" или "Liked" получает один дополнительный проход (x2);
//   - фильм и в "Watched", и в "Liked" - еще один проход (x3).
//
// Просмотренный или явно лайкнутый фильм говорит о вкусе больше, чем фильм,
// просто сохраненный в произвольный плейлист.
func BuildTasteProfile(collection UserMovieCollection, lookup GenreLookup) GenreDistribution {
	votes := make(map[string]int)
	total := 0

	forEachGenreVote(collection, func(genreID int64) {
		name, ok := lookup.GenreName(genreID)
		if !ok {
			// Неизвестный жанр пропускаем молча
			return
		}
		votes[name]++
		total++
	})

	if total == 0 {
		return GenreDistribution{}
	}

	distribution := make(GenreDistribution, len(votes))
	for name, count := range votes {
		distribution[name] = int(math.Round(float64(count) / float64(total) * 100))
	}
	return distribution
}

// CountGenreVotes считает сырые голоса по ID жанра по той же весовой схеме,
// что и BuildTasteProfile. Используется воркером для денормализованных
// счетчиков UserGenrePref.
func CountGenreVotes(collection UserMovieCollection) map[int64]int {
	counts := make(map[int64]int)
	forEachGenreVote(collection, func(genreID int64) {
		counts[genreID]++
	})
	return counts
}

// forEachGenreVote вызывает vote для каждого голоса за жанр с учетом
// весовой схемы (базовый проход + доп. проходы за Watched/Liked).
func forEachGenreVote(collection UserMovieCollection, vote func(genreID int64)) {
	cast := func(m MovieRef) {
		for _, genreID := range m.GenreIDs {
			vote(genreID)
		}
	}

	// Базовый проход: каждое вхождение в каждый плейлист
	for _, pl := range collection.allPlaylists() {
		for _, m := range pl.Movies {
			cast(m)
		}
	}

	// Дополнительные проходы считаются один раз на фильм (по ID)
	watched := uniqueByID(collection.Watched)
	liked := uniqueByID(collection.Liked)

	for id, m := range watched {
		cast(m)
		if _, both := liked[id]; both {
			cast(m)
		}
	}
	for id, m := range liked {
		if _, both := watched[id]; !both {
			cast(m)
		}
	}
}

// uniqueByID дедуплицирует фильмы по ID, сохраняя первое вхождение.
func uniqueByID(movies []MovieRef) map[int64]MovieRef {
	unique := make(map[int64]MovieRef, len(movies))
	for _, m := range movies {
		if _, ok := unique[m.ID]; !ok {
			unique[m.ID] = m
		}
	}
	return unique
}
