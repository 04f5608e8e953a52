package algorithms

import "math"

// ComputeBlendCompatibility scores how well two users' tastes blend,
// 0-100. The score is the even blend of two symmetric sub-scores:
//
//   - movie overlap: Jaccard index of the two users' movie ID sets
//     (лайки + все плейлисты), умноженный на 100;
//   - genre match: sum(min) / sum(max) over the union of the two genre
//     distributions, умноженный на 100.
//
// Оба под-счета симметричны, поэтому Compute(a, b) == Compute(b, a).
func ComputeBlendCompatibility(a, b BlendInput) CompatibilityResult {
	movieScore := movieOverlapScore(&a.Collection, &b.Collection)
	genreScore := genreMatchScore(a.Profile, b.Profile)

	return CompatibilityResult{
		Compatibility:     int(math.Round(float64(movieScore)*0.5 + float64(genreScore)*0.5)),
		MovieOverlapScore: movieScore,
		GenreMatchScore:   genreScore,
	}
}

func movieOverlapScore(a, b *UserMovieCollection) int {
	moviesA := a.movieIDSet()
	moviesB := b.movieIDSet()

	overlap := 0
	for id := range moviesA {
		if _, ok := moviesB[id]; ok {
			overlap++
		}
	}
	union := len(moviesA) + len(moviesB) - overlap

	if union == 0 {
		return 0
	}
	return int(math.Round(float64(overlap) / float64(union) * 100))
}

func genreMatchScore(a, b GenreDistribution) int {
	overlapSum := 0
	possibleSum := 0

	for genre, pctA := range a {
		pctB := b[genre]
		overlapSum += minInt(pctA, pctB)
		possibleSum += maxInt(pctA, pctB)
	}
	// Жанры, которые есть только у B
	for genre, pctB := range b {
		if _, ok := a[genre]; !ok {
			possibleSum += pctB
		}
	}

	if possibleSum == 0 {
		return 0
	}
	return int(math.Round(float64(overlapSum) / float64(possibleSum) * 100))
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
