package workers

import (
	"context"
	"time"

	"movieblend_backend/internal/algorithms"
	"movieblend_backend/internal/logger"
	"movieblend_backend/internal/models"
	"movieblend_backend/internal/repositories"
	"movieblend_backend/internal/services"
)

// PrefsWorker периодически пересчитывает денормализованные счетчики
// голосов по жанрам (UserGenrePref) для всех пользователей с фильмами.
type PrefsWorker struct {
	playlistService services.PlaylistService
	genrePrefRepo   repositories.GenrePrefRepository
	interval        time.Duration
}

func NewPrefsWorker(
	playlistService services.PlaylistService,
	genrePrefRepo repositories.GenrePrefRepository,
	intervalMinutes int,
) *PrefsWorker {
	return &PrefsWorker{
		playlistService: playlistService,
		genrePrefRepo:   genrePrefRepo,
		interval:        time.Duration(intervalMinutes) * time.Minute,
	}
}

// Start запускает фоновый пересчет
func (w *PrefsWorker) Start(ctx context.Context) {
	go w.run(ctx)
}

func (w *PrefsWorker) run(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("Prefs worker stopped")
			return
		case <-ticker.C:
			w.RecalculateAll()
		}
	}
}

// RecalculateAll пересчитывает счетчики для всех кандидатов
func (w *PrefsWorker) RecalculateAll() {
	userIDs, err := w.genrePrefRepo.ListUserIDs()
	if err != nil {
		logger.WorkerLog("prefs", "list users", err)
		return
	}

	updated := 0
	for _, userID := range userIDs {
		if err := w.RecalculateUser(userID); err != nil {
			logger.WorkerLog("prefs", "recalculate user "+userID, err)
			continue
		}
		updated++
	}

	if updated > 0 {
		logger.Info("Genre prefs recalculated", "users", updated)
	}
}

// RecalculateUser строит счетчики одного пользователя из его коллекции
func (w *PrefsWorker) RecalculateUser(userID string) error {
	collection, err := w.playlistService.LoadCollection(userID)
	if err != nil {
		return err
	}

	counts := algorithms.CountGenreVotes(collection)

	prefs := make([]models.UserGenrePref, 0, len(counts))
	for genreID, count := range counts {
		prefs = append(prefs, models.UserGenrePref{
			UserID:     userID,
			GenreID:    genreID,
			WatchCount: count,
		})
	}

	return w.genrePrefRepo.ReplaceForUser(userID, prefs)
}
