package services

import (
	"fmt"
	"sync"
	"time"

	"movieblend_backend/internal/algorithms"
	"movieblend_backend/internal/config"
	"movieblend_backend/internal/repositories"
	"movieblend_backend/internal/services/dto"
	"movieblend_backend/pkg/apperrors"
)

type BlendService interface {
	// GetTasteProfile возвращает распределение вкуса пользователя по жанрам
	GetTasteProfile(userID string) (*dto.TasteProfileResponse, error)

	// GetCompatibility сравнивает пользователя с другом (0..100)
	GetCompatibility(userID, friendID string) (*dto.CompatibilityResponse, error)

	// GetRecommendations подбирает фильмы из библиотеки друга
	GetRecommendations(userID, friendID string, limit int) (*dto.RecommendationsResponse, error)
}

type BlendServiceImpl struct {
	playlistService PlaylistService
	friendshipRepo  repositories.FriendshipRepository
	genreRepo       repositories.GenreRepository
	movieRepo       repositories.MovieRepository

	// Кэш совместимости: пересчет коллекций двух пользователей на каждый
	// запрос дорог, а результат меняется редко
	cacheMu  sync.Mutex
	cache    map[string]cachedCompatibility
	cacheTTL time.Duration
}

type cachedCompatibility struct {
	result    algorithms.CompatibilityResult
	expiresAt time.Time
}

func NewBlendService(
	playlistService PlaylistService,
	friendshipRepo repositories.FriendshipRepository,
	genreRepo repositories.GenreRepository,
	movieRepo repositories.MovieRepository,
) BlendService {
	cfg := config.GetConfig()

	return &BlendServiceImpl{
		playlistService: playlistService,
		friendshipRepo:  friendshipRepo,
		genreRepo:       genreRepo,
		movieRepo:       movieRepo,
		cache:           make(map[string]cachedCompatibility),
		cacheTTL:        time.Duration(cfg.Blend.CacheTTLSeconds) * time.Second,
	}
}

func (s *BlendServiceImpl) GetTasteProfile(userID string) (*dto.TasteProfileResponse, error) {
	collection, err := s.playlistService.LoadCollection(userID)
	if err != nil {
		return nil, err
	}

	lookup, err := s.genreLookup()
	if err != nil {
		return nil, err
	}

	profile := algorithms.BuildTasteProfile(collection, lookup)

	return &dto.TasteProfileResponse{
		UserID: userID,
		Genres: profile,
	}, nil
}

func (s *BlendServiceImpl) GetCompatibility(userID, friendID string) (*dto.CompatibilityResponse, error) {
	if err := s.requireFriendship(userID, friendID); err != nil {
		return nil, err
	}

	if cached, ok := s.cachedResult(userID, friendID); ok {
		return buildCompatibilityResponse(userID, friendID, cached), nil
	}

	lookup, err := s.genreLookup()
	if err != nil {
		return nil, err
	}

	self, err := s.blendInput(userID, lookup)
	if err != nil {
		return nil, err
	}
	friend, err := s.blendInput(friendID, lookup)
	if err != nil {
		return nil, err
	}

	result := algorithms.ComputeBlendCompatibility(self, friend)
	s.storeResult(userID, friendID, result)

	return buildCompatibilityResponse(userID, friendID, result), nil
}

func (s *BlendServiceImpl) GetRecommendations(userID, friendID string, limit int) (*dto.RecommendationsResponse, error) {
	if err := s.requireFriendship(userID, friendID); err != nil {
		return nil, err
	}

	lookup, err := s.genreLookup()
	if err != nil {
		return nil, err
	}

	self, err := s.blendInput(userID, lookup)
	if err != nil {
		return nil, err
	}
	friend, err := s.blendInput(friendID, lookup)
	if err != nil {
		return nil, err
	}

	refs, err := algorithms.RecommendShared(
		self.Collection, self.Profile,
		friend.Collection, friend.Profile,
		lookup, limit,
	)
	if err != nil {
		if apperrors.Is(err, algorithms.ErrNegativeLimit) {
			return nil, apperrors.ErrInvalidLimit
		}
		return nil, apperrors.InternalError(err)
	}

	movies, err := s.resolveMovies(refs)
	if err != nil {
		return nil, err
	}

	return &dto.RecommendationsResponse{
		FriendID: friendID,
		Movies:   movies,
	}, nil
}

// --- Helpers ---

func (s *BlendServiceImpl) requireFriendship(userID, friendID string) error {
	if userID == friendID {
		return apperrors.ErrCannotModifySelf
	}

	friends, err := s.friendshipRepo.AreFriends(userID, friendID)
	if err != nil {
		return apperrors.InternalError(err)
	}
	if !friends {
		return apperrors.ErrNotFriends
	}
	return nil
}

func (s *BlendServiceImpl) genreLookup() (algorithms.GenreLookup, error) {
	names, err := s.genreRepo.NameMap()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return algorithms.NewStaticGenreLookup(names), nil
}

func (s *BlendServiceImpl) blendInput(userID string, lookup algorithms.GenreLookup) (algorithms.BlendInput, error) {
	collection, err := s.playlistService.LoadCollection(userID)
	if err != nil {
		return algorithms.BlendInput{}, err
	}

	return algorithms.BlendInput{
		Collection: collection,
		Profile:    algorithms.BuildTasteProfile(collection, lookup),
	}, nil
}

// resolveMovies обогащает рекомендации полными карточками из каталога,
// сохраняя порядок выдачи алгоритма
func (s *BlendServiceImpl) resolveMovies(refs []algorithms.MovieRef) ([]dto.MovieDTO, error) {
	ids := make([]int64, 0, len(refs))
	for _, ref := range refs {
		ids = append(ids, ref.ID)
	}

	rows, err := s.movieRepo.FindByIDs(ids)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	byID := make(map[int64]dto.MovieDTO, len(rows))
	for i := range rows {
		byID[rows[i].ID] = buildMovieDTO(&rows[i])
	}

	movies := make([]dto.MovieDTO, 0, len(refs))
	for _, ref := range refs {
		if m, ok := byID[ref.ID]; ok {
			movies = append(movies, m)
			continue
		}
		// Фильм мог исчезнуть из каталога между запросами
		movies = append(movies, dto.MovieDTO{
			ID:       ref.ID,
			Title:    ref.Title,
			GenreIDs: ref.GenreIDs,
		})
	}
	return movies, nil
}

// compatKey строит симметричный ключ кэша
func compatKey(userID, friendID string) string {
	if friendID < userID {
		userID, friendID = friendID, userID
	}
	return fmt.Sprintf("%s|%s", userID, friendID)
}

func (s *BlendServiceImpl) cachedResult(userID, friendID string) (algorithms.CompatibilityResult, bool) {
	s.cacheMu.Lock()
	defer s.cacheMu.Unlock()

	entry, ok := s.cache[compatKey(userID, friendID)]
	if !ok || time.Now().After(entry.expiresAt) {
		return algorithms.CompatibilityResult{}, false
	}
	return entry.result, true
}

func (s *BlendServiceImpl) storeResult(userID, friendID string, result algorithms.CompatibilityResult) {
	s.cacheMu.Lock()
	defer s.cacheMu.Unlock()

	s.cache[compatKey(userID, friendID)] = cachedCompatibility{
		result:    result,
		expiresAt: time.Now().Add(s.cacheTTL),
	}
}

func buildCompatibilityResponse(userID, friendID string, result algorithms.CompatibilityResult) *dto.CompatibilityResponse {
	return &dto.CompatibilityResponse{
		UserID:            userID,
		FriendID:          friendID,
		Compatibility:     result.Compatibility,
		MovieOverlapScore: result.MovieOverlapScore,
		GenreMatchScore:   result.GenreMatchScore,
	}
}
