package dto

// TasteProfileResponse - распределение вкуса пользователя по жанрам.
// Проценты округлены и могут в сумме не давать ровно 100.
type TasteProfileResponse struct {
	UserID string         `json:"user_id"`
	Genres map[string]int `json:"genres"`
}

// CompatibilityResponse - результат сравнения двух пользователей
type CompatibilityResponse struct {
	UserID            string `json:"user_id"`
	FriendID          string `json:"friend_id"`
	Compatibility     int    `json:"compatibility"`
	MovieOverlapScore int    `json:"movie_overlap_score"`
	GenreMatchScore   int    `json:"genre_match_score"`
}

// RecommendationsRequest - параметры выдачи рекомендаций
type RecommendationsRequest struct {
	FriendID string `form:"friend_id" binding:"required,uuid"`
	Limit    int    `form:"limit"`
}

// RecommendationsResponse - подборка фильмов из библиотеки друга
type RecommendationsResponse struct {
	FriendID string     `json:"friend_id"`
	Movies   []MovieDTO `json:"movies"`
}
