package integration_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"movieblend_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBlend_FullFlow - два друга с пересекающейся библиотекой:
// профиль, совместимость и рекомендации
func TestBlend_FullFlow(t *testing.T) {
	ts := GetTestServer(t)

	tokenA, userA := helpers.CreateAndLoginMember(t, ts)
	tokenB, userB := helpers.CreateAndLoginMember(t, ts)
	helpers.MakeFriends(t, ts.DB, userA.ID, userB.ID)

	// Каталог: два боевика и комедия
	helpers.CreateTestMovie(t, ts.DB, 603, "The Matrix", 8.2, 28, 878)
	helpers.CreateTestMovie(t, ts.DB, 680, "Pulp Fiction", 8.5, 80, 18)
	helpers.CreateTestMovie(t, ts.DB, 550, "Fight Club", 8.4, 18)

	// A посмотрел Матрицу, B - Матрицу и Криминальное чтиво
	res, _ := ts.SendRequest(t, "POST", "/api/v1/movies/603/watch", tokenA, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	res, _ = ts.SendRequest(t, "POST", "/api/v1/movies/603/watch", tokenB, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	res, _ = ts.SendRequest(t, "POST", "/api/v1/movies/680/watch", tokenB, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	// Профиль вкуса A: только жанры Матрицы
	res, bodyStr := ts.SendRequest(t, "GET", "/api/v1/blend/profile", tokenA, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	var profile struct {
		UserID string         `json:"user_id"`
		Genres map[string]int `json:"genres"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &profile))
	assert.Equal(t, userA.ID, profile.UserID)
	assert.Equal(t, 50, profile.Genres["Action"])
	assert.Equal(t, 50, profile.Genres["Science Fiction"])

	// Совместимость симметрична и ненулевая (общий фильм)
	res, bodyStr = ts.SendRequest(t, "GET", fmt.Sprintf("/api/v1/blend/compatibility/%s", userB.ID), tokenA, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	var compat struct {
		Compatibility     int `json:"compatibility"`
		MovieOverlapScore int `json:"movie_overlap_score"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &compat))
	assert.Equal(t, 50, compat.MovieOverlapScore) // 1 общий из 2
	assert.Greater(t, compat.Compatibility, 0)

	// Рекомендации для A: непросмотренное Криминальное чтиво из библиотеки B
	res, bodyStr = ts.SendRequest(t, "GET",
		fmt.Sprintf("/api/v1/blend/recommendations?friend_id=%s&limit=6", userB.ID), tokenA, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	var recs struct {
		FriendID string `json:"friend_id"`
		Movies   []struct {
			ID    int64  `json:"movie_id"`
			Title string `json:"title"`
		} `json:"movies"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &recs))
	require.Len(t, recs.Movies, 1)
	assert.Equal(t, int64(680), recs.Movies[0].ID)
	assert.Equal(t, "Pulp Fiction", recs.Movies[0].Title)
}

// TestBlend_RequiresFriendship - сравнение с чужаком запрещено
func TestBlend_RequiresFriendship(t *testing.T) {
	ts := GetTestServer(t)

	tokenA, _ := helpers.CreateAndLoginMember(t, ts)
	_, stranger := helpers.CreateAndLoginMember(t, ts)

	res, bodyStr := ts.SendRequest(t, "GET",
		fmt.Sprintf("/api/v1/blend/compatibility/%s", stranger.ID), tokenA, nil)

	assert.Equal(t, http.StatusForbidden, res.StatusCode)
	t.Logf("НЕ ДРУЗЬЯ: Успешно отклонено. Ответ: %s", bodyStr)
}

// TestBlend_NegativeLimit - отрицательный limit отбивается валидацией контракта
func TestBlend_NegativeLimit(t *testing.T) {
	ts := GetTestServer(t)

	tokenA, userA := helpers.CreateAndLoginMember(t, ts)
	_, userB := helpers.CreateAndLoginMember(t, ts)
	helpers.MakeFriends(t, ts.DB, userA.ID, userB.ID)

	res, _ := ts.SendRequest(t, "GET",
		fmt.Sprintf("/api/v1/blend/recommendations?friend_id=%s&limit=-1", userB.ID), tokenA, nil)

	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}
