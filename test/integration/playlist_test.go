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

// TestPlaylist_CreateAndFill - создание плейлиста и наполнение фильмами
func TestPlaylist_CreateAndFill(t *testing.T) {
	ts := GetTestServer(t)

	token, _ := helpers.CreateAndLoginMember(t, ts)
	helpers.CreateTestMovie(t, ts.DB, 603, "The Matrix", 8.2, 28, 878)

	res, bodyStr := ts.SendRequest(t, "POST", "/api/v1/playlists", token, map[string]interface{}{
		"name": "Sci-fi marathon",
	})
	require.Equal(t, http.StatusCreated, res.StatusCode)

	var playlist struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &playlist))
	assert.Equal(t, "Sci-fi marathon", playlist.Name)

	res, _ = ts.SendRequest(t, "POST",
		fmt.Sprintf("/api/v1/playlists/%s/movies", playlist.ID), token,
		map[string]interface{}{"movie_id": 603})
	assert.Equal(t, http.StatusCreated, res.StatusCode)

	// Повторное добавление - конфликт
	res, _ = ts.SendRequest(t, "POST",
		fmt.Sprintf("/api/v1/playlists/%s/movies", playlist.ID), token,
		map[string]interface{}{"movie_id": 603})
	assert.Equal(t, http.StatusConflict, res.StatusCode)

	res, bodyStr = ts.SendRequest(t, "GET",
		fmt.Sprintf("/api/v1/playlists/%s", playlist.ID), token, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, bodyStr, "The Matrix")
}

// TestPlaylist_ReservedNameRejected - имена Watched/Liked запрещены
func TestPlaylist_ReservedNameRejected(t *testing.T) {
	ts := GetTestServer(t)

	token, _ := helpers.CreateAndLoginMember(t, ts)

	res, bodyStr := ts.SendRequest(t, "POST", "/api/v1/playlists", token, map[string]interface{}{
		"name": "Watched",
	})

	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	t.Logf("ЗАРЕЗЕРВИРОВАННОЕ ИМЯ: Успешно отклонено. Ответ: %s", bodyStr)
}

// TestPlaylist_ForeignAccessDenied - чужой плейлист недоступен
func TestPlaylist_ForeignAccessDenied(t *testing.T) {
	ts := GetTestServer(t)

	tokenA, _ := helpers.CreateAndLoginMember(t, ts)
	tokenB, _ := helpers.CreateAndLoginMember(t, ts)

	res, bodyStr := ts.SendRequest(t, "POST", "/api/v1/playlists", tokenA, map[string]interface{}{
		"name": "Private picks",
	})
	require.Equal(t, http.StatusCreated, res.StatusCode)

	var playlist struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &playlist))

	res, _ = ts.SendRequest(t, "GET",
		fmt.Sprintf("/api/v1/playlists/%s", playlist.ID), tokenB, nil)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)
}

// TestToggleWatched_Cycle - отметка фильма просмотренным и обратно
func TestToggleWatched_Cycle(t *testing.T) {
	ts := GetTestServer(t)

	token, _ := helpers.CreateAndLoginMember(t, ts)
	helpers.CreateTestMovie(t, ts.DB, 550, "Fight Club", 8.4, 18)

	res, bodyStr := ts.SendRequest(t, "POST", "/api/v1/movies/550/watch", token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	var mark struct {
		MovieID int64 `json:"movie_id"`
		Marked  bool  `json:"marked"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &mark))
	assert.True(t, mark.Marked)

	res, bodyStr = ts.SendRequest(t, "POST", "/api/v1/movies/550/watch", token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &mark))
	assert.False(t, mark.Marked)
}
