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

// TestFriendship_RequestAndAccept - полный цикл: запрос, входящие, принятие
func TestFriendship_RequestAndAccept(t *testing.T) {
	ts := GetTestServer(t)

	tokenA, _ := helpers.CreateAndLoginMember(t, ts)
	tokenB, userB := helpers.CreateAndLoginMember(t, ts)

	// A отправляет запрос B
	res, bodyStr := ts.SendRequest(t, "POST", "/api/v1/friends/requests", tokenA,
		map[string]interface{}{"addressee_id": userB.ID})
	require.Equal(t, http.StatusCreated, res.StatusCode, "Ответ: "+bodyStr)

	var request struct {
		ID     string `json:"id"`
		Status string `json:"status"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &request))
	assert.Equal(t, "pending", request.Status)

	// B видит входящий запрос
	res, bodyStr = ts.SendRequest(t, "GET", "/api/v1/friends/requests", tokenB, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, bodyStr, request.ID)

	// B принимает
	res, bodyStr = ts.SendRequest(t, "POST",
		fmt.Sprintf("/api/v1/friends/requests/%s/accept", request.ID), tokenB, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, bodyStr, "accepted")

	// Оба видят друг друга в списке друзей
	res, bodyStr = ts.SendRequest(t, "GET", "/api/v1/friends", tokenA, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, bodyStr, userB.Username)
}

// TestFriendship_SelfRequestRejected - запрос дружбы самому себе
func TestFriendship_SelfRequestRejected(t *testing.T) {
	ts := GetTestServer(t)

	token, user := helpers.CreateAndLoginMember(t, ts)

	res, bodyStr := ts.SendRequest(t, "POST", "/api/v1/friends/requests", token,
		map[string]interface{}{"addressee_id": user.ID})

	assert.Equal(t, http.StatusForbidden, res.StatusCode)
	t.Logf("ЗАПРОС СЕБЕ: Успешно отклонен. Ответ: %s", bodyStr)
}

// TestFriendship_OnlyAddresseeAccepts - принять запрос может только адресат
func TestFriendship_OnlyAddresseeAccepts(t *testing.T) {
	ts := GetTestServer(t)

	tokenA, _ := helpers.CreateAndLoginMember(t, ts)
	_, userB := helpers.CreateAndLoginMember(t, ts)

	res, bodyStr := ts.SendRequest(t, "POST", "/api/v1/friends/requests", tokenA,
		map[string]interface{}{"addressee_id": userB.ID})
	require.Equal(t, http.StatusCreated, res.StatusCode)

	var request struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &request))

	// Сам инициатор принять не может
	res, _ = ts.SendRequest(t, "POST",
		fmt.Sprintf("/api/v1/friends/requests/%s/accept", request.ID), tokenA, nil)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)
}

// TestFriendship_DuplicateRequest - повторный запрос между той же парой
func TestFriendship_DuplicateRequest(t *testing.T) {
	ts := GetTestServer(t)

	tokenA, _ := helpers.CreateAndLoginMember(t, ts)
	_, userB := helpers.CreateAndLoginMember(t, ts)

	res, _ := ts.SendRequest(t, "POST", "/api/v1/friends/requests", tokenA,
		map[string]interface{}{"addressee_id": userB.ID})
	require.Equal(t, http.StatusCreated, res.StatusCode)

	res, _ = ts.SendRequest(t, "POST", "/api/v1/friends/requests", tokenA,
		map[string]interface{}{"addressee_id": userB.ID})
	assert.Equal(t, http.StatusConflict, res.StatusCode)
}
