package integration_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"movieblend_backend/internal/models"
	"movieblend_backend/test/helpers"

	"github.com/stretchr/testify/assert"
)

// TestAuthFlow - регистрация и ожидаемый провал логина без верификации
func TestAuthFlow(t *testing.T) {
	ts := GetTestServer(t)

	email := fmt.Sprintf("newbie_%d@test.com", time.Now().UnixNano())
	registerBody := map[string]interface{}{
		"username": fmt.Sprintf("newbie_%d", time.Now().UnixNano()),
		"email":    email,
		"password": "super_password123",
	}

	regRes, regBodyStr := ts.SendRequest(t, "POST", "/api/v1/auth/register", "", registerBody)

	assert.Equal(t, http.StatusCreated, regRes.StatusCode)
	assert.Contains(t, regBodyStr, "Registration successful")
	t.Logf("РЕГИСТРАЦИЯ: Успешно. Ответ: %s", regBodyStr)

	// Логин до верификации должен провалиться
	loginBody := map[string]interface{}{
		"email":    email,
		"password": "super_password123",
	}
	logRes, logBodyStr := ts.SendRequest(t, "POST", "/api/v1/auth/login", "", loginBody)

	assert.Equal(t, http.StatusForbidden, logRes.StatusCode)
	t.Logf("ЛОГИН (НЕВЕРИФ.): Успешно провалился (403). Ответ: %s", logBodyStr)
}

// TestRegister_CreatesSystemPlaylists - регистрация создает Watched и Liked
func TestRegister_CreatesSystemPlaylists(t *testing.T) {
	ts := GetTestServer(t)

	email := fmt.Sprintf("playlists_%d@test.com", time.Now().UnixNano())
	registerBody := map[string]interface{}{
		"username": fmt.Sprintf("playlists_%d", time.Now().UnixNano()),
		"email":    email,
		"password": "super_password123",
	}

	regRes, _ := ts.SendRequest(t, "POST", "/api/v1/auth/register", "", registerBody)
	assert.Equal(t, http.StatusCreated, regRes.StatusCode)

	var user models.User
	err := ts.DB.Where("email = ?", email).First(&user).Error
	assert.NoError(t, err)

	var names []string
	err = ts.DB.Model(&models.Playlist{}).
		Where("user_id = ? AND is_default = ?", user.ID, true).
		Pluck("name", &names).Error
	assert.NoError(t, err)
	assert.ElementsMatch(t, []string{"Watched", "Liked"}, names)
}

// TestRegister_DuplicateEmail - защита от дубликатов
func TestRegister_DuplicateEmail(t *testing.T) {
	ts := GetTestServer(t)

	email := fmt.Sprintf("duplicate_%d@test.com", time.Now().UnixNano())
	err := helpers.CreateUser(t, ts.DB, &models.User{
		Username:     fmt.Sprintf("user_one_%d", time.Now().UnixNano()),
		Email:        email,
		PasswordHash: "pass12345",
		Role:         models.UserRoleMember,
	})
	assert.NoError(t, err)

	duplicateBody := map[string]interface{}{
		"username": fmt.Sprintf("user_two_%d", time.Now().UnixNano()),
		"email":    email,
		"password": "password_is_long_enough_123",
	}
	regRes, regBodyStr := ts.SendRequest(t, "POST", "/api/v1/auth/register", "", duplicateBody)

	assert.Equal(t, http.StatusConflict, regRes.StatusCode)
	t.Logf("ДУБЛИКАТ EMAIL: Успешно. Ответ: %s", regBodyStr)
}

// TestLogin_BadPassword - неверный пароль
func TestLogin_BadPassword(t *testing.T) {
	ts := GetTestServer(t)

	email := fmt.Sprintf("badpass_%d@test.com", time.Now().UnixNano())
	err := helpers.CreateUser(t, ts.DB, &models.User{
		Username:     fmt.Sprintf("badpass_%d", time.Now().UnixNano()),
		Email:        email,
		PasswordHash: "correct-password",
		Role:         models.UserRoleMember,
	})
	assert.NoError(t, err)

	loginBody := map[string]interface{}{
		"email":    email,
		"password": "WRONG-password",
	}
	logRes, logBodyStr := ts.SendRequest(t, "POST", "/api/v1/auth/login", "", loginBody)

	assert.Equal(t, http.StatusUnauthorized, logRes.StatusCode)
	t.Logf("НЕВЕРНЫЙ ПАРОЛЬ: Успешно. Ответ: %s", logBodyStr)
}

// TestGetMe_Success - золотой путь: логин и свой профиль
func TestGetMe_Success(t *testing.T) {
	ts := GetTestServer(t)

	token, user := helpers.CreateAndLoginMember(t, ts)

	res, bodyStr := ts.SendRequest(t, "GET", "/api/v1/users/me", token, nil)

	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, bodyStr, user.Email)
	assert.Contains(t, bodyStr, user.Username)
}

// TestGetMe_Unauthorized - без токена доступ закрыт
func TestGetMe_Unauthorized(t *testing.T) {
	ts := GetTestServer(t)

	res, _ := ts.SendRequest(t, "GET", "/api/v1/users/me", "", nil)

	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
}
