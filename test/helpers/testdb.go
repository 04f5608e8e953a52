package helpers

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"
	"testing"
	"time"

	"movieblend_backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// CreateUser создает пользователя с автоматическим хешированием пароля
func CreateUser(t *testing.T, db *gorm.DB, user *models.User) error {
	if user.PasswordHash != "" && !strings.HasPrefix(user.PasswordHash, "$2a$") {
		rawPassword := user.PasswordHash
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(rawPassword), bcrypt.DefaultCost)
		if err != nil {
			t.Fatalf("Не удалось хешировать пароль: %v", err)
		}
		user.PasswordHash = string(hashedPassword)
	}

	// По умолчанию - активный и верифицированный
	if user.Status == "" {
		user.Status = models.UserStatusActive
	}
	user.IsVerified = true

	result := db.Create(user)
	if result.Error != nil {
		t.Logf("ОШИБКА: не удалось создать пользователя %s: %v", user.Email, result.Error)
		return result.Error
	}

	return nil
}

// CreateAndLoginUser создает пользователя и логинит его через API
func CreateAndLoginUser(t *testing.T, ts *TestServer, username, email, password string) (string, *models.User) {
	user := &models.User{
		Username:     username,
		Email:        email,
		PasswordHash: password, // Сырой пароль
		Role:         models.UserRoleMember,
	}
	err := CreateUser(t, ts.DB, user)
	assert.NoError(t, err, "Создание тестового пользователя не должно вызывать ошибку")

	loginBody := map[string]interface{}{
		"email":    email,
		"password": password,
	}

	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/login", "", loginBody)
	assert.Equal(t, http.StatusOK, res.StatusCode, "Логин должен быть успешным. Ответ: "+bodyStr)

	var loginResponse struct {
		Token string `json:"access_token"`
	}
	err = json.Unmarshal([]byte(bodyStr), &loginResponse)
	assert.NoError(t, err, "Не удалось распарсить JSON")
	assert.NotEmpty(t, loginResponse.Token, "Токен не должен быть пустым")

	log.Printf("✅ [Helper] Создан и залогинен пользователь %s", email)

	user.PasswordHash = password

	return loginResponse.Token, user
}

// CreateAndLoginMember создает участника с уникальным email и username
func CreateAndLoginMember(t *testing.T, ts *TestServer) (string, *models.User) {
	suffix := time.Now().UnixNano()
	username := fmt.Sprintf("member_%d", suffix)
	email := fmt.Sprintf("member_%d@test.com", suffix)
	return CreateAndLoginUser(t, ts, username, email, "password123")
}

// MakeFriends создает принятую дружбу напрямую в БД
func MakeFriends(t *testing.T, db *gorm.DB, requesterID, addresseeID string) models.Friendship {
	friendship := models.Friendship{
		RequesterID: requesterID,
		AddresseeID: addresseeID,
		Status:      models.FriendshipStatusAccepted,
	}
	if err := db.Create(&friendship).Error; err != nil {
		t.Fatalf("Не удалось создать дружбу: %v", err)
	}
	return friendship
}

// CreateTestMovie создает фильм в каталоге напрямую в БД
func CreateTestMovie(t *testing.T, db *gorm.DB, id int64, title string, rating float64, genreIDs ...int64) models.Movie {
	movie := models.Movie{
		ID:          id,
		Title:       title,
		VoteAverage: rating,
	}
	movie.SetGenreIDs(genreIDs)

	// Каталог общий для всех тестов, поэтому вставка идемпотентна
	err := db.Where("id = ?", id).FirstOrCreate(&movie).Error
	require.NoError(t, err, "Не удалось создать тестовый фильм")
	return movie
}
