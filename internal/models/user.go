package models

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
)

type User struct {
	BaseModel
	Username          string     `gorm:"uniqueIndex;not null"`
	Email             string     `gorm:"uniqueIndex;not null"`
	PasswordHash      string     `gorm:"not null"`
	Role              UserRole   `gorm:"type:varchar(20);not null;default:'member'"`
	Status            UserStatus `gorm:"type:varchar(20);default:'pending'"`
	IsVerified        bool       `gorm:"default:false"`
	VerificationToken string
	Bio               string
	FavoriteGenres    datatypes.JSON `gorm:"type:jsonb"` // ["Action", "Comedy"]

	// Relations
	Playlists     []Playlist     `gorm:"foreignKey:UserID"`
	RefreshTokens []RefreshToken `gorm:"foreignKey:UserID"`
}

// GetFavoriteGenres возвращает любимые жанры как slice строк
func (u *User) GetFavoriteGenres() []string {
	var genres []string
	if len(u.FavoriteGenres) > 0 {
		_ = json.Unmarshal(u.FavoriteGenres, &genres)
	}
	return genres
}

// SetFavoriteGenres устанавливает любимые жанры
func (u *User) SetFavoriteGenres(genres []string) {
	data, _ := json.Marshal(genres)
	u.FavoriteGenres = datatypes.JSON(data)
}

type RefreshToken struct {
	BaseModel
	UserID    string    `gorm:"not null;index"`
	Token     string    `gorm:"not null;uniqueIndex"`
	ExpiresAt time.Time `gorm:"not null"`
}
