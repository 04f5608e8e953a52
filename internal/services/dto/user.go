package dto

import (
	"movieblend_backend/internal/models"
)

// UserResponse содержит ПОЛНЫЕ данные о пользователе (в отличие от UserDTO)
// Используется для эндпоинтов типа /users/me
type UserResponse struct {
	ID             string            `json:"id"`
	Username       string            `json:"username"`
	Email          string            `json:"email"`
	Role           models.UserRole   `json:"role"`
	Status         models.UserStatus `json:"status"`
	IsVerified     bool              `json:"is_verified"`
	Bio            string            `json:"bio,omitempty"`
	FavoriteGenres []string          `json:"favorite_genres,omitempty"`
}

// UpdateProfileRequest - частичное обновление профиля
type UpdateProfileRequest struct {
	Bio            *string  `json:"bio,omitempty" binding:"omitempty,max=500"`
	FavoriteGenres []string `json:"favorite_genres,omitempty" binding:"omitempty,max=18"`
}

// UserSearchFilter - фильтр поиска пользователей по username/email
type UserSearchFilter struct {
	Query    string `form:"q" binding:"required,min=2"`
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=50"`
}

// PublicUserDTO - то, что видят другие пользователи при поиске
type PublicUserDTO struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Bio      string `json:"bio,omitempty"`
}
