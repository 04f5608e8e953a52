package auth

import (
	"errors"

	"movieblend_backend/internal/models"
)

// Permissions список разрешений по ролям
var Permissions = map[models.UserRole][]string{
	models.UserRoleAdmin: {
		"users:read",
		"users:write",
		"users:delete",
		"movies:read",
		"movies:write",
		"movies:delete",
		"system:admin",
	},
	models.UserRoleMember: {
		"users:read:self",
		"users:write:self",
		"movies:read",
		"playlists:write:self",
		"friends:write:self",
	},
}

// HasPermission проверяет есть ли у роли указанное разрешение
func HasPermission(role models.UserRole, permission string) bool {
	permissions, exists := Permissions[role]
	if !exists {
		return false
	}

	for _, p := range permissions {
		if p == permission {
			return true
		}
	}
	return false
}

// CanPerformAction проверяет может ли пользователь выполнить действие
func CanPerformAction(claims *Claims, permission string) bool {
	return HasPermission(claims.Role, permission)
}

// IsAdmin проверяет является ли пользователь администратором
func IsAdmin(claims *Claims) bool {
	return claims.Role == models.UserRoleAdmin
}

// ValidateRole проверяет валидность роли
func ValidateRole(role string) error {
	switch models.UserRole(role) {
	case models.UserRoleAdmin, models.UserRoleMember:
		return nil
	default:
		return errors.New("invalid role")
	}
}
