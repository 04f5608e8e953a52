package services

import (
	"movieblend_backend/internal/email"
)

// ServiceContainer содержит все сервисы приложения.
type ServiceContainer struct {
	AuthService       AuthService
	UserService       UserService
	FriendshipService FriendshipService
	MovieService      MovieService
	PlaylistService   PlaylistService
	BlendService      BlendService
	EmailService      email.Provider
}
