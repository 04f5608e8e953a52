package validator

import (
	"log"

	"movieblend_backend/internal/algorithms"
	"movieblend_backend/internal/models"

	"github.com/go-playground/validator/v10"
)

// registerCustomRules регистрирует все кастомные функции валидации в
// переданном экземпляре валидатора.
func registerCustomRules(v *validator.Validate) {

	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			// Если правило не удалось зарегистрировать, приложение
			// не должно запускаться, так как это критическая ошибка.
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	// 'is-user-role': Проверяет, что роль пользователя валидна
	mustRegister("is-user-role", validateUserRole)

	// 'is-friendship-status': Проверяет, что статус дружбы валиден
	mustRegister("is-friendship-status", validateFriendshipStatus)

	// 'not-reserved-playlist': Имя плейлиста не совпадает с системными
	mustRegister("not-reserved-playlist", validateNotReservedPlaylist)
}

// --- Функции валидации ---

func validateUserRole(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true // Не проверяем пустые значения, для этого есть 'required'
	}

	switch models.UserRole(value) {
	case models.UserRoleMember, models.UserRoleAdmin:
		return true
	default:
		return false
	}
}

func validateFriendshipStatus(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true // 'required' обрабатывает пустые
	}
	switch models.FriendshipStatus(value) {
	case models.FriendshipStatusPending, models.FriendshipStatusAccepted, models.FriendshipStatusRejected:
		return true
	default:
		return false
	}
}

func validateNotReservedPlaylist(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return value != algorithms.WatchedPlaylistName && value != algorithms.LikedPlaylistName
}
