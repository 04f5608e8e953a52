package apperrors

import (
	"net/http"
)

/*
Этот файл содержит фабрики и предопределенные переменные
для общих ошибок бизнес-логики и домена.
*/

// =========================================================================
// Фабричные ФУНКЦИИ (Используются для оборачивания ошибок, напр. из репозитория)
// =========================================================================

// ErrNotFound - фабрика для ошибки "не найдено" (404)
// Используется, когда ошибка репозитория (типа gorm.ErrRecordNotFound)
// должна быть преобразована в AppError.
func ErrNotFound(err error) *AppError {
	return Wrap(err, CodeNotFound, "resource", "Resource not found", http.StatusNotFound)
}

// ErrAlreadyExists - фабрика для ошибки "уже существует" (409)
func ErrAlreadyExists(err error) *AppError {
	return Wrap(err, CodeAlreadyExists, "resource", "Resource already exists", http.StatusConflict)
}

// ErrConflict - общая фабрика для конфликтов (409)
func ErrConflict(err error, domain, message string) *AppError {
	return Wrap(err, CodeConflict, domain, message, http.StatusConflict)
}

// =========================================================================
// Фабричные ФУНКЦИИ (Для создания новых ошибок)
// =========================================================================

// ErrInvalidOperation - фабрика для невалидных операций (400)
func ErrInvalidOperation(domain, message string) *AppError {
	return New(CodeInvalidOperation, domain, message, http.StatusBadRequest)
}

// ErrInvalidStatus - фабрика для невалидных статусов (400)
func ErrInvalidStatus(domain, message string) *AppError {
	return New(CodeInvalidStatus, domain, message, http.StatusBadRequest)
}

// =========================================================================
// Предопределенные ПЕРЕМЕННЫЕ (Для частых, статичных ошибок)
// =========================================================================

// --- Auth & User Status ---

// ErrWeakPassword - пароль слишком слабый.
var ErrWeakPassword = New(
	CodeValidationFailed,
	"validation",
	"Password is too weak. Minimum 8 characters required.",
	http.StatusBadRequest, // 400
)

// ErrEmailAlreadyExists - email уже используется.
var ErrEmailAlreadyExists = New(
	CodeAlreadyExists,
	"auth",
	"Email already in use",
	http.StatusConflict, // 409
)

// ErrUsernameAlreadyExists - имя пользователя уже занято.
var ErrUsernameAlreadyExists = New(
	CodeAlreadyExists,
	"auth",
	"Username already taken",
	http.StatusConflict, // 409
)

// ErrInvalidCredentials - неверный email или пароль.
var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid email or password",
	http.StatusUnauthorized, // 401
)

// ErrInvalidToken - неверный или просроченный токен (refresh, verify).
var ErrInvalidToken = New(
	CodeInvalidToken,
	"auth",
	"Invalid or expired token",
	http.StatusUnauthorized, // 401
)

// ErrUserBlocked - аккаунт заблокирован.
var ErrUserBlocked = New(
	CodeForbidden,
	"auth",
	"Your account has been blocked",
	http.StatusForbidden, // 403
)

// ErrEmailNotVerified - вход запрещен до подтверждения email.
var ErrEmailNotVerified = New(
	CodeForbidden,
	"auth",
	"Email address is not verified",
	http.StatusForbidden, // 403
)

// ErrInsufficientPermissions - используется, когда не-админ пытается выполнить админ-действие.
var ErrInsufficientPermissions = New(
	CodeForbidden,
	"auth",
	"Insufficient permissions",
	http.StatusForbidden, // 403
)

// ErrCannotModifySelf - используется, когда операция над собой не имеет смысла
// (напр. запрос дружбы самому себе).
var ErrCannotModifySelf = New(
	CodeForbidden,
	"business_logic",
	"Operation on self is not allowed",
	http.StatusForbidden, // 403
)

// --- Friendships ---

// ErrFriendshipExists - запрос дружбы между этой парой уже есть.
var ErrFriendshipExists = New(
	CodeAlreadyExists,
	"friendship",
	"Friend request already exists",
	http.StatusConflict, // 409
)

// ErrNotFriends - пользователи не являются друзьями.
var ErrNotFriends = New(
	CodeForbidden,
	"friendship",
	"Users are not friends",
	http.StatusForbidden, // 403
)

// ErrNotRequestAddressee - принять или отклонить запрос может только адресат.
var ErrNotRequestAddressee = New(
	CodeForbidden,
	"friendship",
	"Only the addressee can respond to this request",
	http.StatusForbidden, // 403
)

// --- Playlists ---

// ErrPlaylistNameTaken - у пользователя уже есть плейлист с таким именем.
var ErrPlaylistNameTaken = New(
	CodeAlreadyExists,
	"playlist",
	"Playlist with this name already exists",
	http.StatusConflict, // 409
)

// ErrReservedPlaylistName - имена "Watched" и "Liked" зарезервированы системой.
var ErrReservedPlaylistName = New(
	CodeInvalidOperation,
	"playlist",
	"This playlist name is reserved",
	http.StatusBadRequest, // 400
)

// ErrReservedPlaylist - системные плейлисты нельзя удалять или переименовывать.
var ErrReservedPlaylist = New(
	CodeForbidden,
	"playlist",
	"Reserved playlists cannot be modified",
	http.StatusForbidden, // 403
)

// ErrPlaylistAccessDenied - плейлист принадлежит другому пользователю.
var ErrPlaylistAccessDenied = New(
	CodeForbidden,
	"playlist",
	"Access to playlist denied",
	http.StatusForbidden, // 403
)

// ErrMovieAlreadyInPlaylist - фильм уже есть в этом плейлисте.
var ErrMovieAlreadyInPlaylist = New(
	CodeAlreadyExists,
	"playlist",
	"Movie is already in this playlist",
	http.StatusConflict, // 409
)

// --- Blend ---

// ErrInvalidLimit - отрицательный лимит рекомендаций.
var ErrInvalidLimit = New(
	CodeValidationFailed,
	"blend",
	"Recommendation limit must not be negative",
	http.StatusBadRequest, // 400
)
