package services

import (
	"time"

	"movieblend_backend/internal/algorithms"
	"movieblend_backend/internal/auth"
	"movieblend_backend/internal/config"
	"movieblend_backend/internal/email"
	"movieblend_backend/internal/logger"
	"movieblend_backend/internal/models"
	"movieblend_backend/internal/repositories"
	"movieblend_backend/internal/services/dto"
	"movieblend_backend/pkg/apperrors"

	"github.com/google/uuid"
)

type AuthService interface {
	Register(req *dto.RegisterRequest) error
	Login(req *dto.LoginRequest) (*dto.AuthResponse, error)
	RefreshToken(refreshToken string) (*dto.AuthResponse, error)
	Logout(refreshToken string) error
	VerifyEmail(token string) error
	ChangePassword(userID, currentPassword, newPassword string) error
}

type AuthServiceImpl struct {
	userRepo         repositories.UserRepository
	playlistRepo     repositories.PlaylistRepository
	refreshTokenRepo repositories.RefreshTokenRepository
	emailProvider    email.Provider
}

func NewAuthService(
	userRepo repositories.UserRepository,
	playlistRepo repositories.PlaylistRepository,
	refreshTokenRepo repositories.RefreshTokenRepository,
	emailProvider email.Provider,
) AuthService {
	return &AuthServiceImpl{
		userRepo:         userRepo,
		playlistRepo:     playlistRepo,
		refreshTokenRepo: refreshTokenRepo,
		emailProvider:    emailProvider,
	}
}

// Register - регистрация нового пользователя
func (s *AuthServiceImpl) Register(req *dto.RegisterRequest) error {
	if err := auth.ValidatePassword(req.Password); err != nil {
		return apperrors.ErrWeakPassword
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return apperrors.InternalError(err)
	}

	verificationToken := generateRandomToken()

	user := &models.User{
		Username:          req.Username,
		Email:             req.Email,
		PasswordHash:      hashedPassword,
		Role:              models.UserRoleMember,
		Status:            models.UserStatusPending,
		IsVerified:        false,
		VerificationToken: verificationToken,
	}

	if err := s.userRepo.Create(user); err != nil {
		if apperrors.Is(err, repositories.ErrUserAlreadyExists) {
			return apperrors.ErrEmailAlreadyExists
		}
		return apperrors.InternalError(err)
	}

	// Системные плейлисты создаются сразу, чтобы профиль вкуса
	// можно было строить без дополнительных проверок
	if err := s.createDefaultPlaylists(user.ID); err != nil {
		s.userRepo.Delete(user.ID)
		return apperrors.InternalError(err)
	}

	s.sendVerificationEmail(user.Email, verificationToken)

	return nil
}

// Login - аутентификация пользователя
func (s *AuthServiceImpl) Login(req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.userRepo.FindByEmail(req.Email)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	if err := s.checkUserStatus(user); err != nil {
		return nil, err
	}

	accessToken, err := auth.GenerateToken(user.ID, user.Role)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	refreshToken, err := s.createRefreshToken(user.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.AuthResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         buildUserDTO(user),
	}, nil
}

// RefreshToken - обновление access token по refresh token
func (s *AuthServiceImpl) RefreshToken(refreshToken string) (*dto.AuthResponse, error) {
	token, err := s.refreshTokenRepo.FindByToken(refreshToken)
	if err != nil {
		// Неважно, какая ошибка (не найден или другая) - токен невалиден
		return nil, apperrors.ErrInvalidToken
	}

	if time.Now().After(token.ExpiresAt) {
		s.refreshTokenRepo.DeleteByToken(refreshToken)
		return nil, apperrors.ErrInvalidToken
	}

	user, err := s.userRepo.FindByID(token.UserID)
	if err != nil {
		return nil, apperrors.ErrInvalidToken
	}

	if err := s.checkUserStatus(user); err != nil {
		return nil, err
	}

	accessToken, err := auth.GenerateToken(user.ID, user.Role)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	// Ротация refresh token
	newRefreshToken, err := s.rotateRefreshToken(token.UserID, refreshToken)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.AuthResponse{
		AccessToken:  accessToken,
		RefreshToken: newRefreshToken,
		User:         buildUserDTO(user),
	}, nil
}

// Logout - выход (удаление refresh token)
func (s *AuthServiceImpl) Logout(refreshToken string) error {
	return s.refreshTokenRepo.DeleteByToken(refreshToken)
}

// VerifyEmail - подтверждение email
func (s *AuthServiceImpl) VerifyEmail(token string) error {
	user, err := s.userRepo.FindByVerificationToken(token)
	if err != nil {
		return apperrors.ErrInvalidToken
	}

	return s.userRepo.VerifyUser(user.ID)
}

// ChangePassword - смена пароля (когда пользователь знает текущий)
func (s *AuthServiceImpl) ChangePassword(userID, currentPassword, newPassword string) error {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(currentPassword, user.PasswordHash) {
		return apperrors.ErrInvalidCredentials
	}

	if err := auth.ValidatePassword(newPassword); err != nil {
		return apperrors.ErrWeakPassword
	}

	hashedPassword, err := auth.HashPassword(newPassword)
	if err != nil {
		return apperrors.InternalError(err)
	}

	user.PasswordHash = hashedPassword
	if err := s.userRepo.Update(user); err != nil {
		return apperrors.InternalError(err)
	}

	// Все сессии сбрасываются для безопасности
	s.refreshTokenRepo.DeleteByUserID(user.ID)

	return nil
}

// --- Helper functions ---

// createDefaultPlaylists создает системные плейлисты Watched и Liked
func (s *AuthServiceImpl) createDefaultPlaylists(userID string) error {
	for _, name := range []string{algorithms.WatchedPlaylistName, algorithms.LikedPlaylistName} {
		playlist := &models.Playlist{
			UserID:    userID,
			Name:      name,
			IsDefault: true,
		}
		if err := s.playlistRepo.Create(playlist); err != nil {
			return err
		}
	}
	return nil
}

// createRefreshToken создает и сохраняет refresh token
func (s *AuthServiceImpl) createRefreshToken(userID string) (string, error) {
	cfg := config.GetConfig()

	refreshToken := generateRandomToken()
	refreshTokenExp := time.Now().Add(time.Duration(cfg.JWT.RefreshTTL) * time.Hour)

	refreshTokenModel := &models.RefreshToken{
		UserID:    userID,
		Token:     refreshToken,
		ExpiresAt: refreshTokenExp,
	}

	if err := s.refreshTokenRepo.Create(refreshTokenModel); err != nil {
		return "", err
	}

	return refreshToken, nil
}

// rotateRefreshToken удаляет старый и создает новый refresh token
func (s *AuthServiceImpl) rotateRefreshToken(userID, oldToken string) (string, error) {
	if err := s.refreshTokenRepo.DeleteByToken(oldToken); err != nil {
		return "", err
	}

	return s.createRefreshToken(userID)
}

// checkUserStatus проверяет статус пользователя
func (s *AuthServiceImpl) checkUserStatus(user *models.User) error {
	if user.Status == models.UserStatusBlocked {
		return apperrors.ErrUserBlocked
	}
	if !user.IsVerified {
		return apperrors.ErrEmailNotVerified
	}
	return nil
}

func buildUserDTO(user *models.User) dto.UserDTO {
	return dto.UserDTO{
		ID:         user.ID,
		Username:   user.Username,
		Email:      user.Email,
		Role:       user.Role,
		Status:     user.Status,
		IsVerified: user.IsVerified,
		CreatedAt:  user.CreatedAt,
	}
}

// sendVerificationEmail отправляет email с токеном верификации
func (s *AuthServiceImpl) sendVerificationEmail(to, token string) {
	if s.emailProvider == nil {
		return
	}

	go func() {
		if err := s.emailProvider.SendVerification(to, token); err != nil {
			logger.Error("Не удалось отправить письмо верификации", "email", to, "error", err)
		}
	}()
}

// generateRandomToken генерирует случайный токен
func generateRandomToken() string {
	return uuid.NewString()
}
