package services

import (
	"movieblend_backend/internal/models"
	"movieblend_backend/internal/repositories"
	"movieblend_backend/internal/services/dto"
	"movieblend_backend/pkg/apperrors"
)

type UserService interface {
	GetByID(userID string) (*dto.UserResponse, error)
	UpdateProfile(userID string, req *dto.UpdateProfileRequest) (*dto.UserResponse, error)
	Search(filter dto.UserSearchFilter) ([]dto.PublicUserDTO, int64, error)
	Delete(userID string) error
}

type UserServiceImpl struct {
	userRepo repositories.UserRepository
}

func NewUserService(userRepo repositories.UserRepository) UserService {
	return &UserServiceImpl{userRepo: userRepo}
}

func (s *UserServiceImpl) GetByID(userID string) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	return buildUserResponse(user), nil
}

func (s *UserServiceImpl) UpdateProfile(userID string, req *dto.UpdateProfileRequest) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	if req.Bio != nil {
		user.Bio = *req.Bio
	}
	if req.FavoriteGenres != nil {
		user.SetFavoriteGenres(req.FavoriteGenres)
	}

	if err := s.userRepo.Update(user); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return buildUserResponse(user), nil
}

func (s *UserServiceImpl) Search(filter dto.UserSearchFilter) ([]dto.PublicUserDTO, int64, error) {
	page := filter.Page
	if page < 1 {
		page = 1
	}
	pageSize := filter.PageSize
	if pageSize < 1 {
		pageSize = 20
	}

	users, total, err := s.userRepo.Search(filter.Query, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, 0, apperrors.InternalError(err)
	}

	result := make([]dto.PublicUserDTO, 0, len(users))
	for i := range users {
		result = append(result, buildPublicUserDTO(&users[i]))
	}

	return result, total, nil
}

func (s *UserServiceImpl) Delete(userID string) error {
	if err := s.userRepo.Delete(userID); err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}
	return nil
}

// --- Helpers ---

func buildUserResponse(user *models.User) *dto.UserResponse {
	return &dto.UserResponse{
		ID:             user.ID,
		Username:       user.Username,
		Email:          user.Email,
		Role:           user.Role,
		Status:         user.Status,
		IsVerified:     user.IsVerified,
		Bio:            user.Bio,
		FavoriteGenres: user.GetFavoriteGenres(),
	}
}

func buildPublicUserDTO(user *models.User) dto.PublicUserDTO {
	return dto.PublicUserDTO{
		ID:       user.ID,
		Username: user.Username,
		Bio:      user.Bio,
	}
}
