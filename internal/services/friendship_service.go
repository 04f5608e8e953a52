package services

import (
	"fmt"

	"movieblend_backend/internal/email"
	"movieblend_backend/internal/models"
	"movieblend_backend/internal/repositories"
	"movieblend_backend/internal/services/dto"
	"movieblend_backend/pkg/apperrors"
)

type FriendshipService interface {
	SendRequest(requesterID string, req *dto.FriendRequestCreate) (*dto.FriendshipResponse, error)
	Accept(userID, friendshipID string) (*dto.FriendshipResponse, error)
	Decline(userID, friendshipID string) (*dto.FriendshipResponse, error)
	Remove(userID, friendshipID string) error
	ListFriends(userID string) (*dto.FriendListResponse, error)
	ListPending(userID string) ([]dto.FriendshipResponse, error)
}

// FriendshipNotifier получает события дружбы (реализуется ws-хабом)
type FriendshipNotifier interface {
	NotifyFriendRequest(addresseeID, requesterName string)
	NotifyFriendAccepted(requesterID, addresseeName string)
}

type FriendshipServiceImpl struct {
	friendshipRepo repositories.FriendshipRepository
	userRepo       repositories.UserRepository
	emailProvider  email.Provider
	notifier       FriendshipNotifier
}

func NewFriendshipService(
	friendshipRepo repositories.FriendshipRepository,
	userRepo repositories.UserRepository,
	emailProvider email.Provider,
	notifier FriendshipNotifier,
) FriendshipService {
	return &FriendshipServiceImpl{
		friendshipRepo: friendshipRepo,
		userRepo:       userRepo,
		emailProvider:  emailProvider,
		notifier:       notifier,
	}
}

// SendRequest - отправка запроса дружбы
func (s *FriendshipServiceImpl) SendRequest(requesterID string, req *dto.FriendRequestCreate) (*dto.FriendshipResponse, error) {
	if requesterID == req.AddresseeID {
		return nil, apperrors.ErrCannotModifySelf
	}

	addressee, err := s.userRepo.FindByID(req.AddresseeID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	requester, err := s.userRepo.FindByID(requesterID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	friendship := &models.Friendship{
		RequesterID: requesterID,
		AddresseeID: req.AddresseeID,
		Status:      models.FriendshipStatusPending,
	}

	if err := s.friendshipRepo.Create(friendship); err != nil {
		if apperrors.Is(err, repositories.ErrFriendshipExists) {
			return nil, apperrors.ErrFriendshipExists
		}
		return nil, apperrors.InternalError(err)
	}

	s.notifyRequest(addressee, requester)

	return buildFriendshipResponse(friendship), nil
}

// Accept - принятие запроса (только адресатом)
func (s *FriendshipServiceImpl) Accept(userID, friendshipID string) (*dto.FriendshipResponse, error) {
	friendship, err := s.loadPendingFor(userID, friendshipID)
	if err != nil {
		return nil, err
	}

	if err := s.friendshipRepo.UpdateStatus(friendship.ID, models.FriendshipStatusAccepted); err != nil {
		return nil, apperrors.InternalError(err)
	}
	friendship.Status = models.FriendshipStatusAccepted

	if s.notifier != nil && friendship.Addressee != nil {
		s.notifier.NotifyFriendAccepted(friendship.RequesterID, friendship.Addressee.Username)
	}

	return buildFriendshipResponse(friendship), nil
}

// Decline - отклонение запроса (только адресатом)
func (s *FriendshipServiceImpl) Decline(userID, friendshipID string) (*dto.FriendshipResponse, error) {
	friendship, err := s.loadPendingFor(userID, friendshipID)
	if err != nil {
		return nil, err
	}

	if err := s.friendshipRepo.UpdateStatus(friendship.ID, models.FriendshipStatusRejected); err != nil {
		return nil, apperrors.InternalError(err)
	}
	friendship.Status = models.FriendshipStatusRejected

	return buildFriendshipResponse(friendship), nil
}

// Remove - разрыв дружбы любой из сторон
func (s *FriendshipServiceImpl) Remove(userID, friendshipID string) error {
	friendship, err := s.friendshipRepo.FindByID(friendshipID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrFriendshipNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}

	if friendship.RequesterID != userID && friendship.AddresseeID != userID {
		return apperrors.NewForbiddenError("Not a participant of this friendship")
	}

	if err := s.friendshipRepo.Delete(friendshipID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *FriendshipServiceImpl) ListFriends(userID string) (*dto.FriendListResponse, error) {
	users, err := s.friendshipRepo.ListFriends(userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	friends := make([]dto.PublicUserDTO, 0, len(users))
	for i := range users {
		friends = append(friends, buildPublicUserDTO(&users[i]))
	}

	return &dto.FriendListResponse{
		Friends: friends,
		Total:   len(friends),
	}, nil
}

func (s *FriendshipServiceImpl) ListPending(userID string) ([]dto.FriendshipResponse, error) {
	friendships, err := s.friendshipRepo.ListPendingFor(userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	result := make([]dto.FriendshipResponse, 0, len(friendships))
	for i := range friendships {
		result = append(result, *buildFriendshipResponse(&friendships[i]))
	}
	return result, nil
}

// --- Helpers ---

// loadPendingFor загружает запрос и проверяет, что user - его адресат
func (s *FriendshipServiceImpl) loadPendingFor(userID, friendshipID string) (*models.Friendship, error) {
	friendship, err := s.friendshipRepo.FindByID(friendshipID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrFriendshipNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	if friendship.AddresseeID != userID {
		return nil, apperrors.ErrNotRequestAddressee
	}

	if friendship.Status != models.FriendshipStatusPending {
		return nil, apperrors.ErrInvalidStatus("friendship", "Request is not pending")
	}

	return friendship, nil
}

func (s *FriendshipServiceImpl) notifyRequest(addressee, requester *models.User) {
	if s.notifier != nil {
		s.notifier.NotifyFriendRequest(addressee.ID, requester.Username)
	}

	if s.emailProvider == nil {
		return
	}

	go func() {
		data := email.TemplateData{
			"AddresseeName": addressee.Username,
			"RequesterName": requester.Username,
			"RequestsURL":   "https://movieblend.app/friends/requests",
		}
		if err := s.emailProvider.SendTemplate(
			[]string{addressee.Email}, "Новый запрос в друзья", "friend_request", data,
		); err != nil {
			fmt.Printf("Failed to send friend request email: %v\n", err)
		}
	}()
}

func buildFriendshipResponse(f *models.Friendship) *dto.FriendshipResponse {
	resp := &dto.FriendshipResponse{
		ID:          f.ID,
		RequesterID: f.RequesterID,
		AddresseeID: f.AddresseeID,
		Status:      f.Status,
		CreatedAt:   f.CreatedAt,
	}
	if f.Requester != nil {
		r := buildPublicUserDTO(f.Requester)
		resp.Requester = &r
	}
	if f.Addressee != nil {
		a := buildPublicUserDTO(f.Addressee)
		resp.Addressee = &a
	}
	return resp
}
