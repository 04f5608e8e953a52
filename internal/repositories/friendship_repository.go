package repositories

import (
	"errors"

	"movieblend_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrFriendshipNotFound = errors.New("friendship not found")
	ErrFriendshipExists   = errors.New("friendship already exists")
)

type FriendshipRepository interface {
	Create(friendship *models.Friendship) error
	FindByID(id string) (*models.Friendship, error)
	// FindBetween ищет связь в любом направлении (A->B или B->A)
	FindBetween(userA, userB string) (*models.Friendship, error)
	UpdateStatus(id string, status models.FriendshipStatus) error
	Delete(id string) error
	// ListFriends возвращает пользователей, с которыми установлена принятая дружба
	ListFriends(userID string) ([]models.User, error)
	// ListPendingFor возвращает входящие запросы (user - адресат)
	ListPendingFor(userID string) ([]models.Friendship, error)
	// AreFriends проверяет наличие принятой связи между парой
	AreFriends(userA, userB string) (bool, error)
}

type FriendshipRepositoryImpl struct {
	db *gorm.DB
}

func NewFriendshipRepository(db *gorm.DB) FriendshipRepository {
	return &FriendshipRepositoryImpl{db: db}
}

func (r *FriendshipRepositoryImpl) Create(friendship *models.Friendship) error {
	existing, err := r.FindBetween(friendship.RequesterID, friendship.AddresseeID)
	if err != nil && !errors.Is(err, ErrFriendshipNotFound) {
		return err
	}
	if existing != nil {
		return ErrFriendshipExists
	}

	return r.db.Create(friendship).Error
}

func (r *FriendshipRepositoryImpl) FindByID(id string) (*models.Friendship, error) {
	var friendship models.Friendship
	err := r.db.Preload("Requester").Preload("Addressee").
		First(&friendship, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFriendshipNotFound
		}
		return nil, err
	}
	return &friendship, nil
}

func (r *FriendshipRepositoryImpl) FindBetween(userA, userB string) (*models.Friendship, error) {
	var friendship models.Friendship
	err := r.db.Where(
		"(requester_id = ? AND addressee_id = ?) OR (requester_id = ? AND addressee_id = ?)",
		userA, userB, userB, userA,
	).First(&friendship).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFriendshipNotFound
		}
		return nil, err
	}
	return &friendship, nil
}

func (r *FriendshipRepositoryImpl) UpdateStatus(id string, status models.FriendshipStatus) error {
	result := r.db.Model(&models.Friendship{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrFriendshipNotFound
	}
	return nil
}

func (r *FriendshipRepositoryImpl) Delete(id string) error {
	result := r.db.Where("id = ?", id).Delete(&models.Friendship{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrFriendshipNotFound
	}
	return nil
}

func (r *FriendshipRepositoryImpl) ListFriends(userID string) ([]models.User, error) {
	var users []models.User
	err := r.db.
		Joins(`JOIN friendships f ON (f.requester_id = users.id OR f.addressee_id = users.id)`).
		Where("f.status = ?", models.FriendshipStatusAccepted).
		Where("(f.requester_id = ? OR f.addressee_id = ?)", userID, userID).
		Where("users.id != ?", userID).
		Order("users.username ASC").
		Find(&users).Error
	return users, err
}

func (r *FriendshipRepositoryImpl) ListPendingFor(userID string) ([]models.Friendship, error) {
	var friendships []models.Friendship
	err := r.db.Preload("Requester").
		Where("addressee_id = ? AND status = ?", userID, models.FriendshipStatusPending).
		Order("created_at DESC").
		Find(&friendships).Error
	return friendships, err
}

func (r *FriendshipRepositoryImpl) AreFriends(userA, userB string) (bool, error) {
	friendship, err := r.FindBetween(userA, userB)
	if err != nil {
		if errors.Is(err, ErrFriendshipNotFound) {
			return false, nil
		}
		return false, err
	}
	return friendship.Status == models.FriendshipStatusAccepted, nil
}
