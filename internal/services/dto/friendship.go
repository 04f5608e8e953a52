package dto

import (
	"time"

	"movieblend_backend/internal/models"
)

// FriendRequestCreate - отправка запроса дружбы
type FriendRequestCreate struct {
	AddresseeID string `json:"addressee_id" binding:"required,uuid"`
}

// FriendshipResponse - состояние одной связи
type FriendshipResponse struct {
	ID          string                  `json:"id"`
	RequesterID string                  `json:"requester_id"`
	AddresseeID string                  `json:"addressee_id"`
	Status      models.FriendshipStatus `json:"status"`
	CreatedAt   time.Time               `json:"created_at"`

	Requester *PublicUserDTO `json:"requester,omitempty"`
	Addressee *PublicUserDTO `json:"addressee,omitempty"`
}

// FriendListResponse - список принятых друзей
type FriendListResponse struct {
	Friends []PublicUserDTO `json:"friends"`
	Total   int             `json:"total"`
}
