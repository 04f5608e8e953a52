package handlers

import (
	"net/http"

	"movieblend_backend/internal/middleware"
	"movieblend_backend/internal/services"
	"movieblend_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type FriendshipHandler struct {
	*BaseHandler
	friendshipService services.FriendshipService
}

func NewFriendshipHandler(base *BaseHandler, friendshipService services.FriendshipService) *FriendshipHandler {
	return &FriendshipHandler{
		BaseHandler:       base,
		friendshipService: friendshipService,
	}
}

func (h *FriendshipHandler) RegisterRoutes(rg *gin.RouterGroup) {
	friends := rg.Group("/friends")
	friends.Use(middleware.AuthMiddleware())
	{
		friends.GET("", h.ListFriends)
		friends.POST("/requests", h.SendRequest)
		friends.GET("/requests", h.ListPending)
		friends.POST("/requests/:id/accept", h.Accept)
		friends.POST("/requests/:id/decline", h.Decline)
		friends.DELETE("/:id", h.Remove)
	}
}

func (h *FriendshipHandler) SendRequest(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.FriendRequestCreate
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	friendship, err := h.friendshipService.SendRequest(userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, friendship)
}

func (h *FriendshipHandler) Accept(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	friendship, err := h.friendshipService.Accept(userID, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, friendship)
}

func (h *FriendshipHandler) Decline(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	friendship, err := h.friendshipService.Decline(userID, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, friendship)
}

func (h *FriendshipHandler) Remove(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	if err := h.friendshipService.Remove(userID, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Friendship removed"})
}

func (h *FriendshipHandler) ListFriends(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	friends, err := h.friendshipService.ListFriends(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, friends)
}

func (h *FriendshipHandler) ListPending(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	requests, err := h.friendshipService.ListPending(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"requests": requests})
}
