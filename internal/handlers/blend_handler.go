package handlers

import (
	"net/http"

	"movieblend_backend/internal/middleware"
	"movieblend_backend/internal/services"
	"movieblend_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type BlendHandler struct {
	*BaseHandler
	blendService services.BlendService
}

func NewBlendHandler(base *BaseHandler, blendService services.BlendService) *BlendHandler {
	return &BlendHandler{
		BaseHandler:  base,
		blendService: blendService,
	}
}

func (h *BlendHandler) RegisterRoutes(rg *gin.RouterGroup) {
	blend := rg.Group("/blend")
	blend.Use(middleware.AuthMiddleware())
	{
		blend.GET("/profile", h.GetProfile)
		blend.GET("/compatibility/:friendId", h.GetCompatibility)
		blend.GET("/recommendations", h.GetRecommendations)
	}
}

// GetProfile возвращает жанровый профиль текущего пользователя
func (h *BlendHandler) GetProfile(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	profile, err := h.blendService.GetTasteProfile(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

// GetCompatibility возвращает совместимость с другом
func (h *BlendHandler) GetCompatibility(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	result, err := h.blendService.GetCompatibility(userID, c.Param("friendId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetRecommendations возвращает подборку из библиотеки друга
func (h *BlendHandler) GetRecommendations(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.RecommendationsRequest
	if !h.BindAndValidate_Query(c, &req) {
		return
	}

	result, err := h.blendService.GetRecommendations(userID, req.FriendID, req.Limit)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
