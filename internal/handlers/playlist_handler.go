package handlers

import (
	"net/http"

	"movieblend_backend/internal/middleware"
	"movieblend_backend/internal/services"
	"movieblend_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type PlaylistHandler struct {
	*BaseHandler
	playlistService services.PlaylistService
}

func NewPlaylistHandler(base *BaseHandler, playlistService services.PlaylistService) *PlaylistHandler {
	return &PlaylistHandler{
		BaseHandler:     base,
		playlistService: playlistService,
	}
}

func (h *PlaylistHandler) RegisterRoutes(rg *gin.RouterGroup) {
	playlists := rg.Group("/playlists")
	playlists.Use(middleware.AuthMiddleware())
	{
		playlists.POST("", h.Create)
		playlists.GET("", h.List)
		playlists.GET("/:id", h.Get)
		playlists.PATCH("/:id", h.Rename)
		playlists.DELETE("/:id", h.Delete)
		playlists.POST("/:id/movies", h.AddMovie)
		playlists.DELETE("/:id/movies/:movieId", h.RemoveMovie)
	}

	// Быстрые переключатели системных плейлистов
	movies := rg.Group("/movies")
	movies.Use(middleware.AuthMiddleware())
	{
		movies.POST("/:movieId/watch", h.ToggleWatched)
		movies.POST("/:movieId/like", h.ToggleLiked)
	}
}

func (h *PlaylistHandler) Create(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.PlaylistCreateRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	playlist, err := h.playlistService.Create(userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, playlist)
}

func (h *PlaylistHandler) List(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	playlists, err := h.playlistService.List(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"playlists": playlists})
}

func (h *PlaylistHandler) Get(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	playlist, err := h.playlistService.Get(userID, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, playlist)
}

func (h *PlaylistHandler) Rename(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.PlaylistRenameRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	playlist, err := h.playlistService.Rename(userID, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, playlist)
}

func (h *PlaylistHandler) Delete(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	if err := h.playlistService.Delete(userID, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Playlist deleted"})
}

func (h *PlaylistHandler) AddMovie(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.PlaylistAddMovieRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	if err := h.playlistService.AddMovie(userID, c.Param("id"), req.MovieID); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Movie added to playlist"})
}

func (h *PlaylistHandler) RemoveMovie(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	movieID, err := ParseParamInt64(c, "movieId")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	if err := h.playlistService.RemoveMovie(userID, c.Param("id"), movieID); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Movie removed from playlist"})
}

func (h *PlaylistHandler) ToggleWatched(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	movieID, err := ParseParamInt64(c, "movieId")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	result, err := h.playlistService.ToggleWatched(userID, movieID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *PlaylistHandler) ToggleLiked(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	movieID, err := ParseParamInt64(c, "movieId")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	result, err := h.playlistService.ToggleLiked(userID, movieID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
