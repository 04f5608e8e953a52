package handlers

import (
	"net/http"

	"movieblend_backend/internal/middleware"
	"movieblend_backend/internal/models"
	"movieblend_backend/internal/services"
	"movieblend_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type MovieHandler struct {
	*BaseHandler
	movieService services.MovieService
}

func NewMovieHandler(base *BaseHandler, movieService services.MovieService) *MovieHandler {
	return &MovieHandler{
		BaseHandler:  base,
		movieService: movieService,
	}
}

func (h *MovieHandler) RegisterRoutes(rg *gin.RouterGroup) {
	// Каталог и справочник жанров открыты без аутентификации
	rg.GET("/genres", h.ListGenres)

	movies := rg.Group("/movies")
	{
		movies.GET("", h.Search)
		movies.GET("/:movieId", h.GetMovie)
	}

	// Управление каталогом - только для админов
	admin := rg.Group("/movies")
	admin.Use(middleware.AuthMiddleware())
	admin.Use(middleware.RoleMiddleware(models.UserRoleAdmin))
	{
		admin.POST("", h.CreateMovie)
		admin.DELETE("/:movieId", h.DeleteMovie)
	}
}

func (h *MovieHandler) ListGenres(c *gin.Context) {
	genres, err := h.movieService.ListGenres()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"genres": genres})
}

func (h *MovieHandler) Search(c *gin.Context) {
	var filter dto.MovieSearchFilter
	if !h.BindAndValidate_Query(c, &filter) {
		return
	}

	result, err := h.movieService.Search(filter)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *MovieHandler) GetMovie(c *gin.Context) {
	movieID, err := ParseParamInt64(c, "movieId")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	movie, err := h.movieService.GetByID(movieID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, movie)
}

func (h *MovieHandler) CreateMovie(c *gin.Context) {
	var req dto.MovieCreateRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	movie, err := h.movieService.Create(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, movie)
}

func (h *MovieHandler) DeleteMovie(c *gin.Context) {
	movieID, err := ParseParamInt64(c, "movieId")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	if err := h.movieService.Delete(movieID); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Movie deleted"})
}
