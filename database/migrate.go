package database

import (
	"fmt"

	"movieblend_backend/internal/config"
	"movieblend_backend/internal/logger"
	"movieblend_backend/internal/models"
	"movieblend_backend/internal/repositories"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var gormDB *gorm.DB

// ConnectGorm инициализирует GORM с драйвером и DSN из конфига
func ConnectGorm() (*gorm.DB, error) {
	if gormDB != nil {
		return gormDB, nil
	}

	cfg := config.GetConfig()

	var dialector gorm.Dialector
	switch cfg.Database.Driver {
	case "mysql":
		dialector = mysql.Open(cfg.Database.DSN)
	case "postgres", "":
		dialector = postgres.Open(cfg.Database.DSN)
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", cfg.Database.Driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to GORM: %w", err)
	}

	gormDB = db
	return db, nil
}

// AutoMigrate выполняет миграцию всех моделей
func AutoMigrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.RefreshToken{},
		&models.Friendship{},
		&models.Genre{},
		&models.Movie{},
		&models.UserGenrePref{},
		&models.Playlist{},
		&models.PlaylistMovie{},
	)
	if err != nil {
		return fmt.Errorf("auto migrate failed: %w", err)
	}

	logger.Info("✅ AutoMigrate успешно завершен")
	return nil
}

// defaultGenres - справочник жанров TMDB. ID фиксированы внешним каталогом.
var defaultGenres = []models.Genre{
	{ID: 28, Name: "Action"},
	{ID: 12, Name: "Adventure"},
	{ID: 16, Name: "Animation"},
	{ID: 35, Name: "Comedy"},
	{ID: 80, Name: "Crime"},
	{ID: 99, Name: "Documentary"},
	{ID: 18, Name: "Drama"},
	{ID: 10751, Name: "Family"},
	{ID: 14, Name: "Fantasy"},
	{ID: 36, Name: "History"},
	{ID: 27, Name: "Horror"},
	{ID: 10402, Name: "Music"},
	{ID: 9648, Name: "Mystery"},
	{ID: 10749, Name: "Romance"},
	{ID: 878, Name: "Science Fiction"},
	{ID: 10770, Name: "TV Movie"},
	{ID: 53, Name: "Thriller"},
	{ID: 10752, Name: "War"},
	{ID: 37, Name: "Western"},
}

// SeedGenres засеивает или обновляет справочник жанров
func SeedGenres(db *gorm.DB) error {
	genreRepo := repositories.NewGenreRepository(db)
	if err := genreRepo.UpsertAll(defaultGenres); err != nil {
		return fmt.Errorf("failed to seed genres: %w", err)
	}
	logger.Info("Genre dictionary seeded", "count", len(defaultGenres))
	return nil
}
