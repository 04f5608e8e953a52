package repositories

import (
	"errors"

	"movieblend_backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrGenreNotFound = errors.New("genre not found")

type GenreRepository interface {
	FindAll() ([]models.Genre, error)
	FindByID(id int64) (*models.Genre, error)
	// UpsertAll засеивает справочник, существующие имена обновляются
	UpsertAll(genres []models.Genre) error
	// NameMap возвращает полный справочник как map id -> name для GenreLookup
	NameMap() (map[int64]string, error)
}

type GenreRepositoryImpl struct {
	db *gorm.DB
}

func NewGenreRepository(db *gorm.DB) GenreRepository {
	return &GenreRepositoryImpl{db: db}
}

func (r *GenreRepositoryImpl) FindAll() ([]models.Genre, error) {
	var genres []models.Genre
	err := r.db.Order("name ASC").Find(&genres).Error
	return genres, err
}

func (r *GenreRepositoryImpl) FindByID(id int64) (*models.Genre, error) {
	var genre models.Genre
	err := r.db.First(&genre, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGenreNotFound
		}
		return nil, err
	}
	return &genre, nil
}

func (r *GenreRepositoryImpl) UpsertAll(genres []models.Genre) error {
	if len(genres) == 0 {
		return nil
	}
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"name"}),
	}).Create(&genres).Error
}

func (r *GenreRepositoryImpl) NameMap() (map[int64]string, error) {
	genres, err := r.FindAll()
	if err != nil {
		return nil, err
	}

	m := make(map[int64]string, len(genres))
	for _, g := range genres {
		m[g.ID] = g.Name
	}
	return m, nil
}
