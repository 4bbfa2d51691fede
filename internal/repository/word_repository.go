package repository

import (
	"errors"

	"gorm.io/gorm"

	"hangman_web/internal/models"
	"hangman_web/internal/storage"
)

type WordRepository interface {
	// Random 依難度與分類隨機取一個謎底，category 為 models.CategoryAll 時不過濾分類
	Random(difficulty models.Difficulty, category string) (*models.Word, error)
	FindByCategory(category string) ([]models.Word, error)
	Categories() ([]string, error)
	Count() (int64, error)
	CreateBatch(words []models.Word) error
}

type wordRepository struct {
	db *storage.PostgresDB
}

func NewWordRepository(db *storage.PostgresDB) WordRepository {
	return &wordRepository{db: db}
}

func (r *wordRepository) Random(difficulty models.Difficulty, category string) (*models.Word, error) {
	query := r.db.Where("difficulty = ?", difficulty)
	if category != "" && category != models.CategoryAll {
		query = query.Where("category = ?", category)
	}

	var word models.Word
	err := query.Order("random()").First(&word).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &word, nil
}

func (r *wordRepository) FindByCategory(category string) ([]models.Word, error) {
	var words []models.Word
	err := r.db.Where("category = ?", category).Find(&words).Error
	return words, err
}

func (r *wordRepository) Categories() ([]string, error) {
	var categories []string
	err := r.db.Model(&models.Word{}).Distinct().Order("category").
		Pluck("category", &categories).Error
	return categories, err
}

func (r *wordRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Word{}).Count(&count).Error
	return count, err
}

func (r *wordRepository) CreateBatch(words []models.Word) error {
	if len(words) == 0 {
		return nil
	}
	return r.db.Create(&words).Error
}
