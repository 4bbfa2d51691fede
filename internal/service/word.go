package service

import (
	"errors"

	"hangman_web/internal/models"
	"hangman_web/internal/repository"
)

// WordService 提供依難度與分類篩選的隨機謎底
type WordService struct {
	wordRepo repository.WordRepository
}

func NewWordService(wordRepo repository.WordRepository) *WordService {
	return &WordService{wordRepo: wordRepo}
}

// RandomWord 隨機取一個謎底，沒有任何謎底符合條件時回傳 ErrNoWordAvailable
// 開局流程必須把這個錯誤當作致命的前置條件失敗，不能帶著空謎底繼續
func (s *WordService) RandomWord(difficulty models.Difficulty, category string) (*models.Word, error) {
	word, err := s.wordRepo.Random(difficulty, category)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrNoWordAvailable
	}
	if err != nil {
		return nil, err
	}
	return word, nil
}

func (s *WordService) WordsByCategory(category string) ([]models.Word, error) {
	return s.wordRepo.FindByCategory(category)
}

func (s *WordService) Categories() ([]string, error) {
	return s.wordRepo.Categories()
}

// EnsureSeedWords 在字庫為空時灌入預設謎底，重複呼叫不會重複灌入
func (s *WordService) EnsureSeedWords() error {
	count, err := s.wordRepo.Count()
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	return s.wordRepo.CreateBatch(defaultWords())
}
