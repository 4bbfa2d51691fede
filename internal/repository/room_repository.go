package repository

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"hangman_web/internal/models"
	"hangman_web/internal/storage"
)

type RoomRepository interface {
	Create(room *models.Room) error
	FindByID(id uint) (*models.Room, error)
	FindByCode(code string) (*models.Room, error)
	// UpdateVersioned 以 room.Version 作為前置條件寫回整份房間文件，
	// 版本不符時回傳 ErrVersionConflict 且不寫入任何欄位
	UpdateVersioned(room *models.Room) error
	Delete(id uint) error
	FindWaiting() ([]models.Room, error)
}

type roomRepository struct {
	db *storage.PostgresDB
}

func NewRoomRepository(db *storage.PostgresDB) RoomRepository {
	return &roomRepository{db: db}
}

func (r *roomRepository) Create(room *models.Room) error {
	return r.db.Create(room).Error
}

func (r *roomRepository) FindByID(id uint) (*models.Room, error) {
	var room models.Room
	err := r.db.First(&room, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &room, nil
}

func (r *roomRepository) FindByCode(code string) (*models.Room, error) {
	var room models.Room
	err := r.db.Where("code = ?", code).First(&room).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &room, nil
}

// UpdateVersioned 逐欄寫入而不用 Save，避免 gorm 對零值欄位的省略，
// 並以 WHERE version = ? 保證「讀取-計算-寫回」整段的原子性
func (r *roomRepository) UpdateVersioned(room *models.Room) error {
	current := room.Version
	updates := map[string]interface{}{
		"host_id":              room.HostID,
		"host_name":            room.HostName,
		"players":              room.Players,
		"status":               room.Status,
		"current_word":         room.CurrentWord,
		"current_hint":         room.CurrentHint,
		"guessed_letters":      room.GuessedLetters,
		"wrong_guesses":        room.WrongGuesses,
		"current_player_index": room.CurrentPlayerIndex,
		"hint_used":            room.HintUsed,
		"version":              current + 1,
		"updated_at":           time.Now(),
	}

	result := r.db.Model(&models.Room{}).
		Where("id = ? AND version = ?", room.ID, current).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrVersionConflict
	}

	room.Version = current + 1
	return nil
}

func (r *roomRepository) Delete(id uint) error {
	return r.db.Delete(&models.Room{}, id).Error
}

// FindWaiting 查詢尚在等待玩家加入的房間，供大廳列表使用
func (r *roomRepository) FindWaiting() ([]models.Room, error) {
	var rooms []models.Room
	err := r.db.Where("status = ?", models.RoomStatusWaiting).
		Order("created_at DESC").Find(&rooms).Error
	return rooms, err
}
