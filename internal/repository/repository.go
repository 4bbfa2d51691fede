package repository

import (
	"errors"

	"hangman_web/internal/storage"
)

// ErrNotFound 表示查詢不到對應的資料列
var ErrNotFound = errors.New("資料不存在")

// ErrVersionConflict 表示版本檢查寫入撞上了並發更新，呼叫端應重新讀取最新狀態後重試
var ErrVersionConflict = errors.New("房間已被其他操作更新")

type Repositories struct {
	User UserRepository
	Room RoomRepository
	Word WordRepository
}

func NewRepositories(db *storage.PostgresDB) *Repositories {
	return &Repositories{
		User: NewUserRepository(db),
		Room: NewRoomRepository(db),
		Word: NewWordRepository(db),
	}
}
