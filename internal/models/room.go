package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"gorm.io/gorm"
)

// Room 表示一個多人猜字遊戲房間
// 房間文件是整個遊戲唯一的共享狀態，所有變更都必須經過版本檢查寫入
type Room struct {
	gorm.Model
	Code               string     `gorm:"uniqueIndex;size:6;not null" json:"code"` // 六位邀請碼，建立後不可變
	HostID             uint       `json:"hostId"`
	HostName           string     `json:"hostName"`
	Players            PlayerList `gorm:"type:jsonb" json:"players"` // 列表順序即輪替順序
	Status             RoomStatus `gorm:"type:varchar(20)" json:"status"`
	Category           string     `json:"category"`
	Difficulty         Difficulty `gorm:"type:varchar(10)" json:"difficulty"`
	CurrentWord        string     `json:"-"` // 謎底，不直接序列化給客戶端
	CurrentHint        string     `json:"currentHint"`
	GuessedLetters     LetterList `gorm:"type:jsonb" json:"guessedLetters"`
	WrongGuesses       int        `json:"wrongGuesses"`
	MaxWrongGuesses    int        `json:"maxWrongGuesses"`
	MaxPlayers         int        `json:"maxPlayers"`
	CurrentPlayerIndex int        `json:"currentPlayerIndex"`
	HintUsed           bool       `json:"hintUsed"`
	Version            uint64     `json:"version"` // 樂觀併發控制的單調版本號
}

// RoomStatus 定義房間狀態的類型
type RoomStatus string

const (
	RoomStatusWaiting  RoomStatus = "waiting"
	RoomStatusPlaying  RoomStatus = "playing"
	RoomStatusFinished RoomStatus = "finished"
)

// Difficulty 定義謎底難度的類型
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// CategoryAll 表示不過濾分類
const CategoryAll = "todas"

// Player 表示房間內的一位玩家，整個列表以 JSONB 形式存在房間文件裡
type Player struct {
	ID       uint      `json:"id"`
	Name     string    `json:"name"`
	IsHost   bool      `json:"isHost"` // 任何時刻整個列表恰好一位為 true
	IsOnline bool      `json:"isOnline"`
	JoinedAt time.Time `json:"joinedAt"`
}

// FindPlayer 依玩家 ID 查找，回傳玩家與其在列表中的位置，找不到時位置為 -1
func (r *Room) FindPlayer(playerID uint) (*Player, int) {
	for i := range r.Players {
		if r.Players[i].ID == playerID {
			return &r.Players[i], i
		}
	}
	return nil, -1
}

// CurrentPlayer 回傳輪到的玩家，索引不合法或房間無人時回傳 nil
func (r *Room) CurrentPlayer() *Player {
	if r.CurrentPlayerIndex < 0 || r.CurrentPlayerIndex >= len(r.Players) {
		return nil
	}
	return &r.Players[r.CurrentPlayerIndex]
}

// PlayerList 讓玩家列表以 JSONB 欄位存入 PostgreSQL
type PlayerList []Player

func (l PlayerList) Value() (driver.Value, error) {
	if l == nil {
		l = PlayerList{}
	}
	return json.Marshal(l)
}

func (l *PlayerList) Scan(value interface{}) error {
	if value == nil {
		*l = PlayerList{}
		return nil
	}
	b, ok := value.([]byte)
	if !ok {
		s, ok := value.(string)
		if !ok {
			return errors.New("players 欄位不是合法的 JSONB 資料")
		}
		b = []byte(s)
	}
	return json.Unmarshal(b, l)
}

// LetterList 讓已猜字母列表以 JSONB 欄位存入 PostgreSQL
type LetterList []string

func (l LetterList) Value() (driver.Value, error) {
	if l == nil {
		l = LetterList{}
	}
	return json.Marshal(l)
}

func (l *LetterList) Scan(value interface{}) error {
	if value == nil {
		*l = LetterList{}
		return nil
	}
	b, ok := value.([]byte)
	if !ok {
		s, ok := value.(string)
		if !ok {
			return errors.New("guessed_letters 欄位不是合法的 JSONB 資料")
		}
		b = []byte(s)
	}
	return json.Unmarshal(b, l)
}

// Contains 檢查字母是否已被猜過
func (l LetterList) Contains(letter string) bool {
	for _, g := range l {
		if g == letter {
			return true
		}
	}
	return false
}
