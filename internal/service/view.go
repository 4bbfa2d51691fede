package service

import (
	"strings"
	"time"

	"hangman_web/internal/models"
)

// RoomView 是推送給客戶端的房間快照
// 謎底在進行中只以遮罩形式出現，整局結束後才完整揭露
type RoomView struct {
	ID                 uint              `json:"id"`
	Code               string            `json:"code"`
	HostID             uint              `json:"hostId"`
	HostName           string            `json:"hostName"`
	Players            models.PlayerList `json:"players"`
	Status             models.RoomStatus `json:"status"`
	Category           string            `json:"category"`
	Difficulty         models.Difficulty `json:"difficulty"`
	MaskedWord         string            `json:"maskedWord,omitempty"`
	CurrentWord        string            `json:"currentWord,omitempty"`
	CurrentHint        string            `json:"currentHint,omitempty"`
	GuessedLetters     []string          `json:"guessedLetters"`
	WrongLetters       []string          `json:"wrongLetters"`
	WrongGuesses       int               `json:"wrongGuesses"`
	MaxWrongGuesses    int               `json:"maxWrongGuesses"`
	MaxPlayers         int               `json:"maxPlayers"`
	CurrentPlayerIndex int               `json:"currentPlayerIndex"`
	HintUsed           bool              `json:"hintUsed"`
	Version            uint64            `json:"version"`
	UpdatedAt          time.Time         `json:"updatedAt"`
}

// NewRoomView 由房間文件產生客戶端視圖
func NewRoomView(room *models.Room) *RoomView {
	view := &RoomView{
		ID:                 room.ID,
		Code:               room.Code,
		HostID:             room.HostID,
		HostName:           room.HostName,
		Players:            room.Players,
		Status:             room.Status,
		Category:           room.Category,
		Difficulty:         room.Difficulty,
		CurrentHint:        room.CurrentHint,
		GuessedLetters:     room.GuessedLetters,
		WrongLetters:       wrongLetters(room),
		WrongGuesses:       room.WrongGuesses,
		MaxWrongGuesses:    room.MaxWrongGuesses,
		MaxPlayers:         room.MaxPlayers,
		CurrentPlayerIndex: room.CurrentPlayerIndex,
		HintUsed:           room.HintUsed,
		Version:            room.Version,
		UpdatedAt:          room.UpdatedAt,
	}
	if view.GuessedLetters == nil {
		view.GuessedLetters = []string{}
	}

	switch room.Status {
	case models.RoomStatusPlaying:
		view.MaskedWord = maskWord(room.CurrentWord, room.GuessedLetters)
	case models.RoomStatusFinished:
		view.CurrentWord = room.CurrentWord
		view.MaskedWord = maskWord(room.CurrentWord, room.GuessedLetters)
	}
	return view
}

// maskWord 以底線遮住尚未猜出的字母，字元之間以空白分隔
func maskWord(word string, guessed models.LetterList) string {
	if word == "" {
		return ""
	}
	var b strings.Builder
	for i, r := range word {
		if i > 0 {
			b.WriteByte(' ')
		}
		if guessed.Contains(string(r)) {
			b.WriteRune(r)
		} else {
			b.WriteByte('_')
		}
	}
	return b.String()
}

// wrongLetters 列出猜過但不在謎底裡的字母，照猜測順序
func wrongLetters(room *models.Room) []string {
	wrong := []string{}
	for _, letter := range room.GuessedLetters {
		if !strings.Contains(room.CurrentWord, letter) {
			wrong = append(wrong, letter)
		}
	}
	return wrong
}
