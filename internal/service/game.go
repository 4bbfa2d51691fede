package service

import (
	"log"
	"strings"
	"unicode"

	"hangman_web/internal/models"
	"hangman_web/internal/repository"
)

// GameService 實作回合引擎：驗證並套用猜字、推進輪次、判定勝負、
// 在結束時以盡力而為的方式結算玩家戰績
type GameService struct {
	roomRepo    repository.RoomRepository
	userRepo    repository.UserRepository
	broadcaster *RoomBroadcaster
	retries     int
}

func NewGameService(roomRepo repository.RoomRepository, userRepo repository.UserRepository, broadcaster *RoomBroadcaster, retries int) *GameService {
	if retries < 1 {
		retries = 1
	}
	return &GameService{
		roomRepo:    roomRepo,
		userRepo:    userRepo,
		broadcaster: broadcaster,
		retries:     retries,
	}
}

// startRound 把房間切入新的一局：寫入小寫謎底並重置回合內的所有計數
func startRound(room *models.Room, word *models.Word) {
	room.Status = models.RoomStatusPlaying
	room.CurrentWord = strings.ToLower(word.Word)
	room.CurrentHint = word.Hint
	room.GuessedLetters = models.LetterList{}
	room.WrongGuesses = 0
	room.CurrentPlayerIndex = 0
	room.HintUsed = false
}

// NormalizeLetter 把輸入正規化成單一小寫字母，不合法時回傳 ErrInvalidLetter
func NormalizeLetter(input string) (string, error) {
	letter := strings.ToLower(strings.TrimSpace(input))
	runes := []rune(letter)
	if len(runes) != 1 || !unicode.IsLetter(runes[0]) {
		return "", ErrInvalidLetter
	}
	return letter, nil
}

// MakeGuess 套用一次猜字
// 驗證順序：房間存在 → 遊戲進行中 → 有謎底 → 輪到猜的人 → 字母未猜過；
// 任何一關失敗都不會寫入狀態。通過後：記錄字母、猜錯加一、
// 無論對錯輪次都往下一位推進，再判定勝負。
func (s *GameService) MakeGuess(roomID, playerID uint, letter string) error {
	letter, err := NormalizeLetter(letter)
	if err != nil {
		return err
	}

	var finished, won bool
	var participants models.PlayerList

	room, err := mutateRoom(s.roomRepo, roomID, s.retries, func(room *models.Room) error {
		finished, won = false, false

		if room.Status != models.RoomStatusPlaying {
			return ErrGameNotActive
		}
		if room.CurrentWord == "" {
			return ErrNoWordAssigned
		}
		current := room.CurrentPlayer()
		if current == nil || current.ID != playerID {
			return ErrNotYourTurn
		}
		if room.GuessedLetters.Contains(letter) {
			return ErrLetterAlreadyGuessed
		}

		room.GuessedLetters = append(room.GuessedLetters, letter)
		if !strings.Contains(room.CurrentWord, letter) {
			room.WrongGuesses++
		}

		// 輪次無條件推進，猜對也不例外
		room.CurrentPlayerIndex = (room.CurrentPlayerIndex + 1) % len(room.Players)

		hasWon := wordRevealed(room.CurrentWord, room.GuessedLetters)
		hasLost := room.WrongGuesses >= room.MaxWrongGuesses
		if hasWon || hasLost {
			room.Status = models.RoomStatusFinished
			finished, won = true, hasWon
			participants = append(models.PlayerList{}, room.Players...)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.broadcaster.Publish(room)
	if finished {
		go s.settleStats(participants, won)
	}
	return nil
}

// UseHint 使用一次性提示：代價是猜錯數加一，且可能直接輸掉這一局
// 提示文字本身由客戶端顯示，這裡只負責計數與一次性旗標
func (s *GameService) UseHint(roomID, playerID uint) error {
	var finished bool
	var participants models.PlayerList

	room, err := mutateRoom(s.roomRepo, roomID, s.retries, func(room *models.Room) error {
		finished = false

		if room.Status != models.RoomStatusPlaying {
			return ErrGameNotActive
		}
		if player, _ := room.FindPlayer(playerID); player == nil {
			return ErrNotInRoom
		}
		if room.HintUsed {
			return ErrHintAlreadyUsed
		}

		room.HintUsed = true
		room.WrongGuesses++
		if room.WrongGuesses >= room.MaxWrongGuesses {
			room.Status = models.RoomStatusFinished
			finished = true
			participants = append(models.PlayerList{}, room.Players...)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.broadcaster.Publish(room)
	if finished {
		go s.settleStats(participants, false)
	}
	return nil
}

// settleStats 在一局結束後逐一累加玩家戰績。盡力而為：
// 單一玩家失敗只記 log，不影響其他玩家也不回滾遊戲結果
func (s *GameService) settleStats(players models.PlayerList, won bool) {
	for _, p := range players {
		if err := s.userRepo.IncrementStats(p.ID, won); err != nil {
			log.Printf("更新玩家 %d 戰績失敗: %v", p.ID, err)
		}
	}
}

// wordRevealed 檢查謎底的每個字母是否都已被猜出
func wordRevealed(word string, guessed models.LetterList) bool {
	for _, r := range word {
		if !guessed.Contains(string(r)) {
			return false
		}
	}
	return true
}
