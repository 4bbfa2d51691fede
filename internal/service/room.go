package service

import (
	"errors"
	"time"

	"hangman_web/internal/models"
	"hangman_web/internal/repository"
	"hangman_web/internal/utils"
)

const (
	defaultMaxPlayers      = 6
	defaultMaxWrongGuesses = 6
)

// RoomService 管理房間的生命週期：建立、加入、離開、房主移交與開局
type RoomService struct {
	roomRepo    repository.RoomRepository
	wordService *WordService
	broadcaster *RoomBroadcaster
	retries     int
}

func NewRoomService(roomRepo repository.RoomRepository, wordService *WordService, broadcaster *RoomBroadcaster, retries int) *RoomService {
	if retries < 1 {
		retries = 1
	}
	return &RoomService{
		roomRepo:    roomRepo,
		wordService: wordService,
		broadcaster: broadcaster,
		retries:     retries,
	}
}

// mutateRoom 執行一次「讀取-計算-版本檢查寫回」，版本衝突時整段重來。
// mutate 回傳錯誤時不會寫入任何狀態。
func mutateRoom(repo repository.RoomRepository, roomID uint, retries int, mutate func(*models.Room) error) (*models.Room, error) {
	var lastErr error
	for attempt := 0; attempt < retries; attempt++ {
		room, err := repo.FindByID(roomID)
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrRoomNotFound
		}
		if err != nil {
			return nil, err
		}

		if err := mutate(room); err != nil {
			return nil, err
		}

		err = repo.UpdateVersioned(room)
		if err == nil {
			return room, nil
		}
		if !errors.Is(err, repository.ErrVersionConflict) {
			return nil, err
		}
		lastErr = err
	}
	return nil, lastErr
}

// CreateRoom 建立新房間並讓房主入座
// 邀請碼撞碼時換一個重試；機率上六位 [A-Z0-9] 在這個規模幾乎不會撞
func (s *RoomService) CreateRoom(hostID uint, hostName, category string, difficulty models.Difficulty) (*models.Room, error) {
	if category == "" {
		category = models.CategoryAll
	}
	if difficulty == "" {
		difficulty = models.DifficultyMedium
	}

	for {
		code, err := utils.GenerateRoomCode()
		if err != nil {
			return nil, err
		}

		_, err = s.roomRepo.FindByCode(code)
		if err == nil {
			continue // 撞碼，換一個
		}
		if !errors.Is(err, repository.ErrNotFound) {
			return nil, err
		}

		room := &models.Room{
			Code:     code,
			HostID:   hostID,
			HostName: hostName,
			Players: models.PlayerList{{
				ID:       hostID,
				Name:     hostName,
				IsHost:   true,
				IsOnline: true,
				JoinedAt: time.Now(),
			}},
			Status:             models.RoomStatusWaiting,
			Category:           category,
			Difficulty:         difficulty,
			GuessedLetters:     models.LetterList{},
			WrongGuesses:       0,
			MaxWrongGuesses:    defaultMaxWrongGuesses,
			MaxPlayers:         defaultMaxPlayers,
			CurrentPlayerIndex: 0,
			HintUsed:           false,
		}

		if err := s.roomRepo.Create(room); err != nil {
			return nil, err
		}
		return room, nil
	}
}

func (s *RoomService) GetRoom(roomID uint) (*models.Room, error) {
	room, err := s.roomRepo.FindByID(roomID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrRoomNotFound
	}
	return room, err
}

func (s *RoomService) GetRoomByCode(code string) (*models.Room, error) {
	room, err := s.roomRepo.FindByCode(code)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrRoomNotFound
	}
	return room, err
}

// ListWaitingRooms 查詢可加入的房間，供大廳顯示
func (s *RoomService) ListWaitingRooms() ([]models.Room, error) {
	return s.roomRepo.FindWaiting()
}

// JoinRoom 讓玩家加入等待中的房間
func (s *RoomService) JoinRoom(roomID, playerID uint, playerName string) error {
	room, err := mutateRoom(s.roomRepo, roomID, s.retries, func(room *models.Room) error {
		if len(room.Players) >= room.MaxPlayers {
			return ErrRoomFull
		}
		if room.Status != models.RoomStatusWaiting {
			return ErrGameAlreadyStarted
		}
		if existing, _ := room.FindPlayer(playerID); existing != nil {
			return ErrAlreadyJoined
		}

		room.Players = append(room.Players, models.Player{
			ID:       playerID,
			Name:     playerName,
			IsHost:   false,
			IsOnline: true,
			JoinedAt: time.Now(),
		})
		return nil
	})
	if err != nil {
		return err
	}

	s.broadcaster.Publish(room)
	return nil
}

// LeaveRoom 讓玩家離開房間
// 房主離開時移交給列表中下一位；最後一人離開時整個房間刪除，
// 訂閱者會收到終止事件。房間或玩家不存在時視為已離開，不回報錯誤。
func (s *RoomService) LeaveRoom(roomID, playerID uint) error {
	var lastErr error
	for attempt := 0; attempt < s.retries; attempt++ {
		room, err := s.roomRepo.FindByID(roomID)
		if errors.Is(err, repository.ErrNotFound) {
			return nil
		}
		if err != nil {
			return err
		}

		leaving, idx := room.FindPlayer(playerID)
		if leaving == nil {
			return nil
		}

		// 最後一人離開，刪除房間
		if len(room.Players) <= 1 {
			if err := s.roomRepo.Delete(roomID); err != nil {
				return err
			}
			s.broadcaster.PublishDeleted(roomID)
			return nil
		}

		wasHost := leaving.IsHost
		players := append(models.PlayerList{}, room.Players[:idx]...)
		players = append(players, room.Players[idx+1:]...)

		if wasHost {
			// 移交給剩餘列表中的第一位
			players[0].IsHost = true
			room.HostID = players[0].ID
			room.HostName = players[0].Name
		}

		room.Players = players
		// 只把輪次索引折回合法範圍。移除發生在目前玩家之前時，
		// 索引指到的玩家身分會往後偏移一位，這是沿用的既有行為（見 DESIGN.md）
		room.CurrentPlayerIndex %= len(players)

		err = s.roomRepo.UpdateVersioned(room)
		if err == nil {
			s.broadcaster.Publish(room)
			return nil
		}
		if !errors.Is(err, repository.ErrVersionConflict) {
			return err
		}
		lastErr = err
	}
	return lastErr
}

// StartGame 由房主開局：抽謎底、重置回合計數並進入 playing 狀態
func (s *RoomService) StartGame(roomID, actingPlayerID uint) error {
	room, err := mutateRoom(s.roomRepo, roomID, s.retries, func(room *models.Room) error {
		if room.HostID != actingPlayerID {
			return ErrNotHost
		}
		if room.Status != models.RoomStatusWaiting {
			return ErrGameAlreadyStarted
		}
		word, err := s.wordService.RandomWord(room.Difficulty, room.Category)
		if err != nil {
			return err
		}
		startRound(room, word)
		return nil
	})
	if err != nil {
		return err
	}

	s.broadcaster.Publish(room)
	return nil
}

// RestartRound 在一局結束後由房主用新謎底再開一局
func (s *RoomService) RestartRound(roomID, actingPlayerID uint) error {
	room, err := mutateRoom(s.roomRepo, roomID, s.retries, func(room *models.Room) error {
		if room.HostID != actingPlayerID {
			return ErrNotHost
		}
		if room.Status != models.RoomStatusFinished {
			return ErrRoundNotFinished
		}
		word, err := s.wordService.RandomWord(room.Difficulty, room.Category)
		if err != nil {
			return err
		}
		startRound(room, word)
		return nil
	})
	if err != nil {
		return err
	}

	s.broadcaster.Publish(room)
	return nil
}

// SetPlayerOnline 標記玩家的連線狀態，僅供顯示
// 離線玩家的輪次不會被自動跳過，這是沿用的既有行為
func (s *RoomService) SetPlayerOnline(roomID, playerID uint, online bool) error {
	room, err := mutateRoom(s.roomRepo, roomID, s.retries, func(room *models.Room) error {
		player, _ := room.FindPlayer(playerID)
		if player == nil {
			return ErrNotInRoom
		}
		if player.IsOnline == online {
			return nil
		}
		player.IsOnline = online
		return nil
	})
	if errors.Is(err, ErrRoomNotFound) || errors.Is(err, ErrNotInRoom) {
		return nil
	}
	if err != nil {
		return err
	}

	s.broadcaster.Publish(room)
	return nil
}
