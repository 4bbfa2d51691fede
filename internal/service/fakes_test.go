package service

import (
	"strings"
	"sync"

	"hangman_web/internal/models"
	"hangman_web/internal/repository"
)

// fakeRoomRepo 以記憶體模擬房間儲存，含與正式實作相同的版本檢查語義
// conflicts 可注入指定次數的假性版本衝突，用來驗證重試路徑
type fakeRoomRepo struct {
	mu        sync.Mutex
	rooms     map[uint]*models.Room
	nextID    uint
	conflicts int
}

func newFakeRoomRepo() *fakeRoomRepo {
	return &fakeRoomRepo{rooms: make(map[uint]*models.Room)}
}

func copyRoom(room *models.Room) *models.Room {
	dup := *room
	dup.Players = append(models.PlayerList{}, room.Players...)
	dup.GuessedLetters = append(models.LetterList{}, room.GuessedLetters...)
	return &dup
}

func (r *fakeRoomRepo) Create(room *models.Room) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	room.ID = r.nextID
	r.rooms[room.ID] = copyRoom(room)
	return nil
}

func (r *fakeRoomRepo) FindByID(id uint) (*models.Room, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	room, ok := r.rooms[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return copyRoom(room), nil
}

func (r *fakeRoomRepo) FindByCode(code string) (*models.Room, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, room := range r.rooms {
		if room.Code == code {
			return copyRoom(room), nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeRoomRepo) UpdateVersioned(room *models.Room) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.conflicts > 0 {
		r.conflicts--
		return repository.ErrVersionConflict
	}

	stored, ok := r.rooms[room.ID]
	if !ok || stored.Version != room.Version {
		return repository.ErrVersionConflict
	}

	room.Version++
	r.rooms[room.ID] = copyRoom(room)
	return nil
}

func (r *fakeRoomRepo) Delete(id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.rooms, id)
	return nil
}

func (r *fakeRoomRepo) FindWaiting() ([]models.Room, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var rooms []models.Room
	for _, room := range r.rooms {
		if room.Status == models.RoomStatusWaiting {
			rooms = append(rooms, *copyRoom(room))
		}
	}
	return rooms, nil
}

// put 直接覆寫儲存內容，供測試鋪設特定狀態
func (r *fakeRoomRepo) put(room *models.Room) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rooms[room.ID] = copyRoom(room)
}

// injectConflicts 讓接下來 n 次寫入回報版本衝突
func (r *fakeRoomRepo) injectConflicts(n int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.conflicts = n
}

// fakeWordRepo 以固定列表模擬字庫，Random 回傳第一個符合條件的謎底
type fakeWordRepo struct {
	words []models.Word
}

func (r *fakeWordRepo) Random(difficulty models.Difficulty, category string) (*models.Word, error) {
	for i := range r.words {
		w := r.words[i]
		if w.Difficulty != difficulty {
			continue
		}
		if category != "" && category != models.CategoryAll && w.Category != category {
			continue
		}
		return &w, nil
	}
	return nil, repository.ErrNotFound
}

func (r *fakeWordRepo) FindByCategory(category string) ([]models.Word, error) {
	var words []models.Word
	for _, w := range r.words {
		if w.Category == category {
			words = append(words, w)
		}
	}
	return words, nil
}

func (r *fakeWordRepo) Categories() ([]string, error) {
	seen := map[string]bool{}
	var categories []string
	for _, w := range r.words {
		if !seen[w.Category] {
			seen[w.Category] = true
			categories = append(categories, w.Category)
		}
	}
	return categories, nil
}

func (r *fakeWordRepo) Count() (int64, error) {
	return int64(len(r.words)), nil
}

func (r *fakeWordRepo) CreateBatch(words []models.Word) error {
	r.words = append(r.words, words...)
	return nil
}

// fakeUserRepo 記錄戰績累加呼叫，供結算測試檢查
type fakeUserRepo struct {
	mu    sync.Mutex
	users map[uint]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uint]*models.User)}
}

func (r *fakeUserRepo) Create(user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	user.ID = uint(len(r.users) + 1)
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) FindByID(id uint) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return user, nil
}

func (r *fakeUserRepo) FindByUsername(username string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.users {
		if strings.EqualFold(user.Username, username) {
			return user, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeUserRepo) IncrementStats(userID uint, won bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[userID]
	if !ok {
		user = &models.User{}
		user.ID = userID
		r.users[userID] = user
	}
	user.GamesPlayed++
	if won {
		user.GamesWon++
	}
	return nil
}

func (r *fakeUserRepo) stats(userID uint) (played, won int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[userID]
	if !ok {
		return 0, 0
	}
	return user.GamesPlayed, user.GamesWon
}

// testEnv 組出一組共享假儲存的服務
type testEnv struct {
	roomRepo    *fakeRoomRepo
	userRepo    *fakeUserRepo
	wordRepo    *fakeWordRepo
	broadcaster *RoomBroadcaster
	rooms       *RoomService
	game        *GameService
}

func newTestEnv(words ...models.Word) *testEnv {
	roomRepo := newFakeRoomRepo()
	userRepo := newFakeUserRepo()
	wordRepo := &fakeWordRepo{words: words}
	broadcaster := NewRoomBroadcaster()
	wordService := NewWordService(wordRepo)

	return &testEnv{
		roomRepo:    roomRepo,
		userRepo:    userRepo,
		wordRepo:    wordRepo,
		broadcaster: broadcaster,
		rooms:       NewRoomService(roomRepo, wordService, broadcaster, 5),
		game:        NewGameService(roomRepo, userRepo, broadcaster, 5),
	}
}
