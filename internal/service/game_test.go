package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hangman_web/internal/models"
	"hangman_web/internal/repository"
)

// startedRoom 鋪一個已開局的兩人房間
func startedRoom(t *testing.T, env *testEnv) *models.Room {
	t.Helper()
	room, err := env.rooms.CreateRoom(1, "ana", "", "")
	require.NoError(t, err)
	require.NoError(t, env.rooms.JoinRoom(room.ID, 2, "bruno"))
	require.NoError(t, env.rooms.StartGame(room.ID, 1))

	got, err := env.rooms.GetRoom(room.ID)
	require.NoError(t, err)
	return got
}

func TestNormalizeLetter(t *testing.T) {
	cases := []struct {
		input string
		want  string
		fails bool
	}{
		{input: "a", want: "a"},
		{input: "A", want: "a"},
		{input: " c ", want: "c"},
		{input: "ñ", want: "ñ"},
		{input: "", fails: true},
		{input: "ab", fails: true},
		{input: "1", fails: true},
		{input: "!", fails: true},
	}

	for _, tc := range cases {
		got, err := NormalizeLetter(tc.input)
		if tc.fails {
			assert.ErrorIs(t, err, ErrInvalidLetter, "input %q", tc.input)
			continue
		}
		require.NoError(t, err, "input %q", tc.input)
		assert.Equal(t, tc.want, got)
	}
}

func TestMakeGuessRequiresActiveGame(t *testing.T) {
	env := newTestEnv(testWord("casa"))
	room, err := env.rooms.CreateRoom(1, "ana", "", "")
	require.NoError(t, err)

	assert.ErrorIs(t, env.game.MakeGuess(room.ID, 1, "a"), ErrGameNotActive)
	assert.ErrorIs(t, env.game.MakeGuess(room.ID+9, 1, "a"), ErrRoomNotFound)
}

func TestMakeGuessRequiresAssignedWord(t *testing.T) {
	env := newTestEnv(testWord("casa"))
	room := startedRoom(t, env)

	// 直接鋪一個進行中卻沒有謎底的房間
	room.CurrentWord = ""
	env.roomRepo.put(room)

	assert.ErrorIs(t, env.game.MakeGuess(room.ID, 1, "a"), ErrNoWordAssigned)
}

func TestMakeGuessEnforcesTurnOrder(t *testing.T) {
	env := newTestEnv(testWord("casa"))
	room := startedRoom(t, env)

	// 開局後輪到第一位，第二位的猜測被拒絕
	assert.ErrorIs(t, env.game.MakeGuess(room.ID, 2, "a"), ErrNotYourTurn)

	require.NoError(t, env.game.MakeGuess(room.ID, 1, "a"))

	// 輪次推進後換第一位被拒絕
	assert.ErrorIs(t, env.game.MakeGuess(room.ID, 1, "s"), ErrNotYourTurn)
}

func TestRepeatedLetterDoesNotMutateState(t *testing.T) {
	env := newTestEnv(testWord("casa"))
	room := startedRoom(t, env)

	require.NoError(t, env.game.MakeGuess(room.ID, 1, "z")) // 猜錯
	before, err := env.rooms.GetRoom(room.ID)
	require.NoError(t, err)

	err = env.game.MakeGuess(room.ID, 2, "z")
	assert.ErrorIs(t, err, ErrLetterAlreadyGuessed)

	after, err := env.rooms.GetRoom(room.ID)
	require.NoError(t, err)
	assert.Equal(t, before.GuessedLetters, after.GuessedLetters)
	assert.Equal(t, before.WrongGuesses, after.WrongGuesses)
	assert.Equal(t, before.CurrentPlayerIndex, after.CurrentPlayerIndex)
	assert.Equal(t, before.Version, after.Version)
}

func TestTurnRotatesOnCorrectAndWrongGuess(t *testing.T) {
	env := newTestEnv(testWord("casa"))
	room := startedRoom(t, env)

	require.NoError(t, env.game.MakeGuess(room.ID, 1, "c")) // 猜對
	got, err := env.rooms.GetRoom(room.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.CurrentPlayerIndex)
	assert.Zero(t, got.WrongGuesses)

	require.NoError(t, env.game.MakeGuess(room.ID, 2, "z")) // 猜錯
	got, err = env.rooms.GetRoom(room.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, got.CurrentPlayerIndex)
	assert.Equal(t, 1, got.WrongGuesses)
}

func TestWinningRound(t *testing.T) {
	env := newTestEnv(testWord("casa"))
	room := startedRoom(t, env)

	// casa 只需 c、a、s 三個不同字母；輪替 1 → 2 → 1
	require.NoError(t, env.game.MakeGuess(room.ID, 1, "c"))
	require.NoError(t, env.game.MakeGuess(room.ID, 2, "a"))

	mid, err := env.rooms.GetRoom(room.ID)
	require.NoError(t, err)
	assert.Equal(t, models.RoomStatusPlaying, mid.Status)

	require.NoError(t, env.game.MakeGuess(room.ID, 1, "s"))

	got, err := env.rooms.GetRoom(room.ID)
	require.NoError(t, err)
	assert.Equal(t, models.RoomStatusFinished, got.Status)
	assert.Equal(t, models.LetterList{"c", "a", "s"}, got.GuessedLetters)
	assert.Zero(t, got.WrongGuesses) // 全程沒猜錯

	// 結束後拒絕任何猜測
	assert.ErrorIs(t, env.game.MakeGuess(room.ID, 2, "x"), ErrGameNotActive)

	// 結算是非同步的：所有成員 games_played+1，獲勝時全員 games_won+1
	require.Eventually(t, func() bool {
		p1, w1 := env.userRepo.stats(1)
		p2, w2 := env.userRepo.stats(2)
		return p1 == 1 && w1 == 1 && p2 == 1 && w2 == 1
	}, time.Second, 10*time.Millisecond)
}

func TestLosingRoundAtBoundary(t *testing.T) {
	env := newTestEnv(testWord("casa"))
	room := startedRoom(t, env)

	// 鋪到離輸只差一次
	room.WrongGuesses = room.MaxWrongGuesses - 1
	env.roomRepo.put(room)

	require.NoError(t, env.game.MakeGuess(room.ID, 1, "z"))

	got, err := env.rooms.GetRoom(room.ID)
	require.NoError(t, err)
	assert.Equal(t, models.RoomStatusFinished, got.Status)
	assert.Equal(t, got.MaxWrongGuesses, got.WrongGuesses)

	// 輸局只累加 games_played
	require.Eventually(t, func() bool {
		p1, w1 := env.userRepo.stats(1)
		p2, w2 := env.userRepo.stats(2)
		return p1 == 1 && w1 == 0 && p2 == 1 && w2 == 0
	}, time.Second, 10*time.Millisecond)
}

func TestUseHint(t *testing.T) {
	env := newTestEnv(testWord("casa"))
	room := startedRoom(t, env)

	require.NoError(t, env.game.UseHint(room.ID, 2))

	got, err := env.rooms.GetRoom(room.ID)
	require.NoError(t, err)
	assert.True(t, got.HintUsed)
	assert.Equal(t, 1, got.WrongGuesses)
	// 提示不影響輪次
	assert.Zero(t, got.CurrentPlayerIndex)

	// 一局只能用一次
	assert.ErrorIs(t, env.game.UseHint(room.ID, 1), ErrHintAlreadyUsed)

	// 非成員不能用
	assert.ErrorIs(t, env.game.UseHint(room.ID, 99), ErrNotInRoom)
}

func TestUseHintAtBoundaryLosesRound(t *testing.T) {
	env := newTestEnv(testWord("casa"))
	room := startedRoom(t, env)

	room.WrongGuesses = room.MaxWrongGuesses - 1
	env.roomRepo.put(room)

	require.NoError(t, env.game.UseHint(room.ID, 1))

	got, err := env.rooms.GetRoom(room.ID)
	require.NoError(t, err)
	assert.Equal(t, models.RoomStatusFinished, got.Status)

	require.Eventually(t, func() bool {
		p1, w1 := env.userRepo.stats(1)
		return p1 == 1 && w1 == 0
	}, time.Second, 10*time.Millisecond)
}

func TestUseHintOutsideActiveGame(t *testing.T) {
	env := newTestEnv(testWord("casa"))
	room, err := env.rooms.CreateRoom(1, "ana", "", "")
	require.NoError(t, err)

	assert.ErrorIs(t, env.game.UseHint(room.ID, 1), ErrGameNotActive)
}

func TestGuessRetriesOnVersionConflict(t *testing.T) {
	env := newTestEnv(testWord("casa"))
	room := startedRoom(t, env)

	// 前兩次寫入撞上並發更新，第三次成功
	env.roomRepo.injectConflicts(2)
	require.NoError(t, env.game.MakeGuess(room.ID, 1, "c"))

	got, err := env.rooms.GetRoom(room.ID)
	require.NoError(t, err)
	assert.Equal(t, models.LetterList{"c"}, got.GuessedLetters)
}

func TestGuessGivesUpAfterRetryBudget(t *testing.T) {
	env := newTestEnv(testWord("casa"))
	room := startedRoom(t, env)

	env.roomRepo.injectConflicts(10) // 超過重試上限
	err := env.game.MakeGuess(room.ID, 1, "c")
	assert.ErrorIs(t, err, repository.ErrVersionConflict)

	got, err := env.rooms.GetRoom(room.ID)
	require.NoError(t, err)
	assert.Empty(t, got.GuessedLetters)
}

func TestTurnIndexStaysInRangeAcrossOperations(t *testing.T) {
	env := newTestEnv(testWord("sol"))
	room, err := env.rooms.CreateRoom(1, "ana", "", "")
	require.NoError(t, err)
	require.NoError(t, env.rooms.JoinRoom(room.ID, 2, "bruno"))
	require.NoError(t, env.rooms.JoinRoom(room.ID, 3, "carla"))
	require.NoError(t, env.rooms.StartGame(room.ID, 1))

	letters := []string{"x", "y", "z", "q"}
	players := []uint{1, 2, 3, 1}
	for i := range letters {
		require.NoError(t, env.game.MakeGuess(room.ID, players[i], letters[i]))
		got, err := env.rooms.GetRoom(room.ID)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, got.CurrentPlayerIndex, 0)
		assert.Less(t, got.CurrentPlayerIndex, len(got.Players))
	}

	require.NoError(t, env.rooms.LeaveRoom(room.ID, 2))
	got, err := env.rooms.GetRoom(room.ID)
	require.NoError(t, err)
	assert.Less(t, got.CurrentPlayerIndex, len(got.Players))
}
