package service

import (
	"hangman_web/internal/repository"
	"hangman_web/pkg/config"
)

type Services struct {
	User        *UserService
	Room        *RoomService
	Game        *GameService
	Word        *WordService
	Broadcaster *RoomBroadcaster
}

func NewServices(repos *repository.Repositories, cfg *config.Config) *Services {
	broadcaster := NewRoomBroadcaster()
	wordService := NewWordService(repos.Word)
	retries := cfg.Game.GuessRetries

	return &Services{
		User:        NewUserService(repos.User),
		Room:        NewRoomService(repos.Room, wordService, broadcaster, retries),
		Game:        NewGameService(repos.Room, repos.User, broadcaster, retries),
		Word:        wordService,
		Broadcaster: broadcaster,
	}
}
