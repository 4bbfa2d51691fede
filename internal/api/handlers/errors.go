package handlers

import (
	"errors"
	"net/http"

	"hangman_web/internal/repository"
	"hangman_web/internal/service"
)

// statusForError 把服務層的前置條件錯誤對應到 HTTP 狀態碼
// 未列出的錯誤視為儲存層故障，一律回 500
func statusForError(err error) int {
	switch {
	case errors.Is(err, service.ErrRoomNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrRoomFull),
		errors.Is(err, service.ErrGameAlreadyStarted),
		errors.Is(err, service.ErrAlreadyJoined),
		errors.Is(err, service.ErrLetterAlreadyGuessed),
		errors.Is(err, service.ErrHintAlreadyUsed),
		errors.Is(err, service.ErrRoundNotFinished),
		errors.Is(err, repository.ErrVersionConflict):
		return http.StatusConflict
	case errors.Is(err, service.ErrNotHost),
		errors.Is(err, service.ErrNotYourTurn),
		errors.Is(err, service.ErrNotInRoom):
		return http.StatusForbidden
	case errors.Is(err, service.ErrGameNotActive),
		errors.Is(err, service.ErrNoWordAssigned),
		errors.Is(err, service.ErrInvalidLetter),
		errors.Is(err, service.ErrNoWordAvailable):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
