package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hangman_web/internal/service"
)

// GameHandler 處理回合內的操作：猜字與提示
type GameHandler struct {
	gameService *service.GameService
}

func NewGameHandler(gameService *service.GameService) *GameHandler {
	return &GameHandler{gameService: gameService}
}

// MakeGuess 處理猜一個字母的請求
func (h *GameHandler) MakeGuess(c *gin.Context) {
	roomID, ok := parseRoomID(c)
	if !ok {
		return
	}

	var input struct {
		Letter string `json:"letter" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, _ := actingUser(c)
	if err := h.gameService.MakeGuess(roomID, userID, input.Letter); err != nil {
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "已送出猜測"})
}

// UseHint 處理使用提示的請求，代價是猜錯數加一
func (h *GameHandler) UseHint(c *gin.Context) {
	roomID, ok := parseRoomID(c)
	if !ok {
		return
	}

	userID, _ := actingUser(c)
	if err := h.gameService.UseHint(roomID, userID); err != nil {
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "已使用提示"})
}
