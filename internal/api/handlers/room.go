package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"hangman_web/internal/models"
	"hangman_web/internal/service"
)

// RoomHandler 處理房間生命週期相關的請求
type RoomHandler struct {
	roomService *service.RoomService
}

// NewRoomHandler 創建一個新的 RoomHandler 實例
func NewRoomHandler(roomService *service.RoomService) *RoomHandler {
	return &RoomHandler{roomService: roomService}
}

func parseRoomID(c *gin.Context) (uint, bool) {
	roomID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "不存在的房間ID"})
		return 0, false
	}
	return uint(roomID), true
}

func actingUser(c *gin.Context) (uint, string) {
	userID, _ := c.Get("userID")
	username, _ := c.Get("username")
	id, _ := userID.(uint)
	name, _ := username.(string)
	return id, name
}

// CreateRoom 處理創建新房間的請求
func (h *RoomHandler) CreateRoom(c *gin.Context) {
	var input struct {
		Category   string            `json:"category"`
		Difficulty models.Difficulty `json:"difficulty"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, username := actingUser(c)
	room, err := h.roomService.CreateRoom(userID, username, input.Category, input.Difficulty)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "創建房間失敗"})
		return
	}

	c.JSON(http.StatusCreated, service.NewRoomView(room))
}

// ListRooms 列出等待中的房間
func (h *RoomHandler) ListRooms(c *gin.Context) {
	rooms, err := h.roomService.ListWaitingRooms()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "查詢房間列表失敗"})
		return
	}

	views := make([]*service.RoomView, 0, len(rooms))
	for i := range rooms {
		views = append(views, service.NewRoomView(&rooms[i]))
	}
	c.JSON(http.StatusOK, views)
}

// GetRoom 處理獲取房間訊息的請求
func (h *RoomHandler) GetRoom(c *gin.Context) {
	roomID, ok := parseRoomID(c)
	if !ok {
		return
	}

	room, err := h.roomService.GetRoom(roomID)
	if err != nil {
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, service.NewRoomView(room))
}

// GetRoomByCode 依六位邀請碼查房間，供加入畫面使用
func (h *RoomHandler) GetRoomByCode(c *gin.Context) {
	room, err := h.roomService.GetRoomByCode(c.Param("code"))
	if err != nil {
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, service.NewRoomView(room))
}

// JoinRoom 處理加入房間的請求
func (h *RoomHandler) JoinRoom(c *gin.Context) {
	roomID, ok := parseRoomID(c)
	if !ok {
		return
	}

	userID, username := actingUser(c)
	if err := h.roomService.JoinRoom(roomID, userID, username); err != nil {
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "成功加入房間"})
}

// LeaveRoom 處理離開房間的請求
func (h *RoomHandler) LeaveRoom(c *gin.Context) {
	roomID, ok := parseRoomID(c)
	if !ok {
		return
	}

	userID, _ := actingUser(c)
	if err := h.roomService.LeaveRoom(roomID, userID); err != nil {
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "成功離開房間"})
}

// StartGame 處理房主開局的請求
func (h *RoomHandler) StartGame(c *gin.Context) {
	roomID, ok := parseRoomID(c)
	if !ok {
		return
	}

	userID, _ := actingUser(c)
	if err := h.roomService.StartGame(roomID, userID); err != nil {
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "遊戲開始"})
}

// RestartRound 處理房主再開一局的請求
func (h *RoomHandler) RestartRound(c *gin.Context) {
	roomID, ok := parseRoomID(c)
	if !ok {
		return
	}

	userID, _ := actingUser(c)
	if err := h.roomService.RestartRound(roomID, userID); err != nil {
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "新的一局開始"})
}
