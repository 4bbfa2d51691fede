package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"hangman_web/internal/service"
)

// 定義 WebSocket 升級器
var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // 注意：在生產環境中，應該檢查 origin
	},
}

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = 54 * time.Second
)

// WebSocketHandler 把房間的即時快照推送給已加入的玩家
// 收到 room_deleted 事件後連接即結束，客戶端必須把它當作房間已關閉
type WebSocketHandler struct {
	broadcaster *service.RoomBroadcaster
	roomService *service.RoomService
}

// NewWebSocketHandler 創建一個新的 WebSocketHandler 實例
func NewWebSocketHandler(broadcaster *service.RoomBroadcaster, roomService *service.RoomService) *WebSocketHandler {
	return &WebSocketHandler{
		broadcaster: broadcaster,
		roomService: roomService,
	}
}

// HandleWebSocket 處理 WebSocket 連接請求
func (h *WebSocketHandler) HandleWebSocket(c *gin.Context) {
	roomID, ok := parseRoomID(c)
	if !ok {
		return
	}
	userID, _ := actingUser(c)

	// 升級前先驗證房間存在且用戶已是成員
	room, err := h.roomService.GetRoom(roomID)
	if err != nil {
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}
	if player, _ := room.FindPlayer(userID); player == nil {
		c.JSON(http.StatusForbidden, gin.H{"error": service.ErrNotInRoom.Error()})
		return
	}

	// 升級 HTTP 連接為 WebSocket 連接
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "升級WebSocket失敗"})
		return
	}

	sub := h.broadcaster.Subscribe(roomID)
	defer func() {
		h.broadcaster.Unsubscribe(sub)
		conn.Close()
		// 連線結束代表玩家離線；純屬顯示用途，失敗可忽略
		_ = h.roomService.SetPlayerOnline(roomID, userID, false)
	}()

	// 上線標記會經由 Publish 推給所有訂閱者，連自己的初始快照一併送達
	if err := h.roomService.SetPlayerOnline(roomID, userID, true); err != nil {
		return
	}

	done := make(chan struct{})
	go h.readPump(conn, done)
	h.writePump(conn, sub, done)
}

// readPump 只負責消化控制幀並偵測客戶端斷線，訂閱是單向的
func (h *WebSocketHandler) readPump(conn *websocket.Conn, done chan<- struct{}) {
	defer close(done)

	conn.SetReadLimit(512)
	conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

// writePump 把房間事件寫給客戶端並維持心跳
func (h *WebSocketHandler) writePump(conn *websocket.Conn, sub *service.RoomSubscriber, done <-chan struct{}) {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case event, ok := <-sub.Events:
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				// 訂閱被廣播器移除（積壓過多或服務關閉）
				conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			if err := conn.WriteJSON(event); err != nil {
				return
			}

			// 終止事件：房間已不存在，推完就斷線
			if event.Type == service.EventRoomDeleted {
				conn.WriteMessage(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseNormalClosure, "room closed"))
				return
			}

		case <-ticker.C:
			// 發送心跳包
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}

		case <-done:
			return
		}
	}
}
