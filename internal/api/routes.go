package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hangman_web/internal/api/handlers"
	"hangman_web/internal/middleware"
	"hangman_web/internal/service"
)

func SetupRoutes(r *gin.Engine, services *service.Services) {
	// 初始化 handlers
	authHandler := handlers.NewAuthHandler(services.User)
	roomHandler := handlers.NewRoomHandler(services.Room)
	gameHandler := handlers.NewGameHandler(services.Game)
	wordHandler := handlers.NewWordHandler(services.Word)
	wsHandler := handlers.NewWebSocketHandler(services.Broadcaster, services.Room)

	// API 路由群組
	api := r.Group("/api")

	// 處理 404 錯誤
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "找不到該路徑",
		})
	})

	// 公開路由
	{
		// 用戶認證相關
		api.POST("/register", authHandler.Register)
		api.POST("/login", authHandler.Login)

		// 基本的健康檢查
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"status": "ok",
			})
		})
	}

	// 需要驗證的路由
	authorized := api.Group("/")
	authorized.Use(middleware.AuthMiddleware())
	{
		// 遊戲房間相關
		rooms := authorized.Group("/rooms")
		{
			// 基本操作
			rooms.GET("", roomHandler.ListRooms)                // 獲取等待中的房間列表
			rooms.POST("", roomHandler.CreateRoom)              // 創建房間
			rooms.GET("/:id", roomHandler.GetRoom)              // 獲取房間快照
			rooms.GET("/code/:code", roomHandler.GetRoomByCode) // 依邀請碼查房間

			// 房間參與
			rooms.POST("/:id/join", roomHandler.JoinRoom)   // 加入房間
			rooms.POST("/:id/leave", roomHandler.LeaveRoom) // 離開房間

			// 回合操作
			rooms.POST("/:id/start", roomHandler.StartGame)      // 房主開局
			rooms.POST("/:id/restart", roomHandler.RestartRound) // 房主再開一局
			rooms.POST("/:id/guess", gameHandler.MakeGuess)      // 猜一個字母
			rooms.POST("/:id/hint", gameHandler.UseHint)         // 使用提示

			// WebSocket 訂閱（房間快照即時推送）
			rooms.GET("/:id/ws", wsHandler.HandleWebSocket)
		}

		// 字庫相關
		words := authorized.Group("/words")
		{
			words.GET("/categories", wordHandler.Categories)
		}
	}
}
