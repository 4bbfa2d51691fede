package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hangman_web/internal/service"
)

// WordHandler 處理字庫查詢相關的請求
type WordHandler struct {
	wordService *service.WordService
}

func NewWordHandler(wordService *service.WordService) *WordHandler {
	return &WordHandler{wordService: wordService}
}

// Categories 回傳字庫中所有可選的分類
func (h *WordHandler) Categories(c *gin.Context) {
	categories, err := h.wordService.Categories()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "查詢分類失敗"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"categories": categories})
}
