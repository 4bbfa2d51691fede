package models

import (
	"gorm.io/gorm"
)

// User 表示系統中的用戶，同時保存跨局的累計戰績
type User struct {
	gorm.Model         // 內嵌 gorm.Model，提供 ID、CreatedAt、UpdatedAt 和 DeletedAt 字段
	Username    string `gorm:"uniqueIndex;not null" json:"username"` // 用戶名，必須唯一
	Password    string `gorm:"not null" json:"-"`                    // 密碼，json 序列化時會被忽略
	GamesPlayed int    `json:"gamesPlayed"`
	GamesWon    int    `json:"gamesWon"`
	GamesLost   int    `json:"gamesLost"` // 目前結算流程不會累加，保留欄位供排行榜讀取
}
