package models

import (
	"gorm.io/gorm"
)

// Word 表示字庫中的一個謎底，含分類、難度與提示文字
type Word struct {
	gorm.Model
	Word       string     `gorm:"not null" json:"word"`
	Category   string     `gorm:"index" json:"category"`
	Difficulty Difficulty `gorm:"type:varchar(10);index" json:"difficulty"`
	Hint       string     `json:"hint"`
}
