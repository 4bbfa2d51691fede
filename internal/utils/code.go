package utils

import (
	"crypto/rand"
)

const (
	codeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	codeLength   = 6
)

// GenerateRoomCode 生成一個六位的房間邀請碼，字元取自 [A-Z0-9]
// 唯一性由呼叫端查重加上資料庫唯一索引保證，這裡只負責隨機性
func GenerateRoomCode() (string, error) {
	b := make([]byte, codeLength)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	for i := range b {
		b[i] = codeAlphabet[int(b[i])%len(codeAlphabet)]
	}
	return string(b), nil
}
