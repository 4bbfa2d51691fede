package service

import "errors"

// 遊戲與房間操作的錯誤分類。全部是前置條件失敗：
// 引擎只在驗證鏈全數通過後才寫入，這些錯誤絕不伴隨任何狀態變更。
// 儲存層的暫時性錯誤（連線中斷等）不屬於這個分類，會原樣向上傳遞。
var (
	ErrRoomNotFound         = errors.New("房間不存在")
	ErrRoomFull             = errors.New("房間已滿")
	ErrGameAlreadyStarted   = errors.New("遊戲已經開始")
	ErrAlreadyJoined        = errors.New("玩家已在房間內")
	ErrGameNotActive        = errors.New("遊戲尚未進行中")
	ErrNoWordAssigned       = errors.New("尚未指定謎底")
	ErrLetterAlreadyGuessed = errors.New("這個字母已經猜過了")
	ErrHintAlreadyUsed      = errors.New("提示已經用過了")
	ErrNoWordAvailable      = errors.New("沒有符合條件的謎底")
	ErrNotHost              = errors.New("只有房主可以執行這個操作")
	ErrNotYourTurn          = errors.New("還沒輪到你")
	ErrNotInRoom            = errors.New("你不在這個房間內")
	ErrInvalidLetter        = errors.New("猜測必須是單一字母")
	ErrRoundNotFinished     = errors.New("這一局尚未結束")
)
