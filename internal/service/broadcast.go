package service

import (
	"sync"

	"hangman_web/internal/models"
)

// 房間事件類型
const (
	EventRoomState   = "room_state"   // 房間快照更新
	EventRoomDeleted = "room_deleted" // 房間已刪除，訂閱者必須離場
)

// RoomEvent 是推送給訂閱者的一筆事件
// Room 為 nil 且類型為 room_deleted 時表示房間已不存在，屬於終止事件
type RoomEvent struct {
	Type string    `json:"type"`
	Room *RoomView `json:"room,omitempty"`
}

// RoomSubscriber 代表一條對單一房間的訂閱
type RoomSubscriber struct {
	RoomID uint
	Events chan *RoomEvent
}

// RoomBroadcaster 管理所有房間訂閱並在每次成功變更後推送最新快照
type RoomBroadcaster struct {
	subscribers map[uint]map[*RoomSubscriber]bool // 兩層 map: roomID -> subscriber -> bool
	mu          sync.Mutex
}

func NewRoomBroadcaster() *RoomBroadcaster {
	return &RoomBroadcaster{
		subscribers: make(map[uint]map[*RoomSubscriber]bool),
	}
}

// Subscribe 建立對指定房間的訂閱
func (b *RoomBroadcaster) Subscribe(roomID uint) *RoomSubscriber {
	sub := &RoomSubscriber{
		RoomID: roomID,
		Events: make(chan *RoomEvent, 16),
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.subscribers[roomID] == nil {
		b.subscribers[roomID] = make(map[*RoomSubscriber]bool)
	}
	b.subscribers[roomID][sub] = true
	return sub
}

// Unsubscribe 取消訂閱並關閉事件通道，重複呼叫是安全的
func (b *RoomBroadcaster) Unsubscribe(sub *RoomSubscriber) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.removeLocked(sub)
}

// Publish 把更新後的房間快照推給所有訂閱者
func (b *RoomBroadcaster) Publish(room *models.Room) {
	event := &RoomEvent{Type: EventRoomState, Room: NewRoomView(room)}
	b.broadcast(room.ID, event)
}

// PublishDeleted 通知訂閱者房間已不存在，這是該房間的最後一筆事件
func (b *RoomBroadcaster) PublishDeleted(roomID uint) {
	b.broadcast(roomID, &RoomEvent{Type: EventRoomDeleted})
}

func (b *RoomBroadcaster) broadcast(roomID uint, event *RoomEvent) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for sub := range b.subscribers[roomID] {
		select {
		case sub.Events <- event:
			// 事件已進入發送隊列
		default:
			// 訂閱者積壓過多，移除並關閉通道
			b.removeLocked(sub)
		}
	}
}

// removeLocked 必須在持有 b.mu 時呼叫
func (b *RoomBroadcaster) removeLocked(sub *RoomSubscriber) {
	subs, ok := b.subscribers[sub.RoomID]
	if !ok {
		return
	}
	if _, ok := subs[sub]; !ok {
		return
	}
	delete(subs, sub)
	if len(subs) == 0 {
		delete(b.subscribers, sub.RoomID)
	}
	close(sub.Events)
}

// SubscriberCount 回傳指定房間目前的訂閱數
func (b *RoomBroadcaster) SubscriberCount(roomID uint) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subscribers[roomID])
}
