package ws

import (
	"sync"
	"time"

	"movieblend_backend/internal/logger"
)

// Event - сообщение, отправляемое подключенному клиенту
type Event struct {
	Type      string    `json:"type"`
	Payload   any       `json:"payload"`
	Timestamp time.Time `json:"timestamp"`
}

type WebSocketManager struct {
	clients    map[string]*Client
	register   chan *Client
	unregister chan *Client
	mu         sync.RWMutex
}

func NewWebSocketManager() *WebSocketManager {
	return &WebSocketManager{
		clients:    make(map[string]*Client),
		register:   make(chan *Client),
		unregister: make(chan *Client),
	}
}

func (manager *WebSocketManager) Run() {
	for {
		select {
		case client := <-manager.register:
			manager.mu.Lock()
			// Одно соединение на пользователя: старое вытесняется
			if old, ok := manager.clients[client.ID]; ok {
				close(old.Send)
			}
			manager.clients[client.ID] = client
			total := len(manager.clients)
			manager.mu.Unlock()
			logger.Info("WebSocket client registered", "user_id", client.ID, "total", total)

		case client := <-manager.unregister:
			manager.mu.Lock()
			if current, ok := manager.clients[client.ID]; ok && current == client {
				close(client.Send)
				delete(manager.clients, client.ID)
			}
			total := len(manager.clients)
			manager.mu.Unlock()
			logger.Info("WebSocket client unregistered", "user_id", client.ID, "total", total)
		}
	}
}

// SendToUser отправляет событие конкретному пользователю, если он подключен
func (manager *WebSocketManager) SendToUser(userID string, event Event) {
	manager.mu.RLock()
	client, ok := manager.clients[userID]
	manager.mu.RUnlock()
	if !ok {
		return
	}

	select {
	case client.Send <- event:
	default:
		// Канал заполнен, клиент отключается
		go func() {
			manager.unregister <- client
		}()
	}
}

// GetClientCount возвращает количество подключенных клиентов
func (manager *WebSocketManager) GetClientCount() int {
	manager.mu.RLock()
	defer manager.mu.RUnlock()
	return len(manager.clients)
}

// IsClientConnected проверяет, подключен ли клиент
func (manager *WebSocketManager) IsClientConnected(userID string) bool {
	manager.mu.RLock()
	defer manager.mu.RUnlock()
	_, exists := manager.clients[userID]
	return exists
}

// ============================================================================
// Реализация services.FriendshipNotifier
// ============================================================================

func (manager *WebSocketManager) NotifyFriendRequest(addresseeID, requesterName string) {
	manager.SendToUser(addresseeID, Event{
		Type:      "friend_request",
		Payload:   map[string]string{"from": requesterName},
		Timestamp: time.Now(),
	})
}

func (manager *WebSocketManager) NotifyFriendAccepted(requesterID, addresseeName string) {
	manager.SendToUser(requesterID, Event{
		Type:      "friend_accepted",
		Payload:   map[string]string{"by": addresseeName},
		Timestamp: time.Now(),
	})
}
