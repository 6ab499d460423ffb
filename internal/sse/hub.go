// Package sse 服务端事件推送
// 前端通过一个长连接订阅附件上传进度，渲染进度条。
package sse

import (
	"encoding/json"
	"sync"

	"github.com/bitfantasy/orgdesk/internal/model/entity"
	"go.uber.org/zap"
)

// Event 一条推送事件
type Event struct {
	EventType string `json:"event"`
	Data      string `json:"data"`
}

// Client 一个已连接的订阅端
type Client struct {
	ID     string
	Events chan Event
}

// Hub 管理所有订阅端连接
type Hub struct {
	mu      sync.RWMutex
	clients map[string]*Client
	log     *zap.Logger
}

// NewHub 创建推送中心
func NewHub(log *zap.Logger) *Hub {
	return &Hub{
		clients: make(map[string]*Client),
		log:     log,
	}
}

// Register 注册订阅端
func (h *Hub) Register(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[client.ID] = client
	h.log.Debug("sse client registered",
		zap.String("client", client.ID), zap.Int("total", len(h.clients)))
}

// Unregister 注销订阅端并关闭其事件通道
func (h *Hub) Unregister(clientID string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if client, ok := h.clients[clientID]; ok {
		close(client.Events)
		delete(h.clients, clientID)
		h.log.Debug("sse client unregistered",
			zap.String("client", clientID), zap.Int("total", len(h.clients)))
	}
}

// Broadcast 向所有订阅端广播，缓冲满的连接跳过本条
func (h *Hub) Broadcast(event Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, client := range h.clients {
		select {
		case client.Events <- event:
		default:
			h.log.Debug("sse client buffer full, skipping event",
				zap.String("client", client.ID))
		}
	}
}

// uploadProgressPayload 上传进度事件体
type uploadProgressPayload struct {
	Kind         string  `json:"kind"`
	RecordID     string  `json:"recordId"`
	AttachmentID string  `json:"attachmentId"`
	Name         string  `json:"name"`
	Progress     float64 `json:"progress"`
	IsUploaded   bool    `json:"isUploaded"`
}

// UploadProgress 广播一次附件上传进度变化（实现 service.ProgressNotifier）
func (h *Hub) UploadProgress(kind, recordID string, att entity.Attachment) {
	data, err := json.Marshal(uploadProgressPayload{
		Kind:         kind,
		RecordID:     recordID,
		AttachmentID: att.ID,
		Name:         att.Name,
		Progress:     att.Progress,
		IsUploaded:   att.IsUploaded,
	})
	if err != nil {
		return
	}
	h.Broadcast(Event{EventType: "upload_progress", Data: string(data)})
}
