package handler

import (
	"io"

	"github.com/bitfantasy/orgdesk/internal/sse"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// EventsHandler 服务端事件推送处理器
type EventsHandler struct {
	hub *sse.Hub
}

// NewEventsHandler 创建事件推送处理器
func NewEventsHandler(hub *sse.Hub) *EventsHandler {
	return &EventsHandler{hub: hub}
}

// Stream 订阅事件流
// 连接保持到客户端断开为止，期间持续推送上传进度等事件。
func (h *EventsHandler) Stream(c *gin.Context) {
	client := &sse.Client{
		ID:     uuid.New().String(),
		Events: make(chan sse.Event, 16),
	}
	h.hub.Register(client)
	defer h.hub.Unregister(client.ID)

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")

	c.Stream(func(w io.Writer) bool {
		select {
		case event, ok := <-client.Events:
			if !ok {
				return false
			}
			c.SSEvent(event.EventType, event.Data)
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
}
