package handler

import (
	"github.com/bitfantasy/orgdesk/internal/service"
	"github.com/gin-gonic/gin"
)

// AssistantHandler 智能助手处理器
type AssistantHandler struct {
	svc *service.AssistantService
}

// NewAssistantHandler 创建助手处理器
func NewAssistantHandler(svc *service.AssistantService) *AssistantHandler {
	return &AssistantHandler{svc: svc}
}

// askRequest 提问请求体
type askRequest struct {
	Prompt string `json:"prompt" binding:"required"`
}

// Ask 向助手提问
// 请求在模拟延迟期间挂起，客户端断开时随请求上下文取消。
func (h *AssistantHandler) Ask(c *gin.Context) {
	var req askRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Prompt is required")
		return
	}

	reply, err := h.svc.Ask(c.Request.Context(), req.Prompt)
	if err != nil {
		InternalError(c, err.Error())
		return
	}

	Success(c, gin.H{"reply": reply})
}
