package handler

import (
	"errors"

	"github.com/bitfantasy/orgdesk/internal/repository"
	"github.com/bitfantasy/orgdesk/internal/service"
	"github.com/bitfantasy/orgdesk/internal/sse"
	"github.com/gin-gonic/gin"
)

// Handlers 处理器集合
type Handlers struct {
	Employee  *EmployeeHandler
	Document  *DocumentHandler
	Project   *ProjectHandler
	Settings  *SettingsHandler
	Assistant *AssistantHandler
	Dashboard *DashboardHandler
	Events    *EventsHandler
}

// NewHandlers 创建处理器集合
func NewHandlers(svc *service.Services, hub *sse.Hub) *Handlers {
	return &Handlers{
		Employee:  NewEmployeeHandler(svc.Employee),
		Document:  NewDocumentHandler(svc.Document),
		Project:   NewProjectHandler(svc.Project),
		Settings:  NewSettingsHandler(svc.Settings),
		Assistant: NewAssistantHandler(svc.Assistant),
		Dashboard: NewDashboardHandler(svc),
		Events:    NewEventsHandler(hub),
	}
}

// Response 通用响应结构
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// Success 成功响应
func Success(c *gin.Context, data interface{}) {
	c.JSON(200, Response{
		Code:    0,
		Message: "success",
		Data:    data,
	})
}

// Created 创建成功响应
func Created(c *gin.Context, data interface{}) {
	c.JSON(201, Response{
		Code:    0,
		Message: "success",
		Data:    data,
	})
}

// Error 错误响应
func Error(c *gin.Context, code int, message string) {
	statusCode := code / 100
	if statusCode < 100 || statusCode > 599 {
		statusCode = 500
	}
	c.JSON(statusCode, Response{
		Code:    code,
		Message: message,
	})
}

// BadRequest 参数错误响应
func BadRequest(c *gin.Context, message string) {
	Error(c, 40000, message)
}

// NotFound 资源不存在响应
func NotFound(c *gin.Context, message string) {
	Error(c, 40400, message)
}

// InternalError 服务器错误响应
func InternalError(c *gin.Context, message string) {
	Error(c, 50000, message)
}

// ServiceError 服务层错误到HTTP响应的统一映射
// 校验与导入错误属于调用方问题，记录缺失是404，其余归为服务器错误。
func ServiceError(c *gin.Context, err error) {
	var vErr *service.ValidationError
	var iErr *service.ImportError

	switch {
	case errors.As(err, &vErr):
		BadRequest(c, vErr.Error())
	case errors.As(err, &iErr):
		BadRequest(c, iErr.Error())
	case errors.Is(err, repository.ErrNotFound):
		NotFound(c, "Record not found")
	default:
		InternalError(c, err.Error())
	}
}
