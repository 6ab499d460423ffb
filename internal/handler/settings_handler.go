package handler

import (
	"github.com/bitfantasy/orgdesk/internal/model/entity"
	"github.com/bitfantasy/orgdesk/internal/service"
	"github.com/gin-gonic/gin"
)

// SettingsHandler 设置处理器：系统用户、部门、通用与邮件设置
type SettingsHandler struct {
	svc *service.SettingsService
}

// NewSettingsHandler 创建设置处理器
func NewSettingsHandler(svc *service.SettingsService) *SettingsHandler {
	return &SettingsHandler{svc: svc}
}

// saveUserRequest 保存用户请求体
type saveUserRequest struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Role       string `json:"role"`
	Department string `json:"department"`
}

// ListUsers 系统用户列表
func (h *SettingsHandler) ListUsers(c *gin.Context) {
	Success(c, h.svc.Users())
}

// SaveUser 保存系统用户
func (h *SettingsHandler) SaveUser(c *gin.Context) {
	var req saveUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	if pathID := c.Param("id"); pathID != "" {
		if req.ID != "" && req.ID != pathID {
			BadRequest(c, "ID in path and body do not match")
			return
		}
		req.ID = pathID
	}

	u, err := h.svc.SaveUser(&service.SaveUserRequest{
		ID:         req.ID,
		Name:       req.Name,
		Email:      req.Email,
		Role:       req.Role,
		Department: req.Department,
	})
	if err != nil {
		ServiceError(c, err)
		return
	}

	if req.ID == "" {
		Created(c, u)
		return
	}
	Success(c, u)
}

// DeleteUser 删除系统用户，需要显式确认
func (h *SettingsHandler) DeleteUser(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		BadRequest(c, "User ID is required")
		return
	}
	if c.Query("confirm") != "true" {
		BadRequest(c, "Deletion requires confirm=true")
		return
	}

	if err := h.svc.DeleteUser(id); err != nil {
		ServiceError(c, err)
		return
	}

	Success(c, nil)
}

// saveDepartmentRequest 保存部门请求体
type saveDepartmentRequest struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// ListDepartments 部门列表
func (h *SettingsHandler) ListDepartments(c *gin.Context) {
	Success(c, h.svc.Departments())
}

// SaveDepartment 保存部门
func (h *SettingsHandler) SaveDepartment(c *gin.Context) {
	var req saveDepartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	if pathID := c.Param("id"); pathID != "" {
		if req.ID != "" && req.ID != pathID {
			BadRequest(c, "ID in path and body do not match")
			return
		}
		req.ID = pathID
	}

	d, err := h.svc.SaveDepartment(&service.SaveDepartmentRequest{
		ID:          req.ID,
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		ServiceError(c, err)
		return
	}

	if req.ID == "" {
		Created(c, d)
		return
	}
	Success(c, d)
}

// DeleteDepartment 删除部门，需要显式确认
func (h *SettingsHandler) DeleteDepartment(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		BadRequest(c, "Department ID is required")
		return
	}
	if c.Query("confirm") != "true" {
		BadRequest(c, "Deletion requires confirm=true")
		return
	}

	if err := h.svc.DeleteDepartment(id); err != nil {
		ServiceError(c, err)
		return
	}

	Success(c, nil)
}

// GetGeneral 通用设置
func (h *SettingsHandler) GetGeneral(c *gin.Context) {
	Success(c, h.svc.General())
}

// SaveGeneral 保存通用设置
func (h *SettingsHandler) SaveGeneral(c *gin.Context) {
	var g entity.GeneralSettings
	if err := c.ShouldBindJSON(&g); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	if err := h.svc.SaveGeneral(g); err != nil {
		InternalError(c, err.Error())
		return
	}

	Success(c, g)
}

// GetMail 邮件设置
func (h *SettingsHandler) GetMail(c *gin.Context) {
	Success(c, h.svc.Mail())
}

// SaveMail 保存邮件设置
func (h *SettingsHandler) SaveMail(c *gin.Context) {
	var m entity.MailSettings
	if err := c.ShouldBindJSON(&m); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	if err := h.svc.SaveMail(m); err != nil {
		InternalError(c, err.Error())
		return
	}

	Success(c, m)
}
