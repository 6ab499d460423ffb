package handler

import (
	"strings"

	"github.com/bitfantasy/orgdesk/internal/model/entity"
	"github.com/bitfantasy/orgdesk/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ProjectHandler 项目处理器
type ProjectHandler struct {
	svc *service.ProjectService
}

// NewProjectHandler 创建项目处理器
func NewProjectHandler(svc *service.ProjectService) *ProjectHandler {
	return &ProjectHandler{svc: svc}
}

// List 项目列表
func (h *ProjectHandler) List(c *gin.Context) {
	Success(c, h.svc.List())
}

// Get 项目详情，附带可解析的成员（悬空引用被跳过）
func (h *ProjectHandler) Get(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		BadRequest(c, "Project ID is required")
		return
	}

	proj, err := h.svc.Get(id)
	if err != nil {
		NotFound(c, "Project not found")
		return
	}

	Success(c, gin.H{
		"project":           proj,
		"assignedEmployees": h.svc.AssignedEmployees(*proj),
	})
}

// Save 保存项目（multipart表单，多附件槽位）
func (h *ProjectHandler) Save(c *gin.Context) {
	req := &service.SaveProjectRequest{
		ID:          c.PostForm("id"),
		Title:       c.PostForm("title"),
		Description: c.PostForm("description"),
		Manager:     c.PostForm("manager"),
		Department:  c.PostForm("department"),
		StartDate:   c.PostForm("startDate"),
		EndDate:     c.PostForm("endDate"),
		Status:      c.PostForm("status"),
		Progress:    c.PostForm("progress"),
	}

	if pathID := c.Param("id"); pathID != "" {
		if req.ID != "" && req.ID != pathID {
			BadRequest(c, "ID in path and body do not match")
			return
		}
		req.ID = pathID
	}

	if raw := c.PostForm("assignedEmployeeIds"); raw != "" {
		for _, id := range strings.Split(raw, ",") {
			if id = strings.TrimSpace(id); id != "" {
				req.AssignedEmployeeIDs = append(req.AssignedEmployeeIDs, id)
			}
		}
	}

	if req.ID != "" {
		if existing, err := h.svc.Get(req.ID); err == nil {
			for i := range existing.Attachments {
				a := existing.Attachments[i]
				req.Attachments = append(req.Attachments, &a)
			}
		}
	}
	if form, err := c.MultipartForm(); err == nil {
		for _, fh := range form.File["attachments"] {
			att := entity.NewAttachment("new_" + uuid.New().String()[:8])
			if err := att.Select(&entity.Payload{Name: fh.Filename, Size: fh.Size}); err != nil {
				BadRequest(c, err.Error())
				return
			}
			req.Attachments = append(req.Attachments, att)
		}
	}

	proj, err := h.svc.Save(req)
	if err != nil {
		ServiceError(c, err)
		return
	}

	if req.ID == "" {
		Created(c, proj)
		return
	}
	Success(c, proj)
}

// Delete 删除项目，需要显式确认
func (h *ProjectHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		BadRequest(c, "Project ID is required")
		return
	}
	if c.Query("confirm") != "true" {
		BadRequest(c, "Deletion requires confirm=true")
		return
	}

	if err := h.svc.Delete(id); err != nil {
		ServiceError(c, err)
		return
	}

	Success(c, nil)
}
