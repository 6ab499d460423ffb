package handler

import (
	"github.com/bitfantasy/orgdesk/internal/model/entity"
	"github.com/bitfantasy/orgdesk/internal/service"
	"github.com/gin-gonic/gin"
)

// DocumentHandler 文档处理器
type DocumentHandler struct {
	svc *service.DocumentService
}

// NewDocumentHandler 创建文档处理器
func NewDocumentHandler(svc *service.DocumentService) *DocumentHandler {
	return &DocumentHandler{svc: svc}
}

// List 文档列表
func (h *DocumentHandler) List(c *gin.Context) {
	Success(c, h.svc.List())
}

// Get 文档详情
func (h *DocumentHandler) Get(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		BadRequest(c, "Document ID is required")
		return
	}

	doc, err := h.svc.Get(id)
	if err != nil {
		NotFound(c, "Document not found")
		return
	}

	Success(c, doc)
}

// Save 保存文档（multipart表单，单附件槽位）
func (h *DocumentHandler) Save(c *gin.Context) {
	req := &service.SaveDocumentRequest{
		ID:          c.PostForm("id"),
		Title:       c.PostForm("title"),
		Description: c.PostForm("description"),
		Category:    c.PostForm("category"),
		Tags:        c.PostForm("tags"),
		ProjectID:   c.PostForm("projectId"),
	}

	if pathID := c.Param("id"); pathID != "" {
		if req.ID != "" && req.ID != pathID {
			BadRequest(c, "ID in path and body do not match")
			return
		}
		req.ID = pathID
	}

	if fh, err := c.FormFile("file"); err == nil {
		att := entity.NewAttachment("doc_file")
		if err := att.Select(&entity.Payload{Name: fh.Filename, Size: fh.Size}); err != nil {
			BadRequest(c, err.Error())
			return
		}
		req.Attachment = att
	} else if req.ID != "" {
		if existing, err := h.svc.Get(req.ID); err == nil && existing.Attachment != nil {
			a := *existing.Attachment
			req.Attachment = &a
		}
	}

	doc, err := h.svc.Save(req)
	if err != nil {
		ServiceError(c, err)
		return
	}

	if req.ID == "" {
		Created(c, doc)
		return
	}
	Success(c, doc)
}

// Delete 删除文档，需要显式确认
func (h *DocumentHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		BadRequest(c, "Document ID is required")
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

// ListCategories 文档分类全集
func (h *DocumentHandler) ListCategories(c *gin.Context) {
	Success(c, h.svc.Categories())
}
