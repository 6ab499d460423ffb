package handler

import (
	"net/http"

	"github.com/bitfantasy/orgdesk/internal/model/entity"
	"github.com/bitfantasy/orgdesk/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// EmployeeHandler 员工处理器
type EmployeeHandler struct {
	svc *service.EmployeeService
}

// NewEmployeeHandler 创建员工处理器
func NewEmployeeHandler(svc *service.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{svc: svc}
}

// List 员工列表
func (h *EmployeeHandler) List(c *gin.Context) {
	Success(c, h.svc.List())
}

// Get 员工详情
func (h *EmployeeHandler) Get(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		BadRequest(c, "Employee ID is required")
		return
	}

	emp, err := h.svc.Get(id)
	if err != nil {
		NotFound(c, "Employee not found")
		return
	}

	Success(c, emp)
}

// Save 保存员工（multipart表单）
// 表单字段承载记录内容；photo/attachments文件部分成为待上传槽位。
// 编辑时未替换的附件保持上次持久化的状态。
func (h *EmployeeHandler) Save(c *gin.Context) {
	req := &service.SaveEmployeeRequest{
		ID:         c.PostForm("id"),
		Name:       c.PostForm("name"),
		EmployeeID: c.PostForm("employeeId"),
		Department: c.PostForm("department"),
		Position:   c.PostForm("position"),
		Email:      c.PostForm("email"),
		Phone:      c.PostForm("phone"),
		HireDate:   c.PostForm("hireDate"),
		EndDate:    c.PostForm("endDate"),
		Salary:     c.PostForm("salary"),
	}

	// 资源路径上的ID优先生效，表单里带不一致的ID视为请求错误
	if pathID := c.Param("id"); pathID != "" {
		if req.ID != "" && req.ID != pathID {
			BadRequest(c, "ID in path and body do not match")
			return
		}
		req.ID = pathID
	}

	var existing *entity.Employee
	if req.ID != "" {
		existing, _ = h.svc.Get(req.ID)
	}

	// 照片槽位：新文件覆盖，否则沿用已持久化的照片
	if fh, err := c.FormFile("photo"); err == nil {
		photo := entity.NewAttachment(entity.PhotoSlotID)
		if err := photo.Select(&entity.Payload{Name: fh.Filename, Size: fh.Size}); err != nil {
			BadRequest(c, err.Error())
			return
		}
		req.Photo = photo
	} else if existing != nil && existing.Photo != nil {
		p := *existing.Photo
		req.Photo = &p
	}

	// 已持久化附件在前，新选择的文件追加为新槽位
	if existing != nil {
		for i := range existing.Attachments {
			a := existing.Attachments[i]
			req.Attachments = append(req.Attachments, &a)
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

	emp, err := h.svc.Save(req)
	if err != nil {
		ServiceError(c, err)
		return
	}

	if req.ID == "" {
		Created(c, emp)
		return
	}
	Success(c, emp)
}

// Delete 删除员工，需要显式确认
func (h *EmployeeHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		BadRequest(c, "Employee ID is required")
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

// ImportPreview 解析CSV文件并返回待导入行
func (h *EmployeeHandler) ImportPreview(c *gin.Context) {
	file, _, err := c.Request.FormFile("file")
	if err != nil {
		BadRequest(c, "File is required: "+err.Error())
		return
	}
	defer file.Close()

	rows, err := h.svc.ParseCSV(file)
	if err != nil {
		ServiceError(c, err)
		return
	}

	Success(c, rows)
}

// ImportConfirm 确认导入预览过的行，整批一次性提交
func (h *EmployeeHandler) ImportConfirm(c *gin.Context) {
	var rows []entity.Employee
	if err := c.ShouldBindJSON(&rows); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	if err := h.svc.Import(rows); err != nil {
		ServiceError(c, err)
		return
	}

	Created(c, gin.H{"imported": len(rows)})
}

// Export 导出员工XLSX
func (h *EmployeeHandler) Export(c *gin.Context) {
	f, err := h.svc.ExportXLSX()
	if err != nil {
		InternalError(c, err.Error())
		return
	}
	defer f.Close()

	c.Header("Content-Disposition", "attachment; filename=employees.xlsx")
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Status(http.StatusOK)

	if err := f.Write(c.Writer); err != nil {
		// 响应头已发出，只能中断
		c.Abort()
	}
}
