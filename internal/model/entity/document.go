package entity

// Document 文档实体
type Document struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Category    string      `json:"category"`
	Uploader    string      `json:"uploader"`
	UploadDate  string      `json:"uploadDate"`
	Tags        []string    `json:"tags"`
	ProjectID   string      `json:"projectId,omitempty"`
	Attachment  *Attachment `json:"attachment,omitempty"`
}

// 文档分类常量
const (
	DocumentCategoryHR       = "hr"
	DocumentCategoryFinance  = "finance"
	DocumentCategoryProjects = "projects"
	DocumentCategoryLegal    = "legal"
)

// DocumentCategories 文档分类全集，表单下拉使用
var DocumentCategories = []string{
	DocumentCategoryHR,
	DocumentCategoryFinance,
	DocumentCategoryProjects,
	DocumentCategoryLegal,
}
