package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/bitfantasy/orgdesk/internal/model/entity"
	"github.com/bitfantasy/orgdesk/internal/repository"
	"github.com/bitfantasy/orgdesk/internal/upload"
	"go.uber.org/zap"
)

// documentForm 文档表单校验配置
var documentForm = FormSpec{
	Entity:   "document",
	Required: []string{"title"},
}

// DocumentService 文档服务
type DocumentService struct {
	store    *repository.RecordStore
	sim      *upload.Simulator
	notifier ProgressNotifier
	log      *zap.Logger
}

// NewDocumentService 创建文档服务
func NewDocumentService(store *repository.RecordStore, sim *upload.Simulator, notifier ProgressNotifier, log *zap.Logger) *DocumentService {
	return &DocumentService{store: store, sim: sim, notifier: notifier, log: log}
}

// SaveDocumentRequest 保存文档请求
type SaveDocumentRequest struct {
	ID          string
	Title       string
	Description string
	Category    string
	Tags        string // 逗号分隔
	ProjectID   string
	Attachment  *entity.Attachment
}

// List 文档列表
func (s *DocumentService) List() []entity.Document {
	return s.store.Documents()
}

// Get 文档详情
func (s *DocumentService) Get(id string) (*entity.Document, error) {
	d, err := s.store.Document(id)
	if err != nil {
		return nil, fmt.Errorf("find document: %w", err)
	}
	return &d, nil
}

// Save 保存文档：校验 → 上传附件 → 定稿 → 提交
// 新文档默认上传人为第一个管理员用户，上传日期取当天。
func (s *DocumentService) Save(req *SaveDocumentRequest) (*entity.Document, error) {
	if err := documentForm.Validate(map[string]string{"title": req.Title}); err != nil {
		return nil, err
	}

	existing, editing := s.existing(req.ID)
	id := req.ID
	if id == "" {
		id = entity.NewID()
	}

	// 附件目标目录按所属项目与分类归档
	projectName := "general"
	if req.ProjectID != "" {
		if p, err := s.store.Project(req.ProjectID); err == nil {
			projectName = p.Title
		}
	}
	dir := fmt.Sprintf("/documents/%s/%s", projectName, req.Category)

	s.log.Info("saving document", zap.String("id", id), zap.String("dir", dir))

	if req.Attachment != nil {
		upload.UploadAll(s.sim, dir, []*entity.Attachment{req.Attachment},
			notifyFunc(s.notifier, repository.KindDocuments, id))
	}

	doc := entity.Document{
		ID:          id,
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Uploader:    s.defaultUploader(),
		UploadDate:  time.Now().Format("2006-01-02"),
		Tags:        splitTags(req.Tags),
		ProjectID:   req.ProjectID,
	}
	if editing {
		doc.Uploader = existing.Uploader
		doc.UploadDate = existing.UploadDate
	}
	if req.Attachment != nil && req.Attachment.Name != "" {
		a := req.Attachment.Finalized()
		doc.Attachment = &a
	}

	if err := s.store.SaveDocument(doc); err != nil {
		return nil, fmt.Errorf("save document: %w", err)
	}
	return &doc, nil
}

// Delete 删除文档
func (s *DocumentService) Delete(id string) error {
	return s.store.DeleteDocument(id)
}

// Categories 文档分类全集
func (s *DocumentService) Categories() []string {
	return entity.DocumentCategories
}

func (s *DocumentService) existing(id string) (entity.Document, bool) {
	if id == "" {
		return entity.Document{}, false
	}
	d, err := s.store.Document(id)
	if err != nil {
		return entity.Document{}, false
	}
	return d, true
}

// defaultUploader 新文档的默认上传人：第一个管理员用户
func (s *DocumentService) defaultUploader() string {
	for _, u := range s.store.Users() {
		if u.Role == entity.RoleAdmin {
			return u.Name
		}
	}
	return "system"
}

// splitTags 逗号分隔的标签串转列表，去掉空项
func splitTags(raw string) []string {
	parts := strings.Split(raw, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}
