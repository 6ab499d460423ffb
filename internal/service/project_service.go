package service

import (
	"fmt"

	"github.com/bitfantasy/orgdesk/internal/model/entity"
	"github.com/bitfantasy/orgdesk/internal/repository"
	"github.com/bitfantasy/orgdesk/internal/upload"
	"go.uber.org/zap"
)

// projectForm 项目表单校验配置
var projectForm = FormSpec{
	Entity:   "project",
	Required: []string{"title"},
}

// ProjectService 项目服务
type ProjectService struct {
	store    *repository.RecordStore
	sim      *upload.Simulator
	notifier ProgressNotifier
	log      *zap.Logger
}

// NewProjectService 创建项目服务
func NewProjectService(store *repository.RecordStore, sim *upload.Simulator, notifier ProgressNotifier, log *zap.Logger) *ProjectService {
	return &ProjectService{store: store, sim: sim, notifier: notifier, log: log}
}

// SaveProjectRequest 保存项目请求
type SaveProjectRequest struct {
	ID                  string
	Title               string
	Description         string
	Manager             string
	Department          string
	StartDate           string
	EndDate             string
	Status              string
	Progress            string
	AssignedEmployeeIDs []string
	Attachments         []*entity.Attachment
}

// List 项目列表
func (s *ProjectService) List() []entity.Project {
	return s.store.Projects()
}

// Get 项目详情
func (s *ProjectService) Get(id string) (*entity.Project, error) {
	p, err := s.store.Project(id)
	if err != nil {
		return nil, fmt.Errorf("find project: %w", err)
	}
	return &p, nil
}

// Save 保存项目：校验 → 上传附件 → 定稿 → 提交
// 进度值夹取到[0,100]；员工ID列表按弱引用原样保存，不校验存在性。
func (s *ProjectService) Save(req *SaveProjectRequest) (*entity.Project, error) {
	if err := projectForm.Validate(map[string]string{"title": req.Title}); err != nil {
		return nil, err
	}

	id := req.ID
	if id == "" {
		id = entity.NewID()
	}

	s.log.Info("saving project", zap.String("id", id), zap.String("title", req.Title))

	upload.UploadAll(s.sim, "/projects/"+req.Title, req.Attachments,
		notifyFunc(s.notifier, repository.KindProjects, id))

	status := req.Status
	if !entity.ValidProjectStatus(status) {
		status = entity.ProjectStatusNotStarted
	}

	progress := ParseNumber(req.Progress)
	if progress < 0 {
		progress = 0
	}
	if progress > 100 {
		progress = 100
	}

	assigned := req.AssignedEmployeeIDs
	if assigned == nil {
		assigned = []string{}
	}

	proj := entity.Project{
		ID:                  id,
		Title:               req.Title,
		Description:         req.Description,
		Manager:             req.Manager,
		Department:          req.Department,
		StartDate:           req.StartDate,
		EndDate:             req.EndDate,
		Status:              status,
		Progress:            progress,
		AssignedEmployeeIDs: assigned,
		Attachments:         entity.FinalizeAttachments(req.Attachments),
	}

	if err := s.store.SaveProject(proj); err != nil {
		return nil, fmt.Errorf("save project: %w", err)
	}
	return &proj, nil
}

// Delete 删除项目
func (s *ProjectService) Delete(id string) error {
	return s.store.DeleteProject(id)
}

// AssignedEmployees 解析项目的员工弱引用，无法解析的ID直接跳过
func (s *ProjectService) AssignedEmployees(p entity.Project) []entity.Employee {
	out := make([]entity.Employee, 0, len(p.AssignedEmployeeIDs))
	for _, id := range p.AssignedEmployeeIDs {
		e, err := s.store.Employee(id)
		if err != nil {
			continue
		}
		out = append(out, e)
	}
	return out
}
