package service

import (
	"github.com/bitfantasy/orgdesk/internal/config"
	"github.com/bitfantasy/orgdesk/internal/model/entity"
	"github.com/bitfantasy/orgdesk/internal/repository"
	"github.com/bitfantasy/orgdesk/internal/upload"
	"go.uber.org/zap"
)

// ProgressNotifier 上传进度通知出口（SSE推送）
type ProgressNotifier interface {
	UploadProgress(kind, recordID string, att entity.Attachment)
}

// Services 服务集合
type Services struct {
	Employee  *EmployeeService
	Document  *DocumentService
	Project   *ProjectService
	Settings  *SettingsService
	Assistant *AssistantService
}

// NewServices 创建服务集合
func NewServices(store *repository.RecordStore, notifier ProgressNotifier, cfg *config.Config, log *zap.Logger) *Services {
	sim := upload.NewSimulator(cfg.Upload.Tick, cfg.Upload.Settle)

	return &Services{
		Employee:  NewEmployeeService(store, sim, notifier, log),
		Document:  NewDocumentService(store, sim, notifier, log),
		Project:   NewProjectService(store, sim, notifier, log),
		Settings:  NewSettingsService(store),
		Assistant: NewAssistantService(store, cfg.Assistant.Delay),
	}
}

// notifyFunc 把附件进度绑定到具体记录后转发给通知出口
func notifyFunc(n ProgressNotifier, kind, recordID string) upload.ProgressFunc {
	if n == nil {
		return nil
	}
	return func(att *entity.Attachment) {
		n.UploadProgress(kind, recordID, att.Finalized())
	}
}
