package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/bitfantasy/orgdesk/internal/model/entity"
	"github.com/bitfantasy/orgdesk/internal/repository"
)

// DefaultAssistantDelay 模拟外部补全接口的网络延迟
const DefaultAssistantDelay = 1500 * time.Millisecond

// AssistantService 智能助手占位实现
// 输入输出都是自由文本，按子串匹配返回固定话术；
// 可以在不改动其他模块的前提下替换为真实补全接口。
type AssistantService struct {
	store *repository.RecordStore
	delay time.Duration
}

// NewAssistantService 创建助手服务
func NewAssistantService(store *repository.RecordStore, delay time.Duration) *AssistantService {
	if delay < 0 {
		delay = DefaultAssistantDelay
	}
	return &AssistantService{store: store, delay: delay}
}

// Ask 提问，先等待模拟延迟再作答
func (s *AssistantService) Ask(ctx context.Context, prompt string) (string, error) {
	select {
	case <-time.After(s.delay):
	case <-ctx.Done():
		return "", ctx.Err()
	}

	p := strings.ToLower(prompt)

	switch {
	case strings.Contains(p, "how many employees") || strings.Contains(p, "employee count"):
		return fmt.Sprintf(
			"We currently have %d employees in the system. Would you like more details about them?",
			len(s.store.Employees()),
		), nil

	case strings.Contains(p, "project status"):
		projects := s.store.Projects()
		if len(projects) == 0 {
			return "There are no projects in the system yet.", nil
		}
		pr := projects[0]
		return fmt.Sprintf(
			"Project %q is %s at %.0f%% completion. Shall I look up another project?",
			pr.Title, statusLabel(pr.Status), pr.Progress,
		), nil

	case strings.Contains(p, "hello") || strings.Contains(p, "hi there"):
		return "Welcome! I am your assistant. You can ask me about employees, projects or documents.", nil
	}

	return "Thanks for your question. I am currently running in simulation mode; " +
		"a real deployment would call a completion API to answer from organization data.", nil
}

func statusLabel(status string) string {
	switch status {
	case entity.ProjectStatusCompleted:
		return "completed"
	case entity.ProjectStatusInProgress:
		return "in progress"
	case entity.ProjectStatusOnHold:
		return "on hold"
	default:
		return "not started"
	}
}
