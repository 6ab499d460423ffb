package handler

import (
	"github.com/bitfantasy/orgdesk/internal/model/entity"
	"github.com/bitfantasy/orgdesk/internal/service"
	"github.com/gin-gonic/gin"
)

// DashboardHandler 仪表盘处理器
type DashboardHandler struct {
	svc *service.Services
}

// NewDashboardHandler 创建仪表盘处理器
func NewDashboardHandler(svc *service.Services) *DashboardHandler {
	return &DashboardHandler{svc: svc}
}

// dashboardSummary 仪表盘概览数据
type dashboardSummary struct {
	EmployeeTotal   int            `json:"employeeTotal"`
	DocumentTotal   int            `json:"documentTotal"`
	ProjectTotal    int            `json:"projectTotal"`
	UserTotal       int            `json:"userTotal"`
	EmployeeStatus  map[string]int `json:"employeeStatus"`
	ProjectStatus   map[string]int `json:"projectStatus"`
	AverageProgress float64        `json:"averageProgress"`
}

// Summary 各记录集合的数量与状态分布
func (h *DashboardHandler) Summary(c *gin.Context) {
	employees := h.svc.Employee.List()
	documents := h.svc.Document.List()
	projects := h.svc.Project.List()
	users := h.svc.Settings.Users()

	summary := dashboardSummary{
		EmployeeTotal: len(employees),
		DocumentTotal: len(documents),
		ProjectTotal:  len(projects),
		UserTotal:     len(users),
		EmployeeStatus: map[string]int{
			entity.EmployeeStatusActive:   0,
			entity.EmployeeStatusInactive: 0,
			entity.EmployeeStatusOnLeave:  0,
		},
		ProjectStatus: map[string]int{
			entity.ProjectStatusCompleted:  0,
			entity.ProjectStatusInProgress: 0,
			entity.ProjectStatusOnHold:     0,
			entity.ProjectStatusNotStarted: 0,
		},
	}

	for _, e := range employees {
		summary.EmployeeStatus[e.Status]++
	}

	var progressSum float64
	for _, p := range projects {
		summary.ProjectStatus[p.Status]++
		progressSum += p.Progress
	}
	if len(projects) > 0 {
		summary.AverageProgress = progressSum / float64(len(projects))
	}

	Success(c, summary)
}
