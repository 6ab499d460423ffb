package entity

// Project 项目实体
// AssignedEmployeeIDs 为弱引用：员工删除后不做级联清理，消费方跳过无法解析的ID
type Project struct {
	ID                  string       `json:"id"`
	Title               string       `json:"title"`
	Description         string       `json:"description"`
	Manager             string       `json:"manager"`
	Department          string       `json:"department"`
	StartDate           string       `json:"startDate"`
	EndDate             string       `json:"endDate"`
	Status              string       `json:"status"`
	Progress            float64      `json:"progress"`
	AssignedEmployeeIDs []string     `json:"assignedEmployeeIds"`
	Attachments         []Attachment `json:"attachments"`
}

// 项目状态常量
const (
	ProjectStatusCompleted  = "completed"
	ProjectStatusInProgress = "in_progress"
	ProjectStatusOnHold     = "on_hold"
	ProjectStatusNotStarted = "not_started"
)

// ValidProjectStatus 项目状态是否合法
func ValidProjectStatus(s string) bool {
	switch s {
	case ProjectStatusCompleted, ProjectStatusInProgress, ProjectStatusOnHold, ProjectStatusNotStarted:
		return true
	}
	return false
}
