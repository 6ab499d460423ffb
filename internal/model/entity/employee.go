package entity

import (
	"strconv"
	"time"
)

// Employee 员工实体
type Employee struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	EmployeeID  string       `json:"employeeId"`
	Department  string       `json:"department"`
	Position    string       `json:"position"`
	Email       string       `json:"email"`
	Phone       string       `json:"phone"`
	Status      string       `json:"status"`
	HireDate    string       `json:"hireDate"`
	EndDate     string       `json:"endDate,omitempty"`
	Salary      float64      `json:"salary"`
	Photo       *Attachment  `json:"photo,omitempty"`
	Attachments []Attachment `json:"attachments"`
}

// 员工状态常量
const (
	EmployeeStatusActive   = "active"
	EmployeeStatusInactive = "inactive"
	EmployeeStatusOnLeave  = "on_leave"
)

// ValidEmployeeStatus 员工状态是否合法
func ValidEmployeeStatus(s string) bool {
	switch s {
	case EmployeeStatusActive, EmployeeStatusInactive, EmployeeStatusOnLeave:
		return true
	}
	return false
}

// NewID 生成基于当前时间的记录ID
// 与源数据的约定一致：毫秒时间戳字符串，实践中足够唯一
func NewID() string {
	return strconv.FormatInt(time.Now().UnixMilli(), 10)
}
