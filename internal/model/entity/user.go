package entity

// User 系统用户（设置页）
// Department 按名称弱引用 Department 实体，源系统即如此，不做外键约束
type User struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Role       string `json:"role"`
	Department string `json:"department"`
	Status     string `json:"status"`
}

// 用户角色常量（封闭集合）
const (
	RoleAdmin             = "admin"
	RoleDepartmentManager = "department_manager"
	RoleHR                = "hr"
	RoleFinance           = "finance"
	RoleUser              = "user"
)

// Roles 角色全集
var Roles = []string{RoleAdmin, RoleDepartmentManager, RoleHR, RoleFinance, RoleUser}

// 用户状态常量
const (
	UserStatusActive   = "active"
	UserStatusInactive = "inactive"
)

// Department 部门实体
type Department struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}
