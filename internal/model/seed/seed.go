// Package seed 内置演示数据集
// 每个函数返回全新切片，调用方可随意修改而不影响默认数据
package seed

import (
	"github.com/bitfantasy/orgdesk/internal/model/entity"
)

// Employees 默认员工数据
func Employees() []entity.Employee {
	return []entity.Employee{
		{ID: "1", Name: "Ahmad Mahmoud", EmployeeID: "EMP001", Department: "IT", Position: "Software Engineer", Email: "ahmad.m@example.com", Phone: "0501234567", Status: entity.EmployeeStatusActive, HireDate: "2022-01-15", Salary: 3200, Photo: &entity.Attachment{ID: "p1", Name: "ahmad.jpg", URL: "https://picsum.photos/seed/ahmad/200"}, Attachments: []entity.Attachment{}},
		{ID: "2", Name: "Fatima Ali", EmployeeID: "EMP002", Department: "Human Resources", Position: "HR Specialist", Email: "fatima.a@example.com", Phone: "0502345678", Status: entity.EmployeeStatusActive, HireDate: "2021-11-20", Salary: 2500, Photo: &entity.Attachment{ID: "p2", Name: "fatima.jpg", URL: "https://picsum.photos/seed/fatima/200"}, Attachments: []entity.Attachment{}},
		{ID: "3", Name: "Khaled Saeed", EmployeeID: "EMP003", Department: "Finance", Position: "Senior Accountant", Email: "khaled.s@example.com", Phone: "0503456789", Status: entity.EmployeeStatusOnLeave, HireDate: "2020-05-10", Salary: 2900, Photo: &entity.Attachment{ID: "p3", Name: "khaled.jpg", URL: "https://picsum.photos/seed/khaled/200"}, Attachments: []entity.Attachment{}},
		{ID: "4", Name: "Sara Ibrahim", EmployeeID: "EMP004", Department: "IT", Position: "Project Manager", Email: "sara.i@example.com", Phone: "0504567890", Status: entity.EmployeeStatusActive, HireDate: "2019-03-01", Salary: 4800, Photo: &entity.Attachment{ID: "p4", Name: "sara.jpg", URL: "https://picsum.photos/seed/sara/200"}, Attachments: []entity.Attachment{}},
		{ID: "5", Name: "Mohamed Hassan", EmployeeID: "EMP005", Department: "Legal", Position: "Legal Counsel", Email: "mohamed.h@example.com", Phone: "0505678901", Status: entity.EmployeeStatusInactive, HireDate: "2022-08-12", Salary: 4000, Photo: &entity.Attachment{ID: "p5", Name: "mohamed.jpg", URL: "https://picsum.photos/seed/mohamed/200"}, Attachments: []entity.Attachment{}},
	}
}

// Documents 默认文档数据
func Documents() []entity.Document {
	return []entity.Document{
		{ID: "1", Title: "New Employee Contract", Description: "Employment contract for Khaled Saeed", Category: entity.DocumentCategoryHR, Uploader: "Fatima Ali", UploadDate: "2024-07-20", Tags: []string{"contract", "hiring"}},
		{ID: "2", Title: "Q2 Financial Report", Description: "Profit and loss report for Q2 2024", Category: entity.DocumentCategoryFinance, Uploader: "Khaled Saeed", UploadDate: "2024-07-18", Tags: []string{"report", "finance"}, ProjectID: "3"},
		{ID: "3", Title: "New System Project Plan", Description: "Full documentation for the internal system development plan", Category: entity.DocumentCategoryProjects, Uploader: "Sara Ibrahim", UploadDate: "2024-07-15", Tags: []string{"project", "plan", "it"}, ProjectID: "1"},
		{ID: "4", Title: "Updated Leave Policy", Description: "Update to the annual and sick leave policy", Category: entity.DocumentCategoryHR, Uploader: "Fatima Ali", UploadDate: "2024-07-12", Tags: []string{"policy", "leave"}},
	}
}

// Projects 默认项目数据
func Projects() []entity.Project {
	return []entity.Project{
		{ID: "1", Title: "Electronic Archive System", Description: "Build a new document archiving system", Manager: "Sara Ibrahim", Department: "IT", StartDate: "2024-05-01", EndDate: "2024-12-31", Status: entity.ProjectStatusInProgress, Progress: 45, AssignedEmployeeIDs: []string{"1", "4"}, Attachments: []entity.Attachment{}},
		{ID: "2", Title: "New Marketing Campaign", Description: "Launch a marketing campaign for the new product", Manager: "Alia Mansour", Department: "Marketing", StartDate: "2024-06-15", EndDate: "2024-09-15", Status: entity.ProjectStatusInProgress, Progress: 20, AssignedEmployeeIDs: []string{}, Attachments: []entity.Attachment{}},
		{ID: "3", Title: "Finance Department Restructuring", Description: "Modernize procedures and systems in the finance department", Manager: "Khaled Saeed", Department: "Finance", StartDate: "2024-02-01", EndDate: "2024-07-30", Status: entity.ProjectStatusCompleted, Progress: 100, AssignedEmployeeIDs: []string{"3"}, Attachments: []entity.Attachment{}},
		{ID: "4", Title: "Onboarding Training Program", Description: "Develop and run a training program for new hires", Manager: "Fatima Ali", Department: "Human Resources", StartDate: "2024-08-01", EndDate: "2024-10-31", Status: entity.ProjectStatusNotStarted, Progress: 0, AssignedEmployeeIDs: []string{"2"}, Attachments: []entity.Attachment{}},
	}
}

// Users 默认系统用户
func Users() []entity.User {
	return []entity.User{
		{ID: "1", Name: "Abdullah Al-Ahmad", Email: "admin@example.com", Role: entity.RoleAdmin, Department: "Management", Status: entity.UserStatusActive},
		{ID: "2", Name: "Sara Ibrahim", Email: "sara.i@example.com", Role: entity.RoleDepartmentManager, Department: "IT", Status: entity.UserStatusActive},
		{ID: "3", Name: "Fatima Ali", Email: "fatima.a@example.com", Role: entity.RoleHR, Department: "Human Resources", Status: entity.UserStatusActive},
		{ID: "4", Name: "Khaled Saeed", Email: "khaled.s@example.com", Role: entity.RoleFinance, Department: "Finance", Status: entity.UserStatusInactive},
		{ID: "5", Name: "Youssef Murad", Email: "youssef.m@example.com", Role: entity.RoleUser, Department: "Marketing", Status: entity.UserStatusActive},
	}
}

// Departments 默认部门数据
func Departments() []entity.Department {
	return []entity.Department{
		{ID: "1", Name: "IT", Description: "Technical infrastructure and software development."},
		{ID: "2", Name: "Human Resources", Description: "Employee affairs, recruiting and training."},
		{ID: "3", Name: "Finance", Description: "Accounting, budgets and financial reporting."},
		{ID: "4", Name: "Marketing", Description: "Product promotion and campaign management."},
		{ID: "5", Name: "Legal", Description: "Legal affairs, contracts and compliance."},
	}
}
