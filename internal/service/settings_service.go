package service

import (
	"fmt"

	"github.com/bitfantasy/orgdesk/internal/model/entity"
	"github.com/bitfantasy/orgdesk/internal/repository"
)

// userForm 用户表单校验配置
var userForm = FormSpec{
	Entity:   "user",
	Required: []string{"name", "email"},
}

// departmentForm 部门表单校验配置
var departmentForm = FormSpec{
	Entity:   "department",
	Required: []string{"name"},
}

// SettingsService 设置服务：系统用户、部门、通用与邮件设置
type SettingsService struct {
	store *repository.RecordStore
}

// NewSettingsService 创建设置服务
func NewSettingsService(store *repository.RecordStore) *SettingsService {
	return &SettingsService{store: store}
}

// SaveUserRequest 保存用户请求
type SaveUserRequest struct {
	ID         string
	Name       string
	Email      string
	Role       string
	Department string
}

// Users 用户列表
func (s *SettingsService) Users() []entity.User {
	return s.store.Users()
}

// SaveUser 保存用户，角色不在封闭集合内时取普通用户
func (s *SettingsService) SaveUser(req *SaveUserRequest) (*entity.User, error) {
	if err := userForm.Validate(map[string]string{
		"name":  req.Name,
		"email": req.Email,
	}); err != nil {
		return nil, err
	}

	role := req.Role
	if !validRole(role) {
		role = entity.RoleUser
	}

	u := entity.User{
		ID:         req.ID,
		Name:       req.Name,
		Email:      req.Email,
		Role:       role,
		Department: req.Department,
		Status:     entity.UserStatusActive,
	}
	if u.ID == "" {
		u.ID = entity.NewID()
	} else if existing, err := s.store.User(u.ID); err == nil {
		u.Status = existing.Status
	}

	if err := s.store.SaveUser(u); err != nil {
		return nil, fmt.Errorf("save user: %w", err)
	}
	return &u, nil
}

// DeleteUser 删除用户
func (s *SettingsService) DeleteUser(id string) error {
	return s.store.DeleteUser(id)
}

// SaveDepartmentRequest 保存部门请求
type SaveDepartmentRequest struct {
	ID          string
	Name        string
	Description string
}

// Departments 部门列表
func (s *SettingsService) Departments() []entity.Department {
	return s.store.Departments()
}

// SaveDepartment 保存部门
func (s *SettingsService) SaveDepartment(req *SaveDepartmentRequest) (*entity.Department, error) {
	if err := departmentForm.Validate(map[string]string{"name": req.Name}); err != nil {
		return nil, err
	}

	d := entity.Department{
		ID:          req.ID,
		Name:        req.Name,
		Description: req.Description,
	}
	if d.ID == "" {
		d.ID = entity.NewID()
	}

	if err := s.store.SaveDepartment(d); err != nil {
		return nil, fmt.Errorf("save department: %w", err)
	}
	return &d, nil
}

// DeleteDepartment 删除部门
func (s *SettingsService) DeleteDepartment(id string) error {
	return s.store.DeleteDepartment(id)
}

// General 通用设置
func (s *SettingsService) General() entity.GeneralSettings {
	return s.store.GeneralSettings()
}

// SaveGeneral 保存通用设置
func (s *SettingsService) SaveGeneral(g entity.GeneralSettings) error {
	return s.store.SaveGeneralSettings(g)
}

// Mail 邮件设置
func (s *SettingsService) Mail() entity.MailSettings {
	return s.store.MailSettings()
}

// SaveMail 保存邮件设置
func (s *SettingsService) SaveMail(m entity.MailSettings) error {
	return s.store.SaveMailSettings(m)
}

func validRole(r string) bool {
	for _, role := range entity.Roles {
		if r == role {
			return true
		}
	}
	return false
}
