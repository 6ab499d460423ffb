package repository

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/bitfantasy/orgdesk/internal/model/entity"
	"github.com/bitfantasy/orgdesk/internal/model/seed"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// 存储键常量，每个实体种类对应一个条目
const (
	KindEmployees       = "employees"
	KindDocuments       = "documents"
	KindProjects        = "projects"
	KindUsers           = "users"
	KindDepartments     = "departments"
	KindGeneralSettings = "generalSettings"
	KindMailSettings    = "mailSettings"
)

// RecordStore 记录存储
// 全部集合常驻内存，插入顺序即默认展示顺序；每次变更把对应种类整体写回键值表。
// 条目缺失或解析失败时回退到内置数据集（设置类回退为空默认值），不向上报错。
type RecordStore struct {
	mu  sync.RWMutex
	db  *gorm.DB
	log *zap.Logger

	employees   []entity.Employee
	documents   []entity.Document
	projects    []entity.Project
	users       []entity.User
	departments []entity.Department
	general     entity.GeneralSettings
	mail        entity.MailSettings
}

// NewRecordStore 创建记录存储并从持久化条目恢复状态
func NewRecordStore(db *gorm.DB, log *zap.Logger) *RecordStore {
	s := &RecordStore{db: db, log: log}

	if !s.load(KindEmployees, &s.employees) {
		s.employees = seed.Employees()
	}
	if !s.load(KindDocuments, &s.documents) {
		s.documents = seed.Documents()
	}
	if !s.load(KindProjects, &s.projects) {
		s.projects = seed.Projects()
	}
	if !s.load(KindUsers, &s.users) {
		s.users = seed.Users()
	}
	if !s.load(KindDepartments, &s.departments) {
		s.departments = seed.Departments()
	}
	s.load(KindGeneralSettings, &s.general)
	s.load(KindMailSettings, &s.mail)

	return s
}

// load 读取一个种类的持久化条目，成功返回true，缺失或损坏返回false
func (s *RecordStore) load(kind string, dst interface{}) bool {
	if s.db == nil {
		return false
	}

	var row StoreEntry
	err := s.db.Where("kind = ?", kind).First(&row).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			s.log.Warn("read store entry", zap.String("kind", kind), zap.Error(err))
		}
		return false
	}

	if err := json.Unmarshal([]byte(row.Value), dst); err != nil {
		s.log.Warn("corrupt store entry, falling back to defaults",
			zap.String("kind", kind), zap.Error(err))
		return false
	}
	return true
}

// persist 把一个种类整体写回，调用方必须持有写锁
func (s *RecordStore) persist(kind string, v interface{}) error {
	if s.db == nil {
		return nil
	}

	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", kind, err)
	}

	if err := s.db.Save(&StoreEntry{Kind: kind, Value: string(data)}).Error; err != nil {
		return fmt.Errorf("persist %s: %w", kind, err)
	}
	return nil
}

// ============================================================
// 员工
// ============================================================

// Employees 员工列表（副本）
func (s *RecordStore) Employees() []entity.Employee {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entity.Employee, len(s.employees))
	copy(out, s.employees)
	return out
}

// Employee 按ID查找员工
func (s *RecordStore) Employee(id string) (entity.Employee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, e := range s.employees {
		if e.ID == id {
			return e, nil
		}
	}
	return entity.Employee{}, ErrNotFound
}

// SaveEmployee 按ID替换，不存在则追加到末尾
func (s *RecordStore) SaveEmployee(e entity.Employee) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.employees {
		if s.employees[i].ID == e.ID {
			s.employees[i] = e
			return s.persist(KindEmployees, s.employees)
		}
	}
	s.employees = append(s.employees, e)
	return s.persist(KindEmployees, s.employees)
}

// AppendEmployees 批量追加员工，整批一次提交（CSV导入确认步骤）
func (s *RecordStore) AppendEmployees(batch []entity.Employee) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.employees = append(s.employees, batch...)
	return s.persist(KindEmployees, s.employees)
}

// DeleteEmployee 删除员工，项目中的弱引用不做级联清理
func (s *RecordStore) DeleteEmployee(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.employees {
		if s.employees[i].ID == id {
			s.employees = append(s.employees[:i], s.employees[i+1:]...)
			return s.persist(KindEmployees, s.employees)
		}
	}
	return ErrNotFound
}

// ============================================================
// 文档
// ============================================================

// Documents 文档列表（副本）
func (s *RecordStore) Documents() []entity.Document {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entity.Document, len(s.documents))
	copy(out, s.documents)
	return out
}

// Document 按ID查找文档
func (s *RecordStore) Document(id string) (entity.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, d := range s.documents {
		if d.ID == id {
			return d, nil
		}
	}
	return entity.Document{}, ErrNotFound
}

// SaveDocument 按ID替换，不存在则插入到开头（新文档置顶，源系统约定）
func (s *RecordStore) SaveDocument(d entity.Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.documents {
		if s.documents[i].ID == d.ID {
			s.documents[i] = d
			return s.persist(KindDocuments, s.documents)
		}
	}
	s.documents = append([]entity.Document{d}, s.documents...)
	return s.persist(KindDocuments, s.documents)
}

// DeleteDocument 删除文档
func (s *RecordStore) DeleteDocument(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.documents {
		if s.documents[i].ID == id {
			s.documents = append(s.documents[:i], s.documents[i+1:]...)
			return s.persist(KindDocuments, s.documents)
		}
	}
	return ErrNotFound
}

// ============================================================
// 项目
// ============================================================

// Projects 项目列表（副本）
func (s *RecordStore) Projects() []entity.Project {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entity.Project, len(s.projects))
	copy(out, s.projects)
	return out
}

// Project 按ID查找项目
func (s *RecordStore) Project(id string) (entity.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.projects {
		if p.ID == id {
			return p, nil
		}
	}
	return entity.Project{}, ErrNotFound
}

// SaveProject 按ID替换，不存在则插入到开头
func (s *RecordStore) SaveProject(p entity.Project) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.projects {
		if s.projects[i].ID == p.ID {
			s.projects[i] = p
			return s.persist(KindProjects, s.projects)
		}
	}
	s.projects = append([]entity.Project{p}, s.projects...)
	return s.persist(KindProjects, s.projects)
}

// DeleteProject 删除项目
func (s *RecordStore) DeleteProject(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.projects {
		if s.projects[i].ID == id {
			s.projects = append(s.projects[:i], s.projects[i+1:]...)
			return s.persist(KindProjects, s.projects)
		}
	}
	return ErrNotFound
}

// ============================================================
// 用户与部门（设置）
// ============================================================

// Users 用户列表（副本）
func (s *RecordStore) Users() []entity.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entity.User, len(s.users))
	copy(out, s.users)
	return out
}

// User 按ID查找用户
func (s *RecordStore) User(id string) (entity.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.ID == id {
			return u, nil
		}
	}
	return entity.User{}, ErrNotFound
}

// SaveUser 按ID替换，不存在则追加
func (s *RecordStore) SaveUser(u entity.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.users {
		if s.users[i].ID == u.ID {
			s.users[i] = u
			return s.persist(KindUsers, s.users)
		}
	}
	s.users = append(s.users, u)
	return s.persist(KindUsers, s.users)
}

// DeleteUser 删除用户
func (s *RecordStore) DeleteUser(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.users {
		if s.users[i].ID == id {
			s.users = append(s.users[:i], s.users[i+1:]...)
			return s.persist(KindUsers, s.users)
		}
	}
	return ErrNotFound
}

// Departments 部门列表（副本）
func (s *RecordStore) Departments() []entity.Department {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entity.Department, len(s.departments))
	copy(out, s.departments)
	return out
}

// SaveDepartment 按ID替换，不存在则追加
func (s *RecordStore) SaveDepartment(d entity.Department) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.departments {
		if s.departments[i].ID == d.ID {
			s.departments[i] = d
			return s.persist(KindDepartments, s.departments)
		}
	}
	s.departments = append(s.departments, d)
	return s.persist(KindDepartments, s.departments)
}

// DeleteDepartment 删除部门，按名称引用它的用户不做级联清理
func (s *RecordStore) DeleteDepartment(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.departments {
		if s.departments[i].ID == id {
			s.departments = append(s.departments[:i], s.departments[i+1:]...)
			return s.persist(KindDepartments, s.departments)
		}
	}
	return ErrNotFound
}

// ============================================================
// 设置
// ============================================================

// GeneralSettings 通用设置
func (s *RecordStore) GeneralSettings() entity.GeneralSettings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.general
}

// SaveGeneralSettings 保存通用设置
func (s *RecordStore) SaveGeneralSettings(g entity.GeneralSettings) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.general = g
	return s.persist(KindGeneralSettings, s.general)
}

// MailSettings 邮件设置
func (s *RecordStore) MailSettings() entity.MailSettings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.mail
}

// SaveMailSettings 保存邮件设置
func (s *RecordStore) SaveMailSettings(m entity.MailSettings) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mail = m
	return s.persist(KindMailSettings, s.mail)
}
