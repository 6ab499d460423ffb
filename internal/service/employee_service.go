package service

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/bitfantasy/orgdesk/internal/model/entity"
	"github.com/bitfantasy/orgdesk/internal/repository"
	"github.com/bitfantasy/orgdesk/internal/upload"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

// employeeForm 员工表单校验配置
var employeeForm = FormSpec{
	Entity:   "employee",
	Required: []string{"name", "employeeId", "email", "phone", "department", "position"},
}

// requiredCSVHeaders CSV导入必需的列（精确匹配，大小写敏感，顺序无关）
var requiredCSVHeaders = []string{
	"name", "employeeId", "department", "position", "email", "phone", "status", "hireDate", "salary",
}

// EmployeeService 员工服务
type EmployeeService struct {
	store    *repository.RecordStore
	sim      *upload.Simulator
	notifier ProgressNotifier
	log      *zap.Logger
}

// NewEmployeeService 创建员工服务
func NewEmployeeService(store *repository.RecordStore, sim *upload.Simulator, notifier ProgressNotifier, log *zap.Logger) *EmployeeService {
	return &EmployeeService{store: store, sim: sim, notifier: notifier, log: log}
}

// SaveEmployeeRequest 保存员工请求
// Photo/Attachments 是编辑器中的附件槽位，可能携带待上传文件
type SaveEmployeeRequest struct {
	ID          string
	Name        string
	EmployeeID  string
	Department  string
	Position    string
	Email       string
	Phone       string
	HireDate    string
	EndDate     string
	Salary      string
	Photo       *entity.Attachment
	Attachments []*entity.Attachment
}

// List 员工列表
func (s *EmployeeService) List() []entity.Employee {
	return s.store.Employees()
}

// Get 员工详情
func (s *EmployeeService) Get(id string) (*entity.Employee, error) {
	e, err := s.store.Employee(id)
	if err != nil {
		return nil, fmt.Errorf("find employee: %w", err)
	}
	return &e, nil
}

// Save 保存员工：校验 → 并发上传附件并汇合 → 定稿 → 一次性提交
// 校验失败不会触发任何上传，也不会提交任何部分记录。
func (s *EmployeeService) Save(req *SaveEmployeeRequest) (*entity.Employee, error) {
	if err := employeeForm.Validate(map[string]string{
		"name":       req.Name,
		"employeeId": req.EmployeeID,
		"email":      req.Email,
		"phone":      req.Phone,
		"department": req.Department,
		"position":   req.Position,
	}); err != nil {
		return nil, err
	}

	existing, editing := s.existing(req.ID)
	id := req.ID
	if id == "" {
		id = entity.NewID()
	}

	s.log.Info("saving employee",
		zap.String("id", id),
		zap.String("name", req.Name),
		zap.Bool("editing", editing),
	)

	// 附件提交：照片与文档槽位并发上传，全部完成后才继续
	dir := "/employees/" + req.Name
	slots := make([]*entity.Attachment, 0, len(req.Attachments)+1)
	if req.Photo != nil {
		slots = append(slots, req.Photo)
	}
	slots = append(slots, req.Attachments...)
	upload.UploadAll(s.sim, dir, slots, notifyFunc(s.notifier, repository.KindEmployees, id))

	emp := entity.Employee{
		ID:          id,
		Name:        req.Name,
		EmployeeID:  req.EmployeeID,
		Department:  req.Department,
		Position:    req.Position,
		Email:       req.Email,
		Phone:       req.Phone,
		Status:      entity.EmployeeStatusActive,
		HireDate:    req.HireDate,
		EndDate:     req.EndDate,
		Salary:      ParseAmount(req.Salary),
		Attachments: entity.FinalizeAttachments(req.Attachments),
	}
	if editing {
		emp.Status = existing.Status
	}
	if req.Photo != nil && req.Photo.Name != "" {
		p := req.Photo.Finalized()
		emp.Photo = &p
	}

	if err := s.store.SaveEmployee(emp); err != nil {
		return nil, fmt.Errorf("save employee: %w", err)
	}
	return &emp, nil
}

func (s *EmployeeService) existing(id string) (entity.Employee, bool) {
	if id == "" {
		return entity.Employee{}, false
	}
	e, err := s.store.Employee(id)
	if err != nil {
		return entity.Employee{}, false
	}
	return e, true
}

// Delete 删除员工
// 项目侧的弱引用保持原样，解析时自动跳过
func (s *EmployeeService) Delete(id string) error {
	return s.store.DeleteEmployee(id)
}

// ============================================================
// CSV 批量导入
// ============================================================

// ImportError CSV导入错误，可能包含多条消息
type ImportError struct {
	Messages []string
}

func (e *ImportError) Error() string {
	return strings.Join(e.Messages, "; ")
}

// ParseCSV 解析并校验CSV文件，返回待导入员工或错误列表
// 任何必需列缺失都会使整个文件被拒绝，不返回任何行。
func (s *EmployeeService) ParseCSV(r io.Reader) ([]entity.Employee, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, &ImportError{Messages: []string{fmt.Sprintf("failed to parse CSV file: %v", err)}}
	}
	if len(records) == 0 {
		return nil, &ImportError{Messages: []string{"CSV file is empty"}}
	}

	index := make(map[string]int, len(records[0]))
	for i, h := range records[0] {
		index[strings.TrimSpace(h)] = i
	}

	var missing []string
	for _, h := range requiredCSVHeaders {
		if _, ok := index[h]; !ok {
			missing = append(missing, h)
		}
	}
	if len(missing) > 0 {
		return nil, &ImportError{Messages: []string{
			"CSV file is missing required columns: " + strings.Join(missing, ", "),
		}}
	}

	// 批次时间戳与行号组合成ID，保证同批次内不冲突
	batch := time.Now().UnixMilli()
	cell := func(row []string, name string) string {
		i := index[name]
		if i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	rows := make([]entity.Employee, 0, len(records)-1)
	for i, row := range records[1:] {
		status := cell(row, "status")
		if !entity.ValidEmployeeStatus(status) {
			status = entity.EmployeeStatusActive
		}

		rows = append(rows, entity.Employee{
			ID:          fmt.Sprintf("csv_%d_%d", batch, i),
			Name:        cell(row, "name"),
			EmployeeID:  cell(row, "employeeId"),
			Department:  cell(row, "department"),
			Position:    cell(row, "position"),
			Email:       cell(row, "email"),
			Phone:       cell(row, "phone"),
			Status:      status,
			HireDate:    cell(row, "hireDate"),
			Salary:      ParseAmount(cell(row, "salary")),
			Attachments: []entity.Attachment{},
		})
	}

	return rows, nil
}

// Import 确认导入：整批一次性追加，没有部分提交
// 批次中任何一行的ID已存在（比如重复提交同一次确认）则整批拒绝
func (s *EmployeeService) Import(rows []entity.Employee) error {
	if len(rows) == 0 {
		return &ImportError{Messages: []string{"nothing to import"}}
	}

	seen := make(map[string]struct{})
	for _, e := range s.store.Employees() {
		seen[e.ID] = struct{}{}
	}
	var dups []string
	for _, r := range rows {
		if _, ok := seen[r.ID]; ok {
			dups = append(dups, r.ID)
			continue
		}
		seen[r.ID] = struct{}{}
	}
	if len(dups) > 0 {
		return &ImportError{Messages: []string{
			"import batch contains records that already exist: " + strings.Join(dups, ", "),
		}}
	}

	if err := s.store.AppendEmployees(rows); err != nil {
		return fmt.Errorf("import employees: %w", err)
	}
	s.log.Info("imported employees", zap.Int("count", len(rows)))
	return nil
}

// ============================================================
// XLSX 导出
// ============================================================

// ExportXLSX 导出员工表格
func (s *EmployeeService) ExportXLSX() (*excelize.File, error) {
	f := excelize.NewFile()
	const sheet = "Employees"

	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	headers := []interface{}{"Name", "Employee ID", "Department", "Position", "Email", "Phone", "Status", "Hire Date", "Salary"}
	if err := f.SetSheetRow(sheet, "A1", &headers); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}

	for i, e := range s.store.Employees() {
		cellRef, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, fmt.Errorf("cell name: %w", err)
		}
		row := []interface{}{e.Name, e.EmployeeID, e.Department, e.Position, e.Email, e.Phone, e.Status, e.HireDate, e.Salary}
		if err := f.SetSheetRow(sheet, cellRef, &row); err != nil {
			return nil, fmt.Errorf("write row: %w", err)
		}
	}

	return f, nil
}
