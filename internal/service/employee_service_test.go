package service

import (
	"strings"
	"testing"
	"time"

	"github.com/bitfantasy/orgdesk/internal/model/entity"
	"github.com/bitfantasy/orgdesk/internal/repository"
	"github.com/bitfantasy/orgdesk/internal/upload"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newEmployeeService(t *testing.T) (*EmployeeService, *repository.RecordStore) {
	t.Helper()
	store := repository.NewRecordStore(nil, zap.NewNop())
	sim := upload.NewSimulator(time.Millisecond, 0)
	return NewEmployeeService(store, sim, nil, zap.NewNop()), store
}

func validEmployeeRequest() *SaveEmployeeRequest {
	return &SaveEmployeeRequest{
		Name:       "Ali Hasan",
		EmployeeID: "EMP009",
		Department: "IT",
		Position:   "QA Engineer",
		Email:      "ali.h@example.com",
		Phone:      "0509998877",
		HireDate:   "2024-09-01",
		Salary:     "2750",
	}
}

func TestSaveEmployeeCreate(t *testing.T) {
	svc, store := newEmployeeService(t)

	req := validEmployeeRequest()
	photo := entity.NewAttachment(entity.PhotoSlotID)
	require.NoError(t, photo.Select(&entity.Payload{Name: "ali.jpg", Size: 4096}))
	doc := entity.NewAttachment("new_1")
	require.NoError(t, doc.Select(&entity.Payload{Name: "cv.pdf", Size: 9000}))
	req.Photo = photo
	req.Attachments = []*entity.Attachment{doc}

	emp, err := svc.Save(req)
	require.NoError(t, err)
	assert.NotEmpty(t, emp.ID)
	assert.Equal(t, entity.EmployeeStatusActive, emp.Status, "new employees default to active")
	assert.Equal(t, 2750.0, emp.Salary)

	require.NotNil(t, emp.Photo)
	assert.True(t, emp.Photo.IsUploaded)
	assert.False(t, emp.Photo.IsUploading)
	assert.Equal(t, "/employees/Ali Hasan/ali.jpg", emp.Photo.URL)

	require.Len(t, emp.Attachments, 1)
	assert.True(t, emp.Attachments[0].IsUploaded)
	assert.Equal(t, 100.0, emp.Attachments[0].Progress)

	// 新员工追加到列表末尾
	list := store.Employees()
	assert.Equal(t, emp.ID, list[len(list)-1].ID)
}

func TestSaveEmployeeValidationListsAllMissing(t *testing.T) {
	svc, _ := newEmployeeService(t)

	req := validEmployeeRequest()
	req.Email = ""
	req.Phone = "   "

	photo := entity.NewAttachment(entity.PhotoSlotID)
	require.NoError(t, photo.Select(&entity.Payload{Name: "ali.jpg"}))
	req.Photo = photo

	_, err := svc.Save(req)
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.ElementsMatch(t, []string{"email", "phone"}, vErr.Fields)

	// 校验失败不触发任何上传
	assert.Equal(t, entity.AttachmentSelected, photo.State())
}

func TestSaveEmployeeEditPreservesStatus(t *testing.T) {
	svc, store := newEmployeeService(t)

	// 内置员工3处于休假状态
	req := validEmployeeRequest()
	req.ID = "3"
	req.Name = "Khaled Saeed"

	emp, err := svc.Save(req)
	require.NoError(t, err)
	assert.Equal(t, entity.EmployeeStatusOnLeave, emp.Status)

	stored, err := store.Employee("3")
	require.NoError(t, err)
	assert.Equal(t, "EMP009", stored.EmployeeID)
}

func TestSaveEmployeeResaveDoesNotReupload(t *testing.T) {
	svc, _ := newEmployeeService(t)

	req := validEmployeeRequest()
	att := entity.NewAttachment("new_1")
	require.NoError(t, att.Select(&entity.Payload{Name: "cv.pdf"}))
	req.Attachments = []*entity.Attachment{att}

	emp, err := svc.Save(req)
	require.NoError(t, err)
	firstURL := emp.Attachments[0].URL

	// 再次保存同一记录，已上传的附件槽位原样通过
	again := validEmployeeRequest()
	again.ID = emp.ID
	carried := emp.Attachments[0]
	again.Attachments = []*entity.Attachment{&carried}

	emp2, err := svc.Save(again)
	require.NoError(t, err)
	require.Len(t, emp2.Attachments, 1)
	assert.Equal(t, firstURL, emp2.Attachments[0].URL)
	assert.True(t, emp2.Attachments[0].IsUploaded)
}

func TestSaveEmployeeInvalidSalaryDefaultsToZero(t *testing.T) {
	svc, _ := newEmployeeService(t)

	req := validEmployeeRequest()
	req.Salary = "not-a-number"

	emp, err := svc.Save(req)
	require.NoError(t, err)
	assert.Equal(t, 0.0, emp.Salary)

	// 薪资非负，负值同样回落为0
	req = validEmployeeRequest()
	req.Salary = "-100"

	emp, err = svc.Save(req)
	require.NoError(t, err)
	assert.Equal(t, 0.0, emp.Salary)
}

func TestParseCSVValidFile(t *testing.T) {
	svc, _ := newEmployeeService(t)

	csvData := strings.Join([]string{
		"name,employeeId,department,position,email,phone,status,hireDate,salary",
		"Nora Adel,EMP010,IT,Developer,nora.a@example.com,0501112233,active,2024-01-10,3100",
		"Omar Zaki,EMP011,Finance,Analyst,omar.z@example.com,0502223344,,2024-02-20,abc",
		"Lina Fares,EMP012,IT,Designer,lina.f@example.com,0503334455,active,2024-03-05,-50",
	}, "\n")

	rows, err := svc.ParseCSV(strings.NewReader(csvData))
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, "Nora Adel", rows[0].Name)
	assert.Equal(t, 3100.0, rows[0].Salary)
	assert.True(t, strings.HasPrefix(rows[0].ID, "csv_"))
	assert.NotEqual(t, rows[0].ID, rows[1].ID)

	// 空状态回落为在职，非法与负值薪资都回落为0
	assert.Equal(t, entity.EmployeeStatusActive, rows[1].Status)
	assert.Equal(t, 0.0, rows[1].Salary)
	assert.Equal(t, 0.0, rows[2].Salary)
	assert.NotNil(t, rows[1].Attachments)
}

func TestParseCSVMissingColumns(t *testing.T) {
	svc, _ := newEmployeeService(t)

	csvData := strings.Join([]string{
		"name,employeeId,department,position,status,hireDate,salary",
		"Nora Adel,EMP010,IT,Developer,active,2024-01-10,3100",
	}, "\n")

	_, err := svc.ParseCSV(strings.NewReader(csvData))
	var iErr *ImportError
	require.ErrorAs(t, err, &iErr)
	require.Len(t, iErr.Messages, 1)
	assert.Contains(t, iErr.Messages[0], "email")
	assert.Contains(t, iErr.Messages[0], "phone")
}

func TestParseCSVEmptyFile(t *testing.T) {
	svc, _ := newEmployeeService(t)

	_, err := svc.ParseCSV(strings.NewReader(""))
	var iErr *ImportError
	require.ErrorAs(t, err, &iErr)
	assert.Contains(t, iErr.Messages[0], "empty")
}

func TestParseCSVMalformedFile(t *testing.T) {
	svc, _ := newEmployeeService(t)

	_, err := svc.ParseCSV(strings.NewReader("name,\"broken\nrow,\"oops"))
	var iErr *ImportError
	require.ErrorAs(t, err, &iErr)
	assert.Contains(t, iErr.Messages[0], "failed to parse CSV file")
}

func TestImportAppendsWholeBatch(t *testing.T) {
	svc, store := newEmployeeService(t)
	before := len(store.Employees())

	rows := []entity.Employee{
		{ID: "csv_1_0", Name: "Nora Adel", EmployeeID: "EMP010", Status: entity.EmployeeStatusActive},
		{ID: "csv_1_1", Name: "Omar Zaki", EmployeeID: "EMP011", Status: entity.EmployeeStatusActive},
	}
	require.NoError(t, svc.Import(rows))

	list := store.Employees()
	require.Len(t, list, before+2)
	assert.Equal(t, "csv_1_0", list[before].ID)
	assert.Equal(t, "csv_1_1", list[before+1].ID)
}

func TestImportRejectsReplayedBatch(t *testing.T) {
	svc, store := newEmployeeService(t)

	rows := []entity.Employee{
		{ID: "csv_1_0", Name: "Nora Adel", EmployeeID: "EMP010", Status: entity.EmployeeStatusActive},
	}
	require.NoError(t, svc.Import(rows))
	after := len(store.Employees())

	// 同一批次重复确认：整批拒绝，集合不变
	err := svc.Import(rows)
	var iErr *ImportError
	require.ErrorAs(t, err, &iErr)
	assert.Contains(t, iErr.Messages[0], "csv_1_0")
	assert.Len(t, store.Employees(), after)
}

func TestImportRejectsEmptyBatch(t *testing.T) {
	svc, _ := newEmployeeService(t)

	var iErr *ImportError
	require.ErrorAs(t, svc.Import(nil), &iErr)
}

func TestDeleteEmployeeKeepsProjectReferences(t *testing.T) {
	svc, store := newEmployeeService(t)

	// 内置项目1引用员工1和4
	require.NoError(t, svc.Delete("4"))

	p, err := store.Project("1")
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "4"}, p.AssignedEmployeeIDs, "weak references are not cascaded")
}
