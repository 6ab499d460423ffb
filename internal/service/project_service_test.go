package service

import (
	"testing"
	"time"

	"github.com/bitfantasy/orgdesk/internal/model/entity"
	"github.com/bitfantasy/orgdesk/internal/repository"
	"github.com/bitfantasy/orgdesk/internal/upload"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newProjectService(t *testing.T) (*ProjectService, *repository.RecordStore) {
	t.Helper()
	store := repository.NewRecordStore(nil, zap.NewNop())
	sim := upload.NewSimulator(time.Millisecond, 0)
	return NewProjectService(store, sim, nil, zap.NewNop()), store
}

func TestSaveProjectCreate(t *testing.T) {
	svc, store := newProjectService(t)

	att := entity.NewAttachment("new_1")
	require.NoError(t, att.Select(&entity.Payload{Name: "plan.pdf"}))

	proj, err := svc.Save(&SaveProjectRequest{
		Title:               "Warehouse Migration",
		Manager:             "Sara Ibrahim",
		Department:          "IT",
		Status:              entity.ProjectStatusInProgress,
		Progress:            "30",
		AssignedEmployeeIDs: []string{"1"},
		Attachments:         []*entity.Attachment{att},
	})
	require.NoError(t, err)
	assert.Equal(t, 30.0, proj.Progress)
	require.Len(t, proj.Attachments, 1)
	assert.Equal(t, "/projects/Warehouse Migration/plan.pdf", proj.Attachments[0].URL)

	// 新项目插入到列表开头
	assert.Equal(t, proj.ID, store.Projects()[0].ID)
}

func TestSaveProjectRequiresTitle(t *testing.T) {
	svc, _ := newProjectService(t)

	_, err := svc.Save(&SaveProjectRequest{Manager: "Someone"})
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, []string{"title"}, vErr.Fields)
}

func TestSaveProjectClampsProgress(t *testing.T) {
	svc, _ := newProjectService(t)

	proj, err := svc.Save(&SaveProjectRequest{Title: "A", Progress: "150"})
	require.NoError(t, err)
	assert.Equal(t, 100.0, proj.Progress)

	proj, err = svc.Save(&SaveProjectRequest{Title: "B", Progress: "-5"})
	require.NoError(t, err)
	assert.Equal(t, 0.0, proj.Progress)
}

func TestSaveProjectDefaultsStatus(t *testing.T) {
	svc, _ := newProjectService(t)

	proj, err := svc.Save(&SaveProjectRequest{Title: "C", Status: "bogus"})
	require.NoError(t, err)
	assert.Equal(t, entity.ProjectStatusNotStarted, proj.Status)
	assert.NotNil(t, proj.AssignedEmployeeIDs)
	assert.Empty(t, proj.AssignedEmployeeIDs)
}

func TestAssignedEmployeesSkipsDanglingReferences(t *testing.T) {
	svc, store := newProjectService(t)

	// 内置项目1引用员工1和4；删除员工4后解析只剩员工1
	require.NoError(t, store.DeleteEmployee("4"))

	p, err := store.Project("1")
	require.NoError(t, err)

	resolved := svc.AssignedEmployees(p)
	require.Len(t, resolved, 1)
	assert.Equal(t, "1", resolved[0].ID)
}
