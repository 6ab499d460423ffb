package service

import (
	"testing"

	"github.com/bitfantasy/orgdesk/internal/model/entity"
	"github.com/bitfantasy/orgdesk/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newSettingsService(t *testing.T) (*SettingsService, *repository.RecordStore) {
	t.Helper()
	store := repository.NewRecordStore(nil, zap.NewNop())
	return NewSettingsService(store), store
}

func TestSaveUserDefaultsRole(t *testing.T) {
	svc, _ := newSettingsService(t)

	u, err := svc.SaveUser(&SaveUserRequest{
		Name:  "Lina Fares",
		Email: "lina.f@example.com",
		Role:  "superhero",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleUser, u.Role, "unknown roles fall back to plain user")
	assert.Equal(t, entity.UserStatusActive, u.Status)
	assert.NotEmpty(t, u.ID)
}

func TestSaveUserValidation(t *testing.T) {
	svc, _ := newSettingsService(t)

	_, err := svc.SaveUser(&SaveUserRequest{Role: entity.RoleAdmin})
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.ElementsMatch(t, []string{"name", "email"}, vErr.Fields)
}

func TestSaveUserEditPreservesStatus(t *testing.T) {
	svc, _ := newSettingsService(t)

	// 内置用户4处于停用状态
	u, err := svc.SaveUser(&SaveUserRequest{
		ID:    "4",
		Name:  "Khaled Saeed",
		Email: "khaled.s@example.com",
		Role:  entity.RoleFinance,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.UserStatusInactive, u.Status)
}

func TestSaveDepartmentRequiresName(t *testing.T) {
	svc, _ := newSettingsService(t)

	_, err := svc.SaveDepartment(&SaveDepartmentRequest{Description: "no name"})
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, []string{"name"}, vErr.Fields)
}

func TestDeleteDepartmentKeepsUserReferences(t *testing.T) {
	svc, store := newSettingsService(t)

	// 用户5按名称引用Marketing部门（内置部门4）
	require.NoError(t, svc.DeleteDepartment("4"))

	u, err := store.User("5")
	require.NoError(t, err)
	assert.Equal(t, "Marketing", u.Department, "by-name references are not cascaded")
}

func TestGeneralAndMailSettingsRoundTrip(t *testing.T) {
	svc, _ := newSettingsService(t)

	require.NoError(t, svc.SaveGeneral(entity.GeneralSettings{
		CompanyName: "OrgDesk Inc",
		LogoURL:     "https://example.com/logo.png",
	}))
	assert.Equal(t, "OrgDesk Inc", svc.General().CompanyName)

	require.NoError(t, svc.SaveMail(entity.MailSettings{
		Host:     "smtp.example.com",
		Port:     587,
		Username: "mailer",
	}))
	assert.Equal(t, 587, svc.Mail().Port)
}
