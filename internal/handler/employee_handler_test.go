package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/bitfantasy/orgdesk/internal/config"
	"github.com/bitfantasy/orgdesk/internal/repository"
	"github.com/bitfantasy/orgdesk/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupEmployeeTest(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := repository.NewRecordStore(nil, zap.NewNop())
	cfg := &config.Config{
		Upload:    config.UploadConfig{Tick: time.Millisecond, Settle: time.Millisecond},
		Assistant: config.AssistantConfig{Delay: 0},
	}
	svc := service.NewServices(store, nil, cfg, zap.NewNop())
	h := NewEmployeeHandler(svc.Employee)

	router := gin.New()
	employees := router.Group("/api/v1/employees")
	employees.GET("", h.List)
	employees.POST("", h.Save)
	employees.GET("/:id", h.Get)
	employees.PUT("/:id", h.Save)
	employees.DELETE("/:id", h.Delete)
	employees.POST("/import/preview", h.ImportPreview)
	employees.POST("/import", h.ImportConfirm)

	return router
}

func doRequest(t *testing.T, router *gin.Engine, method, url string, body io.Reader, contentType string) (*httptest.ResponseRecorder, Response) {
	t.Helper()
	req := httptest.NewRequest(method, url, body)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var resp Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return w, resp
}

func TestEmployeeSaveMultipart(t *testing.T) {
	router := setupEmployeeTest(t)

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	writer.WriteField("name", "Ali Hasan")
	writer.WriteField("employeeId", "EMP009")
	writer.WriteField("department", "IT")
	writer.WriteField("position", "QA Engineer")
	writer.WriteField("email", "ali.h@example.com")
	writer.WriteField("phone", "0509998877")
	writer.WriteField("salary", "2750")
	part, err := writer.CreateFormFile("photo", "ali.jpg")
	require.NoError(t, err)
	io.Copy(part, strings.NewReader("fake image bytes"))
	writer.Close()

	w, resp := doRequest(t, router, http.MethodPost, "/api/v1/employees", body, writer.FormDataContentType())
	require.Equal(t, http.StatusCreated, w.Code)
	require.Equal(t, 0, resp.Code)

	data := resp.Data.(map[string]interface{})
	assert.Equal(t, "Ali Hasan", data["name"])
	assert.Equal(t, "active", data["status"])

	photo := data["photo"].(map[string]interface{})
	assert.Equal(t, true, photo["isUploaded"])
	assert.Equal(t, "/employees/Ali Hasan/ali.jpg", photo["url"])
}

func TestEmployeeSavePutUsesPathID(t *testing.T) {
	router := setupEmployeeTest(t)

	// 请求体不带ID，记录ID取自资源路径，编辑不产生新记录
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	writer.WriteField("name", "Khaled Saeed")
	writer.WriteField("employeeId", "EMP003")
	writer.WriteField("department", "Finance")
	writer.WriteField("position", "Finance Manager")
	writer.WriteField("email", "khaled.s@example.com")
	writer.WriteField("phone", "0503456789")
	writer.Close()

	w, resp := doRequest(t, router, http.MethodPut, "/api/v1/employees/3", body, writer.FormDataContentType())
	require.Equal(t, http.StatusOK, w.Code)

	data := resp.Data.(map[string]interface{})
	assert.Equal(t, "3", data["id"])
	assert.Equal(t, "Finance Manager", data["position"])

	_, listResp := doRequest(t, router, http.MethodGet, "/api/v1/employees", nil, "")
	assert.Len(t, listResp.Data.([]interface{}), 5)
}

func TestEmployeeSavePutRejectsMismatchedID(t *testing.T) {
	router := setupEmployeeTest(t)

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	writer.WriteField("id", "2")
	writer.WriteField("name", "Khaled Saeed")
	writer.WriteField("employeeId", "EMP003")
	writer.WriteField("department", "Finance")
	writer.WriteField("position", "Senior Accountant")
	writer.WriteField("email", "khaled.s@example.com")
	writer.WriteField("phone", "0503456789")
	writer.Close()

	w, resp := doRequest(t, router, http.MethodPut, "/api/v1/employees/3", body, writer.FormDataContentType())
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, 40000, resp.Code)
}

func TestEmployeeSaveValidationError(t *testing.T) {
	router := setupEmployeeTest(t)

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	writer.WriteField("name", "Ali Hasan")
	writer.Close()

	w, resp := doRequest(t, router, http.MethodPost, "/api/v1/employees", body, writer.FormDataContentType())
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, 40000, resp.Code)
	assert.Contains(t, resp.Message, "email")
	assert.Contains(t, resp.Message, "phone")
}

func TestEmployeeDeleteRequiresConfirmation(t *testing.T) {
	router := setupEmployeeTest(t)

	w, resp := doRequest(t, router, http.MethodDelete, "/api/v1/employees/1", nil, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, 40000, resp.Code)

	w, resp = doRequest(t, router, http.MethodDelete, "/api/v1/employees/1?confirm=true", nil, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 0, resp.Code)

	w, _ = doRequest(t, router, http.MethodGet, "/api/v1/employees/1", nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestEmployeeImportFlow(t *testing.T) {
	router := setupEmployeeTest(t)

	csvData := strings.Join([]string{
		"name,employeeId,department,position,email,phone,status,hireDate,salary",
		"Nora Adel,EMP010,IT,Developer,nora.a@example.com,0501112233,active,2024-01-10,3100",
	}, "\n")

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("file", "employees.csv")
	require.NoError(t, err)
	io.Copy(part, strings.NewReader(csvData))
	writer.Close()

	w, resp := doRequest(t, router, http.MethodPost, "/api/v1/employees/import/preview", body, writer.FormDataContentType())
	require.Equal(t, http.StatusOK, w.Code)

	rows := resp.Data.([]interface{})
	require.Len(t, rows, 1)

	// 预览返回的行原样确认导入
	confirm, err := json.Marshal(resp.Data)
	require.NoError(t, err)
	w, _ = doRequest(t, router, http.MethodPost, "/api/v1/employees/import", bytes.NewReader(confirm), "application/json")
	require.Equal(t, http.StatusCreated, w.Code)

	_, listResp := doRequest(t, router, http.MethodGet, "/api/v1/employees", nil, "")
	assert.Len(t, listResp.Data.([]interface{}), 6)
}

func TestEmployeeImportMissingColumns(t *testing.T) {
	router := setupEmployeeTest(t)

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("file", "employees.csv")
	require.NoError(t, err)
	io.Copy(part, strings.NewReader("name,department\nNora,IT"))
	writer.Close()

	w, resp := doRequest(t, router, http.MethodPost, "/api/v1/employees/import/preview", body, writer.FormDataContentType())
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, resp.Message, "missing required columns")
}
