package router

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"usercenter/internal/model"
	"usercenter/internal/request"
	"usercenter/internal/service"
	"usercenter/internal/store/memory"
	"usercenter/pkg/limit"
)

type envelope struct {
	Code    string          `json:"code"`
	Message string          `json:"message"`
	Result  json.RawMessage `json:"result"`
}

type harness struct {
	t      *testing.T
	engine *gin.Engine
	view   string
}

func newHarness(t *testing.T) *harness {
	gin.SetMode(gin.TestMode)
	require.NoError(t, request.RegisterValidation())
	f, err := memory.New(context.Background(), memory.WithUsers([]*model.User{
		{ID: 1, LoginName: "admin", UserName: "管理员", Department: "研发部门", Phone: "13800000001", Status: true, CreateTime: "2024-01-01 08:00:00"},
		{ID: 2, LoginName: "tester", UserName: "测试员", Department: "测试部门", Phone: "13900000002", Status: true, CreateTime: "2024-01-02 08:00:00"},
		{ID: 3, LoginName: "pm", UserName: "产品", Department: "产品部门", Phone: "13700000003", Status: false, CreateTime: "2024-01-03 08:00:00"},
	}))
	require.NoError(t, err)
	engine := New(service.NewService(f, 0), func(string) limit.RateLimiter { return limit.AllowRateLimiter{} })
	h := &harness{t: t, engine: engine}
	h.view = h.mount()
	return h
}

func (h *harness) mount() string {
	w, body := h.do(http.MethodPost, "/v1/views", nil)
	require.Equal(h.t, http.StatusOK, w.Code)
	var mount struct {
		View string `json:"view"`
	}
	require.NoError(h.t, json.Unmarshal(body.Result, &mount))
	return mount.View
}

func (h *harness) do(method, path string, payload interface{}) (*httptest.ResponseRecorder, *envelope) {
	var reader *bytes.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		require.NoError(h.t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.engine.ServeHTTP(w, req)
	var body envelope
	if strings.HasPrefix(w.Header().Get("Content-Type"), "application/json") {
		require.NoError(h.t, json.Unmarshal(w.Body.Bytes(), &body))
	}
	return w, &body
}

func (h *harness) path(format string, args ...interface{}) string {
	return "/v1/views/" + h.view + fmt.Sprintf(format, args...)
}

func TestUserFlow(t *testing.T) {
	h := newHarness(t)

	w, body := h.do(http.MethodGet, h.path("/users"), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "显示第 1 到第 3 条记录，总共 3 条记录", body.Message)

	w, body = h.do(http.MethodPost, h.path("/users"), map[string]interface{}{
		"loginName": "a", "userName": "Bob", "department": "研发部门", "phone": "13800000000",
		"id": 99, "createTime": "2000-01-01 00:00:00",
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "用户创建成功", body.Message)
	var created model.User
	require.NoError(t, json.Unmarshal(body.Result, &created))
	assert.Equal(t, 4, created.ID)
	assert.True(t, created.Status)
	assert.NotEqual(t, "2000-01-01 00:00:00", created.CreateTime)

	w, body = h.do(http.MethodPost, h.path("/users"), map[string]interface{}{
		"loginName": "b", "userName": "Bob", "department": "研发部门", "phone": "13800000000",
	})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "该用户名称和手机号码组合已存在", body.Message)

	w, body = h.do(http.MethodPost, h.path("/users"), map[string]interface{}{
		"loginName": "c", "userName": "Carl", "department": "财务部门", "phone": "123",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "4000000001", body.Code)
	var messages []string
	require.NoError(t, json.Unmarshal(body.Result, &messages))
	assert.Equal(t, []string{"部门必须是有效的部门", "手机号码格式不正确"}, messages)

	w, body = h.do(http.MethodPost, h.path("/search"), map[string]interface{}{"phone": "138"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "搜索完成，找到 2 条记录", body.Message)

	w, body = h.do(http.MethodPost, h.path("/reset"), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "搜索条件已重置", body.Message)

	w, body = h.do(http.MethodPatch, h.path("/users/2/status"), map[string]interface{}{"status": false})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "用户禁用成功", body.Message)
	w, body = h.do(http.MethodPost, h.path("/search"), map[string]interface{}{"status": false})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "搜索完成，找到 2 条记录", body.Message)

	w, body = h.do(http.MethodPut, h.path("/users/2"), map[string]interface{}{
		"loginName": "qa", "userName": "测试员", "department": "测试部门", "phone": "13900000002",
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "用户编辑成功", body.Message)
	w, body = h.do(http.MethodGet, h.path("/users/2"), nil)
	require.Equal(t, http.StatusOK, w.Code)
	var edited model.User
	require.NoError(t, json.Unmarshal(body.Result, &edited))
	assert.Equal(t, "qa", edited.LoginName)
	assert.Equal(t, "2024-01-02 08:00:00", edited.CreateTime)
}

func TestDeleteFlow(t *testing.T) {
	h := newHarness(t)

	w, body := h.do(http.MethodDelete, h.path("/users/1"), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "确定要删除这个用户吗？", body.Message)
	var confirmation struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(body.Result, &confirmation))

	w, _ = h.do(http.MethodDelete, h.path("/confirmations/%s", confirmation.ID), nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	w, body = h.do(http.MethodGet, h.path("/users"), nil)
	assert.Equal(t, "显示第 1 到第 3 条记录，总共 3 条记录", body.Message)

	_, body = h.do(http.MethodDelete, h.path("/users/1"), nil)
	require.NoError(t, json.Unmarshal(body.Result, &confirmation))
	w, body = h.do(http.MethodPost, h.path("/confirmations/%s", confirmation.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "用户删除成功", body.Message)
	w, _ = h.do(http.MethodGet, h.path("/users/1"), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w, body = h.do(http.MethodDelete, h.path("/users"), nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "请选择要删除的用户", body.Message)

	w, _ = h.do(http.MethodPut, h.path("/selection"), map[string]interface{}{"ids": []int{2, 3}})
	require.Equal(t, http.StatusOK, w.Code)
	w, body = h.do(http.MethodDelete, h.path("/users"), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "确定要删除选中的2个用户吗？", body.Message)
	require.NoError(t, json.Unmarshal(body.Result, &confirmation))
	w, body = h.do(http.MethodPost, h.path("/confirmations/%s", confirmation.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "批量删除成功", body.Message)

	w, body = h.do(http.MethodGet, h.path("/users"), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "显示第 0 到第 0 条记录，总共 0 条记录", body.Message)
}

func TestExportAndImport(t *testing.T) {
	h := newHarness(t)
	_, _ = h.do(http.MethodPost, h.path("/search"), map[string]interface{}{"loginName": "ADMIN"})

	w, _ := h.do(http.MethodGet, h.path("/export"), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "\xEF\xBB\xBF用户ID,登录名称,用户名称,部门,手机,用户状态,创建时间\n"+
		"1,admin,管理员,研发部门,13800000001,启用,2024-01-01 08:00:00\n", w.Body.String())

	w, body := h.do(http.MethodPost, h.path("/import"), nil)
	assert.Equal(t, http.StatusNotImplemented, w.Code)
	assert.Equal(t, "导入功能待实现", body.Message)
}

func TestCreateTrimsNames(t *testing.T) {
	h := newHarness(t)

	w, body := h.do(http.MethodPost, h.path("/users"), map[string]interface{}{
		"loginName": "   ", "userName": "  ", "department": "研发部门", "phone": "13811112222",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "4000000001", body.Code)
	var messages []string
	require.NoError(t, json.Unmarshal(body.Result, &messages))
	assert.Equal(t, []string{"登录名称为必填字段", "用户名称为必填字段"}, messages)

	loginName := strings.Repeat("a", 20)
	w, body = h.do(http.MethodPost, h.path("/users"), map[string]interface{}{
		"loginName": "  " + loginName + "  ", "userName": " 新同事 ", "department": "研发部门", "phone": "13811112222",
	})
	require.Equal(t, http.StatusOK, w.Code)
	var created model.User
	require.NoError(t, json.Unmarshal(body.Result, &created))
	assert.Equal(t, loginName, created.LoginName)
	assert.Equal(t, "新同事", created.UserName)

	w, _ = h.do(http.MethodGet, h.path("/users"), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), `"loginName":""`)
}

func TestPartialUpdate(t *testing.T) {
	h := newHarness(t)

	w, body := h.do(http.MethodPut, h.path("/users/3"), map[string]interface{}{"phone": "13700000009"})
	require.Equal(t, http.StatusOK, w.Code)
	var edited model.User
	require.NoError(t, json.Unmarshal(body.Result, &edited))
	assert.Equal(t, model.User{
		ID: 3, LoginName: "pm", UserName: "产品", Department: "产品部门", Phone: "13700000009",
		Status: false, CreateTime: "2024-01-03 08:00:00",
	}, edited)

	w, body = h.do(http.MethodPut, h.path("/users/3"), map[string]interface{}{"userName": "  "})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "4000000001", body.Code)
}

func TestConfirmAfterDeletedElsewhere(t *testing.T) {
	h := newHarness(t)
	other := &harness{t: t, engine: h.engine}
	other.view = other.mount()

	var first, second struct {
		ID string `json:"id"`
	}
	_, body := h.do(http.MethodDelete, h.path("/users/2"), nil)
	require.NoError(t, json.Unmarshal(body.Result, &first))
	_, body = other.do(http.MethodDelete, other.path("/users/2"), nil)
	require.NoError(t, json.Unmarshal(body.Result, &second))

	w, body := other.do(http.MethodPost, other.path("/confirmations/%s", second.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "用户删除成功", body.Message)

	w, body = h.do(http.MethodPost, h.path("/confirmations/%s", first.ID), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "4041000100", body.Code)
	assert.Equal(t, "用户不存在", body.Message)
}

func TestUnknownRoutes(t *testing.T) {
	h := newHarness(t)

	w, body := h.do(http.MethodGet, "/v1/nothing", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "4040000002", body.Code)

	w, body = h.do(http.MethodPost, "/health", nil)
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	assert.Equal(t, "4050000003", body.Code)
	assert.Equal(t, "不允许此方法", body.Message)
}

func TestViewLifecycle(t *testing.T) {
	h := newHarness(t)
	w, _ := h.do(http.MethodDelete, "/v1/views/"+h.view, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w, body := h.do(http.MethodGet, h.path("/users"), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "4041000103", body.Code)
}

func TestHealthAndMetrics(t *testing.T) {
	h := newHarness(t)
	w, _ := h.do(http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w, _ = h.do(http.MethodGet, "/metrics", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "usercenter_users")
}
