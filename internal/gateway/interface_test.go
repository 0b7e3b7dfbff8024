package gateway

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"usercenter/pkg/code"
)

func TestSeedUsers(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "usercenter", r.Header.Get("X-Source"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"code":"200","message":"请求成功","result":[
			{"id":1,"loginName":"admin","userName":"管理员","department":"研发部门","phone":"13800000001","status":true,"createTime":"2024-01-01 08:00:00"},
			{"id":3,"loginName":"amy","userName":"艾米","department":"测试部门","phone":"13900000003","status":false,"createTime":"2024-01-02 08:00:00"}
		]}`)
	}))
	defer server.Close()

	users, err := NewBaseClient(server.URL, time.Second).Users().List(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, 3, users[1].ID)
	assert.False(t, users[1].Status)
	assert.Equal(t, "2024-01-02 08:00:00", users[1].CreateTime)
}

func TestSeedUsersTimeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(time.Second):
		}
	}))
	defer server.Close()

	_, err := NewBaseClient(server.URL, 20*time.Millisecond).Users().List(context.Background())
	assert.True(t, errors.Is(err, code.ErrRequestTimeout))
}
