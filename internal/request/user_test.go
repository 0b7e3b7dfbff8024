package request

import (
	"strings"
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"

	"usercenter/internal/store"
	"usercenter/pkg/json"
)

func boolPtr(b bool) *bool { return &b }

func strPtr(s string) *string { return &s }

func TestUserForm(t *testing.T) {
	require.NoError(t, RegisterValidation())
	valid := UserForm{LoginName: "admin", UserName: "管理员", Department: "研发部门", Phone: "13800000000"}
	tests := []struct {
		name   string
		modify func(f *UserForm)
		errs   []string
	}{
		{name: "ok", modify: func(*UserForm) {}},
		{name: "chinese within limit", modify: func(f *UserForm) { f.UserName = strings.Repeat("名", 10) }},
		{
			name:   "missing",
			modify: func(f *UserForm) { *f = UserForm{} },
			errs:   []string{"登录名称为必填字段", "用户名称为必填字段", "部门为必填字段", "手机号码为必填字段"},
		},
		{
			name:   "too long",
			modify: func(f *UserForm) { f.LoginName = strings.Repeat("a", 21); f.UserName = strings.Repeat("名", 11) },
			errs:   []string{"登录名称长度不能超过20个字符", "用户名称长度不能超过10个字符"},
		},
		{
			name:   "department",
			modify: func(f *UserForm) { f.Department = "财务部门" },
			errs:   []string{"部门必须是有效的部门"},
		},
		{
			name:   "phone",
			modify: func(f *UserForm) { f.Phone = "12800000000" },
			errs:   []string{"手机号码格式不正确"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := valid
			tt.modify(&form)
			err := binding.Validator.ValidateStruct(&CreateUserReq{UserForm: form})
			if len(tt.errs) == 0 {
				assert.NoError(t, err)
				return
			}
			var got []string
			for _, e := range multierr.Errors(err) {
				got = append(got, e.Error())
			}
			assert.Equal(t, tt.errs, got)
		})
	}
}

func TestSearchReqCriteria(t *testing.T) {
	empty := (&SearchReq{LoginName: "  ", Phone: ""}).Criteria()
	assert.True(t, empty.Empty())

	halfRange := (&SearchReq{CreateTimeStart: "2024-01-01 00:00:00"}).Criteria()
	assert.True(t, halfRange.Empty())

	criteria := (&SearchReq{
		LoginName:       "Adm",
		Phone:           "138",
		Status:          boolPtr(false),
		CreateTimeStart: "2024-01-01 00:00:00",
		CreateTimeEnd:   "2024-12-31 23:59:59",
	}).Criteria()
	require.False(t, criteria.Empty())
	assert.Equal(t, "Adm", *criteria.LoginName)
	assert.Equal(t, "138", *criteria.Phone)
	assert.False(t, *criteria.Status)
	assert.Equal(t, 2024, criteria.CreatedFrom.Year())
	assert.Equal(t, 12, int(criteria.CreatedTo.Month()))
}

func TestPageReqSortBy(t *testing.T) {
	assert.Equal(t, "", (&PageReq{}).SortBy().SortField)
	assert.Equal(t, "createTime asc", (&PageReq{Sort: "createTime"}).SortBy().SortField)
	assert.Equal(t, "createTime desc", (&PageReq{Sort: "createTime", Order: "desc"}).SortBy().SortField)
}

func TestCreateUserReqTrimsBeforeValidate(t *testing.T) {
	require.NoError(t, RegisterValidation())
	tests := []struct {
		name string
		body string
		want *store.CreateOpts
		errs []string
	}{
		{
			name: "blank names",
			body: `{"loginName":"   ","userName":"  ","department":"研发部门","phone":"13811112222"}`,
			errs: []string{"登录名称为必填字段", "用户名称为必填字段"},
		},
		{
			name: "max counted after trim",
			body: `{"loginName":"  ` + strings.Repeat("a", 20) + `  ","userName":" ` + strings.Repeat("名", 10) + ` ","department":"研发部门","phone":"13811112222"}`,
			want: &store.CreateOpts{LoginName: strings.Repeat("a", 20), UserName: strings.Repeat("名", 10), Department: "研发部门", Phone: "13811112222"},
		},
		{
			name: "still too long",
			body: `{"loginName":" ` + strings.Repeat("a", 21) + ` ","userName":"张三","department":"研发部门","phone":"13811112222"}`,
			errs: []string{"登录名称长度不能超过20个字符"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req CreateUserReq
			require.NoError(t, json.Unmarshal([]byte(tt.body), &req))
			err := binding.Validator.ValidateStruct(&req)
			if len(tt.errs) == 0 {
				require.NoError(t, err)
				assert.Equal(t, tt.want, req.Opts())
				return
			}
			var got []string
			for _, e := range multierr.Errors(err) {
				got = append(got, e.Error())
			}
			assert.Equal(t, tt.errs, got)
		})
	}
}

func TestUpdateUserReq(t *testing.T) {
	require.NoError(t, RegisterValidation())
	tests := []struct {
		name string
		body string
		want *store.UpdateOpts
		errs []string
	}{
		{name: "empty", body: `{}`, want: &store.UpdateOpts{}},
		{
			name: "partial",
			body: `{"loginName":" a ","status":false}`,
			want: &store.UpdateOpts{LoginName: strPtr("a"), Status: boolPtr(false)},
		},
		{
			name: "blank name",
			body: `{"userName":"   "}`,
			errs: []string{"用户名称不能为空"},
		},
		{
			name: "invalid fields",
			body: `{"loginName":"` + strings.Repeat("a", 21) + `","department":"财务部门","phone":"123"}`,
			errs: []string{"登录名称长度不能超过20个字符", "部门必须是有效的部门", "手机号码格式不正确"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req UpdateUserReq
			require.NoError(t, json.Unmarshal([]byte(tt.body), &req))
			err := binding.Validator.ValidateStruct(&req)
			if len(tt.errs) == 0 {
				require.NoError(t, err)
				assert.Equal(t, tt.want, req.Opts())
				return
			}
			var got []string
			for _, e := range multierr.Errors(err) {
				got = append(got, e.Error())
			}
			assert.Equal(t, tt.errs, got)
		})
	}
}
