package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
)

type structPhone struct {
	Phone string `json:"phone" label:"手机号码" binding:"required,phone"`
}

func TestPhone(t *testing.T) {
	engine, err := New()
	require.NoError(t, err)
	require.NoError(t, RegisterValidation(engine, "phone", Phone, "请输入正确的{0}"))

	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{name: "empty", value: "", wantErr: true},
		{name: "ok", value: "13800000000", wantErr: false},
		{name: "ok_19", value: "19912345678", wantErr: false},
		{name: "second_digit_2", value: "12800000000", wantErr: true},
		{name: "too_short", value: "1380000000", wantErr: true},
		{name: "too_long", value: "138000000001", wantErr: true},
		{name: "letters", value: "1380000000a", wantErr: true},
		{name: "leading_2", value: "23800000000", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err = engine.ValidateStruct(structPhone{Phone: tt.value})
			if tt.wantErr {
				assert.NotNil(t, err, "err:%v", err)
				return
			}
			assert.Nil(t, err, "err:%v", err)
		})
	}

	err = engine.ValidateStruct(&structPhone{Phone: "123"})
	require.Error(t, err)
	assert.Equal(t, "请输入正确的手机号码", err.Error())
}

type structDepartment struct {
	Department string `json:"department" label:"部门" binding:"required,department"`
}

func TestOneOf(t *testing.T) {
	engine, err := New()
	require.NoError(t, err)
	require.NoError(t, RegisterValidation(engine, "department", OneOf("研发部门", "测试部门"), "请选择正确的{0}"))

	assert.NoError(t, engine.ValidateStruct(structDepartment{Department: "研发部门"}))
	assert.NoError(t, engine.ValidateStruct(structDepartment{Department: "测试部门"}))
	err = engine.ValidateStruct(structDepartment{Department: "财务部门"})
	require.Error(t, err)
	assert.Equal(t, "请选择正确的部门", err.Error())
}

type structForm struct {
	LoginName string `json:"loginName" label:"登录名称" binding:"required,max=20"`
	UserName  string `json:"userName" label:"用户名称" binding:"required,max=10"`
}

func TestTranslate(t *testing.T) {
	engine, err := New()
	require.NoError(t, err)

	err = engine.ValidateStruct(structForm{UserName: "一二三四五六七八九十"})
	require.Error(t, err)
	errs := multierr.Errors(err)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "登录名称")

	err = engine.ValidateStruct([]structForm{
		{LoginName: "a", UserName: "一二三四五六七八九十一"},
		{},
	})
	assert.Len(t, multierr.Errors(err), 3)

	assert.NoError(t, engine.ValidateStruct(nil))
	assert.NoError(t, engine.ValidateStruct((*structForm)(nil)))
}
