package request

import (
	"strings"

	"usercenter/internal/model"
	"usercenter/internal/store"
	"usercenter/pkg/json"
	"usercenter/pkg/timex"
)

type ViewURI struct {
	// 视图ID
	View string `uri:"view" binding:"required"`
}

type UserURI struct {
	// 用户ID
	ID int `uri:"id" binding:"required,min=1"`
}

type ConfirmationURI struct {
	// 确认ID
	Confirmation string `uri:"confirmation" binding:"required"`
}

// UserForm 新增用户的表单，名称两端的空白在校验前去除
type UserForm struct {
	// 登录名称
	LoginName string `json:"loginName" binding:"required,max=20" label:"登录名称"`
	// 用户名称
	UserName string `json:"userName" binding:"required,max=10" label:"用户名称"`
	// 部门，枚举值：研发部门,测试部门,产品部门,设计部门,销售部门,市场部门
	Department string `json:"department" binding:"required,department" label:"部门"`
	// 手机
	Phone string `json:"phone" binding:"required,phone" label:"手机号码"`
	// 用户状态，不传时默认启用
	Status *bool `json:"status"`
}

// UnmarshalJSON trims the names so binding measures what gets stored
func (f *UserForm) UnmarshalJSON(data []byte) error {
	type plain UserForm
	var form plain
	if err := json.Unmarshal(data, &form); err != nil {
		return err
	}
	form.LoginName = strings.TrimSpace(form.LoginName)
	form.UserName = strings.TrimSpace(form.UserName)
	*f = UserForm(form)
	return nil
}

type CreateUserReq struct {
	UserForm
}

func (r *CreateUserReq) Opts() *store.CreateOpts {
	return &store.CreateOpts{
		LoginName:  r.LoginName,
		UserName:   r.UserName,
		Department: r.Department,
		Phone:      r.Phone,
		Status:     r.Status,
	}
}

// UpdateUserReq 只修改传入的字段，id和createTime即使传入也会被忽略
type UpdateUserReq struct {
	// 登录名称
	LoginName *string `json:"loginName" binding:"omitempty,notblank,max=20" label:"登录名称"`
	// 用户名称
	UserName *string `json:"userName" binding:"omitempty,notblank,max=10" label:"用户名称"`
	// 部门
	Department *string `json:"department" binding:"omitempty,department" label:"部门"`
	// 手机
	Phone *string `json:"phone" binding:"omitempty,phone" label:"手机号码"`
	// 用户状态
	Status *bool `json:"status"`
}

func (r *UpdateUserReq) UnmarshalJSON(data []byte) error {
	type plain UpdateUserReq
	var req plain
	if err := json.Unmarshal(data, &req); err != nil {
		return err
	}
	for _, name := range []*string{req.LoginName, req.UserName} {
		if name != nil {
			*name = strings.TrimSpace(*name)
		}
	}
	*r = UpdateUserReq(req)
	return nil
}

func (r *UpdateUserReq) Opts() *store.UpdateOpts {
	return &store.UpdateOpts{
		LoginName:  r.LoginName,
		UserName:   r.UserName,
		Department: r.Department,
		Phone:      r.Phone,
		Status:     r.Status,
	}
}

type ToggleStatusReq struct {
	// 目标状态，true启用，false禁用
	Status *bool `json:"status" binding:"required" label:"用户状态"`
}

// SearchReq 空字符串视为未填写
type SearchReq struct {
	// 登录名称，模糊匹配，不区分大小写
	LoginName string `json:"loginName" binding:"omitempty,max=20" label:"登录名称"`
	// 手机号码，模糊匹配
	Phone string `json:"phone" binding:"omitempty,max=11" label:"手机号码"`
	// 用户状态
	Status *bool `json:"status"`
	// 创建时间范围，开始和结束都填写时才生效
	// Example: 2024-01-01 00:00:00
	CreateTimeStart string `json:"createTimeStart" binding:"omitempty,datetime=2006-01-02 15:04:05" label:"开始时间"`
	// Example: 2024-12-31 23:59:59
	CreateTimeEnd string `json:"createTimeEnd" binding:"omitempty,datetime=2006-01-02 15:04:05" label:"结束时间"`
}

func (r *SearchReq) Criteria() *model.Criteria {
	criteria := &model.Criteria{Status: r.Status}
	if loginName := strings.TrimSpace(r.LoginName); loginName != "" {
		criteria.LoginName = &loginName
	}
	if phone := strings.TrimSpace(r.Phone); phone != "" {
		criteria.Phone = &phone
	}
	// datetime was checked by the binding
	if start, err := timex.Parse(r.CreateTimeStart); err == nil {
		criteria.CreatedFrom = &start
	}
	if end, err := timex.Parse(r.CreateTimeEnd); err == nil {
		criteria.CreatedTo = &end
	}
	return criteria
}

type PageReq struct {
	// 查询第几页，从1开始，不传保持当前页
	// Example: 1
	Page int `form:"page" binding:"omitempty,min=1" label:"页码"`
	// 排序字段，只支持createTime
	Sort string `form:"sort" binding:"omitempty,oneof=createTime" label:"排序字段"`
	// 排序方式，asc-升序，desc-降序
	Order string `form:"order" binding:"omitempty,oneof=asc desc" label:"排序方式"`
}

func (r *PageReq) SortBy() model.Sort {
	if r.Sort == "" {
		return model.Sort{}
	}
	order := r.Order
	if order == "" {
		order = "asc"
	}
	return model.Sort{SortField: r.Sort + " " + order}
}

type SelectReq struct {
	// 勾选的用户ID，空数组表示清空
	IDs []int `json:"ids" binding:"omitempty,dive,min=1" label:"用户ID"`
}
