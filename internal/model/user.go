package model

import (
	"strings"
	"time"

	"usercenter/pkg/timex"
)

// Departments 部门枚举，顺序即下拉框顺序
var Departments = []string{
	"研发部门",
	"测试部门",
	"产品部门",
	"设计部门",
	"销售部门",
	"市场部门",
}

// User 用户记录
type User struct {
	// 用户ID
	ID int `json:"id"`
	// 登录名称，不超过20个字符
	LoginName string `json:"loginName" binding:"notblank,max=20" label:"登录名称"`
	// 用户名称，不超过10个字符
	UserName string `json:"userName" binding:"notblank,max=10" label:"用户名称"`
	// 部门
	Department string `json:"department" binding:"required,department" label:"部门"`
	// 手机
	Phone string `json:"phone" binding:"required,phone" label:"手机号码"`
	// 用户状态，true启用
	Status bool `json:"status"`
	// 创建时间 2006-01-02 15:04:05
	CreateTime string `json:"createTime"`
}

// CreatedAt parses CreateTime, the zero time when it is malformed
func (u *User) CreatedAt() time.Time {
	t, err := timex.Parse(u.CreateTime)
	if err != nil {
		return time.Time{}
	}
	return t
}

// SameIdentity reports whether u and other collide on (userName, phone)
func (u *User) SameIdentity(other *User) bool {
	return u.UserName == other.UserName && u.Phone == other.Phone
}

// Criteria 搜索条件，nil字段不参与过滤
type Criteria struct {
	LoginName *string
	Phone     *string
	Status    *bool
	// 创建时间范围，两端都给出时才生效，闭区间
	CreatedFrom *time.Time
	CreatedTo   *time.Time
}

// Empty reports whether no predicate is active
func (c *Criteria) Empty() bool {
	return c == nil || (c.LoginName == nil && c.Phone == nil && c.Status == nil && !c.hasRange())
}

func (c *Criteria) hasRange() bool {
	return c.CreatedFrom != nil && c.CreatedTo != nil
}

// Match applies every supplied predicate conjunctively
func (c *Criteria) Match(u *User) bool {
	if c == nil {
		return true
	}
	if c.LoginName != nil && !strings.Contains(strings.ToLower(u.LoginName), strings.ToLower(*c.LoginName)) {
		return false
	}
	if c.Phone != nil && !strings.Contains(u.Phone, *c.Phone) {
		return false
	}
	if c.Status != nil && u.Status != *c.Status {
		return false
	}
	if c.hasRange() {
		created := u.CreatedAt()
		if created.Before(*c.CreatedFrom) || created.After(*c.CreatedTo) {
			return false
		}
	}
	return true
}
