package response

import (
	"usercenter/internal/model"
	"usercenter/internal/service/user"
	"usercenter/pkg/utils/v"
)

type MountRes struct {
	// 视图ID，后续请求路径中使用
	View string `json:"view"`
}

type SearchRes struct {
	// 匹配条数
	Total int `json:"total"`
}

type UserPageRes struct {
	model.Pagination
	List []*model.User `json:"list"`
}

func NewUserPageRes(page *user.PageResult) *UserPageRes {
	return &UserPageRes{Pagination: page.Pagination, List: page.List}
}

type SelectRes struct {
	IDs []int `json:"ids"`
}

type ConfirmationRes struct {
	// 确认ID，确认或取消时使用
	ID string `json:"id"`
	// 提示语
	Title string `json:"title"`
	// 待删除的用户ID
	IDs []int `json:"ids"`
}

func NewConfirmationRes(c *user.Confirmation) *ConfirmationRes {
	return &ConfirmationRes{ID: c.ID, Title: c.Title, IDs: c.IDs}
}

type DeleteRes struct {
	// 实际删除条数
	Removed int `json:"removed"`
}

// ExportUser 导出文件的一行，列顺序即字段顺序
type ExportUser struct {
	ID         int    `csv:"用户ID"`
	LoginName  string `csv:"登录名称"`
	UserName   string `csv:"用户名称"`
	Department string `csv:"部门"`
	Phone      string `csv:"手机"`
	Status     string `csv:"用户状态"`
	CreateTime string `csv:"创建时间"`
}

func NewExportUsers(users []*model.User) []*ExportUser {
	result := make([]*ExportUser, len(users))
	for i, u := range users {
		status := v.StatusDisabled
		if u.Status {
			status = v.StatusEnabled
		}
		result[i] = &ExportUser{
			ID:         u.ID,
			LoginName:  u.LoginName,
			UserName:   u.UserName,
			Department: u.Department,
			Phone:      u.Phone,
			Status:     status,
			CreateTime: u.CreateTime,
		}
	}
	return result
}
