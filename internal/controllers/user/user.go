package user

import (
	"errors"
	"fmt"
	"io"

	"github.com/gin-gonic/gin"

	"usercenter/internal/code"
	"usercenter/internal/middleware"
	"usercenter/internal/request"
	"usercenter/internal/response"
	"usercenter/internal/service"
	usersrv "usercenter/internal/service/user"
	"usercenter/pkg/resp"
)

type UserController struct {
	srv service.Service
}

func NewUserController(srv service.Service) *UserController {
	return &UserController{
		srv: srv,
	}
}

// Mount 打开一个用户管理视图
func (u *UserController) Mount(c *gin.Context) {
	id := u.srv.Views().Mount(c.Request.Context())
	resp.SuccessWithMessage(c, "视图创建成功", &response.MountRes{View: id})
}

// Unmount 关闭视图，未确认的删除一并作废
func (u *UserController) Unmount(c *gin.Context) {
	var uri request.ViewURI
	if err := c.ShouldBindUri(&uri); err != nil {
		resp.ErrorParam(c, err)
		return
	}
	if err := u.srv.Views().Unmount(c.Request.Context(), uri.View); err != nil {
		resp.Error(c, err)
		return
	}
	resp.Success(c)
}

// List 分页查询当前筛选结果
func (u *UserController) List(c *gin.Context) {
	var req request.PageReq
	if err := c.ShouldBindQuery(&req); err != nil {
		resp.ErrorParam(c, err)
		return
	}
	page, err := middleware.Users(c).Page(c.Request.Context(), &usersrv.PageOpts{
		PageNum: req.Page,
		Sort:    req.SortBy(),
	})
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.SuccessWithMessage(c, rangeMessage(page), response.NewUserPageRes(page))
}

// Get 编辑前加载用户
func (u *UserController) Get(c *gin.Context) {
	var uri request.UserURI
	if err := c.ShouldBindUri(&uri); err != nil {
		resp.ErrorParam(c, err)
		return
	}
	result, err := middleware.Users(c).Get(c.Request.Context(), uri.ID)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Success(c, result)
}

// Search 按条件筛选，回到第一页
func (u *UserController) Search(c *gin.Context) {
	var req request.SearchReq
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		resp.ErrorParam(c, err)
		return
	}
	total, err := middleware.Users(c).Search(c.Request.Context(), req.Criteria())
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.SuccessWithMessage(c, fmt.Sprintf("搜索完成，找到 %d 条记录", total), &response.SearchRes{Total: total})
}

// Reset 清空搜索条件
func (u *UserController) Reset(c *gin.Context) {
	total, err := middleware.Users(c).Reset(c.Request.Context())
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.SuccessWithMessage(c, "搜索条件已重置", &response.SearchRes{Total: total})
}

// Select 勾选行，用于批量删除
func (u *UserController) Select(c *gin.Context) {
	var req request.SelectReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.ErrorParam(c, err)
		return
	}
	ids, err := middleware.Users(c).Select(c.Request.Context(), req.IDs)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Success(c, &response.SelectRes{IDs: ids})
}

// Create 新增用户
func (u *UserController) Create(c *gin.Context) {
	var req request.CreateUserReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.ErrorParam(c, err)
		return
	}
	result, err := middleware.Users(c).Create(c.Request.Context(), req.Opts())
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.SuccessWithMessage(c, "用户创建成功", result)
}

// Update 修改用户，用户已不存在时静默忽略
func (u *UserController) Update(c *gin.Context) {
	var uri request.UserURI
	if err := c.ShouldBindUri(&uri); err != nil {
		resp.ErrorParam(c, err)
		return
	}
	var req request.UpdateUserReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.ErrorParam(c, err)
		return
	}
	result, _, err := middleware.Users(c).Update(c.Request.Context(), uri.ID, req.Opts())
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.SuccessWithMessage(c, "用户编辑成功", result)
}

// ToggleStatus 启用或禁用用户
func (u *UserController) ToggleStatus(c *gin.Context) {
	var uri request.UserURI
	if err := c.ShouldBindUri(&uri); err != nil {
		resp.ErrorParam(c, err)
		return
	}
	var req request.ToggleStatusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.ErrorParam(c, err)
		return
	}
	result, _, err := middleware.Users(c).ToggleStatus(c.Request.Context(), uri.ID, *req.Status)
	if err != nil {
		resp.Error(c, err)
		return
	}
	message := "用户禁用成功"
	if *req.Status {
		message = "用户启用成功"
	}
	resp.SuccessWithMessage(c, message, result)
}

// Delete 申请删除单个用户，需要确认
func (u *UserController) Delete(c *gin.Context) {
	var uri request.UserURI
	if err := c.ShouldBindUri(&uri); err != nil {
		resp.ErrorParam(c, err)
		return
	}
	confirmation, err := middleware.Users(c).Delete(c.Request.Context(), uri.ID)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.SuccessWithMessage(c, confirmation.Title, response.NewConfirmationRes(confirmation))
}

// BatchDelete 申请删除勾选的用户，需要确认
func (u *UserController) BatchDelete(c *gin.Context) {
	confirmation, err := middleware.Users(c).BatchDelete(c.Request.Context())
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.SuccessWithMessage(c, confirmation.Title, response.NewConfirmationRes(confirmation))
}

// Confirm 确认删除
func (u *UserController) Confirm(c *gin.Context) {
	var uri request.ConfirmationURI
	if err := c.ShouldBindUri(&uri); err != nil {
		resp.ErrorParam(c, err)
		return
	}
	outcome, err := middleware.Users(c).Confirm(c.Request.Context(), uri.Confirmation)
	if err != nil {
		resp.Error(c, err)
		return
	}
	message := "用户删除成功"
	if outcome.Batch {
		message = "批量删除成功"
	}
	resp.SuccessWithMessage(c, message, &response.DeleteRes{Removed: outcome.Removed})
}

// Cancel 取消删除，数据不变
func (u *UserController) Cancel(c *gin.Context) {
	var uri request.ConfirmationURI
	if err := c.ShouldBindUri(&uri); err != nil {
		resp.ErrorParam(c, err)
		return
	}
	if err := middleware.Users(c).Cancel(c.Request.Context(), uri.Confirmation); err != nil {
		resp.Error(c, err)
		return
	}
	resp.Success(c)
}

// Export 导出当前筛选结果，Accept为表格类型时导出xlsx，否则导出csv
func (u *UserController) Export(c *gin.Context) {
	users, err := middleware.Users(c).Filtered(c.Request.Context())
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.SuccessWithFile(c, "用户数据", response.NewExportUsers(users))
}

// Import 导入用户
func (u *UserController) Import(c *gin.Context) {
	resp.Error(c, code.ErrImportNotImplemented)
}

func rangeMessage(page *usersrv.PageResult) string {
	start, end := page.Bounds()
	if page.Total > 0 {
		start++
	}
	return fmt.Sprintf("显示第 %d 到第 %d 条记录，总共 %d 条记录", start, end, page.Total)
}
