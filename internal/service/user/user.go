package user

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/pkg/errors"
	uuid "github.com/satori/go.uuid"
	"go.uber.org/zap"

	"usercenter/internal/code"
	"usercenter/internal/model"
	"usercenter/internal/store"
	"usercenter/pkg/logger"
)

// UserSrv is the user table of one console view. Its filtered view is never
// stored, every read re-applies the last search criteria to the canonical set.
type UserSrv interface {
	// Search replaces the criteria and goes back to page 1, it returns the match count
	Search(ctx context.Context, criteria *model.Criteria) (int, error)
	// Reset clears the criteria and goes back to page 1
	Reset(ctx context.Context) (int, error)
	Page(ctx context.Context, opts *PageOpts) (*PageResult, error)
	// Filtered is the whole filtered view in canonical order
	Filtered(ctx context.Context) ([]*model.User, error)
	Get(ctx context.Context, id int) (*model.User, error)
	Create(ctx context.Context, opts *store.CreateOpts) (*model.User, error)
	// Update and ToggleStatus are silent no-ops for an unknown id, found reports it
	Update(ctx context.Context, id int, opts *store.UpdateOpts) (user *model.User, found bool, err error)
	ToggleStatus(ctx context.Context, id int, status bool) (user *model.User, found bool, err error)
	// Select replaces the row selection, unknown ids are dropped
	Select(ctx context.Context, ids []int) ([]int, error)
	Selected(ctx context.Context) []int
	// Delete and BatchDelete only open a confirmation, nothing is removed before Confirm
	Delete(ctx context.Context, id int) (*Confirmation, error)
	BatchDelete(ctx context.Context) (*Confirmation, error)
	Confirm(ctx context.Context, confirmationID string) (*Outcome, error)
	Cancel(ctx context.Context, confirmationID string) error
}

// PageOpts PageNum 0 keeps the current page
type PageOpts struct {
	PageNum int
	Sort    model.Sort
}

type PageResult struct {
	model.Pagination
	List []*model.User `json:"list"`
}

// Confirmation is a deletion waiting for the user's answer
type Confirmation struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	IDs   []int  `json:"ids"`
	Batch bool   `json:"batch"`
}

// Outcome of a confirmed deletion
type Outcome struct {
	Removed int  `json:"removed"`
	Batch   bool `json:"batch"`
}

func newUserSrv(users store.UserStore) *userSrv {
	return &userSrv{
		users:    users,
		page:     1,
		pageSize: model.DefaultPageSize,
		selected: make(map[int]struct{}),
		pending:  make(map[string]*Confirmation),
	}
}

var _ UserSrv = (*userSrv)(nil)

type userSrv struct {
	users store.UserStore

	mu       sync.Mutex
	criteria *model.Criteria
	page     int
	pageSize int
	selected map[int]struct{}
	pending  map[string]*Confirmation
}

func (u *userSrv) Search(ctx context.Context, criteria *model.Criteria) (int, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	if criteria.Empty() {
		criteria = nil
	}
	filtered, err := u.users.List(ctx, &store.ListOpts{Criteria: criteria})
	if err != nil {
		logger.From(ctx).Error("list users failed", zap.Error(err))
		return 0, err
	}
	u.criteria = criteria
	u.page = 1
	return len(filtered), nil
}

func (u *userSrv) Reset(ctx context.Context) (int, error) {
	return u.Search(ctx, nil)
}

func (u *userSrv) Page(ctx context.Context, opts *PageOpts) (*PageResult, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	filtered, err := u.filtered(ctx)
	if err != nil {
		return nil, err
	}
	if opts == nil {
		opts = &PageOpts{}
	}
	if opts.PageNum > 0 {
		u.page = opts.PageNum
	}
	result := &PageResult{Pagination: model.Pagination{
		PageNum:  u.page,
		PageSize: u.pageSize,
		Total:    len(filtered),
	}}
	result.Clamp()
	u.page = result.PageNum
	opts.Sort.Apply(filtered)
	start, end := result.Bounds()
	result.List = filtered[start:end]
	return result, nil
}

func (u *userSrv) Filtered(ctx context.Context) ([]*model.User, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.filtered(ctx)
}

func (u *userSrv) Get(ctx context.Context, id int) (*model.User, error) {
	return u.users.Get(ctx, id)
}

func (u *userSrv) Create(ctx context.Context, opts *store.CreateOpts) (*model.User, error) {
	created, err := u.users.Create(ctx, opts)
	if err != nil {
		logger.From(ctx).Warn("create user rejected",
			zap.String("user_name", opts.UserName), zap.String("phone", opts.Phone), zap.Error(err))
		return nil, err
	}
	logger.From(ctx).Info("user created", zap.Int("id", created.ID))
	return created, nil
}

func (u *userSrv) Update(ctx context.Context, id int, opts *store.UpdateOpts) (*model.User, bool, error) {
	updated, found, err := u.users.Update(ctx, id, opts)
	if err != nil {
		logger.From(ctx).Error("update user failed", zap.Int("id", id), zap.Error(err))
		return nil, false, err
	}
	if !found {
		logger.From(ctx).Debug("update skipped, user is gone", zap.Int("id", id))
	}
	return updated, found, nil
}

func (u *userSrv) ToggleStatus(ctx context.Context, id int, status bool) (*model.User, bool, error) {
	updated, found, err := u.users.SetStatus(ctx, id, status)
	if err != nil {
		logger.From(ctx).Error("toggle user status failed", zap.Int("id", id), zap.Error(err))
		return nil, false, err
	}
	return updated, found, nil
}

func (u *userSrv) Select(ctx context.Context, ids []int) ([]int, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	existing, err := u.existing(ctx)
	if err != nil {
		return nil, err
	}
	selected := make(map[int]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := existing[id]; ok {
			selected[id] = struct{}{}
		}
	}
	u.selected = selected
	return sortedKeys(u.selected), nil
}

func (u *userSrv) Selected(_ context.Context) []int {
	u.mu.Lock()
	defer u.mu.Unlock()
	return sortedKeys(u.selected)
}

func (u *userSrv) Delete(ctx context.Context, id int) (*Confirmation, error) {
	if _, err := u.users.Get(ctx, id); err != nil {
		return nil, err
	}
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.open("确定要删除这个用户吗？", []int{id}, false), nil
}

func (u *userSrv) BatchDelete(ctx context.Context) (*Confirmation, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	existing, err := u.existing(ctx)
	if err != nil {
		return nil, err
	}
	for id := range u.selected {
		if _, ok := existing[id]; !ok {
			delete(u.selected, id)
		}
	}
	if len(u.selected) == 0 {
		return nil, errors.WithStack(code.ErrEmptySelection)
	}
	ids := sortedKeys(u.selected)
	return u.open(fmt.Sprintf("确定要删除选中的%d个用户吗？", len(ids)), ids, true), nil
}

func (u *userSrv) Confirm(ctx context.Context, confirmationID string) (*Outcome, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	confirmation, ok := u.pending[confirmationID]
	if !ok {
		return nil, errors.WithStack(code.ErrConfirmationNotFound)
	}
	removed, err := u.users.BatchDelete(ctx, confirmation.IDs)
	if err != nil {
		logger.From(ctx).Error("delete users failed", zap.Ints("ids", confirmation.IDs), zap.Error(err))
		return nil, err
	}
	delete(u.pending, confirmationID)
	if confirmation.Batch {
		u.selected = make(map[int]struct{})
	} else {
		for _, id := range confirmation.IDs {
			delete(u.selected, id)
		}
	}
	// 单个删除时用户已被其他视图删除
	if !confirmation.Batch && removed == 0 {
		logger.From(ctx).Info("user already deleted", zap.Ints("ids", confirmation.IDs))
		return nil, errors.WithStack(code.ErrUserNotFound)
	}
	logger.From(ctx).Info("users deleted", zap.Ints("ids", confirmation.IDs), zap.Int("removed", removed))
	return &Outcome{Removed: removed, Batch: confirmation.Batch}, nil
}

func (u *userSrv) Cancel(_ context.Context, confirmationID string) error {
	u.mu.Lock()
	defer u.mu.Unlock()
	if _, ok := u.pending[confirmationID]; !ok {
		return errors.WithStack(code.ErrConfirmationNotFound)
	}
	delete(u.pending, confirmationID)
	return nil
}

func (u *userSrv) open(title string, ids []int, batch bool) *Confirmation {
	confirmation := &Confirmation{
		ID:    uuid.NewV4().String(),
		Title: title,
		IDs:   ids,
		Batch: batch,
	}
	u.pending[confirmation.ID] = confirmation
	return confirmation
}

// filtered must be called with mu held
func (u *userSrv) filtered(ctx context.Context) ([]*model.User, error) {
	filtered, err := u.users.List(ctx, &store.ListOpts{Criteria: u.criteria})
	if err != nil {
		logger.From(ctx).Error("list users failed", zap.Error(err))
		return nil, err
	}
	return filtered, nil
}

func (u *userSrv) existing(ctx context.Context) (map[int]struct{}, error) {
	all, err := u.users.List(ctx, nil)
	if err != nil {
		return nil, err
	}
	ids := make(map[int]struct{}, len(all))
	for _, user := range all {
		ids[user.ID] = struct{}{}
	}
	return ids, nil
}

func sortedKeys(m map[int]struct{}) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}
