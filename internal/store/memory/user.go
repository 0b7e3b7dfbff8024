package memory

import (
	"context"
	"sync"

	"github.com/pkg/errors"

	"usercenter/internal/code"
	"usercenter/internal/model"
	"usercenter/internal/store"
	"usercenter/pkg/clock"
	"usercenter/pkg/prometheus"
	"usercenter/pkg/timex"
)

// userStore keeps records in insertion order behind one lock, every mutation
// happens in a single critical section so no caller sees half of it.
type userStore struct {
	mu    sync.RWMutex
	clock clock.PassiveClock
	users []*model.User
}

func (u *userStore) Create(_ context.Context, opts *store.CreateOpts) (*model.User, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	user := &model.User{
		LoginName:  opts.LoginName,
		UserName:   opts.UserName,
		Department: opts.Department,
		Phone:      opts.Phone,
		Status:     true,
	}
	if opts.Status != nil {
		user.Status = *opts.Status
	}
	maxID := 0
	for _, existing := range u.users {
		if existing.SameIdentity(user) {
			return nil, errors.WithStack(code.ErrDuplicateUser)
		}
		if existing.ID > maxID {
			maxID = existing.ID
		}
	}
	user.ID = maxID + 1
	user.CreateTime = timex.TimeFormat(u.clock.Now())
	u.users = append(u.users, user)
	prometheus.UserGauge.Set(float64(len(u.users)))
	clone := *user
	return &clone, nil
}

func (u *userStore) Update(_ context.Context, id int, opts *store.UpdateOpts) (*model.User, bool, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	index := u.indexOf(id)
	if index < 0 {
		return nil, false, nil
	}
	// build the replacement first, the stored record is swapped in one assignment
	updated := *u.users[index]
	if opts.LoginName != nil {
		updated.LoginName = *opts.LoginName
	}
	if opts.UserName != nil {
		updated.UserName = *opts.UserName
	}
	if opts.Department != nil {
		updated.Department = *opts.Department
	}
	if opts.Phone != nil {
		updated.Phone = *opts.Phone
	}
	if opts.Status != nil {
		updated.Status = *opts.Status
	}
	u.users[index] = &updated
	clone := updated
	return &clone, true, nil
}

func (u *userStore) SetStatus(ctx context.Context, id int, status bool) (*model.User, bool, error) {
	return u.Update(ctx, id, &store.UpdateOpts{Status: &status})
}

func (u *userStore) Get(_ context.Context, id int) (*model.User, error) {
	u.mu.RLock()
	defer u.mu.RUnlock()
	index := u.indexOf(id)
	if index < 0 {
		return nil, errors.WithStack(code.ErrUserNotFound)
	}
	clone := *u.users[index]
	return &clone, nil
}

func (u *userStore) List(_ context.Context, opts *store.ListOpts) ([]*model.User, error) {
	var criteria *model.Criteria
	if opts != nil {
		criteria = opts.Criteria
	}
	u.mu.RLock()
	defer u.mu.RUnlock()
	result := make([]*model.User, 0, len(u.users))
	for _, user := range u.users {
		if !criteria.Match(user) {
			continue
		}
		clone := *user
		result = append(result, &clone)
	}
	return result, nil
}

func (u *userStore) Delete(ctx context.Context, id int) (bool, error) {
	n, err := u.BatchDelete(ctx, []int{id})
	return n == 1, err
}

func (u *userStore) BatchDelete(_ context.Context, ids []int) (int, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	remove := make(map[int]struct{}, len(ids))
	for _, id := range ids {
		remove[id] = struct{}{}
	}
	u.mu.Lock()
	defer u.mu.Unlock()
	kept := make([]*model.User, 0, len(u.users))
	for _, user := range u.users {
		if _, ok := remove[user.ID]; ok {
			continue
		}
		kept = append(kept, user)
	}
	removed := len(u.users) - len(kept)
	u.users = kept
	prometheus.UserGauge.Set(float64(len(u.users)))
	return removed, nil
}

func (u *userStore) indexOf(id int) int {
	for i, user := range u.users {
		if user.ID == id {
			return i
		}
	}
	return -1
}
