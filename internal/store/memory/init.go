package memory

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"usercenter/internal/code"
	"usercenter/internal/model"
	"usercenter/internal/store"
	"usercenter/pkg/clock"
	"usercenter/pkg/logger"
	"usercenter/pkg/prometheus"
	"usercenter/pkg/timex"
)

type option struct {
	clock clock.PassiveClock
	users []*model.User
}

type Option func(*option)

// WithClock sets the clock stamping createTime
func WithClock(c clock.PassiveClock) Option {
	return func(o *option) {
		o.clock = c
	}
}

// WithUsers seeds the canonical set, order is kept as given
func WithUsers(users []*model.User) Option {
	return func(o *option) {
		o.users = users
	}
}

// New builds the in memory store, the seed is validated before it is accepted
func New(ctx context.Context, opts ...Option) (store.Factory, error) {
	o := &option{clock: clock.RealClock{}}
	for _, opt := range opts {
		opt(o)
	}
	if err := checkSeed(o.users); err != nil {
		return nil, errors.WithStack(code.ErrInvalidSeed.WithResult(err.Error()))
	}
	users := make([]*model.User, len(o.users))
	for i, u := range o.users {
		clone := *u
		users[i] = &clone
	}
	prometheus.UserGauge.Set(float64(len(users)))
	logger.From(ctx).Info("user store seeded", zap.Int("count", len(users)))
	return &dataStore{users: &userStore{clock: o.clock, users: users}}, nil
}

type dataStore struct {
	users *userStore
}

func (d *dataStore) Users() store.UserStore {
	return d.users
}

// checkSeed holds seeded records to the rules of the user form, plus unique
// ids and (userName, phone) identities
func checkSeed(users []*model.User) error {
	v, err := model.NewValidator()
	if err != nil {
		return err
	}
	var errs error
	ids := make(map[int]struct{}, len(users))
	for i, u := range users {
		if u == nil {
			errs = multierr.Append(errs, fmt.Errorf("record %d is null", i))
			continue
		}
		if u.ID <= 0 {
			errs = multierr.Append(errs, fmt.Errorf("record %d has invalid id %d", i, u.ID))
		}
		if _, ok := ids[u.ID]; ok {
			errs = multierr.Append(errs, fmt.Errorf("record %d duplicates id %d", i, u.ID))
		}
		ids[u.ID] = struct{}{}
		if _, err = timex.Parse(u.CreateTime); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("record %d has invalid createTime %q", i, u.CreateTime))
		}
		for _, fieldErr := range multierr.Errors(v.ValidateStruct(u)) {
			errs = multierr.Append(errs, fmt.Errorf("record %d: %w", i, fieldErr))
		}
		for j, other := range users[:i] {
			if other != nil && u.SameIdentity(other) {
				errs = multierr.Append(errs, fmt.Errorf("record %d duplicates the identity of record %d", i, j))
				break
			}
		}
	}
	return errs
}
