package user

import (
	"context"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/pkg/errors"
	uuid "github.com/satori/go.uuid"
	"go.uber.org/zap"

	"usercenter/internal/code"
	"usercenter/internal/store"
	"usercenter/pkg/logger"
	"usercenter/pkg/prometheus"
)

const DefaultViewTTL = 30 * time.Minute

// ViewRegistry tracks the mounted console views. A view lives until it is
// unmounted or stays idle longer than its ttl.
type ViewRegistry interface {
	Mount(ctx context.Context) string
	Unmount(ctx context.Context, viewID string) error
	Users(ctx context.Context, viewID string) (UserSrv, error)
}

func NewViewRegistry(users store.UserStore, ttl time.Duration) ViewRegistry {
	if ttl <= 0 {
		ttl = DefaultViewTTL
	}
	views := cache.New(ttl, ttl/2)
	views.OnEvicted(func(string, interface{}) {
		prometheus.ViewGauge.Dec()
	})
	return &viewRegistry{users: users, views: views}
}

type viewRegistry struct {
	users store.UserStore
	views *cache.Cache
}

func (r *viewRegistry) Mount(ctx context.Context) string {
	id := uuid.NewV4().String()
	r.views.SetDefault(id, newUserSrv(r.users))
	prometheus.ViewGauge.Inc()
	logger.From(ctx).Debug("view mounted", zap.String("view_id", id))
	return id
}

func (r *viewRegistry) Unmount(ctx context.Context, viewID string) error {
	if _, found := r.views.Get(viewID); !found {
		return errors.WithStack(code.ErrViewNotFound)
	}
	r.views.Delete(viewID)
	logger.From(ctx).Debug("view unmounted", zap.String("view_id", viewID))
	return nil
}

// Users refreshes the idle timer of the view on every access, a view
// unmounted in between is not brought back
func (r *viewRegistry) Users(_ context.Context, viewID string) (UserSrv, error) {
	value, found := r.views.Get(viewID)
	if !found {
		return nil, errors.WithStack(code.ErrViewNotFound)
	}
	if err := r.views.Replace(viewID, value, cache.DefaultExpiration); err != nil {
		return nil, errors.WithStack(code.ErrViewNotFound)
	}
	return value.(*userSrv), nil
}
