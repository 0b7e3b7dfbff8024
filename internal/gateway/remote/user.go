package remote

import (
	"context"

	"go.uber.org/zap"

	"usercenter/internal/model"
	"usercenter/pkg/client"
	"usercenter/pkg/logger"
)

type UserSrv interface {
	// List fetches the whole user collection, used once to seed the canonical set
	List(ctx context.Context) ([]*model.User, error)
}

type UserClient struct {
	*client.Client
}

func (u UserClient) List(ctx context.Context) ([]*model.User, error) {
	var users []*model.User
	if err := u.Get(ctx, "", nil, &users); err != nil {
		logger.From(ctx).Error("fetch seed users failed", zap.Error(err))
		return nil, err
	}
	return users, nil
}
