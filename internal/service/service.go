package service

import (
	"time"

	"usercenter/internal/service/user"
	"usercenter/internal/store"
)

type Service interface {
	Views() user.ViewRegistry
}

func NewService(factory store.Factory, viewTTL time.Duration) Service {
	return &service{views: user.NewViewRegistry(factory.Users(), viewTTL)}
}

type service struct {
	views user.ViewRegistry
}

func (s *service) Views() user.ViewRegistry {
	return s.views
}
