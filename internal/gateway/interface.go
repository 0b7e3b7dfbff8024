package gateway

import (
	"time"

	"usercenter/internal/gateway/base"
	"usercenter/internal/gateway/remote"
	"usercenter/pkg/client"
	"usercenter/pkg/utils/v"
)

// IClient groups the backends usercenter calls
type IClient interface {
	Users() remote.UserSrv
}

// NewBaseClient talks to the backend at endpoint, every call bounded by timeout
func NewBaseClient(endpoint string, timeout time.Duration) IClient {
	return &baseClient{client.New(endpoint,
		client.WithTimeout(timeout),
		client.WithResponse(base.Parser{}),
		client.WithHeader(v.HeaderSource, v.ServiceName),
	)}
}

type baseClient struct {
	*client.Client
}

func (c baseClient) Users() remote.UserSrv {
	return remote.UserClient{Client: c.Client}
}
