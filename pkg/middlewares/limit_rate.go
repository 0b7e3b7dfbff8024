package middlewares

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"

	"usercenter/pkg/code"
	"usercenter/pkg/limit"
	"usercenter/pkg/resp"
)

// bucketIdle 客户端空闲超过该时间后其令牌桶被回收
const bucketIdle = time.Minute

// RateLimit limit request rate per client ip, rejected requests get 429
func RateLimit(rlf func(key string) limit.RateLimiter) gin.HandlerFunc {
	buckets := cache.New(bucketIdle, 2*bucketIdle)
	return func(c *gin.Context) {
		source := c.ClientIP()
		var bucket limit.RateLimiter
		if rlSource, exists := buckets.Get(source); exists {
			bucket = rlSource.(limit.RateLimiter)
		} else {
			bucket = rlf(source)
		}
		// Set even when the source exists so the expiry follows its activity
		buckets.SetDefault(source, bucket)
		if !bucket.TryAccept() {
			resp.Error(c, code.ErrTooManyRequests)
			return
		}
		c.Next()
	}
}
