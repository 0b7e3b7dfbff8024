package main

import (
	"context"
	"flag"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
	"go.uber.org/automaxprocs/maxprocs"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"usercenter/config"
	"usercenter/internal/code"
	"usercenter/internal/gateway"
	"usercenter/internal/model"
	"usercenter/internal/request"
	"usercenter/internal/router"
	"usercenter/internal/service"
	"usercenter/internal/store/memory"
	"usercenter/pkg/clock"
	"usercenter/pkg/limit"
	"usercenter/pkg/logger"
	"usercenter/pkg/tracing"
)

var configFile = flag.String("f", "./config/usercenter.yaml", "the config file")

func main() {
	flag.Parse()
	// 初始化配置，配置文件修改后日志级别随之生效
	if err := config.LoadConfig(*configFile, reloadLogLevel); err != nil {
		log.Fatal(err)
	}
	if err := code.Loading(); err != nil {
		log.Fatal(err)
	}
	if mode := strings.ToLower(viper.GetString("mode")); mode != "" {
		gin.SetMode(mode)
	}
	if err := run(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal(err)
	}
}

func run() error {
	l := logger.New(
		logger.WithServerName(viper.GetString("service.name")),
		logger.WithLevel(viper.GetString("log.level")),
		logger.WithFormat(viper.GetString("log.format")),
		logger.WithWriter(logger.SetWriter(viper.GetBool("log.console"), viper.GetString("log.path"))),
	)
	defer zap.ReplaceGlobals(l)()
	defer logger.Close()
	defer l.Sync()
	ctx := logger.With(context.Background(), l)

	if _, err := maxprocs.Set(maxprocs.Logger(logger.From(ctx).Sugar().Infof)); err != nil {
		logger.From(ctx).Warn("set GOMAXPROCS failed", zap.Error(err))
	}
	shutdownTracing := tracing.New(logger.From(ctx), 1)

	users, err := seed(ctx)
	if err != nil {
		return err
	}
	// 初始化用户数据
	dataStore, err := memory.New(ctx, memory.WithUsers(users))
	if err != nil {
		return err
	}
	if err = request.RegisterValidation(); err != nil {
		return err
	}
	qps, burst := viper.GetFloat64("limit.rate"), viper.GetInt("limit.burst")
	srv := &http.Server{
		Addr: viper.GetString("service.addr"),
		Handler: router.New(service.NewService(dataStore, viper.GetDuration("view.ttl")),
			func(string) limit.RateLimiter {
				return limit.NewStdRateLimiter(qps, burst, clock.RealClock{})
			}, viper.GetStringSlice("cors.origins")...),
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gCtx := errgroup.WithContext(ctx)
	// 服务启动流程
	g.Go(func() error {
		return startAction(gCtx, srv)
	})
	// 服务关闭流程
	g.Go(func() error {
		return shutdownAction(gCtx, srv)
	})

	err = g.Wait()
	err = multierr.Append(err, shutdownTracing(context.Background()))
	if err != nil && !errors.Is(err, context.Canceled) && !errors.Is(err, http.ErrServerClosed) {
		logger.From(ctx).Error("server run with error", zap.Error(err))
		return err
	}
	return nil
}

func reloadLogLevel() {
	if err := logger.SetLevel(viper.GetString("log.level")); err != nil {
		zap.L().Warn("ignore invalid log level", zap.Error(err))
	}
}

// seed 配置了seed.url时从远端拉取初始用户，否则使用内置数据
func seed(ctx context.Context) ([]*model.User, error) {
	url := viper.GetString("seed.url")
	if url == "" {
		return memory.Fixture()
	}
	logger.From(ctx).Info("seed users from remote", zap.String("url", url))
	return gateway.NewBaseClient(url, viper.GetDuration("seed.timeout")).Users().List(ctx)
}

func startAction(ctx context.Context, srv *http.Server) error {
	logger.From(ctx).Sugar().Infof("%s run on %s, listen on %s",
		viper.GetString("service.name"), gin.Mode(), srv.Addr)
	return srv.ListenAndServe()
}

const DefaultStopTime = 15 * time.Second

func shutdownAction(ctx context.Context, srv *http.Server) error {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	var err error
	select {
	case <-ctx.Done():
		err = ctx.Err()
	case <-quit:
	}
	newCtx, cancel := context.WithTimeout(context.Background(), DefaultStopTime)
	defer cancel()
	logger.From(ctx).Info("shutting down server...")
	return multierr.Append(err, srv.Shutdown(newCtx))
}
