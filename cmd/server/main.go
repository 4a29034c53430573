package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/wfunc/rogue-chain/internal/api"
	"github.com/wfunc/rogue-chain/internal/config"
	"github.com/wfunc/rogue-chain/internal/database"
	apperrors "github.com/wfunc/rogue-chain/internal/errors"
	"github.com/wfunc/rogue-chain/internal/logger"
	"github.com/wfunc/rogue-chain/internal/service"
)

// 版本信息
var (
	Version   = "1.0.0"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	var (
		configPath  = flag.String("config", "", "配置文件路径")
		showVersion = flag.Bool("version", false, "显示版本信息")
	)

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	// 加载配置
	if err := config.Init(*configPath); err != nil {
		fmt.Printf("加载配置失败: %v\n", err)
		os.Exit(1)
	}

	cfg := config.Get()

	// 初始化日志系统
	if err := logger.Init(&cfg.Log); err != nil {
		fmt.Printf("初始化日志失败: %v\n", err)
		os.Exit(1)
	}

	if cfg.Server.Mode == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	if err := run(cfg); err != nil {
		logger.Fatal("服务器运行失败", zap.Error(err))
	}

	logger.Info("服务器已安全关闭")
}

// run 初始化组件并运行HTTP服务直到收到退出信号
func run(cfg *config.Config) error {
	// 初始化数据库
	if err := database.Init(&cfg.Database); err != nil {
		return apperrors.Wrap(err, apperrors.ErrDatabaseConnect, "初始化数据库连接失败")
	}
	defer database.Close()

	if cfg.Database.AutoMigrate {
		logger.Info("执行数据库自动迁移...")
		if err := database.AutoMigrate(); err != nil {
			return apperrors.Wrap(err, apperrors.ErrDatabaseConnect, "数据库迁移失败")
		}
	}

	// 组装服务与路由
	svcConfig := &service.Config{
		JWTSecret:          cfg.Security.JWT.Secret,
		AccessTokenExpiry:  durationHours(cfg.Security.JWT.ExpireHours),
		RefreshTokenExpiry: durationHours(cfg.Security.JWT.RefreshHours),
		Game:               &cfg.Game,
	}

	router := api.NewRouter(database.GetDB(), svcConfig, &cfg.WebSocket, logger.GetLogger())

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router.GetEngine(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// 监听配置变化
	config.Watch(func(newCfg *config.Config) {
		logger.Info("配置已重新加载")
	})

	errCh := make(chan error, 1)
	go func() {
		logger.Info("服务器启动成功",
			zap.String("version", Version),
			zap.String("address", addr),
			zap.String("mode", cfg.Server.Mode))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	// 等待退出信号
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	select {
	case err := <-errCh:
		return err
	case sig := <-sigCh:
		logger.Info("收到退出信号", zap.String("signal", sig.String()))
	}

	// 优雅关闭
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Warn("关闭超时，强制退出", zap.Error(err))
		return apperrors.Wrap(err, apperrors.ErrTimeout, "关闭超时")
	}

	if err := logger.Sync(); err != nil {
		fmt.Printf("同步日志失败: %v\n", err)
	}

	return nil
}

// durationHours 小时数转时长
func durationHours(hours int) time.Duration {
	return time.Duration(hours) * time.Hour
}

// printVersion 打印版本信息
func printVersion() {
	fmt.Println("rogue-chain 游戏状态服务器")
	fmt.Printf("版本: %s\n", Version)
	fmt.Printf("构建时间: %s\n", BuildTime)
	fmt.Printf("Git提交: %s\n", GitCommit)
	fmt.Printf("Go版本: %s\n", runtime.Version())
	fmt.Printf("操作系统: %s/%s\n", runtime.GOOS, runtime.GOARCH)
}
