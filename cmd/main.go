package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	glog "github.com/cloudwego/hertz/pkg/common/hlog"
	hertzadapter "github.com/hertz-contrib/logger/zerolog"
	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"
	"github.com/spf13/pflag"

	"resume-match-go/internal/api/handler"
	"resume-match-go/internal/api/router"
	"resume-match-go/internal/config"
	appCoreLogger "resume-match-go/internal/logger"
	"resume-match-go/internal/parser"
	"resume-match-go/internal/scorer"
	"resume-match-go/internal/storage"
	"resume-match-go/internal/types"
)

var (
	version     = "1.0.0"           //nolint:gochecknoglobals
	serviceName = "resume-match-go" //nolint:gochecknoglobals
)

// @title Resume Match API
// @version 1.0
// @description 简历与岗位描述匹配打分服务的API文档
// @BasePath /api/v1
func main() {
	initBootstrapLogger()

	var configPath string
	pflag.StringVarP(&configPath, "config", "c", "internal/config/config.yaml", "Path to config file")
	pflag.Parse()

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		glog.Fatalf("加载配置失败: %v", err)
	}
	glog.Info("配置加载成功")

	// 配置就绪后重建正式日志系统（级别、格式、文件输出均由配置决定）
	appCoreLogger.Init(appCoreLogger.Config{
		Level:        cfg.Logger.Level,
		Format:       cfg.Logger.Format,
		TimeFormat:   cfg.Logger.TimeFormat,
		File:         cfg.Logger.File,
		ReportCaller: cfg.Logger.ReportCaller,
	})
	zlog.Logger = appCoreLogger.Logger
	glog.SetLogger(hertzadapter.From(appCoreLogger.Logger))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	storageManager, err := storage.NewStorage(ctx, cfg)
	if err != nil {
		glog.Fatalf("初始化存储失败: %v", err)
	}
	defer storageManager.Close()
	glog.Info("存储服务初始化成功")

	pdfExtractor := parser.NewPDFTextExtractor(
		parser.WithPDFLogger(appCoreLogger.Logger.With().Str("component", "pdf_extractor").Logger()),
	)
	glog.Info("PDF文本提取器初始化成功")

	engine := scorer.NewEngine(scorer.Config{
		Policy:      types.Policy(cfg.Scoring.Policy),
		MaxKeywords: cfg.Scoring.MaxKeywords,
		MaxFeatures: cfg.Scoring.MaxFeatures,
	}, scorer.WithLogger(appCoreLogger.Logger.With().Str("component", "scoring_engine").Logger()))
	glog.Infof("打分引擎初始化成功，策略: %s", engine.Policy())

	scoreHandler := handler.NewScoreHandler(cfg, storageManager, pdfExtractor, engine)
	glog.Info("ScoreHandler初始化成功")

	h := server.New(
		server.WithHostPorts(cfg.Server.Address),
		server.WithHandleMethodNotAllowed(true),
	)
	h.Use(func(c context.Context, ctx *app.RequestContext) {
		glog.CtxInfof(c, "Request: %s %s", string(ctx.Method()), string(ctx.Path()))
		ctx.Next(c)
		glog.CtxInfof(c, "Response: status %d", ctx.Response.StatusCode())
	})

	router.RegisterRoutes(h, scoreHandler)
	glog.Info("HTTP路由注册成功")

	glog.Infof("%s v%s HTTP服务器启动中，监听地址: %s", serviceName, version, cfg.Server.Address)

	go func() {
		if err := h.Run(); err != nil {
			glog.Fatalf("启动HTTP服务器失败: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	glog.Info("接收到终止信号，正在优雅退出...")

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()
	if err := h.Shutdown(shutdownCtx); err != nil {
		glog.Fatalf("服务器关闭失败: %v", err)
	}
	glog.Info("优雅退出完成")
}

// initBootstrapLogger 初始化配置加载前的临时日志输出，
// 保证配置失败的错误信息可读。正式日志系统在配置就绪后由 logger.Init 重建。
func initBootstrapLogger() {
	consoleWriter := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: "15:04:05",
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	zerolog.TimeFieldFormat = "15:04:05"

	bootLogger := zerolog.New(consoleWriter).With().Timestamp().Logger()
	appCoreLogger.Logger = bootLogger
	zlog.Logger = bootLogger

	glog.SetLogger(hertzadapter.From(bootLogger))
}
