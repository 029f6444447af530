package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"resume-match-go/internal/analyzer"
	"resume-match-go/internal/api/handler"
	"resume-match-go/internal/api/router"
	"resume-match-go/internal/config"
	"resume-match-go/internal/gemini"
	appLogger "resume-match-go/internal/logger"
	"resume-match-go/internal/tracing"
	"resume-match-go/internal/types"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	glog "github.com/cloudwego/hertz/pkg/common/hlog"
	hertzadapter "github.com/hertz-contrib/logger/zerolog"
	hertztracing "github.com/hertz-contrib/obs-opentelemetry/tracing"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

var (
	version     = "1.0.0"           //nolint:gochecknoglobals
	serviceName = "resume-match-go" //nolint:gochecknoglobals
)

// @title Resume Match API
// @version 1.0
// @description Resume vs. job description matching service.
// @BasePath /api
func main() {
	// .env 仅用于本地开发注入 GEMINI_API_KEY，缺失不算错误
	_ = godotenv.Load()

	var configPath string
	pflag.StringVarP(&configPath, "config", "c", "", "Path to config file")
	pflag.Parse()

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		glog.Fatalf("加载配置失败: %v", err)
	}

	// 初始化日志，并把hertz的hlog桥接到zerolog
	appLogger.Init(appLogger.Config{
		Level:        cfg.Logger.Level,
		Format:       cfg.Logger.Format,
		TimeFormat:   cfg.Logger.TimeFormat,
		ReportCaller: cfg.Logger.ReportCaller,
	})
	glog.SetLogger(hertzadapter.From(appLogger.Logger))
	glog.Infof("配置加载成功, 服务: %s, 版本: %s", serviceName, version)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// 链路追踪（可选）
	if cfg.Tracing.Enabled {
		shutdown, err := tracing.InitTracerProvider(ctx, cfg.Tracing.ServiceName, cfg.Tracing.Endpoint, cfg.Tracing.SampleRatio)
		if err != nil {
			glog.Fatalf("初始化链路追踪失败: %v", err)
		}
		defer func() {
			shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancelShutdown()
			if err := shutdown(shutdownCtx); err != nil {
				glog.Warnf("关闭链路追踪失败: %v", err)
			}
		}()
		glog.Info("链路追踪初始化成功")
	}

	// 规则分析器：始终可用的同步回退路径
	ruleAnalyzer := analyzer.NewResumeAnalyzer(
		analyzer.WithStopwordsFile(cfg.Analyzer.StopwordsPath),
	)
	glog.Info("规则分析器初始化成功")

	// Gemini分析器：未配置API key时禁用该路径，只走规则引擎
	var llmAnalyzer types.Analyzer
	if cfg.Gemini.APIKey != "" {
		geminiAnalyzer, err := gemini.New(ctx, cfg.Gemini)
		if err != nil {
			glog.Fatalf("初始化Gemini分析器失败: %v", err)
		}
		llmAnalyzer = geminiAnalyzer
		glog.Infof("Gemini分析器初始化成功, 模型: %s", cfg.Gemini.Model)
	} else {
		glog.Warn("未配置GEMINI_API_KEY，use_gemini请求将直接使用规则引擎")
	}

	analyzeHandler := handler.NewAnalyzeHandler(cfg, ruleAnalyzer, llmAnalyzer)
	glog.Info("分析请求处理器初始化成功")

	tracer, tracerCfg := hertztracing.NewServerTracer()
	h := server.New(
		server.WithHostPorts(cfg.Server.Address),
		server.WithHandleMethodNotAllowed(true),
		tracer,
	)
	h.Use(hertztracing.ServerMiddleware(tracerCfg))
	h.Use(func(c context.Context, ctx *app.RequestContext) {
		glog.CtxInfof(c, "Request: %s %s", string(ctx.Method()), string(ctx.Path()))
		ctx.Next(c)
		glog.CtxInfof(c, "Response: status %d", ctx.Response.StatusCode())
	})

	router.RegisterRoutes(h, analyzeHandler)
	glog.Info("HTTP路由注册成功")

	glog.Infof("HTTP 服务器启动中，监听地址: %s", cfg.Server.Address)
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
