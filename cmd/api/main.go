package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fridge-planner/internal/api"
	"fridge-planner/internal/core/ai/cache"
	"fridge-planner/internal/infrastructure/config"
	"fridge-planner/internal/infrastructure/store"
	"fridge-planner/internal/pkg/common"

	"go.uber.org/zap"
)

func main() {
	// 設定読み込み（.env は LoadConfig 内で読む）
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// logger 初期化（config 読み込み後）
	if err := common.InitLogger(cfg.LogLevel); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer common.Sync()

	common.LogInfo("アプリケーション起動",
		zap.String("version", cfg.App.Version),
		zap.String("env", cfg.App.Env),
		zap.String("openrouter_model", cfg.OpenRouter.Model),
	)

	// メモリキャッシュ初期化
	cacheManager := cache.NewManager(cfg)
	// キャッシュ有効なのに初期化に失敗した場合のみ Fatal
	if cfg.Cache.Enabled && cacheManager == nil {
		common.LogFatal("Failed to initialize cache manager")
	}
	defer cacheManager.Close()

	// 献立ストア初期化
	menuStore, err := store.NewBoltMenuStore(cfg.Store.Path)
	if err != nil {
		common.LogError("Failed to open menu store", zap.Error(err))
		os.Exit(1)
	}
	defer menuStore.Close()

	// ルーター構築
	router, aiService, err := api.SetupRouter(cfg, cacheManager, menuStore)
	if err != nil {
		common.LogError("Failed to setup router", zap.Error(err))
		os.Exit(1)
	}
	defer aiService.Close()

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		common.LogInfo("サーバー待ち受け開始",
			zap.Int("port", cfg.Server.Port),
			zap.Bool("debug", cfg.App.Debug),
		)

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			common.LogError("Failed to start server",
				zap.Error(err),
			)
			os.Exit(1)
		}
	}()

	// 終了シグナル待ち
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	common.LogInfo("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		common.LogError("Server forced to shutdown",
			zap.Error(err),
		)
		os.Exit(1)
	}

	common.LogInfo("Server exited")
}
