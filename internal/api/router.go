package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"fridge-planner/internal/api/handlers"
	"fridge-planner/internal/api/handlers/health"
	planHandler "fridge-planner/internal/api/handlers/plan"
	"fridge-planner/internal/api/middleware"
	"fridge-planner/internal/core/ai/cache"
	"fridge-planner/internal/core/ai/openrouter"
	"fridge-planner/internal/core/ai/service"
	planService "fridge-planner/internal/core/plan"
	"fridge-planner/internal/infrastructure/config"
	"fridge-planner/internal/infrastructure/store"
	"fridge-planner/internal/pkg/common"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	// リクエスト全体のタイムアウト
	timeoutDuration = 120 * time.Second
	// リクエストボディ上限 (10MB)
	maxBodySize = 10 << 20
)

// SetupRouter ルーターを構築してサービスを配線する
func SetupRouter(cfg *config.Config, cacheManager *cache.Manager, menuStore store.MenuStore) (*gin.Engine, *service.Service, error) {
	common.LogInfo("ルーターのセットアップ開始",
		zap.Bool("debug_mode", cfg.App.Debug),
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Env),
	)

	if !cfg.App.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// 基本ミドルウェア
	router.Use(middleware.Recovery())
	router.Use(middleware.Logger())
	router.Use(requestid.New())

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.Use(middleware.BodySizeLimit(maxBodySize))

	if cfg.RateLimit.Enabled {
		router.Use(middleware.RateLimit(cfg.RateLimit.Requests, cfg.RateLimit.Window))
	}
	router.Use(middleware.Deduplication(cfg))

	common.LogInfo("サービスを初期化",
		zap.Bool("cache_enabled", cfg.Cache.Enabled),
		zap.Int("queue_workers", cfg.Queue.Workers),
		zap.String("model", cfg.OpenRouter.Model),
		zap.Duration("timeout", timeoutDuration),
	)

	// AI プロバイダと周辺の初期化
	redisCache, err := cache.NewRedisCache(&cfg.Redis)
	if err != nil {
		common.LogWarn("Redis キャッシュの初期化に失敗、無効化して続行", zap.Error(err))
		redisCache = nil
	}

	provider := openrouter.NewClient(cfg)
	aiService, err := service.NewService(cfg, provider, cacheManager, redisCache)
	if err != nil {
		common.LogError("AI サービスの初期化に失敗", zap.Error(err))
		return nil, nil, fmt.Errorf("failed to initialize AI service: %w", err)
	}

	// 献立サービス群
	menuSvc := planService.NewMenuService(aiService)
	recipeSvc := planService.NewRecipeService(aiService)
	reconcileSvc := planService.NewReconcileService(aiService)
	visionSvc := planService.NewVisionService(aiService)

	// タイムアウトと設定の注入
	router.Use(func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), timeoutDuration)
		defer cancel()

		c.Request = c.Request.WithContext(ctx)

		c.Set("config", cfg)
		c.Set("ai_service", aiService)

		c.Next()

		if ctx.Err() == context.DeadlineExceeded {
			common.LogError("リクエストタイムアウト",
				zap.String("path", c.Request.URL.Path),
				zap.String("request_id", c.GetHeader("X-Request-ID")),
				zap.Duration("timeout", timeoutDuration),
			)
			c.JSON(http.StatusGatewayTimeout, gin.H{
				"error": "Request timeout",
				"code":  "REQUEST_TIMEOUT",
				"details": gin.H{
					"timeout": timeoutDuration.String(),
				},
			})
			c.Abort()
			return
		}
	})

	// ヘルスチェック
	router.GET("/health", health.HealthCheck)
	router.GET("/ready", health.ReadinessCheck)
	router.GET("/live", health.LivenessCheck)

	// API ルート
	api := router.Group("/api/v1")
	{
		menuHandler := planHandler.NewMenuHandler(menuSvc)
		recipeHandler := planHandler.NewRecipeHandler(recipeSvc)
		reconcileHandler := planHandler.NewReconcileHandler(reconcileSvc)
		visionHandler := planHandler.NewVisionHandler(visionSvc)
		menuStoreHandler := planHandler.NewMenuStoreHandler(menuStore)
		aiHandler := handlers.NewAIHandler(aiService)

		fridgeGroup := api.Group("/fridge")
		{
			// 冷蔵庫写真から食材リストを抽出
			fridgeGroup.POST("/vision", visionHandler.HandleVision)
		}

		planGroup := api.Group("/plan")
		{
			// 複数日の献立生成
			planGroup.POST("/menu", menuHandler.HandleGenerateMenu)

			// 1 食分の再生成
			planGroup.POST("/meal/regenerate", menuHandler.HandleRegenerateMeal)

			// レシピ生成
			planGroup.POST("/recipe", recipeHandler.HandleGenerateRecipe)

			// 買い出し・消費リスト再計算
			planGroup.POST("/recalculate", reconcileHandler.HandleRecalculate)

			// 保存済み献立
			planGroup.POST("/menus", menuStoreHandler.HandleSaveMenu)
			planGroup.GET("/menus", menuStoreHandler.HandleListMenus)
			planGroup.GET("/menus/:id", menuStoreHandler.HandleGetMenu)
			planGroup.DELETE("/menus/:id", menuStoreHandler.HandleDeleteMenu)
		}

		debugGroup := api.Group("/debug")
		{
			// AI 素通し（動作確認用）
			debugGroup.POST("/ai", aiHandler.HandlePrompt)
		}
	}

	common.LogInfo("ルーターのセットアップ完了",
		zap.Bool("debug_mode", cfg.App.Debug),
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Env),
		zap.Bool("rate_limit_enabled", cfg.RateLimit.Enabled),
		zap.Duration("timeout", timeoutDuration),
		zap.Int64("max_body_size", maxBodySize),
	)

	return router, aiService, nil
}
