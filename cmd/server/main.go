package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"user-center/config"
	"user-center/internal/handler"
	"user-center/internal/model"
	"user-center/internal/repository"
	"user-center/internal/service"
	dbPkg "user-center/pkg/db"
	"user-center/pkg/jwt"
	"user-center/pkg/logger"
	"user-center/pkg/mailer"
	redisPkg "user-center/pkg/redis"
	"user-center/pkg/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	// 1. 加载配置
	cfg := config.LoadConfig()

	// 2. 初始化日志系统
	log := logger.InitLogger(cfg.Log)
	defer log.Sync()

	log.Info("=== 用户中心启动 ===")
	log.Info("服务器配置信息",
		zap.String("port", cfg.Server.Port),
		zap.String("database_host", cfg.Database.Host),
		zap.Int("database_port", cfg.Database.Port),
		zap.String("database_name", cfg.Database.Database),
		zap.Duration("jwt_expire_time", cfg.JWT.ExpireTime),
		zap.String("auth0_domain", cfg.Auth0.Domain),
		zap.String("log_level", cfg.Log.Level),
	)

	// 2.1 身份提供方配置缺失属于部署错误，直接启动失败
	if cfg.Auth0.Domain == "" || cfg.Auth0.ClientID == "" {
		log.Fatal("Auth0配置缺失：AUTH0_DOMAIN 和 AUTH0_CLIENT_ID 必须设置")
	}

	// 3. 初始化数据库连接
	db, err := dbPkg.InitDB(cfg.Database)
	if err != nil {
		log.Fatal("数据库连接失败", zap.Error(err))
	}
	defer func() {
		if err := dbPkg.CloseDB(); err != nil {
			log.Error("关闭数据库连接失败", zap.Error(err))
		}
	}()
	log.Info("数据库连接成功")

	// 3.1 初始化Redis连接（登出令牌黑名单）
	if err := redisPkg.InitRedis(cfg.Redis); err != nil {
		log.Fatal("Redis连接失败", zap.Error(err))
	}
	defer func() {
		if err := redisPkg.Close(); err != nil {
			log.Error("关闭Redis连接失败", zap.Error(err))
		}
	}()
	log.Info("Redis连接成功")

	// 3.2 自动迁移表结构
	if err := dbPkg.AutoMigrate(&model.User{}, &model.Item{}, &model.UserFavoriteItem{}); err != nil {
		log.Fatal("自动迁移失败", zap.Error(err))
	}
	log.Info("自动迁移完成")

	// 3.3 初始化业务服务
	jwtSvc := jwt.NewJWTService(cfg.JWT)
	mailSvc := mailer.NewSMTPMailer(cfg.Mail)
	userRepo := repository.NewUserRepository(db)
	itemRepo := repository.NewItemRepository(db)
	favRepo := repository.NewFavoriteRepository(db)
	userSvc := service.NewUserService(userRepo, jwtSvc, mailSvc, repository.IsDuplicateEntry)
	authSvc := service.NewAuthService(cfg.Auth0, redisPkg.BlacklistToken)
	itemSvc := service.NewItemService(itemRepo, repository.IsNotFound)
	favSvc := service.NewFavoriteService(favRepo, itemRepo, repository.IsDuplicateEntry, repository.IsNotFound)
	userHandler := handler.NewUserHandler(userSvc)
	authHandler := handler.NewAuthHandler(authSvc, jwtSvc)
	itemHandler := handler.NewItemHandler(itemSvc, favSvc, userSvc)
	dashboardHandler := handler.NewDashboardHandler(userSvc, favSvc)

	// 4. 设置Gin模式
	if os.Getenv("GIN_MODE") == "" {
		gin.SetMode(gin.ReleaseMode)
	}

	// 5. 创建Gin路由
	router := gin.New()

	// 使用中间件
	router.Use(logger.LoggerMiddleware())      // 自定义日志中间件
	router.Use(logger.ErrorLoggerMiddleware()) // 错误日志中间件

	// 6. 设置基础路由
	setupBasicRoutes(router)

	// 6.1 登出：注销会话并302重定向到身份提供方
	router.GET("/logout", authHandler.Logout)

	// 6.2 绑定业务路由
	v1 := router.Group("/api/v1")
	{
		users := v1.Group("/users")
		{
			// 公开接口（无需认证）
			users.POST("/register", userHandler.Register)
			users.POST("/login", userHandler.Login)

			// 需要认证的接口
			authUsers := users.Group("")
			authUsers.Use(jwtSvc.AuthMiddleware(redisPkg.IsTokenBlacklisted))
			{
				authUsers.GET("/profile", userHandler.GetProfile)
			}
		}

		// 工作台（需要认证）
		dashboard := v1.Group("/dashboard")
		dashboard.Use(jwtSvc.AuthMiddleware(redisPkg.IsTokenBlacklisted))
		{
			dashboard.GET("", dashboardHandler.Dashboard)
		}

		// 商品路由
		items := v1.Group("/items")
		{
			// 公开接口
			items.GET("", itemHandler.List)

			// 收藏接口（需要认证，注册在具体路径之前避免与:item_id冲突）
			authItems := items.Group("")
			authItems.Use(jwtSvc.AuthMiddleware(redisPkg.IsTokenBlacklisted))
			{
				authItems.POST("", itemHandler.Create)                         // 录入商品（仅限staff）
				authItems.GET("/favorites", itemHandler.ListFavorites)         // 收藏列表
				authItems.POST("/favorite", itemHandler.Favorite)              // 收藏
				authItems.DELETE("/favorite/:item_id", itemHandler.Unfavorite) // 取消收藏
			}

			items.GET("/:item_id", itemHandler.Detail)
		}
	}

	// 7. 创建HTTP服务器
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// 8. 启动HTTP服务器
	go func() {
		log.Info("HTTP服务器启动", zap.String("port", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("HTTP服务器启动失败", zap.Error(err))
		}
	}()

	// 9. 优雅关闭
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("正在关闭服务器...")

	// 设置关闭超时
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// 关闭HTTP服务器
	if err := server.Shutdown(ctx); err != nil {
		log.Error("HTTP服务器关闭失败", zap.Error(err))
	}

	log.Info("服务器已安全关闭")
}

// setupBasicRoutes 设置基础路由
func setupBasicRoutes(router *gin.Engine) {
	// 健康检查
	// 完整url为：http://localhost:8080/health
	router.GET("/health", func(c *gin.Context) {
		status := "ok"
		if err := dbPkg.HealthCheck(); err != nil {
			status = "db-down"
		}
		if err := redisPkg.HealthCheck(); err != nil {
			status = "redis-down"
		}
		response.Success(c, gin.H{
			"status":  status,
			"message": "用户中心运行状态",
			"time":    time.Now().Format(time.RFC3339),
		})
	})

	// 根路径
	// 完整url为：http://localhost:8080/
	router.GET("/", func(c *gin.Context) {
		response.Success(c, gin.H{
			"message": "欢迎使用用户中心",
			"version": "1.0.0",
		})
	})
}
