package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-contrib/gzip"
	_ "github.com/joho/godotenv/autoload"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/sjperalta/frequencia-api/docs" // Swagger docs
	"github.com/sjperalta/frequencia-api/internal/config"
	"github.com/sjperalta/frequencia-api/internal/database"
	"github.com/sjperalta/frequencia-api/internal/handlers"
	"github.com/sjperalta/frequencia-api/internal/jobs"
	"github.com/sjperalta/frequencia-api/internal/middleware"
	"github.com/sjperalta/frequencia-api/internal/models"
	"github.com/sjperalta/frequencia-api/internal/repository"
	"github.com/sjperalta/frequencia-api/internal/services"
	"github.com/sjperalta/frequencia-api/internal/storage"
	"github.com/sjperalta/frequencia-api/pkg/logger"

	"github.com/gin-gonic/gin"
)

// @title Frequência API
// @version 1.0
// @description Time-clock and attendance sheet back office
// @BasePath /api/v1
// @schemes http https
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger.Setup(cfg.Environment)

	if cfg.SentryDSN != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:              cfg.SentryDSN,
			TracesSampleRate: 0.2,
			Environment:      cfg.Environment,
		}); err != nil {
			logger.Error("Sentry initialization failed", "error", err)
		} else {
			logger.Info("Sentry initialized")
		}
	}

	if !cfg.EmailEnabled() {
		logger.Warn("Resend email disabled: RESEND_API_KEY or FROM_EMAIL not set")
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	logger.Info("Connected to database")

	if cfg.AutoMigrate {
		if err := database.Migrate(db); err != nil {
			logger.Error("Failed to migrate database", "error", err)
			os.Exit(1)
		}
		logger.Info("Database schema migrated")
	}

	store, err := storage.NewLocalStorage(cfg.StoragePath)
	if err != nil {
		logger.Error("Failed to initialize storage", "error", err)
		os.Exit(1)
	}

	repos := repository.NewRepositories(db)

	worker := jobs.NewWorker(cfg.WorkerCount)
	logger.Info("Started background worker", "goroutines", cfg.WorkerCount)

	svcs := services.NewServices(repos, worker, store, cfg)
	scheduleJobs(worker, svcs)

	h := handlers.NewHandlers(svcs)
	router := setupRouter(h, svcs, cfg)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("Server starting", "port", cfg.Port, "timezone", cfg.Timezone)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("Failed to start server", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", "error", err)
	}

	if err := worker.Shutdown(ctx); err != nil {
		logger.Error("Background worker did not drain", "error", err)
	} else {
		logger.Info("Background worker stopped")
	}

	if cfg.SentryDSN != "" {
		sentry.Flush(5 * time.Second)
	}

	logger.Info("Server exited gracefully")
}

func setupRouter(h *handlers.Handlers, svcs *services.Services, cfg *config.Config) *gin.Engine {
	router := gin.New()

	if cfg.SentryDSN != "" {
		router.Use(sentrygin.New(sentrygin.Options{Repanic: true}))
	}
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.CORS(cfg.AllowedOrigins))
	router.Use(gzip.Gzip(gzip.DefaultCompression))

	router.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusMovedPermanently, "/swagger/index.html")
	})
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	requireRole := func(min models.Role) gin.HandlerFunc {
		return middleware.RequireRole(min, svcs.Audit)
	}

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", h.Health.Index)

		auth := v1.Group("/auth")
		{
			auth.POST("/login", h.Auth.Login)
			auth.POST("/refresh", h.Auth.Refresh)
			auth.POST("/logout", middleware.Auth(cfg.JWTSecret), h.Auth.Logout)
		}

		// Kiosk punch, authenticated by matricula and senha_ponto
		punchLimiter := middleware.NewRateLimiter(cfg.PunchRatePerSecond, cfg.PunchRateBurst)
		v1.POST("/ponto/registrar", middleware.IPRateLimit(punchLimiter), h.Ponto.Registrar)

		protected := v1.Group("")
		protected.Use(middleware.Auth(cfg.JWTSecret))

		// Any back-office role
		user := protected.Group("", requireRole(models.RoleUser))
		{
			user.GET("/dashboard", h.Dashboard.Index)

			user.GET("/orgaos", h.Orgao.Index)
			user.GET("/orgaos/:orgao_id", h.Orgao.Show)
			user.GET("/lotacoes", h.Lotacao.Index)
			user.GET("/lotacoes/:lotacao_id", h.Lotacao.Show)
			user.GET("/colaboradores", h.Colaborador.Index)
			user.GET("/colaboradores/:colaborador_id", h.Colaborador.Show)

			user.POST("/frequencias", h.Frequencia.Generate)
			user.GET("/frequencias", h.Frequencia.Index)
			user.POST("/frequencias/:frequencia_id/folha_assinada", h.Frequencia.UploadSigned)
			user.GET("/frequencias/:frequencia_id/folha_assinada", h.Frequencia.DownloadSigned)
		}

		gestor := protected.Group("", requireRole(models.RoleGestor))
		{
			gestor.GET("/registros_ponto", h.Registro.Index)
			gestor.GET("/registros_ponto/resumo", h.Registro.Resumo)
			gestor.GET("/registros_ponto/export", h.Registro.Export)
		}

		admin := protected.Group("", requireRole(models.RoleAdmin))
		{
			admin.POST("/orgaos", h.Orgao.Create)
			admin.PUT("/orgaos/:orgao_id", h.Orgao.Update)
			admin.DELETE("/orgaos/:orgao_id", h.Orgao.Delete)

			admin.POST("/lotacoes", h.Lotacao.Create)
			admin.PUT("/lotacoes/:lotacao_id", h.Lotacao.Update)
			admin.DELETE("/lotacoes/:lotacao_id", h.Lotacao.Delete)

			admin.POST("/colaboradores", h.Colaborador.Create)
			admin.PUT("/colaboradores/:colaborador_id", h.Colaborador.Update)
			admin.PATCH("/colaboradores/:colaborador_id/ativo", h.Colaborador.SetAtivo)
			admin.PUT("/colaboradores/:colaborador_id/senha_ponto", h.Colaborador.SetSenhaPonto)
			admin.DELETE("/colaboradores/:colaborador_id", h.Colaborador.Delete)

			admin.POST("/registros_ponto", h.Registro.Create)
			admin.PUT("/registros_ponto/:registro_id", h.Registro.Update)
			admin.DELETE("/registros_ponto/:registro_id", h.Registro.Delete)
			admin.DELETE("/registros_ponto", h.Registro.DeleteDay)
		}

		superAdmin := protected.Group("", requireRole(models.RoleSuperAdmin))
		{
			superAdmin.GET("/users", h.User.Index)
			superAdmin.GET("/users/:user_id", h.User.Show)
			superAdmin.POST("/users", h.User.Manage)
			superAdmin.PUT("/users/:user_id/role", h.User.ChangeRole)
			superAdmin.DELETE("/users/:user_id", h.User.Delete)

			superAdmin.GET("/audits", h.Audit.Index)
			superAdmin.GET("/jobs/status", h.Job.Status)
		}
	}

	return router
}

func scheduleJobs(worker *jobs.Worker, svcs *services.Services) {
	worker.ScheduleEveryImmediate("dashboard:refresh", services.DashboardRefreshInterval, svcs.Dashboard.RefreshJob)
	worker.ScheduleEvery("refresh_tokens:purge", 24*time.Hour, svcs.Auth.PurgeExpiredTokens)

	logger.Info("Scheduled recurring jobs")
}
