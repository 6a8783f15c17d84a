package app

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/you/vaultsvc/internal/config"
	httpx "github.com/you/vaultsvc/internal/http"
	"github.com/you/vaultsvc/internal/http/handlers"
	"github.com/you/vaultsvc/internal/http/middleware"
	"github.com/you/vaultsvc/internal/infrastructure/auth"
	"github.com/you/vaultsvc/internal/infrastructure/database"
	"github.com/you/vaultsvc/internal/infrastructure/notifications"
	"github.com/you/vaultsvc/internal/infrastructure/repositories"
	"github.com/you/vaultsvc/internal/infrastructure/storage"
	"github.com/you/vaultsvc/internal/services"
)

// Container holds all wired dependencies
type Container struct {
	Router *gin.Engine
	Config *config.Config
}

// NewContainer builds the dependency graph from config outward
func NewContainer(ctx context.Context, cfg *config.Config) (*Container, error) {
	db, err := database.Open(cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("database: %w", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		return nil, fmt.Errorf("database: %w", err)
	}

	redisClient := database.NewRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err := redisClient.Ping(ctx); err != nil {
		return nil, fmt.Errorf("redis: %w", err)
	}

	blobStore, err := storage.NewMinioService(ctx, storage.Options{
		Endpoint:   cfg.StorageEndpoint,
		AccessKey:  cfg.StorageAccessKey,
		SecretKey:  cfg.StorageSecretKey,
		UseSSL:     cfg.StorageUseSSL,
		Bucket:     cfg.StorageBucket,
		PublicBase: cfg.StoragePublicBase,
	})
	if err != nil {
		return nil, fmt.Errorf("object storage: %w", err)
	}

	userRepo := repositories.NewUserRepository(db)
	otpRepo := repositories.NewOTPRepository(redisClient.Client)
	accountRepo := repositories.NewAccountRepository(db)
	itemRepo := repositories.NewItemRepository(db)

	passwordSvc := auth.NewPasswordService()
	tokenSvc := auth.NewJWTService(cfg.JWTSecret, cfg.JWTIssuer, cfg.AccessTTL)
	mailer := notifications.NewSMTPService(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword, cfg.SMTPFrom, cfg.SMTPSenderName)

	otpSvc := services.NewOTPService(otpRepo, mailer, services.OTPConfig{TTL: cfg.OTP_TTL})
	authSvc := services.NewAuthService(userRepo, otpRepo, passwordSvc, tokenSvc, otpSvc, cfg.DefaultProfileImage)
	imageSvc := services.NewImageService(blobStore)
	userSvc := services.NewUserService(userRepo, imageSvc, cfg.DefaultProfileImage)
	accountSvc := services.NewAccountService(accountRepo, imageSvc, cfg.DefaultAccountImage)
	itemSvc := services.NewItemService(itemRepo)

	authH := handlers.NewAuthHandlers(authSvc)
	userH := handlers.NewUserHandlers(userSvc, authSvc)
	accountH := handlers.NewAccountHandlers(accountSvc, cfg.DefaultAccountImage)
	itemH := handlers.NewItemHandlers(itemSvc)
	jwtmw := middleware.NewAuthMW(tokenSvc, userRepo)

	router := httpx.BuildRouter(authH, userH, accountH, itemH, jwtmw)

	return &Container{Router: router, Config: cfg}, nil
}
