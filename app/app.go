// Package app wires configuration, storage and services into the HTTP router.
package app

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"hardware-store/config"
	"hardware-store/libs"
	"hardware-store/repositories"
	"hardware-store/routes"
	"hardware-store/services"
)

type App struct {
	Router *gin.Engine

	pool  *pgxpool.Pool
	sqlDB *sql.DB
	redis *redis.Client
	mail  *libs.AsyncMailer
}

type stores struct {
	products repositories.ProductRepository
	users    repositories.UserRepository
	orders   repositories.OrderRepository
	sellers  repositories.SellerApplicationRepository
	config   repositories.ConfigRepository
}

// New builds the application. Without database settings every repository
// runs in memory, seeded with the default catalog.
func New(ctx context.Context, cfg *config.Config, router *gin.Engine) (*App, error) {
	a := &App{Router: router}

	st, err := a.openStores(ctx, cfg)
	if err != nil {
		a.Close()
		return nil, err
	}

	a.redis = config.ConnectRedis(ctx, cfg)

	kv, err := cartStorage(cfg, a.redis)
	if err != nil {
		a.Close()
		return nil, err
	}

	store := services.NewConfigService(st.config, st.config)
	store.LoadConfig(ctx)

	auth := services.NewAuthService(st.users, cfg.JWTSecret, cfg.JWTExpiry, cfg.DevAuthBypass)
	if err := auth.SeedUsers(ctx); err != nil {
		a.Close()
		return nil, fmt.Errorf("seed users: %w", err)
	}
	if cfg.DevAuthBypass {
		log.Println("Warning: DEV_AUTH_BYPASS is enabled, every login signs in as admin")
	}

	a.mail = libs.NewAsyncMailer(newMailer(cfg))
	products := services.NewProductService(st.products, a.redis)

	routes.SetupRoutes(router, routes.Dependencies{
		Config:   cfg,
		Auth:     auth,
		Carts:    services.NewCartService(kv),
		Store:    store,
		Popups:   services.NewPopupService(kv),
		Products: products,
		Checkout: services.NewCheckoutService(
			libs.NewMercadoPagoClient(cfg.MercadoPagoToken),
			st.orders, st.products, a.mail, store, cfg.AppURL,
		),
		Sellers:  services.NewSellerService(st.sellers, a.mail, store, cfg.AdminEmail),
		Stats:    services.NewStatsService(st.products, st.users, st.orders),
		Uploader: newUploader(cfg),
	})

	return a, nil
}

func (a *App) openStores(ctx context.Context, cfg *config.Config) (*stores, error) {
	if !cfg.HasDatabase() {
		log.Println("No database configured, using in-memory storage")
		return &stores{
			products: repositories.NewMemoryProductRepository(repositories.SeedProducts(), repositories.SeedCategories()),
			users:    repositories.NewMemoryUserRepository(),
			orders:   repositories.NewMemoryOrderRepository(),
			sellers:  repositories.NewMemorySellerApplicationRepository(),
			config:   repositories.NewFileConfigRepository(cfg.StoreConfigFile),
		}, nil
	}

	dsn := cfg.DSN()

	sqlDB, err := config.OpenSQL(dsn)
	if err != nil {
		return nil, err
	}
	a.sqlDB = sqlDB
	if err := config.RunMigrations(sqlDB, cfg.MigrationsDir); err != nil {
		return nil, err
	}

	pool, err := config.ConnectDB(ctx, dsn)
	if err != nil {
		return nil, err
	}
	a.pool = pool

	return &stores{
		products: repositories.NewPostgresProductRepository(pool),
		users:    repositories.NewPostgresUserRepository(pool),
		orders:   repositories.NewPostgresOrderRepository(pool),
		sellers:  repositories.NewSQLSellerApplicationRepository(sqlDB),
		config:   repositories.NewPostgresConfigRepository(pool),
	}, nil
}

func cartStorage(cfg *config.Config, client *redis.Client) (repositories.KVStore, error) {
	switch cfg.CartStorage {
	case "redis":
		if client != nil {
			return repositories.NewRedisKVStore(client, "storefront:"), nil
		}
		log.Println("CART_STORAGE=redis but Redis is unavailable, using memory")
	case "file":
		store, err := repositories.NewFileKVStore(cfg.CartStorageDir)
		if err != nil {
			return nil, fmt.Errorf("cart storage: %w", err)
		}
		return store, nil
	}
	return repositories.NewMemoryKVStore(), nil
}

func newMailer(cfg *config.Config) libs.Mailer {
	mailer, err := libs.NewEmailService(cfg)
	if err != nil {
		log.Printf("Email disabled: %v", err)
		return libs.LogMailer{}
	}
	return mailer
}

func newUploader(cfg *config.Config) libs.ImageUploader {
	uploader, err := libs.NewCloudinaryUploader(cfg)
	if err == nil {
		return uploader
	}

	log.Printf("[Cloudinary] %v, storing images in %s", err, cfg.UploadDir)
	if err := os.MkdirAll(cfg.UploadDir, os.ModePerm); err != nil {
		log.Printf("Failed to create upload directory: %v", err)
	}
	return libs.NewLocalUploader(cfg.UploadDir, "/uploads", cfg.MaxUploadSize)
}

func (a *App) Close() {
	if a.mail != nil {
		a.mail.Wait()
	}
	if a.redis != nil {
		a.redis.Close()
	}
	if a.pool != nil {
		a.pool.Close()
	}
	if a.sqlDB != nil {
		a.sqlDB.Close()
	}
}
