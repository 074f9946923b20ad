package main

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/google/uuid"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/valyala/fasthttp/fasthttpadaptor"
	"golang.org/x/crypto/bcrypt"

	"printshop/docs"
	"printshop/internal/config"
	"printshop/internal/database"
	"printshop/internal/database/migration"
	handlers "printshop/internal/http/handler"
	"printshop/internal/http/middleware"
	"printshop/internal/mailer"
	"printshop/internal/model"
	"printshop/internal/otel"
	"printshop/internal/repository"
	"printshop/internal/repository/postgres"
	"printshop/internal/service"
	"printshop/internal/storage"
)

// @title Printshop API
// @version 1.0
// @BasePath /
func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()
	ctx := context.Background()

	// Initialize tracing
	shutdownTracing, err := otel.Init(ctx, time.UTC)
	if err != nil {
		log.Fatalf("failed to initialize tracing: %v", err)
	}
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			log.Printf("tracing shutdown: %v", err)
		}
	}()

	// Initialize PostgreSQL connection (with pooling via database/sql)
	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer db.Close()

	// Apply schema migrations
	if err := migration.EnsureMigrated(ctx, db, time.UTC, cfg.Database.Host); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	// Initialize reusable S3-compatible object storage client (MinIO-supported)
	objStore, err := storage.NewMinIO(cfg.MinIO)
	if err != nil {
		log.Fatalf("failed to initialize object storage: %v", err)
	}
	quoteFiles := storage.NewLocal(cfg.Upload.QuoteDir, "/uploads/quotes")

	notifier := mailer.NewSMTP(cfg.SMTP)

	// Initialize repositories
	userRepo := postgres.NewUserPostgres(db)
	quoteRepo := postgres.NewQuotePostgres(db)
	productRepo := postgres.NewProductPostgres(db)
	categoryRepo := postgres.NewCategoryPostgres(db)
	postRepo := postgres.NewPostPostgres(db)
	galleryRepo := postgres.NewGalleryPostgres(db)
	orderRepo := postgres.NewOrderPostgres(db)

	if err := seedAdmin(ctx, userRepo, cfg.Admin); err != nil {
		log.Fatalf("failed to seed admin user: %v", err)
	}

	svcs := handlers.Services{
		Auth:    service.NewAuthService(userRepo, cfg.Session),
		Quotes:  service.NewQuoteService(quoteRepo, quoteFiles, notifier, cfg.Upload),
		Catalog: service.NewCatalogService(productRepo, categoryRepo),
		Posts:   service.NewPostService(postRepo),
		Gallery: service.NewGalleryService(galleryRepo),
		Orders:  service.NewOrderService(orderRepo),
		Media:   service.NewMediaService(objStore, cfg.MinIO, cfg.Upload),
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler(),
	})

	// Register global middleware
	// RequestID middleware adds/propagates X-Request-ID and stores it in context
	app.Use(middleware.RequestID())
	// JSON Logger middleware for structured request logs
	app.Use(middleware.Logger())
	app.Use(otelfiber.Middleware())

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	promMw, err := middleware.NewPrometheusMiddleware(reg)
	if err != nil {
		log.Fatalf("failed to initialize metrics: %v", err)
	}
	app.Use(promMw.Handler())
	metricsHandler := fasthttpadaptor.NewFastHTTPHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	app.Get("/metrics", func(c *fiber.Ctx) error {
		metricsHandler(c.Context())
		return nil
	})

	// Session gate for /admin pages and /api/admin endpoints
	app.Use(middleware.AdminGate(cfg.Session.Secret))

	// Stored quote files are served back under their public URLs
	app.Static("/uploads/quotes", cfg.Upload.QuoteDir)

	// Register HTTP routes with injected services
	handlers.RegisterRoutes(app, db, svcs, cfg.IsProduction())

	// Swagger UI with dynamic host and scheme
	app.Get("/swagger/*", func(c *fiber.Ctx) error {
		scheme := c.Protocol()
		if proto := c.Get("X-Forwarded-Proto"); proto != "" {
			scheme = strings.Split(proto, ",")[0]
		}

		docs.SwaggerInfo.Host = c.Get("Host")
		docs.SwaggerInfo.Schemes = []string{scheme}

		return swagger.HandlerDefault(c)
	})

	addr := ":" + cfg.Port

	if err := app.Listen(addr); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}

// seedAdmin creates the bootstrap admin account when credentials are
// configured and the account does not exist yet.
func seedAdmin(ctx context.Context, users repository.UserRepository, cfg config.AdminConfig) error {
	if cfg.Email == "" || cfg.Password == "" {
		return nil
	}

	_, err := users.FindByEmail(ctx, cfg.Email)
	if err == nil {
		return nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.Password), 12)
	if err != nil {
		return err
	}
	now := time.Now().UTC()
	_, err = users.Create(ctx, &model.User{
		ID:           uuid.New().String(),
		Email:        cfg.Email,
		PasswordHash: string(hash),
		Name:         "Admin",
		Role:         model.RoleAdmin,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return err
	}
	log.Printf("seeded admin account %s", cfg.Email)
	return nil
}
