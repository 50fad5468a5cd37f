package api

import (
	"log"

	"github.com/RentHaven/property_service/config"
	"github.com/RentHaven/property_service/infra/queue"
	"github.com/RentHaven/property_service/internal/api/rest/handlers"
	"github.com/RentHaven/property_service/internal/domain"
	"github.com/RentHaven/property_service/internal/helper"
	"github.com/RentHaven/property_service/internal/repository"
	"github.com/RentHaven/property_service/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func StartServer(cfg config.Config) {
	app := fiber.New()

	// ---------- CORS ----------
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigins,
		AllowHeaders: "Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PUT, PATCH, DELETE, OPTIONS",
	}))

	// ---------- DB ----------
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DatabaseDSN,
		PreferSimpleProtocol: true,
	}), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("database connection error: %v", err)
	}
	log.Println("database connected")

	// ---------- MIGRATION (guarded by advisory lock) ----------
	const migrateLockID int64 = 20260901

	if err := db.Exec("SELECT pg_advisory_lock(?)", migrateLockID).Error; err != nil {
		log.Fatalf("migration lock error: %v", err)
	}
	defer func() {
		_ = db.Exec("SELECT pg_advisory_unlock(?)", migrateLockID).Error
	}()

	if err := db.AutoMigrate(
		&domain.User{},
		&domain.Application{},
	); err != nil {
		log.Fatalf("migration error: %v", err)
	}
	log.Println("migration successful")

	// ---------- Infra ----------
	producer := queue.NewProducer(
		cfg.KafkaBroker,
		cfg.KafkaTopic,
		cfg.KafkaUsername,
		cfg.KafkaPassword,
	)

	if cfg.AccessSecret == "" || cfg.RefreshSecret == "" {
		log.Fatal("ACCESS_TOKEN_SECRET and REFRESH_TOKEN_SECRET must be set")
	}
	auth := helper.SetupAuth(cfg.AccessSecret, cfg.RefreshSecret, cfg.AccessTokenTTL, cfg.RefreshTokenTTL)

	// ---------- Repositories ----------
	userRepo := repository.NewUserRepository(db)
	appRepo := repository.NewApplicationRepository(db)

	// ---------- Services ----------
	authSvc := services.NewAuthService(userRepo, appRepo, auth, producer)
	appSvc := services.NewApplicationService(appRepo, producer)

	// ---------- Handlers ----------
	authHandler := handlers.NewAuthHandler(authSvc, auth, userRepo)
	authHandler.SetupRoutes(app)

	appHandler := handlers.NewApplicationHandler(appSvc, auth, userRepo)
	appHandler.SetupRoutes(app)

	// ---------- Health ----------
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// ---------- Listen ----------
	log.Println("listening on", cfg.ServerPort)
	log.Fatal(app.Listen(cfg.ServerPort))
}
