package main

import (
	"errors"
	"fmt"
	"log"
	"runtime"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/healthcheck"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/pprof"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"github.com/talenthive/talenthive-backend/internal/config"
	"github.com/talenthive/talenthive-backend/internal/domain/fiber/handler"
	"github.com/talenthive/talenthive-backend/internal/middleware"
	"github.com/talenthive/talenthive-backend/internal/model"
	"github.com/talenthive/talenthive-backend/internal/repository"
	"github.com/talenthive/talenthive-backend/internal/service"
	"github.com/talenthive/talenthive-backend/internal/usecase"
	"github.com/talenthive/talenthive-backend/internal/worker"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	// Load .env file
	err := godotenv.Load()
	if err != nil {
		log.Println("Could not load .env file")
	}

	appConfig := config.LoadAppConfig()

	app := fiber.New(fiber.Config{
		AppName: appConfig.Name,
		ErrorHandler: func(ctx *fiber.Ctx, err error) error {
			// Status code defaults to 500
			code := fiber.StatusInternalServerError

			// Retrieve the custom status code if it's a *fiber.Error
			var e *fiber.Error
			if errors.As(err, &e) {
				code = e.Code
			}

			message := err.Error()
			if message == "" {
				message = "Internal Server Error"
			}

			return ctx.Status(code).JSON(fiber.Map{"error": message})
		},
	})
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
	}))
	app.Use(recover.New(recover.Config{
		EnableStackTrace: appConfig.Env != "production",
	}))

	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed, // 1
	}))
	app.Use(pprof.New(pprof.Config{
		Next: func(c *fiber.Ctx) bool {
			return appConfig.Env != "production"
		},
	}))
	app.Use(healthcheck.New())

	app.Use(helmet.New(helmet.Config{
		CrossOriginResourcePolicy: "cross-origin",
	}))

	app.Use(middleware.RateLimiter(50, 1*time.Minute))

	db := ConnectDB()

	candidateRepo := repository.NewCandidateRepository(db)
	listingRepo := repository.NewListingRepository(db)
	settingsRepo := repository.NewMatchSettingsRepository(db)
	queueRepo := repository.NewMatchQueueRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)

	// The settings singleton must exist before any request or worker tick.
	if _, err := settingsRepo.EnsureDefaults(); err != nil {
		log.Fatal("match settings bootstrap failed: ", err)
	}

	matchingConfig := config.LoadMatchingConfig()
	notifier := service.NewWebhookNotifier(matchingConfig.WebhookURL)

	recommendationUC := usecase.NewRecommendationUsecase(candidateRepo, listingRepo)
	adminUC := usecase.NewMatchingAdminUsecase(settingsRepo, queueRepo)

	handler.NewRecommendationHandler(recommendationUC).RegisterRoutes(app)
	handler.NewMatchingAdminHandler(adminUC).RegisterRoutes(app)

	if matchingConfig.WorkerEnabled {
		matchWorker := worker.New(queueRepo, listingRepo, notificationRepo, notifier, matchingConfig.WorkerIntervalSeconds)
		if err := matchWorker.Start(); err != nil {
			log.Fatal("worker start failed: ", err)
		}
		defer matchWorker.Stop()
	}

	// Monitor goroutine count
	go func() {
		ticker := time.NewTicker(1 * time.Minute)
		defer ticker.Stop()

		for range ticker.C {
			log.Printf("Active goroutines: %d", runtime.NumGoroutine())
		}
	}()

	log.Println("Server running on ", appConfig.Port)
	if err := app.Listen(appConfig.Port); err != nil {
		log.Fatal(err)
	}
}

func ConnectDB() *gorm.DB {
	dbConfig := config.LoadDBConfig()
	appConfig := config.LoadAppConfig()

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		dbConfig.Host,
		dbConfig.User,
		dbConfig.Password,
		dbConfig.Name,
		dbConfig.Port,
		dbConfig.SSLMode,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Could not connect to database: %v", err)
	}
	pgDB, err := db.DB()
	if err != nil {
		log.Fatalf("Could not get database instance: %v", err)
	}
	if appConfig.Env != "production" {
		pgDB.SetMaxIdleConns(5)
		pgDB.SetMaxOpenConns(10)
		pgDB.SetConnMaxLifetime(30 * time.Minute)
	} else {
		pgDB.SetMaxIdleConns(20)
		pgDB.SetMaxOpenConns(200)
		pgDB.SetConnMaxLifetime(time.Hour)
	}

	err = db.AutoMigrate(
		&model.Candidate{},
		&model.Job{},
		&model.Internship{},
		&model.MatchSettings{},
		&model.MatchQueueEntry{},
		&model.Notification{},
	)
	if err != nil {
		log.Fatal("migration failed: ", err)
	}
	return db
}
