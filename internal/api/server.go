package api

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/medwellsolutions/Medwell-Backend/config"
	"github.com/medwellsolutions/Medwell-Backend/infra/queue"
	"github.com/medwellsolutions/Medwell-Backend/internal/api/rest/handlers"
	"github.com/medwellsolutions/Medwell-Backend/internal/domain"
	"github.com/medwellsolutions/Medwell-Backend/internal/helper"
	"github.com/medwellsolutions/Medwell-Backend/internal/interfaces"
	"github.com/medwellsolutions/Medwell-Backend/internal/repository"
	"github.com/medwellsolutions/Medwell-Backend/internal/services"
	"github.com/medwellsolutions/Medwell-Backend/pkg/cloudinary"
	"github.com/medwellsolutions/Medwell-Backend/pkg/filestore"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func StartServer(cfg config.Config) {
	app := fiber.New()

	// ---------- CORS ----------
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.BaseURL,
		AllowHeaders:     "Content-Type, Accept, Authorization",
		AllowMethods:     "GET, POST, PUT, PATCH, DELETE, OPTIONS",
		AllowCredentials: true,
	}))

	// ---------- DB ----------
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DatabaseDSN,
		PreferSimpleProtocol: true,
	}), &gorm.Config{})
	if err != nil {
		log.Fatalf("database connection error: %v", err)
	}
	log.Println("database connected")

	// ---------- MIGRATION (guarded by advisory lock) ----------
	const migrateLockID int64 = 20260830

	if err := db.Exec("SELECT pg_advisory_lock(?)", migrateLockID).Error; err != nil {
		log.Fatalf("migration lock error: %v", err)
	}
	defer func() {
		_ = db.Exec("SELECT pg_advisory_unlock(?)", migrateLockID).Error
	}()

	if err := db.AutoMigrate(
		&domain.User{},
		&domain.VettingRecord{},
		&domain.Event{},
		&domain.EventSubmission{},
	); err != nil {
		log.Fatalf("migration error: %v", err)
	}
	log.Println("migration successful")

	// ---------- Infra ----------
	kafkaProducer := queue.NewProducer(
		cfg.KafkaBroker,
		cfg.KafkaTopic,
		cfg.KafkaUsername,
		cfg.KafkaPassword,
	)

	var files interfaces.FileStore
	if cfg.CloudinaryURL != "" {
		cld, err := cloudinary.New()
		if err != nil {
			log.Fatalf("cloudinary init error: %v", err)
		}
		files = cloudinary.NewFileStore(cld)
	} else {
		log.Println("CLOUDINARY_URL not set - using in-memory file store")
		files = filestore.NewMemory()
	}

	authHelper := helper.SetupAuth(cfg.AccessSecret)

	// ---------- Repositories ----------
	userRepo := repository.NewUserRepository(db)
	vettingRepo := repository.NewVettingRepository(db)
	eventRepo := repository.NewEventRepository(db)
	submissionRepo := repository.NewSubmissionRepository(db)

	// ---------- Services ----------
	userSvc := services.NewUserService(userRepo, authHelper, kafkaProducer)
	vettingSvc := services.NewVettingService(vettingRepo, userRepo, files, kafkaProducer)
	reviewSvc := services.NewReviewService(userRepo, vettingRepo, submissionRepo, kafkaProducer)
	eventSvc := services.NewEventService(eventRepo, submissionRepo, userRepo)

	// ---------- Handlers ----------
	handlers.NewAuthHandler(userSvc, authHelper).SetupRoutes(app)
	handlers.NewVettingHandler(vettingSvc, files, authHelper).SetupRoutes(app)
	handlers.NewEventHandler(eventSvc, authHelper).SetupRoutes(app)
	handlers.NewAdminHandler(reviewSvc, eventSvc, authHelper).SetupRoutes(app)

	// ---------- Health ----------
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// ---------- Listen ----------
	addr := cfg.ServerPort
	log.Println("listening on", addr)
	log.Fatal(app.Listen(addr))
}
