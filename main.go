package main

import (
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/kun-ahmadraza/Grocery-store/auth"
	"github.com/kun-ahmadraza/Grocery-store/config"
	"github.com/kun-ahmadraza/Grocery-store/logger"
	"github.com/kun-ahmadraza/Grocery-store/models"
	"github.com/kun-ahmadraza/Grocery-store/routes"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func main() {
	// Load environment variables
	_ = godotenv.Load()

	cfg, err := config.Load(".")
	if err != nil {
		log.Fatalf("❌ Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Logger); err != nil {
		log.Fatalf("❌ Failed to init logger: %v", err)
	}

	// The signing secret comes from the environment or config file, never
	// from source.
	if cfg.JWT.Secret == "" {
		log.Fatal("❌ JWT_SECRET is not set")
	}
	auth.Setup(cfg.JWT.Secret, cfg.JWT.TTL)

	// Init DB
	db := initDatabase(cfg)

	// Auto-migrate all tables
	if err := db.AutoMigrate(
		&models.Category{},
		&models.Product{},
		&models.ProductImage{},
		&models.User{},
		&models.Cart{},
		&models.BillingDetails{},
		&models.Order{},
		&models.OrderItem{},
	); err != nil {
		log.Fatalf("❌ AutoMigrate failed: %v", err)
	}

	// Gin setup
	gin.SetMode(cfg.Server.Mode)
	r := gin.Default()

	// Allow large image uploads
	r.MaxMultipartMemory = 32 << 20 // 32MB

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Server-rendered templates + uploaded images
	r.LoadHTMLGlob("templates/*.html")
	r.Static("/static", "static")

	routes.SetupRoutes(r, db, cfg)

	logger.Info("server starting", "port", cfg.Server.Port)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

// initDatabase opens postgres when DATABASE_URL is configured, otherwise
// the local sqlite file.
func initDatabase(cfg *config.Config) *gorm.DB {
	gormCfg := &gorm.Config{TranslateError: true}

	if cfg.Database.URL != "" {
		db, err := gorm.Open(postgres.Open(cfg.Database.URL), gormCfg)
		if err != nil {
			log.Fatalf("❌ DB connection failed: %v", err)
		}
		return db
	}

	db, err := gorm.Open(sqlite.Open(cfg.Database.File), gormCfg)
	if err != nil {
		log.Fatalf("❌ Failed to connect DB: %v", err)
	}
	return db
}
