package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/ewinters/portfolio-backend/api"
	"github.com/ewinters/portfolio-backend/auth"
	"github.com/ewinters/portfolio-backend/config"
	"github.com/ewinters/portfolio-backend/database"
	"github.com/ewinters/portfolio-backend/media"
)

func main() {
	fmt.Println("Initializing app...")

	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Warning: Error loading .env file: %v\n", err)
	}

	c := config.New()

	jwtSecret := config.GetString(c, "JWT_SECRET", "")
	if jwtSecret == "" {
		fmt.Println("Missing required JWT_SECRET in environment variables")
		os.Exit(1)
	}

	connStr := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		config.GetString(c, "DB_HOST", "localhost"),
		config.GetString(c, "DB_USER", "postgres"),
		config.GetString(c, "DB_PASSWORD", ""),
		config.GetString(c, "DB_NAME", "portfolio"),
		config.GetString(c, "DB_PORT", "5432"),
		config.GetString(c, "DB_SSLMODE", "disable"),
	)

	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             10 * time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  true,
		},
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  connStr,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		Logger: newLogger,
	})
	if err != nil {
		fmt.Printf("Error connecting to database: %v\n", err)
		os.Exit(1)
	}

	// Migrate the schema and seed the admin credential
	adminUsername := config.GetString(c, "ADMIN_USERNAME", "admin")
	adminPassword := config.GetString(c, "ADMIN_PASSWORD", "password")
	if err := database.Setup(db, adminUsername, adminPassword); err != nil {
		fmt.Printf("Error setting up database: %v\n", err)
		os.Exit(1)
	}

	currentDB := database.New(db)
	tokens := auth.NewService(jwtSecret, currentDB.UserRepo())

	store, staticDir, err := buildMediaStore(c)
	if err != nil {
		fmt.Printf("Error configuring media storage: %v\n", err)
		os.Exit(1)
	}

	errChannel := make(chan error)
	defer close(errChannel)

	server, err := api.NewServer(currentDB, store, tokens, staticDir)
	if err != nil {
		fmt.Printf("Error initializing server: %v\n", err)
		os.Exit(1)
	}

	go server.Start(errChannel)

	// Listen for interrupt signals to gracefully shutdown the server
	go listenToInterrupt(errChannel)

	fatalErr := <-errChannel
	fmt.Printf("Closing server: %v\n", fatalErr)

	server.ShutdownGracefully(30 * time.Second)
}

// buildMediaStore picks the media backend from config. The disk store also
// reports its root so the server can serve the files back; the S3 store
// returns absolute object URLs instead.
func buildMediaStore(c map[string]string) (media.Store, string, error) {
	switch config.GetString(c, "MEDIA_STORAGE", "disk") {
	case "s3":
		store, err := media.NewS3Store(media.S3Options{
			Bucket:          config.GetString(c, "S3_BUCKET", ""),
			Region:          config.GetString(c, "S3_REGION", ""),
			AccessKeyID:     config.GetString(c, "S3_ACCESS_KEY_ID", ""),
			SecretAccessKey: config.GetString(c, "S3_SECRET_ACCESS_KEY", ""),
			Endpoint:        config.GetString(c, "S3_ENDPOINT", ""),
			PublicBaseURL:   config.GetString(c, "S3_PUBLIC_BASE_URL", ""),
		})
		return store, "", err
	default:
		diskStore := media.NewDiskStore(config.GetString(c, "UPLOADS_DIR", "uploads"))
		return diskStore, diskStore.Root(), nil
	}
}

// listenToInterrupt waits for SIGINT or SIGTERM and then sends an error to the error channel.
func listenToInterrupt(errChannel chan<- error) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)
	errChannel <- fmt.Errorf("%s", <-c)
}
