package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/agusputra69/pawranger-api/auth"
	"github.com/agusputra69/pawranger-api/booking"
	"github.com/agusputra69/pawranger-api/cart"
	"github.com/agusputra69/pawranger-api/config"
	"github.com/agusputra69/pawranger-api/models"
	"github.com/agusputra69/pawranger-api/realtime"
	"github.com/agusputra69/pawranger-api/routes"
)

func main() {
	log.Println("✅ Starting application...")

	// Load environment variables
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Config error: %v", err)
	}

	// Init DB
	db := initDatabase(cfg)

	// Auto-migrate all tables
	if err := db.AutoMigrate(
		&models.User{},
		&models.GuestUser{},
		&models.Product{},
		&models.Category{},
		&models.Admin{},
		&models.ActivityLog{},
		&models.Cart{},
		&models.CartItem{},
		&models.GuestCart{},
		&models.GuestCartItem{},
		&models.Order{},
		&models.OrderItem{},
		&models.Booking{},
		&models.Pet{},
		&models.Banner{},
		&models.PaymentQR{},
	); err != nil {
		log.Fatalf("❌ AutoMigrate failed: %v", err)
	}

	// Firebase verifies Google ID tokens for user and admin login
	if err := auth.InitFirebase(cfg); err != nil {
		log.Fatalf("❌ Firebase init failed: %v", err)
	}

	// Gin setup
	r := gin.Default()

	// Allow large file uploads (1 GB)
	r.MaxMultipartMemory = 1 << 30

	// CORS settings
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-API-KEY"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Serve uploaded images
	r.Static("/uploads", cfg.UploadDir)

	// Wire up the domain services
	cartService := cart.NewService(cart.NewGuestStore(db), cart.NewRemoteStore(db))
	reconciler := cart.NewReconciler(cart.NewGuestStore(db), cart.NewRemoteStore(db))
	bookingService := booking.NewService(booking.NewGormRepo(db))
	hub := realtime.NewHub()

	routes.SetupRoutes(r, routes.Deps{
		Cfg:        cfg,
		DB:         db,
		Carts:      cartService,
		Reconciler: reconciler,
		Bookings:   bookingService,
		Hub:        hub,
	})

	// Start backup routine at 2 AM daily, keep 4 days of backups
	go startDailyBackupAtFixedTime(cfg.UploadDir, cfg.BackupDir, 4*24*time.Hour, 2, 0)

	// Purge expired guest sessions and their carts every hour
	go startGuestSessionCleanup(db, time.Hour)

	// Start server
	log.Printf("🚀 Server running on port %s...", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

// initDatabase sets up the GORM DB connection
func initDatabase(cfg config.App) *gorm.DB {
	if cfg.DatabaseURL != "" {
		db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{})
		if err != nil {
			log.Fatalf("❌ DB connection failed: %v", err)
		}
		return db
	}

	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("❌ Failed to connect DB: %v", err)
	}
	return db
}

// startGuestSessionCleanup deletes guest users past their expiry together
// with any cart they left behind.
func startGuestSessionCleanup(db *gorm.DB, every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for range ticker.C {
		var expired []models.GuestUser
		if err := db.Where("expires_at < ?", time.Now()).Find(&expired).Error; err != nil {
			log.Printf("❌ Guest cleanup query failed: %v", err)
			continue
		}
		for _, guest := range expired {
			var guestCart models.GuestCart
			if err := db.Where("guest_id = ?", guest.ID).First(&guestCart).Error; err == nil {
				db.Where("cart_id = ?", guestCart.CartID).Delete(&models.GuestCartItem{})
				db.Delete(&guestCart)
			}
			db.Delete(&guest)
		}
		if len(expired) > 0 {
			log.Printf("🗑️ Purged %d expired guest sessions", len(expired))
		}
	}
}

// startDailyBackupAtFixedTime backs up images daily at a fixed hour and removes old backups
func startDailyBackupAtFixedTime(srcDir, backupDir string, retention time.Duration, hour, min int) {
	for {
		now := time.Now()
		next := time.Date(now.Year(), now.Month(), now.Day(), hour, min, 0, 0, now.Location())
		if !next.After(now) {
			next = next.Add(24 * time.Hour)
		}
		sleepDuration := next.Sub(now)
		log.Printf("⏳ Next image backup scheduled at: %s", next.Format("2006-01-02 15:04:05"))
		time.Sleep(sleepDuration)

		timestamp := time.Now().Format("2006-01-02_15-04-05")
		destDir := filepath.Join(backupDir, timestamp)

		if err := copyDir(srcDir, destDir); err != nil {
			log.Printf("❌ Failed to back up images: %v", err)
		} else {
			log.Printf("✅ Images backed up to %s", destDir)
		}

		cleanupOldBackups(backupDir, retention)
	}
}

// copyDir recursively copies a folder
func copyDir(src, dest string) error {
	entries, err := os.ReadDir(src)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dest, 0755); err != nil {
		return err
	}
	for _, entry := range entries {
		srcPath := filepath.Join(src, entry.Name())
		destPath := filepath.Join(dest, entry.Name())

		if entry.IsDir() {
			if err := copyDir(srcPath, destPath); err != nil {
				return err
			}
		} else {
			if err := copyFile(srcPath, destPath); err != nil {
				return err
			}
		}
	}
	return nil
}

// copyFile copies a single file
func copyFile(src, dest string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dest)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err = io.Copy(out, in); err != nil {
		return err
	}
	return out.Sync()
}

// cleanupOldBackups removes backup folders older than retention duration
func cleanupOldBackups(backupDir string, retention time.Duration) {
	entries, err := os.ReadDir(backupDir)
	if err != nil {
		log.Printf("❌ Failed to read backup directory: %v", err)
		return
	}

	cutoff := time.Now().Add(-retention)

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		folderPath := filepath.Join(backupDir, entry.Name())
		info, err := os.Stat(folderPath)
		if err != nil {
			continue
		}
		if info.ModTime().Before(cutoff) {
			if err := os.RemoveAll(folderPath); err != nil {
				log.Printf("❌ Failed to remove old backup %s: %v", folderPath, err)
			} else {
				log.Printf("🗑️ Removed old backup: %s", folderPath)
			}
		}
	}
}
