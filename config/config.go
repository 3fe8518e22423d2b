package config

import (
	"github.com/kelseyhightower/envconfig"
)

// App holds every environment-driven setting. DATABASE_URL takes priority
// over the individual DB_* fields when set.
type App struct {
	// DB
	DatabaseURL string `envconfig:"DATABASE_URL"`
	DBHost      string `envconfig:"DB_HOST" default:"localhost"`
	DBPort      string `envconfig:"DB_PORT" default:"5432"`
	DBUser      string `envconfig:"DB_USER" default:"postgres"`
	DBPassword  string `envconfig:"DB_PASSWORD"`
	DBName      string `envconfig:"DB_NAME" default:"pawranger"`

	// Auth
	JWTSecret           string `envconfig:"JWT_SECRET" required:"true"`
	AdminAPIKey         string `envconfig:"ADMIN_API_KEY" required:"true"`
	FirebaseProjectID   string `envconfig:"FIREBASE_PROJECT_ID" required:"true"`
	FirebaseCredentials string `envconfig:"FIREBASE_CREDENTIALS_JSON" required:"true"`

	// HTTP
	Port      string `envconfig:"PORT" default:"8080"`
	PublicURL string `envconfig:"PUBLIC_URL" default:"http://localhost:8080"`

	// Uploaded images (banners, products, payment QRs)
	UploadDir string `envconfig:"UPLOAD_DIR" default:"/var/www/pawranger/uploads"`
	BackupDir string `envconfig:"BACKUP_DIR" default:"/var/www/pawranger/backup/uploads"`
}

func Load() (App, error) {
	var c App
	err := envconfig.Process("", &c)
	return c, err
}
