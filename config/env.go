package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv           string
	Port             string
	AppURL           string
	OriginURL        string
	DatabaseURL      string
	DBHost           string
	DBPort           string
	DBUser           string
	DBPassword       string
	DBName           string
	DBSSLMode        string
	MigrationsDir    string
	JWTSecret        string
	JWTExpiry        time.Duration
	DevAuthBypass    bool
	RedisURL         string
	RedisAddr        string
	RedisPassword    string
	CartStorage      string
	CartStorageDir   string
	StoreConfigFile  string
	MercadoPagoToken string
	CloudinaryURL    string
	CloudName        string
	CloudAPIKey      string
	CloudAPISecret   string
	SMTPHost         string
	SMTPPort         int
	SMTPUser         string
	SMTPPass         string
	SMTPFrom         string
	AdminEmail       string
	UploadDir        string
	MaxUploadSize    int64
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}

	maxUploadSize, _ := strconv.ParseInt(os.Getenv("MAX_UPLOAD_SIZE"), 10, 64)
	if maxUploadSize == 0 {
		maxUploadSize = 5242880
	}

	jwtExpiry, err := time.ParseDuration(getEnv("JWT_EXPIRY", "168h"))
	if err != nil || jwtExpiry <= 0 {
		jwtExpiry = 7 * 24 * time.Hour
	}

	smtpPort, err := strconv.Atoi(os.Getenv("SMTP_PORT"))
	if err != nil {
		smtpPort = 587
	}

	cfg := &Config{
		AppEnv:           getEnv("APP_ENV", "development"),
		Port:             getEnv("APP_PORT", getEnv("PORT", "8082")),
		AppURL:           getEnv("APP_URL", "http://localhost:3000"),
		OriginURL:        os.Getenv("ORIGIN_URL"),
		DatabaseURL:      os.Getenv("DATABASE_URL"),
		DBHost:           os.Getenv("DB_HOST"),
		DBPort:           getEnv("DB_PORT", "5432"),
		DBUser:           getEnv("DB_USER", "postgres"),
		DBPassword:       getEnv("DB_PASSWORD", "postgres"),
		DBName:           getEnv("DB_NAME", "hardware_store"),
		DBSSLMode:        getEnv("DB_SSLMODE", "disable"),
		MigrationsDir:    getEnv("MIGRATIONS_DIR", "database/migration"),
		JWTSecret:        getEnv("JWT_SECRET", getEnv("NEXTAUTH_SECRET", "default-secret")),
		JWTExpiry:        jwtExpiry,
		DevAuthBypass:    os.Getenv("DEV_AUTH_BYPASS") == "true",
		RedisURL:         os.Getenv("REDIS_URL"),
		RedisAddr:        os.Getenv("REDIS_ADDR"),
		RedisPassword:    os.Getenv("REDIS_PASSWORD"),
		CartStorage:      getEnv("CART_STORAGE", "memory"),
		CartStorageDir:   getEnv("CART_STORAGE_DIR", "./data/storage"),
		StoreConfigFile:  getEnv("STORE_CONFIG_FILE", "config/settings.json"),
		MercadoPagoToken: os.Getenv("MERCADOPAGO_ACCESS_TOKEN"),
		CloudinaryURL:    os.Getenv("CLOUDINARY_URL"),
		CloudName:        os.Getenv("CLOUDINARY_CLOUD_NAME"),
		CloudAPIKey:      os.Getenv("CLOUDINARY_API_KEY"),
		CloudAPISecret:   os.Getenv("CLOUDINARY_API_SECRET"),
		SMTPHost:         os.Getenv("SMTP_HOST"),
		SMTPPort:         smtpPort,
		SMTPUser:         os.Getenv("SMTP_USER"),
		SMTPPass:         os.Getenv("SMTP_PASS"),
		SMTPFrom:         getEnv("SMTP_FROM", os.Getenv("SMTP_USER")),
		AdminEmail:       os.Getenv("ADMIN_EMAIL"),
		UploadDir:        getEnv("UPLOAD_DIR", "./uploads"),
		MaxUploadSize:    maxUploadSize,
	}

	log.Println("Configuration loaded successfully")
	log.Printf("Environment: %s", cfg.AppEnv)
	log.Printf("Server will run on port: %s", cfg.Port)

	return cfg
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

// HasDatabase reports whether any Postgres connection settings were provided.
func (c *Config) HasDatabase() bool {
	return c.DatabaseURL != "" || c.DBHost != ""
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
