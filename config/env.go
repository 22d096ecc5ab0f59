package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv      string
	Port        string
	DatabaseURL string

	RedisURL      string
	RedisAddr     string
	RedisPassword string

	OriginURL string

	GoogleFormURL          string
	FormFieldJerseyName    string
	FormFieldJerseyPrice   string
	FormFieldCustomerName  string
	FormFieldCustomerEmail string
	FormFieldCustomerPhone string
	FormFieldSize          string

	WishlistFile string
}

var AppConfig *Config

func LoadConfig() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}

	AppConfig = &Config{
		AppEnv:      getEnv("APP_ENV", "development"),
		Port:        getEnv("APP_PORT", getEnv("PORT", "8080")),
		DatabaseURL: os.Getenv("DATABASE_URL"),

		RedisURL:      os.Getenv("REDIS_URL"),
		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),

		OriginURL: os.Getenv("ORIGIN_URL"),

		GoogleFormURL:          getEnv("GOOGLE_FORM_URL", "https://docs.google.com/forms/d/e/1FAIpQLSfXXXXXXXXXXXXXXXXXXXXXXXXXXXXXXXXXXXXXX/viewform"),
		FormFieldJerseyName:    getEnv("FORM_FIELD_JERSEY_NAME", "entry.1234567890"),
		FormFieldJerseyPrice:   getEnv("FORM_FIELD_JERSEY_PRICE", "entry.0987654321"),
		FormFieldCustomerName:  getEnv("FORM_FIELD_CUSTOMER_NAME", "entry.1122334455"),
		FormFieldCustomerEmail: getEnv("FORM_FIELD_CUSTOMER_EMAIL", "entry.2233445566"),
		FormFieldCustomerPhone: getEnv("FORM_FIELD_CUSTOMER_PHONE", "entry.3344556677"),
		FormFieldSize:          getEnv("FORM_FIELD_SIZE", "entry.4455667788"),

		WishlistFile: getEnv("WISHLIST_FILE", "wishlist.json"),
	}

	log.Println("Configuration loaded successfully")
	log.Printf("Environment: %s", AppConfig.AppEnv)
	log.Printf("Server will run on port: %s", AppConfig.Port)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
