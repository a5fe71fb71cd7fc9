package infra

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerName         string
	ServerPort         string
	Environment        string
	LogDebug           bool
	DBHost             string
	DBPort             string
	DBUser             string
	DBPassword         string
	DBDatabase         string
	DBSSLMode          string
	DBDriver           string
	MigrationsPath     string
	AnalyticsDSN       string
	RedisUrl           string
	SignatureToken     string
	EditorAPIKey       string
	ViewerAPIKey       string
	AwsAccessKeyID     string
	AwsSecretAccessKey string
	AwsRegion          string
	AwsBucketName      string
	GoogleMapsKey      string
	OpenAIKey          string
	OpenAIModel        string
	OpenAIURL          string
	IbgeURL            string
	IbgeStateCode      int
	BackendURL         string
	BackendToken       string
	BackendTimeout     time.Duration
}

func NewConfig() Config {
	if os.Getenv("ENVIRONMENT") == "" {
		if err := godotenv.Load(".env"); err != nil {
			panic("Error loading env file")
		}
	}

	return Config{
		ServerName:         os.Getenv("SERVER_NAME"),
		ServerPort:         getEnv("SERVER_PORT", ":8080"),
		Environment:        os.Getenv("ENVIRONMENT"),
		LogDebug:           os.Getenv("LOG_DEBUG") == "true",
		DBHost:             os.Getenv("DB_HOST"),
		DBPort:             os.Getenv("DB_PORT"),
		DBUser:             os.Getenv("DB_USER"),
		DBPassword:         os.Getenv("DB_PASSWORD"),
		DBDatabase:         os.Getenv("DB_DATABASE"),
		DBSSLMode:          os.Getenv("DB_SSL_MODE"),
		DBDriver:           os.Getenv("DB_DRIVER"),
		MigrationsPath:     os.Getenv("MIGRATIONS_PATH"),
		AnalyticsDSN:       os.Getenv("ANALYTICS_DSN"),
		RedisUrl:           os.Getenv("REDIS_URL"),
		SignatureToken:     os.Getenv("SIGNATURE_STRING"),
		EditorAPIKey:       os.Getenv("EDITOR_API_KEY"),
		ViewerAPIKey:       os.Getenv("VIEWER_API_KEY"),
		AwsAccessKeyID:     os.Getenv("AWS_ACCESS_KEY"),
		AwsSecretAccessKey: os.Getenv("AWS_SECRET_KEY"),
		AwsRegion:          os.Getenv("AWS_REGION"),
		AwsBucketName:      os.Getenv("AWS_BUCKET_NAME"),
		GoogleMapsKey:      os.Getenv("GOOGLE_MAPS_KEY"),
		OpenAIKey:          os.Getenv("OPENAI_API_KEY"),
		OpenAIModel:        os.Getenv("OPENAI_MODEL"),
		OpenAIURL:          os.Getenv("OPENAI_URL"),
		IbgeURL:            os.Getenv("IBGE_URL"),
		IbgeStateCode:      getEnvInt("IBGE_STATE_CODE", 31),
		BackendURL:         getEnv("BACKEND_URL", "http://localhost:8080"),
		BackendToken:       os.Getenv("BACKEND_TOKEN"),
		BackendTimeout:     time.Duration(getEnvInt("BACKEND_TIMEOUT_SECONDS", 30)) * time.Second,
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}
