package env

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// EnvService reads configuration from the process environment, seeded from
// an optional .env file plus an APP_ENV-specific overlay. Everything is read
// once at startup into a config value; core logic never touches this.
type EnvService struct{}

func NewEnvService() *EnvService {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("no .env file found, using the process environment only")
	}

	appEnv := os.Getenv("APP_ENV")
	if appEnv == "" {
		appEnv = "dev"
	}
	if err := godotenv.Overload(".env." + appEnv); err != nil {
		log.Printf("no .env.%s overlay: %v", appEnv, err)
	}

	return &EnvService{}
}

func (e *EnvService) Get(key string) string {
	return os.Getenv(key)
}

func (e *EnvService) GetDefault(key, defaultValue string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultValue
}

func (e *EnvService) MustGet(key string) string {
	val := os.Getenv(key)
	if val == "" {
		log.Fatalf("required environment variable %s is not set", key)
	}
	return val
}

func (e *EnvService) GetBool(key string, defaultValue bool) bool {
	val := os.Getenv(key)
	if val == "" {
		return defaultValue
	}
	parsed, err := strconv.ParseBool(val)
	if err != nil {
		return defaultValue
	}
	return parsed
}

func (e *EnvService) GetInt(key string, defaultValue int) int {
	val := os.Getenv(key)
	if val == "" {
		return defaultValue
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return defaultValue
	}
	return parsed
}
