package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Redis Config
const REDIS_DB_ADDRESS = "redis:6379"
const REDIS_DB_PASSWORD = ""
const REDIS_DB = 0

// Cache + refresher config
const PORTAL_CACHE_TTL_MINUTES = 30
const PORTAL_REFRESHER_SCHEDULE_MINUTES = 15

// Portal backend API
const PORTAL_API_ENDPOINT_BASE = "https://hiplan.thi.de/webservice/production2/index.php"
const PORTAL_API_TIMEZONE = "Europe/Berlin"

// HTTP server
const HTTP_ADDR = ":8080"

// Rooms the renderer marks as Linux-equipped
const TUX_ROOMS = "G308"

// Resources file paths
const RESOURCES_PATH_PREFIX = "resources"
const FREE_ROOMS_RESPONSE_RESOURCE = "free_rooms_response.json"
const EXAMS_RESPONSE_RESOURCE = "exams_response.json"

// Config is the runtime configuration, read from the environment on top of the defaults above.
type Config struct {
	Environment     string
	HTTPAddr        string
	RedisAddr       string
	RedisPassword   string
	RedisDB         int
	PortalBaseURL   string
	PortalSession   string
	Location        *time.Location
	CacheTTL        time.Duration
	RefreshInterval time.Duration
	TuxRooms        []string
}

// Load reads .env if present, then the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := &Config{
		Environment:   getEnv("ENV", "development"),
		HTTPAddr:      getEnv("HTTP_ADDR", HTTP_ADDR),
		RedisAddr:     getEnv("REDIS_ADDR", REDIS_DB_ADDRESS),
		RedisPassword: getEnv("REDIS_PASSWORD", REDIS_DB_PASSWORD),
		PortalBaseURL: getEnv("PORTAL_API_BASE_URL", PORTAL_API_ENDPOINT_BASE),
		PortalSession: os.Getenv("PORTAL_SESSION"),
		TuxRooms:      splitList(getEnv("TUX_ROOMS", TUX_ROOMS)),
	}

	var err error
	if cfg.RedisDB, err = getEnvInt("REDIS_DB", REDIS_DB); err != nil {
		return nil, err
	}

	ttl, err := getEnvInt("CACHE_TTL_MINUTES", PORTAL_CACHE_TTL_MINUTES)
	if err != nil {
		return nil, err
	}
	cfg.CacheTTL = time.Duration(ttl) * time.Minute

	interval, err := getEnvInt("REFRESH_INTERVAL_MINUTES", PORTAL_REFRESHER_SCHEDULE_MINUTES)
	if err != nil {
		return nil, err
	}
	if interval <= 0 {
		return nil, fmt.Errorf("REFRESH_INTERVAL_MINUTES must be positive, got %d", interval)
	}
	cfg.RefreshInterval = time.Duration(interval) * time.Minute

	tz := getEnv("PORTAL_TIMEZONE", PORTAL_API_TIMEZONE)
	if cfg.Location, err = time.LoadLocation(tz); err != nil {
		return nil, fmt.Errorf("invalid PORTAL_TIMEZONE %q: %w", tz, err)
	}

	return cfg, nil
}

// BaseDir returns the absolute path of the project root directory
func BaseDir() string {
	// Check if PROJECT_ROOT is set
	if root := os.Getenv("PROJECT_ROOT"); root != "" {
		return root
	}

	// Default to the current working directory
	wd, err := os.Getwd()
	if err != nil {
		panic("Unable to determine working directory: " + err.Error())
	}

	return wd
}

func GetResourcePath(resource_file string) string {
	return filepath.Join(BaseDir(), RESOURCES_PATH_PREFIX, resource_file)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	return n, nil
}

func splitList(s string) []string {
	out := []string{}
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
