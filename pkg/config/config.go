package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	BackendMemory   = "memory"
	BackendPostgres = "postgres"
	BackendRedis    = "redis"
)

type Config struct {
	ListenAddr string
	LogLevel   string
	LogFormat  string

	StoreBackend  string
	DatabaseURL   string
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	GitHubAPIURL     string
	GitHubToken      string
	GistFilePrefix   string
	WakaTimeAPIURL   string
	WakaTimeAPIKey   string
	MaxBuckets       int
	FetchConcurrency int
	HTTPTimeout      time.Duration

	RefreshEvery      time.Duration
	RefreshIdentifier string
	RefreshMode       string

	MaxCPU       int
	ShutdownWait time.Duration
}

// Load reads an optional .env file and then parses the environment.
// Variables already set win over the file.
func Load(files ...string) (*Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", f, err)
		}
	}
	return Parse()
}

func Parse() (*Config, error) {
	var errs []error
	c := &Config{}
	c.ListenAddr = getenv("LISTEN_ADDR", ":3000")
	c.LogLevel = getenv("LOG_LEVEL", "info")
	c.LogFormat = strings.ToLower(getenv("LOG_FORMAT", "json"))

	c.StoreBackend = strings.ToLower(getenv("STORE_BACKEND", BackendMemory))
	c.DatabaseURL = getenv("DATABASE_URL", "")
	c.RedisAddr = getenv("REDIS_ADDR", "")
	c.RedisPassword = getenv("REDIS_PASSWORD", "")
	c.RedisDB = envInt("REDIS_DB", "0", &errs)

	c.GitHubAPIURL = getenv("GITHUB_API_URL", "https://api.github.com")
	c.GitHubToken = getenv("GITHUB_TOKEN", "")
	c.GistFilePrefix = os.Getenv("GIST_FILE_PREFIX")
	if _, set := os.LookupEnv("GIST_FILE_PREFIX"); !set {
		c.GistFilePrefix = "summaries_"
	}
	c.WakaTimeAPIURL = getenv("WAKATIME_API_URL", "https://wakatime.com")
	c.WakaTimeAPIKey = getenv("WAKATIME_API_KEY", "")
	c.MaxBuckets = envInt("MAX_BUCKETS", "7", &errs)
	c.FetchConcurrency = envInt("FETCH_CONCURRENCY", "8", &errs)
	c.HTTPTimeout = optionalDuration(getenv("HTTP_TIMEOUT", "0"))

	c.RefreshEvery = optionalDuration(getenv("REFRESH_EVERY", "0"))
	c.RefreshIdentifier = getenv("REFRESH_IDENTIFIER", "")
	c.RefreshMode = getenv("REFRESH_MODE", "gist")

	c.MaxCPU = envInt("MAX_CPU", "0", &errs)
	c.ShutdownWait = mustDuration(getenv("SHUTDOWN_WAIT", "5s"))

	switch c.StoreBackend {
	case BackendMemory:
	case BackendPostgres:
		if c.DatabaseURL == "" {
			errs = append(errs, fmt.Errorf("DATABASE_URL is required for postgres backend"))
		}
	case BackendRedis:
		if c.RedisAddr == "" {
			errs = append(errs, fmt.Errorf("REDIS_ADDR is required for redis backend"))
		}
	default:
		errs = append(errs, fmt.Errorf("STORE_BACKEND must be one of memory, postgres, redis"))
	}
	if c.LogFormat != "json" && c.LogFormat != "console" {
		errs = append(errs, fmt.Errorf("LOG_FORMAT must be json or console"))
	}
	if c.MaxBuckets < 0 {
		errs = append(errs, fmt.Errorf("MAX_BUCKETS must be >= 0"))
	}
	if c.FetchConcurrency <= 0 {
		errs = append(errs, fmt.Errorf("FETCH_CONCURRENCY must be > 0"))
	}
	if c.RedisDB < 0 {
		errs = append(errs, fmt.Errorf("REDIS_DB must be >= 0"))
	}
	if c.RefreshEvery > 0 && c.RefreshIdentifier == "" {
		errs = append(errs, fmt.Errorf("REFRESH_IDENTIFIER is required when REFRESH_EVERY is set"))
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return c, nil
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

// envInt reports unparsable values into errs instead of falling back.
func envInt(k, def string, errs *[]error) int {
	v := getenv(k, def)
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		*errs = append(*errs, fmt.Errorf("%s must be an integer, got %q", k, v))
		return 0
	}
	return n
}

func mustDuration(s string) time.Duration {
	d, _ := time.ParseDuration(s)
	if d <= 0 {
		return time.Second
	}
	return d
}

// optionalDuration maps unparsable and non-positive values to zero (off).
func optionalDuration(s string) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil || d < 0 {
		return 0
	}
	return d
}
