package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Redis    RedisConfig
	LLM      LLMConfig
	JWT      JWTConfig
	Admin    AdminConfig
	Storage  StorageConfig
	Resume   ResumeConfig
	Log      LogConfig
}

type AppConfig struct {
	AppName     string
	Environment string
	HTTPPort    string
	CORSOrigins []string
	BodyLimit   int
}

func (a AppConfig) IsDevelopment() bool {
	return strings.EqualFold(a.Environment, "development")
}

type DatabaseConfig struct {
	Driver     string
	DBHost     string
	DBPort     string
	DBName     string
	DBUser     string
	DBPassword string
	DBSSLMode  string

	ConnectTimeout        time.Duration
	PoolMaxConns          int32
	PoolMinConns          int32
	PoolMaxConnLifetime   time.Duration
	PoolMaxConnIdleTime   time.Duration
	PoolHealthCheckPeriod time.Duration

	AutoMigrate bool
}

func (d DatabaseConfig) UsesPostgres() bool {
	return d.Driver == DriverPostgres
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
	TTL      time.Duration
}

func (r RedisConfig) Enabled() bool {
	return r.Host != ""
}

type LLMConfig struct {
	APIKey      string
	Model       string
	MaxTokens   int
	Temperature float32
	Timeout     time.Duration
}

type JWTConfig struct {
	Secret string
	TTL    time.Duration
	Issuer string
}

type AdminConfig struct {
	Whitelist    []string
	PasswordHash string
	// Open leaves page upsert and seeding reachable without a token.
	Open bool
}

type StorageConfig struct {
	Driver    string
	UploadDir string

	MinIOEndpoint  string
	MinIOAccessKey string
	MinIOSecretKey string
	MinIOBucket    string
	MinIOUseSSL    bool
}

type ResumeConfig struct {
	Skills              string
	SkillWeight         float64
	ExperienceWeight    float64
	FullExperienceYears float64
}

type LogConfig struct {
	Level  string
	Format string
}

const (
	DriverMemory   = "memory"
	DriverPostgres = "postgres"

	StorageLocal = "local"
	StorageMinIO = "minio"
)

var (
	errMissingRequiredEnv = errors.New("missing required environment variables")
	errInvalidEnv         = errors.New("invalid environment variables")
)

func Load() (Config, error) {
	cfg := Config{}

	var missing []string
	var invalid []string
	req := func(key string) string {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			missing = append(missing, key)
		}
		return v
	}
	opt := func(key, def string) string {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			return def
		}
		return v
	}
	optInt := func(key string, def int) int {
		v := opt(key, "")
		if v == "" {
			return def
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			invalid = append(invalid, key)
			return def
		}
		return n
	}
	optFloat := func(key string, def float64) float64 {
		v := opt(key, "")
		if v == "" {
			return def
		}
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			invalid = append(invalid, key)
			return def
		}
		return f
	}
	optBool := func(key string, def bool) bool {
		v := opt(key, "")
		if v == "" {
			return def
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			invalid = append(invalid, key)
			return def
		}
		return b
	}
	optDuration := func(key string, def time.Duration) time.Duration {
		v := opt(key, "")
		if v == "" {
			return def
		}
		d, err := time.ParseDuration(v)
		if err != nil {
			invalid = append(invalid, key)
			return def
		}
		return d
	}

	cfg.App = AppConfig{
		AppName:     opt("APP_NAME", "sitebuilder"),
		Environment: opt("APP_ENV", "development"),
		HTTPPort:    req("HTTP_PORT"),
		CORSOrigins: splitList(opt("CORS_ALLOW_ORIGINS", "*")),
		BodyLimit:   optInt("HTTP_BODY_LIMIT_MB", 16) * 1024 * 1024,
	}

	cfg.Database = DatabaseConfig{
		Driver:     strings.ToLower(opt("DB_DRIVER", DriverMemory)),
		DBHost:     opt("DB_HOST", "localhost"),
		DBPort:     opt("DB_PORT", "5432"),
		DBName:     opt("DB_NAME", "sitebuilder"),
		DBUser:     opt("DB_USER", "postgres"),
		DBPassword: opt("DB_PASSWORD", ""),
		DBSSLMode:  opt("DB_SSL_MODE", "disable"),

		ConnectTimeout:        optDuration("DB_CONNECT_TIMEOUT", 5*time.Second),
		PoolMaxConns:          int32(optInt("DB_POOL_MAX_CONNS", 10)),
		PoolMinConns:          int32(optInt("DB_POOL_MIN_CONNS", 0)),
		PoolMaxConnLifetime:   optDuration("DB_POOL_MAX_CONN_LIFETIME", time.Hour),
		PoolMaxConnIdleTime:   optDuration("DB_POOL_MAX_CONN_IDLE_TIME", 30*time.Minute),
		PoolHealthCheckPeriod: optDuration("DB_POOL_HEALTH_CHECK_PERIOD", time.Minute),

		AutoMigrate: optBool("DB_AUTO_MIGRATE", true),
	}
	switch cfg.Database.Driver {
	case DriverMemory, DriverPostgres:
	default:
		invalid = append(invalid, "DB_DRIVER")
	}

	cfg.Redis = RedisConfig{
		Host:     opt("REDIS_HOST", ""),
		Port:     opt("REDIS_PORT", "6379"),
		Password: opt("REDIS_PASSWORD", ""),
		DB:       optInt("REDIS_DB", 0),
		TTL:      optDuration("REDIS_TTL", 10*time.Minute),
	}

	cfg.LLM = LLMConfig{
		APIKey:      opt("GEMINI_API_KEY", opt("LLM_API_KEY", "")),
		Model:       opt("LLM_MODEL", "gemini-1.5-flash"),
		MaxTokens:   optInt("LLM_MAX_TOKENS", 200),
		Temperature: float32(optFloat("LLM_TEMPERATURE", 0.7)),
		Timeout:     optDuration("LLM_TIMEOUT", 30*time.Second),
	}

	cfg.JWT = JWTConfig{
		Secret: opt("JWT_SECRET", ""),
		TTL:    optDuration("JWT_TTL", 12*time.Hour),
		Issuer: opt("JWT_ISSUER", "sitebuilder"),
	}

	cfg.Admin = AdminConfig{
		Whitelist:    splitList(opt("ADMIN_WHITELIST", "admin1@yourdomain.com,admin2@yourdomain.com")),
		PasswordHash: opt("ADMIN_PASSWORD_HASH", ""),
		Open:         optBool("ADMIN_OPEN", cfg.App.IsDevelopment()),
	}

	cfg.Storage = StorageConfig{
		Driver:         strings.ToLower(opt("STORAGE_DRIVER", StorageLocal)),
		UploadDir:      opt("UPLOAD_DIR", "data/uploads"),
		MinIOEndpoint:  opt("MINIO_ENDPOINT", ""),
		MinIOAccessKey: opt("MINIO_ACCESS_KEY", ""),
		MinIOSecretKey: opt("MINIO_SECRET_KEY", ""),
		MinIOBucket:    opt("MINIO_BUCKET", "resumes"),
		MinIOUseSSL:    optBool("MINIO_USE_SSL", false),
	}
	switch cfg.Storage.Driver {
	case StorageLocal:
	case StorageMinIO:
		if cfg.Storage.MinIOEndpoint == "" {
			missing = append(missing, "MINIO_ENDPOINT")
		}
	default:
		invalid = append(invalid, "STORAGE_DRIVER")
	}

	cfg.Resume = ResumeConfig{
		Skills:              opt("RESUME_SKILLS", ""),
		SkillWeight:         optFloat("RESUME_SKILL_WEIGHT", 0.7),
		ExperienceWeight:    optFloat("RESUME_EXPERIENCE_WEIGHT", 0.3),
		FullExperienceYears: optFloat("RESUME_FULL_EXPERIENCE_YEARS", 5),
	}

	cfg.Log = LogConfig{
		Level:  opt("LOG_LEVEL", "info"),
		Format: opt("LOG_FORMAT", "json"),
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("%w: %s", errMissingRequiredEnv, strings.Join(missing, ", "))
	}
	if len(invalid) > 0 {
		return Config{}, fmt.Errorf("%w: %s", errInvalidEnv, strings.Join(invalid, ", "))
	}

	return cfg, nil
}

func splitList(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
