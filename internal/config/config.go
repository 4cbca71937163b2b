package config

import "time"

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Auth      AuthConfig      `yaml:"auth"`
	Pathgen   PathgenConfig   `yaml:"pathgen"`
	Embedder  EmbedderConfig  `yaml:"embedder"`
	Storage   StorageConfig   `yaml:"storage"`
	Log       LogConfig       `yaml:"log"`
	CORS      CORSConfig      `yaml:"cors"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	MigrationsDir   string        `yaml:"migrations_dir"     env:"DATABASE_MIGRATIONS_DIR"     env-default:"./migrations"`
}

// AuthConfig holds admin authentication settings. Learners are anonymous;
// only the admin screen authenticates.
type AuthConfig struct {
	JWTSecret         string        `yaml:"jwt_secret"          env:"AUTH_JWT_SECRET"          env-required:"true"`
	JWTIssuer         string        `yaml:"jwt_issuer"          env:"AUTH_JWT_ISSUER"          env-default:"skillone"`
	TokenTTL          time.Duration `yaml:"token_ttl"           env:"AUTH_TOKEN_TTL"           env-default:"12h"`
	AdminUsername     string        `yaml:"admin_username"      env:"AUTH_ADMIN_USERNAME"      env-default:"admin"`
	AdminPasswordHash string        `yaml:"admin_password_hash" env:"AUTH_ADMIN_PASSWORD_HASH" env-required:"true"`
}

// PathgenConfig holds learning-path generation parameters.
type PathgenConfig struct {
	MaxPathLength   int     `yaml:"max_path_length"  env:"PATHGEN_MAX_PATH_LENGTH"  env-default:"12"`
	MaxFeatures     int     `yaml:"max_features"     env:"PATHGEN_MAX_FEATURES"     env-default:"500"`
	TFIDFWeight     float64 `yaml:"tfidf_weight"     env:"PATHGEN_TFIDF_WEIGHT"     env-default:"0.6"`
	SemanticWeight  float64 `yaml:"semantic_weight"  env:"PATHGEN_SEMANTIC_WEIGHT"  env-default:"0.4"`
	SuggestionLimit int     `yaml:"suggestion_limit" env:"PATHGEN_SUGGESTION_LIMIT" env-default:"10"`
}

// EmbedderConfig holds settings for the external embedding service.
// An empty base URL disables the semantic signal entirely.
type EmbedderConfig struct {
	BaseURL   string        `yaml:"base_url"   env:"EMBEDDER_BASE_URL"`
	Timeout   time.Duration `yaml:"timeout"    env:"EMBEDDER_TIMEOUT"    env-default:"10s"`
	BatchSize int           `yaml:"batch_size" env:"EMBEDDER_BATCH_SIZE" env-default:"32"`
}

// StorageConfig holds SFTP settings for uploaded course materials.
// An empty host disables uploads; link materials keep working.
type StorageConfig struct {
	Host          string `yaml:"host"            env:"STORAGE_HOST"`
	Port          int    `yaml:"port"            env:"STORAGE_PORT"            env-default:"22"`
	User          string `yaml:"user"            env:"STORAGE_USER"`
	Password      string `yaml:"password"        env:"STORAGE_PASSWORD"`
	RemoteDir     string `yaml:"remote_dir"      env:"STORAGE_REMOTE_DIR"      env-default:"/uploads"`
	PublicBaseURL string `yaml:"public_base_url" env:"STORAGE_PUBLIC_BASE_URL"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PUT,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// RateLimitConfig holds per-IP rate limiting settings.
type RateLimitConfig struct {
	RequestsPerMinute int           `yaml:"requests_per_minute" env:"RATE_LIMIT_RPM"              env-default:"120"`
	CleanupInterval   time.Duration `yaml:"cleanup_interval"    env:"RATE_LIMIT_CLEANUP_INTERVAL" env-default:"5m"`
}

// StorageEnabled reports whether material uploads are configured.
func (c StorageConfig) StorageEnabled() bool {
	return c.Host != "" && c.User != ""
}

// SemanticEnabled reports whether the external embedding service is configured.
func (c EmbedderConfig) SemanticEnabled() bool {
	return c.BaseURL != ""
}
