package config

import "time"

// Config is the root application configuration. It is loaded once at
// process start and never mutated afterwards.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Auth     AuthConfig     `yaml:"auth"`
	Reddit   RedditConfig   `yaml:"reddit"`
	OpenAI   OpenAIConfig   `yaml:"openai"`
	Search   SearchConfig   `yaml:"search"`
	Log      LogConfig      `yaml:"log"`
	CORS     CORSConfig     `yaml:"cors"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"60s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
	RateLimitPerMin int           `yaml:"rate_limit_per_min" env:"SERVER_RATE_LIMIT_PER_MIN" env-default:"120"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	Migrate         bool          `yaml:"migrate"            env:"DATABASE_MIGRATE"            env-default:"true"`
}

// AuthConfig holds token and password hashing settings.
type AuthConfig struct {
	JWTSecret        string        `yaml:"jwt_secret"         env:"AUTH_JWT_SECRET"         env-required:"true"`
	JWTIssuer        string        `yaml:"jwt_issuer"         env:"AUTH_JWT_ISSUER"         env-default:"topiclens"`
	AccessTokenTTL   time.Duration `yaml:"access_token_ttl"   env:"AUTH_ACCESS_TOKEN_TTL"   env-default:"30m"`
	PasswordHashCost int           `yaml:"password_hash_cost" env:"AUTH_PASSWORD_HASH_COST" env-default:"12"`
}

// RedditConfig holds content source credentials and query defaults.
type RedditConfig struct {
	ClientID     string        `yaml:"client_id"     env:"REDDIT_CLIENT_ID"     env-required:"true"`
	ClientSecret string        `yaml:"client_secret" env:"REDDIT_CLIENT_SECRET" env-required:"true"`
	UserAgent    string        `yaml:"user_agent"    env:"REDDIT_USER_AGENT"    env-default:"topiclens/0.1"`
	Subreddit    string        `yaml:"subreddit"     env:"REDDIT_SUBREDDIT"     env-default:"all"`
	Sort         string        `yaml:"sort"          env:"REDDIT_SORT"          env-default:"new"`
	TimeWindow   string        `yaml:"time_window"   env:"REDDIT_TIME_WINDOW"   env-default:"day"`
	Timeout      time.Duration `yaml:"timeout"       env:"REDDIT_TIMEOUT"       env-default:"15s"`
	MaxRetries   int           `yaml:"max_retries"   env:"REDDIT_MAX_RETRIES"   env-default:"3"`
}

// OpenAIConfig holds AI service settings.
type OpenAIConfig struct {
	APIKey      string        `yaml:"api_key"     env:"OPENAI_API_KEY"     env-required:"true"`
	Model       string        `yaml:"model"       env:"OPENAI_MODEL"       env-default:"gpt-4o-mini"`
	Timeout     time.Duration `yaml:"timeout"     env:"OPENAI_TIMEOUT"     env-default:"60s"`
	Temperature float32       `yaml:"temperature" env:"OPENAI_TEMPERATURE" env-default:"0.5"`
	MaxTokens   int           `yaml:"max_tokens"  env:"OPENAI_MAX_TOKENS"  env-default:"1000"`
}

// SearchConfig holds orchestrator limits.
type SearchConfig struct {
	DefaultLimit   int `yaml:"default_limit"    env:"SEARCH_DEFAULT_LIMIT"    env-default:"100"`
	MaxLimit       int `yaml:"max_limit"        env:"SEARCH_MAX_LIMIT"        env-default:"100"`
	MaxPromptItems int `yaml:"max_prompt_items" env:"SEARCH_MAX_PROMPT_ITEMS" env-default:"20"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}
