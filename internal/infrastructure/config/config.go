package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Environment names one of the configuration bundles.
type Environment string

const (
	Development Environment = "development"
	Staging     Environment = "staging"
	Production  Environment = "production"
)

// DefaultDevSecretKey is the secret used when development runs without SECRET_KEY.
const DefaultDevSecretKey = "django-insecure-dev-key-change-in-production"

// ParseEnvironment validates an ENVIRONMENT value. An empty value selects development.
func ParseEnvironment(s string) (Environment, error) {
	switch Environment(strings.ToLower(strings.TrimSpace(s))) {
	case "", Development:
		return Development, nil
	case Staging:
		return Staging, nil
	case Production:
		return Production, nil
	}
	return "", fmt.Errorf("unknown ENVIRONMENT %q: expected development, staging or production", s)
}

// Config holds all application configuration. It is built once by Load and
// passed by pointer to the components that need it; nothing mutates it afterwards.
type Config struct {
	Environment Environment
	App         AppConfig
	Security    SecurityConfig
	CORS        CORSConfig
	Database    DatabaseConfig
	Log         LogConfig
	HTTP        HTTPConfig
	Pagination  PaginationConfig
	Swagger     SwaggerConfig
	Storage     StorageConfig
	Telemetry   TelemetryConfig
	Profiling   ProfilingConfig
}

// AppConfig holds application-specific settings
type AppConfig struct {
	Name         string
	Port         string
	Debug        bool
	SecretKey    string
	AllowedHosts []string
}

// SecurityConfig holds the transport security headers of a bundle
type SecurityConfig struct {
	SSLRedirect           bool
	XSSFilter             bool
	ContentTypeNosniff    bool
	FrameOptions          string
	HSTSSeconds           int
	HSTSIncludeSubdomains bool
	HSTSPreload           bool
	ContentSecurityPolicy string
}

// CORSConfig holds cross-origin settings
type CORSConfig struct {
	AllowOrigins     []string
	AllowMethods     []string
	AllowHeaders     []string
	AllowCredentials bool
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Driver          string // postgres or sqlite
	Host            string
	Port            int
	User            string
	Password        string
	Name            string
	SSLMode         string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration // zero closes nothing early
	ConnMaxIdleTime time.Duration
	AutoMigrate     bool
	LogLevel        string
	SlowThreshold   time.Duration
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, console
	Output string // stdout, stderr, or file path
}

// HTTPConfig holds HTTP server settings
type HTTPConfig struct {
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
	MaxHeaderBytes  int
	MaxBodySize     int64
	TrustedProxies  []string
}

// PaginationConfig bounds list page sizes
type PaginationConfig struct {
	DefaultPageSize int
	MaxPageSize     int
}

// SwaggerConfig controls the OpenAPI document endpoint
type SwaggerConfig struct {
	Enabled    bool
	AllowedIPs []string
}

// StorageConfig holds object storage settings for generated reports
type StorageConfig struct {
	Driver            string // local or s3
	Endpoint          string
	Region            string
	Bucket            string
	AccessKey         string
	SecretKey         string
	UseSSL            bool
	UsePathStyle      bool
	PresignExpiration time.Duration
	LocalPath         string
	PublicBaseURL     string
}

// TelemetryConfig holds OpenTelemetry settings
type TelemetryConfig struct {
	Enabled           bool
	CollectorEndpoint string
	SamplingRatio     float64
	ServiceName       string
	Insecure          bool
	DBTraceEnabled    bool
	DBLogFullSQL      bool
	DBSlowQueryThresh time.Duration
	MetricsEnabled    bool
	MetricsInterval   time.Duration
	LogsEnabled       bool
}

// ProfilingConfig holds Pyroscope continuous profiling settings
type ProfilingConfig struct {
	Enabled       bool
	ServerAddress string
	BasicAuthUser string
	BasicAuthPass string
	SampleRate    uint32
}

// MissingVariablesError reports every required variable absent from the environment.
type MissingVariablesError struct {
	Environment Environment
	Variables   []string
}

func (e *MissingVariablesError) Error() string {
	return fmt.Sprintf("%s configuration is missing required variables: %s",
		e.Environment, strings.Join(e.Variables, ", "))
}

// ErrMissingVariables matches any *MissingVariablesError with errors.Is.
var ErrMissingVariables = errors.New("missing required configuration variables")

func (e *MissingVariablesError) Is(target error) bool {
	return target == ErrMissingVariables
}

// bundleEnv maps configuration keys to the unprefixed variable names operators set.
var bundleEnv = map[string]string{
	"environment":          "ENVIRONMENT",
	"secret_key":           "SECRET_KEY",
	"debug":                "DEBUG",
	"allowed_hosts":        "ALLOWED_HOSTS",
	"cors_allowed_origins": "CORS_ALLOWED_ORIGINS",
	"db_engine":            "DB_ENGINE",
	"db_name":              "DB_NAME",
	"db_user":              "DB_USER",
	"db_password":          "DB_PASSWORD",
	"db_host":              "DB_HOST",
	"db_port":              "DB_PORT",
}

// Load reads configuration from a .env file, config.toml and the process
// environment, then applies the bundle selected by ENVIRONMENT.
//
// Priority (highest to lowest):
//  1. Process environment (ENVIRONMENT, SECRET_KEY, DB_*, ... and ERP_ prefixed keys)
//  2. .env in the working directory (never overrides the process environment)
//  3. config.toml
//  4. Bundle defaults
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("error reading .env file: %w", err)
	}

	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/app")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	v.SetEnvPrefix("ERP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for key, env := range bundleEnv {
		if err := v.BindEnv("bundle."+key, env); err != nil {
			return nil, fmt.Errorf("bind %s: %w", env, err)
		}
	}

	return build(v)
}

func build(v *viper.Viper) (*Config, error) {
	env, err := ParseEnvironment(v.GetString("bundle.environment"))
	if err != nil {
		return nil, err
	}

	r := &reader{v: v}
	cfg := &Config{Environment: env}

	switch env {
	case Development:
		applyDevelopment(cfg, r)
	case Staging:
		applyStaging(cfg, r)
	case Production:
		applyProduction(cfg, r)
	}
	applyCommon(cfg, r)

	if len(r.missing) > 0 {
		return nil, &MissingVariablesError{Environment: env, Variables: r.missing}
	}
	if len(r.invalid) > 0 {
		return nil, errors.Join(r.invalid...)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

var localOrigins = []string{
	"http://localhost:3000",
	"http://localhost:8000",
	"http://127.0.0.1:3000",
	"http://127.0.0.1:8000",
}

func applyDevelopment(cfg *Config, r *reader) {
	cfg.App.SecretKey = r.str("bundle.secret_key", DefaultDevSecretKey)
	cfg.App.Debug = true
	cfg.App.AllowedHosts = []string{"*"}
	cfg.CORS.AllowOrigins = localOrigins
	cfg.CORS.AllowCredentials = true

	cfg.Database.Name = r.str("bundle.db_name", "erp_dev_db")
	cfg.Database.User = r.str("bundle.db_user", "erp_user")
	cfg.Database.Password = r.str("bundle.db_password", "erp_password")
	cfg.Database.Host = r.str("bundle.db_host", "localhost")
	cfg.Database.Port = r.integer("bundle.db_port", 5432)
	cfg.Database.SSLMode = r.str("database.sslmode", "disable")
	cfg.Database.AutoMigrate = r.boolean("database.auto_migrate", true)

	cfg.Log.Level = "debug"
	cfg.Log.Format = r.str("log.format", "console")
	cfg.Swagger.Enabled = r.boolean("swagger.enabled", true)
}

func applyStaging(cfg *Config, r *reader) {
	cfg.App.SecretKey = r.required("bundle.secret_key")
	cfg.App.Debug = r.boolean("bundle.debug", false)
	cfg.App.AllowedHosts = r.csv("bundle.allowed_hosts", []string{"localhost", "127.0.0.1"})
	cfg.CORS.AllowOrigins = r.csv("bundle.cors_allowed_origins", []string{"http://localhost:3000", "http://localhost:8000"})
	cfg.CORS.AllowCredentials = true

	cfg.Database.Name = r.str("bundle.db_name", "erp_staging_db")
	cfg.Database.User = r.str("bundle.db_user", "erp_user")
	cfg.Database.Password = r.required("bundle.db_password")
	cfg.Database.Host = r.str("bundle.db_host", "localhost")
	cfg.Database.Port = r.integer("bundle.db_port", 5432)
	cfg.Database.SSLMode = r.str("database.sslmode", "disable")
	cfg.Database.ConnMaxLifetime = 60 * time.Second

	cfg.Security = SecurityConfig{
		SSLRedirect:           true,
		XSSFilter:             true,
		ContentTypeNosniff:    true,
		FrameOptions:          "DENY",
		ContentSecurityPolicy: "default-src 'self'; script-src 'self' 'unsafe-inline'; style-src 'self' 'unsafe-inline'; img-src 'self' data: https:",
	}

	cfg.Log.Level = "debug"
	cfg.Log.Format = r.str("log.format", "json")
	cfg.Swagger.Enabled = r.boolean("swagger.enabled", false)
}

func applyProduction(cfg *Config, r *reader) {
	cfg.App.SecretKey = r.required("bundle.secret_key")
	cfg.App.Debug = false
	cfg.App.AllowedHosts = r.requiredCSV("bundle.allowed_hosts")
	cfg.CORS.AllowOrigins = r.requiredCSV("bundle.cors_allowed_origins")
	cfg.CORS.AllowCredentials = true

	cfg.Database.Name = r.required("bundle.db_name")
	cfg.Database.User = r.required("bundle.db_user")
	cfg.Database.Password = r.required("bundle.db_password")
	cfg.Database.Host = r.required("bundle.db_host")
	cfg.Database.Port = r.integer("bundle.db_port", 5432)
	cfg.Database.SSLMode = r.str("database.sslmode", "require")
	cfg.Database.ConnMaxLifetime = 600 * time.Second

	cfg.Security = SecurityConfig{
		SSLRedirect:           true,
		XSSFilter:             true,
		ContentTypeNosniff:    true,
		FrameOptions:          "DENY",
		HSTSSeconds:           31536000,
		HSTSIncludeSubdomains: true,
		HSTSPreload:           true,
		ContentSecurityPolicy: "default-src 'self'; script-src 'self'; style-src 'self' 'unsafe-inline'; img-src 'self' data: https:; font-src 'self'; connect-src 'self'; frame-ancestors 'none'",
	}

	cfg.Log.Level = "warn"
	cfg.Log.Format = r.str("log.format", "json")
	cfg.Swagger.Enabled = r.boolean("swagger.enabled", false)
}

// applyCommon fills settings shared by every bundle, all overridable with ERP_ variables.
func applyCommon(cfg *Config, r *reader) {
	cfg.App.Name = r.str("app.name", "erp-api")
	cfg.App.Port = r.str("app.port", "8000")

	cfg.Database.Driver = r.str("database.driver", driverFromEngine(r.str("bundle.db_engine", "")))
	cfg.Database.MaxOpenConns = r.integer("database.max_open_conns", 25)
	cfg.Database.MaxIdleConns = r.integer("database.max_idle_conns", 5)
	cfg.Database.ConnMaxLifetime = r.duration("database.conn_max_lifetime", cfg.Database.ConnMaxLifetime)
	cfg.Database.ConnMaxIdleTime = r.duration("database.conn_max_idle_time", 5*time.Minute)
	if cfg.Environment != Development {
		cfg.Database.AutoMigrate = r.boolean("database.auto_migrate", false)
	}
	cfg.Database.LogLevel = r.str("database.log_level", "warn")
	cfg.Database.SlowThreshold = r.duration("database.slow_threshold", 200*time.Millisecond)

	cfg.Log.Level = r.str("log.level", cfg.Log.Level)
	cfg.Log.Output = r.str("log.output", "stdout")

	cfg.CORS.AllowMethods = r.csv("cors.allow_methods", []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"})
	cfg.CORS.AllowHeaders = r.csv("cors.allow_headers", []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Request-ID", "X-User"})

	cfg.HTTP = HTTPConfig{
		ReadTimeout:     r.duration("http.read_timeout", 15*time.Second),
		WriteTimeout:    r.duration("http.write_timeout", 15*time.Second),
		IdleTimeout:     r.duration("http.idle_timeout", 60*time.Second),
		ShutdownTimeout: r.duration("http.shutdown_timeout", 30*time.Second),
		MaxHeaderBytes:  r.integer("http.max_header_bytes", 1<<20),
		MaxBodySize:     int64(r.integer("http.max_body_size", 10<<20)),
		TrustedProxies:  r.csv("http.trusted_proxies", nil),
	}

	cfg.Pagination = PaginationConfig{
		DefaultPageSize: r.integer("pagination.default_page_size", 50),
		MaxPageSize:     r.integer("pagination.max_page_size", 1000),
	}

	cfg.Swagger.AllowedIPs = r.csv("swagger.allowed_ips", nil)

	cfg.Storage = StorageConfig{
		Driver:            r.str("storage.driver", "local"),
		Endpoint:          r.str("storage.endpoint", ""),
		Region:            r.str("storage.region", "us-east-1"),
		Bucket:            r.str("storage.bucket", "erp-reports"),
		AccessKey:         r.str("storage.access_key", ""),
		SecretKey:         r.str("storage.secret_key", ""),
		UseSSL:            r.boolean("storage.use_ssl", false),
		UsePathStyle:      r.boolean("storage.use_path_style", true),
		PresignExpiration: r.duration("storage.presign_expiration", 15*time.Minute),
		LocalPath:         r.str("storage.local_path", "./data/reports"),
		PublicBaseURL:     r.str("storage.public_base_url", "/media/reports"),
	}

	cfg.Telemetry = TelemetryConfig{
		Enabled:           r.boolean("telemetry.enabled", false),
		CollectorEndpoint: r.str("telemetry.collector_endpoint", "localhost:4317"),
		SamplingRatio:     r.float("telemetry.sampling_ratio", 1.0),
		ServiceName:       r.str("telemetry.service_name", cfg.App.Name),
		Insecure:          r.boolean("telemetry.insecure", cfg.Environment == Development),
		DBTraceEnabled:    r.boolean("telemetry.db_trace_enabled", true),
		DBLogFullSQL:      r.boolean("telemetry.db_log_full_sql", false),
		DBSlowQueryThresh: r.duration("telemetry.db_slow_query_threshold", 200*time.Millisecond),
		MetricsEnabled:    r.boolean("telemetry.metrics_enabled", false),
		MetricsInterval:   r.duration("telemetry.metrics_interval", 60*time.Second),
		LogsEnabled:       r.boolean("telemetry.logs_enabled", false),
	}

	cfg.Profiling = ProfilingConfig{
		Enabled:       r.boolean("profiling.enabled", false),
		ServerAddress: r.str("profiling.server_address", "http://localhost:4040"),
		BasicAuthUser: r.str("profiling.basic_auth_user", ""),
		BasicAuthPass: r.str("profiling.basic_auth_password", ""),
		SampleRate:    uint32(r.integer("profiling.sample_rate", 100)),
	}
}

// driverFromEngine maps a DB_ENGINE backend path onto a gorm driver name.
func driverFromEngine(engine string) string {
	if strings.Contains(strings.ToLower(engine), "sqlite") {
		return "sqlite"
	}
	return "postgres"
}

// validate performs validation on the configuration
func (c *Config) validate() error {
	switch c.Database.Driver {
	case "postgres", "sqlite":
	default:
		return fmt.Errorf("database.driver must be postgres or sqlite, got %q", c.Database.Driver)
	}
	if c.Database.MaxOpenConns <= 0 {
		return fmt.Errorf("database.max_open_conns must be positive")
	}
	if c.Database.MaxIdleConns < 0 {
		return fmt.Errorf("database.max_idle_conns cannot be negative")
	}
	if c.Database.MaxIdleConns > c.Database.MaxOpenConns {
		return fmt.Errorf("database.max_idle_conns (%d) cannot exceed database.max_open_conns (%d)",
			c.Database.MaxIdleConns, c.Database.MaxOpenConns)
	}
	if c.Pagination.DefaultPageSize <= 0 || c.Pagination.MaxPageSize < c.Pagination.DefaultPageSize {
		return fmt.Errorf("pagination sizes must satisfy 0 < default (%d) <= max (%d)",
			c.Pagination.DefaultPageSize, c.Pagination.MaxPageSize)
	}
	switch c.Storage.Driver {
	case "local", "s3":
	default:
		return fmt.Errorf("storage.driver must be local or s3, got %q", c.Storage.Driver)
	}

	if c.Environment == Production {
		for _, origin := range c.CORS.AllowOrigins {
			if origin == "*" {
				return fmt.Errorf("CORS_ALLOWED_ORIGINS cannot be '*' in production (use specific origins)")
			}
		}
		if c.Telemetry.DBLogFullSQL {
			return fmt.Errorf("telemetry.db_log_full_sql must be false in production to prevent sensitive data exposure in traces")
		}
	}

	if c.Telemetry.SamplingRatio < 0.0 || c.Telemetry.SamplingRatio > 1.0 {
		return fmt.Errorf("telemetry.sampling_ratio must be between 0.0 and 1.0, got %f", c.Telemetry.SamplingRatio)
	}
	return nil
}

// IsProduction reports whether the production bundle is active.
func (c *Config) IsProduction() bool { return c.Environment == Production }

// DSN returns the database connection string with properly escaped values.
// For sqlite the database name is the file path.
func (d *DatabaseConfig) DSN() string {
	if d.Driver == "sqlite" {
		return d.Name
	}
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(d.User, d.Password),
		Host:   fmt.Sprintf("%s:%d", d.Host, d.Port),
		Path:   d.Name,
	}
	q := u.Query()
	q.Set("sslmode", d.SSLMode)
	u.RawQuery = q.Encode()
	return u.String()
}

// reader wraps viper lookups and records missing or malformed values so that
// all of them can be reported together.
type reader struct {
	v       *viper.Viper
	missing []string
	invalid []error
}

func (r *reader) raw(key string) string {
	return strings.TrimSpace(r.v.GetString(key))
}

func envName(key string) string {
	if name, ok := strings.CutPrefix(key, "bundle."); ok {
		return bundleEnv[name]
	}
	return "ERP_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
}

func (r *reader) str(key, def string) string {
	if s := r.raw(key); s != "" {
		return s
	}
	return def
}

func (r *reader) required(key string) string {
	s := r.raw(key)
	if s == "" {
		r.missing = append(r.missing, envName(key))
	}
	return s
}

func (r *reader) requiredCSV(key string) []string {
	if r.required(key) == "" {
		return nil
	}
	return r.csv(key, nil)
}

func (r *reader) csv(key string, def []string) []string {
	s := r.raw(key)
	if s == "" {
		return def
	}
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func (r *reader) boolean(key string, def bool) bool {
	s := r.raw(key)
	if s == "" {
		return def
	}
	switch strings.ToLower(s) {
	case "1", "true", "yes", "on", "y", "t":
		return true
	case "0", "false", "no", "off", "n", "f":
		return false
	}
	r.invalid = append(r.invalid, fmt.Errorf("%s: invalid boolean %q", envName(key), s))
	return def
}

func (r *reader) integer(key string, def int) int {
	s := r.raw(key)
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		r.invalid = append(r.invalid, fmt.Errorf("%s: invalid integer %q", envName(key), s))
		return def
	}
	return n
}

func (r *reader) float(key string, def float64) float64 {
	s := r.raw(key)
	if s == "" {
		return def
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		r.invalid = append(r.invalid, fmt.Errorf("%s: invalid number %q", envName(key), s))
		return def
	}
	return f
}

func (r *reader) duration(key string, def time.Duration) time.Duration {
	s := r.raw(key)
	if s == "" {
		return def
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		r.invalid = append(r.invalid, fmt.Errorf("%s: invalid duration %q", envName(key), s))
		return def
	}
	return d
}
